package chrono

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 365 * day
)

// go-humanize's default magnitudes use 360 day years and give up after 37 of them
// ("a long while"), ages need plain calendar years with no upper bound.
var elapsedMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "now", DivBy: time.Second},
	{D: 2 * time.Second, Format: "1 second %s", DivBy: 1},
	{D: time.Minute, Format: "%d seconds %s", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: 1},
	{D: time.Hour, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: 1},
	{D: day, Format: "%d hours %s", DivBy: time.Hour},
	{D: 2 * day, Format: "1 day %s", DivBy: 1},
	{D: month, Format: "%d days %s", DivBy: day},
	{D: 2 * month, Format: "1 month %s", DivBy: 1},
	{D: year, Format: "%d months %s", DivBy: month},
	{D: 2 * year, Format: "1 year %s", DivBy: 1},
	{D: math.MaxInt64, Format: "%d years %s", DivBy: year},
}

// Humanize renders the gap between `from` and `to` as a phrase relative to `now`,
// that is, how long ago an event would have been if it happened `to - from` before now.
//
// ex. Humanize(now, 1 Jun 2017, 9 May 2018) -> "11 months ago"
func Humanize(now, from, to time.Time) string {
	then := now.Add(-to.Sub(from))
	return humanize.CustomRelTime(then, now, "ago", "from now", elapsedMagnitudes)
}
