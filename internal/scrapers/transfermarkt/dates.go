package transfermarkt

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	// LookupDateLayout is DD/MM/YYYY, used for lookup dates and window bounds.
	LookupDateLayout = "02/01/2006"
	// matchDateLayout is M/D/YY, used by the national team match log.
	matchDateLayout = "1/2/06"
	// longDateLayout is MMM D, YYYY, used by transfer rows and birth dates.
	longDateLayout = "Jan 2, 2006"
)

// freeFormLayouts are tried in order when a date has no fixed grammar.
var freeFormLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	LookupDateLayout,
}

func ParseLookupDate(value string) (time.Time, error) {
	return parseLayout(LookupDateLayout, value)
}

func parseLayout(layout, value string) (time.Time, error) {
	t, err := time.Parse(layout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse date %q", value)
	}
	return t, nil
}

func parseFreeForm(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range freeFormLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Newf("parse date %q: no known layout matched", value)
}

// parseLongDate parses dates like "Jul 1, 2017". Profile cells sometimes append the
// age in parentheses ("Jan 28, 1978 (40)"), anything after the year is ignored.
func parseLongDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if idx := strings.Index(value, "("); idx > 0 {
		value = strings.TrimSpace(value[:idx])
	}
	return parseLayout(longDateLayout, value)
}

// InWindow reports whether `candidate` (M/D/YY) falls inside the window given by
// `from` (DD/MM/YYYY) and `to`. Empty bounds are absent.
//
//   - both bounds: from <= candidate <= to, `to` is parsed free-form
//   - only from:   candidate > from
//   - only to:     candidate < to, `to` is parsed as DD/MM/YYYY
//   - neither:     always true
func InWindow(candidate, from, to string) (bool, error) {
	date, err := parseLayout(matchDateLayout, candidate)
	if err != nil {
		return false, err
	}

	if from != "" {
		fromDate, err := parseLayout(LookupDateLayout, from)
		if err != nil {
			return false, err
		}
		if to != "" {
			toDate, err := parseFreeForm(to)
			if err != nil {
				return false, err
			}
			return !date.Before(fromDate) && !date.After(toDate), nil
		}
		return fromDate.Before(date), nil
	}

	if to != "" {
		toDate, err := parseLayout(LookupDateLayout, to)
		if err != nil {
			return false, err
		}
		return date.Before(toDate), nil
	}

	return true, nil
}
