package transfermarkt

import (
	"strconv"
	"strings"

	"tmscraper/internal/components/telemetry"
	"tmscraper/pkg/htmlutil"
)

const clubMatchMinCells = 9

var (
	// home and away fixtures put the opponent in different cells, the first
	// non-blank one wins.
	clubOpponentCells = []int{5, 6}
	// a substitution marker column pushes the goals one cell right, a non-numeric
	// cell moves on to the next candidate.
	clubGoalCells = []int{8, 9}
)

// readCount reads an integer from the first usable candidate cell. A blank cell counts
// as zero and stops the search, a non-numeric one moves on to the next candidate.
// The bool is false when every candidate was non-numeric.
func readCount(cells []htmlutil.Node, candidates []int) (int, bool) {
	for _, idx := range candidates {
		text := cellText(cells, idx)
		if text == "" {
			return 0, true
		}
		count, err := strconv.Atoi(text)
		if err == nil {
			return count, true
		}
	}
	return 0, false
}

func readOpponent(cells []htmlutil.Node, candidates []int) string {
	for _, idx := range candidates {
		text := cellText(cells, idx)
		if text != "" {
			return strings.ToLower(text)
		}
	}
	return ""
}

// ClubOpponentGoals folds the match logs of a season performance page into goals per
// opponent. The first responsive table is the season summary and is ignored, a page
// without any responsive table (no matches played) yields an empty tally.
func ClubOpponentGoals(doc htmlutil.Node, tel telemetry.API) OpponentGoalTally {
	tally := OpponentGoalTally{}

	blocks := doc.All("div.responsive-table")
	if len(blocks) == 0 {
		return tally
	}
	for _, block := range blocks[1:] {
		foldClubMatches(block, tally, tel)
	}

	return tally
}

func foldClubMatches(block htmlutil.Node, tally OpponentGoalTally, tel telemetry.API) {
	body, ok := block.First("tbody")
	if !ok {
		return
	}

	for i, row := range body.All(unclassedRows) {
		cells := row.All("td")
		if len(cells) < clubMatchMinCells {
			continue
		}

		opponent := readOpponent(cells, clubOpponentCells)
		goals, ok := readCount(cells, clubGoalCells)
		if !ok {
			tel.ReportWarning(report_club_goals, ErrMalformedRow, i, opponent)
		}
		tally.add(opponent, goals)
	}
}
