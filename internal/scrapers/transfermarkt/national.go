package transfermarkt

import (
	"strings"

	"tmscraper/internal/components/telemetry"
	"tmscraper/pkg/htmlutil"
)

const (
	nationalMinCells     = 6
	nationalDateCell     = 2
	nationalOpponentCell = 6
	nationalGoalsCell    = 9
	nationalAssistsCell  = 10
)

// NationalTeamTotals folds the national team match log (the last responsive table of
// the page) into presences, goals, assists and goals per opponent.
//
// Rows are expected in date order, the fold stops for good at the first row outside
// the [from, to] window (see InWindow) even if later rows would be inside it.
func NationalTeamTotals(doc htmlutil.Node, from, to string, tel telemetry.API) NationalTotals {
	totals := NationalTotals{Opponents: OpponentGoalTally{}}

	blocks := doc.All("div.responsive-table")
	if len(blocks) == 0 {
		return totals
	}
	body, ok := blocks[len(blocks)-1].First("tbody")
	if !ok {
		return totals
	}

	rows := body.All(unclassedRows)
	if len(rows) == 0 {
		return totals
	}

	// the first unclassed row is what is left of the header
	for i, row := range rows[1:] {
		cells := row.All("td")
		if len(cells) < nationalMinCells {
			continue
		}

		dateText := cellText(cells, nationalDateCell)
		inWindow, err := InWindow(dateText, from, to)
		if err != nil {
			tel.ReportWarning(report_national_totals, ErrMalformedRow, i, err)
			continue
		}
		if !inWindow {
			tel.ReportDebug(report_national_totals, "stopping at out of window match", dateText)
			break
		}

		appearance := readAppearance(cells, tel)
		totals.Opponents.add(appearance.opponent, appearance.goals)
		totals.Goals += appearance.goals
		totals.Assists += appearance.assists
		totals.Presences++
	}

	return totals
}

func readAppearance(cells []htmlutil.Node, tel telemetry.API) appearanceRecord {
	goals, ok := readCount(cells, []int{nationalGoalsCell})
	if !ok {
		tel.ReportWarning(report_national_totals, ErrMalformedRow, "goals", cellText(cells, nationalGoalsCell))
	}
	assists, ok := readCount(cells, []int{nationalAssistsCell})
	if !ok {
		tel.ReportWarning(report_national_totals, ErrMalformedRow, "assists", cellText(cells, nationalAssistsCell))
	}
	return appearanceRecord{
		opponent: strings.ToLower(cellText(cells, nationalOpponentCell)),
		goals:    goals,
		assists:  assists,
	}
}
