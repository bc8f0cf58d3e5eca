package transfermarkt

import (
	"tmscraper/internal/components/telemetry"
	"tmscraper/pkg/htmlutil"
)

const (
	seasonCompetitionCell = 1
	seasonFirstStatCell   = 2
	seasonStatCells       = 6
)

// ParseSeasonStats reads the summary table of a season performance page. The same
// competition appearing twice keeps the last row.
func ParseSeasonStats(doc htmlutil.Node, tel telemetry.API) SeasonStats {
	stats := SeasonStats{}

	table, ok := doc.First("table.items")
	if !ok {
		tel.ReportWarning(report_season_parse, "no summary table")
		return stats
	}
	body, ok := table.First("tbody")
	if !ok {
		return stats
	}

	for i, row := range body.All("tr") {
		cells := row.All("td")
		if len(cells) < seasonFirstStatCell+seasonStatCells {
			tel.ReportWarning(report_season_parse, ErrMalformedRow, i, len(cells))
			continue
		}

		values := make([]string, seasonStatCells)
		for j := range values {
			values[j] = cells[seasonFirstStatCell+j].Text()
		}
		stats[cells[seasonCompetitionCell].Text()] = SeasonStatRow{
			Appearances: values[0],
			Goals:       values[1],
			Assists:     values[2],
			YellowCards: values[3],
			RedCards:    values[4],
			Minutes:     values[5],
		}
	}

	return stats
}
