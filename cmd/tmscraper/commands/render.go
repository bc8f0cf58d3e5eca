package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"tmscraper/internal/scrapers/transfermarkt"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	formatTable = "table"
	formatLines = "lines"
	formatJson  = "json"
)

type renderFunc func(out io.Writer, records []transfermarkt.PlayerRecord) error

func renderer(format string) (renderFunc, error) {
	switch format {
	case formatTable:
		return renderTable, nil
	case formatLines:
		return renderLines, nil
	case formatJson:
		return renderJson, nil
	default:
		return nil, fmt.Errorf("unknown format %q, expected one of: %s, %s, %s", format, formatTable, formatLines, formatJson)
	}
}

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

// againstText renders a goals-against count, a dash for opponents never faced.
func againstText(goals int) string {
	if goals == transfermarkt.NotFaced {
		return "-"
	}
	return strconv.Itoa(goals)
}

func renderTable(out io.Writer, records []transfermarkt.PlayerRecord) error {
	t := newTable(out)
	t.AppendHeader(table.Row{
		"Player", "Age", "Born", "Citizenship", "Position",
		"Club", "Since", "Vs (club)",
		"Caps", "Goals", "Assists", "Vs (national)",
	})
	for _, r := range records {
		t.AppendRow(table.Row{
			r.FullName, r.Age, r.BirthDate, r.Citizenship, r.Position,
			r.Club, r.Tenure, againstText(r.ClubGoalsAgainst),
			r.National.Presences, r.National.Goals, r.National.Assists, againstText(r.NationalGoalsAgainst),
		})
	}
	t.Render()
	return nil
}

func renderLines(out io.Writer, records []transfermarkt.PlayerRecord) error {
	for _, r := range records {
		for _, line := range r.Lines() {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderJson(out io.Writer, records []transfermarkt.PlayerRecord) error {
	if records == nil {
		records = []transfermarkt.PlayerRecord{}
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
