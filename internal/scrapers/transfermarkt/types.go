package transfermarkt

import (
	"strings"
	"time"

	"tmscraper/pkg/htmlutil"
)

// PlayerIdentity is a player as found by a search. ProfilePath is the slug used in
// every player url (ex. "gianluigi-buffon").
type PlayerIdentity struct {
	FullName    string `json:"full_name"`
	PlayerId    string `json:"player_id"`
	ProfilePath string `json:"profile_path"`
}

// ProfileSnapshot holds the biographical fields of a profile page. A field is empty
// when its row was absent.
type ProfileSnapshot struct {
	BirthDate string `json:"birth_date"`
	Position  string `json:"position"`
	// Citizenship is an alpha-3 country code, or the raw country name when it
	// could not be resolved.
	Citizenship string `json:"citizenship"`
}

type TransferRecord struct {
	EffectiveDate time.Time `json:"effective_date"`
	ClubName      string    `json:"club_name"`
}

// SeasonStatRow keeps the raw cell text of a season summary row, numeric parsing is
// left to the caller.
type SeasonStatRow struct {
	Appearances string `json:"appearances"`
	Goals       string `json:"goals"`
	Assists     string `json:"assists"`
	YellowCards string `json:"yellow_cards"`
	RedCards    string `json:"red_cards"`
	Minutes     string `json:"minutes"`
}

func (r SeasonStatRow) Values() []string {
	return []string{r.Appearances, r.Goals, r.Assists, r.YellowCards, r.RedCards, r.Minutes}
}

// SeasonStats maps a competition name to its stat row.
type SeasonStats map[string]SeasonStatRow

// OpponentGoalTally maps a lowercased opponent name to the goals scored against it.
// A present key with 0 means the opponent was faced without scoring.
type OpponentGoalTally map[string]int

// NotFaced is returned by OpponentGoalTally.Against for opponents never faced.
const NotFaced = -1

// Against returns the goals scored against `opponent`, or NotFaced.
func (t OpponentGoalTally) Against(opponent string) int {
	goals, ok := t[strings.ToLower(strings.TrimSpace(opponent))]
	if !ok {
		return NotFaced
	}
	return goals
}

func (t OpponentGoalTally) add(opponent string, goals int) {
	t[opponent] += goals
}

// NationalTotals is the fold of every in-window national team appearance.
type NationalTotals struct {
	Presences int               `json:"presences"`
	Goals     int               `json:"goals"`
	Assists   int               `json:"assists"`
	Opponents OpponentGoalTally `json:"goals_against"`
}

// appearanceRecord is one national team row, it only lives while being folded into NationalTotals.
type appearanceRecord struct {
	opponent string
	goals    int
	assists  int
}

func cellText(cells []htmlutil.Node, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx].Text()
}

// rows of a match log table carry no class, group headers and footers do
const unclassedRows = `tr:not([class]), tr[class=""]`
