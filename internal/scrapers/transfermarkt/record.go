package transfermarkt

import (
	"fmt"
	"sort"
	"strings"
)

// PlayerRecord is everything known about one player as of a lookup date.
type PlayerRecord struct {
	PlayerIdentity
	ProfileSnapshot

	LookupDate string `json:"lookup_date"`
	// Age and Tenure are humanized, ex. "40 years ago", "11 months ago"
	Age       string            `json:"age"`
	Club      string            `json:"club"`
	Tenure    string            `json:"tenure"`
	Season    SeasonStats       `json:"season"`
	ClubGoals OpponentGoalTally `json:"club_goals_against"`
	National  NationalTotals    `json:"national"`

	// Opponent is the opponent of interest, the *GoalsAgainst fields are NotFaced
	// when it is empty or was never faced.
	Opponent             string `json:"opponent,omitempty"`
	ClubGoalsAgainst     int    `json:"club_goals_against_opponent"`
	NationalGoalsAgainst int    `json:"national_goals_against_opponent"`
}

// NationalLine renders name|presences|goals|assists|goals against the opponent.
func (r PlayerRecord) NationalLine() string {
	return fmt.Sprintf(
		"%s|%d|%d|%d|%d",
		r.FullName,
		r.National.Presences,
		r.National.Goals,
		r.National.Assists,
		r.NationalGoalsAgainst,
	)
}

// ClubLine renders name|age|birth date|citizenship|club|tenure|goals against the opponent|season|
func (r PlayerRecord) ClubLine() string {
	return fmt.Sprintf(
		"%s|%s|%s|%s|%s|%s|%d|%s|",
		r.FullName,
		r.Age,
		r.BirthDate,
		r.Citizenship,
		r.Club,
		r.Tenure,
		r.ClubGoalsAgainst,
		r.Season.String(),
	)
}

func (r PlayerRecord) Lines() []string {
	return []string{r.NationalLine(), r.ClubLine()}
}

// Competitions returns the competition names sorted alphabetically.
func (s SeasonStats) Competitions() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders {competition: apps goals assists yellow red minutes, ...}.
func (s SeasonStats) String() string {
	parts := make([]string, 0, len(s))
	for _, name := range s.Competitions() {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(s[name].Values(), " ")))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
