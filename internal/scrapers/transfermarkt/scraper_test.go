package transfermarkt

import (
	"context"
	"testing"
	"time"

	"tmscraper/internal/components/chrono"
	"tmscraper/internal/components/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var testPages = map[string]string{
	"/schnellsuche/ergebnis/schnellsuche?query=Gianluigi+Buffon":  "search.html",
	"/gianluigi-buffon/nationalmannschaft/spieler/5023":           "national.html",
	"/gianluigi-buffon/profil/spieler/5023":                       "profile.html",
	"/gianluigi-buffon/leistungsdaten/spieler/5023/0?saison=2017": "performance.html",

	"/schnellsuche/ergebnis/schnellsuche?query=Patrick+Cutrone":     "search_other.html",
	"/patrick-cutrone/nationalmannschaft/spieler/293385":            "search_no_table.html",
	"/patrick-cutrone/profil/spieler/293385":                        "profile_other.html",
	"/patrick-cutrone/leistungsdaten/spieler/293385/0?saison=2017": "performance_empty.html",

	"/schnellsuche/ergebnis/schnellsuche?query=Nobody": "search_empty.html",

	"/edin-dzeko/profil/spieler/34": "profile_bosnia.html",
}

func newTestScraper(t testing.TB) (Scraper, *fixtureFetcher, *telemetry.MemoryAPI) {
	t.Helper()

	fetcher := &fixtureFetcher{pages: testPages}
	tel := telemetry.NewMemoryAPI()
	clock := chrono.NewFixedImpl(time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC))
	return NewScraper(fetcher, testCountries, clock, tel), fetcher, tel
}

func TestScraperPlayer(t *testing.T) {
	scraper, _, _ := newTestScraper(t)

	records, err := scraper.Players(context.Background(), []string{"Gianluigi Buffon"}, "09/05/2018", "Milan")
	require.NoError(t, err)
	require.Len(t, records, 1)
	record := records[0]

	require.Equal(t, PlayerIdentity{
		FullName:    "Gianluigi Buffon",
		PlayerId:    "5023",
		ProfilePath: "gianluigi-buffon",
	}, record.PlayerIdentity)
	require.Equal(t, ProfileSnapshot{
		BirthDate:   "Jan 28, 1978",
		Position:    "Goalkeeper",
		Citizenship: "ITA",
	}, record.ProfileSnapshot)

	require.Equal(t, "09/05/2018", record.LookupDate)
	require.Equal(t, "40 years ago", record.Age)
	require.Equal(t, "ClubB", record.Club)
	require.Equal(t, "11 months ago", record.Tenure)
	require.Len(t, record.Season, 3)

	if diff := cmp.Diff(OpponentGoalTally{"milan": 3, "napoli": 2, "lazio": 0}, record.ClubGoals); diff != "" {
		t.Fatal(diff)
	}
	require.Equal(t, 3, record.National.Presences)
	require.Equal(t, 3, record.National.Goals)
	require.Equal(t, 2, record.National.Assists)

	require.Equal(t, "Milan", record.Opponent)
	require.Equal(t, 3, record.ClubGoalsAgainst)
	require.Equal(t, NotFaced, record.NationalGoalsAgainst)

	require.Equal(t, "Gianluigi Buffon|3|3|2|-1", record.NationalLine())
	require.Equal(
		t,
		"Gianluigi Buffon|40 years ago|Jan 28, 1978|ITA|ClubB|11 months ago|3|"+
			"{Champions League: 7 0 0 - 1 630', Coppa Italia: 1 0 0 - - 90', Serie A: 21 0 0 1 - 1.890'}|",
		record.ClubLine(),
	)
}

func TestScraperPlayerWithoutMatches(t *testing.T) {
	scraper, fetcher, _ := newTestScraper(t)

	lookup := date(2018, time.May, 9)
	record, err := scraper.Player(context.Background(), "Patrick Cutrone", lookup, "")
	require.NoError(t, err)

	expected := PlayerRecord{
		PlayerIdentity: PlayerIdentity{
			FullName:    "Patrick Cutrone",
			PlayerId:    "293385",
			ProfilePath: "patrick-cutrone",
		},
		ProfileSnapshot: ProfileSnapshot{
			BirthDate:   "Jan 3, 1998 (20)",
			Position:    "Centre-Forward",
			Citizenship: "Atlantis",
		},
		LookupDate:           "09/05/2018",
		Age:                  "20 years ago",
		Club:                 "AC Milan",
		Tenure:               "10 months ago",
		ClubGoalsAgainst:     NotFaced,
		NationalGoalsAgainst: NotFaced,
	}
	diff := cmp.Diff(
		expected, record,
		cmpopts.IgnoreFields(PlayerRecord{}, "Season"),
		cmpopts.EquateEmpty(),
	)
	if diff != "" {
		t.Fatal(diff)
	}
	require.Contains(t, record.Season, "Serie A")
	require.Equal(t, "Patrick Cutrone|0|0|0|-1", record.NationalLine())

	require.Equal(t, []string{
		"/schnellsuche/ergebnis/schnellsuche?query=Patrick+Cutrone",
		"/patrick-cutrone/nationalmannschaft/spieler/293385",
		"/patrick-cutrone/profil/spieler/293385",
		"/patrick-cutrone/leistungsdaten/spieler/293385/0?saison=2017",
	}, fetcher.requested)
}

func TestScraperPlayersContinuesPastFailures(t *testing.T) {
	scraper, _, tel := newTestScraper(t)

	records, err := scraper.Players(
		context.Background(),
		[]string{"Gianluigi Buffon", "Nobody", "Patrick Cutrone"},
		"09/05/2018",
		"",
	)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorContains(t, err, "Nobody")

	require.Len(t, records, 2)
	require.Equal(t, "Gianluigi Buffon", records[0].FullName)
	require.Equal(t, "Patrick Cutrone", records[1].FullName)

	require.Len(t, tel.Reports(telemetry.KindBroken), 1)
	counts := tel.Reports(telemetry.KindCount)
	require.Len(t, counts, 1)
	require.Equal(t, []any{int64(2)}, counts[0].Params)
}

func TestScraperPlayersInvalidLookupDate(t *testing.T) {
	scraper, fetcher, _ := newTestScraper(t)

	records, err := scraper.Players(context.Background(), []string{"Gianluigi Buffon"}, "2018-05-09", "")
	require.Error(t, err)
	require.Empty(t, records)
	require.Empty(t, fetcher.requested)
}

func TestScraperClubUnresolved(t *testing.T) {
	scraper, _, _ := newTestScraper(t)

	player := PlayerIdentity{FullName: "Edin Dzeko", PlayerId: "34", ProfilePath: "edin-dzeko"}
	_, err := scraper.Club(context.Background(), player, date(2018, time.May, 9))
	require.ErrorIs(t, err, ErrUnresolved)
}

func TestScraperFetchFailure(t *testing.T) {
	scraper, _, _ := newTestScraper(t)

	_, err := scraper.Locate(context.Background(), "Someone Else")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestTrimNames(t *testing.T) {
	require.Equal(
		t,
		[]string{"Gianluigi Buffon", "Giorgio Chiellini"},
		TrimNames([]string{" Gianluigi Buffon ", "", "  ", "Giorgio Chiellini"}),
	)
	require.Empty(t, TrimNames(nil))
}
