// scraper.go composes the extraction functions into player records.

package transfermarkt

import (
	"context"
	stderrors "errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tmscraper/internal/components/assert"
	"tmscraper/internal/components/chrono"
	"tmscraper/internal/components/telemetry"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Scraper struct {
	fetcher   Fetcher
	countries CountryResolver
	time      chrono.API
	tel       telemetry.API
}

func NewScraper(fetcher Fetcher, countries CountryResolver, time chrono.API, tel telemetry.API) Scraper {
	assert.NotNil(fetcher, "fetcher")
	assert.NotNil(countries, "country resolver")
	assert.NotNil(time, "time")
	assert.NotNil(tel, "telemetry")

	return Scraper{
		fetcher:   fetcher,
		countries: countries,
		time:      time,
		tel:       telemetry.NewScopedAPI("transfermarkt", tel),
	}
}

// ClubData is what the club side pages say about a player as of a lookup date.
type ClubData struct {
	Profile   ProfileSnapshot
	Transfer  TransferRecord
	Tenure    string
	Season    SeasonStats
	Opponents OpponentGoalTally
}

// Players composes a record for every name, in input order. lookupDate is DD/MM/YYYY,
// against is the optional opponent of interest.
//
// A player that cannot be composed is left out of the result and its error is joined
// into the returned error, the rest of the batch is still processed.
func (s Scraper) Players(ctx context.Context, names []string, lookupDate, against string) ([]PlayerRecord, error) {
	ctx, span := tracer.Start(ctx, "scraper:Players", trace.WithAttributes(
		attribute.Int("players", len(names)),
		attribute.String("lookup_date", lookupDate),
	))
	defer span.End()

	lookup, err := ParseLookupDate(lookupDate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid lookup date")
		return nil, err
	}

	var records []PlayerRecord
	var errs []error
	for _, name := range names {
		record, err := s.Player(ctx, name, lookup, against)
		if err != nil {
			s.tel.ReportBroken(report_scraper_player, err, name)
			failedCounter.Add(ctx, 1)
			errs = append(errs, errors.Wrapf(err, "player %q", name))
			continue
		}
		composedCounter.Add(ctx, 1)
		records = append(records, record)
	}

	s.tel.ReportCount(report_scraper_players, int64(len(records)))
	if len(errs) > 0 {
		span.SetStatus(codes.Error, "some players could not be composed")
	}
	return records, stderrors.Join(errs...)
}

// Player composes the record of a single player.
func (s Scraper) Player(ctx context.Context, name string, lookup time.Time, against string) (PlayerRecord, error) {
	ctx, span := tracer.Start(ctx, "scraper:Player", trace.WithAttributes(
		attribute.String("name", name),
	))
	defer span.End()

	fail := func(err error, msg string) (PlayerRecord, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, msg)
		return PlayerRecord{}, err
	}

	player, err := s.Locate(ctx, name)
	if err != nil {
		return fail(err, "locate")
	}

	national, err := s.NationalTeam(ctx, player, "", lookup.Format(LookupDateLayout))
	if err != nil {
		return fail(err, "national team")
	}

	club, err := s.Club(ctx, player, lookup)
	if err != nil {
		return fail(err, "club")
	}

	birthDate, err := parseLongDate(club.Profile.BirthDate)
	if err != nil {
		return fail(errors.Wrapf(errors.Mark(err, ErrUnresolved), "age of %q", name), "age")
	}

	record := PlayerRecord{
		PlayerIdentity:       player,
		ProfileSnapshot:      club.Profile,
		LookupDate:           lookup.Format(LookupDateLayout),
		Age:                  chrono.Humanize(s.time.Now(), birthDate, lookup),
		Club:                 club.Transfer.ClubName,
		Tenure:               club.Tenure,
		Season:               club.Season,
		ClubGoals:            club.Opponents,
		National:             national,
		Opponent:             against,
		ClubGoalsAgainst:     NotFaced,
		NationalGoalsAgainst: NotFaced,
	}
	if against != "" {
		record.ClubGoalsAgainst = club.Opponents.Against(against)
		record.NationalGoalsAgainst = national.Opponents.Against(against)
	}
	return record, nil
}

// Locate finds the first search result for `name`.
func (s Scraper) Locate(ctx context.Context, name string) (PlayerIdentity, error) {
	doc, err := s.fetcher.Document(ctx, searchPath(), url.Values{"query": {name}})
	if err != nil {
		return PlayerIdentity{}, err
	}
	players, err := LocatePlayer(name, doc)
	if err != nil {
		return PlayerIdentity{}, err
	}
	return players[0], nil
}

// NationalTeam reads the national team totals of a player inside [from, to],
// see InWindow for the exact bound semantics.
func (s Scraper) NationalTeam(ctx context.Context, player PlayerIdentity, from, to string) (NationalTotals, error) {
	doc, err := s.fetcher.Document(ctx, nationalTeamPath(player), nil)
	if err != nil {
		return NationalTotals{}, err
	}
	return NationalTeamTotals(doc, from, to, s.tel), nil
}

// Club reads the profile, the transfer history and the performance of the season
// before the lookup year.
func (s Scraper) Club(ctx context.Context, player PlayerIdentity, lookup time.Time) (ClubData, error) {
	profileDoc, err := s.fetcher.Document(ctx, profilePath(player), nil)
	if err != nil {
		return ClubData{}, err
	}

	profile := ExtractProfile(profileDoc, s.countries, s.tel)
	transfer, err := ResolveClub(ParseTransfers(profileDoc, s.tel), lookup)
	if err != nil {
		s.tel.ReportBroken(report_transfers_resolve, err, player.FullName, player.PlayerId)
		return ClubData{}, err
	}

	season := strconv.Itoa(lookup.Year() - 1)
	performanceDoc, err := s.fetcher.Document(ctx, performancePath(player), url.Values{"saison": {season}})
	if err != nil {
		return ClubData{}, err
	}

	return ClubData{
		Profile:   profile,
		Transfer:  transfer,
		Tenure:    chrono.Humanize(s.time.Now(), transfer.EffectiveDate, lookup),
		Season:    ParseSeasonStats(performanceDoc, s.tel),
		Opponents: ClubOpponentGoals(performanceDoc, s.tel),
	}, nil
}

// TrimNames drops blank entries and surrounding whitespace from a list of player names.
func TrimNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}
