package transfermarkt

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	report_client_fetch        = "client.fetch"
	report_profile_extract     = "profile.extract"
	report_profile_citizenship = "profile.citizenship"
	report_transfers_parse     = "transfers.parse"
	report_transfers_resolve   = "transfers.resolve-club"
	report_season_parse        = "season.parse"
	report_club_goals          = "club.opponent-goals"
	report_national_totals     = "national.totals"
	report_scraper_player      = "scraper.player"
	report_scraper_players     = "scraper.players"
)

var (
	tracer = otel.Tracer("tmscraper/scrapers/transfermarkt")
	meter  = otel.Meter("tmscraper/scrapers/transfermarkt")

	composedCounter, _ = meter.Int64Counter(
		"players_composed",
		metric.WithDescription("player records composed successfully"),
	)
	failedCounter, _ = meter.Int64Counter(
		"players_failed",
		metric.WithDescription("players skipped because their record could not be composed"),
	)
)
