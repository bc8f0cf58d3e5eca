package commands

import (
	"os"

	"tmscraper/cmd/tmscraper/globals"
	"tmscraper/internal/scrapers/transfermarkt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var (
	playersDate    string
	playersAgainst string
	playersFormat  string
)

func init() {
	playersCmd.Flags().StringVar(&playersDate, "date", "", "The lookup date, DD/MM/YYYY.")
	playersCmd.Flags().StringVar(&playersAgainst, "against", "", "Also report the goals scored against this opponent.")
	playersCmd.Flags().StringVar(&playersFormat, "format", formatTable, "Output format: table, lines or json.")
	playersCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(playersCmd)
}

var playersCmd = &cobra.Command{
	Use:   "players <name>... --date <DD/MM/YYYY> [--against <club>] [--format table|lines|json]",
	Short: "Prints the record of every player named as of the lookup date.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		render, err := renderer(playersFormat)
		if err != nil {
			return err
		}
		if _, err := transfermarkt.ParseLookupDate(playersDate); err != nil {
			return err
		}

		scraper := globals.Get(cmd.Context()).Scraper
		names := transfermarkt.TrimNames(args)
		records, scrapeErr := scraper.Players(cmd.Context(), names, playersDate, playersAgainst)

		if err := render(os.Stdout, records); err != nil {
			return err
		}
		return batchError(names, records, scrapeErr)
	},
}

// batchError summarizes how many of the (already trimmed) names failed.
func batchError(names []string, records []transfermarkt.PlayerRecord, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "%d of %d players failed", len(names)-len(records), len(names))
}
