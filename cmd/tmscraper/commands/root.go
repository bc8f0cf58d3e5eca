package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"tmscraper/cmd/tmscraper/globals"
	"tmscraper/internal/components/chrono"
	"tmscraper/internal/components/otlp"
	"tmscraper/internal/components/telemetry"
	"tmscraper/internal/config"
	"tmscraper/internal/country"
	"tmscraper/internal/scrapers/transfermarkt"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	dumpDir    string

	otelTelemetry otlp.Telemetry
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "tmscraper.json5", "The config file, searched for upward from the working directory.")
	rootCmd.PersistentFlags().StringVar(&dumpDir, "dump-dir", "", "Write every fetched page to this directory, overrides the config.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output (every request made).")
}

var rootCmd = &cobra.Command{
	Use:           "tmscraper",
	Short:         "tmscraper reads player careers off transfermarkt as of a given date.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if dumpDir != "" {
			cfg.DumpDir = dumpDir
		}

		otelTelemetry, err = otlp.Setup(cmd.Context(), "tmscraper", cfg.Otlp)
		if err != nil {
			return fmt.Errorf("setup telemetry: %w", err)
		}

		tel := telemetry.NewSlogAPI(nil)
		client, err := transfermarkt.NewClient(cfg.ClientOptions(), tel)
		if err != nil {
			return err
		}

		scraper := transfermarkt.NewScraper(client, country.NewResolver(), chrono.NewStandardImpl(), tel)
		cmd.SetContext(globals.Set(cmd.Context(), &globals.Value{Scraper: scraper}))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return otelTelemetry.Shutdown(context.Background())
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
