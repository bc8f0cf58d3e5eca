package commands

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"tmscraper/cmd/tmscraper/globals"

	"github.com/spf13/cobra"
)

const rosterSeparator = "==================================================="

type roster struct {
	name string
	// the opponent of the match the roster was named for
	against string
	players []string
}

// the line-ups of Juventus - Milan, Coppa Italia final, 9 May 2018
var sampleRosters = []roster{
	{
		name:    "juventus",
		against: "milan",
		players: []string{
			"Gianluigi Buffon",
			"Juan Cuadrado",
			"Andrea Barzagli",
			"Medhi Benatia",
			"Kwadwo Asamoah",
			"Sami Khedira",
			"Miralem Pjanic",
			"Blaise Matuidi",
			"Paulo Dybala",
			"Mario Mandzukic",
			"Douglas Costa",
		},
	},
	{
		name:    "juventus-bench",
		against: "milan",
		players: []string{
			"Carlo Pinsoglio",
			"Wojciech Szczesny",
			"Mattia De Sciglio",
			"Claudio Marchisio",
			"Gonzalo Higuain",
			"Alex Sandro",
			"Benedikt Howedes",
			"Daniele Rugani",
			"Stephan Lichtsteiner",
			"Stefano Sturaro",
			"Rodrigo Bentancur",
			"Federico Bernardeschi",
		},
	},
	{
		name:    "milan",
		against: "juventus",
		players: []string{
			"Gianluigi Donnarumma",
			"Davide Calabria",
			"Leonardo Bonucci",
			"Alessio Romagnoli",
			"Ricardo Rodriguez",
			"Franck Kessie",
			"Manuel Locatelli",
			"Giacomo Bonaventura",
			"Suso",
			"Patrick Cutrone",
			"Hakan Calhanoglu",
		},
	},
	{
		name:    "milan-bench",
		against: "juventus",
		players: []string{
			"Marco Storari",
			"Antonio Donnarumma",
			"Jose Mauri",
			"Nikola Kalinic",
			"Andre Silva",
			"Fabio Borini",
			"Cristian Zapata",
			"Riccardo Montolivo",
			"Ignazio Abate",
			"Lucas Biglia",
			"Mateo Musacchio",
			"Luca Antonelli",
		},
	},
}

func rosterNames() []string {
	names := make([]string, len(sampleRosters))
	for i, r := range sampleRosters {
		names[i] = r.name
	}
	return names
}

// selectRosters returns the rosters named, every roster when none is.
func selectRosters(names []string) ([]roster, error) {
	if len(names) == 0 {
		return sampleRosters, nil
	}

	var out []roster
	for _, name := range names {
		found := false
		for _, r := range sampleRosters {
			if r.name == name {
				out = append(out, r)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown roster %q, expected one of: %s", name, strings.Join(rosterNames(), ", "))
		}
	}
	return out, nil
}

var (
	rostersSelected []string
	rostersDate     string
	rostersAgainst  string
)

func init() {
	rostersCmd.Flags().StringSliceVar(&rostersSelected, "roster", nil, "The rosters to run: "+strings.Join(rosterNames(), ", ")+". All of them by default.")
	rostersCmd.Flags().StringVar(&rostersDate, "date", "09/05/2018", "The lookup date, DD/MM/YYYY.")
	rostersCmd.Flags().StringVar(&rostersAgainst, "against", "", "Overrides the opponent each roster is checked against.")
	rootCmd.AddCommand(rostersCmd)
}

var rostersCmd = &cobra.Command{
	Use:   "rosters [--roster <name>]... [--date <DD/MM/YYYY>] [--against <club>]",
	Short: "Prints the national and club lines of the built-in sample rosters.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rosters, err := selectRosters(rostersSelected)
		if err != nil {
			return err
		}

		scraper := globals.Get(cmd.Context()).Scraper
		start := time.Now()

		var errs []error
		for _, r := range rosters {
			against := r.against
			if rostersAgainst != "" {
				against = rostersAgainst
			}

			fmt.Fprintln(os.Stdout, rosterSeparator)
			records, err := scraper.Players(cmd.Context(), r.players, rostersDate, against)
			if err != nil {
				slog.Warn("some players of the roster failed", "roster", r.name, "err", err)
				errs = append(errs, err)
			}
			if err := renderLines(os.Stdout, records); err != nil {
				return err
			}
		}
		fmt.Fprintln(os.Stdout, rosterSeparator)

		slog.Info("done", "elapsed", time.Since(start).String())
		return stderrors.Join(errs...)
	},
}
