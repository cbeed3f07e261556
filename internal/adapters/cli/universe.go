package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/starfront-go/internal/adapters/universe"
	"github.com/andrescamacho/starfront-go/internal/infrastructure/config"
	"github.com/andrescamacho/starfront-go/pkg/utils"
)

// NewUniverseCommand creates the universe command with subcommands
func NewUniverseCommand() *cobra.Command {
	var universePath string

	cmd := &cobra.Command{
		Use:   "universe",
		Short: "Inspect universe files",
		Long: `Inspect the universe file a session is built from.

The file is taken from --universe, or simulation.universe_path in the config.

Examples:
  starfront universe describe
  starfront universe validate --universe configs/universe.yaml`,
	}
	cmd.PersistentFlags().StringVar(&universePath, "universe", "", "Universe file")

	resolve := func() (*universe.File, error) {
		cfg := config.LoadConfigOrDefault(configPath)
		if universePath != "" {
			cfg.Simulation.UniversePath = universePath
		}
		return loadUniverse(cfg)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "describe",
		Short: "Describe galaxy, factions, sectors and ships",
		RunE: func(cmd *cobra.Command, args []string) error {
			uf, err := resolve()
			if err != nil {
				return err
			}
			describeUniverse(cmd.OutOrStdout(), uf)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Build the world once to check the file",
		RunE: func(cmd *cobra.Command, args []string) error {
			uf, err := resolve()
			if err != nil {
				return err
			}
			w, err := uf.Build(0)
			if err != nil {
				return fmt.Errorf("invalid universe: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Universe %s is valid: %s, %s\n",
				uf.Galaxy.ID,
				utils.Plural(len(w.Galaxy().Sectors()), "sector"),
				utils.Plural(len(w.Ships()), "ship"))
			return nil
		},
	})

	return cmd
}

func loadUniverse(cfg *config.Config) (*universe.File, error) {
	uf, err := universe.LoadFile(cfg.Simulation.UniversePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load universe: %w", err)
	}
	return uf, nil
}

func describeUniverse(out io.Writer, uf *universe.File) {
	fmt.Fprintf(out, "Galaxy %s (%dx%d)\n", uf.Galaxy.ID, uf.Galaxy.Width, uf.Galaxy.Height)
	fmt.Fprintln(out, strings.Repeat("=", 40))

	fmt.Fprintln(out, "\nFactions:")
	for _, f := range uf.Factions {
		fmt.Fprintf(out, "  %-12s %s\n", f.ID, f.Name)
	}
	for _, r := range uf.Relationships {
		fmt.Fprintf(out, "  %s / %s: %s\n", r.Between[0], r.Between[1], r.Status)
	}

	fmt.Fprintln(out, "\nSectors:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  COORD\tSTAR\tORBITS\tOWNER\tPLANETS\tSTATIONS")
	for _, s := range uf.Sectors {
		fmt.Fprintf(w, "  (%d,%d)\t%s\t%d\t%s\t%s\t%s\n",
			s.X, s.Y, s.Star, s.Orbits, orDash(s.Owner), planetNames(s.Planets), stationNames(s.Stations))
	}
	w.Flush()

	fmt.Fprintln(out, "\nShips:")
	counts := make(map[string]int)
	for _, s := range uf.Ships {
		counts[s.Controller]++
	}
	controllers := make([]string, 0, len(counts))
	for c := range counts {
		controllers = append(controllers, c)
	}
	sort.Strings(controllers)
	for _, c := range controllers {
		fmt.Fprintf(out, "  %-12s %d\n", c, counts[c])
	}
}

func planetNames(planets []universe.PlanetDef) string {
	if len(planets) == 0 {
		return "-"
	}
	names := make([]string, len(planets))
	for i, p := range planets {
		names[i] = fmt.Sprintf("%s@%d", p.Name, p.Orbit)
	}
	return strings.Join(names, ",")
}

func stationNames(stations []universe.StationDef) string {
	if len(stations) == 0 {
		return "-"
	}
	names := make([]string, len(stations))
	for i, s := range stations {
		names[i] = fmt.Sprintf("%s@%d", s.Name, s.Orbit)
	}
	return strings.Join(names, ",")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
