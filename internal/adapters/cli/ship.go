package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	fleetQueries "github.com/andrescamacho/starfront-go/internal/application/fleet/queries"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// NewShipCommand creates the ship command with subcommands
func NewShipCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ship",
		Short: "Inspect ships of a session",
		Long: `Inspect ships of a session.

Ships are read from the session's latest snapshot, or from the universe file
when the session has never been run.

Examples:
  starfront ship list
  starfront ship list --faction federation --all
  starfront ship show 2
  starfront ship export 2 > prospector.yaml`,
	}

	cmd.AddCommand(newShipListCommand())
	cmd.AddCommand(newShipShowCommand())
	cmd.AddCommand(newShipExportCommand())

	return cmd
}

// newShipListCommand creates the ship list subcommand
func newShipListCommand() *cobra.Command {
	var (
		all       bool
		factionID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ships",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			env, err := openEnvironment(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer env.Close()

			resp, err := env.send(cmd.Context(), &fleetQueries.ListShipsQuery{
				IncludeDestroyed: all,
				Faction:          shared.FactionID(factionID),
			})
			if err != nil {
				return err
			}
			printShipTable(cmd.OutOrStdout(), resp.(*fleetQueries.ListShipsResponse).Ships)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include destroyed ships")
	cmd.Flags().StringVar(&factionID, "faction", "", "Only members of this faction")

	return cmd
}

func printShipTable(out io.Writer, ships []fleetQueries.ShipDTO) {
	if len(ships) == 0 {
		fmt.Fprintln(out, "No ships found")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCONTROL\tROLE\tFACTION\tCREDITS\tLOCATION\tSTATUS")
	for _, s := range ships {
		status := "active"
		if s.Destroyed {
			status = "destroyed"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			s.ID, s.Name, s.Controller, s.Specialization, orDash(s.Faction), s.Credits, s.Location, status)
	}
	w.Flush()
}

// newShipShowCommand creates the ship show subcommand
func newShipShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <ship-id>",
		Short: "Show one ship in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := getShip(cmd, args[0])
			if err != nil {
				return err
			}
			printShip(cmd.OutOrStdout(), resp.Ship)
			return nil
		},
	}
}

func printShip(out io.Writer, s fleetQueries.ShipDTO) {
	fmt.Fprintf(out, "%s (#%d)\n", s.Name, s.ID)
	fmt.Fprintln(out, strings.Repeat("=", 40))
	fmt.Fprintf(out, "  Controller:       %s\n", s.Controller)
	fmt.Fprintf(out, "  Specialization:   %s\n", s.Specialization)
	fmt.Fprintf(out, "  Faction:          %s\n", orDash(s.Faction))
	fmt.Fprintf(out, "  Credits:          %d\n", s.Credits)
	fmt.Fprintf(out, "  Location:         %s\n", s.Location)
	if s.Destination != "" {
		fmt.Fprintf(out, "  Destination:      %s\n", s.Destination)
	}
	if s.Destroyed {
		fmt.Fprintf(out, "  Status:           destroyed\n")
	}

	fmt.Fprintln(out, "\nResources:")
	kinds := make([]string, 0, len(s.Resources))
	for k := range s.Resources {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		r := s.Resources[k]
		fmt.Fprintf(out, "  %-8s %3d / %d\n", k, r.Amount, r.Capacity)
	}

	fmt.Fprintln(out, "\nModules:")
	if len(s.Modules) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, m := range s.Modules {
		var flags []string
		if m.Active {
			flags = append(flags, "active")
		}
		if m.Damaged {
			flags = append(flags, "damaged")
		}
		if len(flags) == 0 {
			fmt.Fprintf(out, "  %s\n", m.Name)
		} else {
			fmt.Fprintf(out, "  %s (%s)\n", m.Name, strings.Join(flags, ", "))
		}
	}

	if len(s.Reputation) > 0 {
		fmt.Fprintln(out, "\nReputation:")
		factions := make([]string, 0, len(s.Reputation))
		for f := range s.Reputation {
			factions = append(factions, f)
		}
		sort.Strings(factions)
		for _, f := range factions {
			fmt.Fprintf(out, "  %-12s %d\n", f, s.Reputation[f])
		}
	}
}

// newShipExportCommand creates the ship export subcommand
func newShipExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <ship-id>",
		Short: "Print a ship's persisted property bag as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := getShip(cmd, args[0])
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(map[string]string(resp.Bag)); err != nil {
				return fmt.Errorf("failed to encode ship: %w", err)
			}
			return enc.Close()
		},
	}
}

func getShip(cmd *cobra.Command, arg string) (*fleetQueries.GetShipResponse, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid ship id %q", arg)
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	env, err := openEnvironment(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}
	defer env.Close()

	resp, err := env.send(cmd.Context(), &fleetQueries.GetShipQuery{ShipID: shared.ShipID(id)})
	if err != nil {
		return nil, err
	}
	return resp.(*fleetQueries.GetShipResponse), nil
}
