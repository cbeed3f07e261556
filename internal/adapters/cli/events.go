package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// NewEventsCommand creates the events command
func NewEventsCommand() *cobra.Command {
	var (
		fromTurn int
		limit    int
		shipID   int
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show the session's notification log",
		Long: `Show notifications recorded while the session ran, oldest first.

Examples:
  starfront events --limit 20
  starfront events --ship 1 --from-turn 5`,
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

			// with a ship filter the limit applies after filtering
			fetch := limit
			if shipID > 0 {
				fetch = 0
			}
			notes, err := env.events.Recent(cmd.Context(), fromTurn, fetch)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			shown := 0
			for _, n := range notes {
				if shipID > 0 && n.Ship != shared.ShipID(shipID) {
					continue
				}
				if limit > 0 && shown == limit {
					break
				}
				fmt.Fprintf(out, "[turn %3d] %-6s %s\n", n.Turn, n.Ship, n.Message)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(out, "No events found")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&fromTurn, "from-turn", 0, "Only events from this turn on")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of events (0 = all)")
	cmd.Flags().IntVar(&shipID, "ship", 0, "Only events about this ship")

	return cmd
}
