package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	turnCommands "github.com/andrescamacho/starfront-go/internal/application/turn/commands"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/infrastructure/config"
	"github.com/andrescamacho/starfront-go/pkg/utils"
)

// NewSimCommand creates the sim command with subcommands
func NewSimCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run simulation turns",
		Long: `Run simulation turns for a session.

Every command restores the session's latest snapshot (or builds the world
from the universe file on first use), runs, then saves a fresh snapshot.

Examples:
  starfront sim run --turns 100 --seed 7
  starfront sim run --new-session --turns 20
  starfront sim act --ship 1 "mine"`,
	}

	cmd.AddCommand(newSimRunCommand())
	cmd.AddCommand(newSimActCommand())

	return cmd
}

// newSimRunCommand creates the sim run subcommand
func newSimRunCommand() *cobra.Command {
	var (
		turns        int
		seed         int64
		universePath string
		tps          float64
		newSession   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a number of turns",
		Long: `Run a number of turns and print a summary.

With --turns 0 the simulation runs until interrupted (Ctrl+C). Flags override
the matching simulation.* config values.

Examples:
  starfront sim run --turns 50
  starfront sim run --turns 0 --tps 2
  starfront sim run --universe configs/universe.yaml --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("turns") {
				cfg.Simulation.Turns = turns
			}
			if flags.Changed("seed") {
				cfg.Simulation.Seed = seed
			}
			if flags.Changed("universe") {
				cfg.Simulation.UniversePath = universePath
			}
			if flags.Changed("tps") {
				cfg.Simulation.TurnsPerSecond = tps
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runSimulation(ctx, cmd.OutOrStdout(), cfg, newSession)
		},
	}

	cmd.Flags().IntVar(&turns, "turns", 10, "Turns to run (0 = until interrupted)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed")
	cmd.Flags().StringVar(&universePath, "universe", "", "Universe file")
	cmd.Flags().Float64Var(&tps, "tps", 0, "Turns per second (0 = unthrottled)")
	cmd.Flags().BoolVar(&newSession, "new-session", false, "Start a fresh session with a generated name")

	return cmd
}

// runSimulation executes the sim run command
func runSimulation(ctx context.Context, out io.Writer, cfg *config.Config, newSession bool) error {
	if newSession {
		uf, err := loadUniverse(cfg)
		if err != nil {
			return err
		}
		cfg.Simulation.SessionName = utils.GenerateSessionName(uf.Galaxy.ID)
	}

	env, err := openEnvironment(ctx, cfg)
	if err != nil {
		return err
	}
	defer env.Close()

	resp, err := env.send(ctx, &turnCommands.RunSimulationCommand{
		Turns:          cfg.Simulation.Turns,
		TurnsPerSecond: cfg.Simulation.TurnsPerSecond,
	})
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	result := resp.(*turnCommands.RunSimulationResponse)

	// the run context may be cancelled already; the snapshot must still land
	saved, err := env.send(context.Background(), &turnCommands.SaveSnapshotCommand{})
	if err != nil {
		return err
	}

	origin := "new"
	if env.restored {
		origin = "restored from snapshot"
	}
	fmt.Fprintf(out, "Session %s (%s)\n", cfg.Simulation.SessionName, origin)
	fmt.Fprintln(out, strings.Repeat("=", 40))
	fmt.Fprintf(out, "  Turns run:        %s\n", utils.Plural(result.TurnsRun, "turn"))
	if result.Cancelled {
		fmt.Fprintf(out, "  Stopped:          interrupted\n")
	}
	fmt.Fprintf(out, "  Battles resolved: %d\n", result.Battles)
	fmt.Fprintf(out, "  Ships destroyed:  %d\n", result.Destroyed)
	fmt.Fprintf(out, "  Elections:        %d\n", result.Elections)
	fmt.Fprintf(out, "  Rejected actions: %d\n", result.Rejections)
	fmt.Fprintf(out, "  Snapshot:         %s saved\n", utils.Plural(saved.(*turnCommands.SaveSnapshotResponse).Ships, "ship"))

	return nil
}

// newSimActCommand creates the sim act subcommand
func newSimActCommand() *cobra.Command {
	var shipID int

	cmd := &cobra.Command{
		Use:   "act <command...>",
		Short: "Queue a player action and run one turn",
		Long: `Queue a textual command for a player-controlled ship and run one turn.

The command is checked immediately; a rejected command does not advance the
turn. Notifications addressed to the ship during the turn are printed.

Examples:
  starfront sim act --ship 1 mine
  starfront sim act --ship 1 buy fuel 5
  starfront sim act --ship 1 travel 5 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if shipID <= 0 {
				return fmt.Errorf("--ship flag is required")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runAct(cmd.Context(), cmd.OutOrStdout(), cfg, shared.ShipID(shipID), strings.Join(args, " "))
		},
	}

	cmd.Flags().IntVar(&shipID, "ship", 0, "Player ship id [required]")

	return cmd
}

// runAct executes the sim act command
func runAct(ctx context.Context, out io.Writer, cfg *config.Config, shipID shared.ShipID, command string) error {
	env, err := openEnvironment(ctx, cfg)
	if err != nil {
		return err
	}
	defer env.Close()

	resp, err := env.send(ctx, &turnCommands.PerformActionCommand{ShipID: shipID, Command: command})
	if err != nil {
		return err
	}
	queued := resp.(*turnCommands.PerformActionResponse)
	if !queued.Queued {
		return fmt.Errorf("%s rejected: %s", queued.Action, queued.Reason)
	}

	advanced, err := env.send(ctx, &turnCommands.AdvanceTurnCommand{})
	if err != nil {
		return err
	}
	rep := advanced.(*turnCommands.AdvanceTurnResponse).Report
	if _, err := env.send(ctx, &turnCommands.SaveSnapshotCommand{}); err != nil {
		return err
	}

	for _, intent := range rep.Intents {
		if intent.Ship != shipID {
			continue
		}
		if intent.Err != nil {
			fmt.Fprintf(out, "%s failed: %v\n", intent.Action, intent.Err)
		} else {
			fmt.Fprintf(out, "%s done\n", intent.Action)
		}
	}
	for _, n := range env.notes.Notifications {
		if n.Ship == shipID {
			fmt.Fprintf(out, "  [turn %d] %s\n", n.Turn, n.Message)
		}
	}
	return nil
}
