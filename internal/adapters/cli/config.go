package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/starfront-go/internal/adapters/persistence"
	"github.com/andrescamacho/starfront-go/internal/infrastructure/config"
	"github.com/andrescamacho/starfront-go/internal/infrastructure/database"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect Starfront configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (SF_* prefix, plus DATABASE_URL)
2. Config file (config.yaml)
3. Default values

Examples:
  starfront config show
  starfront config sessions`,
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSessionsCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long: `Display the current configuration settings.

Example:
  starfront config show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := loadConfig()
			if err != nil {
				fmt.Fprintf(out, "Warning: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}

			fmt.Fprintln(out, "Starfront Configuration")
			fmt.Fprintln(out, "=======================")

			fmt.Fprintln(out, "\nDatabase:")
			fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.Type == "sqlite":
				fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
			case cfg.Database.URL != "":
				fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
			default:
				fmt.Fprintf(out, "  Host:             %s\n", cfg.Database.Host)
				fmt.Fprintf(out, "  Port:             %d\n", cfg.Database.Port)
				fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
				fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
			}
			fmt.Fprintf(out, "  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)

			fmt.Fprintln(out, "\nSimulation:")
			fmt.Fprintf(out, "  Universe:         %s\n", cfg.Simulation.UniversePath)
			fmt.Fprintf(out, "  Session:          %s\n", cfg.Simulation.SessionName)
			fmt.Fprintf(out, "  Seed:             %d\n", cfg.Simulation.Seed)
			fmt.Fprintf(out, "  Turns:            %d\n", cfg.Simulation.Turns)
			fmt.Fprintf(out, "  Turns/second:     %g\n", cfg.Simulation.TurnsPerSecond)
			fmt.Fprintf(out, "  Elections every:  %d turns\n", cfg.Simulation.ElectionInterval)
			fmt.Fprintf(out, "  Snapshot every:   %d turns\n", cfg.Simulation.SnapshotEvery)

			fmt.Fprintln(out, "\nMetrics:")
			fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
			fmt.Fprintf(out, "  Endpoint:         %s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)

			fmt.Fprintln(out, "\nSpectator:")
			fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Spectator.Enabled)
			fmt.Fprintf(out, "  Address:          %s\n", cfg.Spectator.Address)

			fmt.Fprintln(out, "\nDaemon:")
			fmt.Fprintf(out, "  PID File:         %s\n", cfg.Daemon.PIDFile)
			fmt.Fprintf(out, "  Shutdown Timeout: %s\n", cfg.Daemon.ShutdownTimeout)

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)

			return nil
		},
	}

	return cmd
}

// newConfigSessionsCommand creates the config sessions subcommand
func newConfigSessionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List sessions with a stored snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.NewConnection(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close(db)
			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			sessions, err := persistence.NewGormShipSnapshotRepository(db).Sessions(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No sessions found")
				return nil
			}
			for _, s := range sessions {
				marker := " "
				if s == cfg.Simulation.SessionName {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, s)
			}
			return nil
		},
	}
}

// maskPassword hides the password of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
