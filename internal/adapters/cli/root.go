package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath  string
	sessionName string
	verbose     bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "starfront",
		Short: "Starfront CLI - Run and inspect space sandbox sessions",
		Long: `Starfront CLI runs turn-based space sandbox sessions and inspects their state.
Sessions are built from a universe file and persisted to the configured database,
so a later command picks up where the previous one stopped.

Examples:
  starfront sim run --turns 50
  starfront sim act --ship 1 "travel 5 2"
  starfront ship list
  starfront ship export 3
  starfront ledger list --ship 1
  starfront universe describe
  starfront config show`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml, ./configs, /etc/starfront)")
	rootCmd.PersistentFlags().StringVar(&sessionName, "session", "",
		"Session name (overrides simulation.session_name)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewSimCommand())
	rootCmd.AddCommand(NewShipCommand())
	rootCmd.AddCommand(NewLedgerCommand())
	rootCmd.AddCommand(NewEventsCommand())
	rootCmd.AddCommand(NewUniverseCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
