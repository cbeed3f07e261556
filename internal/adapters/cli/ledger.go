package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	ledgerQueries "github.com/andrescamacho/starfront-go/internal/application/ledger/queries"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// NewLedgerCommand creates the ledger command with subcommands
func NewLedgerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "View ship credit transactions",
		Long: `View the credit transactions recorded for ships of a session.

Every credit change (trades, repairs, claims, salvage) is journaled with the
balance before and after.

Examples:
  starfront ledger list --ship 1
  starfront ledger list --ship 2 --type SELL_RESOURCE --limit 10`,
	}

	cmd.AddCommand(newLedgerListCommand())

	return cmd
}

// newLedgerListCommand creates the ledger list subcommand
func newLedgerListCommand() *cobra.Command {
	var (
		shipID   int
		txType   string
		fromTurn int
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions of a ship",
		Long: `List transactions of a ship, newest first.

Examples:
  starfront ledger list --ship 1
  starfront ledger list --ship 1 --from-turn 20 --limit 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shipID <= 0 {
				return fmt.Errorf("--ship flag is required")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			env, err := openEnvironment(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer env.Close()

			query := &ledgerQueries.GetTransactionsQuery{
				ShipID:   shared.ShipID(shipID),
				FromTurn: fromTurn,
				Limit:    limit,
				Offset:   offset,
			}
			if txType != "" {
				query.TransactionType = &txType
			}
			resp, err := env.send(cmd.Context(), query)
			if err != nil {
				return err
			}
			result := resp.(*ledgerQueries.GetTransactionsResponse)

			out := cmd.OutOrStdout()
			if len(result.Transactions) == 0 {
				fmt.Fprintln(out, "No transactions found")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TURN\tTYPE\tAMOUNT\tBALANCE\tCOUNTERPARTY\tDESCRIPTION")
			for _, tx := range result.Transactions {
				fmt.Fprintf(w, "%d\t%s\t%+d\t%d\t%s\t%s\n",
					tx.Turn, tx.Type, tx.Amount, tx.BalanceAfter, orDash(tx.Counterparty), tx.Description)
			}
			w.Flush()
			fmt.Fprintf(out, "\nNet: %+d credits\n", result.Net)
			return nil
		},
	}

	cmd.Flags().IntVar(&shipID, "ship", 0, "Ship id [required]")
	cmd.Flags().StringVar(&txType, "type", "", "Filter by transaction type")
	cmd.Flags().IntVar(&fromTurn, "from-turn", 0, "Only transactions from this turn on")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of transactions to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of transactions to skip")

	return cmd
}
