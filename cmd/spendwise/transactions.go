package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spendwise/spendwise/internal/cli"
)

func transactionsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List recorded transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, cleanup, err := initBudget(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			txns := manager.Transactions()
			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions recorded yet. Use 'spendwise add' to record one."))
				return nil
			}
			if limit > 0 && len(txns) > limit {
				txns = txns[:limit]
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Subcategory"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Account"),
				cli.BoldStyle.Render("Tags"))

			for _, t := range txns {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.Date.Format("2006-01-02"),
					t.CategoryID,
					t.Subcategory,
					cli.FormatAmount(t.Amount),
					t.Account,
					strings.Join(t.Tags, ","))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of transactions to show (0 for all)")

	return cmd
}
