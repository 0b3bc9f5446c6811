package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spendwise/spendwise/internal/cli"
	"github.com/spendwise/spendwise/internal/model"
)

func dashboardCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show period totals per category",
		Long:  `Print income, expenses, balance, and per-category totals for the selected period.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := model.ParseTimePeriod(period)
			if err != nil {
				return err
			}

			manager, cleanup, err := initBudget(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			manager.SetTimePeriod(p)

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("spendwise: this %s", p)))
			fmt.Printf("Income   %s\n", cli.IncomeStyle.Render(cli.FormatAmount(manager.TotalIncome())))
			fmt.Printf("Expenses %s\n", cli.ExpenseStyle.Render(cli.FormatAmount(manager.TotalExpenses())))
			fmt.Printf("Balance  %s\n\n", cli.BoldStyle.Render(cli.FormatAmount(manager.Balance())))

			categories := manager.Categories()
			printSection := func(title string, categoryType model.CategoryType) {
				fmt.Println(cli.BoldStyle.Render(title))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, c := range categories {
					if c.Type != categoryType {
						continue
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n",
						cli.Swatch(c.Color),
						c.Name,
						cli.FormatAmount(manager.CategoryTotal(c.ID)))
				}
				w.Flush()
				fmt.Println()
			}

			printSection("Expenses", model.CategoryTypeExpense)
			printSection("Income", model.CategoryTypeIncome)
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", string(model.PeriodMonth), "aggregation period (week, month, year)")

	return cmd
}
