package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendwise/spendwise/internal/budget"
	"github.com/spendwise/spendwise/internal/cli"
	"github.com/spendwise/spendwise/internal/common"
	"github.com/spendwise/spendwise/internal/model"
)

// addOptions carries the optional fields of a new transaction.
type addOptions struct {
	Subcategory string
	Tags        []string
	Note        string
	Account     string
	Date        string
}

func addCmd() *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "add <category-id> <amount>",
		Short: "Record a transaction",
		Long: `Record an income or expense transaction against a category.

The amount must be greater than zero; the note is capped at 200 characters.
The date defaults to today and accepts YYYY-MM-DD.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, cleanup, err := initBudget(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			input, err := buildTransactionInput(manager.Categories(), args[0], args[1], opts)
			if err != nil {
				return err
			}

			txn := manager.AddTransaction(input)
			fmt.Printf("%s %s %s on %s\n",
				cli.InfoStyle.Render("Recorded"),
				cli.BoldStyle.Render(cli.FormatAmount(txn.Amount)),
				txn.CategoryID,
				txn.Date.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Subcategory, "subcategory", "", "subcategory label")
	cmd.Flags().StringSliceVar(&opts.Tags, "tag", nil, "tag (repeatable)")
	cmd.Flags().StringVar(&opts.Note, "note", "", "free-text note (max 200 characters)")
	cmd.Flags().StringVar(&opts.Account, "account", "Cash", "account name")
	cmd.Flags().StringVar(&opts.Date, "date", "", "transaction date (YYYY-MM-DD, default today)")

	return cmd
}

// buildTransactionInput validates the editing-boundary rules and assembles
// the core input. The core itself trusts its callers; this is where the
// amount and note rules are enforced.
func buildTransactionInput(categories []model.Category, categoryID, amountStr string, opts addOptions) (budget.TransactionInput, error) {
	var input budget.TransactionInput

	found := false
	for _, c := range categories {
		if c.ID == categoryID {
			found = true
			break
		}
	}
	if !found {
		return input, fmt.Errorf("category %q: %w", categoryID, common.ErrNotFound)
	}

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return input, fmt.Errorf("invalid amount %q: %w", amountStr, common.ErrInvalidAmount)
	}
	if amount <= 0 {
		return input, common.ErrInvalidAmount
	}

	if len(opts.Note) > model.MaxNoteLength {
		return input, fmt.Errorf("%w (%d > %d characters)", common.ErrNoteTooLong, len(opts.Note), model.MaxNoteLength)
	}

	date := time.Now()
	if opts.Date != "" {
		date, err = time.ParseInLocation("2006-01-02", opts.Date, time.Local)
		if err != nil {
			return input, fmt.Errorf("invalid date %q: %w", opts.Date, err)
		}
	}

	// Dedup repeated --tag values, exact match.
	var txn model.Transaction
	for _, tag := range opts.Tags {
		txn.AddTag(tag)
	}

	return budget.TransactionInput{
		CategoryID:  categoryID,
		Subcategory: opts.Subcategory,
		Amount:      amount,
		Tags:        txn.Tags,
		Note:        opts.Note,
		Account:     opts.Account,
		Date:        date,
	}, nil
}
