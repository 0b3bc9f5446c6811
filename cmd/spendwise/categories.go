package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spendwise/spendwise/internal/budget"
	"github.com/spendwise/spendwise/internal/cli"
	"github.com/spendwise/spendwise/internal/common"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage budget categories",
		Long:  `List categories or customize their color and icon.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(customizeCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, cleanup, err := initBudget(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Subcategories"))

			for _, c := range manager.Categories() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					cli.Swatch(c.Color),
					c.ID,
					c.Name,
					c.Type,
					strings.Join(c.Subcategories, ", "))
			}
			return nil
		},
	}
}

func customizeCategoryCmd() *cobra.Command {
	var (
		color      string
		icon       string
		iconFamily string
	)

	cmd := &cobra.Command{
		Use:   "customize <category-id>",
		Short: "Change a category's color or icon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if color == "" && icon == "" && iconFamily == "" {
				return fmt.Errorf("nothing to change: pass --color, --icon, or --icon-family")
			}

			manager, cleanup, err := initBudget(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			id := args[0]
			exists := false
			for _, c := range manager.Categories() {
				if c.ID == id {
					exists = true
					break
				}
			}
			if !exists {
				// The core treats an unknown id as a silent no-op; the
				// presentation layer reports it.
				fmt.Println(cli.ErrorStyle.Render(fmt.Sprintf("Category %q not found.", id)))
				return fmt.Errorf("category %q: %w", id, common.ErrNotFound)
			}

			var update budget.CategoryUpdate
			if color != "" {
				update.Color = &color
			}
			if icon != "" {
				update.Icon = &icon
			}
			if iconFamily != "" {
				update.IconFamily = &iconFamily
			}
			manager.UpdateCategory(id, update)

			fmt.Printf("%s %s\n", cli.InfoStyle.Render("Updated"), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "hex color, e.g. #FF6B6B")
	cmd.Flags().StringVar(&icon, "icon", "", "icon name")
	cmd.Flags().StringVar(&iconFamily, "icon-family", "", "icon family")

	return cmd
}
