// Package service defines the contract the presentation layer depends on.
package service

import (
	"github.com/spendwise/spendwise/internal/budget"
	"github.com/spendwise/spendwise/internal/model"
)

// Budget is the entire surface presentation collaborators (CLI, TUI) are
// permitted to use. *budget.Manager implements it.
type Budget interface {
	// Read accessors. Until IsLoading reports false, reads return empty
	// data and callers should withhold rendering.
	Categories() []model.Category
	Transactions() []model.Transaction
	TimePeriod() model.TimePeriod
	IsLoading() bool

	// Mutators. In-memory effects are visible to the next read
	// immediately; persistence is best-effort and unreported.
	SetTimePeriod(period model.TimePeriod)
	AddTransaction(input budget.TransactionInput) model.Transaction
	UpdateCategory(id string, update budget.CategoryUpdate)

	// Derived totals over the current period.
	CategoryTotal(categoryID string) float64
	TotalExpenses() float64
	TotalIncome() float64
	Balance() float64
}
