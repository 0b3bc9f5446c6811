package storage

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/spendwise/spendwise/internal/model"
)

// Storage keys. The "@spendwise_" prefix matches previously persisted data
// and must not change.
const (
	categoriesKey   = "@spendwise_categories"
	transactionsKey = "@spendwise_transactions"
)

// Gateway translates between the in-memory collections and their stored JSON
// form. It is stateless; every call goes straight through to the store.
//
// Loads never fail: a missing or unreadable entry degrades to the default
// seed set (categories) or an empty list (transactions) so startup is never
// blocked by storage corruption. The cost is that corrupt data is silently
// discarded; that tradeoff is deliberate.
type Gateway struct {
	store KVStore
}

// NewGateway creates a gateway over the given store.
func NewGateway(store KVStore) *Gateway {
	return &Gateway{store: store}
}

// LoadCategories reads the stored category collection. A missing entry
// returns the default seed set and writes it back so subsequent reads are
// stable; an unreadable or undecodable entry returns the defaults without
// writing.
func (g *Gateway) LoadCategories(ctx context.Context) []model.Category {
	data, ok, err := g.store.Get(ctx, categoriesKey)
	if err != nil {
		slog.Warn("failed to read categories, using defaults", "error", err)
		return model.DefaultCategories()
	}
	if !ok {
		defaults := model.DefaultCategories()
		if err := g.SaveCategories(ctx, defaults); err != nil {
			slog.Warn("failed to seed default categories", "error", err)
		}
		return defaults
	}

	var categories []model.Category
	if err := json.Unmarshal([]byte(data), &categories); err != nil {
		slog.Warn("stored categories are malformed, using defaults", "error", err)
		return model.DefaultCategories()
	}

	slog.Debug("loaded categories", "count", len(categories))
	return categories
}

// SaveCategories serializes and overwrites the stored category collection.
func (g *Gateway) SaveCategories(ctx context.Context, categories []model.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return g.store.Set(ctx, categoriesKey, string(data))
}

// LoadTransactions reads the stored transaction collection. Missing or
// malformed entries return an empty list; there is no seed data for
// transactions.
func (g *Gateway) LoadTransactions(ctx context.Context) []model.Transaction {
	data, ok, err := g.store.Get(ctx, transactionsKey)
	if err != nil {
		slog.Warn("failed to read transactions, starting empty", "error", err)
		return []model.Transaction{}
	}
	if !ok {
		return []model.Transaction{}
	}

	var transactions []model.Transaction
	if err := json.Unmarshal([]byte(data), &transactions); err != nil {
		slog.Warn("stored transactions are malformed, starting empty", "error", err)
		return []model.Transaction{}
	}

	slog.Debug("loaded transactions", "count", len(transactions))
	return transactions
}

// SaveTransactions serializes and overwrites the stored transaction
// collection.
func (g *Gateway) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	data, err := json.Marshal(transactions)
	if err != nil {
		return err
	}
	return g.store.Set(ctx, transactionsKey, string(data))
}
