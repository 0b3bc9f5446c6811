package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/spendwise/spendwise/internal/budget"
	"github.com/spendwise/spendwise/internal/storage"
)

// initBudget opens the configured database, hydrates the budget state, and
// returns the manager plus a teardown function that drains pending
// persistence writes and closes the store.
func initBudget(ctx context.Context) (*budget.Manager, func(), error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/spendwise/spendwise.db"
	}

	store, err := storage.NewSQLiteStore(expandPath(dbPath))
	if err != nil {
		return nil, nil, err
	}

	manager := budget.New(storage.NewGateway(store))
	manager.Load(ctx)

	cleanup := func() {
		manager.Close()
		_ = store.Close()
	}
	return manager, cleanup, nil
}

// expandPath resolves a leading ~ and any $VAR references in a path.
func expandPath(path string) string {
	if after, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, after)
		}
	}
	return os.ExpandEnv(path)
}
