package budget

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spendwise/spendwise/internal/model"
	"github.com/spendwise/spendwise/internal/storage"
)

// TransactionInput carries the caller-supplied fields of a new transaction.
// ID and CreatedAt are assigned by the manager.
type TransactionInput struct {
	CategoryID  string
	Subcategory string
	Amount      float64
	Tags        []string
	Note        string
	Account     string
	Date        time.Time
}

// CategoryUpdate is a partial update of a category's presentation fields.
// Nil fields are left unchanged.
type CategoryUpdate struct {
	Color      *string
	Icon       *string
	IconFamily *string
}

// Manager owns the in-memory category and transaction collections for the
// lifetime of the process. Mutations update memory synchronously and persist
// on a background goroutine; persistence completion is never reported to the
// caller, and a crash before a write lands loses that mutation. That is the
// documented durability contract, not a bug.
type Manager struct {
	mu           sync.RWMutex
	gateway      *storage.Gateway
	clock        func() time.Time
	categories   []model.Category
	transactions []model.Transaction
	period       model.TimePeriod
	loading      bool
	persist      sync.WaitGroup

	// Snapshot versions, guarded by mu. Each mutation stamps its snapshot
	// so background writes can be applied newest-wins regardless of
	// goroutine scheduling order.
	txnVersion uint64
	catVersion uint64

	// writeMu serializes persistence writes; the written counters record
	// the highest version handed to the store so stale snapshots are
	// dropped instead of overwriting newer state.
	writeMu    sync.Mutex
	txnWritten uint64
	catWritten uint64
}

// New creates a manager over the given gateway. State is empty and
// IsLoading reports true until Load completes.
func New(gateway *storage.Gateway) *Manager {
	return &Manager{
		gateway: gateway,
		clock:   time.Now,
		period:  model.PeriodMonth,
		loading: true,
	}
}

// Load hydrates the in-memory collections from storage. Categories and
// transactions are fetched concurrently; neither fetch can fail (the gateway
// degrades to defaults or empty), so Load itself never fails.
func (m *Manager) Load(ctx context.Context) {
	var (
		categories   []model.Category
		transactions []model.Transaction
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		categories = m.gateway.LoadCategories(ctx)
		return nil
	})
	g.Go(func() error {
		transactions = m.gateway.LoadTransactions(ctx)
		return nil
	})
	_ = g.Wait()

	m.mu.Lock()
	m.categories = categories
	m.transactions = transactions
	m.loading = false
	m.mu.Unlock()

	slog.Debug("budget state hydrated",
		"categories", len(categories),
		"transactions", len(transactions))
}

// IsLoading reports whether Load has completed. Callers should treat reads
// as empty until it returns false.
func (m *Manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Categories returns a copy of the category collection.
func (m *Manager) Categories() []model.Category {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Category, len(m.categories))
	for i, c := range m.categories {
		out[i] = c.Clone()
	}
	return out
}

// Transactions returns a copy of the transaction collection, newest created
// first.
func (m *Manager) Transactions() []model.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Transaction, len(m.transactions))
	for i, t := range m.transactions {
		out[i] = t.Clone()
	}
	return out
}

// TimePeriod returns the currently selected aggregation period.
func (m *Manager) TimePeriod() model.TimePeriod {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.period
}

// SetTimePeriod replaces the aggregation period. Subsequent totals reflect
// it immediately.
func (m *Manager) SetTimePeriod(period model.TimePeriod) {
	m.mu.Lock()
	m.period = period
	m.mu.Unlock()
}

// AddTransaction assigns an id and creation timestamp to the input, prepends
// the transaction to the in-memory collection, and persists the updated
// collection in the background. The returned transaction is the stored copy.
//
// The manager does not validate the amount; rejecting non-positive amounts
// is the editing collaborator's responsibility.
func (m *Manager) AddTransaction(input TransactionInput) model.Transaction {
	now := m.clock()
	txn := model.Transaction{
		ID:          model.NewTransactionID(now),
		CategoryID:  input.CategoryID,
		Subcategory: input.Subcategory,
		Amount:      input.Amount,
		Tags:        append([]string(nil), input.Tags...),
		Note:        input.Note,
		Account:     input.Account,
		Date:        input.Date,
		CreatedAt:   now,
	}

	m.mu.Lock()
	updated := make([]model.Transaction, 0, len(m.transactions)+1)
	updated = append(updated, txn)
	updated = append(updated, m.transactions...)
	m.transactions = updated
	m.txnVersion++
	version := m.txnVersion
	snapshot := m.snapshotTransactionsLocked()
	m.mu.Unlock()

	m.persistTransactions(snapshot, version)

	slog.Debug("added transaction", "id", txn.ID, "category", txn.CategoryID, "amount", txn.Amount)
	return txn.Clone()
}

// UpdateCategory applies a partial update to the category with the given id
// and persists the updated collection in the background. An unknown id is a
// silent no-op.
func (m *Manager) UpdateCategory(id string, update CategoryUpdate) {
	m.mu.Lock()
	idx := -1
	for i := range m.categories {
		if m.categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.mu.Unlock()
		slog.Debug("update for unknown category ignored", "id", id)
		return
	}

	if update.Color != nil {
		m.categories[idx].Color = *update.Color
	}
	if update.Icon != nil {
		m.categories[idx].Icon = *update.Icon
	}
	if update.IconFamily != nil {
		m.categories[idx].IconFamily = *update.IconFamily
	}
	m.catVersion++
	version := m.catVersion
	snapshot := m.snapshotCategoriesLocked()
	m.mu.Unlock()

	m.persistCategories(snapshot, version)
}

// CategoryTotal returns the sum of transaction amounts for the category over
// the currently selected period, ending now.
func (m *Manager) CategoryTotal(categoryID string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Total(m.transactions, categoryID, m.period, m.clock())
}

// TotalExpenses returns the period total across all expense categories.
func (m *Manager) TotalExpenses() float64 {
	return m.totalByType(model.CategoryTypeExpense)
}

// TotalIncome returns the period total across all income categories.
func (m *Manager) TotalIncome() float64 {
	return m.totalByType(model.CategoryTypeIncome)
}

// Balance returns income minus expenses over the current period.
func (m *Manager) Balance() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := m.clock()
	var balance float64
	for _, c := range m.categories {
		total := Total(m.transactions, c.ID, m.period, now)
		switch c.Type {
		case model.CategoryTypeIncome:
			balance += total
		case model.CategoryTypeExpense:
			balance -= total
		}
	}
	return balance
}

func (m *Manager) totalByType(categoryType model.CategoryType) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := m.clock()
	var sum float64
	for _, c := range m.categories {
		if c.Type == categoryType {
			sum += Total(m.transactions, c.ID, m.period, now)
		}
	}
	return sum
}

// Close waits for in-flight persistence writes to finish. It is a teardown
// affordance for process exit, not a completion signal for any individual
// mutation.
func (m *Manager) Close() {
	m.persist.Wait()
}

func (m *Manager) snapshotTransactionsLocked() []model.Transaction {
	out := make([]model.Transaction, len(m.transactions))
	for i, t := range m.transactions {
		out[i] = t.Clone()
	}
	return out
}

func (m *Manager) snapshotCategoriesLocked() []model.Category {
	out := make([]model.Category, len(m.categories))
	for i, c := range m.categories {
		out[i] = c.Clone()
	}
	return out
}

func (m *Manager) persistTransactions(snapshot []model.Transaction, version uint64) {
	m.persist.Add(1)
	go func() {
		defer m.persist.Done()

		// Goroutines are not scheduled in spawn order; without the version
		// check an older snapshot could land after a newer one and roll the
		// stored list back.
		m.writeMu.Lock()
		defer m.writeMu.Unlock()
		if version <= m.txnWritten {
			return
		}
		m.txnWritten = version

		// The caller may be gone by the time this runs; the write uses its
		// own context.
		if err := m.gateway.SaveTransactions(context.Background(), snapshot); err != nil {
			slog.Warn("failed to persist transactions", "error", err)
		}
	}()
}

func (m *Manager) persistCategories(snapshot []model.Category, version uint64) {
	m.persist.Add(1)
	go func() {
		defer m.persist.Done()

		m.writeMu.Lock()
		defer m.writeMu.Unlock()
		if version <= m.catWritten {
			return
		}
		m.catWritten = version

		if err := m.gateway.SaveCategories(context.Background(), snapshot); err != nil {
			slog.Warn("failed to persist categories", "error", err)
		}
	}()
}
