// Package store holds the canonical finance state and applies the closed set
// of mutation commands. Every mutation is a pure transformation from the old
// snapshot to a new one; the store itself derives nothing.
package store

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jhasachin02/finance-tracker/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Subscriber is notified with the new snapshot after every committed state
// transition. Notification is fire-and-forget: whatever a subscriber does
// with the snapshot is invisible to the mutation caller.
type Subscriber func(models.FinanceState)

// Store wraps the current snapshot with the mutation protocol. It has a
// single writer and is used from one goroutine; mutations run synchronously
// to completion, so no locking is needed.
type Store struct {
	state       models.FinanceState
	subscribers []Subscriber
}

// New creates a Store starting from the default empty state.
func New() *Store {
	return &Store{state: models.NewDefaultState()}
}

// NewWithState creates a Store starting from the given snapshot.
func NewWithState(state models.FinanceState) *Store {
	return &Store{state: state}
}

// State returns the current snapshot.
func (s *Store) State() models.FinanceState {
	return s.state
}

// Subscribe registers a subscriber notified after each committed transition.
func (s *Store) Subscribe(fn Subscriber) {
	if fn != nil {
		s.subscribers = append(s.subscribers, fn)
	}
}

func (s *Store) commit(next models.FinanceState) {
	s.state = next
	for _, fn := range s.subscribers {
		fn(next)
	}
}

// AddTransaction appends a transaction with a freshly generated id and
// returns it. It always succeeds; the core accepts fields as given.
func (s *Store) AddTransaction(txType models.TransactionType, amount decimal.Decimal, category, description, date string) models.Transaction {
	tx := models.NewTransaction(txType, amount, category, description, date)
	s.commit(addTransaction(s.state, tx))
	log.WithFields(logrus.Fields{
		"id":       tx.ID,
		"type":     tx.Type,
		"category": tx.Category,
	}).Debug("Transaction added")
	return tx
}

// UpdateTransaction replaces the transaction whose id matches. An unknown id
// is a silent no-op.
func (s *Store) UpdateTransaction(tx models.Transaction) {
	s.commit(updateTransaction(s.state, tx))
}

// DeleteTransaction removes the transaction with the given id. An unknown id
// is a silent no-op.
func (s *Store) DeleteTransaction(id string) {
	s.commit(deleteTransaction(s.state, id))
}

// SetBudget replaces the budget for its category in place, or appends it
// when the category has no budget yet.
func (s *Store) SetBudget(b models.Budget) {
	s.commit(setBudget(s.state, b))
}

// AddCategory appends a name to the registry list for the given type.
// Duplicate names are not rejected here; callers pre-filter.
func (s *Store) AddCategory(txType models.TransactionType, name string) {
	s.commit(addCategory(s.state, txType, name))
}

// LoadSnapshot replaces the entire state wholesale. Used once at startup;
// there are no merge semantics.
func (s *Store) LoadSnapshot(state models.FinanceState) {
	s.commit(state)
	log.WithField("transactions", len(state.Transactions)).Debug("Snapshot loaded")
}
