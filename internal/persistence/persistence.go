// Package persistence serializes the finance state to a single JSON blob in
// an external key-value style store and restores it at startup. A missing or
// malformed blob is never fatal: the tracker falls back to the default state.
package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jhasachin02/finance-tracker/internal/models"
	"github.com/jhasachin02/finance-tracker/internal/store"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

func init() {
	// Amounts serialize as plain JSON numbers in the stored blob, not as
	// quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// BlobStore is the external key-value contract: one opaque blob under one
// well-known key.
type BlobStore interface {
	// Load returns the stored blob. A store with no saved data returns
	// os.ErrNotExist (or a wrapper of it).
	Load() ([]byte, error)
	// Save overwrites the stored blob wholesale.
	Save(data []byte) error
}

// Adapter connects the state store to a blob store.
type Adapter struct {
	blobs BlobStore
}

// NewAdapter creates an Adapter over the given blob store.
func NewAdapter(blobs BlobStore) *Adapter {
	return &Adapter{blobs: blobs}
}

// Load restores the last saved state. Whatever goes wrong (no saved data,
// unreadable store, malformed JSON) it logs and returns the default state.
func (a *Adapter) Load() models.FinanceState {
	data, err := a.blobs.Load()
	if err != nil {
		log.WithError(err).Debug("No saved finance data, starting from defaults")
		return models.NewDefaultState()
	}

	var state models.FinanceState
	if err := json.Unmarshal(data, &state); err != nil {
		log.WithError(err).Warn("Saved finance data is malformed, starting from defaults")
		return models.NewDefaultState()
	}

	// An older blob may omit collections entirely; normalize so consumers
	// never see nil category lists.
	if state.Categories.Income == nil && state.Categories.Expense == nil {
		state.Categories = models.DefaultCategoryRegistry()
	}

	return state
}

// Save serializes and writes the snapshot.
func (a *Adapter) Save(state models.FinanceState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("error marshaling finance data: %w", err)
	}
	if err := a.blobs.Save(data); err != nil {
		return fmt.Errorf("error writing finance data: %w", err)
	}
	return nil
}

// Watch subscribes a save-on-every-transition hook to the store. Persistence
// is fire-and-forget from the store's perspective: failures are logged and
// never reach the mutation caller.
func (a *Adapter) Watch(s *store.Store) {
	s.Subscribe(func(state models.FinanceState) {
		if err := a.Save(state); err != nil {
			log.WithError(err).Warn("Failed to persist finance data")
		}
	})
}
