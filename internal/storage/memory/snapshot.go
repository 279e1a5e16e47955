package memory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"moneta/internal/models"
)

// Snapshot is the JSON shape consumed by the CLI: one user's (or several
// users') finance data as materialized collections.
type Snapshot struct {
	Recurring       []models.RecurringItem   `json:"recurring,omitempty"`
	Simulations     []models.SimulationEntry `json:"simulations,omitempty"`
	CreditPurchases []models.CreditPurchase  `json:"credit_purchases,omitempty"`
	Categories      []models.Category        `json:"categories,omitempty"`
	Wishes          []models.Wish            `json:"wishes,omitempty"`
	Expenses        []models.Expense         `json:"expenses,omitempty"`
	Revenues        []models.Revenue         `json:"revenues,omitempty"`
}

// LoadSnapshot reads a JSON snapshot file into a fresh store. Entities
// missing an ID are assigned one; every entity is validated on the way in.
func LoadSnapshot(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}

	store := NewStore()
	if err := store.loadSnapshot(snap); err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", path, err)
	}
	return store, nil
}

func (s *Store) loadSnapshot(snap Snapshot) error {
	for _, item := range snap.Recurring {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		if err := s.PutRecurring(item); err != nil {
			return fmt.Errorf("recurring %q: %w", item.Name, err)
		}
	}
	for _, entry := range snap.Simulations {
		if entry.ID == "" {
			entry.ID = uuid.New().String()
		}
		if err := s.PutSimulation(entry); err != nil {
			return fmt.Errorf("simulation %q: %w", entry.Name, err)
		}
	}
	for _, p := range snap.CreditPurchases {
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		if err := s.PutCreditPurchase(p); err != nil {
			return fmt.Errorf("credit purchase %q: %w", p.Name, err)
		}
	}
	for _, c := range snap.Categories {
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		if err := s.PutCategory(c); err != nil {
			return fmt.Errorf("category %q: %w", c.Name, err)
		}
	}
	for _, w := range snap.Wishes {
		if w.ID == "" {
			w.ID = uuid.New().String()
		}
		if err := s.PutWish(w); err != nil {
			return fmt.Errorf("wish %q: %w", w.Name, err)
		}
	}
	for _, e := range snap.Expenses {
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		if err := e.Validate(); err != nil {
			return fmt.Errorf("expense %q: %w", e.Name, err)
		}
		s.mu.Lock()
		s.expenses[e.ID] = e
		s.mu.Unlock()
	}
	for _, r := range snap.Revenues {
		if r.ID == "" {
			r.ID = uuid.New().String()
		}
		if err := s.PutRevenue(r); err != nil {
			return fmt.Errorf("revenue %q: %w", r.Name, err)
		}
	}
	return nil
}
