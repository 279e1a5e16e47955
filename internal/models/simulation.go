package models

import (
	"strings"
	"time"
)

// SimulationKind discriminates simulated expenses from simulated revenues.
type SimulationKind string

const (
	SimulationExpense SimulationKind = "expense"
	SimulationRevenue SimulationKind = "revenue"
)

// ValidSimulationKind returns true if k is a valid simulation kind.
func ValidSimulationKind(k SimulationKind) bool {
	return k == SimulationExpense || k == SimulationRevenue
}

// SimulationEntry is a one-off what-if transaction. It contributes only to
// the projected month matching its date; the day within the month carries no
// semantics beyond year/month bucketing.
type SimulationEntry struct {
	ID     string         `json:"id"`
	UserID string         `json:"user_id"`
	Kind   SimulationKind `json:"kind"`
	Name   string         `json:"name"`
	Amount Cents          `json:"amount"`
	Date   time.Time      `json:"date"`
}

// Validate checks field invariants on a simulation entry.
func (s SimulationEntry) Validate() error {
	if !ValidSimulationKind(s.Kind) {
		return NewValidationError("kind", "must be expense or revenue")
	}
	if strings.TrimSpace(s.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}
	if s.Amount <= 0 {
		return NewValidationError("amount", "must be positive")
	}
	if s.Date.IsZero() {
		return NewValidationError("date", "must be set")
	}
	return nil
}
