package models

import "strings"

// RecurringKind discriminates recurring expenses from recurring revenues.
type RecurringKind string

const (
	RecurringExpense RecurringKind = "expense"
	RecurringRevenue RecurringKind = "revenue"
)

// validRecurringKinds lists all accepted recurring kinds.
var validRecurringKinds = map[RecurringKind]bool{
	RecurringExpense: true,
	RecurringRevenue: true,
}

// ValidRecurringKind returns true if k is a valid recurring kind.
func ValidRecurringKind(k RecurringKind) bool {
	return validRecurringKinds[k]
}

// RecurringItem is a monthly commitment (rent, salary, subscription) that
// contributes its full amount to every projected month until it is deleted.
// DayOfMonth is informational only; it never gates whether a month is liable.
type RecurringItem struct {
	ID     string        `json:"id"`
	UserID string        `json:"user_id"`
	Kind   RecurringKind `json:"kind"`
	Name   string        `json:"name"`
	Amount Cents         `json:"amount"`
	// DayOfMonth records when the item usually bills (1-31).
	DayOfMonth int `json:"day_of_month"`
	// CancellationLink is only meaningful for the expense kind.
	CancellationLink string `json:"cancellation_link,omitempty"`
}

// Validate checks field invariants on a recurring item.
func (r RecurringItem) Validate() error {
	if !ValidRecurringKind(r.Kind) {
		return NewValidationError("kind", "must be expense or revenue")
	}
	if strings.TrimSpace(r.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}
	if r.Amount <= 0 {
		return NewValidationError("amount", "must be positive")
	}
	if r.DayOfMonth < 1 || r.DayOfMonth > 31 {
		return NewValidationError("day_of_month", "must be between 1 and 31")
	}
	if r.Kind == RecurringRevenue && r.CancellationLink != "" {
		return NewValidationError("cancellation_link", "only allowed on recurring expenses")
	}
	return nil
}
