package models

import "strings"

// Wish is a planned, not-yet-committed purchase. Amount may be nil when the
// item will be priced at purchase time; CategoryID may be empty for an
// uncategorized wish. A wish ends its life either purchased (converted into
// an Expense and deleted) or deleted directly.
type Wish struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	PurchaseLink string `json:"purchase_link,omitempty"`
	CategoryID   string `json:"category_id,omitempty"`
	Amount       *Cents `json:"amount,omitempty"`
}

// Validate checks field invariants on a wish.
func (w Wish) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}
	if w.Amount != nil && *w.Amount <= 0 {
		return NewValidationError("amount", "must be positive when set")
	}
	return nil
}

// PurchaseResult is the outcome of converting a wish into an expense.
// BudgetExceeded is informational: overspending the category budget is
// allowed and merely surfaced.
type PurchaseResult struct {
	Expense *Expense `json:"expense"`
	// BudgetExceeded is true when the category's month spend plus this
	// purchase surpasses the category budget. Always false for
	// uncategorized wishes.
	BudgetExceeded bool `json:"budget_exceeded"`
	// Remaining is the category budget left after this purchase (may be
	// negative). Always zero for uncategorized wishes.
	Remaining Cents `json:"remaining"`
}
