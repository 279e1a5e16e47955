package models

import (
	"strings"
	"time"
)

// MaxNotesLength caps the free-text notes on an expense.
const MaxNotesLength = 500

// Expense is a realized, persisted expense. CategoryID is empty when the
// expense is uncategorized or its category was deleted.
type Expense struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CategoryID string    `json:"category_id,omitempty"`
	Name       string    `json:"name"`
	Amount     Cents     `json:"amount"`
	Date       time.Time `json:"date"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Validate checks field invariants on an expense.
func (e Expense) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}
	if e.Amount <= 0 {
		return NewValidationError("amount", "must be positive")
	}
	if e.Amount > MaxExpenseAmount {
		return NewValidationError("amount", "exceeds maximum of 999999.99")
	}
	if e.Date.IsZero() {
		return NewValidationError("date", "must be set")
	}
	if len(e.Notes) > MaxNotesLength {
		return NewValidationError("notes", "exceeds 500 characters")
	}
	return nil
}

// Revenue is a realized, persisted revenue entry mirroring Expense.
type Revenue struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Amount    Cents     `json:"amount"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks field invariants on a revenue.
func (r Revenue) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}
	if r.Amount <= 0 {
		return NewValidationError("amount", "must be positive")
	}
	if r.Date.IsZero() {
		return NewValidationError("date", "must be set")
	}
	return nil
}
