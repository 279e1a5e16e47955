package models

import (
	"strings"
	"time"
)

// CreditPurchase is a purchase amortized in equal installments over
// consecutive months, starting in the calendar month of PurchaseDate.
type CreditPurchase struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Amount       Cents     `json:"amount"`
	Installments int       `json:"installments"`
	PurchaseDate time.Time `json:"purchase_date"`
}

// Validate checks field invariants on a credit purchase.
func (c CreditPurchase) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}
	if c.Amount <= 0 {
		return NewValidationError("amount", "must be positive")
	}
	if c.Installments < 1 {
		return NewValidationError("installments", "must be at least 1")
	}
	if c.PurchaseDate.IsZero() {
		return NewValidationError("purchase_date", "must be set")
	}
	return nil
}
