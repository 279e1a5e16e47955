package models

import (
	"regexp"
	"strings"
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Category groups expenses and wishes under a monthly budget cap.
// Name is unique per user; uniqueness is enforced by the store.
type Category struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	// BudgetMax is the monthly spending cap. Zero means no budget room,
	// not "unlimited"; exceedance is surfaced, never blocked.
	BudgetMax Cents  `json:"budget_max"`
	Color     string `json:"color,omitempty"`
}

// Validate checks field invariants on a category.
func (c Category) Validate() error {
	name := strings.TrimSpace(c.Name)
	if len(name) < 2 || len(name) > 100 {
		return NewValidationError("name", "must be between 2 and 100 characters")
	}
	if c.BudgetMax < 0 {
		return NewValidationError("budget_max", "must not be negative")
	}
	if c.Color != "" && !colorPattern.MatchString(c.Color) {
		return NewValidationError("color", "must be a #RRGGBB hex color")
	}
	return nil
}
