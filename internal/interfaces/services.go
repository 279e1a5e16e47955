// Package interfaces defines service and storage contracts for Moneta
package interfaces

import (
	"context"
	"time"

	"moneta/internal/models"
)

// ForecastService projects balances forward and aggregates simulation totals
type ForecastService interface {
	// Project returns horizonMonths month projections in ascending
	// chronological order, starting at the current month. It never
	// mutates stored data; any per-month lookup failure fails the whole
	// projection.
	Project(ctx context.Context, userID string, horizonMonths int) ([]models.MonthProjection, error)

	// Stats returns lifetime simulation totals.
	Stats(ctx context.Context, userID string) (*models.SimulationStats, error)
}

// PurchaseOptions carries the optional overrides for a wish purchase.
type PurchaseOptions struct {
	// AmountOverride replaces the wish's stored amount when set.
	AmountOverride *models.Cents
	// DateOverride replaces "now" as the expense date and the budget
	// target month when set.
	DateOverride *time.Time
}

// WishService converts wishes into realized expenses
type WishService interface {
	// Purchase converts a wish into an expense, checking the owning
	// category's monthly budget, and retires the wish.
	Purchase(ctx context.Context, wishID, userID string, opts PurchaseOptions) (*models.PurchaseResult, error)
}

// DashboardService merges recent activity into a summary view
type DashboardService interface {
	// Summary returns totals and the merged recent-activity feed.
	Summary(ctx context.Context, userID string) (*models.DashboardSummary, error)
}
