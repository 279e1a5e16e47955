// Package interfaces defines service and storage contracts for Moneta
package interfaces

import (
	"context"

	"moneta/internal/models"
)

// FinanceStore is the repository contract the engine consumes. Queries keyed
// by userID return only that user's records; by-ID lookups return whatever
// entity carries the ID, and ownership checks are the engine's
// responsibility, not the store's.
//
// Implementations must tolerate concurrent reads for a single user; the
// projection builder fans its per-month queries out in parallel.
type FinanceStore interface {
	// Recurring items (no time dimension; active until deleted)
	RecurringExpenseTotal(ctx context.Context, userID string) (models.Cents, error)
	RecurringRevenueTotal(ctx context.Context, userID string) (models.Cents, error)

	// Simulation entries
	SimulationExpensesForMonth(ctx context.Context, userID string, year, month int) ([]models.SimulationEntry, error)
	SimulationRevenuesForMonth(ctx context.Context, userID string, year, month int) ([]models.SimulationEntry, error)
	SimulationExpenseTotal(ctx context.Context, userID string) (models.Cents, error)
	SimulationRevenueTotal(ctx context.Context, userID string) (models.Cents, error)

	// Credit purchases. The store returns the materialized purchase list;
	// installment amortization happens in the engine where the rounding
	// policy is explicit.
	CreditPurchasesByUser(ctx context.Context, userID string) ([]models.CreditPurchase, error)

	// Categories and wishes
	CategoryByID(ctx context.Context, id string) (*models.Category, error)
	WishByID(ctx context.Context, id string) (*models.Wish, error)

	// Ledger reads
	ExpenseTotalForCategoryInMonth(ctx context.Context, categoryID string, year, month int) (models.Cents, error)
	ExpenseTotal(ctx context.Context, userID string) (models.Cents, error)
	RevenueTotal(ctx context.Context, userID string) (models.Cents, error)
	RecentExpenses(ctx context.Context, userID string, limit int) ([]models.Expense, error)
	RecentRevenues(ctx context.Context, userID string, limit int) ([]models.Revenue, error)

	// Writes. DeleteWish is conditional: it reports whether a wish row was
	// actually deleted, which the purchase reconciler uses as its commit
	// point. DeleteExpense exists for the compensation path only.
	CreateExpense(ctx context.Context, expense *models.Expense) error
	DeleteWish(ctx context.Context, id string) (bool, error)
	DeleteExpense(ctx context.Context, id string) error
}
