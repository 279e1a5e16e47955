// Package forecast projects a user's balance forward across future months,
// reconciling recurring commitments, one-off simulation entries, and
// amortized credit purchases into a single per-month timeline.
package forecast

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"moneta/internal/common"
	"moneta/internal/interfaces"
	"moneta/internal/models"
)

// Compile-time interface check
var _ interfaces.ForecastService = (*Service)(nil)

// Service implements ForecastService
type Service struct {
	store  interfaces.FinanceStore
	logger *common.Logger
	now    func() time.Time
}

// NewService creates a new forecast service
func NewService(store interfaces.FinanceStore, logger *common.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Project builds the month-by-month balance forecast for a user, starting at
// the current month. Recurring totals are fetched once (they are invariant
// across the horizon); per-month simulation queries run concurrently, each
// writing its own slice slot so ordering stays deterministic. Any failed
// lookup fails the whole projection rather than silently understating a
// month's contribution.
func (s *Service) Project(ctx context.Context, userID string, horizonMonths int) ([]models.MonthProjection, error) {
	if horizonMonths < 0 {
		return nil, models.NewValidationError("horizon_months", "must not be negative")
	}

	var (
		recurringExpenses models.Cents
		recurringRevenues models.Cents
		purchases         []models.CreditPurchase
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recurringExpenses, err = s.store.RecurringExpenseTotal(gctx, userID)
		if err != nil {
			return fmt.Errorf("recurring expense total: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recurringRevenues, err = s.store.RecurringRevenueTotal(gctx, userID)
		if err != nil {
			return fmt.Errorf("recurring revenue total: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		purchases, err = s.store.CreditPurchasesByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("credit purchases: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	startYear, startMonth := yearMonth(s.now())
	projections := make([]models.MonthProjection, horizonMonths)

	g, gctx = errgroup.WithContext(ctx)
	for i := range projections {
		i := i
		g.Go(func() error {
			year, month := addMonths(startYear, startMonth, i)

			simExpenses, err := s.store.SimulationExpensesForMonth(gctx, userID, year, month)
			if err != nil {
				return fmt.Errorf("simulation expenses %d-%02d: %w", year, month, err)
			}
			simRevenues, err := s.store.SimulationRevenuesForMonth(gctx, userID, year, month)
			if err != nil {
				return fmt.Errorf("simulation revenues %d-%02d: %w", year, month, err)
			}

			credit := installmentTotal(purchases, year, month)
			expenses := recurringExpenses + sumEntries(simExpenses) + credit
			revenues := recurringRevenues + sumEntries(simRevenues)

			projections[i] = models.MonthProjection{
				Year:           year,
				Month:          month,
				Expenses:       expenses,
				Revenues:       revenues,
				CreditPayments: credit,
				Balance:        revenues - expenses,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("user_id", userID).
		Int("horizon_months", horizonMonths).
		Msg("Projection built")

	return projections, nil
}

// Stats returns lifetime simulation totals. The three underlying sums have
// no data dependency and are fetched concurrently.
func (s *Service) Stats(ctx context.Context, userID string) (*models.SimulationStats, error) {
	var (
		totalRevenue models.Cents
		totalExpense models.Cents
		purchases    []models.CreditPurchase
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalRevenue, err = s.store.SimulationRevenueTotal(gctx, userID)
		if err != nil {
			return fmt.Errorf("simulation revenue total: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		totalExpense, err = s.store.SimulationExpenseTotal(gctx, userID)
		if err != nil {
			return fmt.Errorf("simulation expense total: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		purchases, err = s.store.CreditPurchasesByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("credit purchases: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totalCredit := creditTotal(purchases)
	return &models.SimulationStats{
		TotalRevenue:     totalRevenue,
		TotalExpense:     totalExpense,
		TotalCreditSpent: totalCredit,
		AverageBalance:   totalRevenue - totalExpense - totalCredit,
	}, nil
}

func sumEntries(entries []models.SimulationEntry) models.Cents {
	var total models.Cents
	for _, e := range entries {
		total += e.Amount
	}
	return total
}
