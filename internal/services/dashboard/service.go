// Package dashboard merges recent revenue and expense activity into one
// time-ordered summary view.
package dashboard

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"moneta/internal/common"
	"moneta/internal/interfaces"
	"moneta/internal/models"
)

// Compile-time interface check
var _ interfaces.DashboardService = (*Service)(nil)

// defaultRecentPerType is how many recent entries are pulled per transaction
// type before merging; the merged feed is capped at twice this.
const defaultRecentPerType = 5

// Service implements DashboardService
type Service struct {
	store         interfaces.FinanceStore
	logger        *common.Logger
	recentPerType int
}

// NewService creates a new dashboard service. A recentPerType below 1 falls
// back to the default of 5.
func NewService(store interfaces.FinanceStore, logger *common.Logger, recentPerType int) *Service {
	if recentPerType < 1 {
		recentPerType = defaultRecentPerType
	}
	return &Service{
		store:         store,
		logger:        logger,
		recentPerType: recentPerType,
	}
}

// Summary returns revenue/expense totals and the merged recent-activity
// feed. The four underlying reads have no data dependency and run
// concurrently.
//
// Feed ordering: date descending; on equal dates revenues sort before
// expenses, and entries of the same type keep the store's
// most-recent-first order (stable sort).
func (s *Service) Summary(ctx context.Context, userID string) (*models.DashboardSummary, error) {
	var (
		totalRevenue models.Cents
		totalExpense models.Cents
		revenues     []models.Revenue
		expenses     []models.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalRevenue, err = s.store.RevenueTotal(gctx, userID)
		if err != nil {
			return fmt.Errorf("revenue total: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		totalExpense, err = s.store.ExpenseTotal(gctx, userID)
		if err != nil {
			return fmt.Errorf("expense total: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		revenues, err = s.store.RecentRevenues(gctx, userID, s.recentPerType)
		if err != nil {
			return fmt.Errorf("recent revenues: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		expenses, err = s.store.RecentExpenses(gctx, userID, s.recentPerType)
		if err != nil {
			return fmt.Errorf("recent expenses: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recent := mergeRecent(revenues, expenses, s.recentPerType)

	s.logger.Debug().
		Str("user_id", userID).
		Int("recent_transactions", len(recent)).
		Msg("Dashboard summary built")

	return &models.DashboardSummary{
		TotalRevenue:       totalRevenue,
		TotalExpense:       totalExpense,
		Balance:            totalRevenue - totalExpense,
		RecentTransactions: recent,
	}, nil
}

// mergeRecent combines the two feeds, tags each entry with its type, and
// keeps the 2*recentPerType most recent by date. Revenues are appended
// first so the stable sort leaves them ahead of expenses on date ties.
func mergeRecent(revenues []models.Revenue, expenses []models.Expense, recentPerType int) []models.RecentTransaction {
	merged := make([]models.RecentTransaction, 0, len(revenues)+len(expenses))
	for _, r := range revenues {
		merged = append(merged, models.RecentTransaction{
			Type:   models.TransactionRevenue,
			ID:     r.ID,
			Name:   r.Name,
			Amount: r.Amount,
			Date:   r.Date,
		})
	}
	for _, e := range expenses {
		merged = append(merged, models.RecentTransaction{
			Type:   models.TransactionExpense,
			ID:     e.ID,
			Name:   e.Name,
			Amount: e.Amount,
			Date:   e.Date,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})

	if len(merged) > 2*recentPerType {
		merged = merged[:2*recentPerType]
	}
	return merged
}
