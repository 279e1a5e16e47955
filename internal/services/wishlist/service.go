// Package wishlist converts planned purchases (wishes) into realized
// expenses, surfacing category budget exceedance along the way.
package wishlist

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"moneta/internal/common"
	"moneta/internal/interfaces"
	"moneta/internal/models"
)

// Compile-time interface check
var _ interfaces.WishService = (*Service)(nil)

// Service implements WishService
type Service struct {
	store  interfaces.FinanceStore
	logger *common.Logger
	now    func() time.Time

	// locks serializes concurrent purchases of the same wish within this
	// process. Cross-process safety rests on the store's conditional
	// DeleteWish being the commit point.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a new wishlist service
func NewService(store interfaces.FinanceStore, logger *common.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Purchase converts a wish into an expense and retires the wish.
//
// The two writes are ordered create-expense-then-delete-wish: deleting first
// would lose the wish on a subsequent failure. The conditional delete is the
// commit point: if it reports the wish already gone (a concurrent purchase
// or direct delete won), the just-created expense is compensated away and
// the call fails with NotFound, so retries never leave a duplicate expense.
func (s *Service) Purchase(ctx context.Context, wishID, userID string, opts interfaces.PurchaseOptions) (*models.PurchaseResult, error) {
	lock := s.wishLock(wishID)
	lock.Lock()
	defer lock.Unlock()

	wish, err := s.store.WishByID(ctx, wishID)
	if err != nil {
		return nil, fmt.Errorf("get wish: %w", err)
	}
	if wish.UserID != userID {
		// Owned by someone else; indistinguishable from absent.
		return nil, models.ErrNotFound
	}

	amount, err := resolveAmount(wish, opts.AmountOverride)
	if err != nil {
		return nil, err
	}

	date := s.now()
	if opts.DateOverride != nil {
		date = *opts.DateOverride
	}

	budgetExceeded := false
	var remaining models.Cents
	if wish.CategoryID != "" {
		budgetExceeded, remaining, err = s.checkBudget(ctx, wish.CategoryID, userID, amount, date)
		if err != nil {
			return nil, err
		}
	}

	expense := &models.Expense{
		ID:         uuid.New().String(),
		UserID:     userID,
		CategoryID: wish.CategoryID,
		Name:       wish.Name,
		Amount:     amount,
		Date:       date,
		Notes:      linkNotes(wish.PurchaseLink),
		CreatedAt:  s.now(),
		UpdatedAt:  s.now(),
	}
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	deleted, err := s.store.DeleteWish(ctx, wishID)
	if err != nil {
		return nil, fmt.Errorf("delete wish: %w", err)
	}
	if !deleted {
		// Lost the race: someone else retired the wish after our read.
		// Compensate the expense we just created.
		if derr := s.store.DeleteExpense(ctx, expense.ID); derr != nil {
			s.logger.Error().Err(derr).
				Str("expense_id", expense.ID).
				Str("wish_id", wishID).
				Msg("Failed to compensate expense for already-purchased wish")
		}
		return nil, models.ErrNotFound
	}

	s.logger.Info().
		Str("wish_id", wishID).
		Str("expense_id", expense.ID).
		Str("user_id", userID).
		Bool("budget_exceeded", budgetExceeded).
		Msg("Wish purchased")

	return &models.PurchaseResult{
		Expense:        expense,
		BudgetExceeded: budgetExceeded,
		Remaining:      remaining,
	}, nil
}

// checkBudget resolves the wish's category and computes budget exceedance
// for the month of the purchase date.
func (s *Service) checkBudget(ctx context.Context, categoryID, userID string, amount models.Cents, date time.Time) (bool, models.Cents, error) {
	category, err := s.store.CategoryByID(ctx, categoryID)
	if err != nil {
		return false, 0, fmt.Errorf("get category: %w", err)
	}
	if category.UserID != userID {
		return false, 0, models.ErrNotFound
	}

	year, month := date.Year(), int(date.Month())
	spent, err := s.store.ExpenseTotalForCategoryInMonth(ctx, categoryID, year, month)
	if err != nil {
		return false, 0, fmt.Errorf("category month spend: %w", err)
	}

	remaining := category.BudgetMax - spent - amount
	exceeded := spent+amount > category.BudgetMax
	return exceeded, remaining, nil
}

// resolveAmount picks the override when given, else the wish's stored
// amount. A wish with neither has no purchasable amount.
func resolveAmount(wish *models.Wish, override *models.Cents) (models.Cents, error) {
	amount := wish.Amount
	if override != nil {
		amount = override
	}
	if amount == nil || *amount <= 0 {
		return 0, models.NewValidationError("amount", "wish has no purchasable amount")
	}
	return *amount, nil
}

// linkNotes renders the purchase link into the expense notes, truncating the
// link so the whole notes string stays within the 500-character limit.
func linkNotes(link string) string {
	if link == "" {
		return ""
	}
	notes := "Link: " + link
	if len(notes) > models.MaxNotesLength {
		notes = notes[:models.MaxNotesLength]
	}
	return notes
}

// wishLock returns the per-wish mutex, creating it on first use.
func (s *Service) wishLock(wishID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[wishID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[wishID] = lock
	}
	return lock
}
