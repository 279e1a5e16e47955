// Package memory provides a mutex-guarded in-memory implementation of the
// FinanceStore contract. It backs the test suites and the CLI snapshot
// runner; durable persistence is deliberately out of scope for the engine.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"moneta/internal/interfaces"
	"moneta/internal/models"
)

// Compile-time interface check
var _ interfaces.FinanceStore = (*Store)(nil)

// Store holds all entities keyed by ID, guarded by a single RWMutex.
// Concurrent reads are safe, which the projection builder relies on.
type Store struct {
	mu         sync.RWMutex
	recurring  map[string]models.RecurringItem
	simulation map[string]models.SimulationEntry
	purchases  map[string]models.CreditPurchase
	categories map[string]models.Category
	wishes     map[string]models.Wish
	expenses   map[string]models.Expense
	revenues   map[string]models.Revenue
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		recurring:  make(map[string]models.RecurringItem),
		simulation: make(map[string]models.SimulationEntry),
		purchases:  make(map[string]models.CreditPurchase),
		categories: make(map[string]models.Category),
		wishes:     make(map[string]models.Wish),
		expenses:   make(map[string]models.Expense),
		revenues:   make(map[string]models.Revenue),
	}
}

// --- Seeding writes (validated, used by snapshot loading and tests) ---

// PutRecurring stores a recurring item.
func (s *Store) PutRecurring(item models.RecurringItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recurring[item.ID] = item
	return nil
}

// PutSimulation stores a simulation entry.
func (s *Store) PutSimulation(entry models.SimulationEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.simulation[entry.ID] = entry
	return nil
}

// PutCreditPurchase stores a credit purchase.
func (s *Store) PutCreditPurchase(p models.CreditPurchase) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases[p.ID] = p
	return nil
}

// PutCategory stores a category, enforcing per-user name uniqueness.
func (s *Store) PutCategory(c models.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if existing.ID != c.ID && existing.UserID == c.UserID &&
			strings.EqualFold(existing.Name, c.Name) {
			return fmt.Errorf("category name %q already exists for user", c.Name)
		}
	}
	s.categories[c.ID] = c
	return nil
}

// PutWish stores a wish.
func (s *Store) PutWish(w models.Wish) error {
	if err := w.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishes[w.ID] = w
	return nil
}

// PutRevenue stores a revenue entry.
func (s *Store) PutRevenue(r models.Revenue) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revenues[r.ID] = r
	return nil
}

// --- Recurring reads ---

// RecurringExpenseTotal sums all recurring expense amounts for a user.
func (s *Store) RecurringExpenseTotal(_ context.Context, userID string) (models.Cents, error) {
	return s.recurringTotal(userID, models.RecurringExpense), nil
}

// RecurringRevenueTotal sums all recurring revenue amounts for a user.
func (s *Store) RecurringRevenueTotal(_ context.Context, userID string) (models.Cents, error) {
	return s.recurringTotal(userID, models.RecurringRevenue), nil
}

func (s *Store) recurringTotal(userID string, kind models.RecurringKind) models.Cents {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total models.Cents
	for _, item := range s.recurring {
		if item.UserID == userID && item.Kind == kind {
			total += item.Amount
		}
	}
	return total
}

// --- Simulation reads ---

// SimulationExpensesForMonth returns a user's simulated expenses in one month.
func (s *Store) SimulationExpensesForMonth(_ context.Context, userID string, year, month int) ([]models.SimulationEntry, error) {
	return s.simulationForMonth(userID, models.SimulationExpense, year, month), nil
}

// SimulationRevenuesForMonth returns a user's simulated revenues in one month.
func (s *Store) SimulationRevenuesForMonth(_ context.Context, userID string, year, month int) ([]models.SimulationEntry, error) {
	return s.simulationForMonth(userID, models.SimulationRevenue, year, month), nil
}

func (s *Store) simulationForMonth(userID string, kind models.SimulationKind, year, month int) []models.SimulationEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.SimulationEntry
	for _, e := range s.simulation {
		if e.UserID == userID && e.Kind == kind &&
			e.Date.Year() == year && int(e.Date.Month()) == month {
			out = append(out, e)
		}
	}
	return out
}

// SimulationExpenseTotal sums all simulated expenses for a user, all time.
func (s *Store) SimulationExpenseTotal(_ context.Context, userID string) (models.Cents, error) {
	return s.simulationTotal(userID, models.SimulationExpense), nil
}

// SimulationRevenueTotal sums all simulated revenues for a user, all time.
func (s *Store) SimulationRevenueTotal(_ context.Context, userID string) (models.Cents, error) {
	return s.simulationTotal(userID, models.SimulationRevenue), nil
}

func (s *Store) simulationTotal(userID string, kind models.SimulationKind) models.Cents {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total models.Cents
	for _, e := range s.simulation {
		if e.UserID == userID && e.Kind == kind {
			total += e.Amount
		}
	}
	return total
}

// --- Credit purchases ---

// CreditPurchasesByUser returns all credit purchases for a user.
func (s *Store) CreditPurchasesByUser(_ context.Context, userID string) ([]models.CreditPurchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CreditPurchase
	for _, p := range s.purchases {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- Categories and wishes ---

// CategoryByID returns a category by ID, or ErrNotFound.
func (s *Store) CategoryByID(_ context.Context, id string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &c, nil
}

// WishByID returns a wish by ID, or ErrNotFound.
func (s *Store) WishByID(_ context.Context, id string) (*models.Wish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.wishes[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &w, nil
}

// --- Ledger reads ---

// ExpenseTotalForCategoryInMonth sums a category's expenses in one month.
func (s *Store) ExpenseTotalForCategoryInMonth(_ context.Context, categoryID string, year, month int) (models.Cents, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total models.Cents
	for _, e := range s.expenses {
		if e.CategoryID == categoryID &&
			e.Date.Year() == year && int(e.Date.Month()) == month {
			total += e.Amount
		}
	}
	return total, nil
}

// ExpenseTotal sums all expenses for a user.
func (s *Store) ExpenseTotal(_ context.Context, userID string) (models.Cents, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total models.Cents
	for _, e := range s.expenses {
		if e.UserID == userID {
			total += e.Amount
		}
	}
	return total, nil
}

// RevenueTotal sums all revenues for a user.
func (s *Store) RevenueTotal(_ context.Context, userID string) (models.Cents, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total models.Cents
	for _, r := range s.revenues {
		if r.UserID == userID {
			total += r.Amount
		}
	}
	return total, nil
}

// RecentExpenses returns up to limit expenses, newest first.
// Order: date descending, ties broken by ID ascending.
func (s *Store) RecentExpenses(_ context.Context, userID string, limit int) ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Expense
	for _, e := range s.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// RecentRevenues returns up to limit revenues, newest first.
// Order: date descending, ties broken by ID ascending.
func (s *Store) RecentRevenues(_ context.Context, userID string, limit int) ([]models.Revenue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Revenue
	for _, r := range s.revenues {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- Writes ---

// CreateExpense persists a new expense.
func (s *Store) CreateExpense(_ context.Context, expense *models.Expense) error {
	if err := expense.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.expenses[expense.ID]; exists {
		return fmt.Errorf("expense %s already exists", expense.ID)
	}
	s.expenses[expense.ID] = *expense
	return nil
}

// DeleteWish removes a wish, reporting whether it existed. The delete and
// the existence check are one critical section, so two racing callers can
// never both observe deleted=true.
func (s *Store) DeleteWish(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.wishes[id]; !ok {
		return false, nil
	}
	delete(s.wishes, id)
	return true, nil
}

// DeleteExpense removes an expense. Used by the purchase compensation path.
func (s *Store) DeleteExpense(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expenses[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.expenses, id)
	return nil
}
