package memory

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"moneta/internal/models"
)

var ctx = context.Background()

func date(day int) time.Time {
	return time.Date(2026, 4, day, 0, 0, 0, 0, time.UTC)
}

func TestRecurringTotals_ScopedByUserAndKind(t *testing.T) {
	store := NewStore()
	items := []models.RecurringItem{
		{ID: "1", UserID: "u1", Kind: models.RecurringExpense, Name: "rent", Amount: 90000, DayOfMonth: 1},
		{ID: "2", UserID: "u1", Kind: models.RecurringExpense, Name: "gym", Amount: 3000, DayOfMonth: 5},
		{ID: "3", UserID: "u1", Kind: models.RecurringRevenue, Name: "salary", Amount: 250000, DayOfMonth: 27},
		{ID: "4", UserID: "u2", Kind: models.RecurringExpense, Name: "rent", Amount: 70000, DayOfMonth: 1},
	}
	for _, item := range items {
		if err := store.PutRecurring(item); err != nil {
			t.Fatalf("put recurring: %v", err)
		}
	}

	expenses, err := store.RecurringExpenseTotal(ctx, "u1")
	if err != nil {
		t.Fatalf("expense total: %v", err)
	}
	if expenses != 93000 {
		t.Errorf("u1 expense total = %v, want 93000", expenses)
	}

	revenues, err := store.RecurringRevenueTotal(ctx, "u1")
	if err != nil {
		t.Fatalf("revenue total: %v", err)
	}
	if revenues != 250000 {
		t.Errorf("u1 revenue total = %v, want 250000", revenues)
	}
}

func TestSimulationForMonth_Bucketing(t *testing.T) {
	store := NewStore()
	entries := []models.SimulationEntry{
		{ID: "1", UserID: "u1", Kind: models.SimulationExpense, Name: "trip", Amount: 45000, Date: date(10)},
		{ID: "2", UserID: "u1", Kind: models.SimulationExpense, Name: "gift", Amount: 5000, Date: date(28)},
		{ID: "3", UserID: "u1", Kind: models.SimulationExpense, Name: "other month", Amount: 1000, Date: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "4", UserID: "u1", Kind: models.SimulationRevenue, Name: "bonus", Amount: 30000, Date: date(15)},
	}
	for _, e := range entries {
		if err := store.PutSimulation(e); err != nil {
			t.Fatalf("put simulation: %v", err)
		}
	}

	april, err := store.SimulationExpensesForMonth(ctx, "u1", 2026, 4)
	if err != nil {
		t.Fatalf("expenses for month: %v", err)
	}
	if len(april) != 2 {
		t.Errorf("april expenses = %d entries, want 2", len(april))
	}

	total, err := store.SimulationExpenseTotal(ctx, "u1")
	if err != nil {
		t.Fatalf("expense total: %v", err)
	}
	if total != 51000 {
		t.Errorf("all-time expense total = %v, want 51000", total)
	}
}

func TestCategoryNameUniquePerUser(t *testing.T) {
	store := NewStore()
	if err := store.PutCategory(models.Category{ID: "c1", UserID: "u1", Name: "Groceries", BudgetMax: 40000}); err != nil {
		t.Fatalf("put category: %v", err)
	}
	if err := store.PutCategory(models.Category{ID: "c2", UserID: "u1", Name: "groceries", BudgetMax: 1000}); err == nil {
		t.Error("expected duplicate name rejection for same user")
	}
	// Same name is fine for another user, and updates to the same ID are fine.
	if err := store.PutCategory(models.Category{ID: "c3", UserID: "u2", Name: "Groceries", BudgetMax: 1000}); err != nil {
		t.Errorf("other user's category rejected: %v", err)
	}
	if err := store.PutCategory(models.Category{ID: "c1", UserID: "u1", Name: "Groceries", BudgetMax: 45000}); err != nil {
		t.Errorf("update of existing category rejected: %v", err)
	}
}

func TestDeleteWish_Conditional(t *testing.T) {
	store := NewStore()
	amount := models.Cents(9900)
	if err := store.PutWish(models.Wish{ID: "w1", UserID: "u1", Name: "headphones", Amount: &amount}); err != nil {
		t.Fatalf("put wish: %v", err)
	}

	deleted, err := store.DeleteWish(ctx, "w1")
	if err != nil {
		t.Fatalf("delete wish: %v", err)
	}
	if !deleted {
		t.Error("first delete should report deleted=true")
	}

	deleted, err = store.DeleteWish(ctx, "w1")
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if deleted {
		t.Error("second delete should report deleted=false")
	}
}

func TestDeleteWish_ConcurrentSingleWinner(t *testing.T) {
	store := NewStore()
	amount := models.Cents(100)
	if err := store.PutWish(models.Wish{ID: "w1", UserID: "u1", Name: "x", Amount: &amount}); err != nil {
		t.Fatalf("put wish: %v", err)
	}

	const workers = 16
	var wg sync.WaitGroup
	wins := make([]bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wins[i], _ = store.DeleteWish(ctx, "w1")
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, w := range wins {
		if w {
			winners++
		}
	}
	if winners != 1 {
		t.Errorf("%d concurrent deletes won, want exactly 1", winners)
	}
}

func TestRecentExpenses_OrderAndLimit(t *testing.T) {
	store := NewStore()
	days := []int{3, 1, 7, 7, 5}
	ids := []string{"a", "b", "c", "d", "e"}
	for i, day := range days {
		if err := store.CreateExpense(ctx, &models.Expense{
			ID: ids[i], UserID: "u1", Name: "e", Amount: 100, Date: date(day),
		}); err != nil {
			t.Fatalf("create expense: %v", err)
		}
	}

	recent, err := store.RecentExpenses(ctx, "u1", 3)
	if err != nil {
		t.Fatalf("recent expenses: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("got %d, want 3", len(recent))
	}
	// Day 7 twice (tie broken by ID ascending: c before d), then day 5.
	want := []string{"c", "d", "e"}
	for i, id := range want {
		if recent[i].ID != id {
			t.Errorf("recent[%d] = %s, want %s", i, recent[i].ID, id)
		}
	}
}

func TestExpenseTotalForCategoryInMonth(t *testing.T) {
	store := NewStore()
	expenses := []models.Expense{
		{ID: "1", UserID: "u1", CategoryID: "c1", Name: "a", Amount: 8000, Date: date(3)},
		{ID: "2", UserID: "u1", CategoryID: "c1", Name: "b", Amount: 1500, Date: date(20)},
		{ID: "3", UserID: "u1", CategoryID: "c2", Name: "c", Amount: 9999, Date: date(10)},
		{ID: "4", UserID: "u1", CategoryID: "c1", Name: "d", Amount: 5000, Date: time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)},
	}
	for i := range expenses {
		if err := store.CreateExpense(ctx, &expenses[i]); err != nil {
			t.Fatalf("create expense: %v", err)
		}
	}

	total, err := store.ExpenseTotalForCategoryInMonth(ctx, "c1", 2026, 4)
	if err != nil {
		t.Fatalf("category month total: %v", err)
	}
	if total != 9500 {
		t.Errorf("c1 april total = %v, want 9500", total)
	}
}

func TestCreateExpense_RejectsDuplicateID(t *testing.T) {
	store := NewStore()
	e := models.Expense{ID: "e1", UserID: "u1", Name: "coffee", Amount: 350, Date: date(1)}
	if err := store.CreateExpense(ctx, &e); err != nil {
		t.Fatalf("create expense: %v", err)
	}
	if err := store.CreateExpense(ctx, &e); err == nil {
		t.Error("expected duplicate ID rejection")
	}
}

func TestLoadSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	snapshot := `{
		"recurring": [
			{"user_id": "u1", "kind": "expense", "name": "rent", "amount": "900.00", "day_of_month": 1},
			{"user_id": "u1", "kind": "revenue", "name": "salary", "amount": "2500.00", "day_of_month": 27}
		],
		"credit_purchases": [
			{"user_id": "u1", "name": "laptop", "amount": "1200.00", "installments": 12, "purchase_date": "2026-03-01T00:00:00Z"}
		],
		"categories": [
			{"id": "c1", "user_id": "u1", "name": "Leisure", "budget_max": "100.00", "color": "#3FA7D6"}
		],
		"wishes": [
			{"user_id": "u1", "name": "headphones", "category_id": "c1", "amount": "99.00"}
		]
	}`
	if err := os.WriteFile(path, []byte(snapshot), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	store, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}

	expenses, err := store.RecurringExpenseTotal(ctx, "u1")
	if err != nil {
		t.Fatalf("recurring expense total: %v", err)
	}
	if expenses != 90000 {
		t.Errorf("recurring expense total = %v, want 90000", expenses)
	}

	purchases, err := store.CreditPurchasesByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("credit purchases: %v", err)
	}
	if len(purchases) != 1 || purchases[0].Installments != 12 {
		t.Errorf("purchases = %+v", purchases)
	}
	if purchases[0].ID == "" {
		t.Error("snapshot loader should assign missing IDs")
	}

	category, err := store.CategoryByID(ctx, "c1")
	if err != nil {
		t.Fatalf("category: %v", err)
	}
	if category.BudgetMax != 10000 {
		t.Errorf("budget max = %v, want 10000", category.BudgetMax)
	}
}

func TestLoadSnapshot_InvalidEntityFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	snapshot := `{"credit_purchases": [{"user_id": "u1", "name": "bad", "amount": "10.00", "installments": 0, "purchase_date": "2026-03-01T00:00:00Z"}]}`
	if err := os.WriteFile(path, []byte(snapshot), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	if _, err := LoadSnapshot(path); err == nil {
		t.Error("expected validation failure for zero installments")
	}
}
