package models

import "time"

// MonthProjection is one month of the balance forecast. It is a derived
// value produced fresh per call, never persisted or cached.
type MonthProjection struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
	// Expenses = recurring expenses + simulated expenses + credit payments.
	Expenses Cents `json:"expenses"`
	// Revenues = recurring revenues + simulated revenues.
	Revenues Cents `json:"revenues"`
	// CreditPayments is the installment liability for the month, already
	// included in Expenses.
	CreditPayments Cents `json:"credit_payments"`
	// Balance = Revenues - Expenses.
	Balance Cents `json:"balance"`
}

// SimulationStats are lifetime simulation totals, independent of the
// month-by-month projection. Despite the name, AverageBalance is a single
// net figure (TotalRevenue - TotalExpense - TotalCreditSpent), not a
// statistical mean.
type SimulationStats struct {
	TotalRevenue     Cents `json:"total_revenue"`
	TotalExpense     Cents `json:"total_expense"`
	TotalCreditSpent Cents `json:"total_credit_spent"`
	AverageBalance   Cents `json:"average_balance"`
}

// TransactionType tags entries in the dashboard recent-activity feed.
type TransactionType string

const (
	TransactionRevenue TransactionType = "revenue"
	TransactionExpense TransactionType = "expense"
)

// RecentTransaction is one entry in the merged recent-activity feed.
type RecentTransaction struct {
	Type   TransactionType `json:"type"`
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount Cents           `json:"amount"`
	Date   time.Time       `json:"date"`
}

// DashboardSummary is the merged totals-plus-recent-activity view.
type DashboardSummary struct {
	TotalRevenue Cents `json:"total_revenue"`
	TotalExpense Cents `json:"total_expense"`
	// Balance = TotalRevenue - TotalExpense.
	Balance            Cents               `json:"balance"`
	RecentTransactions []RecentTransaction `json:"recent_transactions"`
}
