package forecast

import (
	"time"

	"moneta/internal/models"
)

// monthIndex maps a (year, month) pair onto a single monotonically
// increasing month counter, so windowing math never has to reason about
// year rollover.
func monthIndex(year, month int) int {
	return year*12 + (month - 1)
}

// addMonths returns the (year, month) pair i months after the given one.
func addMonths(year, month, i int) (int, int) {
	idx := monthIndex(year, month) + i
	return idx / 12, idx%12 + 1
}

// installmentShare returns the payment a purchase owes in its installment
// window position idx (0-based). The amount is divided in integer cents with
// truncation; the rounding remainder lands on the final installment so the
// window always sums to the purchase amount exactly.
func installmentShare(p models.CreditPurchase, idx int) models.Cents {
	n := models.Cents(p.Installments)
	base := p.Amount / n
	if idx == p.Installments-1 {
		return p.Amount - base*(n-1)
	}
	return base
}

// installmentTotal computes the combined installment liability of all
// purchases for one target (year, month). A purchase is liable from the
// calendar month of its purchase date through the following
// installments-1 months, inclusive.
func installmentTotal(purchases []models.CreditPurchase, year, month int) models.Cents {
	target := monthIndex(year, month)

	var total models.Cents
	for _, p := range purchases {
		first := monthIndex(p.PurchaseDate.Year(), int(p.PurchaseDate.Month()))
		idx := target - first
		if idx < 0 || idx >= p.Installments {
			continue
		}
		total += installmentShare(p, idx)
	}
	return total
}

// creditTotal sums the full purchase amounts, ignoring the installment
// schedule. Used by the lifetime stats aggregator.
func creditTotal(purchases []models.CreditPurchase) models.Cents {
	var total models.Cents
	for _, p := range purchases {
		total += p.Amount
	}
	return total
}

// yearMonth extracts the (year, month) bucket of a date.
func yearMonth(t time.Time) (int, int) {
	return t.Year(), int(t.Month())
}
