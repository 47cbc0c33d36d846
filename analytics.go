package store

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Product statuses as displayed by the analysis views.
const (
	StatusActive    = "Active"
	StatusCompleted = "Completed"
)

// Totals is the at-a-glance aggregate over the whole inventory.
// Profit is revenue minus budget and may be negative (a loss).
type Totals struct {
	Products int
	Budget   Money
	Revenue  Money
	Profit   Money
}

// NewTotals computes the aggregate totals from the current ledger state.
// It is a pure derivation: calling it twice on an unchanged ledger yields
// identical results.
func NewTotals(l *Ledger) Totals {
	t := Totals{Budget: M(0), Revenue: M(0)}
	for p := range l.Products() {
		t.Products++
		t.Budget = t.Budget.Add(p.TotalBudget)
		t.Revenue = t.Revenue.Add(p.TotalRevenue)
	}
	t.Profit = t.Revenue.Sub(t.Budget)
	return t
}

// ProductAnalysis is the per-product profitability view.
type ProductAnalysis struct {
	Product           Product
	Profit            Money
	ProfitPercentage  Percent // rounded to one decimal; 0 when the budget is zero
	DaysSincePurchase int
	Remaining         int
	SoldOut           bool
	Status            string
}

// NewProductAnalysis derives the profitability view of one product as of
// now. The reference time is a parameter so the derivation stays pure.
func NewProductAnalysis(p Product, now time.Time) ProductAnalysis {
	profit := p.TotalRevenue.Sub(p.TotalBudget)
	soldOut := p.SoldOut()
	status := StatusActive
	if soldOut {
		status = StatusCompleted
	}
	return ProductAnalysis{
		Product:           p,
		Profit:            profit,
		ProfitPercentage:  profitPercentage(profit, p.TotalBudget),
		DaysSincePurchase: daysSince(p.PurchaseDate, now),
		Remaining:         p.AvailableUnits(),
		SoldOut:           soldOut,
		Status:            status,
	}
}

// profitPercentage returns profit over budget as a percentage rounded to one
// decimal. A zero budget would divide by zero; the result is clamped to 0
// instead of letting a non-finite value reach the display layer.
func profitPercentage(profit, budget Money) Percent {
	if budget.IsZero() {
		return 0
	}
	pct := profit.value.Div(budget.value).Mul(decimal.NewFromInt(100)).Round(1)
	return Percent(pct.InexactFloat64())
}

// daysSince counts whole days between the purchase instant and now,
// rounding any fraction up, so a product bought an hour ago is 1 day old.
func daysSince(purchase, now time.Time) int {
	diff := now.Sub(purchase)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// CategoryReport groups the products sharing a category with the category
// level sums.
type CategoryReport struct {
	Name     string
	Products []Product
	Budget   Money
	Revenue  Money
	Profit   Money
}

// Categories partitions the products by category, preserving the order in
// which categories first appear in the ledger. Category budget, revenue and
// profit are sums over the group.
func Categories(l *Ledger) []CategoryReport {
	var reports []CategoryReport
	index := make(map[string]int)
	for p := range l.Products() {
		i, ok := index[p.Category]
		if !ok {
			i = len(reports)
			index[p.Category] = i
			reports = append(reports, CategoryReport{Name: p.Category, Budget: M(0), Revenue: M(0)})
		}
		reports[i].Products = append(reports[i].Products, p)
		reports[i].Budget = reports[i].Budget.Add(p.TotalBudget)
		reports[i].Revenue = reports[i].Revenue.Add(p.TotalRevenue)
	}
	for i := range reports {
		reports[i].Profit = reports[i].Revenue.Sub(reports[i].Budget)
	}
	return reports
}
