package renderer

import (
	"bytes"
	"fmt"
	"time"

	md "github.com/nao1215/markdown"

	"github.com/kolocmil/store"
)

// DashboardMarkdown renders the analysis view: aggregate totals followed by
// one profitability table per category, in first-appearance order.
func DashboardMarkdown(l *store.Ledger, now time.Time) string {
	totals := store.NewTotals(l)

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Analysis")

	profitLabel := "Total Profit"
	if totals.Profit.IsNegative() {
		profitLabel = "Total Loss"
	}
	doc.Table(md.TableSet{
		Header: []string{"Total Products", "Total Budget", "Total Revenue", profitLabel},
		Rows: [][]string{{
			fmt.Sprintf("%d", totals.Products),
			amount(totals.Budget),
			amount(totals.Revenue),
			amount(totals.Profit.Abs()),
		}},
	})

	categories := store.Categories(l)
	if len(categories) == 0 {
		doc.PlainText("No products to analyze yet")
		return doc.String()
	}

	for _, cat := range categories {
		doc.H2(fmt.Sprintf("%s (%s)", cat.Name, cat.Profit.SignedString()))

		rows := make([][]string, 0, len(cat.Products))
		for _, p := range cat.Products {
			a := store.NewProductAnalysis(p, now)
			rows = append(rows, []string{
				p.Name,
				amount(p.TotalBudget),
				amount(p.TotalRevenue),
				fmt.Sprintf("%s (%s)", a.Profit.SignedString(), a.ProfitPercentage.SignedString()),
				progress(p),
				fmt.Sprintf("%dd", a.DaysSincePurchase),
				a.Status,
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Product", "Budget", "Revenue", "Profit/Loss", "Progress", "Days", "Status"},
			Rows:   rows,
		})
	}

	return doc.String()
}
