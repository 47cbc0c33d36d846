package renderer

import (
	"fmt"
	"strings"

	"github.com/kolocmil/store"
)

// ProductsMarkdown renders the inventory list as a markdown table, in
// creation order.
func ProductsMarkdown(l *store.Ledger) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Products\n\n")
	fmt.Fprintln(&b, "| Id | Name | Category | Unit Price | Stock | Budget | Revenue |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|:---|---:|---:|")

	count := 0
	for p := range l.Products() {
		count++
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			p.ID,
			p.Name,
			p.Category,
			amount(p.UnitPrice),
			progress(p),
			amount(p.TotalBudget),
			amount(p.TotalRevenue),
		)
	}
	if count == 0 {
		return "# Products\n\nNo products yet\n"
	}
	return b.String()
}
