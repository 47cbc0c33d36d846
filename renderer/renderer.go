// Package renderer turns ledger state and analytics into markdown, the
// presentation format of the CLI. The caller decides how to display the
// result (plain or through a terminal markdown renderer).
package renderer

import (
	"fmt"

	"github.com/kolocmil/store"
)

// amount renders a money value the way the store displays it.
func amount(m store.Money) string {
	return m.String()
}

// progress renders a sold/total unit counter.
func progress(p store.Product) string {
	return fmt.Sprintf("%d/%d units", p.SoldUnits, p.TotalUnits)
}
