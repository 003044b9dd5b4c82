package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
}

// figure renders a nullable quantity, "-" when unknown.
func figure(n decimal.NullDecimal) string {
	if !n.Valid {
		return "-"
	}
	return n.Decimal.String()
}

func money(n decimal.NullDecimal) string {
	if !n.Valid {
		return "-"
	}
	return n.Decimal.StringFixed(2)
}

func day(t time.Time) string {
	return t.Format(time.DateOnly)
}
