package settlement

import (
	"fmt"
	"sort"
	"time"

	"empanada-tracker/core/models"

	"github.com/shopspring/decimal"
)

// Totals aggregates the allocation rows of one market event.
type Totals struct {
	TotalSold      decimal.Decimal `json:"total_sold"`
	TotalLeftover  decimal.Decimal `json:"total_leftover"`
	TotalAllocated decimal.Decimal `json:"total_allocated"`
}

// AggregateTotals sums sold, leftover and allocated across flavors.
// NULL figures count as zero; no rows gives zero totals.
func AggregateTotals(allocations []models.Allocation) Totals {
	t := Totals{
		TotalSold:      decimal.Zero,
		TotalLeftover:  decimal.Zero,
		TotalAllocated: decimal.Zero,
	}
	for _, a := range allocations {
		t.TotalSold = t.TotalSold.Add(models.OrZero(a.Sold))
		t.TotalLeftover = t.TotalLeftover.Add(models.OrZero(a.Leftover))
		t.TotalAllocated = t.TotalAllocated.Add(models.OrZero(a.Allocated))
	}
	return t
}

// TapasSummary totals tapas production over the whole history.
type TapasSummary struct {
	TotalRegular decimal.Decimal `json:"total_regular"`
	TotalGhee    decimal.Decimal `json:"total_ghee"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}

// TapasTotals sums regular and ghee dozens. GrandTotal is their sum.
func TapasTotals(entries []models.TapasEntry) TapasSummary {
	regular, ghee := decimal.Zero, decimal.Zero
	for _, e := range entries {
		regular = regular.Add(e.RegularDozens)
		ghee = ghee.Add(e.GheeDozens)
	}
	return TapasSummary{
		TotalRegular: regular,
		TotalGhee:    ghee,
		GrandTotal:   regular.Add(ghee),
	}
}

// WeeklyTapas is the tapas production of one calendar week.
type WeeklyTapas struct {
	// Week is "YYYY-WW", weeks starting on Monday. Days before the first
	// Monday of the year belong to week 00.
	Week    string          `json:"week"`
	Regular decimal.Decimal `json:"regular"`
	Ghee    decimal.Decimal `json:"ghee"`
	Total   decimal.Decimal `json:"total"`
}

// WeeklyTapasTotals groups tapas production by week, newest week first.
func WeeklyTapasTotals(entries []models.TapasEntry) []WeeklyTapas {
	byWeek := make(map[string]*WeeklyTapas)
	for _, e := range entries {
		key := WeekKey(e.Date)
		w, ok := byWeek[key]
		if !ok {
			w = &WeeklyTapas{Week: key, Regular: decimal.Zero, Ghee: decimal.Zero, Total: decimal.Zero}
			byWeek[key] = w
		}
		w.Regular = w.Regular.Add(e.RegularDozens)
		w.Ghee = w.Ghee.Add(e.GheeDozens)
		w.Total = w.Regular.Add(w.Ghee)
	}

	weeks := make([]WeeklyTapas, 0, len(byWeek))
	for _, w := range byWeek {
		weeks = append(weeks, *w)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].Week > weeks[j].Week
	})
	return weeks
}

// WeekKey formats the Monday-first week of year of t as "YYYY-WW".
func WeekKey(t time.Time) string {
	// Days since Monday, Monday = 0.
	sinceMonday := (int(t.Weekday()) + 6) % 7
	week := (t.YearDay() - 1 + 7 - sinceMonday) / 7
	return fmt.Sprintf("%04d-%02d", t.Year(), week)
}
