package settlement

import (
	"testing"

	"empanada-tracker/core/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestValidateAllocation(t *testing.T) {
	tests := []struct {
		name        string
		allocated   string
		sold        string
		leftover    string
		status      Status
		discrepancy string
	}{
		{"Consistent", "10", "6", "4", Consistent, "0"},
		{"Short", "10", "6", "2", Inconsistent, "2"},
		{"Over reported", "10", "8", "4", Inconsistent, "-2"},
		{"Within tolerance", "10", "6", "3.9995", Consistent, "0"},
		{"Just outside tolerance", "10", "6", "3.998", Inconsistent, "0.002"},
		{"All zero", "0", "0", "0", Consistent, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateAllocation(d(tt.allocated), d(tt.sold), d(tt.leftover))
			assert.Equal(t, tt.status, got.Status)
			assert.True(t, d(tt.discrepancy).Equal(got.Discrepancy), "discrepancy %s", got.Discrepancy)
			assert.Equal(t, tt.status == Consistent, got.OK())
		})
	}
}

func TestValidator_CustomTolerance(t *testing.T) {
	v := NewValidator(d("0.5"))
	assert.True(t, v.ValidateAllocation(d("10"), d("6"), d("3.6")).OK())
	assert.False(t, v.ValidateAllocation(d("10"), d("6"), d("3.4")).OK())

	fallback := NewValidator(decimal.Zero)
	assert.True(t, DefaultTolerance.Equal(fallback.Tolerance))
}

func TestValidation_String(t *testing.T) {
	assert.Equal(t, "consistent", ValidateAllocation(d("10"), d("6"), d("4")).String())
	assert.Equal(t, "inconsistent (discrepancy 2)", ValidateAllocation(d("10"), d("6"), d("2")).String())
}

func TestValidateEvent(t *testing.T) {
	flavors := []models.Flavor{{ID: 1, Name: "Beef"}, {ID: 2, Name: "Chicken"}, {ID: 3, Name: "Vegetable"}}
	allocations := []models.Allocation{
		{MarketEventID: 1, FlavorID: 3, Allocated: models.Known(d("2"))},
		{MarketEventID: 1, FlavorID: 1, Allocated: models.Known(d("5")), Sold: models.Known(d("4")), Leftover: models.Known(d("1"))},
		{MarketEventID: 1, FlavorID: 2, Allocated: models.Known(d("3")), Sold: models.Known(d("1")), Leftover: models.Known(d("1"))},
		{MarketEventID: 1, FlavorID: 9, Allocated: models.Known(d("1")), Sold: models.Known(d("1")), Leftover: models.Known(d("0"))},
	}

	ev := NewValidator(DefaultTolerance).ValidateEvent(flavors, allocations)

	assert.Equal(t, StateAllocated, ev.State)
	assert.Len(t, ev.Lines, 4)

	// "#9" sorts before letters.
	assert.Equal(t, "#9", ev.Lines[0].Flavor)
	assert.Equal(t, MissingReference, ev.Lines[0].Validation.Status)

	assert.Equal(t, "Beef", ev.Lines[1].Flavor)
	assert.Equal(t, Consistent, ev.Lines[1].Validation.Status)

	assert.Equal(t, "Chicken", ev.Lines[2].Flavor)
	assert.Equal(t, Inconsistent, ev.Lines[2].Validation.Status)
	assert.True(t, d("1").Equal(ev.Lines[2].Validation.Discrepancy))

	assert.Equal(t, "Vegetable", ev.Lines[3].Flavor)
	assert.Equal(t, Pending, ev.Lines[3].Validation.Status)

	bad := ev.Inconsistent()
	assert.Len(t, bad, 2)

	assert.True(t, d("6").Equal(ev.Totals.TotalSold))
	assert.True(t, d("2").Equal(ev.Totals.TotalLeftover))
	assert.True(t, d("11").Equal(ev.Totals.TotalAllocated))
}

func TestValidateEvent_NoRows(t *testing.T) {
	ev := NewValidator(DefaultTolerance).ValidateEvent(nil, nil)
	assert.Equal(t, StateScheduled, ev.State)
	assert.Empty(t, ev.Lines)
	assert.True(t, ev.Totals.TotalSold.IsZero())
}

func TestStateOf(t *testing.T) {
	settled := models.Allocation{Allocated: models.Known(d("5")), Sold: models.Known(d("4")), Leftover: models.Known(d("1"))}
	open := models.Allocation{Allocated: models.Known(d("2"))}

	assert.Equal(t, StateScheduled, StateOf(nil))
	assert.Equal(t, StateAllocated, StateOf([]models.Allocation{open}))
	assert.Equal(t, StateAllocated, StateOf([]models.Allocation{settled, open}))
	assert.Equal(t, StateSettled, StateOf([]models.Allocation{settled}))
}
