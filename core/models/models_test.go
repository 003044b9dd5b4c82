package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDozens(t *testing.T) {
	assert.True(t, Dozens(4).Equal(decimal.NewFromInt(4)))
	assert.True(t, Dozens(int64(7)).Equal(decimal.NewFromInt(7)))
	assert.Equal(t, "2.5", Dozens(2.5).String())
	assert.True(t, Dozens(decimal.RequireFromString("1.25")).Equal(decimal.RequireFromString("1.25")))
}

func TestOrZero(t *testing.T) {
	assert.True(t, OrZero(decimal.NullDecimal{}).IsZero())
	assert.True(t, OrZero(Known(Dozens(3))).Equal(Dozens(3)))
}

func TestAllocation_Settled(t *testing.T) {
	tests := []struct {
		name string
		a    Allocation
		want bool
	}{
		{"Allocated only", Allocation{Allocated: Known(Dozens(5))}, false},
		{"Sold only", Allocation{Allocated: Known(Dozens(5)), Sold: Known(Dozens(4))}, false},
		{"Settled", Allocation{Allocated: Known(Dozens(5)), Sold: Known(Dozens(4)), Leftover: Known(Dozens(1))}, true},
		{"Settled with zeros", Allocation{Sold: Known(decimal.Zero), Leftover: Known(decimal.Zero)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Settled())
		})
	}
}
