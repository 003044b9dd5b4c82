package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		input   string
		want    uint
		wantErr bool
	}{
		{"1", 1, false},
		{" 42 ", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseID(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal("2.5")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("2.5").Equal(d))

	d, err = ParseDecimal("0.1")
	require.NoError(t, err)
	assert.Equal(t, "0.3", d.Add(d).Add(d).String())

	_, err = ParseDecimal("two")
	assert.Error(t, err)
}

func TestParseOptionalDecimal(t *testing.T) {
	for _, in := range []string{"", "-", "  "} {
		n, err := ParseOptionalDecimal(in)
		require.NoError(t, err)
		assert.False(t, n.Valid, "input %q", in)
	}

	n, err := ParseOptionalDecimal("6")
	require.NoError(t, err)
	assert.True(t, n.Valid)
	assert.True(t, decimal.NewFromInt(6).Equal(n.Decimal))

	_, err = ParseOptionalDecimal("six")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	now := time.Date(2025, 6, 7, 21, 30, 0, 0, time.Local)

	got, err := ParseDate("", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2025-05-31", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("31/05/2025", now)
	assert.Error(t, err)
}
