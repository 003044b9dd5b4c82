package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseID parses a positive row id.
func ParseID(val string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(val), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", val)
	}
	return uint(id), nil
}

// ParseDecimal parses an exact decimal amount such as "2.5" or "182.50".
func ParseDecimal(val string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(val))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", val)
	}
	return d, nil
}

// ParseOptionalDecimal is ParseDecimal where "" and "-" mean unknown.
func ParseOptionalDecimal(val string) (decimal.NullDecimal, error) {
	val = strings.TrimSpace(val)
	if val == "" || val == "-" {
		return decimal.NullDecimal{}, nil
	}
	d, err := ParseDecimal(val)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC.
// An empty value selects the calendar date of now.
func ParseDate(val string, now time.Time) (time.Time, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(time.DateOnly, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", val)
	}
	return t, nil
}
