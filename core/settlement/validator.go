package settlement

import (
	"fmt"

	"empanada-tracker/core/models"

	"github.com/shopspring/decimal"
)

// DefaultTolerance absorbs figures that went through binary floats before reaching the store.
var DefaultTolerance = decimal.New(1, -3)

// Status is the outcome of validating one allocation.
type Status string

const (
	// Consistent means sold + leftover matches allocated.
	Consistent Status = "consistent"
	// Inconsistent means sold + leftover differs from allocated.
	Inconsistent Status = "inconsistent"
	// Pending means neither sold nor leftover has been recorded.
	Pending Status = "pending"
	// MissingReference means the row references an unknown flavor.
	MissingReference Status = "missing_reference"
)

// Validation is the result of checking one allocation.
type Validation struct {
	Status Status `json:"status"`

	// Discrepancy is allocated − (sold + leftover). Zero when consistent.
	Discrepancy decimal.Decimal `json:"discrepancy"`
}

// OK reports whether the allocation reconciles.
func (v Validation) OK() bool {
	return v.Status == Consistent
}

func (v Validation) String() string {
	if v.Status == Inconsistent {
		return fmt.Sprintf("%s (discrepancy %s)", v.Status, v.Discrepancy.String())
	}
	return string(v.Status)
}

// Validator checks settlements against a tolerance.
type Validator struct {
	Tolerance decimal.Decimal
}

// NewValidator returns a validator using tolerance, or DefaultTolerance when it is not positive.
func NewValidator(tolerance decimal.Decimal) Validator {
	if !tolerance.IsPositive() {
		tolerance = DefaultTolerance
	}
	return Validator{Tolerance: tolerance}
}

// ValidateAllocation checks sold + leftover against allocated using DefaultTolerance.
func ValidateAllocation(allocated, sold, leftover decimal.Decimal) Validation {
	return NewValidator(DefaultTolerance).ValidateAllocation(allocated, sold, leftover)
}

// ValidateAllocation checks sold + leftover against allocated.
func (v Validator) ValidateAllocation(allocated, sold, leftover decimal.Decimal) Validation {
	discrepancy := allocated.Sub(sold.Add(leftover))
	if discrepancy.Abs().LessThanOrEqual(v.Tolerance) {
		return Validation{Status: Consistent, Discrepancy: decimal.Zero}
	}
	return Validation{Status: Inconsistent, Discrepancy: discrepancy}
}

// validateRow validates a stored row, treating a row with nothing recorded as pending.
func (v Validator) validateRow(a models.Allocation) Validation {
	if !a.Sold.Valid && !a.Leftover.Valid {
		return Validation{Status: Pending, Discrepancy: decimal.Zero}
	}
	return v.ValidateAllocation(models.OrZero(a.Allocated), models.OrZero(a.Sold), models.OrZero(a.Leftover))
}
