package settlement

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Config holds settlement validation settings.
type Config struct {
	// Tolerance is the largest |allocated − (sold + leftover)| still treated as consistent.
	Tolerance string `mapstructure:"tolerance" default:"0.001"`
	// Strict rejects inconsistent settlements instead of recording them with a warning.
	Strict bool `mapstructure:"strict" default:"false"`
}

// Validator builds a validator from the configured tolerance.
// An empty tolerance selects DefaultTolerance.
func (c Config) Validator() (Validator, error) {
	if c.Tolerance == "" {
		return NewValidator(DefaultTolerance), nil
	}

	tol, err := decimal.NewFromString(c.Tolerance)
	if err != nil {
		return Validator{}, fmt.Errorf("invalid settlement tolerance %q: %w", c.Tolerance, err)
	}
	if tol.IsNegative() {
		return Validator{}, fmt.Errorf("invalid settlement tolerance %q: must not be negative", c.Tolerance)
	}
	return NewValidator(tol), nil
}
