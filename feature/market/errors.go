package market

import "errors"

var (
	// ErrInsufficientStock is returned when an allocation exceeds the available baked level.
	// The wrapped error chain carries a *reconcile.Shortage with the available amount.
	ErrInsufficientStock = errors.New("insufficient baked stock")

	// ErrInvalidQuantity is returned for non-positive allocations and negative settlement figures.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrUnknownFlavor is returned when an allocation names a flavor that does not exist.
	ErrUnknownFlavor = errors.New("unknown flavor")

	// ErrInconsistentSettlement is returned in strict mode when sold + leftover does not match allocated.
	ErrInconsistentSettlement = errors.New("settlement does not reconcile")
)
