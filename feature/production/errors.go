package production

import "errors"

var (
	// ErrInsufficientStock is returned when a bake exceeds the wrapped-unbaked level.
	// The wrapped error chain carries a *reconcile.Shortage with the available amount.
	ErrInsufficientStock = errors.New("insufficient wrapped stock")

	// ErrInvalidQuantity is returned for non-positive batch sizes.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrUnknownFlavor is returned when a batch names a flavor that does not exist.
	ErrUnknownFlavor = errors.New("unknown flavor")
)
