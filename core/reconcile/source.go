package reconcile

import (
	"context"

	"empanada-tracker/core/models"
)

// Source defines the read contract the reconciler needs from the event store.
// Implementations return the full, date-unbounded history of each table.
type Source interface {
	// ListFlavors returns every known flavor.
	ListFlavors(ctx context.Context) ([]models.Flavor, error)

	// ListWrappedEntries returns every wrapped batch.
	ListWrappedEntries(ctx context.Context) ([]models.ProductionEntry, error)

	// ListBakedEntries returns every baked batch.
	ListBakedEntries(ctx context.Context) ([]models.ProductionEntry, error)

	// ListAllocations returns the allocation rows of one market event,
	// or of all events when eventID is zero.
	ListAllocations(ctx context.Context, eventID uint) ([]models.Allocation, error)
}
