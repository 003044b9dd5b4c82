package reconcile

import (
	"context"
	"fmt"

	"empanada-tracker/core/models"

	"golang.org/x/sync/errgroup"
)

// Snapshot is an immutable view of the rows one reconciliation runs over.
type Snapshot struct {
	// Flavors is the known flavor set.
	Flavors []models.Flavor

	// Wrapped is the wrapped production log.
	Wrapped []models.ProductionEntry

	// Baked is the baked production log.
	Baked []models.ProductionEntry

	// Allocations holds the allocation rows of every market event.
	Allocations []models.Allocation
}

// FlavorName resolves a flavor id against the snapshot's flavor set.
func (s *Snapshot) FlavorName(id uint) (string, bool) {
	for _, f := range s.Flavors {
		if f.ID == id {
			return f.Name, true
		}
	}
	return "", false
}

// LoadSnapshot lists every table the reconciler needs.
// The four lists are loaded concurrently; the first error cancels the rest.
func LoadSnapshot(ctx context.Context, src Source) (*Snapshot, error) {
	var snap Snapshot

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.Flavors, err = src.ListFlavors(gctx)
		if err != nil {
			return fmt.Errorf("failed to list flavors: %w", err)
		}
		return nil
	})

	g.Go(func() (err error) {
		snap.Wrapped, err = src.ListWrappedEntries(gctx)
		if err != nil {
			return fmt.Errorf("failed to list wrapped entries: %w", err)
		}
		return nil
	})

	g.Go(func() (err error) {
		snap.Baked, err = src.ListBakedEntries(gctx)
		if err != nil {
			return fmt.Errorf("failed to list baked entries: %w", err)
		}
		return nil
	})

	g.Go(func() (err error) {
		snap.Allocations, err = src.ListAllocations(gctx, 0)
		if err != nil {
			return fmt.Errorf("failed to list allocations: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &snap, nil
}

// Reconciler computes inventory levels from an explicitly injected store handle.
type Reconciler struct {
	source Source
}

// NewReconciler creates a reconciler reading from src.
func NewReconciler(src Source) *Reconciler {
	return &Reconciler{source: src}
}

// Inventory loads a fresh snapshot and returns both inventory pools.
func (r *Reconciler) Inventory(ctx context.Context) (*Inventory, error) {
	snap, err := LoadSnapshot(ctx, r.source)
	if err != nil {
		return nil, err
	}
	return Reconcile(snap), nil
}
