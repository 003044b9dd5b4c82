package reconcile

import (
	"sort"

	"empanada-tracker/core/models"

	"github.com/shopspring/decimal"
)

// WrappedUnbaked computes, per flavor, Σ wrapped dozens − Σ baked dozens.
// Every flavor appears in the result. Negative levels are kept and flagged.
func WrappedUnbaked(flavors []models.Flavor, wrapped, baked []models.ProductionEntry) *Result {
	acc := newAccumulator(PoolWrappedUnbaked, flavors)

	for _, e := range wrapped {
		acc.add(SourceWrapped, e.FlavorID, e.Dozens)
	}
	for _, e := range baked {
		acc.sub(SourceBaked, e.FlavorID, e.Dozens)
	}

	return acc.result()
}

// AvailableBaked computes, per flavor, Σ baked − Σ allocated + Σ leftover.
// NULL allocated or leftover figures count as zero.
func AvailableBaked(flavors []models.Flavor, baked []models.ProductionEntry, allocations []models.Allocation) *Result {
	acc := newAccumulator(PoolAvailableBaked, flavors)

	for _, e := range baked {
		acc.add(SourceBaked, e.FlavorID, e.Dozens)
	}
	for _, a := range allocations {
		// Net effect of the row; unsettled rows only subtract what was allocated.
		net := models.OrZero(a.Leftover).Sub(models.OrZero(a.Allocated))
		acc.add(SourceAllocation, a.FlavorID, net)
	}

	return acc.result()
}

// Reconcile runs both queries over one snapshot.
func Reconcile(snap *Snapshot) *Inventory {
	wrapped := WrappedUnbaked(snap.Flavors, snap.Wrapped, snap.Baked)
	baked := AvailableBaked(snap.Flavors, snap.Baked, snap.Allocations)

	anomalies := make([]Anomaly, 0, len(wrapped.Anomalies)+len(baked.Anomalies))
	anomalies = append(anomalies, wrapped.Anomalies...)
	anomalies = append(anomalies, baked.Anomalies...)

	return &Inventory{
		WrappedUnbaked: wrapped.Levels,
		AvailableBaked: baked.Levels,
		Anomalies:      anomalies,
		Snapshot:       snap,
	}
}

// accumulator sums quantities per flavor name for one pool.
type accumulator struct {
	pool    string
	names   map[uint]string
	levels  Levels
	skipped []Anomaly
}

func newAccumulator(pool string, flavors []models.Flavor) *accumulator {
	acc := &accumulator{
		pool:   pool,
		names:  make(map[uint]string, len(flavors)),
		levels: make(Levels, len(flavors)),
	}
	for _, f := range flavors {
		acc.names[f.ID] = f.Name
		acc.levels[f.Name] = decimal.Zero
	}
	return acc
}

func (a *accumulator) add(source string, flavorID uint, qty decimal.Decimal) {
	name, ok := a.names[flavorID]
	if !ok {
		a.skipped = append(a.skipped, Anomaly{
			Kind:     AnomalyUnknownFlavor,
			Pool:     a.pool,
			FlavorID: flavorID,
			Source:   source,
			Quantity: qty,
		})
		return
	}
	a.levels[name] = a.levels[name].Add(qty)
}

func (a *accumulator) sub(source string, flavorID uint, qty decimal.Decimal) {
	if _, ok := a.names[flavorID]; !ok {
		// Report the row as recorded, not negated.
		a.add(source, flavorID, qty)
		return
	}
	a.add(source, flavorID, qty.Neg())
}

func (a *accumulator) result() *Result {
	anomalies := append([]Anomaly{}, a.skipped...)

	ids := make(map[string]uint, len(a.names))
	for id, name := range a.names {
		ids[name] = id
	}

	var negative []Anomaly
	for name, level := range a.levels {
		if level.IsNegative() {
			negative = append(negative, Anomaly{
				Kind:     AnomalyNegativeInventory,
				Pool:     a.pool,
				Flavor:   name,
				FlavorID: ids[name],
				Quantity: level,
			})
		}
	}
	sort.Slice(negative, func(i, j int) bool {
		return negative[i].Flavor < negative[j].Flavor
	})

	return &Result{
		Levels:    a.levels,
		Anomalies: append(anomalies, negative...),
	}
}
