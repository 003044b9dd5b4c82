// Package reconcile derives point-in-time inventory levels from the raw production and
// sales history.
//
// Two stock pools are tracked per flavor:
//
//   - wrapped-but-unbaked: Σ wrapped − Σ baked
//   - available baked:     Σ baked − Σ allocated + Σ leftover
//
// Baked stock allocated to a market event is unavailable until the settlement records a
// leftover figure, at which point the unsold dozens return to the pool.
//
// # Architecture
//
// The package consists of three parts:
//
// 1. Engine: WrappedUnbaked and AvailableBaked are pure functions over a snapshot of rows.
//    Every known flavor appears in the result (zero by default). Negative levels are kept
//    and flagged. Rows referencing an unknown flavor are skipped and flagged.
//
// 2. Source: the read contract of the event store. Any store that can list flavors,
//    production entries and allocations can be reconciled.
//
// 3. Snapshot: LoadSnapshot lists every table concurrently and hands the engine an
//    immutable view. Nothing is cached; each reconciliation re-derives from the full
//    current event set.
//
// # Usage Example
//
//	r := reconcile.NewReconciler(store)
//	inv, err := r.Inventory(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, name := range inv.Flavors() {
//	    fmt.Println(name, inv.WrappedUnbaked[name], inv.AvailableBaked[name])
//	}
package reconcile
