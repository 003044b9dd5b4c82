// Package store is the event store adapter backed by GORM.
//
// It exposes the read contract the reconciler and the settlement validator consume
// (flavors, markets, market events, wrapped/baked logs, allocations, tapas) and the
// write contract the feature services use to append new rows.
//
// # Tables
//
//   - flavors, markets: unique names; a clash surfaces ErrDuplicateIdentity.
//   - market_events: one row per market visit, cash filled at settlement.
//   - empanada_wrapped_added, empanada_baked: append-only production logs.
//   - market_flavor_data: allocation rows keyed on (market_event_id, flavor_id).
//   - tapas_production: tapas shells per day.
//
// Nothing is ever deleted. Write atomicity and name uniqueness are delegated to the
// database's transaction semantics.
//
// # Usage
//
//	st := store.New(db)
//	flavor, err := st.AddFlavor(ctx, "Beef")
//	if errors.Is(err, store.ErrDuplicateIdentity) {
//	    // already exists
//	}
package store
