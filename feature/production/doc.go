// Package production records kitchen batches.
//
// Empanadas move through two stages: wrapped (filled and folded) and baked.
// Each batch is an append-only log entry. Baking is guarded against the current
// wrapped-unbaked level of the flavor, so the wrapped pool cannot be overdrawn
// through this service.
//
// Tapas batches are logged separately and never enter the empanada pools.
package production
