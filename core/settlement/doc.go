// Package settlement validates market settlements and aggregates event and tapas totals.
//
// A settlement reconciles when sold + leftover equals allocated within a small tolerance.
// Validation is advisory: a mismatch is reported with its signed discrepancy
// (allocated − (sold + leftover)) and never prevents the figures from being recorded.
//
// # Event lifecycle
//
// A market event is Scheduled (no allocation rows), then Allocated (rows exist, at least
// one flavor unsettled), then Settled (sold and leftover recorded for every flavor).
// The validator works on events in any state and reports partial totals for incomplete
// ones.
package settlement
