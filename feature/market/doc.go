// Package market manages market events.
//
// An event is scheduled at a market, receives allocations of baked stock, and is
// settled once the stall closes. Allocation is guarded against the available
// baked level of the flavor. Settlement figures are validated against the
// allocation; by default an inconsistent settlement is recorded and logged, and in
// strict mode it is rejected before anything is written.
package market
