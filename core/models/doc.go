// Package models defines the entities recorded by the empanada tracker.
//
// Every quantity (dozens, cash) is a decimal.Decimal so that long-running sums over the
// production and sales history stay exact. Figures that are filled in later in an
// entity's life (cash, sold, leftover) are decimal.NullDecimal: a NULL figure means
// "not recorded yet" and counts as zero in every sum.
//
// # Entities
//
//   - Flavor, Market: named identities, unique by name.
//   - ProductionEntry: one wrapped or baked batch for a flavor on a date.
//   - MarketEvent: one sales occasion at a market.
//   - Allocation: per (event, flavor) allocated/brought/sold/leftover figures.
//   - TapasEntry: one day of tapas shell production (regular and ghee).
package models
