package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Levels maps a flavor name to a quantity in dozens.
type Levels map[string]decimal.Decimal

// Names returns the flavor names in sorted order.
func (l Levels) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AnomalyKind classifies a data-integrity or arithmetic anomaly.
type AnomalyKind string

const (
	// AnomalyUnknownFlavor marks a row referencing a flavor id absent from the flavor set.
	// The row is skipped by the computation.
	AnomalyUnknownFlavor AnomalyKind = "unknown_flavor"
	// AnomalyNegativeInventory marks a flavor whose computed level is below zero.
	AnomalyNegativeInventory AnomalyKind = "negative_inventory"
)

// Source names the log a row or level came from.
const (
	SourceWrapped    = "wrapped"
	SourceBaked      = "baked"
	SourceAllocation = "allocation"
)

// Anomaly is a visible discrepancy for operator review. It is never fatal.
type Anomaly struct {
	// Kind classifies the anomaly.
	Kind AnomalyKind `json:"kind"`

	// Pool is the computed pool ("wrapped_unbaked" or "available_baked").
	Pool string `json:"pool"`

	// Flavor is the flavor name, empty for unknown references.
	Flavor string `json:"flavor,omitempty"`

	// FlavorID is the referenced flavor id.
	FlavorID uint `json:"flavor_id"`

	// Source is the log the offending row came from (unknown references only).
	Source string `json:"source,omitempty"`

	// Quantity is the skipped row's quantity or the negative level.
	Quantity decimal.Decimal `json:"quantity"`
}

// Pool names.
const (
	PoolWrappedUnbaked = "wrapped_unbaked"
	PoolAvailableBaked = "available_baked"
)

// Result is the output of one reconciliation query.
type Result struct {
	// Levels holds one entry per known flavor.
	Levels Levels `json:"levels"`

	// Anomalies lists skipped rows first (input order), then negative levels by flavor name.
	Anomalies []Anomaly `json:"anomalies"`
}

// Level returns the level for a flavor, zero when the flavor is unknown.
func (r *Result) Level(flavor string) decimal.Decimal {
	if v, ok := r.Levels[flavor]; ok {
		return v
	}
	return decimal.Zero
}

// Inventory bundles both reconciliation queries over the same snapshot.
type Inventory struct {
	// WrappedUnbaked is the wrapped-but-unbaked level per flavor.
	WrappedUnbaked Levels `json:"wrapped_unbaked"`

	// AvailableBaked is the fully baked, unallocated level per flavor.
	AvailableBaked Levels `json:"available_baked"`

	// Anomalies merges the anomalies of both queries.
	Anomalies []Anomaly `json:"anomalies"`

	// Snapshot is the data the levels were derived from.
	Snapshot *Snapshot `json:"-"`
}

// Flavors returns the known flavor names in sorted order.
func (inv *Inventory) Flavors() []string {
	return inv.WrappedUnbaked.Names()
}

// Shortage reports a request for more dozens than a pool holds.
type Shortage struct {
	Pool      string          `json:"pool"`
	Flavor    string          `json:"flavor"`
	Requested decimal.Decimal `json:"requested"`
	Available decimal.Decimal `json:"available"`
}

func (s *Shortage) Error() string {
	return fmt.Sprintf("only %s dozen(s) of %s %s, %s requested",
		s.Available.String(), s.Flavor, strings.ReplaceAll(s.Pool, "_", " "), s.Requested.String())
}

// Check returns a Shortage when requested exceeds the level of flavor in pool.
func (inv *Inventory) Check(pool, flavor string, requested decimal.Decimal) error {
	var available decimal.Decimal
	switch pool {
	case PoolWrappedUnbaked:
		available = inv.WrappedUnbaked[flavor]
	case PoolAvailableBaked:
		available = inv.AvailableBaked[flavor]
	default:
		return fmt.Errorf("unknown pool %q", pool)
	}
	if requested.GreaterThan(available) {
		return &Shortage{Pool: pool, Flavor: flavor, Requested: requested, Available: available}
	}
	return nil
}
