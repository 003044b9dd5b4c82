package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Flavor is a distinct empanada filling tracked through production and sales.
type Flavor struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Market is a recurring sales venue.
type Market struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Stage identifies which production log an entry belongs to.
type Stage string

const (
	// StageWrapped is the first production stage (assembled, unbaked).
	StageWrapped Stage = "wrapped"
	// StageBaked is the second production stage (ready for sale).
	StageBaked Stage = "baked"
)

// ProductionEntry is a batch of dozens wrapped or baked on a date for a flavor.
type ProductionEntry struct {
	ID       uint            `json:"id"`
	Date     time.Time       `json:"date"`
	FlavorID uint            `json:"flavor_id"`
	Dozens   decimal.Decimal `json:"dozens"`
}

// MarketEvent is one sales occasion at a market.
type MarketEvent struct {
	ID         uint                `json:"id"`
	MarketID   uint                `json:"market_id"`
	MarketName string              `json:"market_name,omitempty"`
	EventDate  time.Time           `json:"event_date"`
	Cash       decimal.NullDecimal `json:"cash"`
}

// Allocation holds the per-flavor figures of one market event.
// Allocated is set when baked stock is assigned; Sold and Leftover after the event.
type Allocation struct {
	MarketEventID uint                `json:"market_event_id"`
	FlavorID      uint                `json:"flavor_id"`
	Allocated     decimal.NullDecimal `json:"allocated"`
	Brought       decimal.NullDecimal `json:"brought"`
	Sold          decimal.NullDecimal `json:"sold"`
	Leftover      decimal.NullDecimal `json:"leftover"`
}

// Settled reports whether both sold and leftover have been recorded.
func (a Allocation) Settled() bool {
	return a.Sold.Valid && a.Leftover.Valid
}

// TapasEntry is one recorded batch of tapas shells.
type TapasEntry struct {
	ID            uint            `json:"id"`
	Date          time.Time       `json:"date"`
	RegularDozens decimal.Decimal `json:"regular_dozens"`
	GheeDozens    decimal.Decimal `json:"ghee_dozens"`
	Notes         string          `json:"notes,omitempty"`
}
