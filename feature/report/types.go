package report

import (
	"empanada-tracker/core/models"
	"empanada-tracker/core/settlement"
)

// Archive kinds.
const (
	KindInventory = "inventory"
	KindEvent     = "event"
	KindEvents    = "events"
	KindTapas     = "tapas"
)

// DefaultRecentLimit is the number of events RecentEvents returns when no limit is given.
const DefaultRecentLimit = 10

// EventReport is the settlement report of one market event.
type EventReport struct {
	Event models.MarketEvent `json:"event"`
	settlement.EventValidation
}

// EventSummary is one line of the recent events dashboard.
type EventSummary struct {
	Event  models.MarketEvent    `json:"event"`
	State  settlement.EventState `json:"state"`
	Totals settlement.Totals     `json:"totals"`
}

// TapasReport is the tapas production history with its totals.
type TapasReport struct {
	Summary settlement.TapasSummary  `json:"summary"`
	Weekly  []settlement.WeeklyTapas `json:"weekly"`
	Entries []models.TapasEntry      `json:"entries"`
}
