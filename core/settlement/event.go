package settlement

import (
	"fmt"
	"sort"

	"empanada-tracker/core/models"

	"github.com/shopspring/decimal"
)

// EventState describes how far a market event has progressed.
type EventState string

const (
	// StateScheduled means no allocation rows exist yet.
	StateScheduled EventState = "scheduled"
	// StateAllocated means rows exist but at least one flavor is unsettled.
	StateAllocated EventState = "allocated"
	// StateSettled means sold and leftover are recorded for every allocated flavor.
	StateSettled EventState = "settled"
)

// StateOf derives the state of an event from its allocation rows.
func StateOf(allocations []models.Allocation) EventState {
	if len(allocations) == 0 {
		return StateScheduled
	}
	for _, a := range allocations {
		if !a.Settled() {
			return StateAllocated
		}
	}
	return StateSettled
}

// FlavorLine is the validated settlement of one flavor at an event.
type FlavorLine struct {
	FlavorID   uint                `json:"flavor_id"`
	Flavor     string              `json:"flavor"`
	Allocated  decimal.NullDecimal `json:"allocated"`
	Brought    decimal.NullDecimal `json:"brought"`
	Sold       decimal.NullDecimal `json:"sold"`
	Leftover   decimal.NullDecimal `json:"leftover"`
	Validation Validation          `json:"validation"`
}

// EventValidation is the settlement report of one market event.
type EventValidation struct {
	State  EventState   `json:"state"`
	Lines  []FlavorLine `json:"lines"`
	Totals Totals       `json:"totals"`
}

// Inconsistent returns the lines that do not reconcile, including missing references.
func (e EventValidation) Inconsistent() []FlavorLine {
	var out []FlavorLine
	for _, l := range e.Lines {
		if l.Validation.Status == Inconsistent || l.Validation.Status == MissingReference {
			out = append(out, l)
		}
	}
	return out
}

// ValidateEvent validates every allocation row of one event. Lines are ordered by flavor name.
func (v Validator) ValidateEvent(flavors []models.Flavor, allocations []models.Allocation) EventValidation {
	names := make(map[uint]string, len(flavors))
	for _, f := range flavors {
		names[f.ID] = f.Name
	}

	lines := make([]FlavorLine, 0, len(allocations))
	for _, a := range allocations {
		line := FlavorLine{
			FlavorID:  a.FlavorID,
			Allocated: a.Allocated,
			Brought:   a.Brought,
			Sold:      a.Sold,
			Leftover:  a.Leftover,
		}

		name, ok := names[a.FlavorID]
		if !ok {
			line.Flavor = fmt.Sprintf("#%d", a.FlavorID)
			line.Validation = Validation{
				Status:      MissingReference,
				Discrepancy: v.validateRow(a).Discrepancy,
			}
		} else {
			line.Flavor = name
			line.Validation = v.validateRow(a)
		}
		lines = append(lines, line)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Flavor < lines[j].Flavor
	})

	return EventValidation{
		State:  StateOf(allocations),
		Lines:  lines,
		Totals: AggregateTotals(allocations),
	}
}
