package store

import (
	"time"

	"empanada-tracker/core/models"

	"github.com/shopspring/decimal"
)

type flavorRow struct {
	ID   uint   `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;type:varchar(100);not null;uniqueIndex"`
}

func (flavorRow) TableName() string { return "flavors" }

type marketRow struct {
	ID   uint   `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;type:varchar(100);not null;uniqueIndex"`
}

func (marketRow) TableName() string { return "markets" }

type marketEventRow struct {
	ID        uint                `gorm:"column:id;primaryKey"`
	MarketID  uint                `gorm:"column:market_id;not null;index"`
	EventDate time.Time           `gorm:"column:event_date;not null"`
	Cash      decimal.NullDecimal `gorm:"column:cash;type:decimal(12,4)"`
}

func (marketEventRow) TableName() string { return "market_events" }

// marketEventView is a market event joined with its market name.
type marketEventView struct {
	ID         uint
	MarketID   uint
	MarketName string
	EventDate  time.Time
	Cash       decimal.NullDecimal
}

func (v marketEventView) toModel() models.MarketEvent {
	return models.MarketEvent{
		ID:         v.ID,
		MarketID:   v.MarketID,
		MarketName: v.MarketName,
		EventDate:  v.EventDate,
		Cash:       v.Cash,
	}
}

type wrappedRow struct {
	ID       uint            `gorm:"column:id;primaryKey"`
	Date     time.Time       `gorm:"column:date;not null"`
	FlavorID uint            `gorm:"column:flavor_id;not null;index"`
	Dozens   decimal.Decimal `gorm:"column:dozens;type:decimal(12,4);not null"`
}

func (wrappedRow) TableName() string { return "empanada_wrapped_added" }

type bakedRow struct {
	ID       uint            `gorm:"column:id;primaryKey"`
	Date     time.Time       `gorm:"column:date;not null"`
	FlavorID uint            `gorm:"column:flavor_id;not null;index"`
	Dozens   decimal.Decimal `gorm:"column:dozens;type:decimal(12,4);not null"`
}

func (bakedRow) TableName() string { return "empanada_baked" }

type allocationRow struct {
	MarketEventID uint                `gorm:"column:market_event_id;primaryKey;autoIncrement:false"`
	FlavorID      uint                `gorm:"column:flavor_id;primaryKey;autoIncrement:false"`
	Allocated     decimal.NullDecimal `gorm:"column:allocated;type:decimal(12,4)"`
	Brought       decimal.NullDecimal `gorm:"column:brought;type:decimal(12,4)"`
	Sold          decimal.NullDecimal `gorm:"column:sold;type:decimal(12,4)"`
	Leftover      decimal.NullDecimal `gorm:"column:leftover;type:decimal(12,4)"`
}

func (allocationRow) TableName() string { return "market_flavor_data" }

func (r allocationRow) toModel() models.Allocation {
	return models.Allocation{
		MarketEventID: r.MarketEventID,
		FlavorID:      r.FlavorID,
		Allocated:     r.Allocated,
		Brought:       r.Brought,
		Sold:          r.Sold,
		Leftover:      r.Leftover,
	}
}

type tapasRow struct {
	ID            uint            `gorm:"column:id;primaryKey"`
	Date          time.Time       `gorm:"column:date;not null"`
	RegularDozens decimal.Decimal `gorm:"column:regular_dozens;type:decimal(12,4);not null"`
	GheeDozens    decimal.Decimal `gorm:"column:ghee_dozens;type:decimal(12,4);not null"`
	Notes         string          `gorm:"column:notes;type:varchar(500)"`
}

func (tapasRow) TableName() string { return "tapas_production" }

// expectedColumns lists the columns each table must carry for the store to work.
var expectedColumns = map[string][]string{
	"flavors":                {"id", "name"},
	"markets":                {"id", "name"},
	"market_events":          {"id", "market_id", "event_date", "cash"},
	"empanada_wrapped_added": {"id", "date", "flavor_id", "dozens"},
	"empanada_baked":         {"id", "date", "flavor_id", "dozens"},
	"market_flavor_data":     {"market_event_id", "flavor_id", "allocated", "brought", "sold", "leftover"},
	"tapas_production":       {"id", "date", "regular_dozens", "ghee_dozens", "notes"},
}
