package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"empanada-tracker/core/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddFlavor creates a flavor. A clashing name returns ErrDuplicateIdentity.
func (s *Store) AddFlavor(ctx context.Context, name string) (models.Flavor, error) {
	row := flavorRow{Name: strings.TrimSpace(name)}
	if err := s.addNamed(ctx, "flavor", row.Name, &flavorRow{}, &row); err != nil {
		return models.Flavor{}, err
	}
	return models.Flavor{ID: row.ID, Name: row.Name}, nil
}

// AddMarket creates a market. A clashing name returns ErrDuplicateIdentity.
func (s *Store) AddMarket(ctx context.Context, name string) (models.Market, error) {
	row := marketRow{Name: strings.TrimSpace(name)}
	if err := s.addNamed(ctx, "market", row.Name, &marketRow{}, &row); err != nil {
		return models.Market{}, err
	}
	return models.Market{ID: row.ID, Name: row.Name}, nil
}

// addNamed inserts a uniquely named row. The existence check gives a clean error on
// every driver; the unique index still settles concurrent inserts.
func (s *Store) addNamed(ctx context.Context, kind, name string, model, row any) error {
	if name == "" {
		return fmt.Errorf("%s: %w", kind, ErrInvalidName)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(model).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateIdentity
		}
		return tx.Create(row).Error
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrDuplicateIdentity), errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s %q %w", kind, name, ErrDuplicateIdentity)
	default:
		return fmt.Errorf("failed to insert %s %q: %w", kind, name, err)
	}
}

// CreateMarketEvent schedules a visit to a market.
func (s *Store) CreateMarketEvent(ctx context.Context, marketID uint, date time.Time) (models.MarketEvent, error) {
	var market marketRow
	err := s.db.WithContext(ctx).Where("id = ?", marketID).Limit(1).Find(&market).Error
	if err != nil {
		return models.MarketEvent{}, fmt.Errorf("failed to query market %d: %w", marketID, err)
	}
	if market.ID == 0 {
		return models.MarketEvent{}, fmt.Errorf("market %d: %w", marketID, ErrNotFound)
	}

	row := marketEventRow{MarketID: marketID, EventDate: date}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.MarketEvent{}, fmt.Errorf("failed to insert market event: %w", err)
	}

	return models.MarketEvent{
		ID:         row.ID,
		MarketID:   row.MarketID,
		MarketName: market.Name,
		EventDate:  row.EventDate,
	}, nil
}

// RecordWrapped appends a wrapped batch.
func (s *Store) RecordWrapped(ctx context.Context, entry models.ProductionEntry) (models.ProductionEntry, error) {
	row := wrappedRow{Date: entry.Date, FlavorID: entry.FlavorID, Dozens: entry.Dozens}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.ProductionEntry{}, fmt.Errorf("failed to insert wrapped entry: %w", err)
	}
	entry.ID = row.ID
	return entry, nil
}

// RecordBaked appends a baked batch.
func (s *Store) RecordBaked(ctx context.Context, entry models.ProductionEntry) (models.ProductionEntry, error) {
	row := bakedRow{Date: entry.Date, FlavorID: entry.FlavorID, Dozens: entry.Dozens}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.ProductionEntry{}, fmt.Errorf("failed to insert baked entry: %w", err)
	}
	entry.ID = row.ID
	return entry, nil
}

// RecordTapas appends a tapas batch.
func (s *Store) RecordTapas(ctx context.Context, entry models.TapasEntry) (models.TapasEntry, error) {
	row := tapasRow{
		Date:          entry.Date,
		RegularDozens: entry.RegularDozens,
		GheeDozens:    entry.GheeDozens,
		Notes:         strings.TrimSpace(entry.Notes),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return models.TapasEntry{}, fmt.Errorf("failed to insert tapas production: %w", err)
	}
	entry.ID = row.ID
	entry.Notes = row.Notes
	return entry, nil
}

// Allocate assigns baked dozens of a flavor to a market event.
// Repeated allocations of the same flavor to the same event add up.
func (s *Store) Allocate(ctx context.Context, eventID, flavorID uint, dozens decimal.Decimal) (models.Allocation, error) {
	row := allocationRow{
		MarketEventID: eventID,
		FlavorID:      flavorID,
		Allocated:     models.Known(dozens),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "market_event_id"}, {Name: "flavor_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"allocated": gorm.Expr("COALESCE(allocated, 0) + ?", dozens),
			}),
		}).Create(&row).Error
		if err != nil {
			return err
		}

		return tx.Where("market_event_id = ? AND flavor_id = ?", eventID, flavorID).First(&row).Error
	})
	if err != nil {
		return models.Allocation{}, fmt.Errorf("failed to allocate flavor %d to event %d: %w", flavorID, eventID, err)
	}
	return row.toModel(), nil
}

// Settlement carries the figures recorded after a market event concludes.
type Settlement struct {
	Brought  decimal.NullDecimal
	Sold     decimal.Decimal
	Leftover decimal.Decimal
}

// RecordSettlement stores brought/sold/leftover for an allocated flavor.
// It returns ErrAllocationNotFound when the flavor was never allocated to the event.
func (s *Store) RecordSettlement(ctx context.Context, eventID, flavorID uint, st Settlement) (models.Allocation, error) {
	var row allocationRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []allocationRow
		err := tx.Where("market_event_id = ? AND flavor_id = ?", eventID, flavorID).Limit(1).Find(&rows).Error
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return ErrAllocationNotFound
		}

		err = tx.Model(&allocationRow{}).
			Where("market_event_id = ? AND flavor_id = ?", eventID, flavorID).
			Updates(map[string]any{
				"brought":  st.Brought,
				"sold":     models.Known(st.Sold),
				"leftover": models.Known(st.Leftover),
			}).Error
		if err != nil {
			return err
		}

		row = rows[0]
		row.Brought = st.Brought
		row.Sold = models.Known(st.Sold)
		row.Leftover = models.Known(st.Leftover)
		return nil
	})
	if errors.Is(err, ErrAllocationNotFound) {
		return models.Allocation{}, fmt.Errorf("event %d flavor %d: %w", eventID, flavorID, err)
	}
	if err != nil {
		return models.Allocation{}, fmt.Errorf("failed to record settlement: %w", err)
	}
	return row.toModel(), nil
}

// RecordCash stores the cash taken at a market event. Last write wins.
func (s *Store) RecordCash(ctx context.Context, eventID uint, cash decimal.Decimal) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&marketEventRow{}).Where("id = ?", eventID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return tx.Model(&marketEventRow{}).Where("id = ?", eventID).Update("cash", models.Known(cash)).Error
	})
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("market event %d: %w", eventID, err)
	}
	if err != nil {
		return fmt.Errorf("failed to record cash: %w", err)
	}
	return nil
}
