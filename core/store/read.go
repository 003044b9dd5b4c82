package store

import (
	"context"
	"fmt"

	"empanada-tracker/core/models"

	"gorm.io/gorm"
)

// ListFlavors returns every flavor ordered by name.
func (s *Store) ListFlavors(ctx context.Context) ([]models.Flavor, error) {
	var rows []flavorRow
	if err := s.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query flavors: %w", err)
	}

	flavors := make([]models.Flavor, 0, len(rows))
	for _, r := range rows {
		flavors = append(flavors, models.Flavor{ID: r.ID, Name: r.Name})
	}
	return flavors, nil
}

// ListMarkets returns every market ordered by name.
func (s *Store) ListMarkets(ctx context.Context) ([]models.Market, error) {
	var rows []marketRow
	if err := s.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query markets: %w", err)
	}

	markets := make([]models.Market, 0, len(rows))
	for _, r := range rows {
		markets = append(markets, models.Market{ID: r.ID, Name: r.Name})
	}
	return markets, nil
}

// ListMarketEvents returns every market event, most recent first.
func (s *Store) ListMarketEvents(ctx context.Context) ([]models.MarketEvent, error) {
	var views []marketEventView
	err := s.eventQuery(ctx).
		Order("market_events.event_date DESC, market_events.id DESC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query market events: %w", err)
	}

	events := make([]models.MarketEvent, 0, len(views))
	for _, v := range views {
		events = append(events, v.toModel())
	}
	return events, nil
}

func (s *Store) eventQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("market_events").
		Select("market_events.id, market_events.market_id, markets.name AS market_name, market_events.event_date, market_events.cash").
		Joins("JOIN markets ON markets.id = market_events.market_id")
}

// GetMarketEvent returns one market event, or ErrNotFound.
func (s *Store) GetMarketEvent(ctx context.Context, id uint) (models.MarketEvent, error) {
	var views []marketEventView
	err := s.eventQuery(ctx).
		Where("market_events.id = ?", id).
		Limit(1).
		Scan(&views).Error
	if err != nil {
		return models.MarketEvent{}, fmt.Errorf("failed to query market event %d: %w", id, err)
	}
	if len(views) == 0 {
		return models.MarketEvent{}, fmt.Errorf("market event %d: %w", id, ErrNotFound)
	}
	return views[0].toModel(), nil
}

// ListWrappedEntries returns the wrapped log in date order.
func (s *Store) ListWrappedEntries(ctx context.Context) ([]models.ProductionEntry, error) {
	var rows []wrappedRow
	if err := s.db.WithContext(ctx).Order("date, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query wrapped entries: %w", err)
	}

	entries := make([]models.ProductionEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, models.ProductionEntry{ID: r.ID, Date: r.Date, FlavorID: r.FlavorID, Dozens: r.Dozens})
	}
	return entries, nil
}

// ListBakedEntries returns the baked log in date order.
func (s *Store) ListBakedEntries(ctx context.Context) ([]models.ProductionEntry, error) {
	var rows []bakedRow
	if err := s.db.WithContext(ctx).Order("date, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query baked entries: %w", err)
	}

	entries := make([]models.ProductionEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, models.ProductionEntry{ID: r.ID, Date: r.Date, FlavorID: r.FlavorID, Dozens: r.Dozens})
	}
	return entries, nil
}

// ListAllocations returns the allocation rows of one event, or of every event when eventID is zero.
func (s *Store) ListAllocations(ctx context.Context, eventID uint) ([]models.Allocation, error) {
	q := s.db.WithContext(ctx).Order("market_event_id, flavor_id")
	if eventID != 0 {
		q = q.Where("market_event_id = ?", eventID)
	}

	var rows []allocationRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query allocations: %w", err)
	}

	allocations := make([]models.Allocation, 0, len(rows))
	for _, r := range rows {
		allocations = append(allocations, r.toModel())
	}
	return allocations, nil
}

// ListTapasEntries returns every tapas batch, most recent first.
func (s *Store) ListTapasEntries(ctx context.Context) ([]models.TapasEntry, error) {
	var rows []tapasRow
	if err := s.db.WithContext(ctx).Order("date DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query tapas production: %w", err)
	}

	entries := make([]models.TapasEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, models.TapasEntry{
			ID:            r.ID,
			Date:          r.Date,
			RegularDozens: r.RegularDozens,
			GheeDozens:    r.GheeDozens,
			Notes:         r.Notes,
		})
	}
	return entries, nil
}
