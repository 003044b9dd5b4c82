package report

import (
	"context"

	"empanada-tracker/core/models"
	"empanada-tracker/core/reconcile"
	"empanada-tracker/core/settlement"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Store is the read side of the event store used by reports.
type Store interface {
	reconcile.Source
	ListMarketEvents(ctx context.Context) ([]models.MarketEvent, error)
	GetMarketEvent(ctx context.Context, id uint) (models.MarketEvent, error)
	ListTapasEntries(ctx context.Context) ([]models.TapasEntry, error)
}

// Service builds reports.
type Service struct {
	store      Store
	reconciler *reconcile.Reconciler
	validator  settlement.Validator
	logger     *zap.Logger
}

// NewService creates a new report service.
func NewService(st Store, validator settlement.Validator, logger *zap.Logger) *Service {
	return &Service{
		store:      st,
		reconciler: reconcile.NewReconciler(st),
		validator:  validator,
		logger:     logger,
	}
}

// Inventory reconciles both pools. Anomalies are logged and returned with the levels.
func (s *Service) Inventory(ctx context.Context) (*reconcile.Inventory, error) {
	inv, err := s.reconciler.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	for _, a := range inv.Anomalies {
		s.logger.Warn("Inventory anomaly",
			zap.String("kind", string(a.Kind)),
			zap.String("pool", a.Pool),
			zap.String("flavor", a.Flavor),
			zap.Uint("flavor_id", a.FlavorID),
			zap.String("source", a.Source),
			zap.String("quantity", a.Quantity.String()))
	}
	return inv, nil
}

// Event validates the settlement of one market event.
func (s *Service) Event(ctx context.Context, eventID uint) (*EventReport, error) {
	var (
		event       models.MarketEvent
		flavors     []models.Flavor
		allocations []models.Allocation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		event, err = s.store.GetMarketEvent(gctx, eventID)
		return err
	})
	g.Go(func() error {
		var err error
		flavors, err = s.store.ListFlavors(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		allocations, err = s.store.ListAllocations(gctx, eventID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &EventReport{
		Event:           event,
		EventValidation: s.validator.ValidateEvent(flavors, allocations),
	}
	for _, line := range report.Inconsistent() {
		s.logger.Warn("Settlement does not reconcile",
			zap.Uint("event_id", eventID),
			zap.String("flavor", line.Flavor),
			zap.String("status", string(line.Validation.Status)),
			zap.String("discrepancy", line.Validation.Discrepancy.String()))
	}
	return report, nil
}

// Tapas totals the tapas production history.
func (s *Service) Tapas(ctx context.Context) (*TapasReport, error) {
	entries, err := s.store.ListTapasEntries(ctx)
	if err != nil {
		return nil, err
	}

	return &TapasReport{
		Summary: settlement.TapasTotals(entries),
		Weekly:  settlement.WeeklyTapasTotals(entries),
		Entries: entries,
	}, nil
}

// RecentEvents returns the latest limit market events, most recent first, with
// their sales totals. A non-positive limit selects DefaultRecentLimit.
func (s *Service) RecentEvents(ctx context.Context, limit int) ([]EventSummary, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	var (
		events      []models.MarketEvent
		allocations []models.Allocation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.store.ListMarketEvents(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		allocations, err = s.store.ListAllocations(gctx, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(events) > limit {
		events = events[:limit]
	}

	byEvent := make(map[uint][]models.Allocation)
	for _, a := range allocations {
		byEvent[a.MarketEventID] = append(byEvent[a.MarketEventID], a)
	}

	summaries := make([]EventSummary, 0, len(events))
	for _, e := range events {
		rows := byEvent[e.ID]
		summaries = append(summaries, EventSummary{
			Event:  e,
			State:  settlement.StateOf(rows),
			Totals: settlement.AggregateTotals(rows),
		})
	}
	return summaries, nil
}
