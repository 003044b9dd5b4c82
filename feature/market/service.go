package market

import (
	"context"
	"fmt"
	"time"

	"empanada-tracker/core/models"
	"empanada-tracker/core/reconcile"
	"empanada-tracker/core/settlement"
	"empanada-tracker/core/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Store is the slice of the event store the market service needs.
type Store interface {
	reconcile.Source
	GetMarketEvent(ctx context.Context, id uint) (models.MarketEvent, error)
	CreateMarketEvent(ctx context.Context, marketID uint, date time.Time) (models.MarketEvent, error)
	Allocate(ctx context.Context, eventID, flavorID uint, dozens decimal.Decimal) (models.Allocation, error)
	RecordSettlement(ctx context.Context, eventID, flavorID uint, st store.Settlement) (models.Allocation, error)
	RecordCash(ctx context.Context, eventID uint, cash decimal.Decimal) error
}

// Config controls settlement handling.
type Config struct {
	// Validator checks settlements.
	Validator settlement.Validator
	// Strict rejects inconsistent settlements instead of recording them.
	Strict bool
}

// Service handles market event operations.
type Service struct {
	store      Store
	reconciler *reconcile.Reconciler
	cfg        Config
	logger     *zap.Logger
}

// NewService creates a new market service.
func NewService(st Store, cfg Config, logger *zap.Logger) *Service {
	if !cfg.Validator.Tolerance.IsPositive() {
		cfg.Validator = settlement.NewValidator(cfg.Validator.Tolerance)
	}
	return &Service{
		store:      st,
		reconciler: reconcile.NewReconciler(st),
		cfg:        cfg,
		logger:     logger,
	}
}

// CreateEvent schedules a visit to a market.
func (s *Service) CreateEvent(ctx context.Context, marketID uint, date time.Time) (models.MarketEvent, error) {
	event, err := s.store.CreateMarketEvent(ctx, marketID, date)
	if err != nil {
		return models.MarketEvent{}, err
	}

	s.logger.Info("Scheduled market event",
		zap.Uint("event_id", event.ID),
		zap.String("market", event.MarketName),
		zap.String("date", date.Format(time.DateOnly)))
	return event, nil
}

// Allocate assigns baked dozens to an event. The request must not exceed the
// flavor's available baked level.
func (s *Service) Allocate(ctx context.Context, eventID, flavorID uint, dozens decimal.Decimal) (models.Allocation, error) {
	if !dozens.IsPositive() {
		return models.Allocation{}, fmt.Errorf("allocate %s dozen(s): %w", dozens, ErrInvalidQuantity)
	}

	event, err := s.store.GetMarketEvent(ctx, eventID)
	if err != nil {
		return models.Allocation{}, err
	}

	inv, err := s.reconciler.Inventory(ctx)
	if err != nil {
		return models.Allocation{}, err
	}
	name, ok := inv.Snapshot.FlavorName(flavorID)
	if !ok {
		return models.Allocation{}, fmt.Errorf("flavor %d: %w", flavorID, ErrUnknownFlavor)
	}
	if err := inv.Check(reconcile.PoolAvailableBaked, name, dozens); err != nil {
		return models.Allocation{}, fmt.Errorf("%w: %w", ErrInsufficientStock, err)
	}

	allocation, err := s.store.Allocate(ctx, eventID, flavorID, dozens)
	if err != nil {
		return models.Allocation{}, err
	}

	s.logger.Info("Allocated stock",
		zap.Uint("event_id", eventID),
		zap.String("market", event.MarketName),
		zap.String("flavor", name),
		zap.String("dozens", dozens.String()),
		zap.String("allocated", models.OrZero(allocation.Allocated).String()))
	return allocation, nil
}

// SettleInput carries the figures counted after an event.
type SettleInput struct {
	// Brought is informational and may be unknown.
	Brought  decimal.NullDecimal
	Sold     decimal.Decimal
	Leftover decimal.Decimal
}

// Settle records sold and leftover for an allocated flavor and returns the validation.
// An inconsistent settlement is recorded with a warning unless the service is strict,
// in which case nothing is written and ErrInconsistentSettlement is returned.
func (s *Service) Settle(ctx context.Context, eventID, flavorID uint, in SettleInput) (settlement.Validation, error) {
	if in.Sold.IsNegative() || in.Leftover.IsNegative() {
		return settlement.Validation{}, fmt.Errorf("sold %s, leftover %s: %w", in.Sold, in.Leftover, ErrInvalidQuantity)
	}
	if in.Brought.Valid && in.Brought.Decimal.IsNegative() {
		return settlement.Validation{}, fmt.Errorf("brought %s: %w", in.Brought.Decimal, ErrInvalidQuantity)
	}

	allocations, err := s.store.ListAllocations(ctx, eventID)
	if err != nil {
		return settlement.Validation{}, err
	}
	var allocation *models.Allocation
	for i := range allocations {
		if allocations[i].FlavorID == flavorID {
			allocation = &allocations[i]
			break
		}
	}
	if allocation == nil {
		return settlement.Validation{}, fmt.Errorf("event %d flavor %d: %w", eventID, flavorID, store.ErrAllocationNotFound)
	}

	validation := s.cfg.Validator.ValidateAllocation(models.OrZero(allocation.Allocated), in.Sold, in.Leftover)
	fields := []zap.Field{
		zap.Uint("event_id", eventID),
		zap.Uint("flavor_id", flavorID),
		zap.String("allocated", models.OrZero(allocation.Allocated).String()),
		zap.String("sold", in.Sold.String()),
		zap.String("leftover", in.Leftover.String()),
	}

	if !validation.OK() {
		fields = append(fields, zap.String("discrepancy", validation.Discrepancy.String()))
		if s.cfg.Strict {
			s.logger.Warn("Rejected inconsistent settlement", fields...)
			return validation, fmt.Errorf("%w: %s", ErrInconsistentSettlement, validation)
		}
		s.logger.Warn("Settlement does not reconcile", fields...)
	}

	_, err = s.store.RecordSettlement(ctx, eventID, flavorID, store.Settlement{
		Brought:  in.Brought,
		Sold:     in.Sold,
		Leftover: in.Leftover,
	})
	if err != nil {
		return validation, err
	}

	s.logger.Info("Recorded settlement", fields...)
	return validation, nil
}

// RecordCash stores the cash taken at an event.
func (s *Service) RecordCash(ctx context.Context, eventID uint, cash decimal.Decimal) error {
	if cash.IsNegative() {
		return fmt.Errorf("cash %s: %w", cash, ErrInvalidQuantity)
	}
	if err := s.store.RecordCash(ctx, eventID, cash); err != nil {
		return err
	}

	s.logger.Info("Recorded cash", zap.Uint("event_id", eventID), zap.String("cash", cash.StringFixed(2)))
	return nil
}
