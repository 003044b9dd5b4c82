package production

import (
	"context"
	"fmt"
	"time"

	"empanada-tracker/core/models"
	"empanada-tracker/core/reconcile"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Store is the slice of the event store the production service needs.
type Store interface {
	reconcile.Source
	RecordWrapped(ctx context.Context, entry models.ProductionEntry) (models.ProductionEntry, error)
	RecordBaked(ctx context.Context, entry models.ProductionEntry) (models.ProductionEntry, error)
	RecordTapas(ctx context.Context, entry models.TapasEntry) (models.TapasEntry, error)
}

// Service handles production logging.
type Service struct {
	store      Store
	reconciler *reconcile.Reconciler
	logger     *zap.Logger
}

// NewService creates a new production service.
func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{
		store:      store,
		reconciler: reconcile.NewReconciler(store),
		logger:     logger,
	}
}

// RecordWrapped logs a wrapped batch of a known flavor.
func (s *Service) RecordWrapped(ctx context.Context, flavorID uint, date time.Time, dozens decimal.Decimal) (models.ProductionEntry, error) {
	if !dozens.IsPositive() {
		return models.ProductionEntry{}, fmt.Errorf("wrapped %s dozen(s): %w", dozens, ErrInvalidQuantity)
	}

	flavors, err := s.store.ListFlavors(ctx)
	if err != nil {
		return models.ProductionEntry{}, err
	}
	name, ok := flavorName(flavors, flavorID)
	if !ok {
		return models.ProductionEntry{}, fmt.Errorf("flavor %d: %w", flavorID, ErrUnknownFlavor)
	}

	entry, err := s.store.RecordWrapped(ctx, models.ProductionEntry{Date: date, FlavorID: flavorID, Dozens: dozens})
	if err != nil {
		return models.ProductionEntry{}, err
	}

	s.logger.Info("Recorded wrapped batch",
		zap.Uint("entry_id", entry.ID),
		zap.String("flavor", name),
		zap.String("dozens", dozens.String()),
		zap.String("date", date.Format(time.DateOnly)))
	return entry, nil
}

// RecordBaked logs a baked batch. Baking more than the flavor's wrapped-unbaked
// level fails with ErrInsufficientStock.
func (s *Service) RecordBaked(ctx context.Context, flavorID uint, date time.Time, dozens decimal.Decimal) (models.ProductionEntry, error) {
	if !dozens.IsPositive() {
		return models.ProductionEntry{}, fmt.Errorf("baked %s dozen(s): %w", dozens, ErrInvalidQuantity)
	}

	inv, err := s.reconciler.Inventory(ctx)
	if err != nil {
		return models.ProductionEntry{}, err
	}
	name, ok := inv.Snapshot.FlavorName(flavorID)
	if !ok {
		return models.ProductionEntry{}, fmt.Errorf("flavor %d: %w", flavorID, ErrUnknownFlavor)
	}
	if err := inv.Check(reconcile.PoolWrappedUnbaked, name, dozens); err != nil {
		return models.ProductionEntry{}, fmt.Errorf("%w: %w", ErrInsufficientStock, err)
	}

	entry, err := s.store.RecordBaked(ctx, models.ProductionEntry{Date: date, FlavorID: flavorID, Dozens: dozens})
	if err != nil {
		return models.ProductionEntry{}, err
	}

	s.logger.Info("Recorded baked batch",
		zap.Uint("entry_id", entry.ID),
		zap.String("flavor", name),
		zap.String("dozens", dozens.String()),
		zap.String("date", date.Format(time.DateOnly)))
	return entry, nil
}

// RecordTapas logs a tapas batch. Either variety may be zero, but not both.
func (s *Service) RecordTapas(ctx context.Context, date time.Time, regular, ghee decimal.Decimal, notes string) (models.TapasEntry, error) {
	if regular.IsNegative() || ghee.IsNegative() || regular.Add(ghee).IsZero() {
		return models.TapasEntry{}, fmt.Errorf("tapas %s regular, %s ghee: %w", regular, ghee, ErrInvalidQuantity)
	}

	entry, err := s.store.RecordTapas(ctx, models.TapasEntry{
		Date:          date,
		RegularDozens: regular,
		GheeDozens:    ghee,
		Notes:         notes,
	})
	if err != nil {
		return models.TapasEntry{}, err
	}

	s.logger.Info("Recorded tapas batch",
		zap.Uint("entry_id", entry.ID),
		zap.String("regular", regular.String()),
		zap.String("ghee", ghee.String()),
		zap.String("date", date.Format(time.DateOnly)))
	return entry, nil
}

func flavorName(flavors []models.Flavor, id uint) (string, bool) {
	for _, f := range flavors {
		if f.ID == id {
			return f.Name, true
		}
	}
	return "", false
}
