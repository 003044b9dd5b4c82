package cmd

import (
	"context"
	"fmt"

	"empanada-tracker/core/config"
	"empanada-tracker/core/database"
	"empanada-tracker/core/logger"
	"empanada-tracker/core/settlement"
	"empanada-tracker/core/storage"
	"empanada-tracker/core/store"
	"empanada-tracker/feature/market"
	"empanada-tracker/feature/production"
	"empanada-tracker/feature/report"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds the dependencies one command invocation runs with.
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	db        *gorm.DB
	store     *store.Store
	validator settlement.Validator
}

// bootstrap loads configuration and opens the event store.
// A sqlite store is migrated on open so a fresh file is usable immediately.
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, uuid.NewString())

	validator, err := cfg.Settlement.Validator()
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	st := store.New(db)
	if cfg.Database.Driver == database.DriverSQLite {
		if err := st.AutoMigrate(ctx); err != nil {
			return nil, err
		}
	}

	l.Debug("Opened event store",
		zap.String("driver", cfg.Database.Driver),
		zap.String("database", cfg.Database.Name))

	return &app{cfg: cfg, log: l, db: db, store: st, validator: validator}, nil
}

func (a *app) productionService() *production.Service {
	return production.NewService(a.store, a.log)
}

func (a *app) marketService() *market.Service {
	return market.NewService(a.store, market.Config{
		Validator: a.validator,
		Strict:    a.cfg.Settlement.Strict,
	}, a.log)
}

func (a *app) reportService() *report.Service {
	return report.NewService(a.store, a.validator, a.log)
}

// archiver connects to object storage. The connection is only made by commands that archive.
func (a *app) archiver() (*report.Archiver, error) {
	client, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return report.NewArchiver(client, a.cfg.Storage.Bucket, a.cfg.Report.ArchivePrefix, a.log), nil
}

func (a *app) close() {
	_ = a.log.Sync()
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// withApp runs fn with a bootstrapped app and releases it afterwards.
func withApp(ctx context.Context, fn func(*app) error) error {
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(a)
}
