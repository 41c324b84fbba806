package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mama165/sdk-go/logs"

	"github.com/zen-systems/medtriage/pkg/config"
	"github.com/zen-systems/medtriage/pkg/engine"
	"github.com/zen-systems/medtriage/pkg/fallback"
	"github.com/zen-systems/medtriage/pkg/schema"
	"github.com/zen-systems/medtriage/pkg/store"
)

// app holds the components shared by the subcommands.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	engine *engine.Engine
	repo   store.Repository
	index  *store.Index
}

type appOptions struct {
	engine bool
	store  bool
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configFile != "" {
		cfg, err = config.LoadFile(configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if modelPath != "" {
		cfg.ModelPath = modelPath
	}
	if storeFlag != "" {
		cfg.Store.Backend = storeFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newApp(ctx context.Context, opts appOptions) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	a := &app{cfg: cfg, log: logs.GetLoggerFromString(cfg.LogLevel)}

	if opts.engine {
		capability := fallback.Resolve(cfg.ModelPath, cfg.LazyLoad, a.log)
		a.engine, err = engine.New(
			engine.WithLogger(a.log),
			engine.WithCapability(capability),
			engine.WithThreshold(cfg.FallbackThreshold),
			engine.WithFallbackConfidence(cfg.FallbackConfidence),
			engine.WithWorkers(cfg.BatchWorkers),
		)
		if err != nil {
			return nil, err
		}
	}

	if opts.store && cfg.Persistent() {
		if err := a.openStore(ctx); err != nil {
			a.close()
			return nil, err
		}
	}
	return a, nil
}

func (a *app) openStore(ctx context.Context) error {
	switch a.cfg.Store.Backend {
	case config.BackendBadger:
		repo, err := store.NewBadgerRepository(a.cfg.Store.BadgerPath, a.log)
		if err != nil {
			return err
		}
		a.repo = repo
	case config.BackendPostgres:
		repo, err := store.NewPostgresRepository(ctx, a.cfg.Store.PostgresDSN, a.log)
		if err != nil {
			return err
		}
		a.repo = repo
	}

	index, err := store.NewIndex(a.cfg.Store.IndexPath, a.log)
	if err != nil {
		return err
	}
	a.index = index
	return nil
}

func (a *app) requireStore() error {
	if a.repo == nil {
		return errors.New("no store configured: set store.backend in the config or pass --store")
	}
	return nil
}

// persist saves rec and indexes it. It is a no-op without a store.
func (a *app) persist(ctx context.Context, rec schema.Record, patientID string) (*store.StoredRecord, error) {
	if a.repo == nil {
		return nil, nil
	}
	stored := store.NewStoredRecord(rec, patientID, a.engine.Capability().ModelVersion())
	if err := a.repo.Save(ctx, stored); err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}
	if err := a.index.Add(ctx, stored); err != nil {
		a.log.Warn("Record saved but not indexed", "id", stored.ID, "error", err)
	}
	return &stored, nil
}

func (a *app) close() {
	if a.index != nil {
		if err := a.index.Close(); err != nil {
			a.log.Warn("Closing index failed", "error", err)
		}
	}
	if a.repo != nil {
		if err := a.repo.Close(); err != nil {
			a.log.Warn("Closing store failed", "error", err)
		}
	}
}
