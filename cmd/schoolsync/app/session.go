package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/schoolgis/schoolsync/internal/app"
	"github.com/schoolgis/schoolsync/internal/app/storage"
	"github.com/schoolgis/schoolsync/internal/config"
	"github.com/schoolgis/schoolsync/internal/store"
	pkgsync "github.com/schoolgis/schoolsync/internal/sync"
	"github.com/schoolgis/schoolsync/internal/telemetry"
)

const telemetryShutdownTimeout = 5 * time.Second

// session holds what a one-shot command needs and releases it on close.
type session struct {
	store     store.Store
	manager   *pkgsync.Pipeline
	factory   storage.Factory
	telemetry *telemetry.Telemetry
}

// openStore opens the configured store without the sync pipeline.
func (c *cli) openStore(ctx context.Context, cfg *config.Config) (*session, error) {
	factory, err := c.newFactory(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage factory: %w", err)
	}

	st, err := factory.CreateStore(ctx)
	if err != nil {
		factory.Cleanup()
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return &session{store: st, factory: factory}, nil
}

// openPipeline opens the store, the region locker, telemetry and the sync manager.
func (c *cli) openPipeline(ctx context.Context, cfg *config.Config) (*session, error) {
	s, err := c.openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	locker, err := s.factory.CreateLocker(ctx)
	if err != nil {
		s.close()
		return nil, fmt.Errorf("failed to create region locker: %w", err)
	}

	s.telemetry, err = telemetry.New(ctx, telemetry.WithTelemetryConfig(cfg.Telemetry))
	if err != nil {
		s.close()
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	s.manager, err = app.NewPipeline(cfg, s.store, locker, app.Instruments{
		MeterProvider:  s.telemetry.MeterProvider(),
		TracerProvider: s.telemetry.TracerProvider(),
	})
	if err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}

func (s *session) close() {
	if s.telemetry != nil {
		ctx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		if err := s.telemetry.Shutdown(ctx); err != nil {
			slog.Warn("Failed to flush telemetry", "error", err)
		}
	}
	s.factory.Cleanup()
}
