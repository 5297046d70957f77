package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"

	"github.com/schoolgis/schoolsync/internal/config"
	"github.com/schoolgis/schoolsync/internal/db"
	"github.com/schoolgis/schoolsync/internal/lock"
	"github.com/schoolgis/schoolsync/internal/store"
	dbstore "github.com/schoolgis/schoolsync/internal/store/db"
)

// DatabaseFactory creates PostgreSQL-backed components and an optional Redis locker.
type DatabaseFactory struct {
	config *config.Config
	pool   *pgxpool.Pool
	tracer trace.Tracer

	mu    sync.Mutex
	store store.Store
	redis *redis.Client
}

var _ Factory = (*DatabaseFactory)(nil)

// DatabaseFactoryOption is a functional option for configuring the DatabaseFactory
type DatabaseFactoryOption func(*DatabaseFactory)

// WithTracer sets the OpenTelemetry tracer for the database store.
// If not set, tracing will be disabled (no-op).
func WithTracer(tracer trace.Tracer) DatabaseFactoryOption {
	return func(f *DatabaseFactory) {
		f.tracer = tracer
	}
}

// WithPool uses an existing pool instead of opening one from the configuration.
func WithPool(pool *pgxpool.Pool) DatabaseFactoryOption {
	return func(f *DatabaseFactory) {
		f.pool = pool
	}
}

// NewDatabaseFactory creates a new database-backed storage factory.
// It establishes a connection pool to the configured PostgreSQL database.
func NewDatabaseFactory(ctx context.Context, cfg *config.Config, opts ...DatabaseFactoryOption) (*DatabaseFactory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	factory := &DatabaseFactory{config: cfg}
	for _, opt := range opts {
		opt(factory)
	}

	if factory.pool == nil {
		if cfg.Database == nil {
			return nil, fmt.Errorf("database configuration is required")
		}
		pool, err := db.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to create database connection pool: %w", err)
		}
		factory.pool = pool
	}

	return factory, nil
}

// CreateStore creates the PostgreSQL store on the factory's pool.
func (d *DatabaseFactory) CreateStore(_ context.Context) (store.Store, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.store != nil {
		return d.store, nil
	}

	opts := []dbstore.Option{dbstore.WithConnectionPool(d.pool)}
	if d.tracer != nil {
		opts = append(opts, dbstore.WithTracer(d.tracer))
		slog.Debug("Database store tracing enabled")
	}

	st, err := dbstore.New(opts...)
	if err != nil {
		return nil, err
	}
	d.store = st
	return st, nil
}

// CreateLocker connects to Redis when it is configured, falling back to file
// locks under sync.lockDir and then to no locking.
func (d *DatabaseFactory) CreateLocker(ctx context.Context) (lock.Locker, error) {
	rc := d.config.Redis
	if rc == nil || rc.Address == "" {
		if dir := d.config.Sync.LockDir; dir != "" {
			locker, err := lock.NewFileLocker(dir)
			if err != nil {
				return nil, err
			}
			slog.Info("Region locks enabled", "dir", dir)
			return locker, nil
		}
		slog.Debug("Region locks disabled")
		return lock.Noop(), nil
	}

	password, err := rc.GetPassword()
	if err != nil {
		return nil, fmt.Errorf("failed to read redis password: %w", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     rc.Address,
		Password: password,
		DB:       rc.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", rc.Address, err)
	}

	d.mu.Lock()
	if d.redis != nil {
		_ = d.redis.Close()
	}
	d.redis = client
	d.mu.Unlock()

	slog.Info("Region locks enabled", "redis", rc.Address, "ttl", rc.GetLockTTL())
	return lock.NewRedisLocker(client, rc.GetLockTTL()), nil
}

// Cleanup releases resources held by the database factory.
// This closes the database connection pool and the Redis client.
func (d *DatabaseFactory) Cleanup() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.redis != nil {
		if err := d.redis.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
		d.redis = nil
	}
	if d.pool != nil {
		slog.Info("Closing database connection pool")
		d.pool.Close()
	}
}
