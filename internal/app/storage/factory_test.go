package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/schoolgis/schoolsync/database"
	"github.com/schoolgis/schoolsync/internal/config"
	"github.com/schoolgis/schoolsync/internal/lock"
)

func TestNewStorageFactoryRequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := NewStorageFactory(context.Background(), nil)
	require.EqualError(t, err, "config cannot be nil")

	_, err = NewDatabaseFactory(context.Background(), &config.Config{})
	require.EqualError(t, err, "database configuration is required")
}

func TestMemoryFactory(t *testing.T) {
	t.Parallel()

	f := NewMemoryFactory()
	first, err := f.CreateStore(context.Background())
	require.NoError(t, err)
	second, err := f.CreateStore(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)

	locker, err := f.CreateLocker(context.Background())
	require.NoError(t, err)
	lease, err := locker.Obtain(context.Background(), "any")
	require.NoError(t, err)
	require.NoError(t, lease.Release(context.Background()))

	assert.NotPanics(t, f.Cleanup)
}

func TestDatabaseFactory(t *testing.T) {
	t.Parallel()

	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	pool, cleanup := database.SetupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	f, err := NewDatabaseFactory(ctx, &config.Config{}, WithPool(pool))
	require.NoError(t, err)

	st, err := f.CreateStore(ctx)
	require.NoError(t, err)
	require.NoError(t, st.Ping(ctx))

	again, err := f.CreateStore(ctx)
	require.NoError(t, err)
	assert.Same(t, st, again)

	locker, err := f.CreateLocker(ctx)
	require.NoError(t, err)
	assert.Equal(t, lock.Noop(), locker)
}

func TestDatabaseFactoryRedisLocker(t *testing.T) {
	t.Parallel()

	if testing.Short() {
		t.Skip("skipping redis test in short mode")
	}

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { tc.CleanupContainer(t, container) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	pool, cleanup := database.SetupTestDB(t)
	t.Cleanup(cleanup)

	f, err := NewDatabaseFactory(ctx, &config.Config{
		Redis: &config.RedisConfig{Address: endpoint, LockTTL: "1m"},
	}, WithPool(pool))
	require.NoError(t, err)

	locker, err := f.CreateLocker(ctx)
	require.NoError(t, err)

	lease, err := locker.Obtain(ctx, "directory:09/0901")
	require.NoError(t, err)
	_, err = locker.Obtain(ctx, "directory:09/0901")
	require.ErrorIs(t, err, lock.ErrNotObtained)
	require.NoError(t, lease.Release(ctx))

	f.Cleanup()
}

func TestDatabaseFactoryFileLocker(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := &DatabaseFactory{config: &config.Config{
		Sync: config.SyncConfig{LockDir: t.TempDir()},
	}}

	locker, err := f.CreateLocker(ctx)
	require.NoError(t, err)
	assert.IsType(t, &lock.FileLocker{}, locker)

	lease, err := locker.Obtain(ctx, "details:09/0901")
	require.NoError(t, err)
	_, err = locker.Obtain(ctx, "details:09/0901")
	require.ErrorIs(t, err, lock.ErrNotObtained)
	require.NoError(t, lease.Release(ctx))
}
