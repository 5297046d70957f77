// Package lock provides the region lock that keeps two processes from syncing
// the same region at once. A Redis-backed locker spans hosts, a file locker
// covers processes on one host, and a no-op locker is used otherwise.
package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bsm/redislock"
	"github.com/gofrs/flock"
	"github.com/redis/go-redis/v9"
)

// ErrNotObtained is returned when another holder owns the lock.
var ErrNotObtained = errors.New("lock not obtained")

// Lease is a held lock.
type Lease interface {
	Release(ctx context.Context) error
}

// Locker obtains named locks.
type Locker interface {
	// Obtain takes key without waiting. It returns ErrNotObtained when the key is held.
	Obtain(ctx context.Context, key string) (Lease, error)
}

// Noop returns a Locker whose locks always succeed.
func Noop() Locker {
	return noopLocker{}
}

type noopLocker struct{}

func (noopLocker) Obtain(context.Context, string) (Lease, error) {
	return noopLease{}, nil
}

type noopLease struct{}

func (noopLease) Release(context.Context) error { return nil }

// RedisLocker holds locks as Redis keys that expire after ttl. A held lease is
// refreshed every third of ttl, so the key only expires once its holder is gone.
type RedisLocker struct {
	client *redislock.Client
	ttl    time.Duration
	prefix string
}

// NewRedisLocker creates a locker on client. Keys are stored under "schoolsync:lock:".
func NewRedisLocker(client redis.UniversalClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client: redislock.New(client),
		ttl:    ttl,
		prefix: "schoolsync:lock:",
	}
}

// Obtain implements Locker.
func (l *RedisLocker) Obtain(ctx context.Context, key string) (Lease, error) {
	lk, err := l.client.Obtain(ctx, l.prefix+key, l.ttl, nil)
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, ErrNotObtained
		}
		return nil, fmt.Errorf("failed to obtain lock %s: %w", key, err)
	}

	keepCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
	lease := &redisLease{lock: lk, stop: stop, done: make(chan struct{})}
	go lease.keepAlive(keepCtx, l.ttl)
	return lease, nil
}

type redisLease struct {
	lock *redislock.Lock
	stop context.CancelFunc
	done chan struct{}
}

func (r *redisLease) keepAlive(ctx context.Context, ttl time.Duration) {
	defer close(r.done)

	ticker := time.NewTicker(max(ttl/3, time.Millisecond))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		err := r.lock.Refresh(ctx, ttl, nil)
		switch {
		case err == nil:
		case ctx.Err() != nil:
			return
		case errors.Is(err, redislock.ErrNotObtained):
			slog.ErrorContext(ctx, "Region lock expired while held", "key", r.lock.Key())
			return
		default:
			slog.WarnContext(ctx, "Failed to refresh region lock", "key", r.lock.Key(), "error", err)
		}
	}
}

// Release stops the refresh and treats an already expired lock as released.
func (r *redisLease) Release(ctx context.Context) error {
	r.stop()
	<-r.done

	err := r.lock.Release(ctx)
	if err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
		return fmt.Errorf("failed to release lock %s: %w", r.lock.Key(), err)
	}
	return nil
}

// FileLocker holds locks as flock(2) locks on files under a directory.
type FileLocker struct {
	dir string
}

// NewFileLocker creates dir if needed and returns a locker keeping its lock files there.
func NewFileLocker(dir string) (*FileLocker, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	return &FileLocker{dir: dir}, nil
}

// Obtain implements Locker.
func (l *FileLocker) Obtain(_ context.Context, key string) (Lease, error) {
	fl := flock.New(filepath.Join(l.dir, lockFileName(key)))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to obtain lock %s: %w", key, err)
	}
	if !ok {
		return nil, ErrNotObtained
	}
	return &fileLease{key: key, lock: fl}, nil
}

// lockFileName maps a key such as "directory:09/0901" to "directory_09_0901.lock".
func lockFileName(key string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
	return name + ".lock"
}

type fileLease struct {
	key  string
	lock *flock.Flock
}

// Release leaves the lock file in place; removing it would race with a waiting holder.
func (f *fileLease) Release(context.Context) error {
	if err := f.lock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock %s: %w", f.key, err)
	}
	return nil
}
