// Package lock serialises checkouts of a single session.
package lock

import (
	"context"
	goerrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredislib "github.com/redis/go-redis/v9"
)

var ErrLocked = goerrors.New("lock already held")

type Release func(ctx context.Context) error

type Locker interface {
	// Acquire fails fast with ErrLocked when name is already held.
	Acquire(ctx context.Context, name string) (Release, error)
}

type redsyncLocker struct {
	rs  *redsync.Redsync
	ttl time.Duration
}

func NewRedsync(client *goredislib.Client, ttl time.Duration) Locker {
	return &redsyncLocker{
		rs:  redsync.New(goredis.NewPool(client)),
		ttl: ttl,
	}
}

// Acquire implements Locker.
func (l *redsyncLocker) Acquire(ctx context.Context, name string) (Release, error) {
	mutex := l.rs.NewMutex("lock:"+name, redsync.WithExpiry(l.ttl), redsync.WithTries(1))
	if err := mutex.LockContext(ctx); err != nil {
		var taken redsync.ErrTaken
		var takenPtr *redsync.ErrTaken
		if goerrors.Is(err, redsync.ErrFailed) || goerrors.As(err, &taken) || goerrors.As(err, &takenPtr) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("error acquire lock %s: %w", name, err)
	}

	return func(ctx context.Context) error {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			return fmt.Errorf("error release lock %s: %w", name, err)
		}
		return nil
	}, nil
}

type localLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLocal is an in process Locker for single instance deployments.
func NewLocal() Locker {
	return &localLocker{held: make(map[string]struct{})}
}

// Acquire implements Locker.
func (l *localLocker) Acquire(ctx context.Context, name string) (Release, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[name]; ok {
		return nil, ErrLocked
	}
	l.held[name] = struct{}{}

	return func(context.Context) error {
		l.mu.Lock()
		delete(l.held, name)
		l.mu.Unlock()
		return nil
	}, nil
}
