package lock_test

import (
	"context"
	"testing"

	"cinema-web/internal/pkg/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker(t *testing.T) {
	ctx := context.Background()
	l := lock.NewLocal()

	release, err := l.Acquire(ctx, "checkout:a")
	require.NoError(t, err)

	t.Run("second acquire fails fast", func(t *testing.T) {
		_, err := l.Acquire(ctx, "checkout:a")
		assert.ErrorIs(t, err, lock.ErrLocked)
	})

	t.Run("other names are independent", func(t *testing.T) {
		r, err := l.Acquire(ctx, "checkout:b")
		assert.NoError(t, err)
		assert.NoError(t, r(ctx))
	})

	t.Run("release frees the name", func(t *testing.T) {
		assert.NoError(t, release(ctx))
		r, err := l.Acquire(ctx, "checkout:a")
		assert.NoError(t, err)
		assert.NoError(t, r(ctx))
	})
}
