package locker

import (
	"context"
	"testing"
	"time"

	redisrepo "fitbook-service/internal/app/services/shared/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLockService(t *testing.T) *lockService {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return &lockService{
		redisRepo: redisrepo.NewRedisRepository(client),
		Log:       zap.NewNop(),
	}
}

func TestTryLock(t *testing.T) {
	service := newTestLockService(t)
	ctx := context.Background()

	acquired, lockValue, err := service.TryLock(ctx, "booking_lock:consultant-1:2026-02-10T10:00:00Z", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.NotEmpty(t, lockValue)

	t.Run("second caller does not get the lock", func(t *testing.T) {
		acquiredAgain, _, err := service.TryLock(ctx, "booking_lock:consultant-1:2026-02-10T10:00:00Z", 5*time.Second)
		require.NoError(t, err)
		assert.False(t, acquiredAgain)
	})

	t.Run("different slot locks independently", func(t *testing.T) {
		acquiredOther, _, err := service.TryLock(ctx, "booking_lock:consultant-1:2026-02-10T11:00:00Z", 5*time.Second)
		require.NoError(t, err)
		assert.True(t, acquiredOther)
	})
}

func TestUnlock(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can release and relock", func(t *testing.T) {
		service := newTestLockService(t)
		_, lockValue, err := service.TryLock(ctx, "lock-a", 5*time.Second)
		require.NoError(t, err)

		require.NoError(t, service.Unlock(ctx, "lock-a", lockValue))

		acquired, _, err := service.TryLock(ctx, "lock-a", 5*time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("non owner cannot release", func(t *testing.T) {
		service := newTestLockService(t)
		_, lockValue, err := service.TryLock(ctx, "lock-b", 5*time.Second)
		require.NoError(t, err)

		require.Error(t, service.Unlock(ctx, "lock-b", "someone-elses-value"))

		// The owner still holds the lock.
		require.NoError(t, service.Unlock(ctx, "lock-b", lockValue))
	})

	t.Run("releasing a missing lock is a no-op", func(t *testing.T) {
		service := newTestLockService(t)
		require.NoError(t, service.Unlock(ctx, "never-locked", "whatever"))
	})
}
