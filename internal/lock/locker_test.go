package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/pix-ledger/internal/logging"
)

func TestNormalizeKeys(t *testing.T) {
	assert.Equal(t, []string{"account:1", "account:2"}, normalizeKeys([]string{"account:2", "", "account:1", "account:2"}))
	assert.Empty(t, normalizeKeys(nil))
}

// -- LocalLocker tests --

func TestLocalLocker_ExcludesSameKey(t *testing.T) {
	locker := NewLocalLocker()
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locker.Lock(ctx, "account:1")
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Empty(t, locker.entries)
}

func TestLocalLocker_OppositeOrderDoesNotDeadlock(t *testing.T) {
	locker := NewLocalLocker()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			release, err := locker.Lock(ctx, "account:1", "account:2")
			if !assert.NoError(t, err) {
				return
			}
			release()
		}()
		go func() {
			defer wg.Done()
			release, err := locker.Lock(ctx, "account:2", "account:1")
			if !assert.NoError(t, err) {
				return
			}
			release()
		}()
	}
	wg.Wait()
}

func TestLocalLocker_ContextCancelled(t *testing.T) {
	locker := NewLocalLocker()
	release, err := locker.Lock(context.Background(), "account:1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, "account:0", "account:1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// account:0 was released when the second key timed out.
	other, err := locker.Lock(context.Background(), "account:0")
	require.NoError(t, err)
	other()

	release()
	release()
	assert.Empty(t, locker.entries)
}

// -- RedisLocker tests --

func newTestRedisLocker(t *testing.T, tries int) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	options := DefaultRedisOptions(time.Second)
	options.Tries = tries
	options.RetryDelay = time.Millisecond
	return NewRedisLocker(client, options, logging.SetupLogging()), server
}

func TestRedisLocker_LockAndRelease(t *testing.T) {
	locker, server := newTestRedisLocker(t, 1)
	ctx := context.Background()

	release, err := locker.Lock(ctx, "account:2", "account:1")
	require.NoError(t, err)
	assert.True(t, server.Exists(redisKeyPrefix+"account:1"))
	assert.True(t, server.Exists(redisKeyPrefix+"account:2"))

	_, err = locker.Lock(ctx, "account:1")
	assert.Error(t, err)

	release()
	assert.False(t, server.Exists(redisKeyPrefix+"account:1"))
	assert.False(t, server.Exists(redisKeyPrefix+"account:2"))

	again, err := locker.Lock(ctx, "account:1")
	require.NoError(t, err)
	again()
}

func TestRedisLocker_PartialFailureReleasesHeldKeys(t *testing.T) {
	locker, server := newTestRedisLocker(t, 1)
	ctx := context.Background()

	release, err := locker.Lock(ctx, "account:2")
	require.NoError(t, err)
	defer release()

	_, err = locker.Lock(ctx, "account:1", "account:2")
	assert.Error(t, err)
	assert.False(t, server.Exists(redisKeyPrefix+"account:1"))
}

func TestRedisLocker_ExpiredKeyCanBeRetaken(t *testing.T) {
	locker, server := newTestRedisLocker(t, 1)
	ctx := context.Background()

	_, err := locker.Lock(ctx, "account:1")
	require.NoError(t, err)

	server.FastForward(2 * time.Second)

	release, err := locker.Lock(ctx, "account:1")
	require.NoError(t, err)
	release()
}
