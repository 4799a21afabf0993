package searchcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitaclick/search-service/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestCache(clk *fakeClock) *ResultCache {
	return New(5*time.Minute, 30*time.Minute, 8, WithClock(clk.Now))
}

func testKey() Key {
	return Key{
		Domain:    domain.DomainProperties,
		Location:  "Goya, Salamanca, Madrid",
		Signature: "op=Venta|pmin=-|pmax=-|beds=-|baths=-|feat=|sort=newest",
		Page:      1,
		Limit:     40,
	}
}

func testResult(n int) *domain.SearchResultSet {
	return &domain.SearchResultSet{
		Domain:     domain.DomainProperties,
		Location:   "Goya, Salamanca, Madrid",
		Properties: make([]domain.Property, n),
	}
}

func noFetch(ctx context.Context) (*domain.SearchResultSet, error) {
	return testResult(0), nil
}

func TestResultCache_States(t *testing.T) {
	clk := &fakeClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	cache := newTestCache(clk)
	key := testKey()

	t.Run("miss on empty cache", func(t *testing.T) {
		result, state := cache.Get(key)
		assert.Nil(t, result)
		assert.Equal(t, Miss, state)
	})

	t.Run("fresh within stale window", func(t *testing.T) {
		cache.Put(key, testResult(3), noFetch)

		clk.Advance(4 * time.Minute)
		result, state := cache.Get(key)
		require.NotNil(t, result)
		assert.Equal(t, Fresh, state)
		assert.Len(t, result.Properties, 3)
	})

	t.Run("stale past stale window", func(t *testing.T) {
		clk.Advance(2 * time.Minute) // возраст 6 минут
		result, state := cache.Get(key)
		require.NotNil(t, result)
		assert.Equal(t, Stale, state)
	})

	t.Run("miss past gc window", func(t *testing.T) {
		clk.Advance(30 * time.Minute)
		result, state := cache.Get(key)
		assert.Nil(t, result)
		assert.Equal(t, Miss, state)
		assert.Zero(t, cache.Len())
	})
}

func TestResultCache_RefreshQueue(t *testing.T) {
	clk := &fakeClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	cache := newTestCache(clk)
	key := testKey()

	cache.Put(key, testResult(1), noFetch)
	clk.Advance(10 * time.Minute)

	t.Run("stale read enqueues one job", func(t *testing.T) {
		_, state := cache.Get(key)
		assert.Equal(t, Stale, state)

		select {
		case job := <-cache.RefreshQueue():
			assert.Equal(t, key, job.Key)
		default:
			t.Fatal("expected refresh job in the queue")
		}
	})

	t.Run("repeated stale reads do not enqueue while refreshing", func(t *testing.T) {
		_, state := cache.Get(key)
		assert.Equal(t, Stale, state)
		_, _ = cache.Get(key)

		select {
		case <-cache.RefreshQueue():
			t.Fatal("did not expect a second refresh job")
		default:
		}
	})
}

func TestResultCache_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("success replaces the entry and resets age", func(t *testing.T) {
		clk := &fakeClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
		cache := newTestCache(clk)
		key := testKey()

		cache.Put(key, testResult(1), noFetch)
		clk.Advance(10 * time.Minute)
		_, _ = cache.Get(key)
		job := <-cache.RefreshQueue()

		job.Fetch = func(ctx context.Context) (*domain.SearchResultSet, error) {
			return testResult(7), nil
		}
		require.NoError(t, cache.Refresh(ctx, job))

		result, state := cache.Get(key)
		assert.Equal(t, Fresh, state)
		assert.Len(t, result.Properties, 7)
	})

	t.Run("failure keeps the stale entry", func(t *testing.T) {
		clk := &fakeClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
		cache := newTestCache(clk)
		key := testKey()

		cache.Put(key, testResult(2), noFetch)
		clk.Advance(10 * time.Minute)
		_, _ = cache.Get(key)
		job := <-cache.RefreshQueue()

		job.Fetch = func(ctx context.Context) (*domain.SearchResultSet, error) {
			return nil, errors.New("upstream down")
		}
		assert.Error(t, cache.Refresh(ctx, job))

		// Показанный устаревший результат лучше пустого
		result, state := cache.Get(key)
		assert.Equal(t, Stale, state)
		assert.Len(t, result.Properties, 2)

		// Флаг refreshing снят - следующее чтение снова ставит задание
		select {
		case <-cache.RefreshQueue():
		default:
			t.Fatal("expected a new refresh job after failure")
		}
	})
}

func TestResultCache_Sweep(t *testing.T) {
	clk := &fakeClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	cache := newTestCache(clk)

	oldKey := testKey()
	cache.Put(oldKey, testResult(1), noFetch)

	clk.Advance(20 * time.Minute)
	newKey := testKey()
	newKey.Domain = domain.DomainAgencies
	cache.Put(newKey, testResult(1), noFetch)

	clk.Advance(15 * time.Minute) // oldKey 35 мин, newKey 15 мин
	assert.Equal(t, 1, cache.Sweep())
	assert.Equal(t, 1, cache.Len())

	_, state := cache.Get(newKey)
	assert.Equal(t, Stale, state)
}

func TestResultCache_Clear(t *testing.T) {
	clk := &fakeClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	cache := newTestCache(clk)

	cache.Put(testKey(), testResult(1), noFetch)
	require.Equal(t, 1, cache.Len())

	cache.Clear()
	assert.Zero(t, cache.Len())
}
