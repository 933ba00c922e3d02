package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oancholarevelo/interniskolar/internal/directory/domain"
)

func setupCache(t *testing.T) (*CatalogCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCatalogCache(client), mr
}

func TestCatalogCache(t *testing.T) {
	ctx := context.Background()
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	catalog := []domain.HTE{
		{ID: "c1", Name: "Acme", Address: "Manila", MOAEndDate: &end},
		{ID: "c2", Name: "Beta"},
	}

	t.Run("miss before set", func(t *testing.T) {
		c, _ := setupCache(t)

		_, ok, err := c.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("round-trips the catalog", func(t *testing.T) {
		c, _ := setupCache(t)

		require.NoError(t, c.Set(ctx, catalog))
		got, ok, err := c.Get(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, got, 2)
		assert.Equal(t, "Acme", got[0].Name)
		require.NotNil(t, got[0].MOAEndDate)
		assert.True(t, got[0].MOAEndDate.Equal(end))
		assert.Nil(t, got[1].MOAEndDate)
	})

	t.Run("invalidate forces a miss", func(t *testing.T) {
		c, _ := setupCache(t)

		require.NoError(t, c.Set(ctx, catalog))
		require.NoError(t, c.Invalidate(ctx))

		_, ok, err := c.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("entries expire", func(t *testing.T) {
		c, mr := setupCache(t)

		require.NoError(t, c.Set(ctx, catalog))
		mr.FastForward(catalogTTL + time.Second)

		_, ok, err := c.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("corrupt entry is treated as a miss", func(t *testing.T) {
		c, mr := setupCache(t)

		mr.Set(catalogKey, "not json")
		_, ok, err := c.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
