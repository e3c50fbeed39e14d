package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGet(t *testing.T) {
	c := New(true, time.Minute)

	_, _, ok := c.Get("k")
	assert.False(t, ok)

	etag := c.Set("k", []byte(`[1,2]`))
	data, got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, `[1,2]`, string(data))
	assert.Equal(t, etag, got)

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats["hits"])
	assert.Equal(t, uint64(1), stats["misses"])
	assert.Equal(t, 1, stats["active_keys"])
}

func TestCache_Expiry(t *testing.T) {
	c := New(true, time.Minute)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("k", []byte("v"))
	now = now.Add(2 * time.Minute)

	_, _, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Stats()["expired_keys"])

	c.evict()
	assert.Equal(t, 0, c.Stats()["total_keys"])
}

func TestCache_Disabled(t *testing.T) {
	c := New(false, time.Minute)
	etag := c.Set("k", []byte("v"))
	assert.Equal(t, ComputeETag([]byte("v")), etag)

	_, _, ok := c.Get("k")
	assert.False(t, ok)

	assert.False(t, New(true, 0).Stats()["enabled"].(bool))
}

func TestCache_Purge(t *testing.T) {
	c := New(true, time.Minute)
	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	c.Purge()
	assert.Equal(t, 0, c.Stats()["total_keys"])
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("body"))
	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.False(t, CheckETagMatch("", etag))
	assert.False(t, CheckETagMatch(`W/"other"`, etag))
}
