package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock cho phép tua thời gian trong test
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time          { return f.now }
func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func TestCache_SetGet(t *testing.T) {
	c := NewCache(10, time.Minute, nil)

	c.Set("k", "v")
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	c := NewCache(10, 5*time.Minute, clock.Now)

	c.Set("k", 1)

	clock.Advance(4 * time.Minute)
	_, ok := c.Get("k")
	assert.True(t, ok)

	clock.Advance(time.Minute) // đủ 5 phút thì hết hạn
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_OverwriteRefreshesTTL(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c := NewCache(10, 5*time.Minute, clock.Now)

	c.Set("k", 1)
	clock.Advance(4 * time.Minute)
	c.Set("k", 2)
	clock.Advance(4 * time.Minute)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestCache_EvictsOldestAtCapacity(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c := NewCache(3, time.Hour, clock.Now)

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
		clock.Advance(time.Second)
	}
	c.Set("k3", 3)

	assert.Equal(t, 3, c.Len())
	_, ok := c.Get("k0") // entry cũ nhất bị đẩy ra
	assert.False(t, ok)
	_, ok = c.Get("k3")
	assert.True(t, ok)
}

func TestCache_Delete(t *testing.T) {
	c := NewCache(10, time.Minute, nil)
	c.Set("k", 1)
	c.Delete("k")
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCache_Purge(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c := NewCache(10, 5*time.Minute, clock.Now)

	c.Set("old1", 1)
	c.Set("old2", 2)
	clock.Advance(3 * time.Minute)
	c.Set("fresh", 3)
	clock.Advance(2 * time.Minute)

	removed := c.Purge()
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("fresh")
	assert.True(t, ok)
}

func TestCache_DefaultCapacity(t *testing.T) {
	c := NewCache(0, time.Minute, nil)
	for i := 0; i < 200; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	assert.Equal(t, 128, c.Len())
}
