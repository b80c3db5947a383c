package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(input string) Key {
	return Key{
		Input:  input,
		Format: "yyyy-MM-dd",
		Locale: "en-US",

		NaturalLanguage: true,
		RelativeDate:    true,
		SmartCorrection: true,
	}
}

func value(day int) Value {
	return Value{Resolved: true, Date: time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC)}
}

func TestStore_PutGet(t *testing.T) {
	s := New(10, time.Minute)

	_, ok := s.Get(key("a"))
	assert.False(t, ok)

	s.Put(key("a"), value(1))
	got, ok := s.Get(key("a"))
	require.True(t, ok)
	assert.Equal(t, value(1), got)
	assert.Equal(t, 1, s.Size())

	// Distinct formats, locales, and flag sets are distinct keys.
	other := key("a")
	other.Format = "yyyyMMdd"
	_, ok = s.Get(other)
	assert.False(t, ok)

	flagged := key("a")
	flagged.SmartCorrection = false
	_, ok = s.Get(flagged)
	assert.False(t, ok)
}

func TestStore_Replace(t *testing.T) {
	s := New(10, time.Minute)

	s.Put(key("a"), value(1))
	s.Put(key("a"), value(2))
	assert.Equal(t, 1, s.Size())

	got, ok := s.Get(key("a"))
	require.True(t, ok)
	assert.Equal(t, value(2), got)
}

func TestStore_EvictsOldestInserted(t *testing.T) {
	s := New(3, time.Minute)

	s.Put(key("a"), value(1))
	s.Put(key("b"), value(2))
	s.Put(key("c"), value(3))

	// Lookups do not promote: reading "a" must not save it.
	_, ok := s.Get(key("a"))
	require.True(t, ok)

	s.Put(key("d"), value(4))
	assert.Equal(t, 3, s.Size())

	_, ok = s.Get(key("a"))
	assert.False(t, ok, "oldest-inserted entry should have been evicted")
	for _, k := range []string{"b", "c", "d"} {
		_, ok := s.Get(key(k))
		assert.True(t, ok, "key %q", k)
	}
}

func TestStore_ReplaceRefreshesPosition(t *testing.T) {
	s := New(3, time.Minute)

	s.Put(key("a"), value(1))
	s.Put(key("b"), value(2))
	s.Put(key("c"), value(3))
	// Rewriting "a" moves it to the back of the eviction order.
	s.Put(key("a"), value(10))

	s.Put(key("d"), value(4))

	_, ok := s.Get(key("b"))
	assert.False(t, ok, "b became the oldest after a was rewritten")
	_, ok = s.Get(key("a"))
	assert.True(t, ok)
}

func TestStore_TTLExpiry(t *testing.T) {
	s := New(10, 10*time.Millisecond)

	s.Put(key("a"), value(1))
	_, ok := s.Get(key("a"))
	require.True(t, ok)

	time.Sleep(25 * time.Millisecond)

	_, ok = s.Get(key("a"))
	assert.False(t, ok)
	// The expired lookup dropped the entry.
	assert.Equal(t, 0, s.Size())
}

func TestStore_GetOrCompute(t *testing.T) {
	s := New(10, time.Minute)

	calls := 0
	compute := func() Value {
		calls++
		return value(7)
	}

	got := s.GetOrCompute(key("a"), compute)
	assert.Equal(t, value(7), got)
	got = s.GetOrCompute(key("a"), compute)
	assert.Equal(t, value(7), got)
	assert.Equal(t, 1, calls, "second lookup must hit the memo")

	// Declined resolutions are memoized too.
	miss := Value{Resolved: false}
	s.Put(key("junk"), miss)
	got = s.GetOrCompute(key("junk"), func() Value {
		t.Fatal("compute must not run for a memoized decline")
		return Value{}
	})
	assert.Equal(t, miss, got)
}

func TestStore_CleanupExpired(t *testing.T) {
	s := New(10, 10*time.Millisecond)

	s.Put(key("a"), value(1))
	s.Put(key("b"), value(2))
	time.Sleep(25 * time.Millisecond)
	s.Put(key("c"), value(3))

	removed := s.CleanupExpired()
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, s.Size())
	_, ok := s.Get(key("c"))
	assert.True(t, ok)
}

func TestStore_Clear(t *testing.T) {
	s := New(10, time.Minute)
	for i := 0; i < 5; i++ {
		s.Put(key(fmt.Sprintf("k%d", i)), value(i+1))
	}
	require.Equal(t, 5, s.Size())

	s.Clear()
	assert.Equal(t, 0, s.Size())
	_, ok := s.Get(key("k0"))
	assert.False(t, ok)

	// Store stays usable after a clear.
	s.Put(key("again"), value(9))
	assert.Equal(t, 1, s.Size())
}

func TestStore_DefaultBounds(t *testing.T) {
	s := New(0, 0)
	assert.Equal(t, DefaultCapacity, s.capacity)
	assert.Equal(t, DefaultTTL, s.ttl)
}
