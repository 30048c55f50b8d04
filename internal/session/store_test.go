package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSession struct {
	Value int
}

func TestStore_PutGetDelete(t *testing.T) {
	s := NewStore[*testSession]()
	defer s.Close()

	_, ok := s.Get("k1")
	assert.False(t, ok)

	s.Put("k1", &testSession{Value: 1})
	got, ok := s.Get("k1")
	require.True(t, ok)
	assert.Equal(t, 1, got.Value)

	// Put overwrites any existing session for the key.
	s.Put("k1", &testSession{Value: 2})
	got, ok = s.Get("k1")
	require.True(t, ok)
	assert.Equal(t, 2, got.Value)

	s.Delete("k1")
	_, ok = s.Get("k1")
	assert.False(t, ok)

	// Deleting a missing key is a no-op.
	s.Delete("k1")
	assert.Equal(t, 0, s.Len())
}

func TestStore_IndependentNamespaces(t *testing.T) {
	a := NewStore[*testSession]()
	b := NewStore[*testSession]()
	defer a.Close()
	defer b.Close()

	a.Put("same-key", &testSession{Value: 1})
	_, ok := b.Get("same-key")
	assert.False(t, ok)
}

func TestStore_TTLEviction(t *testing.T) {
	s := NewStore[*testSession](WithTTL(20 * time.Millisecond))
	defer s.Close()

	s.Put("k1", &testSession{Value: 1})

	assert.Eventually(t, func() bool {
		_, ok := s.Get("k1")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestStore_NoTTLRetainsForever(t *testing.T) {
	s := NewStore[*testSession]()
	defer s.Close()

	s.Put("k1", &testSession{Value: 1})
	time.Sleep(30 * time.Millisecond)

	_, ok := s.Get("k1")
	assert.True(t, ok)
}
