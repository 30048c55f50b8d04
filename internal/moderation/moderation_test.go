package moderation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "banned_words.json"))
}

func TestStore_MissingFileIsEmptyList(t *testing.T) {
	s := newTestStore(t)
	assert.Empty(t, s.List())
}

func TestStore_CorruptFileIsEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banned_words.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewStore(path)
	assert.Empty(t, s.List())
}

func TestStore_AddTrimsAndDeduplicates(t *testing.T) {
	s := newTestStore(t)

	n, err := s.Add("  spam  ")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.Add("spam")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "duplicate must not grow the list")

	n, err = s.Add("")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "blank terms are dropped")

	assert.Equal(t, []string{"spam"}, s.List())
}

func TestStore_RemoveFoldsAccents(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add("crème")
	require.NoError(t, err)
	_, err = s.Add("spam")
	require.NoError(t, err)

	n, removed, err := s.Remove("CREME")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 1, n)

	_, removed, err = s.Remove("absent")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStore_Clear(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add("spam")
	require.NoError(t, err)
	require.NoError(t, s.Clear())
	assert.Empty(t, s.List())
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banned_words.json")

	s := NewStore(path)
	_, err := s.Add("spam")
	require.NoError(t, err)

	reopened := NewStore(path)
	assert.Equal(t, []string{"spam"}, reopened.List())
}

func TestFilter_Match(t *testing.T) {
	s := newTestStore(t)
	f := NewFilter(s)

	// Empty list never matches.
	_, ok := f.Match("anything at all")
	assert.False(t, ok)

	_, err := s.Add("creme")
	require.NoError(t, err)

	tests := []struct {
		content string
		want    bool
	}{
		{"j'adore la crème fraîche", true},
		{"CREME", true},
		{"la cremerie du coin", true},
		{"rien à signaler", false},
	}
	for _, tc := range tests {
		word, ok := f.Match(tc.content)
		assert.Equal(t, tc.want, ok, "content %q", tc.content)
		if tc.want {
			assert.Equal(t, "creme", word)
		}
	}
}

func TestFilter_MatchesAccentedBanword(t *testing.T) {
	s := newTestStore(t)
	f := NewFilter(s)

	_, err := s.Add("pépé")
	require.NoError(t, err)

	_, ok := f.Match("salut pepe !")
	assert.True(t, ok)
}
