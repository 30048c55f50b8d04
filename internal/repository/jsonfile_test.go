package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discord-arcade-bot/internal/model"
)

func newTestRepo(t *testing.T) *JSONScoreRepository {
	t.Helper()
	return NewJSONScoreRepository(filepath.Join(t.TempDir(), "leaderboard.json"))
}

func TestJSONScoreRepository_GetOrCreate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	st, err := repo.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, &model.UserStats{}, st)

	// Idempotent: a second read without mutation yields identical zero stats.
	again, err := repo.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, st, again)
}

func TestJSONScoreRepository_ApplyDeltas(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	st, err := repo.ApplyDeltas(ctx, "user-1",
		Delta{Field: model.FieldPoints, Amount: 5},
		Delta{Field: model.FieldTTTWins, Amount: 1},
	)
	require.NoError(t, err)
	assert.Equal(t, 5, st.Points)
	assert.Equal(t, 1, st.TTTWins)

	// Survives a fresh repository on the same file.
	reloaded := NewJSONScoreRepository(repo.path)
	st, err = reloaded.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 5, st.Points)
	assert.Equal(t, 1, st.TTTWins)
}

func TestJSONScoreRepository_PointsClampAtZero(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	st, err := repo.ApplyDeltas(ctx, "user-1", Delta{Field: model.FieldPoints, Amount: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, st.Points)

	st, err = repo.ApplyDeltas(ctx, "user-1", Delta{Field: model.FieldPoints, Amount: -10})
	require.NoError(t, err)
	assert.Equal(t, 0, st.Points)
}

func TestJSONScoreRepository_CorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewJSONScoreRepository(path)
	st, err := repo.GetOrCreate(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, &model.UserStats{}, st)
}

func TestJSONScoreRepository_TopN(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for id, pts := range map[string]int{"a": 3, "b": 10, "c": 7, "d": 7} {
		_, err := repo.ApplyDeltas(ctx, id, Delta{Field: model.FieldPoints, Amount: pts})
		require.NoError(t, err)
	}

	top, err := repo.TopN(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "b", top[0].UserID)
	// Tie at 7 points breaks by user ID.
	assert.Equal(t, "c", top[1].UserID)
	assert.Equal(t, "d", top[2].UserID)

	all, err := repo.TopN(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
