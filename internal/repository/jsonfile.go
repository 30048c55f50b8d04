package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"discord-arcade-bot/internal/model"
)

// scoreFile is the on-disk shape: {"users": {userId: stats}}.
type scoreFile struct {
	Users map[string]*model.UserStats `json:"users"`
}

// JSONScoreRepository persists scores as a single flat JSON file, rewritten
// whole after every mutation. An unreadable or missing file degrades to an
// empty store rather than failing. The whole-file write is last-write-wins:
// the mutex below serializes writers inside this process, but there is no
// cross-process isolation.
type JSONScoreRepository struct {
	path string
	mu   sync.Mutex
}

// NewJSONScoreRepository creates a repository backed by the file at path.
func NewJSONScoreRepository(path string) *JSONScoreRepository {
	return &JSONScoreRepository{path: path}
}

// load reads the score file. Parse failures and missing files yield an
// empty store.
func (r *JSONScoreRepository) load() *scoreFile {
	data := &scoreFile{Users: make(map[string]*model.UserStats)}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", r.path).Msg("Failed to read score file, starting empty")
		}
		return data
	}

	if err := json.Unmarshal(raw, data); err != nil {
		log.Warn().Err(err).Str("path", r.path).Msg("Failed to parse score file, starting empty")
		return &scoreFile{Users: make(map[string]*model.UserStats)}
	}
	if data.Users == nil {
		data.Users = make(map[string]*model.UserStats)
	}
	return data
}

func (r *JSONScoreRepository) save(data *scoreFile) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write score file: %w", err)
	}
	return nil
}

// GetOrCreate returns the stats for userID, inserting and persisting a
// zero-valued record if none exists.
func (r *JSONScoreRepository) GetOrCreate(ctx context.Context, userID string) (*model.UserStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.load()
	st, ok := data.Users[userID]
	if !ok {
		st = &model.UserStats{}
		data.Users[userID] = st
		if err := r.save(data); err != nil {
			return nil, err
		}
	}
	copied := *st
	return &copied, nil
}

// ApplyDeltas applies field deltas in one load-mutate-save cycle.
func (r *JSONScoreRepository) ApplyDeltas(ctx context.Context, userID string, deltas ...Delta) (*model.UserStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.load()
	st, ok := data.Users[userID]
	if !ok {
		st = &model.UserStats{}
		data.Users[userID] = st
	}
	for _, d := range deltas {
		st.Apply(d.Field, d.Amount)
	}
	if err := r.save(data); err != nil {
		return nil, err
	}
	copied := *st
	return &copied, nil
}

// TopN returns the n users with the highest points, ties broken by user ID.
func (r *JSONScoreRepository) TopN(ctx context.Context, n int) ([]model.RankedUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.load()
	ranked := make([]model.RankedUser, 0, len(data.Users))
	for id, st := range data.Users {
		ranked = append(ranked, model.RankedUser{UserID: id, Points: st.Points})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].UserID < ranked[j].UserID
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}
