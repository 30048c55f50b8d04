package emoji

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
)

// MaxDedupeFetchBytes caps the per-emoji download during a dedupe scan.
const MaxDedupeFetchBytes = 1024 * 1024

// Ref identifies one existing guild emoji.
type Ref struct {
	ID        string
	Name      string
	URL       string
	CreatedAt time.Time
}

// DedupePlan lists the duplicate emojis a dedupe run would delete. The
// oldest emoji of each identical-content group is kept.
type DedupePlan struct {
	Scanned     int
	FailedFetch int
	Duplicates  []Ref
}

// PlanDedupe downloads every emoji, hashes the contents and groups exact
// duplicates. It never deletes anything itself; the caller decides what
// to do with the plan (dry run by default).
func (i *Importer) PlanDedupe(ctx context.Context, emojis []Ref) *DedupePlan {
	plan := &DedupePlan{}
	groups := make(map[string][]Ref)

	for _, e := range emojis {
		data, err := i.fetch(ctx, e.URL, MaxDedupeFetchBytes)
		if err != nil {
			log.Warn().Err(err).Str("emoji", e.Name).Msg("failed to fetch emoji for dedupe scan")
			plan.FailedFetch++
			continue
		}
		sum := sha256.Sum256(data)
		h := hex.EncodeToString(sum[:])
		groups[h] = append(groups[h], e)
		plan.Scanned++
	}

	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		sort.Slice(group, func(a, b int) bool {
			return group[a].CreatedAt.Before(group[b].CreatedAt)
		})
		plan.Duplicates = append(plan.Duplicates, group[1:]...)
	}

	// Stable output for rendering and tests.
	sort.Slice(plan.Duplicates, func(a, b int) bool {
		return plan.Duplicates[a].ID < plan.Duplicates[b].ID
	})
	return plan
}
