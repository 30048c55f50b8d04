// Property-based tests for score settlement.
package service

import (
	"context"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"

	"discord-arcade-bot/internal/model"
	"discord-arcade-bot/internal/repository"
)

// TestAwardPointsNeverNegativeProperty verifies that any sequence of point
// deltas leaves points at max(0, running total floored at zero per step).
func TestAwardPointsNeverNegativeProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		repo := repository.NewJSONScoreRepository(filepath.Join(t.TempDir(), "scores.json"))
		svc := NewScoreService(repo)
		ctx := context.Background()

		deltas := rapid.SliceOfN(rapid.IntRange(-50, 50), 1, 30).Draw(rt, "deltas")

		expected := 0
		for _, d := range deltas {
			st, err := svc.Award(ctx, "user-1",
				repository.Delta{Field: model.FieldPoints, Amount: d})
			if err != nil {
				rt.Fatalf("Award: %v", err)
			}

			expected += d
			if expected < 0 {
				expected = 0
			}
			if st.Points != expected {
				rt.Fatalf("points = %d, expected %d after delta %d", st.Points, expected, d)
			}
			if st.Points < 0 {
				rt.Fatalf("points went negative: %d", st.Points)
			}
		}
	})
}

// TestAwardPairConservesCountersProperty verifies that a pair settlement
// always moves exactly one win and one loss counter.
func TestAwardPairConservesCountersProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		repo := repository.NewJSONScoreRepository(filepath.Join(t.TempDir(), "scores.json"))
		svc := NewScoreService(repo)
		ctx := context.Background()

		rounds := rapid.IntRange(1, 20).Draw(rt, "rounds")
		aliceWins := 0
		for i := 0; i < rounds; i++ {
			winner, loser := "alice", "bob"
			if rapid.Bool().Draw(rt, "bobWins") {
				winner, loser = "bob", "alice"
			} else {
				aliceWins++
			}

			err := svc.AwardPair(ctx,
				winner, []repository.Delta{
					{Field: model.FieldPoints, Amount: 5},
					{Field: model.FieldDuelWins, Amount: 1},
				},
				loser, []repository.Delta{
					{Field: model.FieldDuelLosses, Amount: 1},
				},
			)
			if err != nil {
				rt.Fatalf("AwardPair: %v", err)
			}
		}

		alice, err := svc.Profile(ctx, "alice")
		if err != nil {
			rt.Fatalf("Profile: %v", err)
		}
		bob, err := svc.Profile(ctx, "bob")
		if err != nil {
			rt.Fatalf("Profile: %v", err)
		}

		if alice.DuelWins != aliceWins || bob.DuelLosses != aliceWins {
			rt.Fatalf("alice wins %d / bob losses %d, expected %d", alice.DuelWins, bob.DuelLosses, aliceWins)
		}
		if alice.DuelWins+alice.DuelLosses != rounds || bob.DuelWins+bob.DuelLosses != rounds {
			rt.Fatalf("counters do not sum to %d rounds", rounds)
		}
		if alice.Points != alice.DuelWins*5 || bob.Points != bob.DuelWins*5 {
			rt.Fatal("points do not match win counts")
		}
	})
}
