// Package service provides business logic implementations.
package service

import (
	"context"
	"fmt"

	"discord-arcade-bot/internal/model"
	"discord-arcade-bot/internal/pkg/lock"
	"discord-arcade-bot/internal/repository"
)

// ScoreService mediates all score mutations. It is the only component
// that writes to the score repository, and serializes writes per user.
type ScoreService struct {
	repo  repository.ScoreRepository
	locks *lock.UserLock
}

// NewScoreService creates a new ScoreService instance.
func NewScoreService(repo repository.ScoreRepository) *ScoreService {
	return &ScoreService{
		repo:  repo,
		locks: lock.NewUserLock(),
	}
}

// Profile returns the stats for userID, creating a zero-valued record on
// first reference.
func (s *ScoreService) Profile(ctx context.Context, userID string) (*model.UserStats, error) {
	var st *model.UserStats
	err := s.locks.WithLock(userID, func() error {
		var err error
		st, err = s.repo.GetOrCreate(ctx, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return st, nil
}

// Award applies deltas to a single user under that user's lock.
func (s *ScoreService) Award(ctx context.Context, userID string, deltas ...repository.Delta) (*model.UserStats, error) {
	var st *model.UserStats
	err := s.locks.WithLock(userID, func() error {
		var err error
		st, err = s.repo.ApplyDeltas(ctx, userID, deltas...)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply score deltas: %w", err)
	}
	return st, nil
}

// AwardPair applies one delta set to a winner and one to a loser. Locks
// are taken in user-ID order so two concurrent pair updates between the
// same users cannot deadlock.
func (s *ScoreService) AwardPair(ctx context.Context, winnerID string, winnerDeltas []repository.Delta, loserID string, loserDeltas []repository.Delta) error {
	first, second := winnerID, loserID
	if second < first {
		first, second = second, first
	}
	s.locks.Lock(first)
	defer s.locks.Unlock(first)
	s.locks.Lock(second)
	defer s.locks.Unlock(second)

	if _, err := s.repo.ApplyDeltas(ctx, winnerID, winnerDeltas...); err != nil {
		return fmt.Errorf("failed to credit winner: %w", err)
	}
	if _, err := s.repo.ApplyDeltas(ctx, loserID, loserDeltas...); err != nil {
		return fmt.Errorf("failed to debit loser: %w", err)
	}
	return nil
}

// Leaderboard returns the top n users by points.
func (s *ScoreService) Leaderboard(ctx context.Context, n int) ([]model.RankedUser, error) {
	return s.repo.TopN(ctx, n)
}
