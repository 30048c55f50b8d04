package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"discord-arcade-bot/internal/model"
)

// PostgresScoreRepository persists scores in a single user_stats table.
// It implements the same contract as the JSON file backend so the two are
// interchangeable behind ScoreRepository.
type PostgresScoreRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresScoreRepository creates a new PostgresScoreRepository instance.
func NewPostgresScoreRepository(pool *pgxpool.Pool) *PostgresScoreRepository {
	return &PostgresScoreRepository{pool: pool}
}

// Migrate creates the user_stats table if it does not exist.
func (r *PostgresScoreRepository) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS user_stats (
			user_id VARCHAR(32) PRIMARY KEY,
			points INT NOT NULL DEFAULT 0 CHECK (points >= 0),
			quiz_correct INT NOT NULL DEFAULT 0,
			mcquiz_correct INT NOT NULL DEFAULT 0,
			duel_wins INT NOT NULL DEFAULT 0,
			duel_losses INT NOT NULL DEFAULT 0,
			bomb_wins INT NOT NULL DEFAULT 0,
			bomb_losses INT NOT NULL DEFAULT 0,
			ttt_wins INT NOT NULL DEFAULT 0,
			ttt_losses INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_user_stats_points ON user_stats(points DESC);
	`)
	if err != nil {
		return fmt.Errorf("failed to migrate user_stats: %w", err)
	}
	return nil
}

const statsColumns = `points, quiz_correct, mcquiz_correct, duel_wins, duel_losses,
	bomb_wins, bomb_losses, ttt_wins, ttt_losses`

func scanStats(row pgx.Row) (*model.UserStats, error) {
	var st model.UserStats
	err := row.Scan(
		&st.Points,
		&st.QuizCorrect,
		&st.MCQuizCorrect,
		&st.DuelWins,
		&st.DuelLosses,
		&st.BombWins,
		&st.BombLosses,
		&st.TTTWins,
		&st.TTTLosses,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// GetOrCreate returns the stats for userID, inserting a zero row if absent.
func (r *PostgresScoreRepository) GetOrCreate(ctx context.Context, userID string) (*model.UserStats, error) {
	query := fmt.Sprintf(`
		INSERT INTO user_stats (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING %s
	`, statsColumns)

	st, err := scanStats(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get or create user stats: %w", err)
	}
	return st, nil
}

// ApplyDeltas applies field deltas inside a transaction, re-using the model's
// clamping rules via a row-locked read-modify-write.
func (r *PostgresScoreRepository) ApplyDeltas(ctx context.Context, userID string, deltas ...Delta) (*model.UserStats, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO user_stats (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure user stats row: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM user_stats WHERE user_id = $1 FOR UPDATE`, statsColumns)
	st, err := scanStats(tx.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read user stats: %w", err)
	}

	for _, d := range deltas {
		st.Apply(d.Field, d.Amount)
	}

	_, err = tx.Exec(ctx, `
		UPDATE user_stats
		SET points = $2, quiz_correct = $3, mcquiz_correct = $4,
		    duel_wins = $5, duel_losses = $6, bomb_wins = $7, bomb_losses = $8,
		    ttt_wins = $9, ttt_losses = $10, updated_at = NOW()
		WHERE user_id = $1
	`, userID, st.Points, st.QuizCorrect, st.MCQuizCorrect,
		st.DuelWins, st.DuelLosses, st.BombWins, st.BombLosses,
		st.TTTWins, st.TTTLosses)
	if err != nil {
		return nil, fmt.Errorf("failed to update user stats: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit stats update: %w", err)
	}
	return st, nil
}

// TopN returns the n users with the highest points.
func (r *PostgresScoreRepository) TopN(ctx context.Context, n int) ([]model.RankedUser, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, points
		FROM user_stats
		ORDER BY points DESC, user_id ASC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top users: %w", err)
	}
	defer rows.Close()

	var ranked []model.RankedUser
	for rows.Next() {
		var ru model.RankedUser
		if err := rows.Scan(&ru.UserID, &ru.Points); err != nil {
			return nil, fmt.Errorf("failed to scan ranked user: %w", err)
		}
		ranked = append(ranked, ru)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ranked users: %w", err)
	}
	return ranked, nil
}
