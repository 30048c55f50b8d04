package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discord-arcade-bot/internal/config"
	"discord-arcade-bot/internal/game/chance"
	"discord-arcade-bot/internal/game/guess"
	"discord-arcade-bot/internal/game/quiz"
	"discord-arcade-bot/internal/game/tictactoe"
	"discord-arcade-bot/internal/model"
	"discord-arcade-bot/internal/repository"
)

func testGamesConfig() config.GamesConfig {
	return config.GamesConfig{
		Quiz:      config.QuizConfig{RewardEasy: 2, RewardMedium: 3, RewardHard: 5},
		TicTacToe: config.TicTacToeConfig{RewardWin: 5},
		Guess:     config.GuessConfig{RewardWin: 3},
		Hangman:   config.HangmanConfig{Tries: 6, RewardWin: 4, PenaltyLoss: 2},
	}
}

func newTestArcade(t *testing.T) *ArcadeService {
	t.Helper()
	repo := repository.NewJSONScoreRepository(filepath.Join(t.TempDir(), "scores.json"))
	svc := NewArcadeService(NewScoreService(repo), testGamesConfig())
	t.Cleanup(svc.Close)
	return svc
}

func TestAnswerQuiz_CreditsOnlyOnCorrect(t *testing.T) {
	svc := newTestArcade(t)
	ctx := context.Background()

	s := svc.StartQuiz("user-1", quiz.KindGeneral, quiz.DifficultyEasy)

	wrong := (s.CorrectIndex + 1) % len(s.Choices)
	res, err := svc.AnswerQuiz(ctx, "user-1", "user-1", wrong)
	require.NoError(t, err)
	assert.False(t, res.Correct)

	st, err := svc.Profile(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, st.Points)
	assert.Zero(t, st.QuizCorrect)

	s = svc.StartQuiz("user-1", quiz.KindGeneral, quiz.DifficultyEasy)
	res, err = svc.AnswerQuiz(ctx, "user-1", "user-1", s.CorrectIndex)
	require.NoError(t, err)
	assert.True(t, res.Correct)

	st, err = svc.Profile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, st.Points)
	assert.Equal(t, 1, st.QuizCorrect)
	assert.Zero(t, st.MCQuizCorrect)
}

func TestAnswerQuiz_MinecraftBumpsOwnCounter(t *testing.T) {
	svc := newTestArcade(t)
	ctx := context.Background()

	s := svc.StartQuiz("user-1", quiz.KindMinecraft, quiz.DifficultyHard)
	res, err := svc.AnswerQuiz(ctx, "user-1", "user-1", s.CorrectIndex)
	require.NoError(t, err)
	require.True(t, res.Correct)

	st, err := svc.Profile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 5, st.Points)
	assert.Equal(t, 1, st.MCQuizCorrect)
	assert.Zero(t, st.QuizCorrect)
}

func TestMoveTicTacToe_SettlesWin(t *testing.T) {
	svc := newTestArcade(t)
	ctx := context.Background()

	gameID, _, err := svc.StartTicTacToe(
		tictactoe.Participant{ID: "alice"},
		tictactoe.Participant{ID: "bob"},
	)
	require.NoError(t, err)

	for _, m := range []struct {
		user string
		pos  int
	}{
		{"alice", 0}, {"bob", 3}, {"alice", 1}, {"bob", 4},
	} {
		_, err := svc.MoveTicTacToe(ctx, gameID, m.user, m.pos)
		require.NoError(t, err)
	}
	res, err := svc.MoveTicTacToe(ctx, gameID, "alice", 2)
	require.NoError(t, err)
	require.Equal(t, tictactoe.Won, res.Outcome)

	winner, err := svc.Profile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 5, winner.Points)
	assert.Equal(t, 1, winner.TTTWins)

	loser, err := svc.Profile(ctx, "bob")
	require.NoError(t, err)
	assert.Zero(t, loser.Points)
	assert.Equal(t, 1, loser.TTTLosses)
}

func TestProposeGuess_PaysOnCorrect(t *testing.T) {
	svc := newTestArcade(t)
	ctx := context.Background()

	s := svc.StartGuess("user-1")

	res, err := svc.ProposeGuess(ctx, "user-1", s.Secret)
	require.NoError(t, err)
	assert.Equal(t, guess.Correct, res.Direction)

	st, err := svc.Profile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, st.Points)
}

func TestGuessHangmanLetter_Settlement(t *testing.T) {
	svc := newTestArcade(t)
	ctx := context.Background()

	// Loss from zero points clamps at zero.
	svc.StartHangman("user-1")
	// None of the vocabulary words contain these letters, so every guess
	// is a miss and the sixth ends the game.
	lostLetters := []string{"w", "x", "y", "z", "b", "q"}
	var lost bool
	for _, l := range lostLetters {
		res, err := svc.GuessHangmanLetter(ctx, "user-1", l)
		require.NoError(t, err)
		if res.TriesLeft == 0 {
			lost = true
			break
		}
	}
	require.True(t, lost)

	st, err := svc.Profile(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, st.Points, "loss penalty clamps at zero")
}

func TestAcceptDuel_SettlesWinnerAndLoser(t *testing.T) {
	svc := newTestArcade(t)
	ctx := context.Background()

	_, err := svc.ChallengeDuel(chance.Participant{ID: "alice"}, chance.Participant{ID: "bob"})
	require.NoError(t, err)

	res, err := svc.AcceptDuel(ctx, "alice", "bob", "bob")
	require.NoError(t, err)

	winner, err := svc.Profile(ctx, res.Winner)
	require.NoError(t, err)
	assert.Equal(t, 5, winner.Points)
	assert.Equal(t, 1, winner.DuelWins)

	loser, err := svc.Profile(ctx, res.Loser)
	require.NoError(t, err)
	assert.Zero(t, loser.Points)
	assert.Equal(t, 1, loser.DuelLosses)
}

func TestBomb_SettlesBothSides(t *testing.T) {
	svc := newTestArcade(t)
	ctx := context.Background()

	res, err := svc.Bomb(ctx, chance.Participant{ID: "alice"}, chance.Participant{ID: "bob"})
	require.NoError(t, err)

	alice, err := svc.Profile(ctx, "alice")
	require.NoError(t, err)
	bob, err := svc.Profile(ctx, "bob")
	require.NoError(t, err)

	if res.Win {
		assert.Equal(t, 4, alice.Points)
		assert.Equal(t, 1, alice.BombWins)
		assert.Equal(t, 1, bob.BombLosses)
	} else {
		assert.Zero(t, alice.Points, "penalty from zero clamps at zero")
		assert.Equal(t, 1, alice.BombLosses)
		assert.Equal(t, 1, bob.BombWins)
	}
}

func TestCoinflipAndDice_ReturnUpdatedStats(t *testing.T) {
	svc := newTestArcade(t)
	ctx := context.Background()

	res, st, err := svc.Coinflip(ctx, "user-1", chance.Heads)
	require.NoError(t, err)
	if res.Win {
		assert.Equal(t, 1, st.Points)
	} else {
		assert.Zero(t, st.Points)
	}

	dres, dst, err := svc.Dice(ctx, "user-2", 3)
	require.NoError(t, err)
	if dres.Win {
		assert.Equal(t, 2, dst.Points)
	} else {
		assert.Zero(t, dst.Points)
	}
}

func TestLeaderboard_RanksByPoints(t *testing.T) {
	svc := newTestArcade(t)
	ctx := context.Background()

	_, err := svc.scores.Award(ctx, "alice", repository.Delta{Field: model.FieldPoints, Amount: 10})
	require.NoError(t, err)
	_, err = svc.scores.Award(ctx, "bob", repository.Delta{Field: model.FieldPoints, Amount: 20})
	require.NoError(t, err)

	top, err := svc.Leaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "bob", top[0].UserID)
	assert.Equal(t, "alice", top[1].UserID)
}
