package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"discord-arcade-bot/internal/config"
	"discord-arcade-bot/internal/game/chance"
	"discord-arcade-bot/internal/game/guess"
	"discord-arcade-bot/internal/game/hangman"
	"discord-arcade-bot/internal/game/quiz"
	"discord-arcade-bot/internal/game/tictactoe"
	"discord-arcade-bot/internal/model"
	"discord-arcade-bot/internal/repository"
	"discord-arcade-bot/internal/session"
)

// Chance game scoring. These are fixed rather than configurable, matching
// the quiz/board game rewards announced in the command descriptions.
const (
	duelReward      = 5
	bombReward      = 4
	bombPenalty     = 2
	rpsReward       = 2
	rpsPenalty      = 1
	coinflipReward  = 1
	coinflipPenalty = 1
	diceReward      = 2
	dicePenalty     = 1
)

// ArcadeService orchestrates the mini-games: it resolves sessions through
// the game engines and settles points through the score service on
// terminal outcomes.
type ArcadeService struct {
	scores *ScoreService

	quiz    *quiz.Engine
	ttt     *tictactoe.Engine
	guess   *guess.Engine
	hangman *hangman.Engine
	chance  *chance.Engine

	cfg config.GamesConfig
}

// NewArcadeService creates the game orchestrator.
func NewArcadeService(scores *ScoreService, cfg config.GamesConfig) *ArcadeService {
	var opts []session.Option
	if cfg.SessionTTL > 0 {
		opts = append(opts, session.WithTTL(cfg.SessionTTL))
	}

	return &ArcadeService{
		scores: scores,
		quiz: quiz.New(&quiz.Config{
			RewardEasy:   cfg.Quiz.RewardEasy,
			RewardMedium: cfg.Quiz.RewardMedium,
			RewardHard:   cfg.Quiz.RewardHard,
		}, opts...),
		ttt:     tictactoe.New(opts...),
		guess:   guess.New(opts...),
		hangman: hangman.New(hangman.Config{Tries: cfg.Hangman.Tries}, opts...),
		chance:  chance.New(opts...),
		cfg:     cfg,
	}
}

// Close releases all session stores.
func (s *ArcadeService) Close() {
	s.quiz.Close()
	s.ttt.Close()
	s.guess.Close()
	s.hangman.Close()
	s.chance.Close()
}

// Profile returns the stats for userID.
func (s *ArcadeService) Profile(ctx context.Context, userID string) (*model.UserStats, error) {
	return s.scores.Profile(ctx, userID)
}

// Leaderboard returns the top n users by points.
func (s *ArcadeService) Leaderboard(ctx context.Context, n int) ([]model.RankedUser, error) {
	return s.scores.Leaderboard(ctx, n)
}

/* ===== Quiz ===== */

// StartQuiz opens a quiz session for userID.
func (s *ArcadeService) StartQuiz(userID string, kind quiz.Kind, difficulty string) *quiz.Session {
	return s.quiz.Start(userID, kind, difficulty)
}

// AnswerQuiz resolves a quiz answer and credits points plus the correct-
// answer counter for the bank on a right answer.
func (s *ArcadeService) AnswerQuiz(ctx context.Context, ownerID, callerID string, choice int) (*quiz.Result, error) {
	res, err := s.quiz.Answer(ownerID, callerID, choice)
	if err != nil {
		return nil, err
	}
	if res.Correct {
		counter := model.FieldQuizCorrect
		if res.Kind == quiz.KindMinecraft {
			counter = model.FieldMCQuizCorrect
		}
		if _, err := s.scores.Award(ctx, ownerID,
			repository.Delta{Field: model.FieldPoints, Amount: res.Reward},
			repository.Delta{Field: counter, Amount: 1},
		); err != nil {
			return nil, err
		}
	}
	return res, nil
}

/* ===== Tic-tac-toe ===== */

// StartTicTacToe opens a game between two players; X moves first.
func (s *ArcadeService) StartTicTacToe(playerX, playerO tictactoe.Participant) (string, *tictactoe.Session, error) {
	return s.ttt.NewGame(playerX, playerO)
}

// TicTacToeSession returns the live game for gameID.
func (s *ArcadeService) TicTacToeSession(gameID string) (*tictactoe.Session, bool) {
	return s.ttt.Get(gameID)
}

// MoveTicTacToe applies one move. A win credits the winner and bumps both
// win/loss counters; a draw changes no scores.
func (s *ArcadeService) MoveTicTacToe(ctx context.Context, gameID, actingUser string, pos int) (*tictactoe.MoveResult, error) {
	res, err := s.ttt.Move(gameID, actingUser, pos)
	if err != nil {
		return nil, err
	}
	if res.Outcome == tictactoe.Won {
		err := s.scores.AwardPair(ctx,
			res.Winner, []repository.Delta{
				{Field: model.FieldPoints, Amount: s.cfg.TicTacToe.RewardWin},
				{Field: model.FieldTTTWins, Amount: 1},
			},
			res.Loser, []repository.Delta{
				{Field: model.FieldTTTLosses, Amount: 1},
			},
		)
		if err != nil {
			// The game already resolved; a settlement failure must not
			// retract the result shown to the players.
			log.Error().Err(err).Str("winner", res.Winner).Msg("failed to settle tic-tac-toe win")
		}
	}
	return res, nil
}

/* ===== Guess the number ===== */

// StartGuess opens a guess-the-number session.
func (s *ArcadeService) StartGuess(userID string) *guess.Session {
	return s.guess.Start(userID)
}

// ProposeGuess applies one guess; finding the number pays the reward.
func (s *ArcadeService) ProposeGuess(ctx context.Context, userID string, n int) (*guess.Result, error) {
	res, err := s.guess.Propose(userID, n)
	if err != nil {
		return nil, err
	}
	if res.Direction == guess.Correct {
		if _, err := s.scores.Award(ctx, userID,
			repository.Delta{Field: model.FieldPoints, Amount: s.cfg.Guess.RewardWin},
		); err != nil {
			return nil, err
		}
	}
	return res, nil
}

/* ===== Hangman ===== */

// StartHangman opens a hangman session.
func (s *ArcadeService) StartHangman(userID string) *hangman.Session {
	return s.hangman.Start(userID)
}

// HangmanSession returns the live session for userID.
func (s *ArcadeService) HangmanSession(userID string) (*hangman.Session, bool) {
	return s.hangman.Get(userID)
}

// GuessHangmanLetter applies one letter. Solving the word pays the reward;
// running out of tries deducts the penalty, clamped at zero.
func (s *ArcadeService) GuessHangmanLetter(ctx context.Context, userID, raw string) (*hangman.Result, error) {
	res, err := s.hangman.GuessLetter(userID, raw)
	if err != nil {
		return nil, err
	}
	switch res.Outcome {
	case hangman.Solved:
		_, err = s.scores.Award(ctx, userID,
			repository.Delta{Field: model.FieldPoints, Amount: s.cfg.Hangman.RewardWin})
	case hangman.Lost:
		_, err = s.scores.Award(ctx, userID,
			repository.Delta{Field: model.FieldPoints, Amount: -s.cfg.Hangman.PenaltyLoss})
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

/* ===== Chance games ===== */

// ChallengeDuel opens a pending duel from challenger to target.
func (s *ArcadeService) ChallengeDuel(challenger, target chance.Participant) (*chance.Duel, error) {
	return s.chance.Challenge(challenger, target)
}

// AcceptDuel resolves a pending duel: the winner is credited, both duel
// counters move.
func (s *ArcadeService) AcceptDuel(ctx context.Context, challengerID, targetID, actingUser string) (*chance.DuelResult, error) {
	res, err := s.chance.AcceptDuel(challengerID, targetID, actingUser)
	if err != nil {
		return nil, err
	}
	err = s.scores.AwardPair(ctx,
		res.Winner, []repository.Delta{
			{Field: model.FieldPoints, Amount: duelReward},
			{Field: model.FieldDuelWins, Amount: 1},
		},
		res.Loser, []repository.Delta{
			{Field: model.FieldDuelLosses, Amount: 1},
		},
	)
	if err != nil {
		log.Error().Err(err).Str("winner", res.Winner).Msg("failed to settle duel")
	}
	return res, nil
}

// Bomb resolves a 50/50 bomb throw and settles both users' counters.
func (s *ArcadeService) Bomb(ctx context.Context, attacker, target chance.Participant) (*chance.BombResult, error) {
	res, err := s.chance.Bomb(attacker, target)
	if err != nil {
		return nil, err
	}
	if res.Win {
		err = s.scores.AwardPair(ctx,
			attacker.ID, []repository.Delta{
				{Field: model.FieldPoints, Amount: bombReward},
				{Field: model.FieldBombWins, Amount: 1},
			},
			target.ID, []repository.Delta{
				{Field: model.FieldBombLosses, Amount: 1},
			},
		)
	} else {
		err = s.scores.AwardPair(ctx,
			target.ID, []repository.Delta{
				{Field: model.FieldBombWins, Amount: 1},
			},
			attacker.ID, []repository.Delta{
				{Field: model.FieldPoints, Amount: -bombPenalty},
				{Field: model.FieldBombLosses, Amount: 1},
			},
		)
	}
	if err != nil {
		log.Error().Err(err).Str("attacker", attacker.ID).Msg("failed to settle bomb")
	}
	return res, nil
}

// RPS plays rock-paper-scissors against the bot and settles the points.
// Returns the round result and the caller's updated stats.
func (s *ArcadeService) RPS(ctx context.Context, userID string, choice chance.Choice) (*chance.RPSResult, *model.UserStats, error) {
	res, err := s.chance.RPS(choice)
	if err != nil {
		return nil, nil, err
	}

	var st *model.UserStats
	switch res.Outcome {
	case chance.RPSWin:
		st, err = s.scores.Award(ctx, userID,
			repository.Delta{Field: model.FieldPoints, Amount: rpsReward})
	case chance.RPSLose:
		st, err = s.scores.Award(ctx, userID,
			repository.Delta{Field: model.FieldPoints, Amount: -rpsPenalty})
	default:
		st, err = s.scores.Profile(ctx, userID)
	}
	if err != nil {
		return nil, nil, err
	}
	return res, st, nil
}

// Coinflip flips a coin against the caller's pick and settles the points.
func (s *ArcadeService) Coinflip(ctx context.Context, userID string, choice chance.Side) (*chance.CoinflipResult, *model.UserStats, error) {
	res, err := s.chance.Coinflip(choice)
	if err != nil {
		return nil, nil, err
	}

	delta := -coinflipPenalty
	if res.Win {
		delta = coinflipReward
	}
	st, err := s.scores.Award(ctx, userID,
		repository.Delta{Field: model.FieldPoints, Amount: delta})
	if err != nil {
		return nil, nil, err
	}
	return res, st, nil
}

// Dice rolls a die against the caller's bet and settles the points.
func (s *ArcadeService) Dice(ctx context.Context, userID string, bet int) (*chance.DiceResult, *model.UserStats, error) {
	res, err := s.chance.Dice(bet)
	if err != nil {
		return nil, nil, err
	}

	delta := -dicePenalty
	if res.Win {
		delta = diceReward
	}
	st, err := s.scores.Award(ctx, userID,
		repository.Delta{Field: model.FieldPoints, Amount: delta})
	if err != nil {
		return nil, nil, err
	}
	return res, st, nil
}
