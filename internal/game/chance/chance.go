// Package chance implements the luck-based games: duel, bomb,
// rock-paper-scissors, coinflip and dice.
package chance

import (
	"math/rand"
	"time"

	"discord-arcade-bot/internal/game"
	"discord-arcade-bot/internal/session"
)

// Participant identifies one player. Bot accounts cannot be challenged.
type Participant struct {
	ID  string
	Bot bool
}

// Duel is a pending challenge waiting for the target to accept.
type Duel struct {
	ChallengerID string
	TargetID     string
	CreatedAt    time.Time
}

// DuelResult is a resolved duel.
type DuelResult struct {
	Winner string
	Loser  string
}

// BombResult reports whether the attacker's bomb went off on the target
// or backfired.
type BombResult struct {
	AttackerID string
	TargetID   string
	Win        bool
}

// Choice is a rock-paper-scissors move.
type Choice string

// RPS moves, in the wording the buttons use.
const (
	Rock     Choice = "pierre"
	Paper    Choice = "feuille"
	Scissors Choice = "ciseaux"
)

var rpsChoices = []Choice{Rock, Paper, Scissors}

// beats maps each move to the move it defeats.
var beats = map[Choice]Choice{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// RPSOutcome of a round against the bot.
type RPSOutcome int

// RPS outcomes.
const (
	RPSDraw RPSOutcome = iota
	RPSWin
	RPSLose
)

// RPSResult is one resolved round.
type RPSResult struct {
	Player  Choice
	Bot     Choice
	Outcome RPSOutcome
}

// Side of a coin.
type Side string

// Coin sides.
const (
	Heads Side = "pile"
	Tails Side = "face"
)

// CoinflipResult is one resolved flip.
type CoinflipResult struct {
	Choice Side
	Result Side
	Win    bool
}

// DiceResult is one resolved roll against a bet.
type DiceResult struct {
	Bet  int
	Roll int
	Win  bool
}

// Engine resolves the luck-based games. Pending duels are the only state
// it keeps.
type Engine struct {
	duels *session.Store[*Duel]
	rng   *rand.Rand
}

// New creates a chance engine.
func New(opts ...session.Option) *Engine {
	return &Engine{
		duels: session.NewStore[*Duel](opts...),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func duelKey(challengerID, targetID string) string {
	return challengerID + ":" + targetID
}

// Challenge opens a pending duel from challenger to target. The duel
// resolves when the target accepts.
func (e *Engine) Challenge(challenger, target Participant) (*Duel, error) {
	if challenger.Bot || target.Bot {
		return nil, game.ErrBotPlayer
	}
	if challenger.ID == target.ID {
		return nil, game.ErrSamePlayer
	}
	d := &Duel{
		ChallengerID: challenger.ID,
		TargetID:     target.ID,
		CreatedAt:    time.Now(),
	}
	e.duels.Put(duelKey(challenger.ID, target.ID), d)
	return d, nil
}

// AcceptDuel resolves a pending duel with a fair coin. Only the target
// may accept, and each duel resolves at most once.
func (e *Engine) AcceptDuel(challengerID, targetID, actingUser string) (*DuelResult, error) {
	if actingUser != targetID {
		return nil, game.ErrNotOwner
	}
	key := duelKey(challengerID, targetID)
	if _, ok := e.duels.Get(key); !ok {
		return nil, game.ErrNoSession
	}
	e.duels.Delete(key)

	winner, loser := challengerID, targetID
	if e.rng.Intn(2) == 0 {
		winner, loser = targetID, challengerID
	}
	return &DuelResult{Winner: winner, Loser: loser}, nil
}

// Bomb resolves immediately: 50/50 the bomb blows up the target or
// backfires on the attacker.
func (e *Engine) Bomb(attacker, target Participant) (*BombResult, error) {
	if attacker.Bot || target.Bot {
		return nil, game.ErrBotPlayer
	}
	if attacker.ID == target.ID {
		return nil, game.ErrSamePlayer
	}
	return &BombResult{
		AttackerID: attacker.ID,
		TargetID:   target.ID,
		Win:        e.rng.Intn(2) == 0,
	}, nil
}

// ParseChoice validates a raw rock-paper-scissors move.
func ParseChoice(raw string) (Choice, error) {
	c := Choice(raw)
	if _, ok := beats[c]; !ok {
		return "", game.ErrInvalidInput
	}
	return c, nil
}

// RPS plays one round against a uniformly random bot move.
func (e *Engine) RPS(player Choice) (*RPSResult, error) {
	if _, ok := beats[player]; !ok {
		return nil, game.ErrInvalidInput
	}
	bot := rpsChoices[e.rng.Intn(len(rpsChoices))]

	res := &RPSResult{Player: player, Bot: bot}
	switch {
	case player == bot:
		res.Outcome = RPSDraw
	case beats[player] == bot:
		res.Outcome = RPSWin
	default:
		res.Outcome = RPSLose
	}
	return res, nil
}

// ParseSide validates a raw coin side.
func ParseSide(raw string) (Side, error) {
	switch Side(raw) {
	case Heads:
		return Heads, nil
	case Tails:
		return Tails, nil
	default:
		return "", game.ErrInvalidInput
	}
}

// Coinflip flips a fair coin against the caller's pick.
func (e *Engine) Coinflip(choice Side) (*CoinflipResult, error) {
	if choice != Heads && choice != Tails {
		return nil, game.ErrInvalidInput
	}
	result := Heads
	if e.rng.Intn(2) == 0 {
		result = Tails
	}
	return &CoinflipResult{Choice: choice, Result: result, Win: choice == result}, nil
}

// Dice rolls a six-sided die against a bet in [1,6].
func (e *Engine) Dice(bet int) (*DiceResult, error) {
	if bet < 1 || bet > 6 {
		return nil, game.ErrInvalidInput
	}
	roll := 1 + e.rng.Intn(6)
	return &DiceResult{Bet: bet, Roll: roll, Win: bet == roll}, nil
}

// Close releases the pending-duel store.
func (e *Engine) Close() {
	e.duels.Close()
}
