// Package quiz implements the multiple-choice quiz engine.
// A session is created per user on start and consumed by the first answer.
package quiz

import (
	"math/rand"
	"strings"
	"time"

	"discord-arcade-bot/internal/game"
	"discord-arcade-bot/internal/session"
)

// Kind selects the question bank.
type Kind string

// Question banks.
const (
	KindGeneral   Kind = "gen"
	KindMinecraft Kind = "mc"
)

// Difficulty tiers. DifficultyRandom draws from the whole bank.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyRandom = "random"
)

// Question is one bank entry.
type Question struct {
	Difficulty string
	Text       string
	Choices    []string
	Answer     int
}

// Session is a live quiz for one user. It is consumed by the first answer
// from its owner; late answers fail with ErrNoSession.
type Session struct {
	Kind         Kind
	Difficulty   string
	Reward       int
	CorrectIndex int
	Choices      []string
	Question     string
	CreatedAt    time.Time
}

// Result is the outcome of answering a quiz.
type Result struct {
	Correct      bool
	Reward       int
	CorrectIndex int
	CorrectText  string
	Question     string
	Kind         Kind
}

// Config holds reward points per difficulty.
type Config struct {
	RewardEasy   int
	RewardMedium int
	RewardHard   int
}

// Engine owns quiz sessions keyed by the initiating user ID.
type Engine struct {
	cfg      Config
	banks    map[Kind][]Question
	sessions *session.Store[*Session]
	rng      *rand.Rand
}

// New creates a quiz engine with the built-in question banks.
func New(cfg *Config, opts ...session.Option) *Engine {
	c := Config{RewardEasy: 2, RewardMedium: 3, RewardHard: 5}
	if cfg != nil {
		if cfg.RewardEasy > 0 {
			c.RewardEasy = cfg.RewardEasy
		}
		if cfg.RewardMedium > 0 {
			c.RewardMedium = cfg.RewardMedium
		}
		if cfg.RewardHard > 0 {
			c.RewardHard = cfg.RewardHard
		}
	}

	return &Engine{
		cfg: c,
		banks: map[Kind][]Question{
			KindGeneral:   generalBank,
			KindMinecraft: minecraftBank,
		},
		sessions: session.NewStore[*Session](opts...),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// reward maps a difficulty to its points; unknown difficulties pay the
// medium reward.
func (e *Engine) reward(difficulty string) int {
	switch difficulty {
	case DifficultyEasy:
		return e.cfg.RewardEasy
	case DifficultyHard:
		return e.cfg.RewardHard
	default:
		return e.cfg.RewardMedium
	}
}

// Start picks a question filtered by difficulty and opens a session for
// userID, replacing any previous one. "random" or a filter with no matches
// falls back to the full bank.
func (e *Engine) Start(userID string, kind Kind, difficulty string) *Session {
	bankAll := e.banks[kind]
	if bankAll == nil {
		kind = KindGeneral
		bankAll = e.banks[KindGeneral]
	}

	diff := strings.ToLower(difficulty)
	bank := bankAll
	if diff != DifficultyRandom && diff != "" {
		filtered := make([]Question, 0, len(bankAll))
		for _, q := range bankAll {
			if q.Difficulty == diff {
				filtered = append(filtered, q)
			}
		}
		if len(filtered) > 0 {
			bank = filtered
		}
	}

	q := bank[e.rng.Intn(len(bank))]
	s := &Session{
		Kind:         kind,
		Difficulty:   q.Difficulty,
		Reward:       e.reward(q.Difficulty),
		CorrectIndex: q.Answer,
		Choices:      q.Choices,
		Question:     q.Text,
		CreatedAt:    time.Now(),
	}
	e.sessions.Put(userID, s)
	return s
}

// Answer consumes the session owned by ownerID. Only the owner may answer;
// anyone else gets ErrNotOwner and the session is left untouched. The
// session is deleted unconditionally after one answer, so a second answer
// fails with ErrNoSession and points are never credited twice.
func (e *Engine) Answer(ownerID, callerID string, choice int) (*Result, error) {
	if callerID != ownerID {
		return nil, game.ErrNotOwner
	}

	s, ok := e.sessions.Get(ownerID)
	if !ok {
		return nil, game.ErrNoSession
	}
	e.sessions.Delete(ownerID)

	if choice < 0 || choice >= len(s.Choices) {
		return nil, game.ErrInvalidInput
	}

	correct := choice == s.CorrectIndex
	res := &Result{
		Correct:      correct,
		CorrectIndex: s.CorrectIndex,
		CorrectText:  s.Choices[s.CorrectIndex],
		Question:     s.Question,
		Kind:         s.Kind,
	}
	if correct {
		res.Reward = s.Reward
	}
	return res, nil
}

// Close releases the session store.
func (e *Engine) Close() {
	e.sessions.Close()
}
