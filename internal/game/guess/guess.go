// Package guess implements the guess-the-number engine.
package guess

import (
	"math/rand"
	"time"

	"discord-arcade-bot/internal/game"
	"discord-arcade-bot/internal/session"
)

// Number range for the secret.
const (
	Min = 1
	Max = 100
)

// Direction tells the caller how to adjust the next guess.
type Direction int

// Propose outcomes.
const (
	Correct Direction = iota
	TooLow
	TooHigh
)

// Session is one user's running game. It persists across wrong guesses,
// with the same secret, until the number is found.
type Session struct {
	Secret    int
	Tries     int
	CreatedAt time.Time
}

// Result of one proposed number.
type Result struct {
	Direction Direction
	Tries     int
}

// Engine owns guess sessions keyed by user ID.
type Engine struct {
	sessions *session.Store[*Session]
	rng      *rand.Rand
}

// New creates a guess-the-number engine.
func New(opts ...session.Option) *Engine {
	return &Engine{
		sessions: session.NewStore[*Session](opts...),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start opens a session for userID with a fresh secret in [1,100],
// replacing any previous session.
func (e *Engine) Start(userID string) *Session {
	s := &Session{
		Secret:    Min + e.rng.Intn(Max-Min+1),
		CreatedAt: time.Now(),
	}
	e.sessions.Put(userID, s)
	return s
}

// Propose compares n against the secret. Tries is incremented before the
// comparison. A correct guess deletes the session; otherwise the session
// persists unchanged except for the try counter.
func (e *Engine) Propose(userID string, n int) (*Result, error) {
	s, ok := e.sessions.Get(userID)
	if !ok {
		return nil, game.ErrNoSession
	}

	s.Tries++

	switch {
	case n == s.Secret:
		e.sessions.Delete(userID)
		return &Result{Direction: Correct, Tries: s.Tries}, nil
	case n < s.Secret:
		return &Result{Direction: TooLow, Tries: s.Tries}, nil
	default:
		return &Result{Direction: TooHigh, Tries: s.Tries}, nil
	}
}

// Close releases the session store.
func (e *Engine) Close() {
	e.sessions.Close()
}
