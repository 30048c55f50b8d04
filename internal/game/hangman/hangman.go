// Package hangman implements the hangman word-guessing engine.
package hangman

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"discord-arcade-bot/internal/game"
	"discord-arcade-bot/internal/pkg/textutil"
	"discord-arcade-bot/internal/session"
)

// DefaultTries is the number of wrong letters allowed per game.
const DefaultTries = 6

// maskChar hides an unrevealed letter in the displayed word.
const maskChar = "•"

// defaultWords is the fixed vocabulary games draw from. All entries are
// lowercase; '-' and ' ' are separators and always shown revealed.
var defaultWords = []string{
	"discord",
	"minecraft",
	"modpack",
	"survie",
	"plairepoilue",
	"aventurier",
	"diamant",
	"creeper",
	"nether",
	"redstone",
	"potion",
	"villageois",
}

// Outcome of a guessed letter.
type Outcome int

// Guess outcomes.
const (
	InProgress Outcome = iota
	Solved
	Lost
)

// Session is one user's running game.
type Session struct {
	Word      string
	Guessed   map[rune]bool
	TriesLeft int
	CreatedAt time.Time
}

// Mask renders the word with unguessed letters hidden. Separators are
// always visible.
func (s *Session) Mask() string {
	var b strings.Builder
	for _, r := range s.Word {
		switch {
		case isSeparator(r):
			b.WriteRune(r)
		case s.Guessed[r]:
			b.WriteRune(r)
		default:
			b.WriteString(maskChar)
		}
	}
	return b.String()
}

// GuessedList returns the guessed letters in alphabetical order.
func (s *Session) GuessedList() []string {
	out := make([]string, 0, len(s.Guessed))
	for r := range s.Guessed {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}

// solved reports whether every non-separator letter has been guessed.
func (s *Session) solved() bool {
	for _, r := range s.Word {
		if !isSeparator(r) && !s.Guessed[r] {
			return false
		}
	}
	return true
}

func isSeparator(r rune) bool {
	return r == '-' || r == ' '
}

// Result of one guessed letter.
type Result struct {
	Outcome   Outcome
	Letter    rune
	Hit       bool
	Mask      string
	Word      string
	TriesLeft int
}

// Config carries tunable hangman parameters.
type Config struct {
	Tries int
	Words []string
}

// Engine owns hangman sessions keyed by user ID.
type Engine struct {
	cfg      Config
	sessions *session.Store[*Session]
	rng      *rand.Rand
}

// New creates a hangman engine. Zero-valued config fields fall back to
// the defaults.
func New(cfg Config, opts ...session.Option) *Engine {
	if cfg.Tries <= 0 {
		cfg.Tries = DefaultTries
	}
	if len(cfg.Words) == 0 {
		cfg.Words = defaultWords
	}
	return &Engine{
		cfg:      cfg,
		sessions: session.NewStore[*Session](opts...),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start opens a session for userID with a random word, replacing any
// previous session.
func (e *Engine) Start(userID string) *Session {
	s := &Session{
		Word:      e.cfg.Words[e.rng.Intn(len(e.cfg.Words))],
		Guessed:   make(map[rune]bool),
		TriesLeft: e.cfg.Tries,
		CreatedAt: time.Now(),
	}
	e.sessions.Put(userID, s)
	return s
}

// Get returns the live session for userID.
func (e *Engine) Get(userID string) (*Session, bool) {
	return e.sessions.Get(userID)
}

// GuessLetter normalizes raw to a single lowercase letter and applies it.
// Unusable input or a repeated letter is rejected without mutating the
// session. A wrong letter costs one try. Solving the word or running out
// of tries deletes the session.
func (e *Engine) GuessLetter(userID, raw string) (*Result, error) {
	s, ok := e.sessions.Get(userID)
	if !ok {
		return nil, game.ErrNoSession
	}

	letter := textutil.ExtractLetter(raw)
	if letter == 0 {
		return nil, game.ErrInvalidInput
	}
	if s.Guessed[letter] {
		return nil, game.ErrAlreadyGuessed
	}

	s.Guessed[letter] = true
	hit := strings.ContainsRune(s.Word, letter)
	if !hit {
		s.TriesLeft--
	}

	res := &Result{
		Letter:    letter,
		Hit:       hit,
		Mask:      s.Mask(),
		Word:      s.Word,
		TriesLeft: s.TriesLeft,
	}

	switch {
	case s.solved():
		res.Outcome = Solved
		e.sessions.Delete(userID)
	case s.TriesLeft <= 0:
		res.Outcome = Lost
		e.sessions.Delete(userID)
	default:
		res.Outcome = InProgress
	}
	return res, nil
}

// Close releases the session store.
func (e *Engine) Close() {
	e.sessions.Close()
}
