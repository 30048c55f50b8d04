package hangman

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discord-arcade-bot/internal/game"
)

func startWith(e *Engine, userID, word string) *Session {
	s := &Session{
		Word:      word,
		Guessed:   make(map[rune]bool),
		TriesLeft: e.cfg.Tries,
		CreatedAt: time.Now(),
	}
	e.sessions.Put(userID, s)
	return s
}

func TestStart_Defaults(t *testing.T) {
	e := New(Config{})
	defer e.Close()

	s := e.Start("user-1")
	assert.Equal(t, DefaultTries, s.TriesLeft)
	assert.Contains(t, defaultWords, s.Word)
	assert.Empty(t, s.Guessed)
}

func TestGuessLetter_SolveWithoutMistake(t *testing.T) {
	e := New(Config{})
	defer e.Close()

	startWith(e, "user-1", "nether")

	// n,e,t,h,r in any order, no repeats, no wrong letters.
	for _, raw := range []string{"t", "h", "n", "r"} {
		res, err := e.GuessLetter("user-1", raw)
		require.NoError(t, err)
		assert.Equal(t, InProgress, res.Outcome)
		assert.Equal(t, DefaultTries, res.TriesLeft)
		assert.True(t, res.Hit)
	}

	res, err := e.GuessLetter("user-1", "e")
	require.NoError(t, err)
	assert.Equal(t, Solved, res.Outcome)
	assert.Equal(t, DefaultTries, res.TriesLeft, "no tries spent on a clean solve")
	assert.Equal(t, "nether", res.Mask)

	_, err = e.GuessLetter("user-1", "a")
	assert.ErrorIs(t, err, game.ErrNoSession)
}

func TestGuessLetter_LoseAfterSixMisses(t *testing.T) {
	e := New(Config{})
	defer e.Close()

	startWith(e, "user-1", "nether")

	for i, raw := range []string{"a", "b", "c", "d", "f", "g"} {
		res, err := e.GuessLetter("user-1", raw)
		require.NoError(t, err)
		assert.False(t, res.Hit)
		assert.Equal(t, DefaultTries-i-1, res.TriesLeft)
		if i < 5 {
			assert.Equal(t, InProgress, res.Outcome)
		} else {
			assert.Equal(t, Lost, res.Outcome)
			assert.Equal(t, "nether", res.Word)
		}
	}

	_, err := e.GuessLetter("user-1", "n")
	assert.ErrorIs(t, err, game.ErrNoSession)
}

func TestGuessLetter_Rejections(t *testing.T) {
	e := New(Config{})
	defer e.Close()

	_, err := e.GuessLetter("nobody", "a")
	assert.ErrorIs(t, err, game.ErrNoSession)

	s := startWith(e, "user-1", "nether")

	// Input that does not normalize to a letter.
	for _, raw := range []string{"", "3", "!", "   "} {
		_, err := e.GuessLetter("user-1", raw)
		assert.ErrorIs(t, err, game.ErrInvalidInput, "raw %q", raw)
	}
	assert.Equal(t, DefaultTries, s.TriesLeft)
	assert.Empty(t, s.Guessed)

	_, err = e.GuessLetter("user-1", "n")
	require.NoError(t, err)

	// Repeated letter leaves tries and guesses untouched.
	_, err = e.GuessLetter("user-1", "n")
	assert.ErrorIs(t, err, game.ErrAlreadyGuessed)
	assert.Equal(t, DefaultTries, s.TriesLeft)
	assert.Len(t, s.Guessed, 1)
}

func TestGuessLetter_NormalizesAccents(t *testing.T) {
	e := New(Config{})
	defer e.Close()

	startWith(e, "user-1", "nether")

	// "É" folds to "e".
	res, err := e.GuessLetter("user-1", "É")
	require.NoError(t, err)
	assert.Equal(t, 'e', res.Letter)
	assert.True(t, res.Hit)

	_, err = e.GuessLetter("user-1", "è")
	assert.ErrorIs(t, err, game.ErrAlreadyGuessed)
}

func TestMask_SeparatorsAlwaysRevealed(t *testing.T) {
	e := New(Config{})
	defer e.Close()

	s := startWith(e, "user-1", "plaire-poilue")
	assert.Equal(t, "••••••-••••••", s.Mask())

	res, err := e.GuessLetter("user-1", "p")
	require.NoError(t, err)
	assert.Equal(t, "p•••••-p•••••", res.Mask)
}

func TestGuessLetter_SolveWordWithSeparator(t *testing.T) {
	e := New(Config{})
	defer e.Close()

	startWith(e, "user-1", "plaire-poilue")

	var last *Result
	for _, raw := range []string{"p", "l", "a", "i", "r", "e", "o", "u"} {
		res, err := e.GuessLetter("user-1", raw)
		require.NoError(t, err)
		last = res
	}
	require.NotNil(t, last)
	assert.Equal(t, Solved, last.Outcome, "separator must not block solving")
	assert.Equal(t, "plaire-poilue", last.Mask)
}
