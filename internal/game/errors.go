// Package game defines the error taxonomy shared by all mini-game engines.
// Every error here is a local, recoverable condition surfaced to the caller;
// none is fatal to the process.
package game

import "errors"

var (
	// ErrNoSession means there is no live session for the key.
	ErrNoSession = errors.New("no active session")

	// ErrNotOwner means the caller does not own this single-player session.
	ErrNotOwner = errors.New("caller does not own this session")

	// ErrNotParticipant means the caller is not one of the two players.
	ErrNotParticipant = errors.New("caller is not a participant")

	// ErrNotYourTurn means the move was made out of turn.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrInvalidInput means a malformed letter, number, or choice.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyGuessed means a duplicate letter guess.
	ErrAlreadyGuessed = errors.New("letter already guessed")

	// ErrCellTaken means the board position is already occupied.
	ErrCellTaken = errors.New("cell already taken")

	// ErrSamePlayer means a two-player game was started against oneself.
	ErrSamePlayer = errors.New("players must differ")

	// ErrBotPlayer means an automated account was named as a participant.
	ErrBotPlayer = errors.New("bot accounts cannot play")
)
