// Package tictactoe implements the two-player tic-tac-toe engine.
package tictactoe

import (
	"github.com/google/uuid"

	"discord-arcade-bot/internal/game"
	"discord-arcade-bot/internal/session"
)

// Cell symbols. An empty string marks a free cell.
const (
	SymbolX = "X"
	SymbolO = "O"
)

// Outcome of a move.
type Outcome int

// Move outcomes.
const (
	InProgress Outcome = iota
	Won
	Draw
)

// Participant identifies one player. Bot is true for automated accounts,
// which are rejected as players.
type Participant struct {
	ID  string
	Bot bool
}

// Session is a live game. Exactly one of PlayerX/PlayerO equals Turn until
// the game reaches a terminal state.
type Session struct {
	PlayerX string
	PlayerO string
	Turn    string
	Board   [9]string
}

// symbolOf returns the symbol a player marks with.
func (s *Session) symbolOf(userID string) string {
	if userID == s.PlayerX {
		return SymbolX
	}
	return SymbolO
}

// other returns the opponent of userID.
func (s *Session) other(userID string) string {
	if userID == s.PlayerX {
		return s.PlayerO
	}
	return s.PlayerX
}

// MoveResult describes the state after an accepted move. Winner and Loser
// are set only when Outcome is Won. On Won or Draw the session has been
// deleted and no further moves are accepted.
type MoveResult struct {
	Session *Session
	Outcome Outcome
	Winner  string
	Loser   string
}

// The 8 winning lines: 3 rows, 3 columns, 2 diagonals.
var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Engine owns tic-tac-toe sessions keyed by generated game ID.
type Engine struct {
	sessions *session.Store[*Session]
}

// New creates a tic-tac-toe engine.
func New(opts ...session.Option) *Engine {
	return &Engine{sessions: session.NewStore[*Session](opts...)}
}

// NewGame opens a game between two distinct human players. X always moves
// first. Returns the generated game ID.
func (e *Engine) NewGame(playerX, playerO Participant) (string, *Session, error) {
	if playerX.Bot || playerO.Bot {
		return "", nil, game.ErrBotPlayer
	}
	if playerX.ID == playerO.ID {
		return "", nil, game.ErrSamePlayer
	}

	gameID := uuid.NewString()
	s := &Session{
		PlayerX: playerX.ID,
		PlayerO: playerO.ID,
		Turn:    playerX.ID,
	}
	e.sessions.Put(gameID, s)
	return gameID, s, nil
}

// Get returns the live session for gameID.
func (e *Engine) Get(gameID string) (*Session, bool) {
	return e.sessions.Get(gameID)
}

// Move applies actingUser's mark at pos (0..8). Rejections leave the session
// untouched: unknown game, non-participant, out of turn, or occupied cell.
// A winning line ends the game; a full board with no line is a draw; both
// delete the session.
func (e *Engine) Move(gameID, actingUser string, pos int) (*MoveResult, error) {
	s, ok := e.sessions.Get(gameID)
	if !ok {
		return nil, game.ErrNoSession
	}
	if actingUser != s.PlayerX && actingUser != s.PlayerO {
		return nil, game.ErrNotParticipant
	}
	if actingUser != s.Turn {
		return nil, game.ErrNotYourTurn
	}
	if pos < 0 || pos > 8 {
		return nil, game.ErrInvalidInput
	}
	if s.Board[pos] != "" {
		return nil, game.ErrCellTaken
	}

	s.Board[pos] = s.symbolOf(actingUser)

	if winner := checkWin(s.Board); winner != "" {
		e.sessions.Delete(gameID)
		winnerID := s.PlayerX
		if winner == SymbolO {
			winnerID = s.PlayerO
		}
		return &MoveResult{
			Session: s,
			Outcome: Won,
			Winner:  winnerID,
			Loser:   s.other(winnerID),
		}, nil
	}

	if boardFull(s.Board) {
		e.sessions.Delete(gameID)
		return &MoveResult{Session: s, Outcome: Draw}, nil
	}

	s.Turn = s.other(actingUser)
	return &MoveResult{Session: s, Outcome: InProgress}, nil
}

// Close releases the session store.
func (e *Engine) Close() {
	e.sessions.Close()
}

// checkWin returns the winning symbol, or "" if no line is complete.
func checkWin(board [9]string) string {
	for _, line := range winLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != "" && a == b && b == c {
			return a
		}
	}
	return ""
}

func boardFull(board [9]string) bool {
	for _, cell := range board {
		if cell == "" {
			return false
		}
	}
	return true
}
