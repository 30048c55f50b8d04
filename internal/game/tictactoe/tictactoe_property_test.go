// Property-based tests for the tic-tac-toe state machine.
package tictactoe

import (
	"errors"
	"testing"

	"pgregory.net/rapid"

	"discord-arcade-bot/internal/game"
)

// TestMoveSequenceProperty verifies that for any sequence of legal moves,
// no occupied cell is ever overwritten and the turn strictly alternates
// between the two registered players until a terminal state.
func TestMoveSequenceProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := New()
		defer e.Close()

		gameID, s, err := e.NewGame(Participant{ID: "px"}, Participant{ID: "po"})
		if err != nil {
			t.Fatalf("NewGame: %v", err)
		}

		numMoves := rapid.IntRange(1, 9).Draw(t, "numMoves")
		perm := rapid.Permutation([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}).Draw(t, "positions")

		expectedTurn := "px"
		for i := 0; i < numMoves; i++ {
			pos := perm[i]

			prevCell := s.Board[pos]
			if prevCell != "" {
				t.Fatalf("position %d picked twice by generator", pos)
			}

			// Out-of-turn move by the other player must be rejected
			// without mutating the board.
			other := "po"
			if expectedTurn == "po" {
				other = "px"
			}
			if _, err := e.Move(gameID, other, pos); !errors.Is(err, game.ErrNotYourTurn) {
				t.Fatalf("out-of-turn move: expected ErrNotYourTurn, got %v", err)
			}
			if s.Board[pos] != "" {
				t.Fatal("rejected move mutated the board")
			}

			res, err := e.Move(gameID, expectedTurn, pos)
			if err != nil {
				t.Fatalf("legal move rejected: %v", err)
			}
			if s.Board[pos] == "" {
				t.Fatal("accepted move did not mark the cell")
			}

			if res.Outcome != InProgress {
				// Terminal: session deleted, no further transitions.
				if _, err := e.Move(gameID, expectedTurn, pos); !errors.Is(err, game.ErrNoSession) {
					t.Fatalf("move after terminal state: expected ErrNoSession, got %v", err)
				}
				return
			}

			if expectedTurn == "px" {
				expectedTurn = "po"
			} else {
				expectedTurn = "px"
			}
			if s.Turn != expectedTurn {
				t.Fatalf("turn did not alternate: expected %s, got %s", expectedTurn, s.Turn)
			}
		}
	})
}

// TestWinnerHasCompleteLineProperty verifies that whenever a game reports
// Won, the winner's symbol fills at least one of the 8 lines.
func TestWinnerHasCompleteLineProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := New()
		defer e.Close()

		gameID, s, err := e.NewGame(Participant{ID: "px"}, Participant{ID: "po"})
		if err != nil {
			t.Fatalf("NewGame: %v", err)
		}

		perm := rapid.Permutation([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}).Draw(t, "positions")

		turn := "px"
		for _, pos := range perm {
			res, err := e.Move(gameID, turn, pos)
			if err != nil {
				t.Fatalf("legal move rejected: %v", err)
			}
			switch res.Outcome {
			case Won:
				symbol := SymbolX
				if res.Winner == "po" {
					symbol = SymbolO
				}
				found := false
				for _, line := range winLines {
					if s.Board[line[0]] == symbol && s.Board[line[1]] == symbol && s.Board[line[2]] == symbol {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("winner %s has no complete line: %v", res.Winner, s.Board)
				}
				return
			case Draw:
				for _, cell := range s.Board {
					if cell == "" {
						t.Fatalf("draw with empty cell: %v", s.Board)
					}
				}
				return
			}
			if turn == "px" {
				turn = "po"
			} else {
				turn = "px"
			}
		}
		t.Fatal("full permutation played without terminal outcome")
	})
}
