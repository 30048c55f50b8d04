// Package model defines the data models for the Discord arcade bot.
package model

// UserStats holds a user's cumulative points and per-game counters.
// Points never go below zero; any decrement clamps at 0.
type UserStats struct {
	Points        int `json:"points"`
	QuizCorrect   int `json:"quizCorrect"`
	MCQuizCorrect int `json:"mcquizCorrect"`
	DuelWins      int `json:"duelWins"`
	DuelLosses    int `json:"duelLosses"`
	BombWins      int `json:"bombWins"`
	BombLosses    int `json:"bombLosses"`
	TTTWins       int `json:"tttWins"`
	TTTLosses     int `json:"tttLosses"`
}

// StatField names a mutable UserStats field for delta application.
type StatField string

// Stat fields addressable through the score repository.
const (
	FieldPoints        StatField = "points"
	FieldQuizCorrect   StatField = "quizCorrect"
	FieldMCQuizCorrect StatField = "mcquizCorrect"
	FieldDuelWins      StatField = "duelWins"
	FieldDuelLosses    StatField = "duelLosses"
	FieldBombWins      StatField = "bombWins"
	FieldBombLosses    StatField = "bombLosses"
	FieldTTTWins       StatField = "tttWins"
	FieldTTTLosses     StatField = "tttLosses"
)

// Apply adds delta to the named field. The points field clamps at zero.
// Unknown fields are ignored.
func (s *UserStats) Apply(field StatField, delta int) {
	switch field {
	case FieldPoints:
		s.Points += delta
		if s.Points < 0 {
			s.Points = 0
		}
	case FieldQuizCorrect:
		s.QuizCorrect += delta
	case FieldMCQuizCorrect:
		s.MCQuizCorrect += delta
	case FieldDuelWins:
		s.DuelWins += delta
	case FieldDuelLosses:
		s.DuelLosses += delta
	case FieldBombWins:
		s.BombWins += delta
	case FieldBombLosses:
		s.BombLosses += delta
	case FieldTTTWins:
		s.TTTWins += delta
	case FieldTTTLosses:
		s.TTTLosses += delta
	}
}

// RankedUser is one leaderboard row, ordered by points.
type RankedUser struct {
	UserID string
	Points int
}
