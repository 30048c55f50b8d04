package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain lowercase", "hello", "hello"},
		{"uppercase", "HELLO", "hello"},
		{"french accents", "Épée à côté", "epee a cote"},
		{"cedilla", "Français", "francais"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Fold(tt.in))
		})
	}
}

func TestExtractLetter(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected rune
	}{
		{"single letter", "a", 'a'},
		{"uppercase letter", "Z", 'z'},
		{"accented letter", "é", 'e'},
		{"letter with noise", "  !b? ", 'b'},
		{"digits only", "42", 0},
		{"empty", "", 0},
		{"punctuation", "?!", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractLetter(tt.in))
		})
	}
}
