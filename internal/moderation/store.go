// Package moderation manages the banned-word list and matches messages
// against it.
package moderation

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"discord-arcade-bot/internal/pkg/textutil"
)

// banwordFile is the on-disk shape: { "words": [...] }.
type banwordFile struct {
	Words []string `json:"words"`
}

// Store persists the banned-word list to a flat JSON file. Every mutation
// rewrites the whole file; words are trimmed and deduplicated on save.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a banned-word store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// load reads the word list. A missing or unreadable file degrades to an
// empty list.
func (s *Store) load() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.path).Msg("failed to read banword file, using empty list")
		}
		return nil
	}

	var f banwordFile
	if err := json.Unmarshal(data, &f); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("corrupt banword file, using empty list")
		return nil
	}
	return f.Words
}

// save writes the cleaned list back to disk and returns it.
func (s *Store) save(words []string) ([]string, error) {
	clean := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		clean = append(clean, w)
	}

	data, err := json.MarshalIndent(banwordFile{Words: clean}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal banword file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write banword file: %w", err)
	}
	return clean, nil
}

// List returns the current banned words.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add appends term to the list and returns the new list size.
func (s *Store) Add(term string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	words, err := s.save(append(s.load(), term))
	if err != nil {
		return 0, err
	}
	return len(words), nil
}

// Remove deletes every word matching term under accent folding. Returns
// the new list size and whether anything was removed.
func (s *Store) Remove(term string) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	words := s.load()
	target := textutil.Fold(term)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if textutil.Fold(w) != target {
			kept = append(kept, w)
		}
	}
	removed := len(kept) != len(words)

	saved, err := s.save(kept)
	if err != nil {
		return 0, false, err
	}
	return len(saved), removed, nil
}

// Clear empties the list.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.save(nil)
	return err
}
