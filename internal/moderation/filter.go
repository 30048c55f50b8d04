package moderation

import (
	"strings"

	"discord-arcade-bot/internal/pkg/textutil"
)

// Filter matches message content against the banned-word list.
type Filter struct {
	store *Store
}

// NewFilter creates a filter over the given store.
func NewFilter(store *Store) *Filter {
	return &Filter{store: store}
}

// Match reports whether content contains any banned word. Both sides are
// lowercased and accent-folded, so "crème" matches a banned "creme" and
// a banned word hides inside longer text.
func (f *Filter) Match(content string) (string, bool) {
	words := f.store.List()
	if len(words) == 0 {
		return "", false
	}

	folded := textutil.Fold(content)
	for _, w := range words {
		if fw := textutil.Fold(w); fw != "" && strings.Contains(folded, fw) {
			return w, true
		}
	}
	return "", false
}
