// Package matching selects games by their properties and by the positions
// reached anywhere in their move trees.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/sgf-extract-go/internal/goban"
)

// GameMatcher is implemented by everything that can accept or reject a game.
type GameMatcher interface {
	// Match returns true if the game matches the matcher's criteria.
	Match(game *goban.Game) bool

	// Name returns a descriptive name for this matcher.
	Name() string
}

// MatchMode specifies how multiple matchers are combined.
type MatchMode int

const (
	// MatchAll requires all matchers to match (AND logic).
	MatchAll MatchMode = iota

	// MatchAny requires at least one matcher to match (OR logic).
	MatchAny
)

// CompositeMatcher combines several matchers with AND or OR logic.
type CompositeMatcher struct {
	matchers []GameMatcher
	mode     MatchMode
}

// NewCompositeMatcher creates a CompositeMatcher.
func NewCompositeMatcher(mode MatchMode, matchers ...GameMatcher) *CompositeMatcher {
	return &CompositeMatcher{matchers: matchers, mode: mode}
}

// Match implements GameMatcher. An empty AND composite accepts every game and
// an empty OR composite rejects every game.
func (c *CompositeMatcher) Match(game *goban.Game) bool {
	if len(c.matchers) == 0 {
		return c.mode == MatchAll
	}
	for _, m := range c.matchers {
		if m.Match(game) != (c.mode == MatchAll) {
			return c.mode == MatchAny
		}
	}
	return c.mode == MatchAll
}

// Name implements GameMatcher.
func (c *CompositeMatcher) Name() string {
	if len(c.matchers) == 0 {
		return "CompositeMatcher(empty)"
	}
	names := make([]string, len(c.matchers))
	for i, m := range c.matchers {
		names[i] = m.Name()
	}
	mode := "AND"
	if c.mode == MatchAny {
		mode = "OR"
	}
	return fmt.Sprintf("CompositeMatcher(%s: %s)", mode, strings.Join(names, ", "))
}

// Add appends a matcher.
func (c *CompositeMatcher) Add(m GameMatcher) {
	c.matchers = append(c.matchers, m)
}

// Len returns the number of matchers.
func (c *CompositeMatcher) Len() int {
	return len(c.matchers)
}
