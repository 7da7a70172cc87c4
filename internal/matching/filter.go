package matching

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/lgbarn/sgf-extract-go/internal/goban"
)

// diagramKeyword starts a criteria line holding a diagram rather than a
// property comparison.
const diagramKeyword = "Diagram"

// GameFilter combines property, position and length criteria. A game must
// satisfy every kind of criterion that has been set.
type GameFilter struct {
	Properties *PropertyMatcher
	Positions  *PositionMatcher

	minMoves int
	maxMoves int // 0 means no upper bound
}

// NewGameFilter creates a filter that accepts every game.
func NewGameFilter() *GameFilter {
	return &GameFilter{
		Properties: NewPropertyMatcher(),
		Positions:  NewPositionMatcher(),
	}
}

// LoadCriteriaFile reads criteria from a file, one per line:
//
//	# comment
//	PB "Shusaku"
//	DT < "1850"
//	Diagram "X../.O./..."
func (gf *GameFilter) LoadCriteriaFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close()
	return gf.LoadCriteria(file, filename)
}

// LoadCriteria reads criteria lines from r. name is used in error messages.
func (gf *GameFilter) LoadCriteria(r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var err error
		if rest, ok := strings.CutPrefix(line, diagramKeyword+" "); ok {
			err = gf.Positions.AddDiagram(strings.Trim(strings.TrimSpace(rest), `"`), "")
		} else {
			err = gf.Properties.ParseCriterion(line)
		}
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
	}
	return scanner.Err()
}

// AddPlayerFilter selects games where either player matches name.
func (gf *GameFilter) AddPlayerFilter(name string) {
	gf.Properties.AddPlayerCriterion(name)
}

// AddBlackFilter selects games whose black player's name contains name.
func (gf *GameFilter) AddBlackFilter(name string) {
	_ = gf.Properties.AddCriterion("PB", name, OpContains)
}

// AddWhiteFilter selects games whose white player's name contains name.
func (gf *GameFilter) AddWhiteFilter(name string) {
	_ = gf.Properties.AddCriterion("PW", name, OpContains)
}

// AddResultFilter selects games by result prefix, so "B+" matches every
// black win.
func (gf *GameFilter) AddResultFilter(result string) {
	_ = gf.Properties.AddCriterion("RE", "^"+regexp.QuoteMeta(result), OpRegex)
}

// AddDiagramFilter selects games that reach the diagram in any line.
func (gf *GameFilter) AddDiagramFilter(diagram string) error {
	return gf.Positions.AddDiagram(diagram, "")
}

// SetMoveBounds selects games whose main line has between min and max
// moves. A max of 0 leaves the length unbounded above.
func (gf *GameFilter) SetMoveBounds(min, max int) {
	gf.minMoves, gf.maxMoves = min, max
}

// SetUseSoundex makes player filters added afterwards compare by sound.
func (gf *GameFilter) SetUseSoundex(use bool) {
	gf.Properties.SetUseSoundex(use)
}

// HasCriteria reports whether the filter rejects anything at all.
func (gf *GameFilter) HasCriteria() bool {
	return gf.Properties.CriteriaCount() > 0 || gf.Positions.DiagramCount() > 0 ||
		gf.minMoves > 0 || gf.maxMoves > 0
}

// MatchGame reports whether the game passes every criterion.
func (gf *GameFilter) MatchGame(g *goban.Game) bool {
	moves := g.FinalMoveNumber()
	if moves < gf.minMoves || (gf.maxMoves > 0 && moves > gf.maxMoves) {
		return false
	}
	return gf.Properties.Match(g) && gf.Positions.Match(g)
}

// Match implements GameMatcher.
func (gf *GameFilter) Match(g *goban.Game) bool { return gf.MatchGame(g) }

// Name implements GameMatcher.
func (gf *GameFilter) Name() string { return "GameFilter" }
