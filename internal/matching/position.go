package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/sgf-extract-go/internal/errors"
	"github.com/lgbarn/sgf-extract-go/internal/goban"
	"github.com/lgbarn/sgf-extract-go/internal/hashing"
)

// Diagram is a whole-board arrangement to search for. Its text lists rows
// in the order the ASCII output prints them, separated by '/':
//   - X is a black stone
//   - O is a white stone
//   - . is an empty point
//   - ? is any point
//
// "X../.O./..." is a 3x3 board with black at aa and white at bb.
type Diagram struct {
	Text  string
	Label string
	Exact bool   // true when the diagram has no wildcards
	Hash  uint64 // Zobrist hash of an exact diagram

	size  int
	cells []byte // row-major
}

// ParseDiagram parses diagram text.
func ParseDiagram(text, label string) (*Diagram, error) {
	rows := strings.Split(strings.TrimSpace(text), "/")
	size := len(rows)
	if size > goban.MaxBoardSize {
		return nil, fmt.Errorf("diagram with %d rows: %w", size, errors.ErrInvalidBoardSize)
	}

	d := &Diagram{Text: text, Label: label, Exact: true, size: size, cells: make([]byte, size*size)}
	for i, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("diagram row %d has %d points on a %d board: %w",
				i+1, len(row), size, errors.ErrInvalidCriterion)
		}
		for col := 0; col < size; col++ {
			ch := row[col]
			switch ch {
			case 'X', 'O', '.':
			case '?':
				d.Exact = false
			default:
				return nil, fmt.Errorf("diagram point %q: %w", ch, errors.ErrInvalidCriterion)
			}
			d.cells[i*size+col] = ch
		}
	}

	if d.Exact {
		b, err := d.board()
		if err != nil {
			return nil, err
		}
		d.Hash = hashing.Zobrist(b)
	}
	return d, nil
}

// board builds the arrangement as a board. Diagrams containing a group
// without liberties cannot arise in play and are rejected.
func (d *Diagram) board() (*goban.Board, error) {
	b, err := goban.NewBoard(d.size)
	if err != nil {
		return nil, err
	}
	for i, ch := range d.cells {
		if ch != 'X' && ch != 'O' {
			continue
		}
		colour := goban.Black
		if ch == 'O' {
			colour = goban.White
		}
		at := goban.Intersection{Row: i / d.size, Col: i % d.size}
		if _, err := b.Place(at, colour, 0); err != nil {
			return nil, err
		}
	}
	if len(b.Stones()) != strings.Count(string(d.cells), "X")+strings.Count(string(d.cells), "O") {
		return nil, fmt.Errorf("diagram %q has a group without liberties: %w", d.Text, errors.ErrInvalidCriterion)
	}
	return b, nil
}

// MatchBoard reports whether a board shows the diagram.
func (d *Diagram) MatchBoard(b *goban.Board) bool {
	if b.Size() != d.size {
		return false
	}
	if d.Exact {
		return hashing.Zobrist(b) == d.Hash
	}
	for i, ch := range d.cells {
		if ch == '?' {
			continue
		}
		p, _ := b.At(goban.Intersection{Row: i / d.size, Col: i % d.size})
		switch {
		case ch == '.' && p.Filled,
			ch == 'X' && (!p.Filled || p.Colour != goban.Black),
			ch == 'O' && (!p.Filled || p.Colour != goban.White):
			return false
		}
	}
	return true
}

// PositionMatch records where a diagram was found.
type PositionMatch struct {
	Diagram    *Diagram
	PositionID int
}

// PositionMatcher finds diagrams among all positions of a game, variations
// included.
type PositionMatcher struct {
	diagrams []*Diagram
	exact    map[uint64]*Diagram
}

// NewPositionMatcher creates an empty PositionMatcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{exact: make(map[uint64]*Diagram)}
}

// AddDiagram parses and adds a diagram.
func (pm *PositionMatcher) AddDiagram(text, label string) error {
	d, err := ParseDiagram(text, label)
	if err != nil {
		return err
	}
	pm.diagrams = append(pm.diagrams, d)
	if d.Exact {
		pm.exact[d.Hash] = d
	}
	return nil
}

// DiagramCount returns the number of diagrams.
func (pm *PositionMatcher) DiagramCount() int { return len(pm.diagrams) }

// MatchGame returns the first position, in depth-first mainline-first
// order, that shows any of the diagrams, or nil.
func (pm *PositionMatcher) MatchGame(g *goban.Game) *PositionMatch {
	var found *PositionMatch
	g.Walk(func(b *goban.Board) bool {
		if d := pm.matchBoard(b); d != nil {
			found = &PositionMatch{Diagram: d, PositionID: b.ID()}
			return false
		}
		return true
	})
	return found
}

func (pm *PositionMatcher) matchBoard(b *goban.Board) *Diagram {
	if len(pm.exact) > 0 {
		if d, ok := pm.exact[hashing.Zobrist(b)]; ok && d.size == b.Size() {
			return d
		}
	}
	for _, d := range pm.diagrams {
		if !d.Exact && d.MatchBoard(b) {
			return d
		}
	}
	return nil
}

// Match implements GameMatcher.
func (pm *PositionMatcher) Match(g *goban.Game) bool {
	return len(pm.diagrams) == 0 || pm.MatchGame(g) != nil
}

// Name implements GameMatcher.
func (pm *PositionMatcher) Name() string { return "PositionMatcher" }
