// Package goban provides the board model, capture rule and move tree for Go games.
package goban

import (
	"fmt"

	"github.com/lgbarn/sgf-extract-go/internal/errors"
)

// Colour represents the colour of a stone or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Symbol returns the character used for the colour in text diagrams.
func (c Colour) Symbol() byte {
	if c == White {
		return 'O'
	}
	return 'X'
}

// Letter returns the SGF property letter for the colour.
func (c Colour) Letter() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

// Intersection addresses a single point on the board by zero-based row and
// column. The neighbour accessors do no bounds checking.
type Intersection struct {
	Row int
	Col int
}

// Up returns the intersection one row higher.
func (i Intersection) Up() Intersection { return Intersection{Row: i.Row + 1, Col: i.Col} }

// Down returns the intersection one row lower.
func (i Intersection) Down() Intersection { return Intersection{Row: i.Row - 1, Col: i.Col} }

// Left returns the intersection one column to the left.
func (i Intersection) Left() Intersection { return Intersection{Row: i.Row, Col: i.Col - 1} }

// Right returns the intersection one column to the right.
func (i Intersection) Right() Intersection { return Intersection{Row: i.Row, Col: i.Col + 1} }

// Neighbours returns the four orthogonal neighbours in up, down, left, right order.
func (i Intersection) Neighbours() [4]Intersection {
	return [4]Intersection{i.Up(), i.Down(), i.Left(), i.Right()}
}

// Less orders intersections by row, then column.
func (i Intersection) Less(o Intersection) bool {
	if i.Row != o.Row {
		return i.Row < o.Row
	}
	return i.Col < o.Col
}

// Compare returns -1, 0 or 1 following the (row, col) ordering.
func (i Intersection) Compare(o Intersection) int {
	switch {
	case i.Less(o):
		return -1
	case o.Less(i):
		return 1
	}
	return 0
}

// String returns "(row, col)".
func (i Intersection) String() string {
	return fmt.Sprintf("(%d, %d)", i.Row, i.Col)
}

// Label returns the diagram label of the intersection: a column letter with
// 'i' skipped, followed by the 1-based row.
func (i Intersection) Label() string {
	letter := byte('a' + i.Col)
	if i.Col >= 8 {
		letter = byte('b' + i.Col)
	}
	return fmt.Sprintf("%c%d", letter, i.Row+1)
}

// SGF returns the two-letter SGF point for the intersection, column first.
func (i Intersection) SGF() string {
	return string([]byte{sgfLetter(i.Col), sgfLetter(i.Row)})
}

// InBounds reports whether the intersection lies on a board of the given size.
func (i Intersection) InBounds(size int) bool {
	return i.Row >= 0 && i.Row < size && i.Col >= 0 && i.Col < size
}

// FromInputCoordinate converts 1-based column and row values into an
// intersection. Values below 1 are rejected.
func FromInputCoordinate(col, row int) (Intersection, error) {
	if col <= 0 || row <= 0 {
		return Intersection{}, fmt.Errorf("coordinate (%d, %d): %w", col, row, errors.ErrInvalidCoordinate)
	}
	return Intersection{Row: row - 1, Col: col - 1}, nil
}

// FromSGF parses a two-letter SGF point such as "pd". The first letter is the
// column and the second the row; 'a'..'z' map to 1..26 and 'A'..'Z' to 27..52.
func FromSGF(point string) (Intersection, error) {
	if len(point) != 2 {
		return Intersection{}, fmt.Errorf("point %q: %w", point, errors.ErrInvalidCoordinate)
	}
	col := sgfValue(point[0])
	row := sgfValue(point[1])
	if col == 0 || row == 0 {
		return Intersection{}, fmt.Errorf("point %q: %w", point, errors.ErrInvalidCoordinate)
	}
	return FromInputCoordinate(col, row)
}

// sgfValue returns the 1-based value of an SGF coordinate letter, 0 if invalid.
func sgfValue(ch byte) int {
	switch {
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 1
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 27
	}
	return 0
}

func sgfLetter(v int) byte {
	if v < 26 {
		return byte('a' + v)
	}
	return byte('A' + v - 26)
}

// PointState is the content of one grid cell. The zero value is an empty point.
// A filled point with MoveNumber 0 holds a handicap or setup stone.
type PointState struct {
	Filled     bool
	MoveNumber int
	Colour     Colour
}

// Empty is the state of a point with no stone.
var Empty = PointState{}

// Stone returns the state of a point holding a stone.
func Stone(colour Colour, moveNumber int) PointState {
	return PointState{Filled: true, MoveNumber: moveNumber, Colour: colour}
}

// IsEmpty reports whether the point has no stone.
func (p PointState) IsEmpty() bool { return !p.Filled }

// IsHandicap reports whether the point holds a stone placed before move numbering.
func (p PointState) IsHandicap() bool { return p.Filled && p.MoveNumber == 0 }

// Move is a numbered stone placement.
type Move struct {
	Number       int
	Intersection Intersection
	Colour       Colour
}

// String returns e.g. "12 W pd".
func (m Move) String() string {
	return fmt.Sprintf("%d %c %s", m.Number, m.Colour.Letter(), m.Intersection.SGF())
}
