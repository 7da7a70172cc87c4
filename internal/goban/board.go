package goban

import (
	"fmt"

	"github.com/lgbarn/sgf-extract-go/internal/errors"
)

// MaxBoardSize is the largest board an SGF point can address.
const MaxBoardSize = 52

// Board is one position in a game: the stones on an N×N grid plus its links
// in the move tree. Boards handed out by Game are copies and never change.
type Board struct {
	size   int
	points []PointState // row-major, size*size cells

	id   int
	prev int
	next []int // next[0] is the mainline continuation

	lastMove Move
	hasMove  bool
}

// NewBoard creates an empty board of the given size.
func NewBoard(size int) (*Board, error) {
	if size < 1 || size > MaxBoardSize {
		return nil, fmt.Errorf("board size %d: %w", size, errors.ErrInvalidBoardSize)
	}
	return &Board{
		size:   size,
		points: make([]PointState, size*size),
	}, nil
}

// Size returns the board edge length.
func (b *Board) Size() int { return b.size }

// ID returns the position id of the board within its game.
func (b *Board) ID() int { return b.id }

// Prev returns the id of the position this one was played from (0 for the root).
func (b *Board) Prev() int { return b.prev }

// Next returns the id of the continuation at the given variation index.
func (b *Board) Next(variation int) (int, bool) {
	if variation < 0 || variation >= len(b.next) {
		return 0, false
	}
	return b.next[variation], true
}

// NextBoards returns the ids of all continuations, mainline first.
func (b *Board) NextBoards() []int {
	out := make([]int, len(b.next))
	copy(out, b.next)
	return out
}

// VariationCount returns the number of continuations recorded from this position.
func (b *Board) VariationCount() int { return len(b.next) }

// LastMove returns the move that produced this position. The root has none.
func (b *Board) LastMove() (Move, bool) { return b.lastMove, b.hasMove }

// MoveNumber returns the number of the move that produced this position, 0 at the root.
func (b *Board) MoveNumber() int {
	if !b.hasMove {
		return 0
	}
	return b.lastMove.Number
}

// Point returns the state of the cell at (row, col).
func (b *Board) Point(row, col int) (PointState, error) {
	return b.At(Intersection{Row: row, Col: col})
}

// At returns the state of the cell at the intersection.
func (b *Board) At(at Intersection) (PointState, error) {
	if !at.InBounds(b.size) {
		return Empty, fmt.Errorf("point %v on %dx%d board: %w", at, b.size, b.size, errors.ErrOutOfRange)
	}
	return b.points[b.index(at)], nil
}

// Count returns the number of stones of the given colour on the board.
func (b *Board) Count(colour Colour) int {
	n := 0
	for _, p := range b.points {
		if p.Filled && p.Colour == colour {
			n++
		}
	}
	return n
}

// Stones returns every filled intersection in (row, col) order.
func (b *Board) Stones() []Intersection {
	var out []Intersection
	for idx, p := range b.points {
		if p.Filled {
			out = append(out, b.intersection(idx))
		}
	}
	return out
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	nb.points = make([]PointState, len(b.points))
	copy(nb.points, b.points)
	nb.next = b.NextBoards()
	return &nb
}

// Equal reports whether two boards hold the same stones, ignoring tree links.
func (b *Board) Equal(o *Board) bool {
	if b.size != o.size {
		return false
	}
	for i := range b.points {
		if b.points[i] != o.points[i] {
			return false
		}
	}
	return true
}

// Place puts a stone of the given colour on an empty point and removes any
// opposing groups left without liberties. A moveNumber of 0 marks a handicap
// or setup stone. It returns the captured intersections in (row, col) order.
// On error the board is unchanged.
func (b *Board) Place(at Intersection, colour Colour, moveNumber int) ([]Intersection, error) {
	current, err := b.At(at)
	if err != nil {
		return nil, err
	}
	if current.Filled {
		return nil, fmt.Errorf("point %v holds a %s stone: %w", at, current.Colour, errors.ErrPointOccupied)
	}
	b.points[b.index(at)] = Stone(colour, moveNumber)
	return b.removeCaptures(colour), nil
}

func (b *Board) index(at Intersection) int {
	return at.Row*b.size + at.Col
}

func (b *Board) intersection(idx int) Intersection {
	return Intersection{Row: idx / b.size, Col: idx % b.size}
}
