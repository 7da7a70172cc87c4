package goban

import (
	"fmt"
	"sort"

	"github.com/lgbarn/sgf-extract-go/internal/errors"
)

// DefaultBoardSize is the board size used when a record declares none.
const DefaultBoardSize = 19

// RootPosition is the id of the initial position holding any handicap stones.
const RootPosition = 0

// Game is a tree of board positions keyed by position id. Position 0 is the
// root; every other position was produced by exactly one move from its prev.
//
// A Game is built by one goroutine and is safe for concurrent reads once
// building has finished.
type Game struct {
	boardSize int

	players [2]string
	ranks   [2]string
	info    map[string]string

	positions      map[int]*Board
	nextPositionID int
}

// NewGame creates a game whose root is an empty board of the given size.
func NewGame(boardSize int) (*Game, error) {
	root, err := NewBoard(boardSize)
	if err != nil {
		return nil, err
	}
	return &Game{
		boardSize:      boardSize,
		info:           make(map[string]string),
		positions:      map[int]*Board{RootPosition: root},
		nextPositionID: RootPosition + 1,
	}, nil
}

// Resize replaces the root with an empty board of a new size. It is only
// allowed before any stone has been placed.
func (g *Game) Resize(boardSize int) error {
	if len(g.positions) > 1 || len(g.positions[RootPosition].Stones()) > 0 {
		return fmt.Errorf("resize to %d: %w", boardSize, errors.ErrSetupAfterMove)
	}
	root, err := NewBoard(boardSize)
	if err != nil {
		return err
	}
	g.boardSize = boardSize
	g.positions[RootPosition] = root
	return nil
}

// BoardSize returns the edge length shared by every position.
func (g *Game) BoardSize() int { return g.boardSize }

// SetPlayer records the name of the player of the given colour.
func (g *Game) SetPlayer(colour Colour, name string) { g.players[colour] = name }

// Player returns the name of the player of the given colour.
func (g *Game) Player(colour Colour) string { return g.players[colour] }

// SetRank records the rank of the player of the given colour.
func (g *Game) SetRank(colour Colour, rank string) { g.ranks[colour] = rank }

// Rank returns the rank of the player of the given colour.
func (g *Game) Rank(colour Colour) string { return g.ranks[colour] }

// SetInfo records a game information property such as "RE" or "DT".
func (g *Game) SetInfo(key, value string) { g.info[key] = value }

// Info returns a game information property.
func (g *Game) Info(key string) string { return g.info[key] }

// InfoKeys returns the recorded game information keys in sorted order.
func (g *Game) InfoKeys() []string {
	keys := make([]string, 0, len(g.info))
	for k := range g.info {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PlaceHandicapStone places a black stone on the root position. The root is
// frozen once a move has been played from it.
func (g *Game) PlaceHandicapStone(at Intersection) error {
	if len(g.positions) > 1 {
		return fmt.Errorf("handicap stone at %s: %w", at, errors.ErrSetupAfterMove)
	}
	root := g.positions[RootPosition]
	if _, err := root.Place(at, Black, 0); err != nil {
		return err
	}
	return nil
}

// HandicapStones returns the stones on the root position in (row, col) order.
func (g *Game) HandicapStones() []Intersection {
	return g.positions[RootPosition].Stones()
}

// PlaceStone plays a stone from the position with id from and returns the id
// of the new position. The new position is appended to from's continuations,
// so repeated calls on the same source create variations in call order.
// A failed placement leaves the game unchanged and consumes no id.
func (g *Game) PlaceStone(at Intersection, colour Colour, from int) (int, error) {
	source, ok := g.positions[from]
	if !ok {
		return 0, fmt.Errorf("position %d: %w", from, errors.ErrUnknownPosition)
	}

	nb := source.Copy()
	nb.next = nil
	number := source.MoveNumber() + 1
	if _, err := nb.Place(at, colour, number); err != nil {
		return 0, err
	}

	id := g.nextPositionID
	g.nextPositionID++
	nb.id = id
	nb.prev = from
	nb.lastMove = Move{Number: number, Intersection: at, Colour: colour}
	nb.hasMove = true

	source.next = append(source.next, id)
	g.positions[id] = nb
	return id, nil
}

// Board returns a copy of the position with the given id.
func (g *Game) Board(id int) (*Board, error) {
	b, ok := g.positions[id]
	if !ok {
		return nil, fmt.Errorf("position %d: %w", id, errors.ErrUnknownPosition)
	}
	return b.Copy(), nil
}

// PositionCount returns the number of positions in the tree, root included.
func (g *Game) PositionCount() int { return len(g.positions) }

// LastPositionID returns the highest position id assigned so far.
func (g *Game) LastPositionID() int { return g.nextPositionID - 1 }

// Mainline returns the position ids reached by always taking the first
// continuation, starting with the root.
func (g *Game) Mainline() []int {
	ids := []int{RootPosition}
	b := g.positions[RootPosition]
	for len(b.next) > 0 {
		id := b.next[0]
		ids = append(ids, id)
		b = g.positions[id]
	}
	return ids
}

// MainlineEnd returns the id of the last position on the mainline.
func (g *Game) MainlineEnd() int {
	line := g.Mainline()
	return line[len(line)-1]
}

// FinalMoveNumber returns the number of the last move on the mainline.
func (g *Game) FinalMoveNumber() int {
	return g.positions[g.MainlineEnd()].MoveNumber()
}

// Path returns the position ids from the root to id inclusive.
func (g *Game) Path(id int) ([]int, error) {
	b, ok := g.positions[id]
	if !ok {
		return nil, fmt.Errorf("position %d: %w", id, errors.ErrUnknownPosition)
	}
	path := []int{id}
	for b.id != RootPosition {
		path = append(path, b.prev)
		b = g.positions[b.prev]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// LineMoves returns the moves played on the way from the root to id, keyed by
// move number. Stones still on the board and stones since captured are both
// included.
func (g *Game) LineMoves(id int) (map[int]Move, error) {
	path, err := g.Path(id)
	if err != nil {
		return nil, err
	}
	moves := make(map[int]Move, len(path)-1)
	for _, pid := range path {
		if m, ok := g.positions[pid].LastMove(); ok {
			moves[m.Number] = m
		}
	}
	return moves, nil
}

// Walk calls fn for every position in depth-first order, mainline first.
// Walking stops early when fn returns false.
func (g *Game) Walk(fn func(b *Board) bool) {
	stack := []int{RootPosition}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		b := g.positions[id]
		if !fn(b.Copy()) {
			return
		}
		for i := len(b.next) - 1; i >= 0; i-- {
			stack = append(stack, b.next[i])
		}
	}
}
