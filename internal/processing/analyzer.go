// Package processing provides game analysis and variation handling.
package processing

import (
	"github.com/lgbarn/sgf-extract-go/internal/goban"
	"github.com/lgbarn/sgf-extract-go/internal/hashing"
)

// GameAnalysis holds analysis results from walking a game tree.
type GameAnalysis struct {
	FinalBoard *goban.Board

	MainlineMoves int
	Positions     int
	MaxDepth      int // highest move number anywhere in the tree

	BranchPoints int // positions with more than one continuation
	Variations   int // continuations beyond the first, summed over the tree

	// Captures counts the stones taken by each colour along the mainline.
	Captures [2]int

	Transpositions int      // stone arrangements reached by more than one position
	Hashes         []uint64 // Zobrist hashes of the mainline positions
}

// HasVariations reports whether the tree holds anything besides the mainline.
func (ga *GameAnalysis) HasVariations() bool {
	return ga.Variations > 0
}

// TotalCaptures returns the number of stones captured along the mainline.
func (ga *GameAnalysis) TotalCaptures() int {
	return ga.Captures[goban.Black] + ga.Captures[goban.White]
}

// AnalyzeGame walks a finished game and collects statistics.
func AnalyzeGame(g *goban.Game) *GameAnalysis {
	analysis := &GameAnalysis{
		MainlineMoves: g.FinalMoveNumber(),
		Positions:     g.PositionCount(),
	}

	g.Walk(func(b *goban.Board) bool {
		if n := b.MoveNumber(); n > analysis.MaxDepth {
			analysis.MaxDepth = n
		}
		if k := b.VariationCount(); k > 1 {
			analysis.BranchPoints++
			analysis.Variations += k - 1
		}
		return true
	})

	var prev *goban.Board
	for _, id := range g.Mainline() {
		b, err := g.Board(id)
		if err != nil {
			break
		}
		analysis.Hashes = append(analysis.Hashes, hashing.Zobrist(b))
		if prev != nil {
			if m, ok := b.LastMove(); ok {
				analysis.Captures[m.Colour] += len(CapturedStones(prev, b))
			}
		}
		prev = b
	}
	analysis.FinalBoard = prev

	analysis.Transpositions = len(hashing.Transpositions(g))
	return analysis
}

// CapturedStones returns the intersections holding a stone in before that are
// empty in after, in (row, col) order.
func CapturedStones(before, after *goban.Board) []goban.Intersection {
	var out []goban.Intersection
	for _, at := range before.Stones() {
		if p, err := after.At(at); err == nil && p.IsEmpty() {
			out = append(out, at)
		}
	}
	return out
}
