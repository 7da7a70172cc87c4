package hashing

import (
	"math/rand/v2"
	"sort"

	"github.com/lgbarn/sgf-extract-go/internal/goban"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x5347462d45585452

const maxPoints = goban.MaxBoardSize * goban.MaxBoardSize

var (
	// stoneKeys[colour][row*MaxBoardSize+col]
	stoneKeys [2][maxPoints]uint64
	sizeKeys  [goban.MaxBoardSize + 1]uint64
)

func init() {
	rng := rand.New(rand.NewPCG(zobristSeed, zobristSeed>>1))
	for c := range stoneKeys {
		for i := range stoneKeys[c] {
			stoneKeys[c][i] = rng.Uint64()
		}
	}
	for i := range sizeKeys {
		sizeKeys[i] = rng.Uint64()
	}
}

// Zobrist returns the Zobrist hash of the stones on a board. Move numbers
// and tree links do not contribute, so the same arrangement reached by
// different move orders hashes the same.
func Zobrist(b *goban.Board) uint64 {
	h := sizeKeys[b.Size()]
	for _, at := range b.Stones() {
		p, _ := b.At(at)
		h ^= stoneKeys[p.Colour][at.Row*goban.MaxBoardSize+at.Col]
	}
	return h
}

// WeakHash is a secondary hash over stone counts and placement, used to
// confirm a Zobrist match.
func WeakHash(b *goban.Board) uint32 {
	black, white := b.Count(goban.Black), b.Count(goban.White)
	h := uint32(b.Size())<<24 ^ uint32(black)<<12 ^ uint32(white)
	for _, at := range b.Stones() {
		p, _ := b.At(at)
		h = h*31 + uint32(at.Row*goban.MaxBoardSize+at.Col)*uint32(p.Colour+1)
	}
	return h
}

// Transpositions returns, for every stone arrangement reached by more than
// one position of the game, the ids of those positions in ascending order.
func Transpositions(g *goban.Game) map[uint64][]int {
	seen := make(map[uint64][]int)
	g.Walk(func(b *goban.Board) bool {
		h := Zobrist(b)
		seen[h] = append(seen[h], b.ID())
		return true
	})

	out := make(map[uint64][]int)
	for h, ids := range seen {
		if len(ids) > 1 {
			sort.Ints(ids)
			out[h] = ids
		}
	}
	return out
}
