package processing

import (
	"github.com/lgbarn/sgf-extract-go/internal/goban"
)

// SplitVariations returns one single-line game per leaf of the tree, in
// depth-first order with the mainline first. Each copy carries the original
// metadata and handicap stones.
func SplitVariations(g *goban.Game) ([]*goban.Game, error) {
	var leaves []int
	g.Walk(func(b *goban.Board) bool {
		if b.VariationCount() == 0 {
			leaves = append(leaves, b.ID())
		}
		return true
	})

	games := make([]*goban.Game, 0, len(leaves))
	for _, leaf := range leaves {
		line, err := copyLine(g, leaf)
		if err != nil {
			return nil, err
		}
		games = append(games, line)
	}
	return games, nil
}

// copyLine replays the moves from the root to id into a new game.
func copyLine(g *goban.Game, id int) (*goban.Game, error) {
	out, err := goban.NewGame(g.BoardSize())
	if err != nil {
		return nil, err
	}
	copyGameHeaders(g, out)
	for _, at := range g.HandicapStones() {
		if err := out.PlaceHandicapStone(at); err != nil {
			return nil, err
		}
	}

	path, err := g.Path(id)
	if err != nil {
		return nil, err
	}
	from := goban.RootPosition
	for _, pid := range path[1:] {
		b, err := g.Board(pid)
		if err != nil {
			return nil, err
		}
		m, _ := b.LastMove()
		if from, err = out.PlaceStone(m.Intersection, m.Colour, from); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func copyGameHeaders(from, to *goban.Game) {
	for _, c := range []goban.Colour{goban.Black, goban.White} {
		to.SetPlayer(c, from.Player(c))
		to.SetRank(c, from.Rank(c))
	}
	for _, key := range from.InfoKeys() {
		to.SetInfo(key, from.Info(key))
	}
}
