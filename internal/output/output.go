// Package output renders boards and games as text, LaTeX and JSON.
package output

import (
	"strings"

	"github.com/lgbarn/sgf-extract-go/internal/config"
	"github.com/lgbarn/sgf-extract-go/internal/goban"
)

// ASCII renders a board one row per line from the top, each cell as
// "X  ", "O  " or ".  ".
func ASCII(b *goban.Board) string {
	size := b.Size()
	var sb strings.Builder
	sb.Grow(size * (3*size + 1))
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			p, _ := b.Point(r, c)
			if p.IsEmpty() {
				sb.WriteString(".  ")
				continue
			}
			sb.WriteByte(p.Colour.Symbol())
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SelectPosition returns the board chosen by the output configuration:
// the end of the mainline for config.FinalPosition, otherwise that position id.
func SelectPosition(g *goban.Game, cfg *config.OutputConfig) (*goban.Board, error) {
	id := g.MainlineEnd()
	if cfg != nil && cfg.Position != config.FinalPosition {
		id = cfg.Position
	}
	return g.Board(id)
}
