package engine

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/sgf-extract-go/internal/config"
	"github.com/lgbarn/sgf-extract-go/internal/errors"
	"github.com/lgbarn/sgf-extract-go/internal/goban"
	"github.com/lgbarn/sgf-extract-go/internal/parser"
)

// ReadAll parses every game tree in r and builds a Game for each one.
// Games built before a failure are returned together with the error.
func (b *Builder) ReadAll(r io.Reader) ([]*goban.Game, error) {
	p := parser.NewParser(r, b.log)
	p.SetFileName(b.File)

	var games []*goban.Game
	for num := 1; ; num++ {
		tree, err := p.ParseGame()
		if err != nil {
			return games, err
		}
		if tree == nil {
			return games, nil
		}

		b.GameNum = num
		g, err := b.BuildTree(tree)
		if err != nil {
			return games, err
		}
		b.log.Debugw("built game",
			"file", b.File,
			"game", num,
			"positions", g.PositionCount(),
			"moves", g.FinalMoveNumber(),
		)
		games = append(games, g)
	}
}

// BuildTree flattens a parsed tree and builds it.
func (b *Builder) BuildTree(tree *parser.GameTree) (*goban.Game, error) {
	events, err := tree.EventsForFile(b.File, b.log)
	if err != nil {
		return nil, err
	}
	return b.Build(events)
}

// LoadGame builds the first game in r.
func LoadGame(r io.Reader, cfg *config.Config, log *zap.SugaredLogger) (*goban.Game, error) {
	b := NewBuilder(cfg, log)
	p := parser.NewParser(r, b.log)
	tree, err := p.ParseGame()
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "game tree", Got: "end of input"}
	}
	b.GameNum = 1
	return b.BuildTree(tree)
}

// LoadFile builds every game in the named file.
func LoadFile(path string, cfg *config.Config, log *zap.SugaredLogger) ([]*goban.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	b := NewBuilder(cfg, log)
	b.File = path
	return b.ReadAll(f)
}
