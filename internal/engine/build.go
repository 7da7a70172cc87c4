// Package engine builds move trees from SGF game records.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lgbarn/sgf-extract-go/internal/config"
	"github.com/lgbarn/sgf-extract-go/internal/errors"
	"github.com/lgbarn/sgf-extract-go/internal/goban"
	"github.com/lgbarn/sgf-extract-go/internal/parser"
)

// Builder applies event streams to new games.
type Builder struct {
	cfg *config.Config
	log *zap.SugaredLogger

	// File and GameNum are reported in errors and log entries.
	File    string
	GameNum int
}

// NewBuilder creates a Builder. A nil cfg uses defaults and a nil logger
// discards output.
func NewBuilder(cfg *config.Config, log *zap.SugaredLogger) *Builder {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Builder{cfg: cfg, log: log}
}

// Build creates a game from an event stream. Setup events act on the root
// position; moves are played from a cursor that starts at the root and is
// restored to the branch point at the end of every variation, so sibling
// variations hang off the same position.
func (b *Builder) Build(events []parser.Event) (*goban.Game, error) {
	g, err := goban.NewGame(b.cfg.Game.BoardSize)
	if err != nil {
		return nil, err
	}

	cursor := goban.RootPosition
	var branches []int

	for _, ev := range events {
		switch ev.Kind {
		case parser.DeclareSize:
			if ev.Size == g.BoardSize() {
				continue
			}
			if err := g.Resize(ev.Size); err != nil {
				if err := b.reject(g, ev, cursor, err); err != nil {
					return nil, err
				}
			}

		case parser.SetPlayerName:
			g.SetPlayer(ev.Colour, ev.Text)

		case parser.SetPlayerRank:
			g.SetRank(ev.Colour, ev.Text)

		case parser.SetGameInfo:
			g.SetInfo(ev.Key, ev.Text)

		case parser.PlaceHandicapStone:
			if err := g.PlaceHandicapStone(ev.Point); err != nil {
				if err := b.reject(g, ev, cursor, err); err != nil {
					return nil, err
				}
			}

		case parser.PlayMove:
			id, err := g.PlaceStone(ev.Point, ev.Colour, cursor)
			if err != nil {
				if err := b.reject(g, ev, cursor, err); err != nil {
					return nil, err
				}
				continue
			}
			cursor = id

		case parser.VariationStart:
			branches = append(branches, cursor)

		case parser.VariationEnd:
			if len(branches) == 0 {
				return nil, b.gameError(g, ev, cursor, fmt.Errorf("variation end without start: %w", errors.ErrParseFailure))
			}
			cursor = branches[len(branches)-1]
			branches = branches[:len(branches)-1]
		}
	}

	if len(branches) > 0 {
		return nil, &errors.GameError{
			Err:        fmt.Errorf("%d unterminated variations: %w", len(branches), errors.ErrParseFailure),
			File:       b.File,
			GameNum:    b.GameNum,
			PositionID: cursor,
		}
	}
	return g, nil
}

// reject reports a failed event. With SkipIllegalMoves the failure is logged
// and nil is returned so building continues.
func (b *Builder) reject(g *goban.Game, ev parser.Event, cursor int, err error) error {
	gameErr := b.gameError(g, ev, cursor, err)
	if !b.cfg.Game.SkipIllegalMoves {
		return gameErr
	}
	b.log.Warnw("skipping event",
		"event", ev.Kind.String(),
		"line", ev.Line,
		zap.Error(gameErr),
	)
	return nil
}

func (b *Builder) gameError(g *goban.Game, ev parser.Event, cursor int, err error) error {
	gameErr := &errors.GameError{
		Err:        err,
		File:       b.File,
		GameNum:    b.GameNum,
		PositionID: cursor,
		Point:      ev.Raw,
	}
	if ev.Kind == parser.PlayMove {
		if from, lookupErr := g.Board(cursor); lookupErr == nil {
			gameErr.MoveNumber = from.MoveNumber() + 1
		}
	}
	return gameErr
}
