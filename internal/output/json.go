package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/sgf-extract-go/internal/goban"
	"github.com/lgbarn/sgf-extract-go/internal/processing"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	BoardSize       int               `json:"boardSize"`
	Black           JSONPlayer        `json:"black"`
	White           JSONPlayer        `json:"white"`
	Info            map[string]string `json:"info,omitempty"`
	Handicap        []string          `json:"handicap,omitempty"`
	FinalMoveNumber int               `json:"finalMoveNumber"`
	Positions       int               `json:"positions"`
	Moves           []JSONMove        `json:"moves,omitempty"`
}

// JSONPlayer holds a player's name and rank.
type JSONPlayer struct {
	Name string `json:"name,omitempty"`
	Rank string `json:"rank,omitempty"`
}

// JSONMove represents a move in JSON format. Variations hold the
// alternatives to this move, each as its own line.
type JSONMove struct {
	MoveNumber int          `json:"moveNumber"`
	Colour     string       `json:"colour"` // "black" or "white"
	Point      string       `json:"point"`  // SGF coordinates
	Label      string       `json:"label"`  // diagram coordinates
	PositionID int          `json:"positionId"`
	Captured   []string     `json:"captured,omitempty"`
	Variations [][]JSONMove `json:"variations,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to JSON format.
func GameToJSON(g *goban.Game) *JSONGame {
	jg := &JSONGame{
		BoardSize:       g.BoardSize(),
		Black:           JSONPlayer{Name: g.Player(goban.Black), Rank: g.Rank(goban.Black)},
		White:           JSONPlayer{Name: g.Player(goban.White), Rank: g.Rank(goban.White)},
		FinalMoveNumber: g.FinalMoveNumber(),
		Positions:       g.PositionCount(),
	}

	if keys := g.InfoKeys(); len(keys) > 0 {
		jg.Info = make(map[string]string, len(keys))
		for _, k := range keys {
			jg.Info[k] = g.Info(k)
		}
	}
	for _, at := range g.HandicapStones() {
		jg.Handicap = append(jg.Handicap, at.SGF())
	}

	jg.Moves = convertLine(g, goban.RootPosition, 0)
	return jg
}

// convertLine follows first continuations from the position with id from,
// starting with its variation-th continuation.
func convertLine(g *goban.Game, from, variation int) []JSONMove {
	var line []JSONMove
	prev, err := g.Board(from)
	if err != nil {
		return nil
	}
	id, ok := prev.Next(variation)
	for ok {
		b, err := g.Board(id)
		if err != nil {
			break
		}
		m, _ := b.LastMove()
		jm := JSONMove{
			MoveNumber: m.Number,
			Colour:     strings.ToLower(m.Colour.String()),
			Point:      m.Intersection.SGF(),
			Label:      m.Intersection.Label(),
			PositionID: id,
		}
		for _, at := range processing.CapturedStones(prev, b) {
			jm.Captured = append(jm.Captured, at.SGF())
		}
		if variation == 0 {
			for alt := 1; alt < prev.VariationCount(); alt++ {
				jm.Variations = append(jm.Variations, convertLine(g, prev.ID(), alt))
			}
		}
		line = append(line, jm)

		// only the first move of a line can be an alternative
		variation = 0
		prev = b
		id, ok = b.Next(0)
	}
	return line
}

// WriteJSON encodes v to w, indented when indent is set.
func WriteJSON(w io.Writer, v interface{}, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
