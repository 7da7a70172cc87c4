package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/sgf-extract-go/internal/config"
	"github.com/lgbarn/sgf-extract-go/internal/goban"
	"github.com/lgbarn/sgf-extract-go/internal/processing"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (ASCII, LaTeX, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *goban.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer for the configured output format.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	switch cfg.Output.Format {
	case config.LaTeX:
		return NewLaTeXWriter(w, cfg)
	case config.JSON:
		return NewJSONWriter(w, cfg)
	case config.Stats:
		return NewStatsWriter(w)
	default:
		return NewASCIIWriter(w, cfg)
	}
}

// ASCIIWriter writes the selected position of each game as a text board.
// Games after the first are preceded by a blank line.
type ASCIIWriter struct {
	w       io.Writer
	cfg     *config.Config
	written int
}

// NewASCIIWriter creates a new ASCII writer.
func NewASCIIWriter(w io.Writer, cfg *config.Config) *ASCIIWriter {
	return &ASCIIWriter{w: w, cfg: cfg}
}

// WriteGame writes the configured position of a game.
func (aw *ASCIIWriter) WriteGame(game *goban.Game) error {
	b, err := SelectPosition(game, aw.cfg.Output)
	if err != nil {
		return err
	}
	if aw.written > 0 {
		if _, err := io.WriteString(aw.w, "\n"); err != nil {
			return err
		}
	}
	aw.written++
	_, err = io.WriteString(aw.w, ASCII(b))
	return err
}

// Flush is a no-op; ASCII output is written immediately.
func (aw *ASCIIWriter) Flush() error { return nil }

// Close closes the ASCII writer.
func (aw *ASCIIWriter) Close() error { return nil }

// LaTeXWriter writes each game as a series of igo diagrams along the mainline,
// or a single diagram when a position is configured.
type LaTeXWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewLaTeXWriter creates a new LaTeX writer.
func NewLaTeXWriter(w io.Writer, cfg *config.Config) *LaTeXWriter {
	return &LaTeXWriter{w: w, cfg: cfg}
}

// WriteGame writes the diagrams of a game.
func (lw *LaTeXWriter) WriteGame(game *goban.Game) error {
	var text string
	if id := lw.cfg.Output.Position; id != config.FinalPosition {
		b, err := game.Board(id)
		if err != nil {
			return err
		}
		moves, err := game.LineMoves(id)
		if err != nil {
			return err
		}
		text = Diagram(b, 1, moves)
	} else {
		var err error
		if text, err = GameLaTeX(game, lw.cfg.Output.DiagramStep); err != nil {
			return err
		}
	}
	_, err := io.WriteString(lw.w, text)
	return err
}

// Flush is a no-op; LaTeX output is written immediately.
func (lw *LaTeXWriter) Flush() error { return nil }

// Close closes the LaTeX writer.
func (lw *LaTeXWriter) Close() error { return nil }

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg, single: true}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(game *goban.Game) error {
	jg := GameToJSON(game)
	if jw.single {
		return WriteJSON(jw.w, jg, jw.cfg.Output.JSONIndent)
	}
	jw.games = append(jw.games, jg)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}
	err := WriteJSON(jw.w, &JSONOutput{Games: jw.games}, jw.cfg.Output.JSONIndent)
	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// StatsWriter writes one summary line per game.
type StatsWriter struct {
	w     io.Writer
	count int
}

// NewStatsWriter creates a new statistics writer.
func NewStatsWriter(w io.Writer) *StatsWriter {
	return &StatsWriter{w: w}
}

// WriteGame analyses a game and writes its summary.
func (sw *StatsWriter) WriteGame(game *goban.Game) error {
	sw.count++
	a := processing.AnalyzeGame(game)
	_, err := fmt.Fprintf(sw.w,
		"game %d: size %d, moves %d, positions %d, branch points %d, variations %d, depth %d, captures B %d W %d, transpositions %d\n",
		sw.count, game.BoardSize(), a.MainlineMoves, a.Positions, a.BranchPoints, a.Variations, a.MaxDepth,
		a.Captures[goban.Black], a.Captures[goban.White], a.Transpositions,
	)
	return err
}

// Flush is a no-op; statistics are written immediately.
func (sw *StatsWriter) Flush() error { return nil }

// Close closes the statistics writer.
func (sw *StatsWriter) Close() error { return nil }
