// processor.go - Loading games and handing them to the output writer
package main

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/lgbarn/sgf-extract-go/internal/config"
	"github.com/lgbarn/sgf-extract-go/internal/engine"
	sgferrors "github.com/lgbarn/sgf-extract-go/internal/errors"
	"github.com/lgbarn/sgf-extract-go/internal/goban"
	"github.com/lgbarn/sgf-extract-go/internal/hashing"
	"github.com/lgbarn/sgf-extract-go/internal/matching"
	"github.com/lgbarn/sgf-extract-go/internal/output"
	"github.com/lgbarn/sgf-extract-go/internal/processing"
	"github.com/lgbarn/sgf-extract-go/internal/worker"
)

// runStats counts what happened during a run.
type runStats struct {
	files      int
	failed     int
	games      int
	written    int
	skipped    int
	duplicates int
	unselected int
}

// Processor loads SGF input and writes every game it builds.
// Results are consumed on a single goroutine, in input order.
type Processor struct {
	cfg      *config.Config
	log      *zap.SugaredLogger
	writer   output.GameWriter
	detector *hashing.ThreadSafeDuplicateDetector // nil unless duplicates are suppressed
	full     bool                                 // capacity warning given
	filter   matching.GameMatcher                 // nil selects every game
	negate   bool
	split    bool
	stats    runStats
}

// NewProcessor creates a processor writing through w.
func NewProcessor(cfg *config.Config, log *zap.SugaredLogger, w output.GameWriter) *Processor {
	return &Processor{cfg: cfg, log: log, writer: w}
}

// SuppressDuplicates drops games whose final position was seen before.
// A capacity of zero keeps every signature.
func (p *Processor) SuppressDuplicates(capacity int) {
	p.detector = hashing.NewThreadSafeDuplicateDetector(false, capacity)
}

// PreloadDuplicates marks every game in the files as already output.
// SuppressDuplicates must have been called.
func (p *Processor) PreloadDuplicates(paths ...string) error {
	seen := hashing.NewDuplicateDetector(false, 0)
	for _, path := range paths {
		games, err := engine.LoadFile(path, p.cfg, p.log)
		if err != nil {
			return fmt.Errorf("reading check file: %w", err)
		}
		for _, g := range games {
			seen.CheckAndAdd(g)
		}
	}
	p.detector.LoadFromDetector(seen)
	p.log.Debugw("preloaded games", "files", len(paths), "unique", p.detector.UniqueCount())
	return nil
}

// Select writes only the games m accepts, or with negate only those it
// rejects.
func (p *Processor) Select(m matching.GameMatcher, negate bool) {
	p.filter, p.negate = m, negate
}

// SplitVariations writes one game per variation instead of whole trees.
func (p *Processor) SplitVariations(split bool) {
	p.split = split
}

// ProcessFiles loads the named files on cfg.Workers goroutines and writes
// their games in command-line order. A file that fails to load is logged
// and counted; the games read before the failure are still written.
func (p *Processor) ProcessFiles(paths []string) error {
	pool := worker.NewPoolWithOptions(p.load,
		worker.WithWorkers(p.cfg.Workers),
		worker.WithBufferSize(max(len(paths), 1)),
	)
	pool.Start()
	go func() {
		for i, path := range paths {
			pool.Submit(worker.WorkItem{Path: path, Index: i})
		}
		pool.Close()
	}()

	return worker.InOrder(pool.Results(), p.handle)
}

// ProcessReader loads every game in r, reporting it under name.
func (p *Processor) ProcessReader(r io.Reader, name string) error {
	b := engine.NewBuilder(p.cfg, p.log)
	b.File = name
	games, err := b.ReadAll(r)
	return p.handle(worker.ProcessResult{Path: name, Games: games, Err: err})
}

func (p *Processor) load(item worker.WorkItem) worker.ProcessResult {
	games, err := engine.LoadFile(item.Path, p.cfg, p.log)
	return worker.ProcessResult{Path: item.Path, Index: item.Index, Games: games, Err: err}
}

// handle writes the games of one input. It only returns errors that should
// end the run, such as a failing output stream.
func (p *Processor) handle(r worker.ProcessResult) error {
	p.stats.files++
	if r.Err != nil {
		p.stats.failed++
		p.log.Errorw("failed to load games", "file", r.Path, "loaded", len(r.Games), zap.Error(r.Err))
	}

	for i, g := range r.Games {
		p.stats.games++
		if p.filter != nil && p.filter.Match(g) == p.negate {
			p.stats.unselected++
			p.log.Debugw("game not selected", "file", r.Path, "game", i+1)
			continue
		}
		lines := []*goban.Game{g}
		if p.split {
			var err error
			if lines, err = processing.SplitVariations(g); err != nil {
				p.log.Errorw("failed to split variations", "file", r.Path, "game", i+1, zap.Error(err))
				continue
			}
		}
		for _, line := range lines {
			if err := p.write(r.Path, i+1, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Processor) write(path string, num int, g *goban.Game) error {
	if p.detector != nil && p.detector.CheckAndAdd(g) {
		p.stats.duplicates++
		p.log.Debugw("duplicate game", "file", path, "game", num)
		if dup := p.cfg.Duplicate.DuplicateFile; dup != nil {
			if _, err := fmt.Fprintf(dup, "%s: game %d\n", path, num); err != nil {
				return err
			}
		}
		return nil
	}
	if p.detector != nil && !p.full && p.detector.IsFull() {
		p.full = true
		p.log.Warnw("duplicate table full, later games are not remembered",
			"unique", p.detector.UniqueCount())
	}

	if err := p.writer.WriteGame(g); err != nil {
		if errors.Is(err, sgferrors.ErrUnknownPosition) {
			p.stats.skipped++
			p.log.Warnw("position not in game", "file", path, "game", num, zap.Error(err))
			return nil
		}
		return fmt.Errorf("writing game %d of %s: %w", num, path, err)
	}
	p.stats.written++
	return nil
}

// Report prints the summary line to w.
func (p *Processor) Report(w io.Writer) {
	s := p.stats
	if p.detector != nil {
		fmt.Fprintf(w, "%d game(s) output, %d duplicate(s) out of %d.\n", s.written, s.duplicates, s.games)
	} else {
		fmt.Fprintf(w, "%d game(s) output out of %d.\n", s.written, s.games)
	}
	if p.filter != nil {
		fmt.Fprintf(w, "%d game(s) not selected.\n", s.unselected)
	}
	if s.failed > 0 {
		fmt.Fprintf(w, "%d of %d file(s) could not be read completely.\n", s.failed, s.files)
	}
}
