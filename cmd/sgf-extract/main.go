// sgf-extract reads Go game records in SGF format, replays them with the
// capture rule and prints boards, LaTeX diagrams, JSON trees or statistics.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/sgf-extract-go/internal/config"
	"github.com/lgbarn/sgf-extract-go/internal/logging"
	"github.com/lgbarn/sgf-extract-go/internal/output"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1 // some input could not be read
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, parser, err := parseOptions(args)
	if err != nil {
		if isHelp(err) {
			fmt.Fprintln(stdout, err)
			return exitOK
		}
		fmt.Fprintf(stderr, "sgf-extract: %v\n", err)
		return exitUsage
	}
	if opts.Version {
		fmt.Fprintf(stdout, "sgf-extract-go version %s\n", programVersion)
		return exitOK
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		fmt.Fprintf(stderr, "sgf-extract: %v\n", err)
		return exitUsage
	}
	cfg.OutputFile = stdout
	cfg.LogFile = stderr
	if err := applyOptions(cfg, parser, opts); err != nil {
		fmt.Fprintf(stderr, "sgf-extract: %v\n", err)
		return exitUsage
	}
	filter, err := buildFilter(opts)
	if err != nil {
		fmt.Fprintf(stderr, "sgf-extract: %v\n", err)
		return exitUsage
	}

	closeFiles, err := setupFiles(cfg, opts)
	if err != nil {
		fmt.Fprintf(stderr, "sgf-extract: %v\n", err)
		return exitFailure
	}
	defer closeFiles()

	log, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "sgf-extract: %v\n", err)
		return exitUsage
	}
	defer log.Sync() //nolint:errcheck // nothing useful to do on exit

	writer := newWriter(cfg, opts)
	proc := NewProcessor(cfg, log, writer)
	if cfg.Duplicate.Suppress {
		proc.SuppressDuplicates(opts.DuplicateCapacity)
		if opts.CheckFile != "" {
			if err := proc.PreloadDuplicates(opts.CheckFile); err != nil {
				log.Errorw("cannot use check file", "file", opts.CheckFile, zap.Error(err))
				return exitFailure
			}
		}
	}
	if filter != nil {
		proc.Select(filter, opts.NonMatching)
	}
	proc.SplitVariations(opts.Split)

	if files := opts.Args.Files; len(files) > 0 {
		err = proc.ProcessFiles(files)
	} else {
		err = proc.ProcessReader(stdin, "stdin")
	}
	if cerr := writer.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Errorw("output failed", zap.Error(err))
		return exitFailure
	}

	if cfg.Verbosity > 0 {
		proc.Report(cfg.LogFile)
	}
	if proc.stats.failed > 0 {
		return exitFailure
	}
	return exitOK
}

// newWriter picks the game writer. Compact JSON is written one game per line.
func newWriter(cfg *config.Config, opts *options) output.GameWriter {
	if cfg.Output.Format == config.JSON && opts.Compact {
		return output.NewJSONWriterSingle(cfg.OutputFile, cfg)
	}
	return output.NewGameWriter(cfg.OutputFile, cfg)
}

// setupFiles opens the output, log and duplicate files named on the command
// line. The returned function closes them.
func setupFiles(cfg *config.Config, opts *options) (func(), error) {
	var opened []*os.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	create := func(name string) (*os.File, error) {
		f, err := os.Create(name) //nolint:gosec // CLI tool writes user-specified files
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("creating %s: %w", name, err)
		}
		opened = append(opened, f)
		return f, nil
	}

	if opts.OutputFile != "" {
		f, err := create(opts.OutputFile)
		if err != nil {
			return nil, err
		}
		cfg.OutputFile = f
	}
	if opts.LogFile != "" {
		f, err := create(opts.LogFile)
		if err != nil {
			return nil, err
		}
		cfg.LogFile = f
	}
	if opts.DuplicateFile != "" {
		f, err := create(opts.DuplicateFile)
		if err != nil {
			return nil, err
		}
		cfg.Duplicate.DuplicateFile = f
	}
	return closeAll, nil
}
