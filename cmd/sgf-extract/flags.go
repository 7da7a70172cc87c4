// flags.go - Command-line options and their mapping onto config.Config
package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/lgbarn/sgf-extract-go/internal/config"
	"github.com/lgbarn/sgf-extract-go/internal/errors"
	"github.com/lgbarn/sgf-extract-go/internal/matching"
)

// options are the command-line switches. Only switches given on the command
// line override values from the config file and environment.
type options struct {
	// Output options
	Format     string `short:"f" long:"format" description:"Output format" choice:"ascii" choice:"latex" choice:"json" choice:"stats"`
	Step       int    `short:"s" long:"step" description:"Moves per LaTeX diagram"`
	Position   int    `short:"p" long:"position" description:"Position id to print (-1 for the end of the main line)"`
	Compact    bool   `long:"compact" description:"Write one JSON document per line"`
	Split      bool   `long:"split" description:"Write every variation as a game of its own"`
	OutputFile string `short:"o" long:"output" description:"Output file (default: stdout)"`

	// Game building
	BoardSize   int  `short:"b" long:"board-size" description:"Board size for records without SZ"`
	SkipIllegal bool `long:"skip-illegal" description:"Log and drop moves that cannot be played"`

	// Duplicate detection
	SuppressDuplicates bool   `short:"D" long:"suppress-duplicates" description:"Suppress games whose final position was already seen"`
	DuplicateFile      string `short:"d" long:"duplicates" description:"List suppressed games in this file"`
	DuplicateCapacity  int    `long:"duplicate-capacity" description:"Maximum stored game signatures (0 = unlimited)"`
	CheckFile          string `long:"check" description:"Treat the games in this file as already output"`

	// Game selection
	Players     []string `long:"player" description:"Select games where either player's name contains NAME (repeatable)" value-name:"NAME"`
	Black       string   `long:"black" description:"Select games where Black's name contains NAME" value-name:"NAME"`
	White       string   `long:"white" description:"Select games where White's name contains NAME" value-name:"NAME"`
	Result      string   `long:"result" description:"Select games whose result starts with this, e.g. B+"`
	Soundex     bool     `long:"soundex" description:"Compare player names by sound"`
	Criteria    string   `short:"t" long:"criteria" description:"File of selection criteria, one per line"`
	Diagrams    []string `long:"diagram" description:"Select games reaching this position, rows separated by / (repeatable)"`
	MinMoves    int      `long:"min-moves" description:"Select games with at least this many main line moves"`
	MaxMoves    int      `long:"max-moves" description:"Select games with at most this many main line moves"`
	NonMatching bool     `short:"n" long:"non-matching" description:"Output the games the selection rejects instead"`

	// Processing
	Workers int `short:"j" long:"workers" description:"Files loaded in parallel"`

	// Logging and configuration
	LogFile    string `short:"l" long:"log" description:"Log file (default: stderr)"`
	LogLevel   string `long:"log-level" description:"Log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	Quiet      bool   `short:"q" long:"quiet" description:"Do not print the summary line"`
	ConfigFile string `short:"c" long:"config" description:"Configuration file (YAML, TOML or JSON)"`
	Version    bool   `short:"V" long:"version" description:"Print the version and exit"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"SGF files (default: stdin)"`
	} `positional-args:"yes"`
}

// parseOptions parses args. The returned parser reports which switches were
// actually given.
func parseOptions(args []string) (*options, *flags.Parser, error) {
	var opts options
	p := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	p.Name = "sgf-extract"
	p.Usage = "[OPTIONS] [FILE...]"
	if _, err := p.ParseArgs(args); err != nil {
		return nil, p, err
	}
	return &opts, p, nil
}

// isHelp reports whether err is the request for the usage text.
func isHelp(err error) bool {
	ferr, ok := err.(*flags.Error)
	return ok && ferr.Type == flags.ErrHelp
}

// applyOptions copies the switches that were given onto cfg.
func applyOptions(cfg *config.Config, p *flags.Parser, opts *options) error {
	given := func(long string) bool {
		o := p.FindOptionByLongName(long)
		return o != nil && o.IsSet()
	}

	if given("format") {
		format, err := config.ParseOutputFormat(opts.Format)
		if err != nil {
			return err
		}
		cfg.Output.Format = format
	}
	if given("step") {
		cfg.Output.DiagramStep = opts.Step
	}
	if given("position") {
		cfg.Output.Position = opts.Position
	}
	if opts.Compact {
		cfg.Output.JSONIndent = false
	}
	if given("board-size") {
		cfg.Game.BoardSize = opts.BoardSize
	}
	if opts.SkipIllegal {
		cfg.Game.SkipIllegalMoves = true
	}
	if opts.SuppressDuplicates || opts.DuplicateFile != "" || opts.CheckFile != "" {
		cfg.Duplicate.Suppress = true
	}
	if given("workers") {
		cfg.Workers = opts.Workers
	}
	if given("log-level") {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Quiet {
		cfg.Verbosity = 0
	}
	cfg.OutputFilename = opts.OutputFile
	return cfg.Validate()
}

// buildFilter turns the selection switches into a game filter. It returns
// nil when no selection was asked for.
func buildFilter(opts *options) (*matching.GameFilter, error) {
	if opts.MinMoves < 0 || opts.MaxMoves < 0 || (opts.MaxMoves > 0 && opts.MaxMoves < opts.MinMoves) {
		return nil, fmt.Errorf("move bounds %d..%d: %w", opts.MinMoves, opts.MaxMoves, errors.ErrInvalidCriterion)
	}

	gf := matching.NewGameFilter()
	gf.SetUseSoundex(opts.Soundex)
	for _, name := range opts.Players {
		gf.AddPlayerFilter(name)
	}
	if opts.Black != "" {
		gf.AddBlackFilter(opts.Black)
	}
	if opts.White != "" {
		gf.AddWhiteFilter(opts.White)
	}
	if opts.Result != "" {
		gf.AddResultFilter(opts.Result)
	}
	for _, d := range opts.Diagrams {
		if err := gf.AddDiagramFilter(d); err != nil {
			return nil, err
		}
	}
	if opts.Criteria != "" {
		if err := gf.LoadCriteriaFile(opts.Criteria); err != nil {
			return nil, err
		}
	}
	gf.SetMoveBounds(opts.MinMoves, opts.MaxMoves)

	if !gf.HasCriteria() {
		return nil, nil
	}
	return gf, nil
}
