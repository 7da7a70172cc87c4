// sgf-view is a terminal viewer for SGF game records. It builds every game
// in the file first and then lets the user step through positions and
// variations.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/lgbarn/sgf-extract-go/internal/config"
	"github.com/lgbarn/sgf-extract-go/internal/engine"
	"github.com/lgbarn/sgf-extract-go/internal/goban"
	"github.com/lgbarn/sgf-extract-go/internal/logging"
)

type options struct {
	Game        int    `short:"g" long:"game" default:"1" description:"Game in the file to open first"`
	SkipIllegal bool   `long:"skip-illegal" description:"Log and drop moves that cannot be played"`
	LogLevel    string `long:"log-level" default:"warn" description:"Log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`

	Args struct {
		File string `positional-arg-name:"FILE" description:"SGF file" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}

	cfg := config.NewConfig()
	cfg.Game.SkipIllegalMoves = opts.SkipIllegal
	cfg.LogLevel = opts.LogLevel
	log, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sgf-view: %v\n", err)
		os.Exit(2)
	}

	m, err := loadModel(opts.Args.File, opts.Game, cfg, log)
	if err != nil {
		log.Errorw("cannot open game", "file", opts.Args.File, zap.Error(err))
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "sgf-view: %v\n", err)
		os.Exit(1)
	}
}

// loadModel builds the games in path and opens the 1-based game num.
func loadModel(path string, num int, cfg *config.Config, log *zap.SugaredLogger) (model, error) {
	games, err := engine.LoadFile(path, cfg, log)
	if err != nil {
		return model{}, err
	}
	return modelFor(games, num)
}

func modelFor(games []*goban.Game, num int) (model, error) {
	if num < 1 || num > len(games) {
		return model{}, fmt.Errorf("game %d requested, file holds %d", num, len(games))
	}
	m := newModel(games)
	m.gameIdx = num - 1
	return m, nil
}
