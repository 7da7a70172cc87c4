package parser

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/sgf-extract-go/internal/errors"
	"github.com/lgbarn/sgf-extract-go/internal/goban"
)

// EventKind identifies what an Event asks the game builder to do.
type EventKind int

const (
	DeclareSize EventKind = iota
	SetPlayerName
	SetPlayerRank
	SetGameInfo
	PlaceHandicapStone
	PlayMove
	VariationStart
	VariationEnd
)

var eventKindNames = [...]string{
	DeclareSize:        "DeclareSize",
	SetPlayerName:      "SetPlayerName",
	SetPlayerRank:      "SetPlayerRank",
	SetGameInfo:        "SetGameInfo",
	PlaceHandicapStone: "PlaceHandicapStone",
	PlayMove:           "PlayMove",
	VariationStart:     "VariationStart",
	VariationEnd:       "VariationEnd",
}

// String returns the name of the event kind.
func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "Unknown"
}

// Event is one step of a game record in the order a builder must apply it.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	Size   int
	Colour goban.Colour
	Key    string // game info property
	Text   string // name, rank or info value
	Point  goban.Intersection
	Raw    string // SGF point text of Point
	Line   int
}

// infoProperties are the game information properties kept as metadata.
var infoProperties = map[string]bool{
	"GN": true, "DT": true, "RE": true, "KM": true, "HA": true, "EV": true,
	"RO": true, "PC": true, "RU": true, "TM": true, "SO": true, "GC": true,
}

// eventBuilder carries the state needed while flattening a tree.
type eventBuilder struct {
	size   int
	file   string
	log    *zap.SugaredLogger
	events []Event
}

// Events flattens the tree into the event stream consumed by the game
// builder. Each variation is bracketed by VariationStart and VariationEnd;
// the first variation is the main line. Pass moves are dropped.
func (t *GameTree) Events(log *zap.SugaredLogger) ([]Event, error) {
	return t.EventsForFile("", log)
}

// EventsForFile is Events with a file name for error reporting.
func (t *GameTree) EventsForFile(file string, log *zap.SugaredLogger) ([]Event, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	eb := &eventBuilder{size: goban.DefaultBoardSize, file: file, log: log}
	if err := eb.tree(t); err != nil {
		return nil, err
	}
	return eb.events, nil
}

func (eb *eventBuilder) tree(t *GameTree) error {
	for _, node := range t.Nodes {
		if err := eb.node(node); err != nil {
			return err
		}
	}
	for _, v := range t.Variations {
		eb.events = append(eb.events, Event{Kind: VariationStart, Line: v.Line})
		if err := eb.tree(v); err != nil {
			return err
		}
		eb.events = append(eb.events, Event{Kind: VariationEnd, Line: v.Line})
	}
	return nil
}

// node emits the events of one node: size first, then metadata, setup
// stones and finally the move.
func (eb *eventBuilder) node(n *Node) error {
	if v, ok := n.Value("SZ"); ok {
		size, err := parseSize(v)
		if err != nil {
			return eb.parseError(n, err, "square board size", "SZ["+v+"]")
		}
		eb.size = size
		eb.events = append(eb.events, Event{Kind: DeclareSize, Size: size, Line: n.Line})
	}

	for _, p := range n.Properties {
		switch {
		case p.Ident == "PB" || p.Ident == "PW":
			eb.events = append(eb.events, Event{Kind: SetPlayerName, Colour: propColour(p.Ident[1]), Text: p.Values[0], Line: p.Line})
		case p.Ident == "BR" || p.Ident == "WR":
			eb.events = append(eb.events, Event{Kind: SetPlayerRank, Colour: propColour(p.Ident[0]), Text: p.Values[0], Line: p.Line})
		case infoProperties[p.Ident]:
			eb.events = append(eb.events, Event{Kind: SetGameInfo, Key: p.Ident, Text: p.Values[0], Line: p.Line})
		case p.Ident == "AW" || p.Ident == "AE":
			eb.log.Debugw("ignoring setup property", "property", p.Ident, "line", p.Line)
		}
	}

	for _, v := range n.Values("AB") {
		points, err := expandPointList(v)
		if err != nil {
			return eb.parseError(n, err, "point or rectangle", "AB["+v+"]")
		}
		for _, at := range points {
			eb.events = append(eb.events, Event{Kind: PlaceHandicapStone, Colour: goban.Black, Point: at, Raw: at.SGF(), Line: n.Line})
		}
	}

	for _, ident := range []string{"B", "W"} {
		v, ok := n.Value(ident)
		if !ok {
			continue
		}
		if eb.isPass(v) {
			eb.log.Debugw("skipping pass", "colour", ident, "line", n.Line)
			continue
		}
		at, err := goban.FromSGF(v)
		if err != nil {
			return eb.parseError(n, err, "point", ident+"["+v+"]")
		}
		eb.events = append(eb.events, Event{Kind: PlayMove, Colour: propColour(ident[0]), Point: at, Raw: v, Line: n.Line})
	}
	return nil
}

// isPass reports whether a move value is a pass: empty, or "tt" on boards
// no larger than 19.
func (eb *eventBuilder) isPass(v string) bool {
	return v == "" || (v == "tt" && eb.size <= 19)
}

func (eb *eventBuilder) parseError(n *Node, err error, expected, got string) error {
	return &errors.ParseError{
		Err:      err,
		File:     eb.file,
		Line:     n.Line,
		Expected: expected,
		Got:      got,
	}
}

func propColour(letter byte) goban.Colour {
	if letter == 'W' {
		return goban.White
	}
	return goban.Black
}

// parseSize accepts "n" and "n:n".
func parseSize(v string) (int, error) {
	parts := strings.Split(strings.TrimSpace(v), ":")
	if len(parts) > 2 {
		return 0, errors.ErrInvalidBoardSize
	}
	size, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, errors.ErrInvalidBoardSize
	}
	if len(parts) == 2 {
		rows, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || rows != size {
			return 0, errors.ErrInvalidBoardSize
		}
	}
	if size < 1 || size > goban.MaxBoardSize {
		return 0, errors.ErrInvalidBoardSize
	}
	return size, nil
}

// expandPointList expands a single point or an "aa:cc" rectangle.
func expandPointList(v string) ([]goban.Intersection, error) {
	from, to, isRect := strings.Cut(v, ":")
	first, err := goban.FromSGF(from)
	if err != nil {
		return nil, err
	}
	if !isRect {
		return []goban.Intersection{first}, nil
	}
	last, err := goban.FromSGF(to)
	if err != nil {
		return nil, err
	}
	if last.Row < first.Row || last.Col < first.Col {
		return nil, fmt.Errorf("rectangle %q: %w", v, errors.ErrInvalidCoordinate)
	}
	var out []goban.Intersection
	for r := first.Row; r <= last.Row; r++ {
		for c := first.Col; c <= last.Col; c++ {
			out = append(out, goban.Intersection{Row: r, Col: c})
		}
	}
	return out, nil
}
