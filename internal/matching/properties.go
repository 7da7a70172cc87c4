package matching

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/sgf-extract-go/internal/errors"
	"github.com/lgbarn/sgf-extract-go/internal/goban"
)

// Operator is a comparison applied to a game property.
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpLessThan
	OpLessOrEqual
	OpGreaterThan
	OpGreaterOrEqual
	OpContains // case-insensitive substring
	OpRegex
	OpSoundex
)

// AnyPlayer is the pseudo property matching either PB or PW.
const AnyPlayer = "_Player"

// Criterion compares one property of a game against a value.
type Criterion struct {
	Property string
	Value    string
	Operator Operator

	re      *regexp.Regexp
	soundex string
	lower   string
}

// PropertyMatcher selects games by their root properties.
type PropertyMatcher struct {
	criteria []*Criterion
	soundex  bool
	matchAll bool
}

// NewPropertyMatcher creates a matcher requiring every criterion to hold.
func NewPropertyMatcher() *PropertyMatcher {
	return &PropertyMatcher{matchAll: true}
}

// SetMatchAll chooses between AND (true) and OR (false) over the criteria.
func (pm *PropertyMatcher) SetMatchAll(all bool) { pm.matchAll = all }

// SetUseSoundex makes player criteria added afterwards compare by sound.
func (pm *PropertyMatcher) SetUseSoundex(use bool) { pm.soundex = use }

// AddCriterion adds a criterion. Property names are SGF identifiers such as
// PB, RE or DT, or AnyPlayer.
func (pm *PropertyMatcher) AddCriterion(property, value string, op Operator) error {
	if property == "" {
		return fmt.Errorf("empty property name: %w", errors.ErrInvalidCriterion)
	}
	c := &Criterion{Property: property, Value: value, Operator: op}
	switch op {
	case OpRegex:
		re, err := regexp.Compile(value)
		if err != nil {
			return fmt.Errorf("%s ~ %q: %v: %w", property, value, err, errors.ErrInvalidCriterion)
		}
		c.re = re
	case OpSoundex:
		c.soundex = Soundex(value)
	case OpContains:
		c.lower = strings.ToLower(value)
	}
	pm.criteria = append(pm.criteria, c)
	return nil
}

// AddPlayerCriterion matches games where either player's name contains the
// given text, or sounds like it when soundex matching is on.
func (pm *PropertyMatcher) AddPlayerCriterion(name string) {
	op := OpContains
	if pm.soundex {
		op = OpSoundex
	}
	_ = pm.AddCriterion(AnyPlayer, name, op) // cannot fail for these operators
}

var operators = []struct {
	text string
	op   Operator
}{
	{"<=", OpLessOrEqual},
	{">=", OpGreaterOrEqual},
	{"<>", OpNotEqual},
	{"!=", OpNotEqual},
	{"<", OpLessThan},
	{">", OpGreaterThan},
	{"=", OpEqual},
	{"~", OpRegex},
}

// ParseCriterion parses one criterion line such as
//
//	PB "Shusaku"
//	DT >= "1850-01-01"
//	RE ~ "^B\+"
//
// Blank lines and lines starting with # are ignored.
func (pm *PropertyMatcher) ParseCriterion(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	end := strings.IndexAny(line, " \t<>=!~")
	if end <= 0 {
		return fmt.Errorf("%q: %w", line, errors.ErrInvalidCriterion)
	}
	property := line[:end]
	rest := strings.TrimSpace(line[end:])

	op := OpEqual
	for _, o := range operators {
		if strings.HasPrefix(rest, o.text) {
			op = o.op
			rest = strings.TrimSpace(rest[len(o.text):])
			break
		}
	}
	if len(rest) >= 2 && rest[0] == '"' && rest[len(rest)-1] == '"' {
		rest = rest[1 : len(rest)-1]
	}
	return pm.AddCriterion(property, rest, op)
}

// MatchGame reports whether the game satisfies the criteria. A matcher with
// no criteria accepts every game.
func (pm *PropertyMatcher) MatchGame(g *goban.Game) bool {
	if len(pm.criteria) == 0 {
		return true
	}
	for _, c := range pm.criteria {
		if pm.matchCriterion(g, c) != pm.matchAll {
			return !pm.matchAll
		}
	}
	return pm.matchAll
}

// Match implements GameMatcher.
func (pm *PropertyMatcher) Match(g *goban.Game) bool { return pm.MatchGame(g) }

// Name implements GameMatcher.
func (pm *PropertyMatcher) Name() string { return "PropertyMatcher" }

// CriteriaCount returns the number of criteria.
func (pm *PropertyMatcher) CriteriaCount() int { return len(pm.criteria) }

func (pm *PropertyMatcher) matchCriterion(g *goban.Game, c *Criterion) bool {
	if c.Property == AnyPlayer {
		return c.matches(g.Player(goban.Black)) || c.matches(g.Player(goban.White))
	}
	value, ok := property(g, c.Property)
	if !ok {
		// only != matches a property the game does not have
		return c.Operator == OpNotEqual
	}
	return c.matches(value)
}

// property looks up a root property, reading the ones the game keeps as
// typed fields from those fields.
func property(g *goban.Game, name string) (string, bool) {
	var v string
	switch name {
	case "PB":
		v = g.Player(goban.Black)
	case "PW":
		v = g.Player(goban.White)
	case "BR":
		v = g.Rank(goban.Black)
	case "WR":
		v = g.Rank(goban.White)
	case "SZ":
		return strconv.Itoa(g.BoardSize()), true
	default:
		v = g.Info(name)
	}
	return v, v != ""
}

func (c *Criterion) matches(value string) bool {
	switch c.Operator {
	case OpEqual:
		return strings.EqualFold(value, c.Value)
	case OpNotEqual:
		return !strings.EqualFold(value, c.Value)
	case OpContains:
		return strings.Contains(strings.ToLower(value), c.lower)
	case OpRegex:
		return c.re.MatchString(value)
	case OpSoundex:
		return value != "" && Soundex(value) == c.soundex
	default:
		return compare(value, c.Value, c.Operator)
	}
}

// compare applies a relational operator, comparing as dates when both sides
// are dates, then as numbers, then as case-folded text.
func compare(value, against string, op Operator) bool {
	var cmp int
	if a, b := parseDate(value), parseDate(against); a > 0 && b > 0 {
		cmp = a - b
	} else if x, err1 := strconv.ParseFloat(value, 64); err1 == nil {
		if y, err2 := strconv.ParseFloat(against, 64); err2 == nil {
			switch {
			case x < y:
				cmp = -1
			case x > y:
				cmp = 1
			}
		} else {
			cmp = strings.Compare(strings.ToLower(value), strings.ToLower(against))
		}
	} else {
		cmp = strings.Compare(strings.ToLower(value), strings.ToLower(against))
	}

	switch op {
	case OpLessThan:
		return cmp < 0
	case OpLessOrEqual:
		return cmp <= 0
	case OpGreaterThan:
		return cmp > 0
	case OpGreaterOrEqual:
		return cmp >= 0
	}
	return false
}

// parseDate encodes the first date of an SGF DT value (YYYY-MM-DD, with
// month and day optional) as YYYYMMDD. Dotted dates are accepted too.
// It returns 0 when the value does not start with a year.
func parseDate(s string) int {
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	parts := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '-' || r == '.'
	})
	if len(parts) == 0 || len(parts[0]) != 4 {
		return 0
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}

	month, day := 1, 1
	if len(parts) > 1 {
		if m, err := strconv.Atoi(parts[1]); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}
	if len(parts) > 2 {
		if d, err := strconv.Atoi(parts[2]); err == nil && d >= 1 && d <= 31 {
			day = d
		}
	}
	return year*10000 + month*100 + day
}
