package output

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lgbarn/sgf-extract-go/internal/errors"
	"github.com/lgbarn/sgf-extract-go/internal/goban"
)

const diagramTrailer = "\n\\begin{center}\n\\rotategobanright\n\\shortstack{\\showfullgoban \\\\ From move %d}\n\\end{center}\n\\cleargoban\n"

// Diagram renders a board with the igo LaTeX macros. Stones are listed
// column by column; stones played at or after move from carry their number.
// Moves in [from, last numbered move) whose stones have since been captured
// are listed under the diagram as "n at m" when another stone now occupies
// the point, or against a letter marked on the board when it is empty.
// moves maps move numbers to moves along the line leading to b.
func Diagram(b *goban.Board, from int, moves map[int]goban.Move) string {
	var sb strings.Builder
	numbered := make(map[int]bool)
	last := 0

	size := b.Size()
	for c := 0; c < size; c++ {
		for r := 0; r < size; r++ {
			p, _ := b.Point(r, c)
			if p.IsEmpty() {
				continue
			}
			label := goban.Intersection{Row: r, Col: c}.Label()
			if p.IsHandicap() {
				fmt.Fprintf(&sb, "\\black{%s}\n", label)
				continue
			}
			sb.WriteString(stoneMacro(p.Colour))
			if p.MoveNumber >= from {
				fmt.Fprintf(&sb, "[%d]", p.MoveNumber)
				numbered[p.MoveNumber] = true
			}
			fmt.Fprintf(&sb, "{%s}\n", label)
			last = max(last, p.MoveNumber)
		}
	}

	// captured moves grouped by the point they were played on
	captured := make(map[goban.Intersection][]int)
	for n := max(from, 1); n < last; n++ {
		if numbered[n] {
			continue
		}
		if m, ok := moves[n]; ok {
			captured[m.Intersection] = append(captured[m.Intersection], n)
		}
	}
	points := make([]goban.Intersection, 0, len(captured))
	for at := range captured {
		points = append(points, at)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Less(points[j]) })

	var notes strings.Builder
	letters := 0
	for _, at := range points {
		nums := make([]string, len(captured[at]))
		for i, n := range captured[at] {
			nums[i] = strconv.Itoa(n)
		}
		notes.WriteString(strings.Join(nums, ", "))
		notes.WriteString(" at ")

		if p, _ := b.At(at); p.Filled {
			notes.WriteString(strconv.Itoa(p.MoveNumber))
		} else {
			symbol := captureLabel(letters)
			letters++
			notes.WriteString(symbol)
			fmt.Fprintf(&sb, "\\gobansymbol{%s}{%s}\n", at.Label(), symbol)
		}
		notes.WriteString("\\\\\n")
	}

	fmt.Fprintf(&sb, diagramTrailer, from)
	sb.WriteString(notes.String())
	return sb.String()
}

// GameLaTeX renders the mainline as a series of diagrams, each adding step
// moves to the previous one.
func GameLaTeX(g *goban.Game, step int) (string, error) {
	if step < 1 {
		return "", fmt.Errorf("diagram step %d: %w", step, errors.ErrInvalidConfig)
	}
	line := g.Mainline()
	final := g.FinalMoveNumber()

	var sb strings.Builder
	for from := 0; from < final; from += step {
		// mainline index k holds move k: passes never create positions
		id := line[min(from+step, final)]
		b, err := g.Board(id)
		if err != nil {
			return "", err
		}
		moves, err := g.LineMoves(id)
		if err != nil {
			return "", err
		}
		sb.WriteString(Diagram(b, from, moves))
	}
	return sb.String(), nil
}

func stoneMacro(c goban.Colour) string {
	if c == goban.White {
		return "\\white"
	}
	return "\\black"
}

// captureLabel returns the i-th board marker: A..T, then AA, AB and so on.
func captureLabel(i int) string {
	const letters = "ABCDEFGHIJKLMNOPQRST"
	var out []byte
	for i++; i > 0; i /= len(letters) {
		i--
		out = append([]byte{letters[i%len(letters)]}, out...)
	}
	return string(out)
}
