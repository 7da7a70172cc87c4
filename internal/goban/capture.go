package goban

const ungrouped = -1

// group is one maximal set of connected same-colour stones.
type group struct {
	colour    Colour
	members   []int
	liberties int
}

// removeCaptures finds every group on the board and clears the opposing
// groups that have no liberties. Groups of the colour just played are left
// alone even when they have none, so suicide is not rejected.
func (b *Board) removeCaptures(played Colour) []Intersection {
	groups := b.findGroups()

	var captured []int
	for _, g := range groups {
		if g.liberties == 0 && g.colour != played {
			captured = append(captured, g.members...)
		}
	}
	if len(captured) == 0 {
		return nil
	}

	for _, idx := range captured {
		b.points[idx] = Empty
	}

	// members are discovered in flood order; report them in board order
	removed := make([]bool, len(b.points))
	for _, idx := range captured {
		removed[idx] = true
	}
	out := make([]Intersection, 0, len(captured))
	for idx, gone := range removed {
		if gone {
			out = append(out, b.intersection(idx))
		}
	}
	return out
}

// findGroups partitions the stones into groups and counts each group's
// distinct liberties. Group ids live in a scratch slice, not on the board.
func (b *Board) findGroups() []group {
	groupOf := make([]int, len(b.points))
	for i := range groupOf {
		groupOf[i] = ungrouped
	}
	// libertyOwner[idx] is the last group that counted idx as a liberty
	libertyOwner := make([]int, len(b.points))
	for i := range libertyOwner {
		libertyOwner[i] = ungrouped
	}

	var groups []group
	var stack []int
	for start, p := range b.points {
		if !p.Filled || groupOf[start] != ungrouped {
			continue
		}

		id := len(groups)
		g := group{colour: p.Colour}
		groupOf[start] = id
		stack = append(stack[:0], start)

		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			g.members = append(g.members, idx)

			for _, n := range b.intersection(idx).Neighbours() {
				if !n.InBounds(b.size) {
					continue
				}
				nidx := b.index(n)
				np := b.points[nidx]
				switch {
				case !np.Filled:
					if libertyOwner[nidx] != id {
						libertyOwner[nidx] = id
						g.liberties++
					}
				case np.Colour == g.colour && groupOf[nidx] == ungrouped:
					groupOf[nidx] = id
					stack = append(stack, nidx)
				}
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// Liberties returns the number of distinct liberties of the group containing
// the stone at the intersection, or 0 for an empty or off-board point.
func (b *Board) Liberties(at Intersection) int {
	p, err := b.At(at)
	if err != nil || !p.Filled {
		return 0
	}
	target := b.index(at)
	for _, g := range b.findGroups() {
		for _, m := range g.members {
			if m == target {
				return g.liberties
			}
		}
	}
	return 0
}
