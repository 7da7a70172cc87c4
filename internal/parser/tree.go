package parser

// Property is one SGF property with all of its values.
type Property struct {
	Ident  string
	Values []string
	Line   int
}

// Node is one ';' node of a game tree.
type Node struct {
	Properties []Property
	Line       int
}

// Value returns the first value of the named property.
func (n *Node) Value(ident string) (string, bool) {
	for _, p := range n.Properties {
		if p.Ident == ident && len(p.Values) > 0 {
			return p.Values[0], true
		}
	}
	return "", false
}

// Values returns every value of the named property, across repeated
// occurrences in the node.
func (n *Node) Values(ident string) []string {
	var out []string
	for _, p := range n.Properties {
		if p.Ident == ident {
			out = append(out, p.Values...)
		}
	}
	return out
}

// GameTree is a sequence of nodes followed by its variations. The first
// variation continues the main line.
type GameTree struct {
	Nodes      []*Node
	Variations []*GameTree
	Line       int
}

// NodeCount returns the number of nodes in the tree, variations included.
func (t *GameTree) NodeCount() int {
	n := len(t.Nodes)
	for _, v := range t.Variations {
		n += v.NodeCount()
	}
	return n
}

// Root returns the first node of the tree, or nil for an empty tree.
func (t *GameTree) Root() *Node {
	if len(t.Nodes) == 0 {
		return nil
	}
	return t.Nodes[0]
}
