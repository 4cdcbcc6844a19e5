package sgf

// GameType is the game a tree records, taken from the root GM property.
// 1 is Go; any other number is a game this package has no coordinate
// encoding for, so its Point, Move and Stone values stay opaque.
type GameType int

// GameTypeGo is the GM number of Go.
const GameTypeGo GameType = 1

// IsGo reports whether the game uses the Go coordinate encoding.
func (g GameType) IsGo() bool { return g == GameTypeGo }

// BoardSize is the board dimensions from the root SZ property.
// Square boards have Columns == Rows.
type BoardSize struct {
	Columns, Rows int
}

// defaultGoSize is the FF[4] default board size for Go when SZ is absent.
var defaultGoSize = BoardSize{Columns: 19, Rows: 19}

// Collection is an ordered list of game trees, one per game in the input.
type Collection []*GameTree

// GameTree is one game tree: a non-empty node sequence followed by zero
// or more child variations. Game and Size are resolved from the root node
// during parsing (or Finish, for built trees) and apply to the whole tree.
type GameTree struct {
	Nodes    []*Node
	Children []*GameTree
	Game     GameType
	Size     BoardSize
}

// RootNode returns the first node of the tree.
func (t *GameTree) RootNode() *Node {
	return t.Nodes[0]
}

// MainVariation returns the nodes of the main line of play: the tree's
// own sequence followed, at each branch point, by the first child.
func (t *GameTree) MainVariation() []*Node {
	var nodes []*Node
	for t != nil {
		nodes = append(nodes, t.Nodes...)
		if len(t.Children) == 0 {
			break
		}
		t = t.Children[0]
	}
	return nodes
}

// NodeCount returns the total number of nodes in the tree, variations
// included.
func (t *GameTree) NodeCount() int {
	n := len(t.Nodes)
	for _, c := range t.Children {
		n += c.NodeCount()
	}
	return n
}

// Node is a single SGF node. Properties preserve input order and have
// unique identifiers within the node.
type Node struct {
	Properties []*Property
}

// Property returns the property with the given identifier, if present.
func (n *Node) Property(ident string) (*Property, bool) {
	for _, p := range n.Properties {
		if p.Ident == ident {
			return p, true
		}
	}
	return nil, false
}

// Has reports whether the node carries a property with the given identifier.
func (n *Node) Has(ident string) bool {
	_, ok := n.Property(ident)
	return ok
}

// Property is a property identifier with its ordered, typed values.
type Property struct {
	Ident  string
	Values []Value
}

// First returns the first value of the property. Most properties carry
// exactly one value.
func (p *Property) First() Value {
	if len(p.Values) == 0 {
		return None{}
	}
	return p.Values[0]
}

// Number returns the property's single value as an int64, if it is a Number.
func (p *Property) Number() (int64, bool) {
	n, ok := p.First().(Number)
	return int64(n), ok
}

// SimpleText returns the property's single value as a string, if it is a
// SimpleText.
func (p *Property) SimpleText() (string, bool) {
	s, ok := p.First().(SimpleText)
	return string(s), ok
}
