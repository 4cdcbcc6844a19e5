package sgf

// Builder assembles a collection programmatically. Property values are
// supplied as raw chunk text, exactly as they would appear between
// brackets in SGF. Nothing is validated until Finish, which runs the
// same pass as Parse and returns the first error it finds.
type Builder struct {
	trees []*TreeBuilder
}

// NewBuilder returns an empty collection builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Tree starts a new game tree in the collection.
func (b *Builder) Tree() *TreeBuilder {
	t := &TreeBuilder{}
	b.trees = append(b.trees, t)
	return t
}

// Finish validates everything added so far and returns the typed
// collection. Errors carry no input offset since there is no input text.
func (b *Builder) Finish() (Collection, error) {
	collection := make(Collection, 0, len(b.trees))
	for _, tb := range b.trees {
		rt, err := tb.build()
		if err != nil {
			return nil, err
		}
		tree, err := typecheckTree(rt)
		if err != nil {
			return nil, err
		}
		collection = append(collection, tree)
	}
	return collection, nil
}

// TreeBuilder assembles one game tree: a node sequence plus variations.
type TreeBuilder struct {
	nodes    []*NodeBuilder
	children []*TreeBuilder
}

// Node appends a node to the tree's sequence.
func (t *TreeBuilder) Node() *NodeBuilder {
	n := &NodeBuilder{}
	t.nodes = append(t.nodes, n)
	return n
}

// Variation starts a child variation of this tree.
func (t *TreeBuilder) Variation() *TreeBuilder {
	c := &TreeBuilder{}
	t.children = append(t.children, c)
	return c
}

func (t *TreeBuilder) build() (*rawTree, error) {
	if len(t.nodes) == 0 {
		return nil, newError(CodeEmptyGameTree, -1, "game tree contains no nodes")
	}
	rt := &rawTree{off: -1}
	for _, nb := range t.nodes {
		rn := rawNode{off: -1}
		for _, p := range nb.props {
			for _, q := range rn.props {
				if q.ident == p.ident {
					return nil, propError(CodeDuplicateProperty, p.ident, -1,
						"identifier appears twice in one node")
				}
			}
			rn.props = append(rn.props, p)
		}
		rt.nodes = append(rt.nodes, rn)
	}
	for _, cb := range t.children {
		child, err := cb.build()
		if err != nil {
			return nil, err
		}
		rt.children = append(rt.children, child)
	}
	return rt, nil
}

// NodeBuilder assembles one node's properties.
type NodeBuilder struct {
	props []rawProp
}

// Set adds a property with the given raw value chunks and returns the
// builder for chaining.
func (n *NodeBuilder) Set(ident string, chunks ...string) *NodeBuilder {
	p := rawProp{ident: ident, off: -1}
	for _, c := range chunks {
		p.chunks = append(p.chunks, rawChunk{text: c, off: -1})
	}
	n.props = append(n.props, p)
	return n
}
