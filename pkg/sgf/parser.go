package sgf

// Raw structures produced by the first parse pass. Value chunks stay
// unresolved until the typecheck pass knows the game and board size.
type rawChunk struct {
	text string
	off  int
}

type rawProp struct {
	ident  string
	off    int
	chunks []rawChunk
}

type rawNode struct {
	off   int
	props []rawProp
}

type rawTree struct {
	off      int
	nodes    []rawNode
	children []*rawTree
}

// Parse parses SGF text into a validated Collection. Parsing is strict:
// the first lexical, structural or value error aborts the whole parse
// and no partial collection is returned. Empty or all-whitespace input
// yields an empty collection.
func Parse(input string) (Collection, error) {
	roots, err := parseRaw(input)
	if err != nil {
		return nil, err
	}
	collection := make(Collection, 0, len(roots))
	for _, rt := range roots {
		tree, err := typecheckTree(rt)
		if err != nil {
			return nil, err
		}
		collection = append(collection, tree)
	}
	return collection, nil
}

// parseRaw assembles the token stream into raw game trees, enforcing the
// structural grammar: every tree holds at least one node before any
// variation, parentheses balance, and identifiers are unique per node.
// An explicit stack keeps deeply nested input off the call stack.
func parseRaw(input string) ([]*rawTree, error) {
	lx := newLexer(input)
	var (
		roots    []*rawTree
		stack    []*rawTree
		inValues bool // last token was an identifier or a value chunk
	)

	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}

		if tok.kind != tokenIdent && tok.kind != tokenValue {
			inValues = false
		}

		switch tok.kind {
		case tokenEOF:
			if len(stack) > 0 {
				open := stack[len(stack)-1]
				return nil, newError(CodeUnbalancedParens, open.off,
					"game tree opened at offset %d is never closed", open.off)
			}
			return roots, nil

		case tokenTreeOpen:
			t := &rawTree{off: tok.off}
			if len(stack) == 0 {
				roots = append(roots, t)
			} else {
				parent := stack[len(stack)-1]
				if len(parent.nodes) == 0 {
					return nil, newError(CodeEmptyGameTree, parent.off,
						"game tree has no nodes before a nested tree")
				}
				parent.children = append(parent.children, t)
			}
			stack = append(stack, t)

		case tokenTreeClose:
			if len(stack) == 0 {
				return nil, newError(CodeUnbalancedParens, tok.off, "unmatched ')'")
			}
			t := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(t.nodes) == 0 {
				return nil, newError(CodeEmptyGameTree, t.off, "game tree contains no nodes")
			}

		case tokenNodeStart:
			if len(stack) == 0 {
				return nil, newError(CodeUnexpectedToken, tok.off, "';' outside of a game tree")
			}
			t := stack[len(stack)-1]
			if len(t.children) > 0 {
				return nil, newError(CodeUnexpectedToken, tok.off,
					"node after a variation in the same tree")
			}
			t.nodes = append(t.nodes, rawNode{off: tok.off})

		case tokenIdent:
			node, err := currentNode(stack, tok.off)
			if err != nil {
				return nil, err
			}
			for _, p := range node.props {
				if p.ident == tok.text {
					return nil, propError(CodeDuplicateProperty, tok.text, tok.off,
						"identifier appears twice in one node")
				}
			}
			node.props = append(node.props, rawProp{ident: tok.text, off: tok.off})
			inValues = true

		case tokenValue:
			if !inValues {
				return nil, newError(CodeUnexpectedToken, tok.off,
					"value chunk without a property identifier")
			}
			node, err := currentNode(stack, tok.off)
			if err != nil {
				return nil, err
			}
			p := &node.props[len(node.props)-1]
			p.chunks = append(p.chunks, rawChunk{text: tok.text, off: tok.off})
		}
	}
}

// currentNode returns the node that properties at the given offset attach
// to: the last node of the innermost open tree.
func currentNode(stack []*rawTree, off int) (*rawNode, error) {
	if len(stack) == 0 {
		return nil, newError(CodeUnexpectedToken, off, "property outside of a game tree")
	}
	t := stack[len(stack)-1]
	if len(t.nodes) == 0 || len(t.children) > 0 {
		return nil, newError(CodeUnexpectedToken, off, "property outside of a node")
	}
	return &t.nodes[len(t.nodes)-1], nil
}
