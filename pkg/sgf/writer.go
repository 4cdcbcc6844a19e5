package sgf

import "strings"

// WriteOptions controls serialization output.
type WriteOptions struct {
	// WrapColumn soft-wraps long Text values at roughly this column by
	// inserting escaped line breaks, which readers remove again.
	// Zero disables wrapping.
	WrapColumn int
}

// Serialize renders a collection back to SGF text. Escaping is minimal:
// '\' and ']' everywhere, plus ':' inside compose halves. Unknown and
// opaque values are emitted byte for byte as they were read, so a parsed
// collection round-trips.
func Serialize(c Collection) string {
	return SerializeOptions(c, WriteOptions{})
}

// SerializeOptions is Serialize with explicit options.
func SerializeOptions(c Collection, opts WriteOptions) string {
	var b strings.Builder
	for _, t := range c {
		writeTree(&b, t, opts)
	}
	return b.String()
}

func writeTree(b *strings.Builder, t *GameTree, opts WriteOptions) {
	b.WriteByte('(')
	for _, n := range t.Nodes {
		writeNode(b, n, opts)
	}
	for _, child := range t.Children {
		writeTree(b, child, opts)
	}
	b.WriteByte(')')
}

func writeNode(b *strings.Builder, n *Node, opts WriteOptions) {
	b.WriteByte(';')
	for _, p := range n.Properties {
		b.WriteString(p.Ident)
		if len(p.Values) == 0 {
			// Empty elist.
			b.WriteString("[]")
			continue
		}
		for _, v := range p.Values {
			b.WriteByte('[')
			if opts.WrapColumn > 0 && v.Kind() == KindText {
				var chunk strings.Builder
				v.encode(&chunk, false)
				b.WriteString(wrapChunk(chunk.String(), opts.WrapColumn))
			} else {
				v.encode(b, false)
			}
			b.WriteByte(']')
		}
	}
}

// wrapChunk inserts soft line breaks into an encoded chunk so no line
// exceeds col bytes. Breaks never split an escape pair, and lines that
// already break stay as they are.
func wrapChunk(enc string, col int) string {
	var b strings.Builder
	b.Grow(len(enc) + len(enc)/col*2)
	line := 0
	for i := 0; i < len(enc); i++ {
		c := enc[i]
		if c == '\n' {
			b.WriteByte(c)
			line = 0
			continue
		}
		if line >= col {
			b.WriteString("\\\n")
			line = 0
		}
		b.WriteByte(c)
		line++
		if c == '\\' && i+1 < len(enc) {
			// Keep the escape pair on one line.
			i++
			b.WriteByte(enc[i])
			line++
		}
	}
	return b.String()
}
