package sgf

import (
	"strconv"
	"strings"
)

// ValueKind identifies the FF[4] value type of a property value.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindNumber
	KindReal
	KindDouble
	KindColor
	KindSimpleText
	KindText
	KindPoint
	KindMove
	KindStone
	KindCompose
	KindUnknown
)

// String returns the FF[4] name of the value kind.
func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNumber:
		return "Number"
	case KindReal:
		return "Real"
	case KindDouble:
		return "Double"
	case KindColor:
		return "Color"
	case KindSimpleText:
		return "SimpleText"
	case KindText:
		return "Text"
	case KindPoint:
		return "Point"
	case KindMove:
		return "Move"
	case KindStone:
		return "Stone"
	case KindCompose:
		return "Compose"
	case KindUnknown:
		return "Unknown"
	default:
		return "Invalid"
	}
}

// Value is a typed SGF property value. The concrete types are the closed
// set defined in this package: [None], [Number], [Real], [Double], [Color],
// [SimpleText], [Text], [Point], [Stone], [Move], [Opaque], [Compose] and
// [Unknown].
type Value interface {
	Kind() ValueKind

	// encode appends the bracket-chunk encoding of the value to b.
	// inCompose requests ':' escaping for text halves of a compose value.
	encode(b *strings.Builder, inCompose bool)
}

// None is the value of properties that carry no payload, such as KO.
type None struct{}

func (None) Kind() ValueKind                   { return KindNone }
func (None) encode(b *strings.Builder, _ bool) {}

// Number is an FF[4] Number: an integer with optional sign.
type Number int64

func (Number) Kind() ValueKind { return KindNumber }
func (n Number) encode(b *strings.Builder, _ bool) {
	b.WriteString(strconv.FormatInt(int64(n), 10))
}

// Real is an FF[4] Real: a decimal number with optional fraction.
type Real float64

func (Real) Kind() ValueKind { return KindReal }
func (r Real) encode(b *strings.Builder, _ bool) {
	b.WriteString(strconv.FormatFloat(float64(r), 'f', -1, 64))
}

// Double is an FF[4] Double: 1 for normal, 2 for emphasized.
type Double int

const (
	DoubleNormal     Double = 1
	DoubleEmphasized Double = 2
)

func (Double) Kind() ValueKind { return KindDouble }
func (d Double) encode(b *strings.Builder, _ bool) {
	b.WriteString(strconv.Itoa(int(d)))
}

// Color is an FF[4] Color: Black or White.
type Color int

const (
	Black Color = iota + 1
	White
)

func (Color) Kind() ValueKind { return KindColor }

// String returns the SGF token for the color ("B" or "W").
func (c Color) String() string {
	if c == Black {
		return "B"
	}
	return "W"
}

func (c Color) encode(b *strings.Builder, _ bool) {
	b.WriteString(c.String())
}

// SimpleText is decoded FF[4] SimpleText: no line breaks, escapes resolved.
type SimpleText string

func (SimpleText) Kind() ValueKind { return KindSimpleText }
func (s SimpleText) encode(b *strings.Builder, inCompose bool) {
	b.WriteString(escapeText(string(s), inCompose))
}

// Text is decoded FF[4] Text: hard line breaks preserved as '\n',
// soft breaks and escapes resolved.
type Text string

func (Text) Kind() ValueKind { return KindText }
func (t Text) encode(b *strings.Builder, inCompose bool) {
	b.WriteString(escapeText(string(t), inCompose))
}

// Point is a board intersection for games with the Go coordinate encoding.
// Coordinates are zero-based from the upper left corner; the letter pair
// "aa" is (0, 0).
type Point struct {
	X, Y int
}

// String returns the SGF letter pair for the point.
func (p Point) String() string {
	return string([]byte{pointLetter(p.X), pointLetter(p.Y)})
}

func (Point) Kind() ValueKind { return KindPoint }
func (p Point) encode(b *strings.Builder, _ bool) {
	b.WriteByte(pointLetter(p.X))
	b.WriteByte(pointLetter(p.Y))
}

// Stone is a placed stone for games with the Go coordinate encoding.
// For Go it is encoded exactly like a Point.
type Stone Point

func (Stone) Kind() ValueKind { return KindStone }
func (s Stone) encode(b *strings.Builder, _ bool) {
	b.WriteByte(pointLetter(s.X))
	b.WriteByte(pointLetter(s.Y))
}

// Move is a played move for games with the Go coordinate encoding.
// A pass has Pass set and no meaningful coordinates.
type Move struct {
	Pass bool
	X, Y int
}

// Pass is the pass move.
var Pass = Move{Pass: true}

func (Move) Kind() ValueKind { return KindMove }
func (m Move) encode(b *strings.Builder, _ bool) {
	if m.Pass {
		return
	}
	b.WriteByte(pointLetter(m.X))
	b.WriteByte(pointLetter(m.Y))
}

// Opaque is a Point, Move or Stone value of a game without a registered
// coordinate encoding. The raw chunk text is preserved untouched, so
// serialization reproduces the input byte for byte.
type Opaque struct {
	K   ValueKind // KindPoint, KindMove or KindStone
	Raw string    // chunk text, escape sequences intact
}

func (o Opaque) Kind() ValueKind { return o.K }
func (o Opaque) encode(b *strings.Builder, _ bool) {
	b.WriteString(o.Raw)
}

// Compose is a pair of values joined by ':'.
type Compose struct {
	Left, Right Value
}

func (Compose) Kind() ValueKind { return KindCompose }
func (c Compose) encode(b *strings.Builder, _ bool) {
	c.Left.encode(b, true)
	b.WriteByte(':')
	c.Right.encode(b, true)
}

// Unknown is the value of a property whose identifier is not in the
// registry. The raw chunk text is preserved verbatim, escapes intact.
type Unknown string

func (Unknown) Kind() ValueKind { return KindUnknown }
func (u Unknown) encode(b *strings.Builder, _ bool) {
	b.WriteString(string(u))
}

// pointLetter encodes a zero-based coordinate as an SGF letter:
// 0-25 map to 'a'-'z' and 26-51 to 'A'-'Z'.
func pointLetter(i int) byte {
	if i < 26 {
		return byte('a' + i)
	}
	return byte('A' + i - 26)
}

// pointCoord decodes an SGF coordinate letter, returning -1 for
// anything outside a-z and A-Z.
func pointCoord(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 26
	default:
		return -1
	}
}

// decodeText resolves escape sequences and whitespace in a raw chunk.
// Escaped line breaks (soft breaks) are removed. Unescaped line breaks
// become '\n' for Text and ' ' for SimpleText; CR LF and LF CR pairs
// count as a single break. Other whitespace becomes a single space.
func decodeText(raw string, simple bool) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '\\':
			if i+1 >= len(raw) {
				break
			}
			i++
			next := raw[i]
			if next == '\n' || next == '\r' {
				// Soft break: removed entirely.
				if i+1 < len(raw) && (raw[i+1] == '\n' || raw[i+1] == '\r') && raw[i+1] != next {
					i++
				}
				continue
			}
			b.WriteByte(next)
		case c == '\n' || c == '\r':
			if i+1 < len(raw) && (raw[i+1] == '\n' || raw[i+1] == '\r') && raw[i+1] != c {
				i++
			}
			if simple {
				b.WriteByte(' ')
			} else {
				b.WriteByte('\n')
			}
		case c == '\t' || c == '\v' || c == '\f':
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// escapeText encodes decoded text back into chunk form, escaping '\' and
// ']' and, inside compose halves, ':'. Line breaks pass through as hard
// breaks.
func escapeText(s string, inCompose bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' || c == ']':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == ':' && inCompose:
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// splitCompose splits a raw chunk at the first unescaped ':'.
// The returned halves keep their escape sequences intact.
func splitCompose(raw string) (left, right string, ok bool) {
	escaped := false
	for i := 0; i < len(raw); i++ {
		switch {
		case escaped:
			escaped = false
		case raw[i] == '\\':
			escaped = true
		case raw[i] == ':':
			return raw[:i], raw[i+1:], true
		}
	}
	return "", "", false
}

// hasUnescapedColon reports whether raw contains a ':' outside an escape.
func hasUnescapedColon(raw string) bool {
	_, _, ok := splitCompose(raw)
	return ok
}
