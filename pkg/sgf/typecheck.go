package sgf

import "strconv"

// typecheckTree resolves the game and board size from a raw tree's root
// node, then types and validates every property value in the tree.
func typecheckTree(rt *rawTree) (*GameTree, error) {
	game, err := resolveGame(rt)
	if err != nil {
		return nil, err
	}
	size, err := resolveSize(rt, game)
	if err != nil {
		return nil, err
	}
	ck := &checker{game: game, size: size}
	return ck.tree(rt, true)
}

// resolveGame reads GM from the root node. A missing GM means Go.
func resolveGame(rt *rawTree) (GameType, error) {
	for _, p := range rt.nodes[0].props {
		if p.ident != "GM" || len(p.chunks) == 0 {
			continue
		}
		c := p.chunks[0]
		n, err := strconv.ParseInt(c.text, 10, 64)
		if err != nil {
			return 0, propError(CodeInvalidNumber, "GM", c.off, "%q is not a number", c.text).withCause(err)
		}
		return GameType(n), nil
	}
	return GameTypeGo, nil
}

// resolveSize reads SZ from the root node. Go defaults to 19x19 and its
// dimensions must lie in 1..52; other games only require positive
// dimensions. A missing SZ leaves non-Go games without a board.
func resolveSize(rt *rawTree, game GameType) (BoardSize, error) {
	for _, p := range rt.nodes[0].props {
		if p.ident != "SZ" || len(p.chunks) == 0 {
			continue
		}
		c := p.chunks[0]
		size, err := parseSize(c)
		if err != nil {
			return BoardSize{}, err
		}
		maxDim := 1 << 30
		if game.IsGo() {
			maxDim = 52
		}
		if size.Columns < 1 || size.Rows < 1 || size.Columns > maxDim || size.Rows > maxDim {
			return BoardSize{}, propError(CodePointOutOfBounds, "SZ", c.off,
				"board size %dx%d is not valid", size.Columns, size.Rows)
		}
		return size, nil
	}
	if game.IsGo() {
		return defaultGoSize, nil
	}
	return BoardSize{}, nil
}

// parseSize parses an SZ chunk: a single number for square boards or a
// number:number compose for rectangular ones.
func parseSize(c rawChunk) (BoardSize, error) {
	left, right, ok := splitCompose(c.text)
	if !ok {
		n, err := strconv.ParseInt(c.text, 10, 64)
		if err != nil {
			return BoardSize{}, propError(CodeInvalidNumber, "SZ", c.off, "%q is not a number", c.text)
		}
		return BoardSize{Columns: int(n), Rows: int(n)}, nil
	}
	cols, err := strconv.ParseInt(left, 10, 64)
	if err != nil {
		return BoardSize{}, propError(CodeInvalidNumber, "SZ", c.off, "%q is not a number", left)
	}
	rows, err := strconv.ParseInt(right, 10, 64)
	if err != nil {
		return BoardSize{}, propError(CodeInvalidNumber, "SZ", c.off, "%q is not a number", right)
	}
	return BoardSize{Columns: int(cols), Rows: int(rows)}, nil
}

// checker types the property values of one game tree. The game and board
// size are fixed for the whole tree.
type checker struct {
	game GameType
	size BoardSize
}

func (ck *checker) tree(rt *rawTree, root bool) (*GameTree, error) {
	t := &GameTree{Game: ck.game, Size: ck.size}
	for i := range rt.nodes {
		node, err := ck.node(&rt.nodes[i], root && i == 0)
		if err != nil {
			return nil, err
		}
		t.Nodes = append(t.Nodes, node)
	}
	for _, child := range rt.children {
		ct, err := ck.tree(child, false)
		if err != nil {
			return nil, err
		}
		t.Children = append(t.Children, ct)
	}
	return t, nil
}

func (ck *checker) node(rn *rawNode, isRoot bool) (*Node, error) {
	node := &Node{}
	for i := range rn.props {
		prop, err := ck.prop(&rn.props[i], isRoot)
		if err != nil {
			return nil, err
		}
		node.Properties = append(node.Properties, prop)
	}
	return node, nil
}

// prop validates one raw property, in order: cardinality, per-chunk type
// parse, numeric range, root-only placement. Unknown identifiers skip
// validation entirely and keep their chunks verbatim.
func (ck *checker) prop(rp *rawProp, isRoot bool) (*Property, error) {
	if len(rp.chunks) == 0 {
		return nil, propError(CodeMissingValue, rp.ident, rp.off, "property has no value")
	}

	spec, known := LookupProperty(rp.ident, ck.game)
	if !known {
		values := make([]Value, 0, len(rp.chunks))
		for _, c := range rp.chunks {
			values = append(values, Unknown(c.text))
		}
		return &Property{Ident: rp.ident, Values: values}, nil
	}

	if spec.Cardinality == CardSingle && len(rp.chunks) > 1 {
		return nil, propError(CodeTooManyValues, rp.ident, rp.chunks[1].off,
			"property takes a single value, got %d", len(rp.chunks))
	}

	var values []Value
	switch {
	case spec.Cardinality == CardEList && len(rp.chunks) == 1 && rp.chunks[0].text == "":
		// Empty elist, e.g. DD[].
	case spec.AllowEmpty && len(rp.chunks) == 1 && rp.chunks[0].text == "":
		values = []Value{None{}}
	default:
		var err error
		values, err = ck.chunkValues(rp, spec)
		if err != nil {
			return nil, err
		}
	}

	if spec.Range != nil {
		for _, v := range values {
			n, ok := v.(Number)
			if ok && (int64(n) < spec.Range[0] || int64(n) > spec.Range[1]) {
				return nil, propError(CodeInvalidNumber, rp.ident, rp.off,
					"value %d is out of range", int64(n))
			}
		}
	}

	if spec.RootOnly && !isRoot {
		return nil, propError(CodeRootPropertyMisplaced, rp.ident, rp.off,
			"root property outside the root node")
	}

	return &Property{Ident: rp.ident, Values: values}, nil
}

// chunkValues parses each raw chunk of a property against its declared
// type. Go point and stone lists admit compressed rectangles, which
// expand here and must not repeat points already in the list.
func (ck *checker) chunkValues(rp *rawProp, spec PropertySpec) ([]Value, error) {
	elem := spec.Type
	isList := spec.Cardinality != CardSingle
	isGoPointList := isList && ck.game.IsGo() &&
		(elem.Kind == KindPoint || elem.Kind == KindStone)

	values := make([]Value, 0, len(rp.chunks))
	var seen map[Point]bool
	if isGoPointList {
		seen = make(map[Point]bool, len(rp.chunks))
	}

	addPoint := func(x, y int, c rawChunk) error {
		pt := Point{X: x, Y: y}
		if seen[pt] {
			return propError(CodeInvalidPoint, rp.ident, c.off,
				"point %c%c appears twice in the list", pointLetter(x), pointLetter(y))
		}
		seen[pt] = true
		if elem.Kind == KindStone {
			values = append(values, Stone(pt))
		} else {
			values = append(values, pt)
		}
		return nil
	}

	for _, c := range rp.chunks {
		if isGoPointList && hasUnescapedColon(c.text) {
			ul, lr, err := ck.pointRect(rp.ident, c)
			if err != nil {
				return nil, err
			}
			for y := ul.Y; y <= lr.Y; y++ {
				for x := ul.X; x <= lr.X; x++ {
					if err := addPoint(x, y, c); err != nil {
						return nil, err
					}
				}
			}
			continue
		}

		vt := elem
		if spec.Alt != nil && hasUnescapedColon(c.text) {
			vt = *spec.Alt
		}
		v, err := ck.value(vt, rp.ident, c)
		if err != nil {
			return nil, err
		}
		if isGoPointList {
			var pt Point
			switch x := v.(type) {
			case Point:
				pt = x
			case Stone:
				pt = Point(x)
			}
			if err := addPoint(pt.X, pt.Y, c); err != nil {
				return nil, err
			}
			continue
		}
		values = append(values, v)
	}
	return values, nil
}

// pointRect parses a compressed point list chunk "ul:lr" into its two
// corners, requiring ul to be the upper left one.
func (ck *checker) pointRect(ident string, c rawChunk) (ul, lr Point, err error) {
	left, right, _ := splitCompose(c.text)
	ulx, uly, err := ck.goCoords(ident, left, c.off)
	if err != nil {
		return Point{}, Point{}, err
	}
	lrx, lry, err := ck.goCoords(ident, right, c.off)
	if err != nil {
		return Point{}, Point{}, err
	}
	if ulx > lrx || uly > lry {
		return Point{}, Point{}, propError(CodeInvalidCompose, ident, c.off,
			"%q is not an upper-left:lower-right rectangle", c.text)
	}
	return Point{X: ulx, Y: uly}, Point{X: lrx, Y: lry}, nil
}

// value parses one chunk against a value type.
func (ck *checker) value(vt ValueType, ident string, c rawChunk) (Value, error) {
	switch vt.Kind {
	case KindNone:
		if c.text != "" {
			return nil, propError(CodeInvalidText, ident, c.off, "value must be empty")
		}
		return None{}, nil

	case KindNumber:
		n, err := strconv.ParseInt(c.text, 10, 64)
		if err != nil {
			return nil, propError(CodeInvalidNumber, ident, c.off, "%q is not a number", c.text).withCause(err)
		}
		return Number(n), nil

	case KindReal:
		if !validReal(c.text) {
			return nil, propError(CodeInvalidNumber, ident, c.off, "%q is not a decimal number", c.text)
		}
		f, err := strconv.ParseFloat(c.text, 64)
		if err != nil {
			return nil, propError(CodeInvalidNumber, ident, c.off, "%q is not a decimal number", c.text)
		}
		return Real(f), nil

	case KindDouble:
		switch c.text {
		case "1":
			return DoubleNormal, nil
		case "2":
			return DoubleEmphasized, nil
		}
		return nil, propError(CodeInvalidDouble, ident, c.off, "%q is not 1 or 2", c.text)

	case KindColor:
		switch c.text {
		case "B":
			return Black, nil
		case "W":
			return White, nil
		}
		return nil, propError(CodeInvalidColor, ident, c.off, "%q is not B or W", c.text)

	case KindSimpleText:
		return SimpleText(decodeText(c.text, true)), nil

	case KindText:
		return Text(decodeText(c.text, false)), nil

	case KindPoint, KindStone:
		if !ck.game.IsGo() {
			return Opaque{K: vt.Kind, Raw: c.text}, nil
		}
		x, y, err := ck.goCoords(ident, c.text, c.off)
		if err != nil {
			return nil, err
		}
		if vt.Kind == KindStone {
			return Stone{X: x, Y: y}, nil
		}
		return Point{X: x, Y: y}, nil

	case KindMove:
		if !ck.game.IsGo() {
			return Opaque{K: KindMove, Raw: c.text}, nil
		}
		if c.text == "" {
			return Pass, nil
		}
		if c.text == "tt" && ck.size.Columns <= 19 && ck.size.Rows <= 19 {
			return Pass, nil
		}
		x, y, err := ck.goCoords(ident, c.text, c.off)
		if err != nil {
			return nil, err
		}
		return Move{X: x, Y: y}, nil

	case KindCompose:
		left, right, ok := splitCompose(c.text)
		if !ok {
			return nil, propError(CodeInvalidCompose, ident, c.off, "%q has no ':' separator", c.text)
		}
		lv, err := ck.value(scalar(vt.Sub[0]), ident, rawChunk{text: left, off: c.off})
		if err != nil {
			return nil, err
		}
		rv, err := ck.value(scalar(vt.Sub[1]), ident, rawChunk{text: right, off: c.off + len(left) + 1})
		if err != nil {
			return nil, err
		}
		return Compose{Left: lv, Right: rv}, nil
	}
	return nil, propError(CodeInvalidText, ident, c.off, "unhandled value kind %v", vt.Kind)
}

// goCoords decodes a two-letter Go coordinate and checks board bounds.
func (ck *checker) goCoords(ident, raw string, off int) (x, y int, err error) {
	if len(raw) != 2 {
		return 0, 0, propError(CodeInvalidPoint, ident, off, "%q is not a letter pair", raw)
	}
	x, y = pointCoord(raw[0]), pointCoord(raw[1])
	if x < 0 || y < 0 {
		return 0, 0, propError(CodeInvalidPoint, ident, off, "%q is not a letter pair", raw)
	}
	if x >= ck.size.Columns || y >= ck.size.Rows {
		return 0, 0, propError(CodePointOutOfBounds, ident, off,
			"%q is outside the %dx%d board", raw, ck.size.Columns, ck.size.Rows)
	}
	return x, y, nil
}

// validReal checks the FF[4] Real grammar: optional sign, digits,
// optional fraction. Exponents and bare fractions are not allowed.
func validReal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return false
	}
	if i == len(s) {
		return true
	}
	if s[i] != '.' {
		return false
	}
	i++
	start = i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i == len(s) && i > start
}
