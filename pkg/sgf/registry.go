package sgf

import "math"

// Cardinality says how many value chunks a property accepts.
type Cardinality int

const (
	CardSingle Cardinality = iota // exactly one
	CardList                      // one or more
	CardEList                     // zero or more; a single empty chunk means zero
)

// PropertyClass is the FF[4] property type: move, setup, root, game-info
// or inherit. Properties without one of those types have ClassNone.
type PropertyClass int

const (
	ClassNone PropertyClass = iota
	ClassMove
	ClassSetup
	ClassRoot
	ClassGameInfo
	ClassInherit
)

// ValueType describes the shape of one value chunk. Sub holds the two
// halves when Kind is KindCompose.
type ValueType struct {
	Kind ValueKind
	Sub  [2]ValueKind
}

func scalar(k ValueKind) ValueType { return ValueType{Kind: k} }

func compose(left, right ValueKind) ValueType {
	return ValueType{Kind: KindCompose, Sub: [2]ValueKind{left, right}}
}

// PropertySpec is the registry entry for a property identifier.
type PropertySpec struct {
	Type        ValueType
	Alt         *ValueType // alternate shape, selected by an unescaped ':' in the chunk
	Cardinality Cardinality
	RootOnly    bool
	Class       PropertyClass
	AllowEmpty  bool      // an empty chunk stands for "no value" (FG)
	Range       *[2]int64 // inclusive bounds for Number values
}

func rng(lo, hi int64) *[2]int64 { return &[2]int64{lo, hi} }

var sizeCompose = compose(KindNumber, KindNumber)

// generalProperties is the FF[4] property table that applies to every game.
var generalProperties = map[string]PropertySpec{
	// Move
	"B":  {Type: scalar(KindMove), Class: ClassMove},
	"KO": {Type: scalar(KindNone), Class: ClassMove},
	"MN": {Type: scalar(KindNumber), Class: ClassMove},
	"W":  {Type: scalar(KindMove), Class: ClassMove},

	// Setup
	"AB": {Type: scalar(KindStone), Cardinality: CardList, Class: ClassSetup},
	"AE": {Type: scalar(KindPoint), Cardinality: CardList, Class: ClassSetup},
	"AW": {Type: scalar(KindStone), Cardinality: CardList, Class: ClassSetup},
	"PL": {Type: scalar(KindColor), Class: ClassSetup},

	// Node annotation
	"C":  {Type: scalar(KindText)},
	"DM": {Type: scalar(KindDouble)},
	"GB": {Type: scalar(KindDouble)},
	"GW": {Type: scalar(KindDouble)},
	"HO": {Type: scalar(KindDouble)},
	"N":  {Type: scalar(KindSimpleText)},
	"UC": {Type: scalar(KindDouble)},
	"V":  {Type: scalar(KindReal)},

	// Move annotation
	"BM": {Type: scalar(KindDouble)},
	"DO": {Type: scalar(KindNone)},
	"IT": {Type: scalar(KindNone)},
	"TE": {Type: scalar(KindDouble)},

	// Markup
	"AR": {Type: compose(KindPoint, KindPoint), Cardinality: CardList},
	"CR": {Type: scalar(KindPoint), Cardinality: CardList},
	"DD": {Type: scalar(KindPoint), Cardinality: CardEList, Class: ClassInherit},
	"LB": {Type: compose(KindPoint, KindSimpleText), Cardinality: CardList},
	"LN": {Type: compose(KindPoint, KindPoint), Cardinality: CardList},
	"MA": {Type: scalar(KindPoint), Cardinality: CardList},
	"SL": {Type: scalar(KindPoint), Cardinality: CardList},
	"SQ": {Type: scalar(KindPoint), Cardinality: CardList},
	"TR": {Type: scalar(KindPoint), Cardinality: CardList},

	// Root
	"AP": {Type: compose(KindSimpleText, KindSimpleText), RootOnly: true, Class: ClassRoot},
	"CA": {Type: scalar(KindSimpleText), RootOnly: true, Class: ClassRoot},
	"FF": {Type: scalar(KindNumber), RootOnly: true, Class: ClassRoot, Range: rng(1, 4)},
	"GM": {Type: scalar(KindNumber), RootOnly: true, Class: ClassRoot},
	"ST": {Type: scalar(KindNumber), RootOnly: true, Class: ClassRoot, Range: rng(0, 3)},
	"SZ": {Type: scalar(KindNumber), Alt: &sizeCompose, RootOnly: true, Class: ClassRoot},

	// Game info
	"AN": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"BR": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"BT": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"CP": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"DT": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"EV": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"GC": {Type: scalar(KindText), Class: ClassGameInfo},
	"GN": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"ON": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"OT": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"PB": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"PC": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"PW": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"RE": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"RO": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"RU": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"SO": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"TM": {Type: scalar(KindReal), Class: ClassGameInfo},
	"US": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"WR": {Type: scalar(KindSimpleText), Class: ClassGameInfo},
	"WT": {Type: scalar(KindSimpleText), Class: ClassGameInfo},

	// Timing
	"BL": {Type: scalar(KindReal)},
	"OB": {Type: scalar(KindNumber)},
	"OW": {Type: scalar(KindNumber)},
	"WL": {Type: scalar(KindReal)},

	// Miscellaneous
	"FG": {Type: compose(KindNumber, KindSimpleText), AllowEmpty: true},
	"PM": {Type: scalar(KindNumber), Class: ClassInherit, Range: rng(1, 2)},
	"VW": {Type: scalar(KindPoint), Cardinality: CardEList, Class: ClassInherit},
}

// goProperties are the Go-specific properties layered over the general table.
var goProperties = map[string]PropertySpec{
	"HA": {Type: scalar(KindNumber), Class: ClassGameInfo, Range: rng(2, math.MaxInt64)},
	"KM": {Type: scalar(KindReal), Class: ClassGameInfo},
	"TB": {Type: scalar(KindPoint), Cardinality: CardEList},
	"TW": {Type: scalar(KindPoint), Cardinality: CardEList},
}

// LookupProperty returns the spec for a property identifier under the
// given game. Identifiers absent from both tables are unknown: their
// values are kept verbatim and never validated.
func LookupProperty(ident string, game GameType) (PropertySpec, bool) {
	if game.IsGo() {
		if spec, ok := goProperties[ident]; ok {
			return spec, true
		}
	}
	spec, ok := generalProperties[ident]
	return spec, ok
}
