package sgf

import "testing"

func TestLookupProperty(t *testing.T) {
	tests := []struct {
		ident     string
		game      GameType
		known     bool
		kind      ValueKind
		card      Cardinality
		rootOnly  bool
		class     PropertyClass
	}{
		{"B", GameTypeGo, true, KindMove, CardSingle, false, ClassMove},
		{"AB", GameTypeGo, true, KindStone, CardList, false, ClassSetup},
		{"C", GameTypeGo, true, KindText, CardSingle, false, ClassNone},
		{"SZ", GameTypeGo, true, KindNumber, CardSingle, true, ClassRoot},
		{"DD", GameTypeGo, true, KindPoint, CardEList, false, ClassInherit},
		{"LB", GameTypeGo, true, KindCompose, CardList, false, ClassNone},
		{"PB", GameTypeGo, true, KindSimpleText, CardSingle, false, ClassGameInfo},
		{"KM", GameTypeGo, true, KindReal, CardSingle, false, ClassGameInfo},
		{"TB", GameTypeGo, true, KindPoint, CardEList, false, ClassNone},
		{"B", GameType(2), true, KindMove, CardSingle, false, ClassMove},
		{"KM", GameType(2), false, 0, 0, false, 0},
		{"ZZ", GameTypeGo, false, 0, 0, false, 0},
	}
	for _, tt := range tests {
		spec, ok := LookupProperty(tt.ident, tt.game)
		if ok != tt.known {
			t.Errorf("%s (game %d): known = %v, want %v", tt.ident, tt.game, ok, tt.known)
			continue
		}
		if !ok {
			continue
		}
		if spec.Type.Kind != tt.kind {
			t.Errorf("%s: kind = %v, want %v", tt.ident, spec.Type.Kind, tt.kind)
		}
		if spec.Cardinality != tt.card {
			t.Errorf("%s: cardinality = %v, want %v", tt.ident, spec.Cardinality, tt.card)
		}
		if spec.RootOnly != tt.rootOnly {
			t.Errorf("%s: rootOnly = %v, want %v", tt.ident, spec.RootOnly, tt.rootOnly)
		}
		if spec.Class != tt.class {
			t.Errorf("%s: class = %v, want %v", tt.ident, spec.Class, tt.class)
		}
	}
}

func TestLookupComposeHalves(t *testing.T) {
	spec, ok := LookupProperty("LB", GameTypeGo)
	if !ok {
		t.Fatal("LB not found")
	}
	if spec.Type.Sub != [2]ValueKind{KindPoint, KindSimpleText} {
		t.Errorf("LB halves = %v", spec.Type.Sub)
	}

	spec, _ = LookupProperty("SZ", GameTypeGo)
	if spec.Alt == nil || spec.Alt.Kind != KindCompose {
		t.Error("SZ has no compose alternate")
	}
}
