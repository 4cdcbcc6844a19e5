package sgf

import (
	"reflect"
	"strings"
	"testing"
)

func TestSerializeCanonical(t *testing.T) {
	// Inputs already in canonical form come back byte for byte.
	tests := []struct {
		name  string
		input string
	}{
		{"simple game", "(;GM[1]FF[4]SZ[19];B[pd];W[dp])"},
		{"variations", "(;B[aa](;W[bb];B[cc])(;W[dd]))"},
		{"two games", "(;B[aa])(;W[bb])"},
		{"escapes", `(;C[a\]b\\c])`},
		{"unknown property", "(;ZZ[hello])"},
		{"unknown with escapes", `(;ZZ[a\]b])`},
		{"empty elist", "(;TB[])"},
		{"ko", "(;GM[1];B[aa]KO[])"},
		{"rectangular board", "(;SZ[9:13];B[ah])"},
		{"opaque coordinates", "(;GM[11]SZ[10]B[5-5])"},
		{"compose label", `(;LB[aa:with \: colon])`},
		{"game info", "(;FF[4]PB[Lee]PW[Gu]RE[B+2.5]KM[6.5])"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if got := Serialize(c); got != tt.input {
				t.Errorf("Serialize() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestSerializeNormalizes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"whitespace dropped", "  (;GM[1] FF[4]\n;B[aa])", "(;GM[1]FF[4];B[aa])"},
		{"tt pass becomes empty", "(;B[tt])", "(;B[])"},
		{"soft break unwrapped", "(;C[con\\\ntinued])", "(;C[continued])"},
		{"compressed list expands", "(;AB[aa:ba])", "(;AB[aa][ba])"},
		{"simpletext break collapses", "(;N[two\nlines])", "(;N[two lines])"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if got := Serialize(c); got != tt.want {
				t.Errorf("Serialize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"(;GM[1]FF[4]CA[UTF-8]SZ[19]PB[Black]PW[White];B[pd];W[dp];B[])",
		"(;B[aa](;W[bb](;B[cc])(;B[dd]))(;W[ee]))",
		"(;GM[2]AB[whatever-string]ZZ[opaque])",
		"(;C[hard\nbreak and \\] bracket])",
		"(;AB[aa:cc]AW[dd]TR[aa]LB[bb:label])",
		"(;FG[]GW[1])(;FF[4]AP[sgfkit:1.0]ST[2])",
	}
	for _, input := range inputs {
		c, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", input, err)
		}
		again, err := Parse(Serialize(c))
		if err != nil {
			t.Fatalf("reparse of %q error: %v", Serialize(c), err)
		}
		if !reflect.DeepEqual(c, again) {
			t.Errorf("round trip of %q changed the collection", input)
		}
	}
}

func TestSerializeWrapsText(t *testing.T) {
	long := strings.Repeat("a", 100)
	c, err := Parse("(;C[" + long + "])")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	out := SerializeOptions(c, WriteOptions{WrapColumn: 40})
	if !strings.Contains(out, "\\\n") {
		t.Fatal("wrapped output has no soft breaks")
	}
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 45 {
			t.Errorf("line longer than wrap column: %q", line)
		}
	}

	again, err := Parse(out)
	if err != nil {
		t.Fatalf("reparse error: %v", err)
	}
	if !reflect.DeepEqual(c, again) {
		t.Error("wrapping changed the collection")
	}
}

func TestSerializeBuiltCollection(t *testing.T) {
	b := NewBuilder()
	tree := b.Tree()
	tree.Node().Set("GM", "1").Set("FF", "4").Set("SZ", "9")
	tree.Node().Set("B", "ee")
	tree.Variation().Node().Set("W", "cc")
	tree.Variation().Node().Set("W", "gg")
	c, err := b.Finish()
	if err != nil {
		t.Fatalf("Finish() error: %v", err)
	}
	want := "(;GM[1]FF[4]SZ[9];B[ee](;W[cc])(;W[gg]))"
	if got := Serialize(c); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}
