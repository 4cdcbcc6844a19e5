package sgf

import (
	"reflect"
	"testing"
)

func TestBuilderFinish(t *testing.T) {
	b := NewBuilder()
	tree := b.Tree()
	tree.Node().
		Set("GM", "1").
		Set("FF", "4").
		Set("SZ", "9").
		Set("PB", "Black")
	tree.Node().Set("B", "ee").Set("C", "opening")

	c, err := b.Finish()
	if err != nil {
		t.Fatalf("Finish() error: %v", err)
	}
	if len(c) != 1 || len(c[0].Nodes) != 2 {
		t.Fatalf("unexpected shape: %d games", len(c))
	}
	if c[0].Game != GameTypeGo || c[0].Size != (BoardSize{9, 9}) {
		t.Errorf("Game/Size = %v/%+v", c[0].Game, c[0].Size)
	}
	p, _ := c[0].Nodes[1].Property("B")
	if !reflect.DeepEqual(p.Values, []Value{Move{X: 4, Y: 4}}) {
		t.Errorf("B = %#v", p.Values)
	}
}

func TestBuilderValidates(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder)
		code  Code
	}{
		{
			"empty tree",
			func(b *Builder) { b.Tree() },
			CodeEmptyGameTree,
		},
		{
			"duplicate identifier",
			func(b *Builder) { b.Tree().Node().Set("B", "aa").Set("B", "bb") },
			CodeDuplicateProperty,
		},
		{
			"root property in later node",
			func(b *Builder) {
				tree := b.Tree()
				tree.Node().Set("GM", "1")
				tree.Node().Set("SZ", "9")
			},
			CodeRootPropertyMisplaced,
		},
		{
			"point off the board",
			func(b *Builder) { b.Tree().Node().Set("SZ", "9").Set("AB", "jj") },
			CodePointOutOfBounds,
		},
		{
			"missing value",
			func(b *Builder) { b.Tree().Node().Set("B") },
			CodeMissingValue,
		},
		{
			"empty variation",
			func(b *Builder) {
				tree := b.Tree()
				tree.Node().Set("B", "aa")
				tree.Variation()
			},
			CodeEmptyGameTree,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			tt.build(b)
			_, err := b.Finish()
			if err == nil {
				t.Fatal("Finish() succeeded, want error")
			}
			if !IsCode(err, tt.code) {
				t.Errorf("error code = %v, want %v (err: %v)", ErrorCode(err), tt.code, err)
			}
		})
	}
}

func TestBuilderErrorsHaveNoOffset(t *testing.T) {
	b := NewBuilder()
	b.Tree().Node().Set("SZ", "9").Set("B", "jj")
	_, err := b.Finish()
	if err == nil {
		t.Fatal("Finish() succeeded, want error")
	}
	var e *Error
	if !asErr(err, &e) {
		t.Fatal("not an *Error")
	}
	if e.Offset != -1 {
		t.Errorf("offset = %d, want -1", e.Offset)
	}
}
