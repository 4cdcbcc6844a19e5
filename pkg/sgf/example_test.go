package sgf_test

import (
	"fmt"

	"github.com/kifulab/sgfkit/pkg/sgf"
)

func ExampleParse() {
	collection, err := sgf.Parse("(;GM[1]FF[4]SZ[9]PB[Black]PW[White];B[ee];W[cc])")
	if err != nil {
		fmt.Println(err)
		return
	}

	game := collection[0]
	fmt.Println("board:", game.Size.Columns)
	fmt.Println("moves:", len(game.MainVariation())-1)

	player, _ := game.RootNode().Property("PB")
	name, _ := player.SimpleText()
	fmt.Println("black:", name)
	// Output:
	// board: 9
	// moves: 2
	// black: Black
}

func ExampleParse_invalid() {
	_, err := sgf.Parse("(;GM[1]SZ[9]B[jj])")
	fmt.Println(sgf.ErrorCode(err))
	// Output:
	// VALUE_POINT_OUT_OF_BOUNDS
}

func ExampleSerialize() {
	collection, _ := sgf.Parse("(;GM[1] FF[4]\n;B[tt])")
	fmt.Println(sgf.Serialize(collection))
	// Output:
	// (;GM[1]FF[4];B[])
}

func ExampleNewBuilder() {
	b := sgf.NewBuilder()
	tree := b.Tree()
	tree.Node().Set("GM", "1").Set("FF", "4").Set("SZ", "9")
	tree.Node().Set("B", "ee")

	collection, err := b.Finish()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sgf.Serialize(collection))
	// Output:
	// (;GM[1]FF[4]SZ[9];B[ee])
}

func ExampleLint() {
	collection, _ := sgf.Parse("(;GM[1]FF[4];B[aa]W[bb])")
	for _, issue := range sgf.Lint(collection) {
		fmt.Println(issue.Code)
	}
	// Output:
	// LINT_MULTIPLE_MOVES
}
