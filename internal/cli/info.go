package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kifulab/sgfkit/pkg/sgf"
)

// gameNames maps common GM numbers to their names, per the FF[4] list.
var gameNames = map[sgf.GameType]string{
	1:  "Go",
	2:  "Othello",
	3:  "Chess",
	4:  "Gomoku+Renju",
	6:  "Backgammon",
	7:  "Chinese Chess",
	8:  "Shogi",
	11: "Hex",
	16: "Trax",
	18: "Amazons",
}

// infoOpts holds the command-line flags for the info command.
type infoOpts struct {
	charset string // force input charset, ignoring CA
}

// newInfoCmd creates the info command, which prints game information
// from the root nodes plus collection statistics.
func newInfoCmd() *cobra.Command {
	var opts infoOpts

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show game information from an SGF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg := configFromContext(c.Context())
			if opts.charset == "" {
				opts.charset = cfg.Charset
			}
			return runInfo(c.Context(), &opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.charset, "charset", "", "force input charset, ignoring CA")

	return cmd
}

func runInfo(ctx context.Context, opts *infoOpts, path string) error {
	text, err := readInput(path, opts.charset)
	if err != nil {
		return err
	}
	collection, err := sgf.Parse(text)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	for i, tree := range collection {
		if i > 0 {
			printNewline()
		}
		printTitle("Game %d", i+1)
		printGame(tree)
	}
	return nil
}

func printGame(tree *sgf.GameTree) {
	printKeyValue("Game", gameName(tree.Game))
	if tree.Size != (sgf.BoardSize{}) {
		printKeyValue("Board", fmt.Sprintf("%dx%d", tree.Size.Columns, tree.Size.Rows))
	}

	root := tree.RootNode()
	if players := playerLine(root, "PB", "BR"); players != "" {
		printKeyValue("Black", players)
	}
	if players := playerLine(root, "PW", "WR"); players != "" {
		printKeyValue("White", players)
	}
	for _, kv := range []struct{ label, ident string }{
		{"Result", "RE"},
		{"Date", "DT"},
		{"Event", "EV"},
		{"Rules", "RU"},
		{"Komi", "KM"},
		{"Handicap", "HA"},
	} {
		p, ok := root.Property(kv.ident)
		if !ok {
			continue
		}
		printKeyValue(kv.label, valueText(p.First()))
	}

	moves := 0
	for _, n := range tree.MainVariation() {
		if n.Has("B") || n.Has("W") {
			moves++
		}
	}
	printStats(tree.NodeCount(), moves)
}

// playerLine joins a player name with their rank, e.g. "Lee Sedol (9p)".
func playerLine(root *sgf.Node, nameIdent, rankIdent string) string {
	name, ok := root.Property(nameIdent)
	if !ok {
		return ""
	}
	line := valueText(name.First())
	if rank, ok := root.Property(rankIdent); ok {
		line += " (" + valueText(rank.First()) + ")"
	}
	return line
}

// valueText renders a single property value for display.
func valueText(v sgf.Value) string {
	switch x := v.(type) {
	case sgf.SimpleText:
		return string(x)
	case sgf.Text:
		return string(x)
	case sgf.Number:
		return fmt.Sprintf("%d", int64(x))
	case sgf.Real:
		return fmt.Sprintf("%g", float64(x))
	default:
		return fmt.Sprintf("%v", v)
	}
}

func gameName(g sgf.GameType) string {
	if name, ok := gameNames[g]; ok {
		return name
	}
	return fmt.Sprintf("game #%d", int(g))
}
