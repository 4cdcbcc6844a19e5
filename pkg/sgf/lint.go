package sgf

import "fmt"

// Lint issue codes. Lint checks are advisory: they flag nodes that are
// semantically dubious under FF[4] but still parse.
const (
	CodeLintMultipleMoves             Code = "LINT_MULTIPLE_MOVES"
	CodeLintSetupAndMove              Code = "LINT_SETUP_AND_MOVE"
	CodeLintKoWithoutMove             Code = "LINT_KO_WITHOUT_MOVE"
	CodeLintMultipleMoveAnnotations   Code = "LINT_MULTIPLE_MOVE_ANNOTATIONS"
	CodeLintMoveAnnotationWithoutMove Code = "LINT_MOVE_ANNOTATION_WITHOUT_MOVE"
	CodeLintExclusiveAnnotations      Code = "LINT_EXCLUSIVE_ANNOTATIONS"
	CodeLintRepeatedMarkup            Code = "LINT_REPEATED_MARKUP"
	CodeLintNestedGameInfo            Code = "LINT_NESTED_GAME_INFO"
)

var (
	moveAnnotationIdents = []string{"BM", "DO", "IT", "TE"}
	nodeAnnotationIdents = []string{"DM", "UC", "GW", "GB"}
	setupIdents          = []string{"AB", "AW", "AE", "PL"}
	markupIdents         = []string{"CR", "MA", "SL", "SQ", "TR"}
)

// LintIssue is one advisory finding.
type LintIssue struct {
	Code    Code
	Message string
}

func (i LintIssue) String() string {
	return fmt.Sprintf("%s: %s", i.Code, i.Message)
}

// Lint walks a collection and reports nodes that break FF[4] usage
// rules which strict parsing does not enforce: two moves in one node,
// setup mixed with moves, KO or move annotations without a move,
// conflicting annotations, repeated markup, and game-info properties
// spread over more than one node of a game.
func Lint(c Collection) []LintIssue {
	var issues []LintIssue
	for gi, t := range c {
		w := &lintWalker{game: gi + 1, gameType: t.Game}
		w.tree(t, false, &issues)
	}
	return issues
}

type lintWalker struct {
	game     int
	gameType GameType
	node     int
}

func (w *lintWalker) tree(t *GameTree, sawGameInfo bool, issues *[]LintIssue) {
	for _, n := range t.Nodes {
		w.node++
		sawGameInfo = w.check(n, sawGameInfo, issues)
	}
	for _, child := range t.Children {
		w.tree(child, sawGameInfo, issues)
	}
}

// check lints one node and reports whether the path down to it now
// carries game-info properties.
func (w *lintWalker) check(n *Node, sawGameInfo bool, issues *[]LintIssue) bool {
	report := func(code Code, format string, args ...any) {
		*issues = append(*issues, LintIssue{
			Code:    code,
			Message: fmt.Sprintf("game %d, node %d: %s", w.game, w.node, fmt.Sprintf(format, args...)),
		})
	}

	hasBlack, hasWhite := n.Has("B"), n.Has("W")
	hasMove := hasBlack || hasWhite
	if hasBlack && hasWhite {
		report(CodeLintMultipleMoves, "B and W in the same node")
	}

	for _, ident := range setupIdents {
		if n.Has(ident) && hasMove {
			report(CodeLintSetupAndMove, "setup property %s mixed with a move", ident)
			break
		}
	}

	if n.Has("KO") && !hasMove {
		report(CodeLintKoWithoutMove, "KO without a move")
	}

	annotations := 0
	for _, ident := range moveAnnotationIdents {
		if n.Has(ident) {
			annotations++
		}
	}
	if annotations > 1 {
		report(CodeLintMultipleMoveAnnotations, "%d move annotations in one node", annotations)
	}
	if annotations > 0 && !hasMove {
		report(CodeLintMoveAnnotationWithoutMove, "move annotation without a move")
	}

	exclusive := 0
	for _, ident := range nodeAnnotationIdents {
		if n.Has(ident) {
			exclusive++
		}
	}
	if exclusive > 1 {
		report(CodeLintExclusiveAnnotations, "DM, UC, GW and GB are mutually exclusive")
	}

	marked := make(map[Point]string)
	for _, ident := range markupIdents {
		p, ok := n.Property(ident)
		if !ok {
			continue
		}
		for _, v := range p.Values {
			pt, ok := v.(Point)
			if !ok {
				continue
			}
			if prev, dup := marked[pt]; dup {
				report(CodeLintRepeatedMarkup, "point %s marked by both %s and %s", pt, prev, ident)
			} else {
				marked[pt] = ident
			}
		}
	}

	hasGameInfo := false
	for _, p := range n.Properties {
		if spec, ok := LookupProperty(p.Ident, w.gameType); ok && spec.Class == ClassGameInfo {
			hasGameInfo = true
			break
		}
	}
	if hasGameInfo && sawGameInfo {
		report(CodeLintNestedGameInfo, "game-info properties in more than one node on this path")
	}
	return sawGameInfo || hasGameInfo
}
