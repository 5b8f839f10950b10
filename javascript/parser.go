package javascript

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

func Parser() *sitter.Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	return parser
}

// Parse parses one source file and converts it into the typed tree.
// tree-sitter always yields a tree, errors and all, so malformed input
// degrades to partial structure rather than failing.
func Parse(content []byte) *Program {
	it := Parser()
	tree := it.Parse(nil, content)

	prog, ok := convert(tree.RootNode(), content).(*Program)
	if !ok {
		prog = &Program{baseNode: newBase(tree.RootNode())}
	}
	return prog
}
