package format

import (
	"io"

	"github.com/dhamidi/riva/parser"
)

// TreeEncoder writes the hierarchical text rendering of a tree: one node
// per line as "<Name> (ID: <id>)", children indented two spaces deeper
// than their parent, token-carrying leaves with their lexeme inline.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(node *parser.Node) error {
	_, err := io.WriteString(e.w, node.String())
	return err
}
