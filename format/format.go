// Package format renders syntax trees produced by the parser package.
// Encoders are read-only consumers of the tree; they never mutate it.
package format

import "github.com/dhamidi/riva/parser"

type Encoder interface {
	Encode(node *parser.Node) error
}
