package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/riva/parser"
)

// JSONEncoder writes the tree as a single indented JSON value followed
// by a newline.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(node *parser.Node) error {
	text, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}
