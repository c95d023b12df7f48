package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/riva/parser"
)

func mustParse(t *testing.T, input string) *parser.Node {
	t.Helper()
	root, err := parser.Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return root
}

func TestTreeEncoder(t *testing.T) {
	root := mustParse(t, "print(1);")

	var buf strings.Builder
	if err := NewTreeEncoder(&buf).Encode(root); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "Program (ID: 1)\n") {
		t.Errorf("output does not start with the program node:\n%s", out)
	}
	if !strings.Contains(out, "    Print (ID: 5)\n") {
		t.Errorf("print statement not indented under Statements:\n%s", out)
	}
	if !strings.Contains(out, "      Literal (ID: 6): 1\n") {
		t.Errorf("literal not rendered inline:\n%s", out)
	}
}

func TestJSONEncoder(t *testing.T) {
	root := mustParse(t, "5 -> a;")

	var buf strings.Builder
	if err := NewJSONEncoder(&buf).Encode(root); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Error("output does not end with a newline")
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if got["name"] != "Program" {
		t.Errorf("root name = %v, want Program", got["name"])
	}
}
