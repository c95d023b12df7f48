package parser

import (
	"encoding/json"
	"testing"
)

func TestNodeString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			"5 -> a;",
			`Program (ID: 1)
  Functions (ID: 2)
  Enums (ID: 3)
  Statements (ID: 4)
    Assignment (ID: 8)
      Literal (ID: 5): 5
      Variable (ID: 6)
        VariableName (ID: 7): a
`,
		},
		{
			"begin print(1); end",
			`Program (ID: 1)
  Functions (ID: 2)
  Enums (ID: 3)
  Statements (ID: 4)
    Block (ID: 5)
      Print (ID: 6)
        Literal (ID: 7): 1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			root, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := root.String(); got != tt.want {
				t.Errorf("tree mismatch:\ngot:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestNodeName(t *testing.T) {
	root, err := Parse([]byte("int x;"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Name() != "Program" {
		t.Errorf("root name = %q, want Program", root.Name())
	}
	decl := root.FindList("Statements").Children[0]
	if typ := decl.Children[0]; typ.Name() != "Type" {
		t.Errorf("type terminal name = %q, want Type", typ.Name())
	}
}

func TestMarshalJSONShape(t *testing.T) {
	expr, err := ParseExpression([]byte("a"))
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	data, err := json.Marshal(expr)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got["name"] != "Variable" || got["id"] != float64(1) {
		t.Errorf("root = %v", got)
	}
	children, ok := got["children"].([]any)
	if !ok || len(children) != 1 {
		t.Fatalf("expected one child, got %v", got["children"])
	}
	terminal := children[0].(map[string]any)
	if terminal["name"] != "VariableName" {
		t.Errorf("terminal name = %v", terminal["name"])
	}
	if _, hasChildren := terminal["children"]; hasChildren {
		t.Errorf("terminal must not have a children array: %v", terminal)
	}
	token, ok := terminal["token"].(map[string]any)
	if !ok {
		t.Fatalf("terminal has no token object: %v", terminal)
	}
	want := map[string]any{"type": "Identifier", "lexeme": "a", "line": float64(1), "col": float64(1)}
	for key, value := range want {
		if token[key] != value {
			t.Errorf("token[%s] = %v, want %v", key, token[key], value)
		}
	}
}

func TestJSONPreservesNesting(t *testing.T) {
	root, err := Parse([]byte("if (a < 10) print(1); or if (b) read(x); else 2 -> y; end"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, err := json.Marshal(root)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	var count func(node map[string]any) int
	count = func(node map[string]any) int {
		total := 1
		if children, ok := node["children"].([]any); ok {
			for _, child := range children {
				total += count(child.(map[string]any))
			}
		}
		return total
	}

	if got, want := count(generic), root.Count(); got != want {
		t.Errorf("JSON has %d nodes, tree has %d", got, want)
	}
}

func TestChildLookupHelpers(t *testing.T) {
	root, err := Parse([]byte("enum A { X }; print(1);"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.FindList("Enums") == nil {
		t.Error("FindList(Enums) = nil")
	}
	if root.FindList("NoSuchList") != nil {
		t.Error("FindList of unknown label should be nil")
	}
	if got := len(root.ChildrenOfKind(KindList)); got != 3 {
		t.Errorf("ChildrenOfKind(List) = %d, want 3", got)
	}
	if root.FirstChildOfKind(KindFunction) != nil {
		t.Error("FirstChildOfKind(Function) should be nil")
	}
}
