package parser

import "strconv"

type NodeKind int

const (
	KindProgram NodeKind = iota

	// Declarations
	KindEnum
	KindEnumValue
	KindFunction
	KindParam
	KindVarDecl
	KindVarDeclItem

	// Statements
	KindAssignment
	KindPrint
	KindRead
	KindIf
	KindOrIfBranch
	KindFor
	KindReturn
	KindBlock
	KindExpressionStatement

	// Expressions
	KindBinaryExpr
	KindUnaryExpr
	KindLiteral
	KindVariable
	KindCall

	// Synthetic nodes
	KindTerminal
	KindList
)

var nodeKindNames = map[NodeKind]string{
	KindProgram:             "Program",
	KindEnum:                "Enum",
	KindEnumValue:           "EnumValue",
	KindFunction:            "Function",
	KindParam:               "Param",
	KindVarDecl:             "VarDecl",
	KindVarDeclItem:         "VarDeclItem",
	KindAssignment:          "Assignment",
	KindPrint:               "Print",
	KindRead:                "Read",
	KindIf:                  "If",
	KindOrIfBranch:          "OrIfBranch",
	KindFor:                 "For",
	KindReturn:              "Return",
	KindBlock:               "Block",
	KindExpressionStatement: "ExpressionStatement",
	KindBinaryExpr:          "BinaryExpr",
	KindUnaryExpr:           "UnaryExpr",
	KindLiteral:             "Literal",
	KindVariable:            "Variable",
	KindCall:                "Call",
	KindTerminal:            "Terminal",
	KindList:                "List",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is one element of the syntax tree. Every node owns its children
// exclusively; the tree is never mutated after the parser returns it.
//
// ID is assigned by the parser at construction time, strictly increasing
// in construction order within one parse run. It exists for diagnostics
// and display only, never for equality or lookup.
//
// Terminal and List nodes carry a Label naming their role ("FunctionName",
// "Params", ...); for all other kinds Label is empty and the display name
// is the kind name. Leaf variants whose entire content is one lexical
// token (Literal, EnumValue, VarDeclItem, Terminal) hold it in Token.
type Node struct {
	ID       int
	Kind     NodeKind
	Label    string
	Token    *Token
	Children []*Node
}

// Name returns the display name of the node: the label for Terminal and
// List nodes, the variant name otherwise.
func (n *Node) Name() string {
	if n.Label != "" {
		return n.Label
	}
	return n.Kind.String()
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind NodeKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// FindList returns the List child with the given label, or nil.
func (n *Node) FindList(label string) *Node {
	for _, child := range n.Children {
		if child.Kind == KindList && child.Label == label {
			return child
		}
	}
	return nil
}

func (n *Node) TokenLexeme() string {
	if n.Token != nil {
		return n.Token.Lexeme
	}
	return ""
}

// Count returns the number of nodes in the subtree rooted at n,
// including n itself.
func (n *Node) Count() int {
	count := 1
	for _, child := range n.Children {
		count += child.Count()
	}
	return count
}

func (n *Node) String() string {
	return n.stringIndent(0)
}

func (n *Node) stringIndent(indent int) string {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	result := prefix + n.Name() + " (ID: " + strconv.Itoa(n.ID) + ")"
	if n.Token != nil && len(n.Children) == 0 {
		result += ": " + n.Token.Lexeme
	}
	result += "\n"

	for _, child := range n.Children {
		result += child.stringIndent(indent + 1)
	}
	return result
}
