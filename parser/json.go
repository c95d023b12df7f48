package parser

import "encoding/json"

type jsonNode struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Token    *jsonToken  `json:"token,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonToken struct {
	Type   string `json:"type"`
	Lexeme string `json:"lexeme"`
	Line   int    `json:"line"`
	Col    int    `json:"col"`
}

// MarshalJSON renders the tree as nested objects. Every token-carrying
// leaf (Terminal, Literal, EnumValue, VarDeclItem) is rendered as its
// token object; "token" and "children" never appear together.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}

func (n *Node) toJSON() *jsonNode {
	jn := &jsonNode{
		ID:   n.ID,
		Name: n.Name(),
	}

	if n.Token != nil {
		jn.Token = &jsonToken{
			Type:   n.Token.Kind.String(),
			Lexeme: n.Token.Lexeme,
			Line:   n.Token.Pos.Line,
			Col:    n.Token.Pos.Column,
		}
		return jn
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*jsonNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = child.toJSON()
		}
	}

	return jn
}
