// Package parser implements the front end of the Riva language: a
// single-pass lexer and a hand-written recursive-descent parser that
// turns source text into a syntax tree.
//
// # Overview
//
// Parsing is a pure function of the input: the same bytes always produce
// the same tree, including node identifiers, because the identifier
// counter is owned by the parse run rather than the process.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Parser    │
//	│  (bytes)    │     │  (tokens)   │     │   (tree)    │
//	└─────────────┘     └─────────────┘     └─────────────┘
//
// The lexer scans bytes with at most two characters of lookahead and
// produces a finite token sequence terminated by an EOF token. The
// parser walks that sequence with an explicit cursor (an index, never
// destructive consumption), so lookahead decisions such as telling
// "begin if" apart from a bare block are O(1) and no backtracking is
// ever needed.
//
// # The tree
//
// The tree is a closed set of node variants represented by one uniform
// Node struct tagged with a NodeKind. Children are ordered in source
// order. Names, operators and type markers appear as Terminal leaf nodes
// wrapping their token; homogeneous lists (parameters, enum values,
// arguments) are grouped under labelled List nodes. The tree is built
// bottom-up during parsing and never mutated afterwards; both renderers
// (Node.String and Node.MarshalJSON) are read-only.
//
// # Terminators
//
// The grammar's terminator rules are irregular and deliberately kept as
// independent, literal facts rather than generalized:
//
//   - "if" may close with a bare optional "end"
//   - "for" closes only with the exact pair "end for", also optional
//   - a function opened with "begin" must close with "end function",
//     but a block body supplies the "end" itself
//   - a function without "begin" may terminate implicitly
//   - an enum's trailing ";" is elided before another top-level construct
//   - "return" may drop its ";" before a block-closing "end"
//
// # Errors
//
// The parser is fail-fast: the first unmet expectation aborts the parse
// of the input unit and is returned as a *ParseError carrying the last
// successfully consumed token and the offending token. There is no
// recovery, no resynchronization, and no partial tree. Lexical errors
// surface as *LexError before parsing begins.
package parser
