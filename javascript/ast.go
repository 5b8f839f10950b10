package javascript

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Node is one element of the typed syntax tree. Every node knows its
// source span and its parent, which the member-expression matching in the
// analysis package relies on.
type Node interface {
	StartPoint() sitter.Point
	EndPoint() sitter.Point
	StartByte() uint32
	EndByte() uint32
	Parent() Node

	setParent(Node)
}

type baseNode struct {
	parent     Node
	startPoint sitter.Point
	endPoint   sitter.Point
	startByte  uint32
	endByte    uint32
}

func newBase(n *sitter.Node) baseNode {
	return baseNode{
		startPoint: n.StartPoint(),
		endPoint:   n.EndPoint(),
		startByte:  n.StartByte(),
		endByte:    n.EndByte(),
	}
}

func (b *baseNode) StartPoint() sitter.Point { return b.startPoint }
func (b *baseNode) EndPoint() sitter.Point   { return b.endPoint }
func (b *baseNode) StartByte() uint32        { return b.startByte }
func (b *baseNode) EndByte() uint32          { return b.endByte }
func (b *baseNode) Parent() Node             { return b.parent }
func (b *baseNode) setParent(p Node)         { b.parent = p }

// Content returns the source text a node spans.
func Content(n Node, src []byte) string {
	if n == nil {
		return ""
	}
	return string(src[n.StartByte():n.EndByte()])
}

type Program struct {
	baseNode
	Body []Node
}

type SpecifierKind int

const (
	SpecifierDefault SpecifierKind = iota
	SpecifierNamed
	SpecifierNamespace
)

// ImportSpecifier is one binding introduced by an import declaration.
// For named specifiers Imported is the exported name and Local the
// (possibly aliased) binding; for default and namespace specifiers only
// Local is meaningful.
type ImportSpecifier struct {
	Kind     SpecifierKind
	Imported string
	Local    string
}

type ImportDeclaration struct {
	baseNode
	Specifiers []ImportSpecifier
	Source     *Literal
}

type VariableDeclaration struct {
	baseNode
	Declarations []*VariableDeclarator
}

type VariableDeclarator struct {
	baseNode
	ID   Node
	Init Node
}

type ExpressionStatement struct {
	baseNode
	Expression Node
}

type CallExpression struct {
	baseNode
	Callee    Node
	Arguments []Node
}

// MemberExpression covers both dot access (a.b) and subscript access
// (a[b]); Computed distinguishes them.
type MemberExpression struct {
	baseNode
	Object   Node
	Property Node
	Computed bool
}

type Identifier struct {
	baseNode
	Name string
}

// Literal is a string, number, boolean, or null literal. Value carries
// the cooked form (string literals are unquoted), Raw the source text.
type Literal struct {
	baseNode
	Value string
	Raw   string
}

// TemplateLiteral keeps the static chunks and the interpolated
// expressions separately; a template with no expressions has exactly one
// quasi.
type TemplateLiteral struct {
	baseNode
	Quasis      []string
	Expressions []Node
}

type ObjectExpression struct {
	baseNode
	Properties []Node
}

type ObjectPattern struct {
	baseNode
	Properties []Node
}

type Property struct {
	baseNode
	Key       Node
	Value     Node
	Computed  bool
	Shorthand bool
}

type SpreadElement struct {
	baseNode
	Argument Node
}

// FunctionExpression is an anonymous or named function value, arrow or
// classic. For arrows with an expression body, Body is that expression;
// otherwise it is a *BlockStatement.
type FunctionExpression struct {
	baseNode
	Arrow  bool
	Params []Node
	Body   Node
}

type BlockStatement struct {
	baseNode
	Body []Node
}

type ReturnStatement struct {
	baseNode
	Argument Node
}

type ThisExpression struct {
	baseNode
}

// Unknown is the catch-all for syntax the analysis has no interest in.
// Its children are still converted so a walk reaches every expression in
// the file.
type Unknown struct {
	baseNode
	Kind     string
	Children []Node
}
