// Package grammar holds the context-free grammar model produced by the Yacc
// parser and the transformation pipeline that turns it into tree-sitter rule
// expressions: nullability analysis, left/right recursion elimination, and
// conversion into ts nodes.
package grammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/yacc2treesitter/ts"
)

// TokenKind distinguishes terminal literals from rule references.
type TokenKind int

const (
	// Raw is a terminal: literal text matched verbatim.
	Raw TokenKind = iota
	// Name references another rule by name.
	Name
)

// Token is a single element of a production right-hand side. Tokens are
// immutable values; equality is ==.
type Token struct {
	Kind TokenKind
	Text string
}

// Lit returns a terminal token.
func Lit(s string) Token { return Token{Kind: Raw, Text: s} }

// Ref returns a rule-reference token.
func Ref(s string) Token { return Token{Kind: Name, Text: s} }

func (t Token) String() string {
	if t.Kind == Raw {
		return "'" + t.Text + "'"
	}
	return "$." + t.Text
}

// Variant is one alternative right-hand side of a production. An empty
// Variant is the empty production.
type Variant []Token

func (v Variant) String() string {
	parts := make([]string, len(v))
	for i, t := range v {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// Body is the closed union of rule body forms a Rule moves through during the
// pipeline: Cfg, LeftRec, RightRec and TsNode.
type Body interface {
	body()
}

// Cfg is the raw context-free form: an ordered list of alternatives.
type Cfg struct {
	Variants []Variant
}

// LeftRec is a left-recursive rule split into its non-recursive start
// variants and its repeat variants with the leading self-reference stripped.
// It reads as seq(choice(starts), repeat(choice(repeats))).
type LeftRec struct {
	Starts  []Variant
	Repeats []Variant
}

// RightRec is the dual of LeftRec: repeat variants with the trailing
// self-reference stripped, followed by the end variants. It reads as
// seq(repeat(choice(repeats)), choice(ends)).
type RightRec struct {
	Repeats []Variant
	Ends    []Variant
}

// TsNode is the terminal body form: a fully converted tree-sitter expression.
type TsNode struct {
	Node ts.Node
}

func (Cfg) body()      {}
func (LeftRec) body()  {}
func (RightRec) body() {}
func (TsNode) body()   {}

// Rule is a named production. The name stays fixed while the body is replaced
// as the rule moves through the pipeline.
type Rule struct {
	Name string
	Body Body
}

// String renders a converted rule in tree-sitter's generated-grammar form,
// <name>: ($) => <expr>, and unconverted bodies in a Yacc-like debug form.
func (r Rule) String() string {
	switch b := r.Body.(type) {
	case TsNode:
		return fmt.Sprintf("%s: ($) => %s,", r.Name, b.Node)
	case Cfg:
		alts := make([]string, len(b.Variants))
		for i, v := range b.Variants {
			alts[i] = v.String()
		}
		return fmt.Sprintf("%s : %s ;", r.Name, strings.Join(alts, " | "))
	}
	return fmt.Sprintf("%s : <%T> ;", r.Name, r.Body)
}
