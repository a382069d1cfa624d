// Package ts models tree-sitter grammar expressions: the node vocabulary a
// generated grammar.js rule body is built from, structural equality over it,
// and the string rendering used in the generated rule set.
package ts

import (
	"fmt"
	"strings"
)

// Node is one element of a tree-sitter rule expression.
type Node interface {
	fmt.Stringer
	node()
}

// Raw is a literal terminal, rendered as a quoted string.
type Raw string

// Ref is a reference to another grammar rule, rendered as $.name.
type Ref string

// Seq matches its children in order.
type Seq []Node

// Choice matches any one of its children.
type Choice []Node

// Optional matches its inner node or nothing.
type Optional struct {
	Inner Node
}

// Repeat matches its inner node zero or more times.
type Repeat struct {
	Inner Node
}

// Repeat1 matches its inner node one or more times.
type Repeat1 struct {
	Inner Node
}

func (Raw) node()      {}
func (Ref) node()      {}
func (Seq) node()      {}
func (Choice) node()   {}
func (Optional) node() {}
func (Repeat) node()   {}
func (Repeat1) node()  {}

var rawEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

func (r Raw) String() string      { return "'" + rawEscaper.Replace(string(r)) + "'" }
func (r Ref) String() string      { return "$." + string(r) }
func (s Seq) String() string      { return "seq(" + joinNodes(s) + ")" }
func (c Choice) String() string   { return "choice(" + joinNodes(c) + ")" }
func (o Optional) String() string { return "optional(" + o.Inner.String() + ")" }
func (r Repeat) String() string   { return "repeat(" + r.Inner.String() + ")" }
func (r Repeat1) String() string  { return "repeat1(" + r.Inner.String() + ")" }

func joinNodes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ",")
}

// Equal reports whether two nodes are structurally identical.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case Raw:
		y, ok := b.(Raw)
		return ok && x == y
	case Ref:
		y, ok := b.(Ref)
		return ok && x == y
	case Seq:
		y, ok := b.(Seq)
		return ok && equalNodes(x, y)
	case Choice:
		y, ok := b.(Choice)
		return ok && equalNodes(x, y)
	case Optional:
		y, ok := b.(Optional)
		return ok && Equal(x.Inner, y.Inner)
	case Repeat:
		y, ok := b.(Repeat)
		return ok && Equal(x.Inner, y.Inner)
	case Repeat1:
		y, ok := b.(Repeat1)
		return ok && Equal(x.Inner, y.Inner)
	}
	panic(fmt.Sprintf("unknown node type %T", a))
}

func equalNodes(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// MatchesEmpty reports whether the node's language includes the empty string.
func MatchesEmpty(n Node) bool {
	switch x := n.(type) {
	case Raw, Ref:
		return false
	case Seq:
		for _, c := range x {
			if !MatchesEmpty(c) {
				return false
			}
		}
		return true
	case Choice:
		for _, c := range x {
			if MatchesEmpty(c) {
				return true
			}
		}
		return false
	case Optional, Repeat:
		return true
	case Repeat1:
		return MatchesEmpty(x.Inner)
	}
	panic(fmt.Sprintf("unknown node type %T", n))
}

// onlyEmpty reports whether the node can match nothing but the empty string.
func onlyEmpty(n Node) bool {
	switch x := n.(type) {
	case Raw, Ref:
		return false
	case Seq:
		for _, c := range x {
			if !onlyEmpty(c) {
				return false
			}
		}
		return true
	case Choice:
		if len(x) == 0 {
			return false
		}
		for _, c := range x {
			if !onlyEmpty(c) {
				return false
			}
		}
		return true
	case Optional:
		return onlyEmpty(x.Inner)
	case Repeat:
		return onlyEmpty(x.Inner)
	case Repeat1:
		return onlyEmpty(x.Inner)
	}
	panic(fmt.Sprintf("unknown node type %T", n))
}
