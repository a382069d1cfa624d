package grammar

import (
	"fmt"

	"github.com/alecthomas/yacc2treesitter/ts"
)

// Convert builds the tree-sitter expression for a rule body. Empty variants
// are eliminated here: nullability has already been recorded in the global
// set, and it resurfaces either as optional wrapping on referencing tokens or
// as the start/repeat union below. The result is nil when no non-empty
// variant remains, in which case the pipeline drops the rule.
func Convert(r Rule, nullable Set) ts.Node {
	switch b := r.Body.(type) {
	case TsNode:
		return b.Node
	case Cfg:
		return choiceNode(b.Variants, nullable)
	case LeftRec:
		starts := b.Starts
		if nullable.Has(r.Name) {
			// The base case can be entirely empty, so a repeat variant must
			// also be matchable on its own as a start.
			starts = union(starts, b.Repeats)
		}
		return seqParts(choiceNode(starts, nullable), repeatNode(b.Repeats, nullable))
	case RightRec:
		ends := b.Ends
		if nullable.Has(r.Name) {
			ends = union(ends, b.Repeats)
		}
		return seqParts(repeatNode(b.Repeats, nullable), choiceNode(ends, nullable))
	}
	panic(fmt.Sprintf("unknown body type %T", r.Body))
}

func union(a, b []Variant) []Variant {
	out := make([]Variant, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// choiceNode converts a variant list into a choice over every expansion of
// every non-empty variant, or the single expansion when only one remains.
func choiceNode(variants []Variant, nullable Set) ts.Node {
	var nodes []ts.Node
	for _, v := range variants {
		nodes = append(nodes, variantNodes(v, nullable)...)
	}
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return nodes[0]
	}
	return ts.Choice(nodes)
}

// variantNodes expands one variant into its choice alternatives. A variant
// with no nullable reference converts to a single sequence. A variant
// containing nullable references is expanded position by position: the i-th
// alternative wraps the token at position i in optional when it is a nullable
// reference and otherwise leaves the variant untouched; overlapping coverage
// is left to choice-dedup.
func variantNodes(v Variant, nullable Set) []ts.Node {
	if len(v) == 0 {
		return nil
	}
	any := false
	for _, t := range v {
		if optionalRef(t, nullable) {
			any = true
			break
		}
	}
	if !any {
		return []ts.Node{variantNode(v, -1)}
	}
	nodes := make([]ts.Node, len(v))
	for i := range v {
		if optionalRef(v[i], nullable) {
			nodes[i] = variantNode(v, i)
		} else {
			nodes[i] = variantNode(v, -1)
		}
	}
	return nodes
}

func optionalRef(t Token, nullable Set) bool {
	return t.Kind == Name && nullable.Has(t.Text)
}

// variantNode converts a variant to a sequence, wrapping the token at
// position opt (if any) in optional.
func variantNode(v Variant, opt int) ts.Node {
	nodes := make([]ts.Node, len(v))
	for i, t := range v {
		n := tokenNode(t)
		if i == opt {
			n = ts.Optional{Inner: n}
		}
		nodes[i] = n
	}
	if len(nodes) == 1 {
		return nodes[0]
	}
	return ts.Seq(nodes)
}

func tokenNode(t Token) ts.Node {
	switch t.Kind {
	case Raw:
		return ts.Raw(t.Text)
	case Name:
		return ts.Ref(t.Text)
	}
	panic(fmt.Sprintf("unknown token kind %d", t.Kind))
}

func repeatNode(repeats []Variant, nullable Set) ts.Node {
	n := choiceNode(repeats, nullable)
	if n == nil {
		return nil
	}
	return ts.Repeat{Inner: n}
}

// seqParts joins the recursive and non-recursive halves of an eliminated
// rule, tolerating a missing half: a degenerate rule with no base case keeps
// just its repeat part, and a rule whose repeats all stripped to empty keeps
// just its starts.
func seqParts(parts ...ts.Node) ts.Node {
	kept := make([]ts.Node, 0, len(parts))
	for _, p := range parts {
		if p != nil {
			kept = append(kept, p)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return ts.Seq(kept)
}
