package ts

// Normalize reduces a node to its minimal equivalent form by applying the
// rewrite pass until the tree stops changing. Every individual rewrite either
// removes nodes or strips a redundant wrapper, so the loop terminates.
func Normalize(n Node) Node {
	for {
		r := rewrite(n)
		if Equal(r, n) {
			return r
		}
		n = r
	}
}

// rewrite runs one bottom-up pass: children first, then the local rules for
// the node itself. Trees are rebuilt, never mutated in place.
func rewrite(n Node) Node {
	switch x := n.(type) {
	case Raw, Ref:
		return n
	case Seq:
		children := make([]Node, len(x))
		for i, c := range x {
			children[i] = rewrite(c)
		}
		return rewriteSeq(children)
	case Choice:
		children := make([]Node, len(x))
		for i, c := range x {
			children[i] = rewrite(c)
		}
		return rewriteChoice(children)
	case Optional:
		inner := rewrite(x.Inner)
		// optional of an already-nullable node is redundant
		if MatchesEmpty(inner) {
			return inner
		}
		return Optional{inner}
	case Repeat:
		return Repeat{rewrite(x.Inner)}
	case Repeat1:
		return Repeat1{rewrite(x.Inner)}
	}
	panic("unreachable")
}

// rewriteChoice dedups children, promotes an empty alternative to an Optional
// wrapper, and collapses a singleton choice.
func rewriteChoice(children []Node) Node {
	deduped := make([]Node, 0, len(children))
	for _, c := range children {
		if !containsNode(deduped, c) {
			deduped = append(deduped, c)
		}
	}

	optional := false
	kept := make([]Node, 0, len(deduped))
	for _, c := range deduped {
		if onlyEmpty(c) {
			optional = true
			continue
		}
		kept = append(kept, c)
	}

	var out Node
	switch len(kept) {
	case 0:
		return Seq{}
	case 1:
		out = kept[0]
	default:
		out = Choice(kept)
	}
	if optional && !MatchesEmpty(out) {
		out = Optional{out}
	}
	return out
}

// rewriteSeq elides empty children, splices nested sequences, folds an element
// followed by a repeat of itself into Repeat1, and collapses a singleton.
func rewriteSeq(children []Node) Node {
	flat := make([]Node, 0, len(children))
	for _, c := range children {
		if onlyEmpty(c) {
			continue
		}
		if sub, ok := c.(Seq); ok {
			flat = append(flat, sub...)
			continue
		}
		flat = append(flat, c)
	}

	folded := make([]Node, 0, len(flat))
	for i := 0; i < len(flat); i++ {
		if i+1 < len(flat) {
			if rep, ok := flat[i+1].(Repeat); ok && Equal(flat[i], rep.Inner) {
				folded = append(folded, Repeat1{rep.Inner})
				i++
				continue
			}
		}
		folded = append(folded, flat[i])
	}

	switch len(folded) {
	case 0:
		return Seq{}
	case 1:
		return folded[0]
	}
	return Seq(folded)
}

func containsNode(nodes []Node, n Node) bool {
	for _, c := range nodes {
		if Equal(c, n) {
			return true
		}
	}
	return false
}
