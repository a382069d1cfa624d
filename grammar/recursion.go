package grammar

// TransformLeftRec splits a Cfg body with at least one left-recursive variant
// into its LeftRec form. A variant is left-recursive when its first token is a
// reference to the rule itself; the reference is stripped and the remainder
// becomes a repeat variant. Relative order is preserved within each bucket.
// The second return is false when the body is not in Cfg form or no variant
// is left-recursive, and the rule is returned untouched.
func TransformLeftRec(r Rule) (Rule, bool) {
	cfg, ok := r.Body.(Cfg)
	if !ok {
		return r, false
	}
	self := Ref(r.Name)
	var starts, repeats []Variant
	for _, v := range cfg.Variants {
		if len(v) > 0 && v[0] == self {
			repeats = append(repeats, v[1:])
		} else {
			starts = append(starts, v)
		}
	}
	if len(repeats) == 0 {
		return r, false
	}
	return Rule{Name: r.Name, Body: LeftRec{Starts: starts, Repeats: repeats}}, true
}

// TransformRightRec is the dual of TransformLeftRec for variants ending in a
// self-reference. A singleton self-reference variant never reaches here: it
// already classified as left-recursive.
func TransformRightRec(r Rule) (Rule, bool) {
	cfg, ok := r.Body.(Cfg)
	if !ok {
		return r, false
	}
	self := Ref(r.Name)
	var repeats, ends []Variant
	for _, v := range cfg.Variants {
		if len(v) > 0 && v[len(v)-1] == self {
			repeats = append(repeats, v[:len(v)-1])
		} else {
			ends = append(ends, v)
		}
	}
	if len(repeats) == 0 {
		return r, false
	}
	return Rule{Name: r.Name, Body: RightRec{Repeats: repeats, Ends: ends}}, true
}
