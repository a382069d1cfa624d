package grammar

// Set is a set of rule names.
type Set map[string]bool

// Has reports membership.
func (s Set) Has(name string) bool { return s[name] }

// Nullables returns the names of all rules whose language includes the empty
// token sequence: rules with an empty variant, and rules with a variant made
// entirely of references to already-known-nullable rules. The scan repeats
// until a full pass promotes nothing, so the result is independent of rule
// order. Only Cfg bodies participate; run this before recursion elimination.
func Nullables(rules []Rule) Set {
	set := Set{}
	for changed := true; changed; {
		changed = false
		for _, r := range rules {
			if set[r.Name] {
				continue
			}
			cfg, ok := r.Body.(Cfg)
			if !ok {
				continue
			}
			for _, v := range cfg.Variants {
				if nullableVariant(v, set) {
					set[r.Name] = true
					changed = true
					break
				}
			}
		}
	}
	return set
}

// nullableVariant reports whether every token of v is a reference to a rule
// already in the set. A Raw token can never be null; the empty variant is
// trivially nullable.
func nullableVariant(v Variant, set Set) bool {
	for _, t := range v {
		if t.Kind != Name || !set.Has(t.Text) {
			return false
		}
	}
	return true
}
