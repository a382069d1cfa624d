package grammar

import (
	"strings"

	"github.com/alecthomas/yacc2treesitter/ts"
)

// Transform runs the whole pipeline over a rule list: compute the nullable
// set once, then per rule attempt left-recursion elimination, attempt
// right-recursion elimination, convert to a tree-sitter expression and
// normalize it. A step that is not applicable leaves the body from the
// previous step untouched. The second return lists the names of rules dropped
// because no non-empty variant survived; references to them from other rules
// are left dangling, so callers should surface the names.
func Transform(rules []Rule) ([]Rule, []string) {
	nullable := Nullables(rules)
	out := make([]Rule, 0, len(rules))
	var dropped []string
	for _, r := range rules {
		if lr, ok := TransformLeftRec(r); ok {
			r = lr
		}
		if rr, ok := TransformRightRec(r); ok {
			r = rr
		}
		node := Convert(r, nullable)
		if node == nil {
			dropped = append(dropped, r.Name)
			continue
		}
		out = append(out, Rule{Name: r.Name, Body: TsNode{Node: ts.Normalize(node)}})
	}
	return out, dropped
}

// Render serializes a transformed rule list, one rule per line with a
// trailing newline after each entry.
func Render(rules []Rule) string {
	var sb strings.Builder
	for _, r := range rules {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
