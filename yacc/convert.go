package yacc

import (
	"strings"

	"github.com/alecthomas/yacc2treesitter/grammar"
	"github.com/alecthomas/yacc2treesitter/yacc/ast"
)

// Rules lowers a parsed grammar file into CFG rules. Literals become Raw
// tokens with their quotes stripped and escapes resolved; identifiers become
// Name tokens whether or not a rule of that name exists.
func Rules(gf *ast.GrammarFile) []grammar.Rule {
	out := make([]grammar.Rule, 0, len(gf.Rules))
	for _, r := range gf.Rules {
		var variants []grammar.Variant
		if r.Alt == nil {
			// a rule with no right-hand side at all has one empty production
			variants = []grammar.Variant{{}}
		}
		for alt := r.Alt; alt != nil; alt = alt.Next {
			v := make(grammar.Variant, 0, len(alt.Terms))
			for _, t := range alt.Terms {
				switch {
				case t.Literal != nil:
					v = append(v, grammar.Lit(unquote(*t.Literal)))
				case t.Ident != nil:
					v = append(v, grammar.Ref(*t.Ident))
				}
			}
			variants = append(variants, v)
		}
		out = append(out, grammar.Rule{Name: r.Name, Body: grammar.Cfg{Variants: variants}})
	}
	return out
}

// unquote strips the surrounding quotes from a Yacc literal and resolves its
// backslash escapes.
func unquote(s string) string {
	s = s[1 : len(s)-1]
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				c = '\n'
			case 't':
				c = '\t'
			case 'r':
				c = '\r'
			default:
				c = s[i]
			}
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
