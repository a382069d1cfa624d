package yacc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection(t *testing.T) {
	src := "%{\nint x;\n%}\n%token A\n%%\nrules here\n%%\nint main() {}\n"
	sec, err := Section(src)
	require.NoError(t, err)
	assert.Equal(t, "\nrules here\n", sec)
}

func TestSectionWithoutEpilogue(t *testing.T) {
	sec, err := Section("%token A\n%%\nrules")
	require.NoError(t, err)
	assert.Equal(t, "\nrules", sec)
}

func TestSectionMissingMarker(t *testing.T) {
	_, err := Section("a : b ;")
	assert.Error(t, err)
}

func TestStrip(t *testing.T) {
	tt := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "line comment",
			in:   "a // trailing\nb",
			out:  "a \nb",
		},
		{
			name: "block comment",
			in:   "a /* note */ b",
			out:  "a   b",
		},
		{
			name: "unterminated block comment",
			in:   "a /* note",
			out:  "a  ",
		},
		{
			name: "action block",
			in:   "expr : expr '+' expr { $$ = $1 + $3; } ;",
			out:  "expr : expr '+' expr   ;",
		},
		{
			name: "nested braces in action",
			in:   "a { if (x) { y(); } } ;",
			out:  "a   ;",
		},
		{
			name: "brace inside string in action",
			in:   `a { s = "}"; } b`,
			out:  "a   b",
		},
		{
			name: "comment inside action",
			in:   "a { /* } */ } b",
			out:  "a   b",
		},
		{
			name: "empty marker",
			in:   "a : %empty | b ;",
			out:  "a :  | b ;",
		},
		{
			name: "prec marker",
			in:   "e : e '-' e %prec UMINUS ;",
			out:  "e : e '-' e  ;",
		},
		{
			name: "prec marker with literal",
			in:   "e : e '-' e %prec '*' ;",
			out:  "e : e '-' e  ;",
		},
		{
			name: "comment markers inside literal",
			in:   "a '/*' b",
			out:  "a '/*' b",
		},
		{
			name: "brace inside literal",
			in:   "a '{' b",
			out:  "a '{' b",
		},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.out, Strip(test.in))
		})
	}
}
