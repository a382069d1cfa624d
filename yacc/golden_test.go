package yacc

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/alecthomas/yacc2treesitter/grammar"
)

const calcGrammar = `
%{
#include <stdio.h>
%}

%token NUMBER NAME

%%

expr
    : expr '+' term { $$ = $1 + $3; }
    | expr '-' term { $$ = $1 - $3; }
    | term
    ;

term
    : term '*' factor
    | term '/' factor
    | factor
    ;

factor
    : '(' expr ')' { $$ = $2; }
    | '-' factor %prec UMINUS
    | NUMBER
    | NAME
    ;

%%

int main() { return yyparse(); }
`

func TestConvertGolden(t *testing.T) {
	rules, err := Parse("calc.y", strings.NewReader(calcGrammar))
	require.NoError(t, err)

	out, dropped := grammar.Transform(rules)
	require.Empty(t, dropped)

	g := goldie.New(t)
	g.Assert(t, "calc", []byte(grammar.Render(out)))
}
