// Package ast parses the rules section of a Yacc grammar, after comments,
// actions and directives have been stripped, into a plain syntax tree.
package ast

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	Lexer = lexer.MustStateful(lexer.Rules{
		"Root": {
			{Name: "comment", Pattern: `//[^\n]*`},
			{Name: "blockComment", Pattern: `/\*([^*]|\*+[^*/])*\*+/`},
			{Name: "CharLit", Pattern: `'(\\.|[^'\\])*'`},
			{Name: "StrLit", Pattern: `"(\\.|[^"\\])*"`},
			{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.]*`},
			{Name: "Punct", Pattern: `[:;|]`},
			{Name: "whitespace", Pattern: `[ \t\r\n]+`},
		},
	})
	Parser = MustBuildParser(&GrammarFile{})
)

func MustBuildParser(v interface{}) *participle.Parser {
	return participle.MustBuild(v,
		participle.Lexer(Lexer),
		participle.UseLookahead(2),
	)
}

type GrammarFile struct {
	Rules []*Rule `parser:" @@* "`
}

type Rule struct {
	Name string       `parser:" @Ident ':' "`
	Alt  *Alternative `parser:" @@ ';' "`
}

// Alternative is one right-hand side of a production, chained to the next
// alternative of the same rule. An Alternative with no Terms is the empty
// production.
type Alternative struct {
	Terms []*Term      `parser:" @@* "`
	Next  *Alternative `parser:" ( '|' @@ )? "`
}

type Term struct {
	Literal *string `parser:" ( @CharLit | @StrLit ) "`
	Ident   *string `parser:" | @Ident "`
}
