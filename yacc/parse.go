package yacc

import (
	"fmt"
	"io"

	"github.com/alecthomas/yacc2treesitter/grammar"
	"github.com/alecthomas/yacc2treesitter/yacc/ast"
)

// Parse reads a Yacc grammar and returns its productions as CFG rules.
func Parse(filename string, r io.Reader) ([]grammar.Rule, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	section, err := Section(string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	gf := &ast.GrammarFile{}
	if err := ast.Parser.ParseString(filename, Strip(section), gf); err != nil {
		return nil, err
	}
	return Rules(gf), nil
}
