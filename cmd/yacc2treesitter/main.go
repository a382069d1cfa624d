// Package main converts Yacc grammar files into tree-sitter grammar rules.
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/alecthomas/yacc2treesitter/grammar"
	"github.com/alecthomas/yacc2treesitter/yacc"
)

var cli struct {
	Grammar []string `arg:"" required:"" help:"The .y files to process.  Globs accepted."`
	Output  string   `short:"o" help:"Write the generated rules to this file instead of stdout."`
	Debug   bool     `help:"Dump the parsed rule list before transformation."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Description("Convert Yacc grammar files into tree-sitter grammar rules."),
		kong.UsageOnError(),
	)

	var rules []grammar.Rule
	for _, pat := range cli.Grammar {
		matches, err := filepath.Glob(pat)
		ctx.FatalIfErrorf(err)

		for _, m := range matches {
			ctx.Printf("Reading: %s", m)
			fd, err := os.Open(m)
			ctx.FatalIfErrorf(err)

			parsed, err := yacc.Parse(m, fd)
			ctx.FatalIfErrorf(err)

			ctx.FatalIfErrorf(fd.Close())
			rules = append(rules, parsed...)
		}
	}

	if cli.Debug {
		repr.Println(rules)
	}

	out, dropped := grammar.Transform(rules)
	if len(dropped) > 0 {
		ctx.Printf("Warning: dropped rules with only empty productions, references to them dangle: %s",
			strings.Join(dropped, ", "))
	}

	text := grammar.Render(out)
	if cli.Output == "" {
		_, err := os.Stdout.WriteString(text)
		ctx.FatalIfErrorf(err)
		return
	}
	ctx.FatalIfErrorf(os.WriteFile(cli.Output, []byte(text), 0666))
}
