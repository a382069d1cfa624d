// Package yacc turns Yacc grammar files into CFG rules: it locates the
// %%-delimited rules section, strips the parts the converter has no use for,
// and lowers the parsed syntax tree into the grammar model.
package yacc

import (
	"errors"
	"strings"
)

// Section returns the rules section of a Yacc file: the text between the
// first %% marker and the second, or the end of input when the epilogue
// marker is absent.
func Section(src string) (string, error) {
	i := strings.Index(src, "%%")
	if i < 0 {
		return "", errors.New("no %% rules section marker found")
	}
	rest := src[i+2:]
	if j := strings.Index(rest, "%%"); j >= 0 {
		rest = rest[:j]
	}
	return rest, nil
}

// Strip removes comments, brace-balanced action blocks and %prec/%empty
// markers from a rules section, leaving only the production syntax. Quoted literals are
// copied through untouched, including ones containing braces or comment
// markers.
func Strip(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], "/*"):
			i = skipBlockComment(text, i)
			sb.WriteByte(' ')
		case strings.HasPrefix(text[i:], "//"):
			i = skipLineComment(text, i)
		case text[i] == '{':
			i = skipAction(text, i)
			sb.WriteByte(' ')
		case text[i] == '\'' || text[i] == '"':
			j := skipQuoted(text, i)
			sb.WriteString(text[i:j])
			i = j
		case strings.HasPrefix(text[i:], "%empty"):
			// bison's explicit empty-production marker
			i += len("%empty")
		case strings.HasPrefix(text[i:], "%prec"):
			i = skipPrec(text, i+len("%prec"))
		default:
			sb.WriteByte(text[i])
			i++
		}
	}
	return sb.String()
}

func skipBlockComment(text string, i int) int {
	end := strings.Index(text[i+2:], "*/")
	if end < 0 {
		return len(text)
	}
	return i + 2 + end + 2
}

func skipLineComment(text string, i int) int {
	nl := strings.IndexByte(text[i:], '\n')
	if nl < 0 {
		return len(text)
	}
	return i + nl
}

// skipAction consumes a {}-delimited semantic action, honouring nested
// braces, quoted strings and comments inside the action body.
func skipAction(text string, i int) int {
	depth := 0
	for i < len(text) {
		switch {
		case text[i] == '{':
			depth++
			i++
		case text[i] == '}':
			depth--
			i++
			if depth == 0 {
				return i
			}
		case text[i] == '\'' || text[i] == '"':
			i = skipQuoted(text, i)
		case strings.HasPrefix(text[i:], "/*"):
			i = skipBlockComment(text, i)
		case strings.HasPrefix(text[i:], "//"):
			i = skipLineComment(text, i)
		default:
			i++
		}
	}
	return i
}

// skipQuoted consumes a quoted literal starting at i, honouring backslash
// escapes. An unterminated literal runs to the end of input.
func skipQuoted(text string, i int) int {
	q := text[i]
	for j := i + 1; j < len(text); j++ {
		switch text[j] {
		case '\\':
			j++
		case q:
			return j + 1
		}
	}
	return len(text)
}

// skipPrec consumes the whitespace and the single token following a %prec
// marker.
func skipPrec(text string, i int) int {
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if i < len(text) && (text[i] == '\'' || text[i] == '"') {
		return skipQuoted(text, i)
	}
	for i < len(text) && isIdentByte(text[i]) {
		i++
	}
	return i
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '.' ||
		'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9'
}
