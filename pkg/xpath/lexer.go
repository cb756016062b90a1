package xpath

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokAtom tokenKind = iota
	tokAnd
	tokOr
	tokNot
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string // set for tokAtom only
}

// ParseError reports a malformed selector expression. Parse errors are
// never retried; they mean the selector itself is wrong.
type ParseError struct {
	Expr string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed expression %q: %s", e.Expr, e.Msg)
}

// lex splits an expression into tokens. An unquoted atom is a maximal run
// of non-operator characters, embedded whitespace included, so "Sign In"
// stays one atom. A quoted run is one atom regardless of what it contains.
func lex(expr string) ([]token, error) {
	var tokens []token
	runes := []rune(expr)

	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '&':
			tokens = append(tokens, token{kind: tokAnd})
			i++
		case c == '|':
			tokens = append(tokens, token{kind: tokOr})
			i++
		case c == '!':
			tokens = append(tokens, token{kind: tokNot})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokLParen})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokRParen})
			i++
		case c == '"' || c == '\'':
			j := i + 1
			for j < len(runes) && runes[j] != c {
				j++
			}
			if j == len(runes) {
				return nil, &ParseError{Expr: expr, Msg: "unterminated quote"}
			}
			tokens = append(tokens, token{kind: tokAtom, text: string(runes[i+1 : j])})
			i = j + 1
		default:
			j := i
			for j < len(runes) && !isDelimiter(runes[j]) {
				j++
			}
			text := strings.TrimSpace(string(runes[i:j]))
			tokens = append(tokens, token{kind: tokAtom, text: text})
			i = j
		}
	}

	return tokens, nil
}

func isDelimiter(c rune) bool {
	switch c {
	case '&', '|', '!', '(', ')', '"', '\'':
		return true
	}
	return false
}
