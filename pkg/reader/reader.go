// Package reader turns appleseed source text into the same cons-list
// structure the evaluator runs on: the language is homoiconic, so
// parsing produces runtime values directly rather than a separate AST.
//
// Grounded on original_source/parsing.py's scan/parse, restructured into
// an explicit token slice plus a recursive-descent parser (idiomatic Go,
// versus the original's generator-based scanner).
package reader

import (
	"strings"

	"github.com/dloscutoff/go-appleseed/pkg/types"
)

const (
	whitespace       = " \t\n\r"
	lineCommentChar  = ';'
	blockCommentOpen = "(;"
	tokenDelimiter   = '`'
	stringDelimiter  = '"'
	stringEscape     = '\\'
)

func isSpecial(r rune) bool {
	return strings.ContainsRune(whitespace, r) ||
		r == '(' || r == ')' || r == lineCommentChar ||
		r == tokenDelimiter || r == stringDelimiter
}

// scan splits code into raw tokens: "(", ")", "(;" (block comment open),
// backtick-delimited extended tokens, double-quoted string literals, and
// plain tokens (names and integer literals).
func scan(code string) []string {
	runes := []rune(code + "\n")
	var tokens []string
	i := 0
	n := len(runes)
	for i < n {
		c := runes[i]
		switch {
		case strings.ContainsRune(whitespace, c):
			// skip
		case c == lineCommentChar:
			for i+1 < n && runes[i+1] != '\n' {
				i++
			}
		case c == '(' && i+1 < n && runes[i+1] == ';':
			tokens = append(tokens, blockCommentOpen)
			i++
		case c == '(' || c == ')':
			tokens = append(tokens, string(c))
		case c == tokenDelimiter:
			a := i
			closed := false
			for i < n && runes[i] == tokenDelimiter {
				j := i + 1
				for j < n && runes[j] != tokenDelimiter {
					j++
				}
				if j >= n {
					closed = false
					i = j
					break
				}
				i = j + 1
				closed = true
			}
			if !closed {
				tokens = append(tokens, string(runes[a:i])+string(tokenDelimiter))
			} else {
				i--
				tokens = append(tokens, string(runes[a:i+1]))
			}
		case c == stringDelimiter:
			a := i
			i++
			terminated := false
			for i < n {
				if runes[i] == '\n' {
					break
				}
				if runes[i] == stringDelimiter {
					terminated = true
					break
				}
				if runes[i] == stringEscape {
					if i+1 < n && runes[i+1] == '\n' {
						break
					}
					i += 2
					continue
				}
				i++
			}
			if terminated {
				tokens = append(tokens, string(runes[a:i+1]))
			} else {
				tokens = append(tokens, string(runes[a:i])+string(stringDelimiter))
			}
		default:
			a := i
			for i+1 < n && !isSpecial(runes[i+1]) {
				i++
			}
			tokens = append(tokens, string(runes[a:i+1]))
		}
		i++
	}
	return tokens
}

// parser walks a flat token slice, building nested lists.
type parser struct {
	tokens []string
	pos    int
}

func (p *parser) next() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	t := p.tokens[p.pos]
	p.pos++
	return t, true
}

// parseOne parses exactly one list starting after an implicit open at the
// current position, auto-closing at end of input the way the original
// scanner's missing-token handling does.
func (p *parser) parseOne() types.Value {
	token, ok := p.next()
	if !ok {
		token = ")"
	}

	switch {
	case token == "(":
		element := p.parseOne()
		return &types.List{Head: element, Tail: p.parseOne()}
	case token == blockCommentOpen:
		p.parseOne() // discard the comment body
		return p.parseOne()
	case token == ")":
		return (*types.List)(nil)
	case strings.HasPrefix(token, string(tokenDelimiter)):
		inner := token
		if len(token) >= 2 {
			inner = token[1 : len(token)-1]
		}
		inner = strings.ReplaceAll(inner, strings.Repeat(string(tokenDelimiter), 2), string(tokenDelimiter))
		return &types.List{Head: types.Intern(inner), Tail: p.parseOne()}
	case strings.HasPrefix(token, string(stringDelimiter)):
		body := token
		if len(token) >= 2 {
			body = token[1 : len(token)-1]
		}
		str := unescapeString(body)
		quoted := &types.List{
			Head: types.Intern("q"),
			Tail: &types.List{Head: str, Tail: (*types.List)(nil)},
		}
		return &types.List{Head: quoted, Tail: p.parseOne()}
	default:
		return &types.List{Head: parseAtom(token), Tail: p.parseOne()}
	}
}

func unescapeString(token string) types.String {
	var sb strings.Builder
	runes := []rune(token)
	i := 0
	for i < len(runes) {
		if runes[i] == stringEscape && i+1 < len(runes) {
			i++
			switch runes[i] {
			case stringEscape, stringDelimiter:
				sb.WriteRune(runes[i])
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteRune(stringEscape)
				sb.WriteRune(runes[i])
			}
		} else {
			sb.WriteRune(runes[i])
		}
		i++
	}
	return types.String(sb.String())
}

// parseAtom turns a plain token into an Int if every character is a
// (possibly negative) digit string, a Bool if it is exactly "true" or
// "false", otherwise a Symbol.
func parseAtom(token string) types.Value {
	if isIntLiteral(token) {
		if v, ok := newIntFromString(token); ok {
			return v
		}
	}
	switch token {
	case "true":
		return types.Bool(true)
	case "false":
		return types.Bool(false)
	}
	return types.Intern(token)
}

func isIntLiteral(token string) bool {
	if token == "" {
		return false
	}
	start := 0
	if token[0] == '-' {
		start = 1
	}
	if start == len(token) {
		return false
	}
	for _, c := range token[start:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Parse reads all top-level forms out of source, auto-closing dangling
// opens, and returns them as a Go slice (the caller walks this instead
// of a cons chain, since at this layer we are not yet inside the
// evaluator's lazy machinery).
func Parse(source string) []types.Value {
	tokens := scan(source)
	p := &parser{tokens: tokens}
	var forms []types.Value
	for p.pos < len(p.tokens) {
		token := p.tokens[p.pos]
		if token == ")" {
			// A stray close at top level; skip it rather than looping
			// forever (the reference scanner never emits this at top
			// level since every "(" is balanced by parseOne).
			p.pos++
			continue
		}
		p.pos++
		switch {
		case token == "(":
			element := p.parseOne()
			forms = append(forms, element)
		case token == blockCommentOpen:
			p.parseOne()
		case strings.HasPrefix(token, string(tokenDelimiter)):
			inner := token
			if len(token) >= 2 {
				inner = token[1 : len(token)-1]
			}
			inner = strings.ReplaceAll(inner, strings.Repeat(string(tokenDelimiter), 2), string(tokenDelimiter))
			forms = append(forms, types.Intern(inner))
		case strings.HasPrefix(token, string(stringDelimiter)):
			body := token
			if len(token) >= 2 {
				body = token[1 : len(token)-1]
			}
			str := unescapeString(body)
			forms = append(forms, &types.List{
				Head: types.Intern("q"),
				Tail: &types.List{Head: str, Tail: (*types.List)(nil)},
			})
		default:
			forms = append(forms, parseAtom(token))
		}
	}
	return forms
}
