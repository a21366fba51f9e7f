package newick

import (
	"fmt"
	"strconv"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenOpen
	tokenClose
	tokenComma
	tokenCount
	tokenTerminal
)

const (
	descStart     = '('
	descEnd       = ')'
	descDelimiter = ','
	terminal      = ';'
)

type token struct {
	typ tokenType
	val int
	pos int
}

// lexer splits a newick string into tokens. Unlike a general newick lexer it
// knows no labels or branch lengths: the only leaf payload is a count.
type lexer struct {
	input string
	pos   int
}

func (lx *lexer) next() (token, error) {
	lx.skipBlank()
	if lx.pos >= len(lx.input) {
		return token{typ: tokenEOF, pos: lx.pos}, nil
	}

	start := lx.pos
	c := lx.input[lx.pos]
	switch {
	case c == descStart:
		lx.pos++
		return token{typ: tokenOpen, pos: start}, nil
	case c == descEnd:
		lx.pos++
		return token{typ: tokenClose, pos: start}, nil
	case c == descDelimiter:
		lx.pos++
		return token{typ: tokenComma, pos: start}, nil
	case c == terminal:
		lx.pos++
		return token{typ: tokenTerminal, pos: start}, nil
	case isDigit(c):
		return lx.count()
	}
	return token{}, errAt(ErrUnexpectedCharacter, start, "character", escapeSpecial(c))
}

// count consumes a run of digits.
func (lx *lexer) count() (token, error) {
	start := lx.pos
	for lx.pos < len(lx.input) && isDigit(lx.input[lx.pos]) {
		lx.pos++
	}
	lit := lx.input[start:lx.pos]
	if lit[0] == '0' {
		return token{}, errAt(ErrInvalidCount, start, "count", lit)
	}
	n, err := strconv.Atoi(lit)
	if err != nil {
		return token{}, errAt(ErrInvalidCount, start, "count", lit)
	}
	return token{typ: tokenCount, val: n, pos: start}, nil
}

func (lx *lexer) skipBlank() {
	for lx.pos < len(lx.input) && isBlank(lx.input[lx.pos]) {
		lx.pos++
	}
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func escapeSpecial(c byte) string {
	switch c {
	case '\n':
		return "\\n"
	case '\t':
		return "\\t"
	}
	if c < 0x20 || c > 0x7e {
		return fmt.Sprintf("\\x%02x", c)
	}
	return string(rune(c))
}

func (typ tokenType) String() string {
	switch typ {
	case tokenEOF:
		return "end of input"
	case tokenOpen:
		return "'('"
	case tokenClose:
		return "')'"
	case tokenComma:
		return "','"
	case tokenCount:
		return "count"
	case tokenTerminal:
		return "';'"
	}
	panic(fmt.Sprintf("BUG: unknown token type %d", int(typ)))
}
