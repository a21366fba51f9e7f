package newick

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Sentinel values marking nested groups in a topology vector.
const (
	BracketOpen  = -1
	BracketClose = -2
)

type parser struct {
	lx  *lexer
	tok token
}

// Parse converts a newick string into a topology vector. The outermost
// brackets are consumed but not stored. A single trailing ';' is accepted.
func Parse(s string) ([]int, error) {
	p := &parser{lx: &lexer{input: s}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.typ == tokenEOF {
		return nil, ErrEmpty
	}
	if p.tok.typ != tokenOpen {
		return nil, p.unexpected("'('")
	}

	v, err := p.group(make([]int, 0, len(s)/2), true)
	if err != nil {
		return nil, err
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.typ == tokenTerminal {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if p.tok.typ != tokenEOF {
		return nil, errAt(ErrTrailingInput, p.tok.pos, "found", p.tok.typ.String())
	}
	return v, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// literals in tests and examples.
func MustParse(s string) []int {
	v, err := Parse(s)
	if err != nil {
		panic("newick: MustParse(" + strconv.Quote(s) + "): " + err.Error())
	}
	return v
}

// IsNewickString reports whether s parses as a valid topology.
func IsNewickString(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// group parses the children of the group whose '(' is the current token and
// appends them to v. The root group does not store its brackets.
func (p *parser) group(v []int, root bool) ([]int, error) {
	open := p.tok.pos
	if !root {
		v = append(v, BracketOpen)
	}

	children := 0
	for {
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch p.tok.typ {
		case tokenOpen:
			var err error
			if v, err = p.group(v, false); err != nil {
				return nil, err
			}
		case tokenCount:
			v = append(v, p.tok.val)
		default:
			return nil, p.unexpected("'(' or a count")
		}
		children++

		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.typ == tokenClose {
			break
		}
		if p.tok.typ != tokenComma {
			return nil, p.unexpected("',' or ')'")
		}
	}

	if children < 2 {
		return nil, errAt(ErrTooFewChildren, open, "children", children)
	}
	if !root {
		v = append(v, BracketClose)
	}
	return v, nil
}

func (p *parser) advance() error {
	tok, err := p.lx.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) unexpected(expected string) error {
	if p.tok.typ == tokenEOF {
		return errAt(ErrUnexpectedEOF, p.tok.pos, "expected", expected)
	}
	err := errAt(ErrUnexpectedToken, p.tok.pos, "expected", expected)
	return zerr.With(err, "found", p.tok.typ.String())
}

func errAt(err error, pos int, key string, value any) error {
	return zerr.With(zerr.With(err, "position", pos), key, value)
}

// String serializes a topology vector, restoring the implicit outer brackets
// and the commas. The empty vector serializes to the empty string.
func String(v []int) string {
	if len(v) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteByte(descStart)
	for i, x := range v {
		if i > 0 && v[i-1] != BracketOpen && x != BracketClose {
			b.WriteByte(descDelimiter)
		}
		switch x {
		case BracketOpen:
			b.WriteByte(descStart)
		case BracketClose:
			b.WriteByte(descEnd)
		default:
			b.WriteString(strconv.Itoa(x))
		}
	}
	b.WriteByte(descEnd)
	return b.String()
}
