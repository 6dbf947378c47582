package status

import (
	"strings"
	"unicode"
)

type token struct {
	text   string
	offset int
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !isIdentRune(r) {
			return false
		}
	}

	return true
}

// tokenize chops an expression into identifiers, parens and operators.
func tokenize(source string) ([]token, error) {
	var tokens []token

	runes := []rune(source)
	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(' || r == ')' || r == '$' || r == ',':
			tokens = append(tokens, token{text: string(r), offset: i})
			i++
		case isIdentRune(r):
			start := i
			for i < len(runes) && isIdentRune(runes[i]) {
				i++
			}

			tokens = append(tokens, token{text: string(runes[start:i]), offset: start})
		case i+1 < len(runes) && (string(runes[i:i+2]) == "&&" || string(runes[i:i+2]) == "||" || string(runes[i:i+2]) == "=="):
			tokens = append(tokens, token{text: string(runes[i : i+2]), offset: i})
			i += 2
		default:
			return nil, &ParseError{Source: source, Offset: i, Reason: "unexpected character " + string(r)}
		}
	}

	return tokens, nil
}

type parser struct {
	source string
	tokens []token
	pos    int
}

// Parse parses a status expression.
func Parse(source string) (*Expr, error) {
	tokens, err := tokenize(source)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, &ParseError{Source: source, Offset: 0, Reason: "empty expression"}
	}

	p := &parser{source: source, tokens: tokens}

	expr, err := p.logical()
	if err != nil {
		return nil, err
	}

	if p.more() {
		return nil, p.fail("unexpected " + p.current())
	}

	return expr, nil
}

func (p *parser) more() bool {
	return p.pos < len(p.tokens)
}

func (p *parser) current() string {
	if !p.more() {
		return ""
	}

	return p.tokens[p.pos].text
}

func (p *parser) advance() {
	p.pos++
}

func (p *parser) fail(reason string) *ParseError {
	offset := len([]rune(p.source))
	if p.more() {
		offset = p.tokens[p.pos].offset
	}

	return &ParseError{Source: p.source, Offset: offset, Reason: reason}
}

// logical := cond (('&&' | '||' | ',') cond)*
func (p *parser) logical() (*Expr, error) {
	left, err := p.conditional()
	if err != nil {
		return nil, err
	}

	for p.more() {
		op := Op(p.current())
		if op != OpAnd && op != OpOr && op != OpComma {
			break
		}

		p.advance()

		right, err := p.conditional()
		if err != nil {
			return nil, err
		}

		left = Operation(left, op, right)
	}

	return left, nil
}

// conditional := operator ('IF' operator)*
func (p *parser) conditional() (*Expr, error) {
	left, err := p.operator()
	if err != nil {
		return nil, err
	}

	for p.more() && p.current() == string(OpIf) {
		p.advance()

		right, err := p.operator()
		if err != nil {
			return nil, err
		}

		left = Operation(left, OpIf, right)
	}

	return left, nil
}

// operator := atom ('==' operator)?
func (p *parser) operator() (*Expr, error) {
	left, err := p.atom()
	if err != nil {
		return nil, err
	}

	if p.more() && p.current() == string(OpEquals) {
		p.advance()

		right, err := p.operator()
		if err != nil {
			return nil, err
		}

		left = Operation(left, OpEquals, right)
	}

	return left, nil
}

func (p *parser) atom() (*Expr, error) {
	if !p.more() {
		return nil, p.fail("missing operand")
	}

	current := p.current()

	switch {
	case current == "true":
		p.advance()
		return Constant(true), nil
	case current == "false":
		p.advance()
		return Constant(false), nil
	case current == string(OpIf):
		return nil, p.fail("missing operand before IF")
	case isIdent(current):
		p.advance()
		return Outcome(current), nil
	case current == "$":
		p.advance()

		if !isIdent(p.current()) {
			return nil, p.fail("expected variable name after $")
		}

		name := p.current()
		p.advance()

		return Variable(name), nil
	case current == "(":
		p.advance()

		inner, err := p.logical()
		if err != nil {
			return nil, err
		}

		if p.current() != ")" {
			return nil, p.fail("unmatched (")
		}

		p.advance()

		return inner, nil
	}

	return nil, p.fail("unexpected " + strings.TrimSpace(current))
}
