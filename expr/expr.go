// Package expr evaluates user-supplied arithmetic formulas over a fixed set
// of named variables.
//
// The grammar is deliberately tiny: numeric literals, bound identifiers,
// the four operators, unary minus and parentheses. No assignment, no
// function calls, no loops. The source is untrusted user data persisted in
// client storage and possibly shared between users, so the whole sandbox
// boundary has to stay auditable: that is why this is a small
// recursive-descent parser with hard ceilings on input length, node count
// and nesting depth, rather than an embedded scripting engine.
//
// Every failure mode (lexing, parsing, unknown identifier, ceiling
// exceeded, non-finite result) is an error value; the package never panics
// on any input.
package expr

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// MaxSourceLen is the hard bound on the formula length in bytes.
	MaxSourceLen = 256
	// maxNodes bounds the parse tree size; combined with MaxSourceLen it
	// bounds the evaluation step count.
	maxNodes = 128
	// maxDepth bounds the nesting depth, and with it the parser and
	// evaluator recursion.
	maxDepth = 32
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// lex splits the source into tokens. Only digits, identifiers, operators,
// parentheses and blanks are legal.
func lex(src string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '+':
			tokens = append(tokens, token{tokPlus, "+", i})
			i++
		case c == '-':
			tokens = append(tokens, token{tokMinus, "-", i})
			i++
		case c == '*':
			tokens = append(tokens, token{tokStar, "*", i})
			i++
		case c == '/':
			tokens = append(tokens, token{tokSlash, "/", i})
			i++
		case c == '(':
			tokens = append(tokens, token{tokLParen, "(", i})
			i++
		case c == ')':
			tokens = append(tokens, token{tokRParen, ")", i})
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			dots := 0
			for i < len(src) && (src[i] >= '0' && src[i] <= '9' || src[i] == '.') {
				if src[i] == '.' {
					dots++
				}
				i++
			}
			if dots > 1 {
				return nil, fmt.Errorf("invalid number %q at position %d", src[start:i], start)
			}
			tokens = append(tokens, token{tokNumber, src[start:i], start})
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
			start := i
			for i < len(src) && (src[i] >= 'a' && src[i] <= 'z' || src[i] >= 'A' && src[i] <= 'Z' ||
				src[i] >= '0' && src[i] <= '9' || src[i] == '_') {
				i++
			}
			tokens = append(tokens, token{tokIdent, src[start:i], start})
		default:
			return nil, fmt.Errorf("illegal character %q at position %d", string(c), i)
		}
	}
	tokens = append(tokens, token{tokEOF, "", len(src)})
	return tokens, nil
}

// node is one parse-tree node: a literal, a variable reference, or an
// operator over children.
type node struct {
	op          byte // 'n' literal, 'v' variable, '+', '-', '*', '/', 'm' unary minus
	value       float64
	name        string
	left, right *node
}

type parser struct {
	tokens []token
	pos    int
	nodes  int
	vars   map[string]float64
}

func (p *parser) peek() token { return p.tokens[p.pos] }
func (p *parser) next() token { t := p.tokens[p.pos]; p.pos++; return t }

func (p *parser) newNode(n node) (*node, error) {
	p.nodes++
	if p.nodes > maxNodes {
		return nil, fmt.Errorf("expression too complex: more than %d terms", maxNodes)
	}
	return &n, nil
}

// expr := term (('+'|'-') term)*
func (p *parser) expr(depth int) (*node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("expression nested deeper than %d levels", maxDepth)
	}
	left, err := p.term(depth + 1)
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokPlus && t.kind != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.term(depth + 1)
		if err != nil {
			return nil, err
		}
		left, err = p.newNode(node{op: t.text[0], left: left, right: right})
		if err != nil {
			return nil, err
		}
	}
}

// term := unary (('*'|'/') unary)*
func (p *parser) term(depth int) (*node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("expression nested deeper than %d levels", maxDepth)
	}
	left, err := p.unary(depth + 1)
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokStar && t.kind != tokSlash {
			return left, nil
		}
		p.next()
		right, err := p.unary(depth + 1)
		if err != nil {
			return nil, err
		}
		left, err = p.newNode(node{op: t.text[0], left: left, right: right})
		if err != nil {
			return nil, err
		}
	}
}

// unary := '-' unary | primary
func (p *parser) unary(depth int) (*node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("expression nested deeper than %d levels", maxDepth)
	}
	if p.peek().kind == tokMinus {
		p.next()
		child, err := p.unary(depth + 1)
		if err != nil {
			return nil, err
		}
		return p.newNode(node{op: 'm', left: child})
	}
	return p.primary(depth + 1)
}

// primary := number | ident | '(' expr ')'
func (p *parser) primary(depth int) (*node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("expression nested deeper than %d levels", maxDepth)
	}
	t := p.next()
	switch t.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q at position %d", t.text, t.pos)
		}
		return p.newNode(node{op: 'n', value: v})
	case tokIdent:
		if _, ok := p.vars[t.text]; !ok {
			return nil, fmt.Errorf("unknown variable %q at position %d", t.text, t.pos)
		}
		return p.newNode(node{op: 'v', name: t.text})
	case tokLParen:
		inner, err := p.expr(depth + 1)
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis at position %d", closing.pos)
		}
		return inner, nil
	case tokEOF:
		return nil, fmt.Errorf("unexpected end of expression")
	default:
		return nil, fmt.Errorf("unexpected %q at position %d", t.text, t.pos)
	}
}

func (n *node) eval(vars map[string]float64) float64 {
	switch n.op {
	case 'n':
		return n.value
	case 'v':
		return vars[n.name]
	case 'm':
		return -n.left.eval(vars)
	case '+':
		return n.left.eval(vars) + n.right.eval(vars)
	case '-':
		return n.left.eval(vars) - n.right.eval(vars)
	case '*':
		return n.left.eval(vars) * n.right.eval(vars)
	case '/':
		return n.left.eval(vars) / n.right.eval(vars)
	default:
		return math.NaN()
	}
}

// Eval parses and evaluates a formula against the given variable bindings.
// Identifiers not present in vars are rejected at parse time. A result that
// is not a finite number (division by zero, overflow) is an error.
func Eval(src string, vars map[string]float64) (float64, error) {
	if len(src) > MaxSourceLen {
		return 0, fmt.Errorf("expression longer than %d characters", MaxSourceLen)
	}
	tokens, err := lex(src)
	if err != nil {
		return 0, err
	}
	p := &parser{tokens: tokens, vars: vars}
	root, err := p.expr(0)
	if err != nil {
		return 0, err
	}
	if trailing := p.peek(); trailing.kind != tokEOF {
		return 0, fmt.Errorf("unexpected %q at position %d", trailing.text, trailing.pos)
	}
	result := root.eval(vars)
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("expression result is not a finite number")
	}
	return result, nil
}
