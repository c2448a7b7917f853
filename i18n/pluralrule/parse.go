// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

package pluralrule

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedPredicate classifies every predicate parse or type error
// returned by Compile.
var ErrMalformedPredicate = errors.New("malformed plural predicate")

// expr is a parsed predicate node. Truth-valued nodes evaluate to 0 or 1.
type expr interface {
	eval(n int) int
	// isBool reports whether the node yields a truth value rather than a number.
	isBool() bool
}

type litExpr int

func (e litExpr) eval(int) int { return int(e) }
func (litExpr) isBool() bool   { return false }

type varExpr struct{}

func (varExpr) eval(n int) int { return n }
func (varExpr) isBool() bool   { return false }

type modExpr struct{ left, right expr }

func (e modExpr) eval(n int) int {
	divisor := e.right.eval(n)
	if divisor == 0 {
		// A zero divisor can only arise from "n" on the right-hand side;
		// yield zero rather than faulting mid-lookup.
		return 0
	}

	return e.left.eval(n) % divisor
}

func (modExpr) isBool() bool { return false }

type cmpExpr struct {
	op          string
	left, right expr
}

func (e cmpExpr) eval(n int) int {
	l, r := e.left.eval(n), e.right.eval(n)

	var ok bool

	switch e.op {
	case "==":
		ok = l == r
	case "!=":
		ok = l != r
	case "<":
		ok = l < r
	case "<=":
		ok = l <= r
	case ">":
		ok = l > r
	case ">=":
		ok = l >= r
	}

	if ok {
		return 1
	}

	return 0
}

func (cmpExpr) isBool() bool { return true }

type andExpr struct{ left, right expr }

func (e andExpr) eval(n int) int {
	if e.left.eval(n) == 0 {
		return 0
	}

	return e.right.eval(n)
}

func (andExpr) isBool() bool { return true }

type orExpr struct{ left, right expr }

func (e orExpr) eval(n int) int {
	if e.left.eval(n) != 0 {
		return 1
	}

	return e.right.eval(n)
}

func (orExpr) isBool() bool { return true }

type notExpr struct{ operand expr }

func (e notExpr) eval(n int) int {
	if e.operand.eval(n) == 0 {
		return 1
	}

	return 0
}

func (notExpr) isBool() bool { return true }

// token kinds.
const (
	tokEOF = iota
	tokNumber
	tokVar
	tokPercent
	tokLParen
	tokRParen
	tokNot
	tokEq
	tokNeq
	tokLt
	tokLe
	tokGt
	tokGe
	tokAnd
	tokOr
)

type token struct {
	kind int
	text string
}

// lex splits src into tokens, walking the input by index.
func lex(src string) ([]token, error) {
	var tokens []token

	i := 0
	n := len(src)

	for i < n {
		c := src[i]

		switch {
		case c == ' ' || c == '\t':
			i++
		case c >= '0' && c <= '9':
			start := i
			for i < n && src[i] >= '0' && src[i] <= '9' {
				i++
			}

			tokens = append(tokens, token{kind: tokNumber, text: src[start:i]})
		case isIdentByte(c):
			start := i
			for i < n && isIdentByte(src[i]) {
				i++
			}

			name := src[start:i]
			if name != "n" {
				return nil, fmt.Errorf("%w: undefined variable %q", ErrMalformedPredicate, name)
			}

			tokens = append(tokens, token{kind: tokVar, text: name})
		case c == '%':
			tokens = append(tokens, token{kind: tokPercent, text: "%"})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokLParen, text: "("})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokRParen, text: ")"})
			i++
		case c == '!':
			if i+1 < n && src[i+1] == '=' {
				tokens = append(tokens, token{kind: tokNeq, text: "!="})
				i += 2
			} else {
				tokens = append(tokens, token{kind: tokNot, text: "!"})
				i++
			}
		case c == '=':
			if i+1 >= n || src[i+1] != '=' {
				return nil, fmt.Errorf("%w: single %q, want %q", ErrMalformedPredicate, "=", "==")
			}

			tokens = append(tokens, token{kind: tokEq, text: "=="})
			i += 2
		case c == '<':
			if i+1 < n && src[i+1] == '=' {
				tokens = append(tokens, token{kind: tokLe, text: "<="})
				i += 2
			} else {
				tokens = append(tokens, token{kind: tokLt, text: "<"})
				i++
			}
		case c == '>':
			if i+1 < n && src[i+1] == '=' {
				tokens = append(tokens, token{kind: tokGe, text: ">="})
				i += 2
			} else {
				tokens = append(tokens, token{kind: tokGt, text: ">"})
				i++
			}
		case c == '&':
			if i+1 >= n || src[i+1] != '&' {
				return nil, fmt.Errorf("%w: single %q, want %q", ErrMalformedPredicate, "&", "&&")
			}

			tokens = append(tokens, token{kind: tokAnd, text: "&&"})
			i += 2
		case c == '|':
			if i+1 >= n || src[i+1] != '|' {
				return nil, fmt.Errorf("%w: single %q, want %q", ErrMalformedPredicate, "|", "||")
			}

			tokens = append(tokens, token{kind: tokOr, text: "||"})
			i += 2
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrMalformedPredicate, string(c))
		}
	}

	return append(tokens, token{kind: tokEOF}), nil
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

// parser is a recursive-descent parser over the token stream with C-like
// precedence: ! binds tightest, then %, relational, equality, &&, ||.
type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) next() token {
	t := p.tokens[p.pos]
	p.pos++

	return t
}

// parsePredicate parses src and checks that it yields a truth value.
func parsePredicate(src string) (expr, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}

	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if t := p.peek(); t.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q after expression", ErrMalformedPredicate, t.text)
	}

	if !root.isBool() {
		return nil, fmt.Errorf("%w: expression yields a number, not a truth value", ErrMalformedPredicate)
	}

	return root, nil
}

func (p *parser) parseOr() (expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.peek().kind == tokOr {
		p.next()

		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}

		if !left.isBool() || !right.isBool() {
			return nil, fmt.Errorf("%w: %q needs truth-valued operands", ErrMalformedPredicate, "||")
		}

		left = orExpr{left: left, right: right}
	}

	return left, nil
}

func (p *parser) parseAnd() (expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}

	for p.peek().kind == tokAnd {
		p.next()

		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}

		if !left.isBool() || !right.isBool() {
			return nil, fmt.Errorf("%w: %q needs truth-valued operands", ErrMalformedPredicate, "&&")
		}

		left = andExpr{left: left, right: right}
	}

	return left, nil
}

func (p *parser) parseEquality() (expr, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}

	for {
		var op string

		switch p.peek().kind {
		case tokEq:
			op = "=="
		case tokNeq:
			op = "!="
		default:
			return left, nil
		}

		p.next()

		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}

		if left.isBool() || right.isBool() {
			return nil, fmt.Errorf("%w: %q compares numbers, not truth values", ErrMalformedPredicate, op)
		}

		left = cmpExpr{op: op, left: left, right: right}
	}
}

func (p *parser) parseRelational() (expr, error) {
	left, err := p.parseMod()
	if err != nil {
		return nil, err
	}

	for {
		var op string

		switch p.peek().kind {
		case tokLt:
			op = "<"
		case tokLe:
			op = "<="
		case tokGt:
			op = ">"
		case tokGe:
			op = ">="
		default:
			return left, nil
		}

		p.next()

		right, err := p.parseMod()
		if err != nil {
			return nil, err
		}

		if left.isBool() || right.isBool() {
			return nil, fmt.Errorf("%w: %q compares numbers, not truth values", ErrMalformedPredicate, op)
		}

		left = cmpExpr{op: op, left: left, right: right}
	}
}

func (p *parser) parseMod() (expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.peek().kind == tokPercent {
		p.next()

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		if left.isBool() || right.isBool() {
			return nil, fmt.Errorf("%w: %q needs numeric operands", ErrMalformedPredicate, "%")
		}

		if lit, ok := right.(litExpr); ok && lit == 0 {
			return nil, fmt.Errorf("%w: modulo by zero", ErrMalformedPredicate)
		}

		left = modExpr{left: left, right: right}
	}

	return left, nil
}

func (p *parser) parseUnary() (expr, error) {
	if p.peek().kind == tokNot {
		p.next()

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		if !operand.isBool() {
			return nil, fmt.Errorf("%w: %q needs a truth-valued operand", ErrMalformedPredicate, "!")
		}

		return notExpr{operand: operand}, nil
	}

	return p.parsePrimary()
}

func (p *parser) parsePrimary() (expr, error) {
	switch t := p.next(); t.kind {
	case tokNumber:
		v, err := strconv.Atoi(t.text)
		if err != nil {
			return nil, fmt.Errorf("%w: literal %q out of range", ErrMalformedPredicate, t.text)
		}

		return litExpr(v), nil
	case tokVar:
		return varExpr{}, nil
	case tokLParen:
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}

		if p.next().kind != tokRParen {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrMalformedPredicate)
		}

		return inner, nil
	case tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrMalformedPredicate)
	default:
		return nil, fmt.Errorf("%w: unexpected %q", ErrMalformedPredicate, t.text)
	}
}
