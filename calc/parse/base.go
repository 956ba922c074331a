package parse

import (
	"bytes"
	"context"

	"github.com/slowlang/arith/calc/ast"
)

type (
	Const string

	// Group parses Of enclosed in Open and Close.
	// Spaces are allowed around each part.
	// Missing Open is ErrExpectedAtom, missing Close is ErrMismatchedParen.
	Group struct {
		Open  Const
		Of    Parser
		Close Const
	}

	// Ops tries operators in order.
	Ops []Operator
)

// Match reports whether b has c at st and returns the offset after it.
func (c Const) Match(b []byte, st int) (i int, ok bool) {
	if bytes.HasPrefix(b[st:], []byte(c)) {
		return st + len(c), true
	}

	return st, false
}

func (p Group) Parse(ctx context.Context, b []byte, st int) (x ast.Expr, i int, err error) {
	i = SpaceAll.Skip(b, st)

	i, ok := p.Open.Match(b, i)
	if !ok {
		return nil, i, newError(ErrExpectedAtom, b, i)
	}

	x, i, err = p.Of.Parse(ctx, b, i)
	if err != nil {
		return nil, i, err
	}

	i = SpaceAll.Skip(b, i)

	i, ok = p.Close.Match(b, i)
	if !ok {
		return nil, i, newError(ErrMismatchedParen, b, i)
	}

	return x, i, nil
}

func (p Ops) ParseOp(ctx context.Context, b []byte, st int) (op ast.Op, i int, ok bool) {
	for _, r := range p {
		op, i, ok = r.ParseOp(ctx, b, st)
		if ok {
			return op, i, true
		}
	}

	return 0, st, false
}
