package parse

import (
	"context"

	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/slowlang/arith/calc/ast"
)

type (
	// LeftToRight parses Arg (Op Arg)* into a left-leaning tree.
	LeftToRight struct {
		Op  Operator
		Arg Parser
	}

	// Symbol matches the operator's own symbol.
	Symbol struct {
		Op ast.Op
	}

	// Adjacent is an implicit operator.
	// It matches if Next follows, but leaves it for the next Arg.
	Adjacent struct {
		Next Const
		Op   ast.Op
	}

	Sum     struct{}
	Product struct{}
	Atom    struct{}
)

var (
	sumOps     = Ops{Symbol{ast.Add}, Symbol{ast.Sub}}
	productOps = Ops{Symbol{ast.Mul}, Symbol{ast.Div}, Adjacent{Next: "(", Op: ast.Mul}}

	paren = Group{Open: "(", Of: Sum{}, Close: ")"}
)

func (p LeftToRight) Parse(ctx context.Context, b []byte, st int) (x ast.Expr, i int, err error) {
	x, i, err = p.Arg.Parse(ctx, b, st)
	if err != nil {
		return nil, i, err
	}

	tr := tlog.SpanFromContext(ctx)

	for {
		op, opend, ok := p.Op.ParseOp(ctx, b, i)
		if !ok {
			break
		}

		var r ast.Expr
		r, i, err = p.Arg.Parse(ctx, b, opend)
		if err != nil {
			return nil, i, err
		}

		x = ast.BinaryOp{
			Left:  x,
			Op:    op,
			Right: r,
		}

		if tr.If("parse_fold") {
			tr.Printw("fold", "op", op.String(), "x", x, "end", i, "from", loc.Caller(1))
		}
	}

	return x, i, nil
}

func (p Symbol) ParseOp(ctx context.Context, b []byte, st int) (op ast.Op, i int, ok bool) {
	i, ok = Const(p.Op.String()).Match(b, SpaceAll.Skip(b, st))
	if !ok {
		return 0, st, false
	}

	return p.Op, i, true
}

func (p Adjacent) ParseOp(ctx context.Context, b []byte, st int) (op ast.Op, i int, ok bool) {
	if _, ok = p.Next.Match(b, SpaceAll.Skip(b, st)); !ok {
		return 0, st, false
	}

	return p.Op, st, true
}

// Sum is the loosest level: Product (('+' | '-') Product)*.
func (p Sum) Parse(ctx context.Context, b []byte, st int) (x ast.Expr, i int, err error) {
	r := LeftToRight{
		Op:  sumOps,
		Arg: Product{},
	}

	return r.Parse(ctx, b, st)
}

// Product is Atom (('*' | '/' | implicit) Atom)*.
// Implicit multiplication applies when '(' directly follows an Atom.
func (p Product) Parse(ctx context.Context, b []byte, st int) (x ast.Expr, i int, err error) {
	r := LeftToRight{
		Op:  productOps,
		Arg: Atom{},
	}

	return r.Parse(ctx, b, st)
}

// Atom is '(' Sum ')' or a Number.
func (p Atom) Parse(ctx context.Context, b []byte, st int) (x ast.Expr, i int, err error) {
	i = SpaceAll.Skip(b, st)

	if _, ok := paren.Open.Match(b, i); ok {
		return paren.Parse(ctx, b, i)
	}

	x, i, err = Number{}.Parse(ctx, b, i)
	if err != nil {
		return nil, i, newError(ErrExpectedAtom, b, i)
	}

	return x, i, nil
}
