package format

import (
	"context"
	"math"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/slowlang/arith/calc/ast"
)

type (
	// Printer writes expressions with as few parentheses as
	// needed to parse back into the same tree.
	Printer struct {
		// Implicit writes multiplication by a parenthesized operand
		// as adjacency: 2(3 - 1).
		Implicit bool
	}
)

func Format(ctx context.Context, b []byte, x ast.Expr) ([]byte, error) {
	return Printer{}.Format(ctx, b, x)
}

func (p Printer) Format(ctx context.Context, b []byte, x ast.Expr) ([]byte, error) {
	return p.format(ctx, b, x)
}

func (p Printer) format(ctx context.Context, b []byte, x ast.Expr) (_ []byte, err error) {
	switch x := x.(type) {
	case ast.Number:
		if f := float64(x); math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
			return nil, errors.New("unsupported number: %v", f)
		}

		b = x.AppendTo(b)
	case ast.BinaryOp:
		lparen := ast.Prec(x.Left) < x.Op.Prec()
		rparen := ast.Prec(x.Right) <= x.Op.Prec()

		b, err = p.operand(ctx, b, x.Left, lparen)
		if err != nil {
			return nil, errors.Wrap(err, "left")
		}

		if !p.Implicit || x.Op != ast.Mul || !rparen {
			b = hfmt.Appendf(b, " %v ", x.Op)
		}

		b, err = p.operand(ctx, b, x.Right, rparen)
		if err != nil {
			return nil, errors.Wrap(err, "right")
		}
	default:
		return nil, errors.New("unsupported expr: %T", x)
	}

	return b, nil
}

func (p Printer) operand(ctx context.Context, b []byte, x ast.Expr, paren bool) (_ []byte, err error) {
	if paren {
		b = append(b, '(')
	}

	b, err = p.format(ctx, b, x)
	if err != nil {
		return nil, err
	}

	if paren {
		b = append(b, ')')
	}

	return b, nil
}
