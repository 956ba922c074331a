package calc

import (
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/arith/calc/ast"
	"github.com/slowlang/arith/calc/parse"
)

type (
	ParseError = parse.Error
	EvalError  = ast.EvalError
)

const DivisionByZero = ast.DivisionByZero

// Parse parses text rejecting anything but spaces after the expression.
func Parse(ctx context.Context, text string) (ast.Expr, error) {
	return parse.Parse(ctx, []byte(text))
}

// ParsePrefix parses the expression at the beginning of text and ignores the rest.
// end is the offset right after the last consumed token.
func ParsePrefix(ctx context.Context, text string) (x ast.Expr, end int, err error) {
	return parse.ParsePrefix(ctx, []byte(text))
}

func Eval(ctx context.Context, text string) (v float64, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "calc: eval", "text", text)
	defer tr.Finish("err", &err)

	x, err := Parse(ctx, text)
	if err != nil {
		return 0, errors.Wrap(err, "parse")
	}

	return EvalExpr(ctx, x)
}

func EvalExpr(ctx context.Context, x ast.Expr) (v float64, err error) {
	v, err = x.Eval()
	if err != nil {
		return 0, errors.Wrap(err, "eval %v", x)
	}

	tlog.SpanFromContext(ctx).Printw("evaluated", "expr", x, "val", v)

	return v, nil
}
