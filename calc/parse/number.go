package parse

import (
	"context"
	"strconv"

	"tlog.app/go/errors"

	"github.com/slowlang/arith/calc/ast"
)

type (
	// Number is an optional minus immediately followed by decimal digits.
	// There are no fractions and no exponents.
	Number struct{}
)

func (p Number) Parse(ctx context.Context, b []byte, st int) (x ast.Expr, i int, err error) {
	i = st

	if i < len(b) && b[i] == '-' {
		i++
	}

	dst := i

	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}

	if i == dst {
		return nil, st, errors.New("Number expected")
	}

	// Too long digit runs become ±Inf.
	v, err := strconv.ParseFloat(string(b[st:i]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, st, errors.Wrap(err, "parse number")
	}

	return ast.Number(v), i, nil
}
