package ast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	for _, tc := range []struct {
		x   Expr
		exp string
	}{
		{Number(2), "2"},
		{Number(-3), "-3"},
		{Number(1.0 / 3), "0.3333333333333333"},
		{Number(1e21), "1000000000000000000000"},
		{Number(math.Inf(1)), "+Inf"},
		{BinaryOp{Number(1), Add, BinaryOp{Number(2), Mul, Number(3)}}, "(1 + (2 * 3))"},
		{BinaryOp{BinaryOp{Number(10), Sub, Number(2)}, Sub, Number(3)}, "((10 - 2) - 3)"},
		{BinaryOp{Number(2), Mul, BinaryOp{Number(3), Sub, Number(1)}}, "(2 * (3 - 1))"},
		{BinaryOp{Number(-5), Div, Number(-2)}, "(-5 / -2)"},
	} {
		assert.Equal(t, tc.exp, tc.x.String())
		assert.Equal(t, "x="+tc.exp, string(tc.x.AppendTo([]byte("x="))))
	}
}

func TestOp(t *testing.T) {
	assert.Equal(t, "+", Add.String())
	assert.Equal(t, "-", Sub.String())
	assert.Equal(t, "*", Mul.String())
	assert.Equal(t, "/", Div.String())
	assert.Equal(t, "Op(9)", Op(9).String())

	assert.Equal(t, Add.Prec(), Sub.Prec())
	assert.Equal(t, Mul.Prec(), Div.Prec())
	assert.Less(t, Add.Prec(), Mul.Prec())
	assert.Less(t, Mul.Prec(), Prec(Number(1)))
	assert.Equal(t, Mul.Prec(), Prec(BinaryOp{Number(1), Mul, Number(2)}))
}

func TestEqual(t *testing.T) {
	a := BinaryOp{Number(1), Add, BinaryOp{Number(2), Mul, Number(3)}}
	b := BinaryOp{Number(1), Add, BinaryOp{Number(2), Mul, Number(3)}}
	c := BinaryOp{BinaryOp{Number(1), Add, Number(2)}, Mul, Number(3)}

	require.True(t, Expr(a) == Expr(b))
	require.False(t, Expr(a) == Expr(c))
	require.False(t, Expr(Number(1)) == Expr(BinaryOp{Number(1), Add, Number(0)}))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
