package format

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/arith/calc/ast"
	"github.com/slowlang/arith/calc/parse"
)

func TestFormat(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		src      string
		exp      string
		implicit string
	}{
		{"1", "1", "1"},
		{"-5", "-5", "-5"},
		{"1 + 2 * 3", "1 + 2 * 3", "1 + 2 * 3"},
		{"(1 + 2) * 3", "(1 + 2) * 3", "(1 + 2) * 3"},
		{"10 - 2 - 3", "10 - 2 - 3", "10 - 2 - 3"},
		{"10 - (2 - 3)", "10 - (2 - 3)", "10 - (2 - 3)"},
		{"1 + (2 + 3)", "1 + (2 + 3)", "1 + (2 + 3)"},
		{"10 / (2 * 5)", "10 / (2 * 5)", "10 / (2 * 5)"},
		{"2(3 - 1)", "2 * (3 - 1)", "2(3 - 1)"},
		{"2 * (3 * 4)", "2 * (3 * 4)", "2(3 * 4)"},
		{"(2)(3)", "2 * 3", "2 * 3"},
		{"(1 + 2)(3 + 4)", "(1 + 2) * (3 + 4)", "(1 + 2)(3 + 4)"},
		{"6 / 2(1 + 2)", "6 / 2 * (1 + 2)", "6 / 2(1 + 2)"},
		{"-2(-3(1/3))", "-2 * (-3 * (1 / 3))", "-2(-3(1 / 3))"},
		{"1 - -2", "1 - -2", "1 - -2"},
		{"((((7))))", "7", "7"},
	} {
		x, err := parse.Parse(ctx, []byte(tc.src))
		require.NoError(t, err, "%q", tc.src)

		b, err := Format(ctx, nil, x)
		require.NoError(t, err, "%q", tc.src)
		assert.Equal(t, tc.exp, string(b), "%q", tc.src)

		b, err = Printer{Implicit: true}.Format(ctx, []byte("> "), x)
		require.NoError(t, err, "%q", tc.src)
		assert.Equal(t, "> "+tc.implicit, string(b), "%q", tc.src)
	}
}

func TestFormatUnsupported(t *testing.T) {
	ctx := context.Background()

	for _, x := range []ast.Expr{
		ast.Number(math.Inf(1)),
		ast.Number(math.NaN()),
		ast.Number(0.5),
		ast.BinaryOp{Left: ast.Number(1), Op: ast.Add, Right: ast.Number(math.Inf(-1))},
		nil,
	} {
		_, err := Format(ctx, nil, x)
		assert.Error(t, err, "%v", x)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	ctx := context.Background()
	rnd := rand.New(rand.NewSource(2))

	for _, p := range []Printer{{}, {Implicit: true}} {
		for i := 0; i < 500; i++ {
			x := randExpr(rnd, 6)

			b, err := p.Format(ctx, nil, x)
			require.NoError(t, err, "%v", x)

			y, err := parse.Parse(ctx, b)
			require.NoError(t, err, "%v -> %s", x, b)
			require.Equal(t, x, y, "%v -> %s", x, b)
		}
	}
}

func randExpr(rnd *rand.Rand, depth int) ast.Expr {
	if depth == 0 || rnd.Intn(4) == 0 {
		return ast.Number(rnd.Intn(21) - 10)
	}

	return ast.BinaryOp{
		Left:  randExpr(rnd, depth-1),
		Op:    ast.Op(1 + rnd.Intn(4)),
		Right: randExpr(rnd, depth-1),
	}
}
