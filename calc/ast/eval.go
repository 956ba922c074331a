package ast

import "strconv"

type (
	// EvalError is a runtime failure of evaluation.
	EvalError int
)

const (
	_ EvalError = iota

	DivisionByZero
)

func (n Number) Eval() (float64, error) {
	return float64(n), nil
}

// Eval evaluates left, then right, then applies the operator.
// Division by exactly zero fails with DivisionByZero,
// everything else follows float64 arithmetic.
func (x BinaryOp) Eval() (float64, error) {
	l, err := x.Left.Eval()
	if err != nil {
		return 0, err
	}

	r, err := x.Right.Eval()
	if err != nil {
		return 0, err
	}

	switch x.Op {
	case Add:
		return l + r, nil
	case Sub:
		return l - r, nil
	case Mul:
		return l * r, nil
	case Div:
		if r == 0 {
			return 0, DivisionByZero
		}

		return l / r, nil
	default:
		panic(x.Op)
	}
}

func (e EvalError) Error() string {
	switch e {
	case DivisionByZero:
		return "Division by zero"
	default:
		return "EvalError(" + strconv.Itoa(int(e)) + ")"
	}
}
