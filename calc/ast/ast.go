package ast

import (
	"strconv"

	"tlog.app/go/tlog/tlwire"
)

type (
	// Expr is an immutable expression tree.
	// Trees are comparable with ==.
	Expr interface {
		Eval() (float64, error)
		AppendTo(b []byte) []byte
		String() string

		expr()
	}

	Number float64

	BinaryOp struct {
		Left  Expr
		Op    Op
		Right Expr
	}

	Op int8
)

const (
	_ Op = iota

	Add
	Sub
	Mul
	Div
)

func (Number) expr()   {}
func (BinaryOp) expr() {}

func (n Number) AppendTo(b []byte) []byte {
	return strconv.AppendFloat(b, float64(n), 'f', -1, 64)
}

func (n Number) String() string {
	return string(n.AppendTo(nil))
}

func (n Number) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	return e.AppendString(b, n.String())
}

// AppendTo appends fully parenthesized infix form: (left op right).
func (x BinaryOp) AppendTo(b []byte) []byte {
	b = append(b, '(')
	b = x.Left.AppendTo(b)
	b = append(b, ' ')
	b = append(b, x.Op.String()...)
	b = append(b, ' ')
	b = x.Right.AppendTo(b)
	b = append(b, ')')

	return b
}

func (x BinaryOp) String() string {
	return string(x.AppendTo(nil))
}

func (x BinaryOp) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	return e.AppendString(b, x.String())
}

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// Prec is the binding level of the operator. Higher binds tighter.
func (op Op) Prec() int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	default:
		return 0
	}
}

// Atom is the binding level of a Number.
const Atom = 3

// Prec returns the binding level of the tree root.
func Prec(x Expr) int {
	if x, ok := x.(BinaryOp); ok {
		return x.Op.Prec()
	}

	return Atom
}
