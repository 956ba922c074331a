package parse

import (
	"context"
	"fmt"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/arith/calc/ast"
)

type (
	State struct {
		b []byte

		Grammar Parser
	}

	Parser interface {
		Parse(ctx context.Context, b []byte, st int) (x ast.Expr, i int, err error)
	}

	// Operator matches a binary operator at st.
	// It reports ok == false and consumes nothing if there is none.
	Operator interface {
		ParseOp(ctx context.Context, b []byte, st int) (op ast.Op, i int, ok bool)
	}

	// Error is a syntax error.
	// Err is one of ErrExpectedAtom, ErrMismatchedParen or ErrTrailingInput.
	Error struct {
		Err  error
		Pos  int    // byte offset of the offending token
		Near string // input excerpt starting at Pos
	}
)

var (
	ErrExpectedAtom    = errors.New("Expected number or '('")
	ErrMismatchedParen = errors.New("Mismatched parenthesis")
	ErrTrailingInput   = errors.New("Unexpected trailing input")
)

const nearLen = 16

// Parse parses the whole text as an expression.
func Parse(ctx context.Context, text []byte) (ast.Expr, error) {
	return New(text).Parse(ctx)
}

// ParsePrefix parses the longest expression at the beginning of text
// and ignores the rest. It returns the end offset of the parsed prefix.
func ParsePrefix(ctx context.Context, text []byte) (ast.Expr, int, error) {
	return New(text).ParsePrefix(ctx)
}

func New(text []byte) *State {
	return &State{
		b:       text,
		Grammar: Sum{},
	}
}

// Parse fails with ErrTrailingInput if anything but spaces follows the expression.
func (s *State) Parse(ctx context.Context) (x ast.Expr, err error) {
	x, _, err = s.parse(ctx, true)

	return x, err
}

func (s *State) ParsePrefix(ctx context.Context) (x ast.Expr, i int, err error) {
	return s.parse(ctx, false)
}

func (s *State) parse(ctx context.Context, full bool) (x ast.Expr, i int, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "parse", "len", len(s.b), "full", full)
	defer tr.Finish("err", &err)

	x, i, err = s.Grammar.Parse(ctx, s.b, 0)
	if err != nil {
		return nil, i, err
	}

	if end := SpaceAll.Skip(s.b, i); full && end != len(s.b) {
		return nil, end, newError(ErrTrailingInput, s.b, end)
	}

	tr.Printw("parsed", "expr", x, "end", i)

	return x, i, nil
}

func newError(err error, b []byte, pos int) *Error {
	near := b[pos:]
	if len(near) > nearLen {
		near = near[:nearLen]
	}

	return &Error{
		Err:  err,
		Pos:  pos,
		Near: string(near),
	}
}

func (e *Error) Error() string {
	if e.Near == "" {
		return fmt.Sprintf("%v at pos %d: end of input", e.Err, e.Pos)
	}

	return fmt.Sprintf("%v at pos %d near %q", e.Err, e.Pos, e.Near)
}

func (e *Error) Unwrap() error {
	return e.Err
}
