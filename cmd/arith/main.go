package main

import (
	"context"
	"os"

	"github.com/nikandfor/hacked/hfmt"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/arith/calc"
	"github.com/slowlang/arith/calc/ast"
	"github.com/slowlang/arith/calc/format"
)

var samples = []string{
	"2(3 - 1)",
	"10 / (5 - 5)",
}

func main() {
	evalCmd := &cli.Command{
		Name:        "eval",
		Description: "evaluate expressions (sample ones if none given)",
		Action:      evalAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("prefix", false, "ignore text after the expression"),
		},
	}

	parseCmd := &cli.Command{
		Name:        "parse",
		Description: "print fully parenthesized expressions",
		Action:      parseAct,
		Args:        cli.Args{},
	}

	fmtCmd := &cli.Command{
		Name:        "fmt",
		Description: "print expressions with minimal parentheses",
		Action:      fmtAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("implicit", false, "write multiplication by a parenthesized operand as adjacency"),
		},
	}

	app := &cli.Command{
		Name:        "arith",
		Description: "arith is an arithmetic expression evaluator",
		Before:      before,
		Flags: []*cli.Flag{
			cli.NewFlag("verbosity,v", "", "logger verbosity topics (parse_fold)"),
			cli.HelpFlag,
		},
		Commands: []*cli.Command{
			evalCmd,
			parseCmd,
			fmtCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func before(c *cli.Command) error {
	tlog.SetVerbosity(c.String("verbosity"))

	return nil
}

func evalAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	args := []string(c.Args)
	if len(args) == 0 {
		args = samples
	}

	b := evalArgs(ctx, nil, args, c.Bool("prefix"))

	_, err = os.Stdout.Write(b)

	return err
}

func parseAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	b, err := parseArgs(ctx, nil, c.Args)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(b)

	return err
}

func fmtAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	p := format.Printer{
		Implicit: c.Bool("implicit"),
	}

	b, err := fmtArgs(ctx, nil, p, c.Args)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(b)

	return err
}

// evalArgs reports errors inline so one bad expression does not hide the rest.
func evalArgs(ctx context.Context, b []byte, args []string, prefix bool) []byte {
	for _, a := range args {
		x, err := parseArg(ctx, a, prefix)
		if err != nil {
			b = hfmt.Appendf(b, "Parse Error: %v\n", err)
			continue
		}

		v, err := x.Eval()
		if err != nil {
			b = hfmt.Appendf(b, "Runtime Error for '%v': %v\n", x, err)
			continue
		}

		b = hfmt.Appendf(b, "%v => %v\n", x, v)
	}

	return b
}

func parseArgs(ctx context.Context, b []byte, args []string) ([]byte, error) {
	for _, a := range args {
		x, err := calc.Parse(ctx, a)
		if err != nil {
			return nil, errors.Wrap(err, "parse %q", a)
		}

		b = x.AppendTo(b)
		b = append(b, '\n')
	}

	return b, nil
}

func fmtArgs(ctx context.Context, b []byte, p format.Printer, args []string) ([]byte, error) {
	for _, a := range args {
		x, err := calc.Parse(ctx, a)
		if err != nil {
			return nil, errors.Wrap(err, "parse %q", a)
		}

		b, err = p.Format(ctx, b, x)
		if err != nil {
			return nil, errors.Wrap(err, "format %q", a)
		}

		b = append(b, '\n')
	}

	return b, nil
}

func parseArg(ctx context.Context, a string, prefix bool) (ast.Expr, error) {
	if !prefix {
		return calc.Parse(ctx, a)
	}

	x, _, err := calc.ParsePrefix(ctx, a)

	return x, err
}
