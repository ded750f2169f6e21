// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"calc/grammar"
	"calc/internal/calc"
	calcerrors "calc/internal/errors"
	"calc/internal/worksheet"
)

const programName = "calc"

// errReported means the failure has already been written to stderr.
var errReported = errors.New("reported")

type options struct {
	lenient   bool
	ast       bool
	explain   bool
	file      string
	watch     bool
	noColor   bool
	verbosity int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(normalizeArgs(args))

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "Error: %s.\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   programName + " expression",
		Short: "Evaluate an arithmetic expression",
		Long: `Evaluate an arithmetic expression and print the result.

Expressions use numbers (3, 0.5), the operators + - * / ^ and parentheses.
'^' associates to the left, so 2^3^2 is 64. Spaces are ignored everywhere,
including inside numbers. Division by zero yields +Inf, -Inf or NaN.`,
		Example: `  calc "2 + 3 * 4"
  calc -2^2
  calc --explain "2(3)"
  calc --file budget.calc --watch`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(opts.verbosity, nil)
			if opts.noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			evaluator := newEvaluator(opts)

			if opts.file != "" {
				if len(args) > 0 {
					return fmt.Errorf("an expression and --file cannot be combined")
				}
				if opts.watch {
					return watchWorksheet(cmd.Context(), opts.file, evaluator, stdout, stderr)
				}
				return runWorksheet(opts.file, evaluator, stdout, stderr)
			}
			if opts.watch {
				return fmt.Errorf("--watch requires --file")
			}

			if len(args) == 0 {
				fmt.Fprintf(stdout, "Usage: %s expression\n", programName)
				return nil
			}

			return evaluate(args[0], evaluator, opts, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVar(&opts.lenient, "lenient", false, "ignore input left over after a complete expression")
	flags.BoolVar(&opts.ast, "ast", false, "print the parsed expression with explicit grouping instead of its value")
	flags.BoolVar(&opts.explain, "explain", false, "show the error location, code and a suggested fix")
	flags.StringVarP(&opts.file, "file", "f", "", "evaluate every line of a worksheet file")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "re-evaluate the worksheet whenever it changes")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	return cmd
}

func newEvaluator(opts *options) *calc.Evaluator {
	if opts.lenient {
		return calc.New(calc.WithTrailingInput())
	}
	return calc.New()
}

func evaluate(expression string, evaluator *calc.Evaluator, opts *options, stdout, stderr io.Writer) error {
	value, err := evaluator.Evaluate(expression)
	if err != nil {
		commonlog.GetLogger("calc.cli").Debugf("rejected %q: %v", expression, err)
		var syntaxErr *calc.SyntaxError
		if opts.explain && errors.As(err, &syntaxErr) {
			fmt.Fprintf(stderr, "Error: %s.\n", syntaxErr.Message)
			reporter := calcerrors.NewErrorReporter("<expression>", expression)
			fmt.Fprint(stderr, reporter.FormatError(calcerrors.FromSyntaxError(syntaxErr, 1, expression)))
			return errReported
		}
		return err
	}

	if opts.ast {
		expr, err := grammar.Parse(expression)
		if err != nil {
			return fmt.Errorf("failed to build expression tree: %w", err)
		}
		fmt.Fprintln(stdout, expr.String())
		return nil
	}

	fmt.Fprintln(stdout, calc.Format(value))
	return nil
}

func runWorksheet(path string, evaluator *calc.Evaluator, stdout, stderr io.Writer) error {
	sheet, err := worksheet.Load(path, evaluator)
	if err != nil {
		return err
	}

	if printSheet(path, sheet, stdout, stderr) > 0 {
		return errReported
	}
	return nil
}

func watchWorksheet(ctx context.Context, path string, evaluator *calc.Evaluator, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	return worksheet.Watch(ctx, path, evaluator, func(sheet *worksheet.Sheet, err error) {
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s.\n", err)
			return
		}
		fmt.Fprintf(stdout, "--- %s\n", path)
		printSheet(path, sheet, stdout, stderr)
	})
}

// printSheet writes "line: value" for every expression and a diagnostic for
// every failure, returning the number of failures.
func printSheet(path string, sheet *worksheet.Sheet, stdout, stderr io.Writer) int {
	reporter := calcerrors.NewErrorReporter(path, sheet.Source)

	failed := 0
	for _, line := range sheet.Lines {
		if line.Err != nil {
			failed++
			fmt.Fprint(stderr, reporter.FormatError(calcerrors.FromSyntaxError(line.Err, line.Number, line.Source)))
			continue
		}
		fmt.Fprintf(stdout, "%d: %s\n", line.Number, calc.Format(line.Value))
	}
	return failed
}
