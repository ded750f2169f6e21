// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"calc/grammar"
	"calc/internal/calc"
	calcerrors "calc/internal/errors"
)

const PROMPT = ">> "

const help = `Enter an expression to evaluate it. Commands:
  :ast <expr>   show how the expression is grouped
  :lenient      ignore input left over after a complete expression
  :strict       reject left over input (default)
  :quit         leave the REPL
`

// Start reads expressions from in until EOF or :quit, writing results and
// diagnostics to out.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	evaluator := calc.New()

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == ":quit" || line == ":q":
			return
		case line == ":help":
			fmt.Fprint(out, help)
		case line == ":lenient":
			evaluator = calc.New(calc.WithTrailingInput())
			fmt.Fprintln(out, "trailing input is ignored")
		case line == ":strict":
			evaluator = calc.New()
			fmt.Fprintln(out, "trailing input is rejected")
		case strings.HasPrefix(line, ":ast"):
			printTree(out, evaluator, strings.TrimSpace(strings.TrimPrefix(line, ":ast")))
		case strings.HasPrefix(line, ":"):
			fmt.Fprintf(out, "unknown command %s, try :help\n", line)
		default:
			value, err := evaluator.Evaluate(line)
			if err != nil {
				report(out, line, err)
				continue
			}
			fmt.Fprintln(out, calc.Format(value))
		}
	}
}

func printTree(out io.Writer, evaluator *calc.Evaluator, expression string) {
	if _, err := evaluator.Evaluate(expression); err != nil {
		report(out, expression, err)
		return
	}

	tree, err := grammar.Parse(expression)
	if err != nil {
		fmt.Fprintf(out, "Error: %s.\n", err)
		return
	}
	fmt.Fprint(out, tree.Tree())
}

func report(out io.Writer, line string, err error) {
	var syntaxErr *calc.SyntaxError
	if !errors.As(err, &syntaxErr) {
		fmt.Fprintf(out, "Error: %s.\n", err)
		return
	}

	reporter := calcerrors.NewErrorReporter("<repl>", line)
	fmt.Fprint(out, reporter.FormatError(calcerrors.FromSyntaxError(syntaxErr, 1, line)))
}
