// Command evalcli runs a YAML-encoded scenario file through the
// evaluator and reports the value (or, for a residual, its Go type) and
// the cost consumed. Its shape follows the teacher's cmd/able/main.go: a
// subcommand switch in run(args) returning an exit code, main calling
// os.Exit(run(os.Args[1:])).
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chainscript/evalcore/pkg/evaluator"
	"github.com/chainscript/evalcore/pkg/nativefn"
	"github.com/chainscript/evalcore/pkg/scenario"
	"github.com/chainscript/evalcore/pkg/term"
)

const cliToolVersion = "evalcli 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runScenario(args[1:])
	case "inspect":
		return inspectScenario(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: evalcli run <scenario.yaml>")
	fmt.Fprintln(os.Stderr, "       evalcli inspect <scenario.yaml>")
}

func runScenario(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "run: expected exactly one scenario path")
		return 1
	}

	sc, err := scenario.Load(args[0], nativefn.All())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load scenario: %v\n", err)
		return 1
	}

	result, cost, err := evaluator.Evaluate(sc.Expr, sc.Ctx, sc.Limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "evaluation failed: %v\n", err)
		return 1
	}

	if term.IsEvaluated(result) {
		fmt.Fprintf(os.Stdout, "value: %s\ncost: %d\n", term.AsValue(result), cost)
		return 0
	}
	fmt.Fprintf(os.Stdout, "residual: %T (budget %d exhausted)\ncost: %d\n", result, sc.Limit, cost)
	return 0
}

func inspectScenario(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "inspect: expected exactly one scenario path")
		return 1
	}

	sc, err := scenario.Load(args[0], nativefn.All())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load scenario: %v\n", err)
		return 1
	}

	fmt.Fprintf(os.Stdout, "version: %s\nlimit: %d\nbindings: %s\n",
		sc.Version, sc.Limit, strings.Join(sc.Ctx.LetNames(), ", "))
	return 0
}
