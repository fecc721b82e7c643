package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"tical/engine"
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPRESSION...",
	Short: "evaluate expressions and print the results",
	Long: `Evaluates each argument as one expression and prints its result.
Evaluation errors are printed in place of a result; they do not
change the exit status.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := engine.New(cfg.EngineOptions())
		for _, expr := range args {
			res := eng.Evaluate(expr)
			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
		}
		return nil
	},
}

// runREPL drives the interactive session. Evaluation errors are printed and
// the session continues; only a read failure ends it abnormally.
func runREPL(in io.Reader, out io.Writer) error {
	eng := engine.New(cfg.EngineOptions())

	fmt.Fprintln(out, "tical interactive calculator")
	fmt.Fprintln(out, `type "help" for commands, "quit" to exit`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if done := runReplCommand(eng, out, line); done {
			return nil
		}
	}
}

// runReplCommand handles one line and reports whether the session should end.
func runReplCommand(eng *engine.Engine, out io.Writer, line string) bool {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprint(out, replHelp)
		names := engine.Builtins()
		sort.Strings(names)
		fmt.Fprintf(out, "functions: %s\n", strings.Join(names, " "))
		return false
	case "history":
		hist := eng.History()
		if len(hist) == 0 {
			fmt.Fprintln(out, "history is empty")
			return false
		}
		for i, r := range hist {
			fmt.Fprintf(out, "%3d  %s = %s\n", i+1, r.Expression, r.Text)
		}
		return false
	case "clear":
		eng.ClearHistory()
		fmt.Fprintln(out, "history cleared")
		return false
	case "mode":
		if len(fields) == 2 {
			switch strings.ToLower(fields[1]) {
			case "deg":
				eng.Env().SetUnit(engine.Degrees)
				return false
			case "rad":
				eng.Env().SetUnit(engine.Radians)
				return false
			}
		}
		fmt.Fprintln(out, "usage: mode deg|rad")
		return false
	case "mem":
		fmt.Fprintln(out, engine.Format(eng.RecallMemory(), eng.Precision()))
		return false
	}

	res := eng.Evaluate(line)
	fmt.Fprintln(out, res.Text)
	return false
}

const replHelp = `commands:
  help          show this help
  history       list past calculations
  clear         clear the history
  mode deg|rad  set the angle unit
  mem           print the memory register
  quit          exit

anything else is evaluated as an expression. Ans holds the last
result and M the memory register.
`
