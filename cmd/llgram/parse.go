package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nihei9/llgram/driver"
	"github.com/nihei9/llgram/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	tokens *string
	trace  *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <grammar file path>",
		Short:   "Parse a pre-tokenized input against the LL(1) table",
		Example: `  llgram parse grammar.txt --tokens "num add num"
  echo "num add num" | llgram parse grammar.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}
	parseFlags.tokens = cmd.Flags().StringP("tokens", "t", "", "whitespace-separated terminal names (default stdin)")
	parseFlags.trace = cmd.Flags().Bool("trace", false, "print a step-by-step trace")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}

	a, err := grammar.Analyze(g)
	if err != nil {
		return err
	}
	if conflicts := a.Conflicts(); len(conflicts) > 0 {
		ambErr := &grammar.AmbiguityError{Conflicts: conflicts}
		return fmt.Errorf("the grammar is not parse-ready: %w", ambErr)
	}

	tokens, err := readTokens()
	if err != nil {
		return err
	}

	var res *driver.Result
	if *parseFlags.trace {
		res, err = driver.ParseTraced(a.Table(), tokens)
	} else {
		res, err = driver.Parse(a.Table(), tokens)
	}
	if err != nil {
		return err
	}

	if *parseFlags.trace {
		steps := pterm.TableData{
			{"Stack", "Input", "Action"},
		}
		for _, step := range res.Trace {
			action := string(step.Action)
			if step.Action == driver.TraceActionExpand {
				action = fmt.Sprintf("%v %v", action, step.Production)
			}
			steps = append(steps, []string{
				strings.Join(step.Stack, " "),
				strings.Join(step.Input, " "),
				action,
			})
		}
		err := pterm.DefaultTable.WithHasHeader().WithData(steps).Render()
		if err != nil {
			return err
		}
	}

	if res.Accepted {
		pterm.Success.Println("accepted")
		return nil
	}
	pterm.Error.Printf("rejected at position %v: %v; expected: %v, actual: %v\n", res.Pos, res.Reason, res.Expected, res.Actual)
	return nil
}

func readTokens() ([]string, error) {
	if *parseFlags.tokens != "" {
		return strings.Fields(*parseFlags.tokens), nil
	}
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	return strings.Fields(string(src)), nil
}
