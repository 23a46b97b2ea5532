package main

import (
	"errors"

	"github.com/nihei9/llgram/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "validate <grammar file path>",
		Short:   "Judge whether a grammar is LL(1)-parseable",
		Example: `  llgram validate grammar.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runValidate,
	}
	rootCmd.AddCommand(cmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}

	err = grammar.Validate(g)
	if err == nil {
		pterm.Success.Println("the grammar is LL(1)")
		return nil
	}

	var recErr *grammar.LeftRecursionError
	if errors.As(err, &recErr) {
		for _, prod := range recErr.Productions {
			pterm.Warning.Printf("directly left-recursive production: %v\n", prod)
		}
		for _, name := range recErr.NonTerminals {
			pterm.Warning.Printf("left-recursive non-terminal: %v\n", name)
		}
	}
	var ambErr *grammar.AmbiguityError
	if errors.As(err, &ambErr) {
		for _, c := range ambErr.Conflicts {
			pterm.Warning.Printf("conflict at (%v, %v): productions %v\n", c.NonTerminal, c.Terminal, c.Productions)
		}
	}
	return err
}
