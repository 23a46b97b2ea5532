package main

import (
	"os"

	"github.com/nihei9/llgram/grammar"
	"github.com/nihei9/llgram/spec"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "llgram",
	Short: "Analyze a context-free grammar for the LL(1) class",
	Long: `llgram analyzes a context-free grammar and drives a predictive parser:
- Computes FIRST/FOLLOW sets and an LL(1) parsing table.
- Diagnoses left recursion and parsing-table conflicts.
- Parses pre-tokenized inputs against the table, optionally with a step trace.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}

func readGrammar(path string) (*grammar.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ruleset, err := spec.ParseRuleSet(f)
	if err != nil {
		return nil, err
	}

	return grammar.BuildGrammar(ruleset)
}
