package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nihei9/llgram/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var analyzeFlags = struct {
	json *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "analyze <grammar file path>",
		Short:   "Compute FIRST/FOLLOW sets and the LL(1) parsing table",
		Example: `  llgram analyze grammar.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runAnalyze,
	}
	analyzeFlags.json = cmd.Flags().Bool("json", false, "print the report as JSON")
	rootCmd.AddCommand(cmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}

	a, err := grammar.Analyze(g)
	if err != nil {
		return err
	}
	rep := a.Report()

	if *analyzeFlags.json {
		out, err := json.MarshalIndent(rep, "", "    ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	return writeReport(rep)
}

func writeReport(rep *grammar.Report) error {
	pterm.Info.Printf("start symbol: %v\n", rep.Start)

	sets := pterm.TableData{
		{"Non-terminal", "FIRST", "FOLLOW"},
	}
	for _, nt := range rep.NonTerminals {
		sets = append(sets, []string{nt.Name, describeSymbolSet(nt.First), describeSymbolSet(nt.Follow)})
	}
	err := pterm.DefaultTable.WithHasHeader().WithData(sets).Render()
	if err != nil {
		return err
	}

	prods := pterm.TableData{
		{"#", "Production"},
	}
	for _, prod := range rep.Productions {
		body := "ε"
		if len(prod.Body) > 0 {
			body = strings.Join(prod.Body, " ")
		}
		prods = append(prods, []string{fmt.Sprintf("%v", prod.Number), fmt.Sprintf("%v → %v", prod.Head, body)})
	}
	err = pterm.DefaultTable.WithHasHeader().WithData(prods).Render()
	if err != nil {
		return err
	}

	entries := pterm.TableData{
		{"Non-terminal", "Terminal", "Production"},
	}
	for _, e := range rep.Table {
		entries = append(entries, []string{e.NonTerminal, e.Terminal, fmt.Sprintf("%v", e.Production)})
	}
	err = pterm.DefaultTable.WithHasHeader().WithData(entries).Render()
	if err != nil {
		return err
	}

	if len(rep.Conflicts) > 0 {
		for _, c := range rep.Conflicts {
			pterm.Warning.Printf("conflict at (%v, %v): productions %v\n", c.NonTerminal, c.Terminal, c.Productions)
		}
		pterm.Error.Println("the grammar is not LL(1)")
		return nil
	}
	pterm.Success.Println("the grammar is LL(1)")
	return nil
}

func describeSymbolSet(set *grammar.SymbolSetDesc) string {
	texts := make([]string, 0, len(set.Terminals)+1)
	texts = append(texts, set.Terminals...)
	if set.Empty {
		texts = append(texts, "ε")
	}
	if set.EOF {
		texts = append(texts, "$")
	}
	return strings.Join(texts, " ")
}
