package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nihei9/llgram/grammar/symbol"
)

// AmbiguityError indicates that a grammar is free of left recursion but is
// still not LL(1): at least two productions compete for the same
// parsing-table cell. The table is built anyway (first-write-wins) so the
// collisions stay inspectable, but the grammar must not be parsed with it.
type AmbiguityError struct {
	Conflicts []*Conflict
}

func (e *AmbiguityError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "the grammar is not LL(1); %v conflicting cells:", len(e.Conflicts))
	for _, c := range e.Conflicts {
		fmt.Fprintf(&b, " (%v, %v)", c.NonTerminal, c.Terminal)
	}
	return b.String()
}

// Analysis holds the artifacts of a grammar analysis: the FIRST/FOLLOW
// sets and the parsing table. All of it is read-only.
type Analysis struct {
	g      *Grammar
	first  *firstSet
	follow *followSet
	table  *LL1Table
}

// Analyze computes FIRST sets, rejects left-recursive grammars, then
// computes FOLLOW sets and the parsing table. The returned error is a
// *LeftRecursionError when the grammar contains left recursion; in that
// case no table is built because an LL(1) table cannot represent the
// grammar. Conflicts don't make Analyze fail; they are kept on the table
// for inspection.
//
// Analyze doesn't modify the grammar, so repeated calls yield identical
// results.
func Analyze(g *Grammar) (*Analysis, error) {
	first, err := genFirstSet(g.prods)
	if err != nil {
		return nil, err
	}

	if rec := detectLeftRecursion(g.prods, first); !rec.empty() {
		return nil, rec.describe(g.symTab.Reader())
	}

	follow, err := genFollowSet(g.prods, first, g.start)
	if err != nil {
		return nil, err
	}

	table, err := genLL1Table(g.prods, first, follow, g.start, g.symTab.Reader())
	if err != nil {
		return nil, err
	}

	return &Analysis{
		g:      g,
		first:  first,
		follow: follow,
		table:  table,
	}, nil
}

// Validate reports whether a grammar is LL(1)-parseable. It returns nil on
// acceptance, a *LeftRecursionError when the grammar contains left
// recursion, or an *AmbiguityError when the parsing table has conflicts.
func Validate(g *Grammar) error {
	a, err := Analyze(g)
	if err != nil {
		return err
	}
	if conflicts := a.table.Conflicts(); len(conflicts) > 0 {
		return &AmbiguityError{
			Conflicts: conflicts,
		}
	}
	return nil
}

// Table returns the parsing table. Callers must check Conflicts before
// treating the table as parse-ready.
func (a *Analysis) Table() *LL1Table {
	return a.table
}

func (a *Analysis) Conflicts() []*Conflict {
	return a.table.Conflicts()
}

// First returns FIRST of a non-terminal as sorted terminal names, along
// with whether the set contains the empty marker.
func (a *Analysis) First(nonTerm string) (terminals []string, nullable bool, found bool) {
	symTab := a.g.symTab.Reader()
	sym, ok := symTab.ToSymbol(nonTerm)
	if !ok || !sym.IsNonTerminal() {
		return nil, false, false
	}
	e := a.first.findBySymbol(sym)
	if e == nil {
		return nil, false, false
	}
	return a.describeSymbols(e.symbols), e.empty, true
}

// Follow returns FOLLOW of a non-terminal as sorted terminal names, along
// with whether the set contains the end marker.
func (a *Analysis) Follow(nonTerm string) (terminals []string, eof bool, found bool) {
	symTab := a.g.symTab.Reader()
	sym, ok := symTab.ToSymbol(nonTerm)
	if !ok || !sym.IsNonTerminal() {
		return nil, false, false
	}
	e, err := a.follow.find(sym)
	if err != nil {
		return nil, false, false
	}
	return a.describeSymbols(e.symbols), e.eof, true
}

func (a *Analysis) describeSymbols(syms map[symbol.Symbol]struct{}) []string {
	symTab := a.g.symTab.Reader()
	texts := make([]string, 0, len(syms))
	for sym := range syms {
		text, ok := symTab.ToText(sym)
		if !ok {
			text = sym.String()
		}
		texts = append(texts, text)
	}
	sort.Strings(texts)
	return texts
}
