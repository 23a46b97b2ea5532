package grammar

import (
	"sort"

	"github.com/nihei9/llgram/grammar/symbol"
)

// Conflict records the competing productions at one parsing-table cell, in
// the order the builder attempted to write them. The first production stays
// in the table; the rest are rejected writes. A grammar is LL(1) iff the
// builder records no conflicts.
type Conflict struct {
	NonTerminal string
	Terminal    string
	Productions []int
}

// LL1Table maps a (non-terminal, lookahead terminal) pair to the single
// production the predictive parser must expand. Cells are stored in a flat
// array indexed by symbol numbers. The table is immutable after
// construction, so concurrent parse runs can share it.
type LL1Table struct {
	entries      []productionNum
	termCount    int
	start        symbol.Symbol
	alternatives [][]symbol.Symbol
	lhs          []symbol.Symbol
	conflicts    []*Conflict
	symTab       *symbol.SymbolTableReader
}

func (t *LL1Table) Start() symbol.Symbol {
	return t.start
}

// Find returns the number of the production registered for the pair of a
// non-terminal and a lookahead terminal. The lookahead may be the EOF
// symbol.
func (t *LL1Table) Find(nonTerm symbol.Symbol, la symbol.Symbol) (int, bool) {
	if !nonTerm.IsNonTerminal() || !la.IsTerminal() {
		return 0, false
	}
	num := t.entries[nonTerm.Num().Int()*t.termCount+la.Num().Int()]
	if num == productionNumNil {
		return 0, false
	}
	return num.Int(), true
}

// Alternative returns the body of a production. An empty body means the
// production derives the empty string.
func (t *LL1Table) Alternative(prod int) []symbol.Symbol {
	return t.alternatives[prod]
}

func (t *LL1Table) LHS(prod int) symbol.Symbol {
	return t.lhs[prod]
}

func (t *LL1Table) ProductionCount() int {
	return len(t.alternatives) - 1
}

func (t *LL1Table) Conflicts() []*Conflict {
	return t.conflicts
}

func (t *LL1Table) ToTerminal(text string) (symbol.Symbol, bool) {
	sym, ok := t.symTab.ToSymbol(text)
	if !ok || !sym.IsTerminal() {
		return symbol.SymbolNil, false
	}
	return sym, true
}

func (t *LL1Table) SymbolText(sym symbol.Symbol) string {
	text, ok := t.symTab.ToText(sym)
	if !ok {
		return sym.String()
	}
	return text
}

// genLL1Table builds the predictive parsing table. For a production A→β,
// the production occupies the cell (A, t) for every terminal t in FIRST(β),
// and additionally for every terminal (and EOF) in FOLLOW(A) when β is
// nullable. A second distinct write to an occupied cell doesn't overwrite
// it; the collision is recorded as a Conflict instead.
func genLL1Table(prods *productionSet, first *firstSet, follow *followSet, start symbol.Symbol, symTab *symbol.SymbolTableReader) (*LL1Table, error) {
	t := &LL1Table{
		entries:      make([]productionNum, symTab.NonTerminalCount()*symTab.TerminalCount()),
		termCount:    symTab.TerminalCount(),
		start:        start,
		alternatives: make([][]symbol.Symbol, prods.count()+1),
		lhs:          make([]symbol.Symbol, prods.count()+1),
		symTab:       symTab,
	}

	conflicts := map[int]*Conflict{}
	write := func(prod *production, la symbol.Symbol) {
		pos := prod.lhs.Num().Int()*t.termCount + la.Num().Int()
		occupant := t.entries[pos]
		if occupant == productionNumNil {
			t.entries[pos] = prod.num
			return
		}
		if occupant == prod.num {
			return
		}
		if c, ok := conflicts[pos]; ok {
			for _, num := range c.Productions {
				if num == prod.num.Int() {
					return
				}
			}
			c.Productions = append(c.Productions, prod.num.Int())
			return
		}
		conflicts[pos] = &Conflict{
			NonTerminal: t.SymbolText(prod.lhs),
			Terminal:    t.SymbolText(la),
			Productions: []int{occupant.Int(), prod.num.Int()},
		}
	}

	for _, prod := range prods.getAllProductions() {
		t.alternatives[prod.num.Int()] = prod.rhs
		t.lhs[prod.num.Int()] = prod.lhs

		fst, err := first.ofString(prod.rhs)
		if err != nil {
			return nil, err
		}
		for la := range fst.symbols {
			write(prod, la)
		}
		if fst.empty {
			flw, err := follow.find(prod.lhs)
			if err != nil {
				return nil, err
			}
			for la := range flw.symbols {
				write(prod, la)
			}
			if flw.eof {
				write(prod, symbol.SymbolEOF)
			}
		}
	}

	positions := make([]int, 0, len(conflicts))
	for pos := range conflicts {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	for _, pos := range positions {
		t.conflicts = append(t.conflicts, conflicts[pos])
	}

	return t, nil
}
