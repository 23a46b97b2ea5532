package grammar

type SymbolSetDesc struct {
	Terminals []string `json:"terminals"`
	Empty     bool     `json:"empty,omitempty"`
	EOF       bool     `json:"eof,omitempty"`
}

type NonTerminalDesc struct {
	Name   string         `json:"name"`
	First  *SymbolSetDesc `json:"first"`
	Follow *SymbolSetDesc `json:"follow"`
}

type ProductionDesc struct {
	Number int      `json:"number"`
	Head   string   `json:"head"`
	Body   []string `json:"body"`
}

type TableEntryDesc struct {
	NonTerminal string `json:"non_terminal"`
	Terminal    string `json:"terminal"`
	Production  int    `json:"production"`
}

type ConflictDesc struct {
	NonTerminal string `json:"non_terminal"`
	Terminal    string `json:"terminal"`
	Productions []int  `json:"productions"`
}

// Report is a display-ready view of an analysis. The CLI renders it or
// emits it as JSON; the analysis core itself never prints.
type Report struct {
	Accepted     bool               `json:"accepted"`
	Start        string             `json:"start"`
	Terminals    []string           `json:"terminals"`
	NonTerminals []*NonTerminalDesc `json:"non_terminals"`
	Productions  []*ProductionDesc  `json:"productions"`
	Table        []*TableEntryDesc  `json:"table"`
	Conflicts    []*ConflictDesc    `json:"conflicts,omitempty"`
}

func (a *Analysis) Report() *Report {
	symTab := a.g.symTab.Reader()

	rep := &Report{
		Accepted: len(a.table.conflicts) == 0,
		Start:    a.table.SymbolText(a.g.start),
	}

	termTexts := symTab.TerminalTexts()
	for _, text := range termTexts[2:] {
		rep.Terminals = append(rep.Terminals, text)
	}

	for _, sym := range symTab.NonTerminalSymbols() {
		name := a.table.SymbolText(sym)
		first, nullable, _ := a.First(name)
		follow, eof, _ := a.Follow(name)
		rep.NonTerminals = append(rep.NonTerminals, &NonTerminalDesc{
			Name: name,
			First: &SymbolSetDesc{
				Terminals: first,
				Empty:     nullable,
			},
			Follow: &SymbolSetDesc{
				Terminals: follow,
				EOF:       eof,
			},
		})
	}

	for num := productionNumMin; num.Int() <= a.g.prods.count(); num++ {
		prod, _ := a.g.prods.findByNum(num)
		desc := &ProductionDesc{
			Number: num.Int(),
			Head:   a.table.SymbolText(prod.lhs),
			Body:   []string{},
		}
		for _, sym := range prod.rhs {
			desc.Body = append(desc.Body, a.table.SymbolText(sym))
		}
		rep.Productions = append(rep.Productions, desc)
	}

	for _, nonTerm := range symTab.NonTerminalSymbols() {
		// TerminalSymbols includes the EOF symbol, so the entries driven
		// by FOLLOW end markers show up here as well.
		for _, term := range symTab.TerminalSymbols() {
			prod, ok := a.table.Find(nonTerm, term)
			if !ok {
				continue
			}
			rep.Table = append(rep.Table, &TableEntryDesc{
				NonTerminal: a.table.SymbolText(nonTerm),
				Terminal:    a.table.SymbolText(term),
				Production:  prod,
			})
		}
	}

	for _, c := range a.table.conflicts {
		rep.Conflicts = append(rep.Conflicts, &ConflictDesc{
			NonTerminal: c.NonTerminal,
			Terminal:    c.Terminal,
			Productions: c.Productions,
		})
	}

	return rep
}
