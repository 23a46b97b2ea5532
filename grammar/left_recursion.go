package grammar

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/nihei9/llgram/grammar/symbol"
)

// LeftRecursionError indicates that a grammar cannot be represented as an
// LL(1) parsing table because some non-terminal derives a string beginning
// with itself. Productions lists the directly left-recursive productions
// and NonTerminals lists every non-terminal on a left-recursion cycle, both
// in display form.
type LeftRecursionError struct {
	Productions  []string
	NonTerminals []string
}

func (e *LeftRecursionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "the grammar contains left recursion")
	if len(e.Productions) > 0 {
		fmt.Fprintf(&b, "; productions: %v", strings.Join(e.Productions, ", "))
	}
	if len(e.NonTerminals) > 0 {
		fmt.Fprintf(&b, "; non-terminals: %v", strings.Join(e.NonTerminals, ", "))
	}
	return b.String()
}

type leftRecursion struct {
	directProds []*production
	cyclic      map[symbol.Symbol]struct{}
}

func (lr *leftRecursion) empty() bool {
	return len(lr.directProds) == 0 && len(lr.cyclic) == 0
}

// detectLeftRecursion finds direct and indirect left recursion. The
// indirect check walks a derivation graph that has an edge A→B when some
// production of A can put B at the leftmost position, which means every
// symbol before B in the body is a nullable non-terminal. Nullability comes
// from the FIRST sets, so this check runs after FIRST computation.
func detectLeftRecursion(prods *productionSet, first *firstSet) *leftRecursion {
	rec := &leftRecursion{
		cyclic: map[symbol.Symbol]struct{}{},
	}

	for _, prod := range prods.getAllProductions() {
		if prod.rhsLen > 0 && prod.rhs[0] == prod.lhs {
			rec.directProds = append(rec.directProds, prod)
		}
	}

	edges := map[symbol.Symbol][]symbol.Symbol{}
	for _, prod := range prods.getAllProductions() {
		for _, sym := range prod.rhs {
			if sym.IsTerminal() {
				break
			}
			edges[prod.lhs] = append(edges[prod.lhs], sym)
			e := first.findBySymbol(sym)
			if e == nil || !e.empty {
				break
			}
		}
	}

	for lhs := range edges {
		if reaches(edges, lhs, lhs) {
			rec.cyclic[lhs] = struct{}{}
		}
	}

	return rec
}

// reaches reports whether target is reachable from origin via a nonempty
// path. The visited set guards against revisiting nodes, so the walk
// terminates on cyclic graphs.
func reaches(edges map[symbol.Symbol][]symbol.Symbol, origin, target symbol.Symbol) bool {
	visited := map[symbol.Symbol]struct{}{}
	stack := make([]symbol.Symbol, 0, len(edges))
	stack = append(stack, edges[origin]...)
	for len(stack) > 0 {
		sym := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if sym == target {
			return true
		}
		if _, ok := visited[sym]; ok {
			continue
		}
		visited[sym] = struct{}{}
		stack = append(stack, edges[sym]...)
	}
	return false
}

func (lr *leftRecursion) describe(symTab *symbol.SymbolTableReader) *LeftRecursionError {
	err := &LeftRecursionError{}
	for _, prod := range lr.directProds {
		err.Productions = append(err.Productions, describeProduction(symTab, prod))
	}
	names := treeset.NewWith(utils.StringComparator)
	for sym := range lr.cyclic {
		text, ok := symTab.ToText(sym)
		if !ok {
			text = sym.String()
		}
		names.Add(text)
	}
	for _, name := range names.Values() {
		err.NonTerminals = append(err.NonTerminals, name.(string))
	}
	return err
}

func describeProduction(symTab *symbol.SymbolTableReader, prod *production) string {
	var b strings.Builder
	lhs, ok := symTab.ToText(prod.lhs)
	if !ok {
		lhs = prod.lhs.String()
	}
	fmt.Fprintf(&b, "%v →", lhs)
	if prod.isEmpty() {
		fmt.Fprintf(&b, " ε")
		return b.String()
	}
	for _, sym := range prod.rhs {
		text, ok := symTab.ToText(sym)
		if !ok {
			text = sym.String()
		}
		fmt.Fprintf(&b, " %v", text)
	}
	return b.String()
}
