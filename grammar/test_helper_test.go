package grammar

import (
	"strings"
	"testing"

	"github.com/nihei9/llgram/grammar/symbol"
	"github.com/nihei9/llgram/spec"
)

func genGrammar(t *testing.T, src string) *Grammar {
	t.Helper()

	ruleset, err := spec.ParseRuleSet(strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to parse a rule set: %v", err)
	}
	g, err := BuildGrammar(ruleset)
	if err != nil {
		t.Fatalf("failed to build a grammar: %v", err)
	}
	return g
}

type testSymbolGenerator func(text string) symbol.Symbol

func newTestSymbolGenerator(t *testing.T, symTab *symbol.SymbolTableReader) testSymbolGenerator {
	return func(text string) symbol.Symbol {
		t.Helper()

		sym, ok := symTab.ToSymbol(text)
		if !ok {
			t.Fatalf("symbol was not found: %v", text)
		}
		return sym
	}
}

type testProductionGenerator func(lhs string, rhs ...string) *production

func newTestProductionGenerator(t *testing.T, genSym testSymbolGenerator) testProductionGenerator {
	return func(lhs string, rhs ...string) *production {
		t.Helper()

		rhsSym := []symbol.Symbol{}
		for _, text := range rhs {
			rhsSym = append(rhsSym, genSym(text))
		}
		prod, err := newProduction(genSym(lhs), rhsSym)
		if err != nil {
			t.Fatalf("failed to create a production: %v", err)
		}

		return prod
	}
}
