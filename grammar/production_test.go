package grammar

import "testing"

func TestProductionSet(t *testing.T) {
	g := genGrammar(t, `
s -> foo bar | foo
foo -> f
bar -> b | ε
`)
	genSym := newTestSymbolGenerator(t, g.symTab.Reader())
	genProd := newTestProductionGenerator(t, genSym)

	// Declaration order assigns the numbers.
	wantProds := []*production{
		genProd("s", "foo", "bar"),
		genProd("s", "foo"),
		genProd("foo", "f"),
		genProd("bar", "b"),
		genProd("bar"),
	}
	for i, want := range wantProds {
		got, ok := g.prods.findByNum(productionNum(i + 1))
		if !ok {
			t.Fatalf("a production was not found; num: %v", i+1)
		}
		if got.id != want.id {
			t.Fatalf("unexpected production at num %v; want: %v, got: %v", i+1, want.id, got.id)
		}
	}

	// findByLHS keeps the alternatives in order.
	prods, ok := g.prods.findByLHS(genSym("s"))
	if !ok || len(prods) != 2 {
		t.Fatalf("productions of s were not found")
	}
	if prods[0].rhsLen != 2 || prods[1].rhsLen != 1 {
		t.Fatalf("alternatives are out of order")
	}

	// The empty alternative derives the empty string.
	prods, ok = g.prods.findByLHS(genSym("bar"))
	if !ok || len(prods) != 2 {
		t.Fatalf("productions of bar were not found")
	}
	if prods[0].isEmpty() || !prods[1].isEmpty() {
		t.Fatalf("unexpected empty-string derivations")
	}

	// Appending a production twice has no effect.
	if added := g.prods.append(wantProds[0]); added {
		t.Fatalf("a duplicate production must not be appended")
	}
	if g.prods.count() != len(wantProds) {
		t.Fatalf("unexpected production count; want: %v, got: %v", len(wantProds), g.prods.count())
	}
}
