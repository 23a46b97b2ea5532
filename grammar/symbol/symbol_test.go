package symbol

import "testing"

func TestSymbolTable(t *testing.T) {
	tab := NewSymbolTable()
	w := tab.Writer()
	r := tab.Reader()

	nonTerms := []string{"expr", "term", "factor"}
	terms := []string{"add", "mul", "l_paren", "r_paren", "id"}

	for _, text := range nonTerms {
		sym, err := w.RegisterNonTerminalSymbol(text)
		if err != nil {
			t.Fatalf("failed to register a non-terminal symbol: %v", err)
		}
		if !sym.IsNonTerminal() || sym.IsTerminal() || sym.IsNil() || sym.IsEOF() {
			t.Fatalf("invalid symbol: %v", sym)
		}
	}
	for _, text := range terms {
		sym, err := w.RegisterTerminalSymbol(text)
		if err != nil {
			t.Fatalf("failed to register a terminal symbol: %v", err)
		}
		if !sym.IsTerminal() || sym.IsNonTerminal() || sym.IsNil() || sym.IsEOF() {
			t.Fatalf("invalid symbol: %v", sym)
		}
	}

	for _, text := range append(nonTerms, terms...) {
		sym, ok := r.ToSymbol(text)
		if !ok {
			t.Fatalf("a symbol was not found: %v", text)
		}
		back, ok := r.ToText(sym)
		if !ok || back != text {
			t.Fatalf("unexpected text; want: %v, got: %v", text, back)
		}
	}

	if _, ok := r.ToSymbol("unknown"); ok {
		t.Fatalf("a symbol must not be found")
	}

	eof, ok := r.ToSymbol(SymbolNameEOF)
	if !ok || !eof.IsEOF() || !eof.IsTerminal() {
		t.Fatalf("the EOF symbol is invalid: %v", eof)
	}

	if len(r.TerminalTexts()) != len(terms)+2 {
		t.Fatalf("unexpected terminal count: %v", len(r.TerminalTexts()))
	}
	if len(r.NonTerminalTexts()) != len(nonTerms)+1 {
		t.Fatalf("unexpected non-terminal count: %v", len(r.NonTerminalTexts()))
	}
}

func TestSymbolTable_RegistrationIsIdempotent(t *testing.T) {
	tab := NewSymbolTable()
	w := tab.Writer()

	sym1, err := w.RegisterTerminalSymbol("id")
	if err != nil {
		t.Fatalf("failed to register a terminal symbol: %v", err)
	}
	sym2, err := w.RegisterTerminalSymbol("id")
	if err != nil {
		t.Fatalf("failed to register a terminal symbol: %v", err)
	}
	if sym1 != sym2 {
		t.Fatalf("the same name must map to the same symbol; got: %v and %v", sym1, sym2)
	}
}

func TestSymbolTable_KindsAreDisjoint(t *testing.T) {
	tab := NewSymbolTable()
	w := tab.Writer()

	if _, err := w.RegisterNonTerminalSymbol("expr"); err != nil {
		t.Fatalf("failed to register a non-terminal symbol: %v", err)
	}
	if _, err := w.RegisterTerminalSymbol("expr"); err == nil {
		t.Fatalf("registering a name in both kinds must fail")
	}

	if _, err := w.RegisterTerminalSymbol("id"); err != nil {
		t.Fatalf("failed to register a terminal symbol: %v", err)
	}
	if _, err := w.RegisterNonTerminalSymbol("id"); err == nil {
		t.Fatalf("registering a name in both kinds must fail")
	}
}
