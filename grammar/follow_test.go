package grammar

import "testing"

type follow struct {
	nonTerm string
	symbols []string
	eof     bool
}

func TestGenFollowSet(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		follow  []follow
	}{
		{
			caption: "the end marker seeds FOLLOW of the start symbol",
			src: `
s -> foo
foo -> f
`,
			follow: []follow{
				{nonTerm: "s", symbols: []string{}, eof: true},
				{nonTerm: "foo", symbols: []string{}, eof: true},
			},
		},
		{
			caption: "an expression grammar",
			src: `
e -> t erest
erest -> add t erest | ε
t -> f trest
trest -> mul f trest | ε
f -> l_paren e r_paren | num
`,
			follow: []follow{
				{nonTerm: "e", symbols: []string{"r_paren"}, eof: true},
				{nonTerm: "erest", symbols: []string{"r_paren"}, eof: true},
				{nonTerm: "t", symbols: []string{"add", "r_paren"}, eof: true},
				{nonTerm: "trest", symbols: []string{"add", "r_paren"}, eof: true},
				{nonTerm: "f", symbols: []string{"add", "mul", "r_paren"}, eof: true},
			},
		},
		{
			caption: "a nullable suffix propagates FOLLOW of the head",
			src: `
s -> foo bar
foo -> f
bar -> b | ε
`,
			follow: []follow{
				{nonTerm: "s", symbols: []string{}, eof: true},
				{nonTerm: "foo", symbols: []string{"b"}, eof: true},
				{nonTerm: "bar", symbols: []string{}, eof: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := genGrammar(t, tt.src)
			fst, err := genFirstSet(g.prods)
			if err != nil {
				t.Fatalf("failed to generate FIRST sets: %v", err)
			}
			flw, err := genFollowSet(g.prods, fst, g.start)
			if err != nil {
				t.Fatalf("failed to generate FOLLOW sets: %v", err)
			}

			genSym := newTestSymbolGenerator(t, g.symTab.Reader())
			for _, want := range tt.follow {
				e, err := flw.find(genSym(want.nonTerm))
				if err != nil {
					t.Fatalf("failed to find a FOLLOW entry: %v", err)
				}
				if len(e.symbols) != len(want.symbols) {
					t.Fatalf("unexpected symbol count of FOLLOW(%v); want: %v, got: %v", want.nonTerm, len(want.symbols), len(e.symbols))
				}
				for _, text := range want.symbols {
					if _, ok := e.symbols[genSym(text)]; !ok {
						t.Fatalf("a symbol is missing in FOLLOW(%v): %v", want.nonTerm, text)
					}
				}
				if e.eof != want.eof {
					t.Fatalf("unexpected end marker in FOLLOW(%v); want: %v, got: %v", want.nonTerm, want.eof, e.eof)
				}
			}
		})
	}
}

// FOLLOW sets are sets over terminals and the end marker; the empty marker
// never appears. The representation has no way to even express it, so this
// checks that every member of every computed FOLLOW set is a terminal.
func TestGenFollowSet_ContainsOnlyTerminals(t *testing.T) {
	src := `
e -> t erest
erest -> add t erest | ε
t -> f trest
trest -> mul f trest | ε
f -> l_paren e r_paren | num
`
	g := genGrammar(t, src)
	fst, err := genFirstSet(g.prods)
	if err != nil {
		t.Fatalf("failed to generate FIRST sets: %v", err)
	}
	flw, err := genFollowSet(g.prods, fst, g.start)
	if err != nil {
		t.Fatalf("failed to generate FOLLOW sets: %v", err)
	}

	for nonTerm, e := range flw.set {
		for sym := range e.symbols {
			if !sym.IsTerminal() {
				t.Fatalf("FOLLOW of %v contains a non-terminal: %v", nonTerm, sym)
			}
		}
	}
}
