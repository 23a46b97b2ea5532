// Package grammar analyzes context-free grammars for the LL(1) class. It
// computes FIRST/FOLLOW sets, detects left recursion, builds a predictive
// parsing table, and reports the conflicts that make a grammar ambiguous
// for one-token lookahead.
package grammar

import (
	"github.com/nihei9/llgram/grammar/symbol"
	"github.com/nihei9/llgram/spec"
)

// Classifier reports whether a symbol name denotes a terminal symbol.
// Classification is a policy the caller owns. The default policy treats a
// name as a non-terminal iff it appears as the head of some rule; use
// WithClassifier to replace it, for example to reproduce a case-based
// convention.
type Classifier func(name string) bool

type BuildOption func(b *grammarBuilder)

func WithClassifier(c Classifier) BuildOption {
	return func(b *grammarBuilder) {
		b.classifier = c
	}
}

// Grammar owns the production rules, the symbol table partitioning names
// into terminals and non-terminals, and the start symbol. It is immutable
// after BuildGrammar returns; all analyses read it without modifying it.
type Grammar struct {
	symTab *symbol.SymbolTable
	prods  *productionSet
	start  symbol.Symbol
}

func (g *Grammar) Start() symbol.Symbol {
	return g.start
}

func (g *Grammar) SymbolTable() *symbol.SymbolTableReader {
	return g.symTab.Reader()
}

type grammarBuilder struct {
	classifier Classifier
}

// BuildGrammar constructs a Grammar from an already-structured rule set.
// The head of the first rule becomes the start symbol. It fails with
// *MalformedGrammarError when the rule set is empty, a name classified as a
// non-terminal has no production, a head is classified as a terminal, or a
// rule contains duplicate alternatives.
func BuildGrammar(ruleset *spec.RuleSet, opts ...BuildOption) (*Grammar, error) {
	if ruleset == nil || len(ruleset.Rules) == 0 {
		return nil, &MalformedGrammarError{Cause: semErrNoProduction}
	}

	b := &grammarBuilder{}
	for _, opt := range opts {
		opt(b)
	}

	heads := map[string]struct{}{}
	for _, rule := range ruleset.Rules {
		heads[rule.LHS] = struct{}{}
	}
	if b.classifier == nil {
		b.classifier = func(name string) bool {
			_, isHead := heads[name]
			return !isHead
		}
	}

	symTab := symbol.NewSymbolTable()
	w := symTab.Writer()

	var start symbol.Symbol
	for _, rule := range ruleset.Rules {
		if rule.LHS == symbol.SymbolNameEOF {
			return nil, &MalformedGrammarError{Cause: semErrReservedName, Symbol: rule.LHS}
		}
		if b.classifier(rule.LHS) {
			return nil, &MalformedGrammarError{Cause: semErrTermAsHead, Symbol: rule.LHS}
		}
		sym, err := w.RegisterNonTerminalSymbol(rule.LHS)
		if err != nil {
			return nil, err
		}
		if start.IsNil() {
			start = sym
		}
	}

	prods := newProductionSet()
	for _, rule := range ruleset.Rules {
		if len(rule.Alternatives) == 0 {
			return nil, &MalformedGrammarError{Cause: semErrUndefinedNonTerm, Symbol: rule.LHS}
		}
		lhs, _ := symTab.Reader().ToSymbol(rule.LHS)
		for _, alt := range rule.Alternatives {
			rhs := make([]symbol.Symbol, 0, len(alt))
			for _, name := range alt {
				if name == symbol.SymbolNameEOF {
					return nil, &MalformedGrammarError{Cause: semErrReservedName, Symbol: name}
				}
				var sym symbol.Symbol
				var err error
				if b.classifier(name) {
					sym, err = w.RegisterTerminalSymbol(name)
				} else {
					if _, isHead := heads[name]; !isHead {
						return nil, &MalformedGrammarError{Cause: semErrUndefinedNonTerm, Symbol: name}
					}
					sym, err = w.RegisterNonTerminalSymbol(name)
				}
				if err != nil {
					return nil, err
				}
				rhs = append(rhs, sym)
			}

			prod, err := newProduction(lhs, rhs)
			if err != nil {
				return nil, err
			}
			if added := prods.append(prod); !added {
				return nil, &MalformedGrammarError{Cause: semErrDuplicateProduction, Symbol: rule.LHS}
			}
		}
	}

	return &Grammar{
		symTab: symTab,
		prods:  prods,
		start:  start,
	}, nil
}
