// Package driver runs the table-driven predictive parsing algorithm
// against a pre-tokenized input. It consumes a finished LL(1) table and
// never mutates it, so any number of parsers can share one table.
package driver

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/nihei9/llgram/grammar"
	"github.com/nihei9/llgram/grammar/symbol"
)

// Grammar is the view of a compiled grammar the parsing loop needs.
type Grammar interface {
	// Start returns the start symbol.
	Start() symbol.Symbol

	// Find returns the production registered for the pair of a
	// non-terminal and a lookahead terminal.
	Find(nonTerm symbol.Symbol, la symbol.Symbol) (int, bool)

	// Alternative returns the body of a production. An empty body means
	// the production derives the empty string.
	Alternative(prod int) []symbol.Symbol

	// ToTerminal resolves a terminal name.
	ToTerminal(text string) (symbol.Symbol, bool)

	// SymbolText returns the display name of a symbol.
	SymbolText(sym symbol.Symbol) string
}

var _ Grammar = (*grammar.LL1Table)(nil)

// ErrUnknownTerminal is returned when an input token is not a terminal of
// the grammar. This is a caller fault, not a rejection: the parser can only
// judge sequences over the grammar's alphabet.
var ErrUnknownTerminal = errors.New("unknown terminal")

type RejectReason string

const (
	// RejectTerminalMismatch: the stack top is a terminal (or the end
	// marker) and the lookahead doesn't match it.
	RejectTerminalMismatch = RejectReason("terminal mismatch")

	// RejectNoApplicableProduction: the stack top is a non-terminal and
	// the table has no production for it under the lookahead.
	RejectNoApplicableProduction = RejectReason("no applicable production")
)

// Result is the verdict of one parse run. A rejection is a normal result
// value; Parse returns an error only for faults like unknown terminals.
type Result struct {
	Accepted bool

	// The following fields are set only on rejection.
	Reason   RejectReason
	Expected string
	Actual   string
	Pos      int

	// Trace is present only when tracing is enabled.
	Trace []*TraceStep
}

type TraceAction string

const (
	TraceActionMatch  = TraceAction("match")
	TraceActionExpand = TraceAction("expand")
	TraceActionError  = TraceAction("error")
	TraceActionAccept = TraceAction("accept")
)

// TraceStep is a snapshot of the parser state at one step: the stack from
// top to bottom, the remaining input, and the action taken. Recording
// steps never changes parsing decisions.
type TraceStep struct {
	Stack      []string
	Input      []string
	Action     TraceAction
	Production int
}

type ParserOption func(p *Parser) error

// EnableTrace makes the parser record a step-by-step trace into the
// result.
func EnableTrace() ParserOption {
	return func(p *Parser) error {
		p.makeTrace = true
		return nil
	}
}

// Parser is a single parsing session. It owns its stack and cursor, so it
// must not be reused; create a new one per parse run.
type Parser struct {
	gram      Grammar
	toks      TokenStream
	stack     *arraystack.Stack
	input     []symbol.Symbol
	inputText []string
	cursor    int
	makeTrace bool
	trace     []*TraceStep
}

func NewParser(gram Grammar, toks TokenStream, opts ...ParserOption) (*Parser, error) {
	p := &Parser{
		gram:  gram,
		toks:  toks,
		stack: arraystack.New(),
	}

	for _, opt := range opts {
		err := opt(p)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Parse drives the stack machine until the input is accepted or rejected.
func (p *Parser) Parse() (*Result, error) {
	err := p.drainTokens()
	if err != nil {
		return nil, err
	}

	p.stack.Push(symbol.SymbolEOF)
	p.stack.Push(p.gram.Start())

	for !p.stack.Empty() {
		v, _ := p.stack.Peek()
		top := v.(symbol.Symbol)
		la := p.lookahead()

		if top.IsTerminal() {
			if top != la {
				p.record(TraceActionError, 0)
				return p.reject(RejectTerminalMismatch, top, la), nil
			}
			if top.IsEOF() {
				p.record(TraceActionAccept, 0)
			} else {
				p.record(TraceActionMatch, 0)
			}
			p.stack.Pop()
			p.cursor++
			continue
		}

		prod, ok := p.gram.Find(top, la)
		if !ok {
			p.record(TraceActionError, 0)
			return p.reject(RejectNoApplicableProduction, top, la), nil
		}
		p.record(TraceActionExpand, prod)
		p.stack.Pop()

		// An empty alternative is the empty-string derivation; nothing
		// goes onto the stack for it. A non-empty body is pushed in
		// reverse so its leftmost symbol ends up on top, preserving the
		// leftmost-derivation order.
		alt := p.gram.Alternative(prod)
		for i := len(alt) - 1; i >= 0; i-- {
			p.stack.Push(alt[i])
		}
	}

	return &Result{
		Accepted: true,
		Trace:    p.trace,
	}, nil
}

func (p *Parser) drainTokens() error {
	for {
		tok, err := p.toks.Next()
		if err != nil {
			return err
		}
		if tok.EOF {
			return nil
		}
		sym, ok := p.gram.ToTerminal(tok.Text)
		if !ok {
			return fmt.Errorf("%w: %v", ErrUnknownTerminal, tok.Text)
		}
		p.input = append(p.input, sym)
		p.inputText = append(p.inputText, tok.Text)
	}
}

func (p *Parser) lookahead() symbol.Symbol {
	if p.cursor >= len(p.input) {
		return symbol.SymbolEOF
	}
	return p.input[p.cursor]
}

func (p *Parser) reject(reason RejectReason, expected, actual symbol.Symbol) *Result {
	return &Result{
		Accepted: false,
		Reason:   reason,
		Expected: p.gram.SymbolText(expected),
		Actual:   p.gram.SymbolText(actual),
		Pos:      p.cursor,
		Trace:    p.trace,
	}
}

func (p *Parser) record(action TraceAction, prod int) {
	if !p.makeTrace {
		return
	}

	stack := []string{}
	for _, v := range p.stack.Values() {
		stack = append(stack, p.gram.SymbolText(v.(symbol.Symbol)))
	}
	input := []string{}
	if p.cursor < len(p.inputText) {
		input = append(input, p.inputText[p.cursor:]...)
	}
	input = append(input, symbol.SymbolNameEOF)

	p.trace = append(p.trace, &TraceStep{
		Stack:      stack,
		Input:      input,
		Action:     action,
		Production: prod,
	})
}

// Parse runs a plain accept/reject parse of a token sequence.
func Parse(gram Grammar, tokens []string) (*Result, error) {
	p, err := NewParser(gram, NewTextTokenStream(tokens))
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// ParseTraced is Parse with step recording. The verdict is always
// identical to the one Parse produces.
func ParseTraced(gram Grammar, tokens []string) (*Result, error) {
	p, err := NewParser(gram, NewTextTokenStream(tokens), EnableTrace())
	if err != nil {
		return nil, err
	}
	return p.Parse()
}
