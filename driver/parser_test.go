package driver

import (
	"errors"
	"strings"
	"testing"

	"github.com/nihei9/llgram/grammar"
	"github.com/nihei9/llgram/spec"
)

const exprGrammar = `
e -> t erest
erest -> add t erest | ε
t -> f trest
trest -> mul f trest | ε
f -> l_paren e r_paren | num
`

func genTable(t *testing.T, src string) *grammar.LL1Table {
	t.Helper()

	ruleset, err := spec.ParseRuleSet(strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to parse a rule set: %v", err)
	}
	g, err := grammar.BuildGrammar(ruleset)
	if err != nil {
		t.Fatalf("failed to build a grammar: %v", err)
	}
	a, err := grammar.Analyze(g)
	if err != nil {
		t.Fatalf("failed to analyze the grammar: %v", err)
	}
	if len(a.Conflicts()) > 0 {
		t.Fatalf("the grammar must be LL(1); conflicts: %v", len(a.Conflicts()))
	}
	return a.Table()
}

func TestParse(t *testing.T) {
	tests := []struct {
		caption  string
		tokens   []string
		accepted bool
		reason   RejectReason
	}{
		{
			caption:  "an addition-multiplication mix is accepted",
			tokens:   []string{"num", "add", "num", "mul", "num"},
			accepted: true,
		},
		{
			caption:  "a parenthesized expression is accepted",
			tokens:   []string{"l_paren", "num", "add", "num", "r_paren", "mul", "num"},
			accepted: true,
		},
		{
			caption:  "a single number is accepted",
			tokens:   []string{"num"},
			accepted: true,
		},
		{
			caption: "an incomplete input is rejected when the stack still expects symbols",
			tokens:  []string{"num", "mul", "num", "add"},
			reason:  RejectNoApplicableProduction,
		},
		{
			caption: "an input starting with an operator is rejected",
			tokens:  []string{"add", "num"},
			reason:  RejectNoApplicableProduction,
		},
		{
			caption: "an unbalanced parenthesis is rejected",
			tokens:  []string{"l_paren", "num"},
			reason:  RejectTerminalMismatch,
		},
		{
			caption: "the empty input is rejected",
			tokens:  []string{},
			reason:  RejectNoApplicableProduction,
		},
		{
			caption: "trailing input after a complete expression is rejected",
			tokens:  []string{"num", "r_paren"},
			reason:  RejectTerminalMismatch,
		},
	}

	table := genTable(t, exprGrammar)
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			res, err := Parse(table, tt.tokens)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Accepted != tt.accepted {
				t.Fatalf("unexpected verdict; want: %v, got: %v (reason: %v, expected: %v, actual: %v)", tt.accepted, res.Accepted, res.Reason, res.Expected, res.Actual)
			}
			if !tt.accepted && res.Reason != tt.reason {
				t.Fatalf("unexpected reject reason; want: %v, got: %v", tt.reason, res.Reason)
			}
		})
	}
}

func TestParse_UnknownTerminal(t *testing.T) {
	table := genTable(t, exprGrammar)
	_, err := Parse(table, []string{"num", "add", "ident"})
	if !errors.Is(err, ErrUnknownTerminal) {
		t.Fatalf("want: ErrUnknownTerminal, got: %v", err)
	}
}

// A rejection reports where the parse stopped and what it saw there.
func TestParse_RejectionDetail(t *testing.T) {
	table := genTable(t, exprGrammar)
	res, err := Parse(table, []string{"l_paren", "num"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Accepted {
		t.Fatalf("the input must be rejected")
	}
	if res.Expected != "r_paren" || res.Actual != "<eof>" || res.Pos != 2 {
		t.Fatalf("unexpected rejection detail; expected: %v, actual: %v, pos: %v", res.Expected, res.Actual, res.Pos)
	}
}

func TestParseTraced(t *testing.T) {
	table := genTable(t, exprGrammar)

	tokens := []string{"num", "add", "num", "mul", "num"}
	res, err := ParseTraced(table, tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Accepted {
		t.Fatalf("the input must be accepted")
	}
	if len(res.Trace) == 0 {
		t.Fatalf("the trace must not be empty")
	}

	// The first step expands the start symbol with the whole input ahead.
	head := res.Trace[0]
	if head.Action != TraceActionExpand {
		t.Fatalf("unexpected first action: %v", head.Action)
	}
	if len(head.Stack) != 2 || head.Stack[0] != "e" || head.Stack[1] != "<eof>" {
		t.Fatalf("unexpected initial stack: %#v", head.Stack)
	}
	if len(head.Input) != len(tokens)+1 {
		t.Fatalf("unexpected initial input snapshot: %#v", head.Input)
	}

	// The last step consumes the end marker.
	tail := res.Trace[len(res.Trace)-1]
	if tail.Action != TraceActionAccept {
		t.Fatalf("unexpected last action: %v", tail.Action)
	}
	if len(tail.Stack) != 1 || tail.Stack[0] != "<eof>" {
		t.Fatalf("unexpected final stack: %#v", tail.Stack)
	}
	if len(tail.Input) != 1 || tail.Input[0] != "<eof>" {
		t.Fatalf("unexpected final input snapshot: %#v", tail.Input)
	}

	matches := 0
	for _, step := range res.Trace {
		if step.Action == TraceActionMatch {
			matches++
		}
	}
	if matches != len(tokens) {
		t.Fatalf("every token must be consumed by exactly one match; want: %v, got: %v", len(tokens), matches)
	}
}

// Tracing must never change the verdict.
func TestParseTraced_AgreesWithParse(t *testing.T) {
	table := genTable(t, exprGrammar)

	inputs := [][]string{
		{"num", "add", "num", "mul", "num"},
		{"l_paren", "num", "add", "num", "r_paren", "mul", "num"},
		{"num", "mul", "num", "add"},
		{"l_paren", "num"},
		{"num", "r_paren"},
		{},
	}
	for _, tokens := range inputs {
		plain, err := Parse(table, tokens)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		traced, err := ParseTraced(table, tokens)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plain.Accepted != traced.Accepted || plain.Reason != traced.Reason || plain.Pos != traced.Pos {
			t.Fatalf("the traced parse disagrees with the plain one; tokens: %v", tokens)
		}
		if len(plain.Trace) != 0 {
			t.Fatalf("the plain parse must not record a trace")
		}
	}
}

// An empty alternative pops the non-terminal without pushing anything, so
// a parse that rides epsilon productions must still terminate at the end
// marker.
func TestParse_EpsilonProductions(t *testing.T) {
	table := genTable(t, `
s -> foo bar
foo -> f | ε
bar -> b | ε
`)

	for _, tokens := range [][]string{
		{},
		{"f"},
		{"b"},
		{"f", "b"},
	} {
		res, err := ParseTraced(table, tokens)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Accepted {
			t.Fatalf("the input must be accepted: %v", tokens)
		}
		for _, step := range res.Trace {
			for _, text := range step.Stack {
				if text == spec.EmptyMarker {
					t.Fatalf("the empty marker must never appear on the stack")
				}
			}
		}
	}

	res, err := Parse(table, []string{"b", "f"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Accepted {
		t.Fatalf("the input must be rejected")
	}
}

func TestParser_SessionsAreIndependent(t *testing.T) {
	table := genTable(t, exprGrammar)

	p1, err := NewParser(table, NewTextTokenStream([]string{"num"}))
	if err != nil {
		t.Fatalf("failed to create a parser: %v", err)
	}
	p2, err := NewParser(table, NewTextTokenStream([]string{"num", "add"}))
	if err != nil {
		t.Fatalf("failed to create a parser: %v", err)
	}

	res1, err := p1.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res2, err := p2.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res1.Accepted || res2.Accepted {
		t.Fatalf("sessions must not interfere; got: %v, %v", res1.Accepted, res2.Accepted)
	}
}
