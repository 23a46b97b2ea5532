// Package spec defines the structured form of a grammar the analysis core
// ingests, along with a parser for a line-oriented rule notation:
//
//	expr -> term expr_rest
//	expr_rest -> add term expr_rest | ε
//
// Each line declares one head and its alternatives separated by `|`. Symbols
// are whitespace-separated names. The literal `ε` denotes an empty
// alternative. Lines beginning with `#` and blank lines are skipped.
package spec

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// EmptyMarker is the literal that denotes an empty alternative in the rule
// notation. It only appears in sources; an empty alternative is represented
// as a zero-length symbol sequence after parsing.
const EmptyMarker = "ε"

const arrow = "->"

// Rule groups all alternatives that share a head.
type Rule struct {
	LHS          string
	Alternatives [][]string
}

// RuleSet is an already-structured grammar. The head of the first rule is
// the start symbol.
type RuleSet struct {
	Rules []*Rule
}

// ParseRuleSet reads a grammar source in the rule notation.
func ParseRuleSet(src io.Reader) (*RuleSet, error) {
	var rules []*Rule
	ruleIdx := map[string]*Rule{}

	row := 0
	s := bufio.NewScanner(src)
	for s.Scan() {
		row++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lhs, rhs, found := strings.Cut(line, arrow)
		if !found {
			return nil, newSyntaxError(row, fmt.Sprintf("a rule must contain %#v", arrow))
		}
		head := strings.TrimSpace(lhs)
		if head == "" {
			return nil, newSyntaxError(row, "a rule must have a head")
		}
		if len(strings.Fields(head)) > 1 {
			return nil, newSyntaxError(row, fmt.Sprintf("a head must be a single symbol: %v", head))
		}
		if head == EmptyMarker {
			return nil, newSyntaxError(row, fmt.Sprintf("%v cannot be a head", EmptyMarker))
		}

		rule, ok := ruleIdx[head]
		if !ok {
			rule = &Rule{
				LHS: head,
			}
			ruleIdx[head] = rule
			rules = append(rules, rule)
		}

		for _, altSrc := range strings.Split(rhs, "|") {
			alt, err := parseAlternative(row, altSrc)
			if err != nil {
				return nil, err
			}
			rule.Alternatives = append(rule.Alternatives, alt)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, newSyntaxError(row, "a grammar must contain at least one rule")
	}

	return &RuleSet{
		Rules: rules,
	}, nil
}

func parseAlternative(row int, src string) ([]string, error) {
	syms := strings.Fields(src)
	if len(syms) == 0 {
		// A blank alternative also denotes the empty string, the same
		// as the explicit marker.
		return []string{}, nil
	}
	for _, sym := range syms {
		if sym == EmptyMarker {
			if len(syms) > 1 {
				return nil, newSyntaxError(row, fmt.Sprintf("%v cannot be mixed with other symbols", EmptyMarker))
			}
			return []string{}, nil
		}
	}
	return syms, nil
}
