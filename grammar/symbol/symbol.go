package symbol

import (
	"fmt"
	"sort"
)

type symbolKind string

const (
	symbolKindNonTerminal = symbolKind("non-terminal")
	symbolKindTerminal    = symbolKind("terminal")
)

func (k symbolKind) String() string {
	return string(k)
}

type SymbolNum uint16

func (n SymbolNum) Int() int {
	return int(n)
}

// Symbol packs a symbol kind and a symbol number into 16 bits. The most
// significant bit distinguishes terminals from non-terminals, and the rest
// is a number unique within the kind. The number 0 is reserved for the nil
// symbol in both kinds.
type Symbol uint16

const (
	maskKindPart   = uint16(0x8000)
	maskTerminal   = uint16(0x8000)
	maskNumberPart = uint16(0x7fff)

	// The EOF symbol is a terminal the parser generates itself when an
	// input runs out. Its name contains `<` and `>` to avoid conflicting
	// with user-defined symbols.
	symbolNumEOF  = uint16(0x0001)
	SymbolNameEOF = "<eof>"

	SymbolNil = Symbol(0)
	SymbolEOF = Symbol(maskTerminal | symbolNumEOF)

	terminalNumMin    = SymbolNum(2) // The number 1 is used by the EOF symbol.
	nonTerminalNumMin = SymbolNum(1)
	symbolNumMax      = SymbolNum(maskNumberPart)
)

func newSymbol(kind symbolKind, num SymbolNum) (Symbol, error) {
	if num == 0 || num > symbolNumMax {
		return SymbolNil, fmt.Errorf("a symbol number must be in 1..%v; passed: %v", symbolNumMax, num)
	}
	kindMask := uint16(0)
	if kind == symbolKindTerminal {
		kindMask = maskTerminal
	}
	return Symbol(kindMask | uint16(num)), nil
}

func (s Symbol) String() string {
	kind, num := s.describe()
	var prefix string
	switch {
	case s == SymbolEOF:
		prefix = "e"
	case kind == symbolKindNonTerminal:
		prefix = "n"
	default:
		prefix = "t"
	}
	return fmt.Sprintf("%v%v", prefix, num)
}

func (s Symbol) Num() SymbolNum {
	_, num := s.describe()
	return num
}

func (s Symbol) Byte() []byte {
	return []byte{byte(uint16(s) >> 8), byte(uint16(s) & 0x00ff)}
}

func (s Symbol) IsNil() bool {
	_, num := s.describe()
	return num == 0
}

func (s Symbol) IsTerminal() bool {
	if s.IsNil() {
		return false
	}
	kind, _ := s.describe()
	return kind == symbolKindTerminal
}

func (s Symbol) IsNonTerminal() bool {
	if s.IsNil() {
		return false
	}
	return !s.IsTerminal()
}

func (s Symbol) IsEOF() bool {
	return s == SymbolEOF
}

func (s Symbol) describe() (symbolKind, SymbolNum) {
	kind := symbolKindNonTerminal
	if uint16(s)&maskKindPart > 0 {
		kind = symbolKindTerminal
	}
	return kind, SymbolNum(uint16(s) & maskNumberPart)
}

// SymbolTable assigns numbers to symbol names. Construction happens through
// a Writer, and all lookups after that go through a Reader, so a finished
// table is effectively immutable.
type SymbolTable struct {
	text2Sym     map[string]Symbol
	sym2Text     map[Symbol]string
	nonTermTexts []string
	termTexts    []string
	nonTermNum   SymbolNum
	termNum      SymbolNum
}

type SymbolTableWriter struct {
	*SymbolTable
}

type SymbolTableReader struct {
	*SymbolTable
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		text2Sym: map[string]Symbol{
			SymbolNameEOF: SymbolEOF,
		},
		sym2Text: map[Symbol]string{
			SymbolEOF: SymbolNameEOF,
		},
		termTexts: []string{
			"",            // Nil
			SymbolNameEOF, // EOF
		},
		nonTermTexts: []string{
			"", // Nil
		},
		nonTermNum: nonTerminalNumMin,
		termNum:    terminalNumMin,
	}
}

func (t *SymbolTable) Writer() *SymbolTableWriter {
	return &SymbolTableWriter{
		SymbolTable: t,
	}
}

func (t *SymbolTable) Reader() *SymbolTableReader {
	return &SymbolTableReader{
		SymbolTable: t,
	}
}

func (w *SymbolTableWriter) RegisterNonTerminalSymbol(text string) (Symbol, error) {
	if sym, ok := w.text2Sym[text]; ok {
		if sym.IsTerminal() {
			return SymbolNil, fmt.Errorf("%v is already registered as a terminal symbol", text)
		}
		return sym, nil
	}
	sym, err := newSymbol(symbolKindNonTerminal, w.nonTermNum)
	if err != nil {
		return SymbolNil, err
	}
	w.nonTermNum++
	w.text2Sym[text] = sym
	w.sym2Text[sym] = text
	w.nonTermTexts = append(w.nonTermTexts, text)
	return sym, nil
}

func (w *SymbolTableWriter) RegisterTerminalSymbol(text string) (Symbol, error) {
	if sym, ok := w.text2Sym[text]; ok {
		if sym.IsNonTerminal() {
			return SymbolNil, fmt.Errorf("%v is already registered as a non-terminal symbol", text)
		}
		return sym, nil
	}
	sym, err := newSymbol(symbolKindTerminal, w.termNum)
	if err != nil {
		return SymbolNil, err
	}
	w.termNum++
	w.text2Sym[text] = sym
	w.sym2Text[sym] = text
	w.termTexts = append(w.termTexts, text)
	return sym, nil
}

func (r *SymbolTableReader) ToSymbol(text string) (Symbol, bool) {
	if sym, ok := r.text2Sym[text]; ok {
		return sym, true
	}
	return SymbolNil, false
}

func (r *SymbolTableReader) ToText(sym Symbol) (string, bool) {
	text, ok := r.sym2Text[sym]
	return text, ok
}

func (r *SymbolTableReader) TerminalSymbols() []Symbol {
	syms := make([]Symbol, 0, r.termNum.Int()-1)
	for sym := range r.sym2Text {
		if !sym.IsTerminal() {
			continue
		}
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}

func (r *SymbolTableReader) NonTerminalSymbols() []Symbol {
	syms := make([]Symbol, 0, r.nonTermNum.Int()-1)
	for sym := range r.sym2Text {
		if !sym.IsNonTerminal() {
			continue
		}
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}

// TerminalTexts returns the names of all terminal symbols indexed by their
// symbol numbers. The index 0 is the nil symbol and the index 1 is the EOF
// symbol.
func (r *SymbolTableReader) TerminalTexts() []string {
	return r.termTexts
}

// NonTerminalTexts returns the names of all non-terminal symbols indexed by
// their symbol numbers. The index 0 is the nil symbol.
func (r *SymbolTableReader) NonTerminalTexts() []string {
	return r.nonTermTexts
}

func (r *SymbolTableReader) TerminalCount() int {
	return len(r.termTexts)
}

func (r *SymbolTableReader) NonTerminalCount() int {
	return len(r.nonTermTexts)
}
