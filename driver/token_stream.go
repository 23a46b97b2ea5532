package driver

// Token is one pre-tokenized input symbol. Text is a terminal name of the
// grammar. Tokenization itself is out of scope here; a lexer or a test
// fixture produces the stream.
type Token struct {
	Text string
	EOF  bool
}

type TokenStream interface {
	Next() (*Token, error)
}

type textTokenStream struct {
	tokens []string
	pos    int
}

// NewTextTokenStream returns a TokenStream over a sequence of terminal
// names.
func NewTextTokenStream(tokens []string) TokenStream {
	return &textTokenStream{
		tokens: tokens,
	}
}

func (s *textTokenStream) Next() (*Token, error) {
	if s.pos >= len(s.tokens) {
		return &Token{
			EOF: true,
		}, nil
	}
	tok := &Token{
		Text: s.tokens[s.pos],
	}
	s.pos++
	return tok, nil
}
