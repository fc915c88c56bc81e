package parser

// Tokens is a cursor over a token slice. The cursor never moves past an EOF
// token, so once the input is consumed every further read returns EOF.
type Tokens struct {
	tokens []Token
}

func NewTokens(tokens []Token) *Tokens {
	return &Tokens{tokens: tokens}
}

// Peek returns the next token without consuming it. ok is false only when
// the underlying slice is exhausted, which can happen if it lacked an EOF.
func (t *Tokens) Peek() (Token, bool) {
	if len(t.tokens) == 0 {
		return Token{}, false
	}
	return t.tokens[0], true
}

// Next consumes and returns the next token.
func (t *Tokens) Next() (Token, bool) {
	tok, ok := t.Peek()
	if !ok {
		return tok, false
	}
	if tok.Kind != EOF {
		t.tokens = t.tokens[1:]
	}
	return tok, true
}

// Expect consumes the next token if it has the given kind. Otherwise nothing
// is consumed and a *ParseError is returned.
func (t *Tokens) Expect(kind Kind) (Token, error) {
	tok, ok := t.Peek()
	if !ok {
		return Token{}, &ParseError{Err: ErrUnexpectedEOF, Expected: kind}
	}
	if tok.Kind != kind {
		err := ErrUnexpectedToken
		if kind == RParen {
			err = ErrUnmatchedDelimiter
		}
		return tok, &ParseError{
			Err:      err,
			Expected: kind,
			Found:    tok,
			HasPos:   true,
		}
	}
	t.Next()
	return tok, nil
}

func (t *Tokens) AtEOF() bool {
	tok, ok := t.Peek()
	return !ok || tok.Kind == EOF
}

func (t *Tokens) Len() int {
	return len(t.tokens)
}
