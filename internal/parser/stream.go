package parser

import (
	"io"

	"github.com/tekwizely/go-parsing/lexer"
	"github.com/tekwizely/go-parsing/lexer/token"

	"github.com/tekwizely/cmdline/internal/ast"
)

// item adapts an ast.Token to the token interface of the parsing library.
// Types are offset from lexer.TStart to stay clear of the library's reserved types.
//
type item struct {
	tok ast.Token
	pos int
}

func (i item) Type() token.Type { return lexer.TStart + token.Type(i.tok.Kind) }
func (i item) Value() string    { return i.tok.Text }
func (i item) Line() int        { return 1 }
func (i item) Column() int      { return i.pos + 1 }

// toToken recovers the ast.Token carried by a library token.
//
func toToken(t token.Token) ast.Token {
	return ast.Token{Kind: ast.TokenKind(t.Type() - lexer.TStart), Text: t.Value()}
}

// tokenStream feeds a token slice to the parsing library.
//
type tokenStream struct {
	tokens []ast.Token
	next   int
}

// HasNext implements token.Nexter
//
func (s *tokenStream) HasNext() bool {
	return s.next < len(s.tokens)
}

// Next implements token.Nexter
//
func (s *tokenStream) Next() (token.Token, error) {
	if !s.HasNext() {
		return nil, io.EOF
	}
	i := item{tok: s.tokens[s.next], pos: s.next}
	s.next++
	return i, nil
}
