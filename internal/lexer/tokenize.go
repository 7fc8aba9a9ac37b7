package lexer

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tekwizely/go-parsing/lexer/token"
	"github.com/tekwizely/go-parsing/parser"

	"github.com/tekwizely/cmdline/internal/ast"
	"github.com/tekwizely/cmdline/internal/config"
)

// operatorTokens maps operator lexemes to their (payload-less) token.
//
var operatorTokens = map[token.Type]ast.TokenKind{
	TokenPipe:                  ast.TokenPipe,
	TokenOr:                    ast.TokenOr,
	TokenAnd:                   ast.TokenAnd,
	TokenBackground:            ast.TokenBackground,
	TokenSequence:              ast.TokenSequence,
	TokenOpenSubshell:          ast.TokenOpenSubshell,
	TokenCloseSubshell:         ast.TokenCloseSubshell,
	TokenContinuation:          ast.TokenContinuation,
	TokenRedirectErrorToOutput: ast.TokenRedirectErrorToOutput,
}

// redirectTokens maps redirect head lexemes to the token carrying the target path.
//
var redirectTokens = map[token.Type]ast.TokenKind{
	TokenRedirectOutput: ast.TokenRedirectOutput,
	TokenRedirectInput:  ast.TokenRedirectInput,
	TokenRedirectError:  ast.TokenRedirectError,
}

// Tokenize converts a command line into its token sequence.
// It never fails: a lexical problem is reported as a final ast.TokenLexError.
//
func Tokenize(text string) []ast.Token {
	l := Lex(text)
	tokens := []ast.Token{}
	emits := parser.Parse(l.Tokens, assemble)
	for {
		v, err := emits.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			tokens = append(tokens, ast.LexError(err.Error()))
			break
		}
		t := v.(ast.Token)
		tokens = append(tokens, t)
		if t.Kind == ast.TokenLexError {
			break
		}
	}
	return tokens
}

// assemble emits one ast.Token per call, folding word lexemes into their text.
//
func assemble(p *parser.Parser) parser.Fn {
	if !p.CanPeek(1) {
		return nil
	}
	config.TraceFn("Calling assembler function", assemble)
	t := p.Next()
	typ := t.Type()
	if kind, ok := operatorTokens[typ]; ok {
		p.Emit(ast.Token{Kind: kind})
		return assemble
	}
	if kind, ok := redirectTokens[typ]; ok {
		path, errMsg := expectWord(p)
		switch {
		case len(errMsg) > 0:
			p.Emit(ast.LexError(errMsg))
			return nil
		case len(path) == 0:
			p.Emit(ast.LexError(redirectTargetErrors[typ]))
			return nil
		}
		p.Emit(ast.Token{Kind: kind, Text: path})
		return assemble
	}
	if msg, ok := errorTokens[typ]; ok {
		p.Emit(ast.LexError(msg))
		return nil
	}
	if typ == TokenWordStart {
		word, errMsg := matchWordBody(p)
		if len(errMsg) > 0 {
			p.Emit(ast.LexError(errMsg))
			return nil
		}
		p.Emit(ast.Word(word))
		return assemble
	}
	p.Emit(ast.LexError("Unexpected lexeme: " + t.Value()))
	return nil
}

// expectWord matches [ WordStart <body> ] following a redirect head.
//
func expectWord(p *parser.Parser) (string, string) {
	if !p.CanPeek(1) || p.PeekType(1) != TokenWordStart {
		return "", ""
	}
	p.Next()
	return matchWordBody(p)
}

// matchWordBody matches [ ( Runes | EscapeSequence )* WordEnd ], returning the word text,
// or the error message if the lexer gave up inside the word.
//
func matchWordBody(p *parser.Parser) (string, string) {
	var word strings.Builder
	for p.CanPeek(1) {
		t := p.Next()
		switch t.Type() {
		case TokenRunes:
			word.WriteString(strings.ReplaceAll(t.Value(), string(runeSubstitute), string(utf8.RuneError)))
		case TokenEscapeSequence:
			// Drop the leading back-slash
			//
			word.WriteString(t.Value()[1:])
		case TokenWordEnd:
			p.Clear()
			return word.String(), ""
		default:
			if msg, ok := errorTokens[t.Type()]; ok {
				return "", msg
			}
			return "", "Unexpected lexeme: " + t.Value()
		}
	}
	return "", ErrUnendedWord
}
