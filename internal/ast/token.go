package ast

import "fmt"

// TokenKind identifies a token variant.
//
type TokenKind int

// Token kinds
//
const (
	TokenWord TokenKind = iota + 1
	TokenPipe
	TokenOr
	TokenAnd
	TokenBackground
	TokenSequence
	TokenRedirectOutput
	TokenRedirectInput
	TokenRedirectError
	TokenRedirectErrorToOutput
	TokenOpenSubshell
	TokenCloseSubshell
	TokenContinuation
	TokenLexError
)

// Token is one lexical unit of a command line.
// Text carries the word text, the redirection target or the lex error message,
// depending on Kind, and is empty otherwise.
//
type Token struct {
	Kind TokenKind
	Text string
}

// Word is a convenience method.
//
func Word(text string) Token { return Token{Kind: TokenWord, Text: text} }

// Pipe is a convenience method.
//
func Pipe() Token { return Token{Kind: TokenPipe} }

// OrOp is a convenience method.
//
func OrOp() Token { return Token{Kind: TokenOr} }

// AndOp is a convenience method.
//
func AndOp() Token { return Token{Kind: TokenAnd} }

// Bg is a convenience method.
//
func Bg() Token { return Token{Kind: TokenBackground} }

// Seq is a convenience method.
//
func Seq() Token { return Token{Kind: TokenSequence} }

// RedirectOutput is a convenience method.
//
func RedirectOutput(path string) Token { return Token{Kind: TokenRedirectOutput, Text: path} }

// RedirectInput is a convenience method.
//
func RedirectInput(path string) Token { return Token{Kind: TokenRedirectInput, Text: path} }

// RedirectError is a convenience method.
//
func RedirectError(path string) Token { return Token{Kind: TokenRedirectError, Text: path} }

// RedirectErrorToOutput is a convenience method.
//
func RedirectErrorToOutput() Token { return Token{Kind: TokenRedirectErrorToOutput} }

// OpenSubshell is a convenience method.
//
func OpenSubshell() Token { return Token{Kind: TokenOpenSubshell} }

// CloseSubshell is a convenience method.
//
func CloseSubshell() Token { return Token{Kind: TokenCloseSubshell} }

// Continuation is a convenience method.
//
func Continuation() Token { return Token{Kind: TokenContinuation} }

// LexError is a convenience method.
//
func LexError(msg string) Token { return Token{Kind: TokenLexError, Text: msg} }

// IsSeparator returns true for the operators that join commands.
//
func (t Token) IsSeparator() bool {
	switch t.Kind {
	case TokenPipe, TokenOr, TokenAnd, TokenBackground, TokenSequence:
		return true
	default:
		return false
	}
}

// IsRedirect returns true for the four redirection tokens.
//
func (t Token) IsRedirect() bool {
	switch t.Kind {
	case TokenRedirectOutput, TokenRedirectInput, TokenRedirectError, TokenRedirectErrorToOutput:
		return true
	default:
		return false
	}
}

func (t Token) String() string {
	var prefix string
	switch t.Kind {
	case TokenPipe:
		return "<pipe>"
	case TokenOr:
		return "<or>"
	case TokenAnd:
		return "<and>"
	case TokenBackground:
		return "<background>"
	case TokenSequence:
		return "<sequence>"
	case TokenRedirectErrorToOutput:
		return "<redirect-error-to-output>"
	case TokenOpenSubshell:
		return "<open-subshell>"
	case TokenCloseSubshell:
		return "<close-subshell>"
	case TokenContinuation:
		return "<continuation>"
	case TokenWord:
		prefix = "word"
	case TokenRedirectOutput:
		prefix = "redirect-output"
	case TokenRedirectInput:
		prefix = "redirect-input"
	case TokenRedirectError:
		prefix = "redirect-error"
	case TokenLexError:
		prefix = "lex-error"
	default:
		prefix = "unknown"
	}
	return fmt.Sprintf("%s(%s)", prefix, t.Text)
}
