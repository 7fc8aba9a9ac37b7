package lexer

import (
	"github.com/tekwizely/go-parsing/lexer"
	"github.com/tekwizely/go-parsing/lexer/token"
)

// We define our lexer tokens starting from the pre-defined START token.
// These are lexemes: Tokenize assembles them into ast.Token values.
//
const (
	TokenPipe = lexer.TStart + iota
	TokenOr
	TokenAnd
	TokenBackground
	TokenSequence
	TokenOpenSubshell
	TokenCloseSubshell
	TokenContinuation

	TokenRedirectOutput
	TokenRedirectInput
	TokenRedirectError
	TokenRedirectErrorToOutput

	TokenWordStart
	TokenRunes
	TokenEscapeSequence
	TokenWordEnd

	TokenMissingSQuote
	TokenMissingDQuote
	TokenInvalidRune
)

// Lexical error messages
//
const (
	ErrMissingSQuote = "Missing '."
	ErrMissingDQuote = "Missing \"."
	ErrNoOutputFile  = "No output file specified."
	ErrNoInputFile   = "No input file specified."
	ErrNoErrorFile   = "No error file specified."
	ErrInvalidRune   = "Invalid character in input."
	ErrUnendedWord   = "Unexpected end of input in word."
)

// errorTokens maps error lexemes to their message.
//
var errorTokens = map[token.Type]string{
	TokenMissingSQuote: ErrMissingSQuote,
	TokenMissingDQuote: ErrMissingDQuote,
	TokenInvalidRune:   ErrInvalidRune,
}

// redirectTargetErrors maps redirect lexemes to the message reported for an empty target.
//
var redirectTargetErrors = map[token.Type]string{
	TokenRedirectOutput: ErrNoOutputFile,
	TokenRedirectInput:  ErrNoInputFile,
	TokenRedirectError:  ErrNoErrorFile,
}
