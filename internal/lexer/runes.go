package lexer

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/tekwizely/go-parsing/lexer"
	"github.com/tekwizely/go-parsing/lexer/token"
)

// Runes
//
const (
	runeBackSlash = '\\'
	runeDQuote    = '"'
	runeSQuote    = '\''
	runeLParen    = '('
	runeRParen    = ')'
	runeLAngle    = '<'
	runeRAngle    = '>'
	runePipe      = '|'
	runeAmp       = '&'
	runeSemi      = ';'
	runeTwo       = '2'
	runeOne       = '1'
)

// Stand-ins produced by runeReader, see runereader.go.
// Both are Unicode noncharacters, reserved for internal use.
//
const (
	runeSubstitute = '\uFDD0' // A literal U+FFFD in the input
	runeInvalid    = '\uFDD1' // A byte that is not valid UTF-8
)

// Single-Rune tokens
//
var (
	singleRunes  = []byte{runeSemi, runeLParen, runeRParen}
	singleTokens = []token.Type{TokenSequence, TokenOpenSubshell, TokenCloseSubshell}
)

// operatorRunes end a word
//
var operatorRunes = []byte{runeLAngle, runeRAngle, runeSemi, runeAmp, runePipe, runeLParen, runeRParen}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func isOperator(r rune) bool {
	return bytes.ContainsRune(operatorRunes, r)
}

// isWordRune matches runes that are copied literally into a bare word.
// Quotes and back-slashes need their own handling.
//
func isWordRune(r rune) bool {
	return !isSpace(r) && !isOperator(r) && r != runeSQuote && r != runeDQuote && r != runeBackSlash && r != runeInvalid
}

func isNonSQuote(r rune) bool {
	return r != runeSQuote && r != runeInvalid
}

func isNonDQuoteNonBackslash(r rune) bool {
	return r != runeDQuote && r != runeBackSlash && r != runeInvalid
}

// tryPeekRune tries to peek the next rune
//
func tryPeekRune(l *lexer.Lexer) (rune, bool) {
	if l.CanPeek(1) {
		return l.Peek(1), true
	}
	return utf8.RuneError, false
}

func peekRuneEquals(l *lexer.Lexer, r rune) bool {
	return l.CanPeek(1) && l.Peek(1) == r
}

// peekTrailingBackSlash returns true if the next rune is the last one and is a back-slash.
//
func peekTrailingBackSlash(l *lexer.Lexer) bool {
	return peekRuneEquals(l, runeBackSlash) && !l.CanPeek(2)
}

// peekSeparatorAt returns true if the rune at position n ends a word.
// End of input counts as a separator.
//
func peekSeparatorAt(l *lexer.Lexer, n int) bool {
	if !l.CanPeek(n) {
		return true
	}
	r := l.Peek(n)
	if isSpace(r) || isOperator(r) {
		return true
	}
	return r == runeBackSlash && !l.CanPeek(n+1)
}
