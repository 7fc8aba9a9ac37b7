package lexer

import (
	"bytes"
	"container/list"
	"strings"

	"github.com/tekwizely/go-parsing/lexer"
	"github.com/tekwizely/go-parsing/lexer/token"

	"github.com/tekwizely/cmdline/internal/config"
)

// LexFn is a lexer fun that takes a context
//
type LexFn func(*LexContext, *lexer.Lexer) LexFn

// LexContext allows us to track additional states of the lexer
//
type LexContext struct {
	Fn      LexFn
	fnStack *list.List
	Tokens  token.Nexter
}

// lex delegates incoming lexer calls to the configured fn
//
func (ctx *LexContext) lex(l *lexer.Lexer) lexer.Fn {
	fn := ctx.Fn
	// EOF ?
	//
	if fn == nil {
		if ctx.fnStack.Len() == 0 {
			return nil
		}
		fn = ctx.fnStack.Remove(ctx.fnStack.Back()).(LexFn)
		config.TraceFn("Popped lexer function", fn)
	}
	// assert(fn != nil)
	config.TraceFn("Calling lexer function", fn)
	ctx.Fn = fn(ctx, l)
	return ctx.lex
}

// PushFn stores the specified function on the fn stack.
//
func (ctx *LexContext) PushFn(fn LexFn) {
	ctx.fnStack.PushBack(fn)
	config.TraceFn("Pushed lexer function", fn)
}

// halt emits the error lexeme and drops any pending functions, ending the lexer.
//
func (ctx *LexContext) halt(l *lexer.Lexer, typ token.Type) LexFn {
	l.EmitType(typ)
	ctx.fnStack.Init()
	return nil
}

// Lex initiates the lexer against a command line
//
func Lex(text string) *LexContext {
	ctx := &LexContext{
		Fn:      LexMain,
		fnStack: list.New(),
	}
	ctx.Tokens = lexer.LexRuneReader(newRuneReader(strings.NewReader(text)), ctx.lex)
	return ctx
}

// LexMain is the primary lexer entry point.
// Whitespace is discarded before every token.
//
func LexMain(ctx *LexContext, l *lexer.Lexer) LexFn {
	ignoreSpace(l)
	if !l.CanPeek(1) {
		return nil
	}

	switch {
	// '||' | '|'
	//
	case matchRune(l, runePipe):
		if matchRune(l, runePipe) {
			l.EmitType(TokenOr)
		} else {
			l.EmitType(TokenPipe)
		}
	// '&&' | '&'
	//
	case matchRune(l, runeAmp):
		if matchRune(l, runeAmp) {
			l.EmitType(TokenAnd)
		} else {
			l.EmitType(TokenBackground)
		}
	// Single-Char Token
	//
	case bytes.ContainsRune(singleRunes, l.Peek(1)):
		i := bytes.IndexRune(singleRunes, l.Peek(1))
		l.Next()                    // Match the rune
		l.EmitType(singleTokens[i]) // Emit just the type, discarding the matched rune
	// '>' path
	//
	case matchRune(l, runeRAngle):
		return lexRedirect(ctx, l, TokenRedirectOutput)
	// '<' path
	//
	case matchRune(l, runeLAngle):
		return lexRedirect(ctx, l, TokenRedirectInput)
	// '2>&1' | '2>' path
	//
	case l.CanPeek(2) && l.Peek(1) == runeTwo && l.Peek(2) == runeRAngle:
		if matchErrorToOutput(l) {
			l.EmitType(TokenRedirectErrorToOutput)
			break
		}
		l.Next() // 2
		l.Next() // >
		return lexRedirect(ctx, l, TokenRedirectError)
	// Back-slash at end of input
	//
	case peekTrailingBackSlash(l):
		l.Next()
		l.EmitType(TokenContinuation)
	// Anything else starts a word
	//
	default:
		ctx.PushFn(LexMain)
		return LexWord
	}

	return LexMain
}

// lexRedirect emits the redirect head, then lexes the (possibly empty) target word.
// Assumes the operator runes have already been matched.
//
func lexRedirect(ctx *LexContext, l *lexer.Lexer, typ token.Type) LexFn {
	l.EmitType(typ)
	ignoreSpace(l)
	ctx.PushFn(LexMain)
	return LexWord(ctx, l)
}

// LexWord lexes a word, emitting [ WordStart ( Runes | EscapeSequence )* WordEnd ].
// Quote delimiters are discarded.
// The lexer is not called again once input is exhausted, so a word
// always ends with WordEnd (or an error lexeme) before returning at EOF.
//
func LexWord(ctx *LexContext, l *lexer.Lexer) LexFn {
	l.EmitType(TokenWordStart)
	return lexWordElement(ctx, l)
}

// lexWordElement
//
func lexWordElement(ctx *LexContext, l *lexer.Lexer) LexFn {
	switch {
	// Consume a run of literal characters
	//
	case matchOneOrMore(l, isWordRune):
		l.EmitToken(TokenRunes)
	// Back-slash '\'
	//
	case peekRuneEquals(l, runeBackSlash):
		// A trailing back-slash ends the word and is lexed as a continuation.
		// Anywhere else it is a literal character.
		//
		if !l.CanPeek(2) {
			l.EmitType(TokenWordEnd)
			return nil
		}
		l.Next()
		l.EmitToken(TokenRunes)
	// "'"
	//
	case peekRuneEquals(l, runeSQuote):
		if !lexSQString(ctx, l) {
			return nil
		}
	// '"'
	//
	case peekRuneEquals(l, runeDQuote):
		if !lexDQString(ctx, l) {
			return nil
		}
	// Not valid input
	//
	case peekRuneEquals(l, runeInvalid):
		return ctx.halt(l, TokenInvalidRune)
	// Separator or EOF
	//
	default:
		l.EmitType(TokenWordEnd)
		return nil
	}
	if !l.CanPeek(1) {
		l.EmitType(TokenWordEnd)
		return nil
	}
	return lexWordElement
}

// lexSQString lexes a Single-Quoted String, returning false if the lexer was halted.
// No escapable sequences in SQuotes, not even '\''
//
func lexSQString(ctx *LexContext, l *lexer.Lexer) bool {
	// Open quote
	//
	l.Next()
	l.Clear()
	// Match quoted value as a one-shot
	//
	if matchOneOrMore(l, isNonSQuote) {
		l.EmitToken(TokenRunes)
	}
	if peekRuneEquals(l, runeInvalid) {
		ctx.halt(l, TokenInvalidRune)
		return false
	}
	// Close quote
	//
	if !matchRune(l, runeSQuote) {
		ctx.halt(l, TokenMissingSQuote)
		return false
	}
	l.Clear()
	return true
}

// lexDQString lexes a Double-Quoted String, returning false if the lexer was halted.
// The whole string is lexed in one call so that reaching EOF is always seen.
//
func lexDQString(ctx *LexContext, l *lexer.Lexer) bool {
	// Open quote
	//
	l.Next()
	l.Clear()
	for {
		switch {
		// Consume a run of non-quote non-escape characters
		//
		case matchOneOrMore(l, isNonDQuoteNonBackslash):
			l.EmitToken(TokenRunes)
		// Back-slash '\'
		//
		case matchRune(l, runeBackSlash):
			// In DQuote mode, only '\' and '"' are escapable
			// Anything else is considered two separate characters
			//
			if matchRune(l, runeBackSlash, runeDQuote) {
				l.EmitToken(TokenEscapeSequence)
			} else {
				l.EmitToken(TokenRunes)
			}
		// Close quote
		//
		case matchRune(l, runeDQuote):
			l.Clear()
			return true
		// Not valid input
		//
		case peekRuneEquals(l, runeInvalid):
			ctx.halt(l, TokenInvalidRune)
			return false
		// EOF
		//
		default:
			ctx.halt(l, TokenMissingDQuote)
			return false
		}
	}
}
