package lexer

import "github.com/tekwizely/go-parsing/lexer"

type runeFn func(rune) bool

// matchRune attempts to match the next rune to one specified, returning success or failure.
//
func matchRune(l *lexer.Lexer, runes ...rune) bool {
	if p, ok := tryPeekRune(l); ok {
		for _, r := range runes {
			if r == p {
				l.Next()
				return true
			}
		}
	}
	return false
}

// matchOneOrMore attempts to match one or more of the specified predicate, returning success or failure.
//
func matchOneOrMore(l *lexer.Lexer, fn runeFn) bool {
	b := false
	for l.CanPeek(1) && fn(l.Peek(1)) {
		l.Next()
		b = true
	}
	return b
}

// matchErrorToOutput matches [ '2' '>' '&' '1' ] when followed by a separator.
// Nothing is consumed on failure.
//
func matchErrorToOutput(l *lexer.Lexer) bool {
	if !l.CanPeek(4) ||
		l.Peek(1) != runeTwo ||
		l.Peek(2) != runeRAngle ||
		l.Peek(3) != runeAmp ||
		l.Peek(4) != runeOne ||
		!peekSeparatorAt(l, 5) {
		return false
	}
	for i := 0; i < 4; i++ {
		l.Next()
	}
	return true
}

// ignoreSpace matches one or more isSpace and discards any matches.
//
func ignoreSpace(l *lexer.Lexer) {
	if matchOneOrMore(l, isSpace) {
		l.Clear()
	}
}
