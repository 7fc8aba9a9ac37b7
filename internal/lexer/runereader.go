package lexer

import (
	"io"
	"unicode/utf8"
)

// runeReader wraps a RuneReader, replacing the runes the lexer library would
// otherwise skip (it drops utf8.RuneError).
// A literal U+FFFD becomes runeSubstitute and is restored when the word is assembled.
// An invalid byte, or one of the stand-ins themselves, becomes runeInvalid and halts the lexer.
//
type runeReader struct {
	r io.RuneReader
}

// newRuneReader is a convenience method.
//
func newRuneReader(r io.RuneReader) io.RuneReader {
	return &runeReader{r: r}
}

// ReadRune implements io.RuneReader
//
func (c *runeReader) ReadRune() (r rune, size int, err error) {
	r, size, err = c.r.ReadRune()
	if err != nil {
		return
	}
	switch {
	case r == utf8.RuneError && size == 1, r == runeSubstitute, r == runeInvalid:
		r = runeInvalid
	case r == utf8.RuneError:
		r = runeSubstitute
	}
	return
}
