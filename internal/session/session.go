// Package session reads logical command lines from raw text, one physical line at a time.
//
// A line ending with a back-slash asks for more input: the tokens of the next line are
// appended to those already read and the whole sequence is parsed again.
//
package session

import (
	"bufio"
	"errors"
	"io"

	"github.com/tekwizely/cmdline/internal/ast"
	"github.com/tekwizely/cmdline/internal/lexer"
	"github.com/tekwizely/cmdline/internal/parser"
)

// ErrIncomplete is returned when input ends while a continuation is pending.
//
var ErrIncomplete = errors.New("unexpected end of input after continuation")

// MaxLineSize is the longest physical line a session accepts.
// A longer line ends the session with bufio.ErrTooLong.
//
const MaxLineSize = 16 * 1024 * 1024

// Prompter is called before each physical line is read.
// continued is true when the line continues the previous one.
//
type Prompter func(continued bool)

// Line is one logical command line.
//
type Line struct {
	Text   []string        // Physical lines, as read
	Tokens []ast.Token     // Concatenated tokens
	Node   ast.CommandLine // Parsed tree, nil if Err is set
	Err    error           // Grammar error, if any
}

// Session splits input into logical command lines.
//
type Session struct {
	scanner *bufio.Scanner
	prompt  Prompter
}

// New is a convenience method.
// prompt may be nil.
//
func New(r io.Reader, prompt Prompter) *Session {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	return &Session{scanner: scanner, prompt: prompt}
}

// Next reads the next logical line.
// Blank lines are skipped. Returns io.EOF once input is exhausted.
// A grammar error is reported in Line.Err, not as the returned error.
//
func (s *Session) Next() (*Line, error) {
	line := &Line{}
	for {
		text, ok := s.readLine(len(line.Text) > 0)
		if !ok {
			if err := s.scanner.Err(); err != nil {
				return nil, err
			}
			if len(line.Text) > 0 {
				return line, ErrIncomplete
			}
			return nil, io.EOF
		}
		tokens := lexer.Tokenize(text)
		if len(line.Text) == 0 && len(tokens) == 0 {
			continue
		}
		line.Text = append(line.Text, text)
		line.Tokens = append(line.Tokens, tokens...)
		node, err := parser.Parse(line.Tokens)
		if errors.Is(err, parser.ErrContinuation) {
			continue
		}
		line.Node, line.Err = node, err
		return line, nil
	}
}

// readLine prompts for and reads one physical line.
//
func (s *Session) readLine(continued bool) (string, bool) {
	if s.prompt != nil {
		s.prompt(continued)
	}
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}
