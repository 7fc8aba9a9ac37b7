package parser

import (
	"errors"

	"github.com/tekwizely/go-parsing/parser"

	"github.com/tekwizely/cmdline/internal/ast"
	"github.com/tekwizely/cmdline/internal/config"
)

// ErrContinuation is returned by Parse when the token sequence ends with a continuation.
// The caller must tokenize another line, append its tokens and parse again.
//
var ErrContinuation = errors.New("continuation required")

// Error is a grammar error. Msg is the human-readable reason.
//
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}

func newError(msg string) error {
	return &Error{Msg: msg}
}

// result is the single value emitted by the top-level parser fn.
//
type result struct {
	node ast.CommandLine
	err  error
}

// Parse converts a token sequence into a command line.
// An empty sequence parses to an empty Sequence.
//
func Parse(tokens []ast.Token) (ast.CommandLine, error) {
	if len(tokens) == 0 {
		return &ast.Sequence{Nodes: []ast.CommandLine{}}, nil
	}
	// Only the very last token decides whether more input is needed
	//
	if tokens[len(tokens)-1].Kind == ast.TokenContinuation {
		return nil, ErrContinuation
	}
	v, err := parser.Parse(&tokenStream{tokens: tokens}, parseMain).Next()
	if err != nil {
		return nil, err
	}
	r := v.(result)
	return r.node, r.err
}

// parseMain parses the outermost level and emits its result.
//
func parseMain(p *parser.Parser) parser.Fn {
	config.TraceFn("Calling parser function", parseMain)
	node, err := parseLevel(p, 0)
	p.Emit(result{node: node, err: err})
	return nil
}

// parseLevel consumes tokens up to the end of input (level 0) or up to and including
// the ')' closing the current subshell (level > 0).
// The parser acts as the shared cursor, so a nested call resumes exactly where it stopped.
//
func parseLevel(p *parser.Parser, level int) (ast.CommandLine, error) {
	var (
		parts   []part
		pending []ast.Token
	)
	// flush turns pending words and redirects into a command part
	//
	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		cmd, err := MakeCommand(pending)
		if err != nil {
			return err
		}
		parts = append(parts, part{cmd: &cmd})
		pending = nil
		return nil
	}

	for p.CanPeek(1) {
		t := toToken(p.Next())
		p.Clear()
		switch {
		case t.Kind == ast.TokenLexError:
			return nil, newError(t.Text)
		case t.IsSeparator():
			if err := flush(); err != nil {
				return nil, err
			}
			parts = append(parts, part{sep: t.Kind})
		case t.Kind == ast.TokenOpenSubshell:
			if err := flush(); err != nil {
				return nil, err
			}
			config.TraceFn("Calling parser function", parseLevel)
			node, err := parseLevel(p, level+1)
			if errors.Is(err, ErrContinuation) {
				panic("continuation reported inside a subshell")
			}
			if err != nil {
				return nil, err
			}
			parts = append(parts, part{node: node})
		case t.Kind == ast.TokenCloseSubshell:
			if level == 0 {
				return nil, newError("Unexpected ')'.")
			}
			if err := flush(); err != nil {
				return nil, err
			}
			return finish(parts)
		case t.Kind == ast.TokenContinuation:
			// Only meaningful as the last token of the whole input
		default:
			pending = append(pending, t)
		}
	}
	if level > 0 {
		return nil, newError("Expected ')'")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return finish(parts)
}
