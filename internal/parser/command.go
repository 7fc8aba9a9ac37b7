package parser

import (
	"fmt"

	"github.com/tekwizely/cmdline/internal/ast"
)

// MakeCommand builds a command from a non-empty run of word and redirect tokens.
// Each channel may be redirected once; '2>&1' copies the output sink as it stands
// when the token is seen.
//
func MakeCommand(tokens []ast.Token) (ast.Command, error) {
	if len(tokens) == 0 {
		panic("MakeCommand called without tokens")
	}
	var (
		cmd                        = ast.NewCommand()
		hasInput, hasOut, hasError bool
	)
	cmd.Args = []string{}
	for _, t := range tokens {
		switch t.Kind {
		case ast.TokenWord:
			cmd.Args = append(cmd.Args, t.Text)
		case ast.TokenRedirectOutput:
			if hasOut {
				return ast.Command{}, newError("Multiple output redirects.")
			}
			cmd.Output, hasOut = ast.OutFile(t.Text), true
		case ast.TokenRedirectInput:
			if hasInput {
				return ast.Command{}, newError("Multiple input redirects.")
			}
			cmd.Input, hasInput = ast.InFile(t.Text), true
		case ast.TokenRedirectError:
			if hasError {
				return ast.Command{}, newError("Multiple error redirects.")
			}
			cmd.Error, hasError = ast.OutFile(t.Text), true
		case ast.TokenRedirectErrorToOutput:
			if hasError {
				return ast.Command{}, newError("Multiple error redirects.")
			}
			cmd.Error, hasError = cmd.Output, true
		default:
			return ast.Command{}, newError(fmt.Sprintf("Unexpected token: %s.", t))
		}
	}
	return cmd, nil
}
