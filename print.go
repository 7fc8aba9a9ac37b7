package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tekwizely/cmdline/internal/config"
	"github.com/tekwizely/cmdline/internal/session"
)

// Output formats
//
const (
	formatText = "text"
	formatYAML = "yaml"
)

func isFormat(s string) bool {
	return s == formatText || s == formatYAML
}

// run prints every logical line read from s, returning the exit code.
//
func run(s *session.Session, out io.Writer) int {
	exitCode := 0
	var enc *yaml.Encoder
	if config.Format == formatYAML && !config.ShowTokens {
		enc = yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
	}
	for {
		line, err := s.Next()
		if errors.Is(err, io.EOF) {
			return exitCode
		}
		if err != nil {
			log.Printf("ERROR: %s", err)
			return 1
		}
		if config.ShowTokens {
			printTokens(out, line)
			continue
		}
		if line.Err != nil {
			log.Printf("ERROR: %s: %s", strings.Join(line.Text, " "), line.Err)
			exitCode = 1
			continue
		}
		if enc != nil {
			if err = enc.Encode(line.Node); err != nil {
				log.Printf("ERROR: %s", err)
				return 1
			}
			continue
		}
		_, _ = fmt.Fprintln(out, line.Node)
	}
}

// printTokens writes one token per line, like a scanner dump.
//
func printTokens(out io.Writer, line *session.Line) {
	for _, t := range line.Tokens {
		_, _ = fmt.Fprintln(out, t)
	}
	_, _ = fmt.Fprintln(out)
}
