package parser

import (
	"fmt"

	"github.com/tekwizely/cmdline/internal/ast"
)

// part is one unit of a parsing level: a command, a subshell, or a separator.
// Exactly one field is set.
//
type part struct {
	cmd  *ast.Command
	node ast.CommandLine
	sep  ast.TokenKind
}

func (pt part) isSeparator() bool {
	return pt.sep != 0
}

// toNode converts a command or subshell part into a tree node.
//
func (pt part) toNode() ast.CommandLine {
	if pt.cmd != nil {
		return &ast.Singleton{Command: *pt.cmd}
	}
	return pt.node
}

// finish folds the parts of one level into a tree, left to right.
// A separator captures everything accumulated so far, so `a && b | c`
// groups as pipeline(and(a, b), c).
//
func finish(parts []part) (ast.CommandLine, error) {
	if len(parts) == 0 || parts[0].isSeparator() {
		return nil, newError("No initial command.")
	}
	var (
		node         = parts[0].toNode()
		needCommand  = false // the last separator must be followed by a command
		allowCommand = false // a command may come next
	)
	for _, pt := range parts[1:] {
		if !pt.isSeparator() {
			if !allowCommand {
				return nil, newError("Found a command where a separator was expected.")
			}
			node = appendNode(node, pt.toNode())
			needCommand, allowCommand = false, false
			continue
		}
		if needCommand {
			return nil, newError("Found a separator where a command was expected.")
		}
		if pt.sep == ast.TokenBackground {
			node = &ast.Background{Node: node}
			needCommand, allowCommand = false, true
			continue
		}
		node = wrapNode(node, pt.sep)
		needCommand, allowCommand = true, true
	}
	if needCommand {
		return nil, newError("Missing command at end of line.")
	}
	return node, nil
}

// wrapNode returns node unchanged when it already is the separator's list variant,
// else a new list variant holding node as its only element.
//
func wrapNode(node ast.CommandLine, sep ast.TokenKind) ast.CommandLine {
	switch sep {
	case ast.TokenPipe:
		if _, ok := node.(*ast.Pipeline); ok {
			return node
		}
		return &ast.Pipeline{Nodes: []ast.CommandLine{node}}
	case ast.TokenAnd:
		if _, ok := node.(*ast.And); ok {
			return node
		}
		return &ast.And{Nodes: []ast.CommandLine{node}}
	case ast.TokenOr:
		if _, ok := node.(*ast.Or); ok {
			return node
		}
		return &ast.Or{Nodes: []ast.CommandLine{node}}
	case ast.TokenSequence:
		if _, ok := node.(*ast.Sequence); ok {
			return node
		}
		return &ast.Sequence{Nodes: []ast.CommandLine{node}}
	default:
		panic(fmt.Sprintf("not a list separator: %d", sep))
	}
}

// appendNode adds next to the running node.
// A background node is not extended: it is sequenced before next.
//
func appendNode(node, next ast.CommandLine) ast.CommandLine {
	switch n := node.(type) {
	case *ast.Pipeline:
		n.Nodes = append(n.Nodes, next)
	case *ast.Sequence:
		n.Nodes = append(n.Nodes, next)
	case *ast.And:
		n.Nodes = append(n.Nodes, next)
	case *ast.Or:
		n.Nodes = append(n.Nodes, next)
	case *ast.Background:
		return &ast.Sequence{Nodes: []ast.CommandLine{n, next}}
	default:
		panic(fmt.Sprintf("cannot append to %T", node))
	}
	return node
}
