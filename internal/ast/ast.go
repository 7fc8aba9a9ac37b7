package ast

import (
	"strconv"
	"strings"
)

// SourceKind identifies where a command reads its input from.
//
type SourceKind int

// Input sources
//
const (
	SourceStdin SourceKind = iota
	SourceFile
)

// InputSource is the input channel of a command.
//
type InputSource struct {
	Kind SourceKind
	Path string
}

// Stdin is the default input source.
//
var Stdin = InputSource{Kind: SourceStdin}

// InFile is a convenience method.
//
func InFile(path string) InputSource {
	return InputSource{Kind: SourceFile, Path: path}
}

// SinkKind identifies where a command writes one of its output channels.
//
type SinkKind int

// Output sinks
//
const (
	SinkStdout SinkKind = iota
	SinkStderr
	SinkFile
)

// OutputSink is the output or error channel of a command.
//
type OutputSink struct {
	Kind SinkKind
	Path string
}

// Stdout and Stderr are the default output and error sinks.
//
var (
	Stdout = OutputSink{Kind: SinkStdout}
	Stderr = OutputSink{Kind: SinkStderr}
)

// OutFile is a convenience method.
//
func OutFile(path string) OutputSink {
	return OutputSink{Kind: SinkFile, Path: path}
}

// Command is one executable unit.
//
type Command struct {
	Args   []string    `yaml:"args,flow"`
	Input  InputSource `yaml:"input"`
	Output OutputSink  `yaml:"output"`
	Error  OutputSink  `yaml:"error"`
}

// NewCommand returns a command with the default channels.
//
func NewCommand(args ...string) Command {
	return Command{Args: args, Input: Stdin, Output: Stdout, Error: Stderr}
}

// String renders the command roughly as it would be typed.
//
func (c Command) String() string {
	var parts []string
	for _, arg := range c.Args {
		parts = append(parts, quoteArg(arg))
	}
	if c.Input.Kind == SourceFile {
		parts = append(parts, "<"+quoteArg(c.Input.Path))
	}
	if c.Output.Kind == SinkFile {
		parts = append(parts, ">"+quoteArg(c.Output.Path))
	}
	switch {
	case c.Error.Kind == SinkFile:
		parts = append(parts, "2>"+quoteArg(c.Error.Path))
	case c.Error.Kind == SinkStdout:
		parts = append(parts, "2>&1")
	}
	return strings.Join(parts, " ")
}

// quoteArg quotes args that would not survive re-tokenizing.
//
func quoteArg(s string) string {
	if len(s) == 0 || strings.ContainsAny(s, " \t\n<>;&|()'\"\\") {
		return strconv.Quote(s)
	}
	return s
}

// CommandLine is a node of the command-line tree.
// The set of implementations is closed: Singleton, Pipeline, Sequence, Background, And, Or.
//
type CommandLine interface {
	String() string
	commandLine()
}

// Singleton wraps a single command.
//
type Singleton struct {
	Command Command
}

// Pipeline connects the output of each node to the input of the next.
//
type Pipeline struct {
	Nodes []CommandLine
}

// Sequence runs each node in turn.
//
type Sequence struct {
	Nodes []CommandLine
}

// Background runs its node without waiting for it.
//
type Background struct {
	Node CommandLine
}

// And runs each node while the previous one succeeds.
//
type And struct {
	Nodes []CommandLine
}

// Or runs each node while the previous one fails.
//
type Or struct {
	Nodes []CommandLine
}

func (*Singleton) commandLine()  {}
func (*Pipeline) commandLine()   {}
func (*Sequence) commandLine()   {}
func (*Background) commandLine() {}
func (*And) commandLine()        {}
func (*Or) commandLine()         {}

func (n *Singleton) String() string  { return n.Command.String() }
func (n *Pipeline) String() string   { return renderList("pipeline", n.Nodes) }
func (n *Sequence) String() string   { return renderList("sequence", n.Nodes) }
func (n *Background) String() string { return "background(" + n.Node.String() + ")" }
func (n *And) String() string        { return renderList("and", n.Nodes) }
func (n *Or) String() string         { return renderList("or", n.Nodes) }

func renderList(name string, nodes []CommandLine) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n.String())
	}
	b.WriteByte(')')
	return b.String()
}
