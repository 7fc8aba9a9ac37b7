package config

import (
	"io"
	"log"
	"reflect"
	"runtime"
)

// Me stores the name we consider the tool to be running as.
//
var Me string

// ErrOut is where logs and errors are sent to (generally stderr).
//
var ErrOut io.Writer

// Format selects how parsed command lines are printed ("text" or "yaml").
//
var Format string

// ShowTokens prints the token sequence of each logical line instead of its AST.
//
var ShowTokens = false

// Interactive is true when input is read from a terminal, enabling prompts.
//
var Interactive = false

// EnableFnTrace shows parser/lexer fn call/stack
//
var EnableFnTrace = false

// TraceFn logs lexer/parser transitions
//
func TraceFn(msg string, i interface{}) {
	if EnableFnTrace {
		fnName := runtime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()
		log.Println(msg, ":", fnName)
	}
}
