package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tekwizely/cmdline/internal/ast"
	"github.com/tekwizely/cmdline/internal/lexer"
)

var tokenizeTests = []struct {
	Name   string
	Input  string
	Tokens []ast.Token
}{
	{
		Name:   "simple",
		Input:  "  hi there",
		Tokens: []ast.Token{ast.Word("hi"), ast.Word("there")},
	},
	{
		Name:  "empty",
		Input: "",
	},
	{
		Name:  "whitespace only",
		Input: "   \t",
	},
	{
		Name:  "complex pipeline",
		Input: `(cat abc d"e f\""g; echo 'hello\') |grep -i he >matches &`,
		Tokens: []ast.Token{
			ast.OpenSubshell(), ast.Word("cat"), ast.Word("abc"), ast.Word(`de f"g`), ast.Seq(),
			ast.Word("echo"), ast.Word(`hello\`), ast.CloseSubshell(), ast.Pipe(), ast.Word("grep"),
			ast.Word("-i"), ast.Word("he"), ast.RedirectOutput("matches"), ast.Bg(),
		},
	},
	{
		Name:   "redirect input",
		Input:  "wc -l < file.txt",
		Tokens: []ast.Token{ast.Word("wc"), ast.Word("-l"), ast.RedirectInput("file.txt")},
	},
	{
		Name:   "redirects without spaces",
		Input:  "wc<in>out",
		Tokens: []ast.Token{ast.Word("wc"), ast.RedirectInput("in"), ast.RedirectOutput("out")},
	},
	{
		Name:   "missing input file",
		Input:  "wc < >&",
		Tokens: []ast.Token{ast.Word("wc"), ast.LexError("No input file specified.")},
	},
	{
		Name:   "missing output file",
		Input:  "cat foo >",
		Tokens: []ast.Token{ast.Word("cat"), ast.Word("foo"), ast.LexError("No output file specified.")},
	},
	{
		Name:   "empty quoted output file",
		Input:  `cat > "" x`,
		Tokens: []ast.Token{ast.Word("cat"), ast.LexError("No output file specified.")},
	},
	{
		Name:   "quoted output file",
		Input:  `cat > "out file"`,
		Tokens: []ast.Token{ast.Word("cat"), ast.RedirectOutput("out file")},
	},
	{
		Name:   "continuation",
		Input:  `foo && bar &&\`,
		Tokens: []ast.Token{ast.Word("foo"), ast.AndOp(), ast.Word("bar"), ast.AndOp(), ast.Continuation()},
	},
	{
		Name:   "continuation ends word",
		Input:  `foo\`,
		Tokens: []ast.Token{ast.Word("foo"), ast.Continuation()},
	},
	{
		Name:   "back-slash is literal",
		Input:  `a\b \ c`,
		Tokens: []ast.Token{ast.Word(`a\b`), ast.Word(`\`), ast.Word("c")},
	},
	{
		Name:   "unterminated double quote",
		Input:  `foo "bar baz`,
		Tokens: []ast.Token{ast.Word("foo"), ast.LexError(`Missing ".`)},
	},
	{
		Name:   "unterminated single quote",
		Input:  `foo 'bar baz`,
		Tokens: []ast.Token{ast.Word("foo"), ast.LexError(`Missing '.`)},
	},
	{
		Name:   "unterminated quote stops scanning",
		Input:  `a "b ; c`,
		Tokens: []ast.Token{ast.Word("a"), ast.LexError(`Missing ".`)},
	},
	{
		Name:   "unterminated quote in redirect target",
		Input:  `cat > 'out`,
		Tokens: []ast.Token{ast.Word("cat"), ast.LexError(`Missing '.`)},
	},
	{
		Name:   "unterminated double quote after operators",
		Input:  `"||1`,
		Tokens: []ast.Token{ast.LexError(`Missing ".`)},
	},
	{
		Name:   "unterminated double quote after subshell",
		Input:  `);(|)"x`,
		Tokens: []ast.Token{
			ast.CloseSubshell(), ast.Seq(), ast.OpenSubshell(), ast.Pipe(), ast.CloseSubshell(),
			ast.LexError(`Missing ".`),
		},
	},
	{
		Name:   "double quote ends in back-slash",
		Input:  `echo "abc\`,
		Tokens: []ast.Token{ast.Word("echo"), ast.LexError(`Missing ".`)},
	},
	{
		Name:   "double quote ends in escaped quote",
		Input:  `"a\"`,
		Tokens: []ast.Token{ast.LexError(`Missing ".`)},
	},
	{
		Name:   "empty unterminated double quote",
		Input:  `a "`,
		Tokens: []ast.Token{ast.Word("a"), ast.LexError(`Missing ".`)},
	},
	{
		Name:   "word ends at end of input after quote",
		Input:  `a 'b'`,
		Tokens: []ast.Token{ast.Word("a"), ast.Word("b")},
	},
	{
		Name:   "replacement character is literal",
		Input:  "echo a\uFFFDb",
		Tokens: []ast.Token{ast.Word("echo"), ast.Word("a\uFFFDb")},
	},
	{
		Name:   "quoted replacement character",
		Input:  "cat > \"\uFFFD\" '\uFFFD'",
		Tokens: []ast.Token{ast.Word("cat"), ast.RedirectOutput("\uFFFD"), ast.Word("\uFFFD")},
	},
	{
		Name:   "invalid utf-8 in word",
		Input:  "a\xffb",
		Tokens: []ast.Token{ast.LexError("Invalid character in input.")},
	},
	{
		Name:   "invalid utf-8 after word",
		Input:  "echo \xff ok",
		Tokens: []ast.Token{ast.Word("echo"), ast.LexError("Invalid character in input.")},
	},
	{
		Name:   "invalid utf-8 in quotes",
		Input:  "echo '\xff' \"\xff\"",
		Tokens: []ast.Token{ast.Word("echo"), ast.LexError("Invalid character in input.")},
	},
	{
		Name:   "reserved noncharacter",
		Input:  "a \uFDD0",
		Tokens: []ast.Token{ast.Word("a"), ast.LexError("Invalid character in input.")},
	},
	{
		Name:   "double quote escapes",
		Input:  `"a\\b\n\"c"`,
		Tokens: []ast.Token{ast.Word(`a\b\n"c`)},
	},
	{
		Name:   "single quotes are verbatim",
		Input:  `'a\"b' 'it''s'`,
		Tokens: []ast.Token{ast.Word(`a\"b`), ast.Word("its")},
	},
	{
		Name:   "mixed quoting",
		Input:  `echo a"b"'c'd`,
		Tokens: []ast.Token{ast.Word("echo"), ast.Word("abcd")},
	},
	{
		Name:   "empty quotes",
		Input:  `echo ""`,
		Tokens: []ast.Token{ast.Word("echo"), ast.Word("")},
	},
	{
		Name:   "quoted operators",
		Input:  `echo "a|b" 'c;d'`,
		Tokens: []ast.Token{ast.Word("echo"), ast.Word("a|b"), ast.Word("c;d")},
	},
	{
		Name:  "operators",
		Input: "a||b|c&&d&e;f",
		Tokens: []ast.Token{
			ast.Word("a"), ast.OrOp(), ast.Word("b"), ast.Pipe(), ast.Word("c"), ast.AndOp(),
			ast.Word("d"), ast.Bg(), ast.Word("e"), ast.Seq(), ast.Word("f"),
		},
	},
	{
		Name:   "error to output",
		Input:  "cmd 2>&1",
		Tokens: []ast.Token{ast.Word("cmd"), ast.RedirectErrorToOutput()},
	},
	{
		Name:   "error to output before redirect",
		Input:  "cmd 2>&1>out",
		Tokens: []ast.Token{ast.Word("cmd"), ast.RedirectErrorToOutput(), ast.RedirectOutput("out")},
	},
	{
		Name:   "error to output before continuation",
		Input:  `cmd 2>&1\`,
		Tokens: []ast.Token{ast.Word("cmd"), ast.RedirectErrorToOutput(), ast.Continuation()},
	},
	{
		Name:   "error to output needs separator",
		Input:  "cmd 2>&1x",
		Tokens: []ast.Token{ast.Word("cmd"), ast.LexError("No error file specified.")},
	},
	{
		Name:   "redirect error",
		Input:  "cmd 2> err.log",
		Tokens: []ast.Token{ast.Word("cmd"), ast.RedirectError("err.log")},
	},
	{
		Name:   "missing error file",
		Input:  "cmd 2>",
		Tokens: []ast.Token{ast.Word("cmd"), ast.LexError("No error file specified.")},
	},
	{
		Name:   "digit words",
		Input:  "echo 2 23 a2>b",
		Tokens: []ast.Token{ast.Word("echo"), ast.Word("2"), ast.Word("23"), ast.Word("a2"), ast.RedirectOutput("b")},
	},
	{
		Name:   "unicode whitespace",
		Input:  "a\u00a0b\n",
		Tokens: []ast.Token{ast.Word("a"), ast.Word("b")},
	},
}

func TestTokenize(t *testing.T) {
	for _, tt := range tokenizeTests {
		t.Run(tt.Name, func(t *testing.T) {
			got := lexer.Tokenize(tt.Input)
			if diff := cmp.Diff(tt.Tokens, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.Input, diff)
			}
		})
	}
}

func TestTokenizeErrorIsLast(t *testing.T) {
	inputs := []string{
		`a 'b c d e`,
		`a > ; b`,
		`x "y\" z`,
		`a < "" | b`,
		`2>`,
		`"||1`,
		`"abc\`,
		`"a\"`,
		"a\xffb",
	}
	for _, in := range inputs {
		tokens := lexer.Tokenize(in)
		if len(tokens) == 0 {
			t.Errorf("Tokenize(%q) returned no tokens", in)
			continue
		}
		for i, tok := range tokens {
			if tok.Kind == ast.TokenLexError && i != len(tokens)-1 {
				t.Errorf("Tokenize(%q): lex error at %d of %d", in, i, len(tokens))
			}
		}
		if last := tokens[len(tokens)-1]; last.Kind != ast.TokenLexError {
			t.Errorf("Tokenize(%q): expected trailing lex error, got %s", in, last)
		}
	}
}
