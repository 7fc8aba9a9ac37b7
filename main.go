package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"strings"

	"github.com/tekwizely/cmdline/internal/config"
	"github.com/tekwizely/cmdline/internal/session"
	"github.com/tekwizely/cmdline/internal/util"
)

const (
	formatEnv     = "CMDLINE_FORMAT"
	traceEnv      = "CMDLINE_TRACE"
	formatDefault = formatText
)

var (
	hidePanic = true // Hide full trace on panics
)

// showUsageHint prints a terse usage string.
//
func showUsageHint() {
	_, _ = fmt.Fprintf(config.ErrOut, "see '%s --help' for more information\n", config.Me)
}

// showHelp
//
//goland:noinspection GoUnhandledErrorResult // fmt.*
func showHelp() {
	pad := strings.Repeat(" ", len(config.Me)-1)
	fmt.Fprintf(config.ErrOut, "Usage:\n")
	fmt.Fprintf(config.ErrOut, "       %s [option ...] [file]\n", config.Me)
	fmt.Fprintf(config.ErrOut, "       %s (parse command lines from file, or stdin)\n", pad)
	fmt.Fprintf(config.ErrOut, "  or   %s [option ...] -c <command line>\n", config.Me)
	fmt.Fprintf(config.ErrOut, "       %s (parse the given command line)\n", pad)
	fmt.Fprintf(config.ErrOut, "  or   %s version\n", config.Me)
	fmt.Fprintf(config.ErrOut, "       %s (show version)\n", pad)

	fmt.Fprintln(config.ErrOut, "Options:")
	fmt.Fprintln(config.ErrOut, "  -c, --command <text>")
	fmt.Fprintln(config.ErrOut, "        Parse <text> instead of reading input")
	fmt.Fprintln(config.ErrOut, "  -t, --tokens")
	fmt.Fprintln(config.ErrOut, "        Show tokens instead of the command tree")
	fmt.Fprintln(config.ErrOut, "  -f, --format <text|yaml>")
	fmt.Fprintf(config.ErrOut, "        Command tree output format (default='${%s:-%s}')\n", formatEnv, formatDefault)
	fmt.Fprintln(config.ErrOut, "  --trace")
	fmt.Fprintf(config.ErrOut, "        Trace lexer/parser functions (default='${%s:-false}')\n", traceEnv)
	fmt.Fprintln(config.ErrOut, "Note:")
	fmt.Fprintln(config.ErrOut, "  A line ending with '\\' continues on the next line")
}

// showVersion
//
func showVersion() {
	fmt.Println(config.Me, versionString())
}

// main
//
//goland:noinspection GoUnhandledErrorResult // fmt.*
func main() {
	// NOTE: Instead of os.Exit, set exitCode then return
	//
	exitCode := 0
	// First defer in = last defer out
	//
	defer func() {
		// Propagate exit code if non-0
		// os.Exit aborts program immediately, so delay as long as possible
		//
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()

	config.ErrOut = os.Stderr
	config.Me = path.Base(os.Args[0])
	// Configure logging
	//
	log.SetFlags(0)
	log.SetPrefix(config.Me + ": ")
	log.SetOutput(config.ErrOut)
	// Capture panics as log messages
	//
	//goland:noinspection GoBoolExpressions
	if hidePanic {
		defer func() {
			if r := recover(); r != nil {
				// ~= log.Fatal
				log.Print(r)
				exitCode = 1
			}
		}()
	}
	if len(os.Args) > 1 && strings.EqualFold(os.Args[1], "version") {
		showVersion()
		return // Exit early
	}
	var command string
	if exitCode = parseArgs(&command); exitCode != 0 {
		return
	}
	var input io.Reader
	switch {
	// -c <command line>
	//
	case len(command) > 0:
		input = strings.NewReader(command)
	// File
	//
	case len(os.Args) > 0:
		fileBytes, exists, err := util.ReadFileIfExists(os.Args[0])
		if !exists {
			if err == nil {
				log.Printf("ERROR: file '%s' not found", os.Args[0])
			} else {
				// If path error, hide the operation (stat, open, etc)
				//
				var pathErr *os.PathError
				if errors.As(err, &pathErr) {
					log.Printf("ERROR: %s: %s", pathErr.Path, pathErr.Err)
				} else {
					log.Printf("ERROR: %s", err)
				}
			}
			exitCode = 2
			return
		}
		input = bytes.NewReader(fileBytes)
	// Stdin
	//
	default:
		input = os.Stdin
		config.Interactive = util.IsTerminal(os.Stdin)
	}
	var prompt session.Prompter
	if config.Interactive {
		prompt = showPrompt
	}
	exitCode = run(session.New(input, prompt), os.Stdout)
}

// showPrompt writes the primary or continuation prompt.
//
func showPrompt(continued bool) {
	if continued {
		_, _ = fmt.Fprint(config.ErrOut, "> ")
	} else {
		_, _ = fmt.Fprint(config.ErrOut, "$ ")
	}
}

func parseArgs(command *string) int {
	flag.CommandLine.Init(config.Me, flag.ContinueOnError)
	flag.CommandLine.SetOutput(config.ErrOut)

	var showHelpFlag bool
	flag.BoolVar(&showHelpFlag, "help", false, "")
	flag.BoolVar(&showHelpFlag, "h", false, "")
	flag.StringVar(command, "command", "", "")
	flag.StringVar(command, "c", "", "")
	flag.BoolVar(&config.ShowTokens, "tokens", false, "")
	flag.BoolVar(&config.ShowTokens, "t", false, "")
	defaultFormat := util.GetEnvOrDefault(formatEnv, formatDefault)
	flag.StringVar(&config.Format, "format", defaultFormat, "")
	flag.StringVar(&config.Format, "f", defaultFormat, "")
	flag.BoolVar(&config.EnableFnTrace, "trace", util.GetEnvBool(traceEnv, false), "")
	exitCode := 0
	// Invoked if error parsing args - sets exit code 2
	//
	flag.CommandLine.Usage = func() {
		showUsageHint()
		exitCode = 2
	}
	flag.Parse()
	if exitCode != 0 {
		return exitCode
	}
	// Help?
	//
	if showHelpFlag {
		showHelp()
		return 2
	}
	if !isFormat(config.Format) {
		log.Printf("ERROR: unknown format '%s'", config.Format)
		showUsageHint()
		return 2
	}
	os.Args = flag.Args()
	return 0
}
