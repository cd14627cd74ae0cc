// Command monkey is the entry point for the Monkey interpreter.
// With no arguments it starts an interactive REPL; given a file path it
// evaluates that file's source once and exits.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/monkeylang/monkey/evaluator"
	"github.com/monkeylang/monkey/object"
	"github.com/monkeylang/monkey/parser"
	"github.com/monkeylang/monkey/repl"
)

// VERSION is the current version of the Monkey interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's maintainer.
var AUTHOR = "monkeylang"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "monkey >> "

// LINE separates banner sections in the REPL.
var LINE = "----------------------------------------------------------------"

// BANNER is the text shown when starting the REPL.
var BANNER = `
   __  __             _
  |  \/  | ___  _ __ | | _____ _   _
  | |\/| |/ _ \| '_ \| |/ / _ \ | | |
  | |  | | (_) | | | |   <  __/ |_| |
  |_|  |_|\___/|_| |_|_|\_\___|\__, |
                                |___/
`

var redColor = color.New(color.FgRed)

func main() {
	if len(os.Args) > 1 {
		runFile(os.Args[1])
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

// runFile reads, parses, and evaluates the source at path, printing
// anything puts() writes. It reports every parse error, or else the
// runtime error that stopped evaluation, and exits with status 1.
func runFile(path string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", path, err)
		os.Exit(1)
	}

	p := parser.New(string(source))
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, msg := range p.Errors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		os.Exit(1)
	}

	evaluator.SetOutput(os.Stdout)
	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)

	if result != nil && result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}
}
