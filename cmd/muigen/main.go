package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "ast":
		if err := astCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "uss":
		if err := ussCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "uxml":
		if err := uxmlCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "cs":
		if err := csCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := generate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := validate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "create":
		if err := create(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("muigen version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`muigen - Material component spec to UI Toolkit artifact generator

Usage: muigen <command> [options]

Commands:
  ast       Build and validate a component spec into its AST artifact
  uss       Emit the stylesheet from an AST artifact
  uxml      Emit the markup template from an AST artifact
  cs        Emit the C# binding class from an AST artifact
  generate  Run the full pipeline for one or more components
  validate  Check a component spec and report every violation
  create    Scaffold a spec document from a built-in template
  version   Print version information
  help      Show this help

Each component spec is a JSON or YAML document in the specs directory.
Staged commands (uss, uxml, cs) require the ast stage to have run
first; generate runs the whole pipeline and writes all three artifacts
atomically per component.

Run 'muigen <command> -h' for command options.`)
}
