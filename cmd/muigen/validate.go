package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/Anaizing/ui-transformer/ast"
	"github.com/Anaizing/ui-transformer/parser"
	"github.com/Anaizing/ui-transformer/validation"
)

func validate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	specDir := fs.String("specs", "specs", "Directory containing spec documents")
	jsonOut := fs.Bool("json", false, "Print issues as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: muigen validate <Component> [options]

Load a component spec, build its AST, and report every validation
issue at once rather than stopping at the first. Warnings do not fail
the command; errors do.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("component name required")
	}
	name := fs.Arg(0)

	specPath, err := parser.SpecPath(*specDir, name)
	if err != nil {
		return err
	}
	doc, err := parser.Load(specPath)
	if err != nil {
		return err
	}
	spec, err := ast.Build(doc)
	if err != nil {
		return err
	}

	result := validation.NewValidator(spec).Validate()

	if *jsonOut {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		if result.Summary.Errors > 0 {
			return fmt.Errorf("%d error(s)", result.Summary.Errors)
		}
		return nil
	}

	if len(result.Errors) == 0 && len(result.Warnings) == 0 {
		fmt.Printf("%s: valid\n", spec.Name)
		return nil
	}

	for _, issue := range append(result.Errors, result.Warnings...) {
		fmt.Printf("  [%s] %s (%s)\n", issue.Severity, issue.Message, strings.Join(issue.Location, ", "))
		if issue.Suggestion != "" {
			fmt.Printf("      suggestion: %s\n", issue.Suggestion)
		}
	}
	fmt.Printf("%d error(s), %d warning(s)\n", result.Summary.Errors, result.Summary.Warnings)

	if result.Summary.Errors > 0 {
		return errors.New("validation failed")
	}
	return nil
}
