package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Anaizing/ui-transformer/ast"
	"github.com/Anaizing/ui-transformer/parser"
	"github.com/Anaizing/ui-transformer/schema"
	"github.com/Anaizing/ui-transformer/validation"
)

func astCmd(args []string) error {
	fs := flag.NewFlagSet("ast", flag.ExitOnError)
	specDir := fs.String("specs", "specs", "Directory containing spec documents")
	outDir := fs.String("out", "generated", "Directory for the AST artifact")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: muigen ast <Component> [options]

Load a component spec document, build its AST, validate it, and write
the AST artifact consumed by the staged emit commands.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  muigen ast Button
  muigen ast Button -specs ./specs -out ./generated
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("component name required")
	}
	name := fs.Arg(0)

	spec, err := loadAndValidate(*specDir, name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := ast.ArtifactPath(*outDir, spec.Name)
	if err := ast.WriteFile(spec, path); err != nil {
		return err
	}

	fmt.Printf("Wrote AST artifact to %s\n", path)
	return nil
}

// loadAndValidate runs the front half of the pipeline for one
// component: spec document to validated ComponentSpec.
func loadAndValidate(specDir, name string) (*schema.ComponentSpec, error) {
	specPath, err := parser.SpecPath(specDir, name)
	if err != nil {
		return nil, err
	}
	doc, err := parser.Load(specPath)
	if err != nil {
		return nil, err
	}
	built, err := ast.Build(doc)
	if err != nil {
		return nil, err
	}
	return validation.Validate(built)
}
