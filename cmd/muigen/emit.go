package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Anaizing/ui-transformer/ast"
	"github.com/Anaizing/ui-transformer/codegen/csharp"
	"github.com/Anaizing/ui-transformer/codegen/uss"
	"github.com/Anaizing/ui-transformer/codegen/uxml"
	"github.com/Anaizing/ui-transformer/schema"
)

// emitStage is the shared shape of the three staged emit commands:
// read the AST artifact, render one target, write one file.
func emitStage(args []string, stage string, render func(*schema.ComponentSpec) (string, error), filename func(string) string) error {
	fs := flag.NewFlagSet(stage, flag.ExitOnError)
	outDir := fs.String("out", "generated", "Directory holding AST artifacts and outputs")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: muigen %s <Component> [options]

Emit the %s artifact from a previously built AST artifact.
Run 'muigen ast <Component>' first.

Options:
`, stage, stage)
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

	spec, err := ast.ReadFile(ast.ArtifactPath(*outDir, name))
	if err != nil {
		if errors.Is(err, schema.ErrMissingAST) {
			return fmt.Errorf("%w (run 'muigen ast %s' first)", err, name)
		}
		return err
	}

	content, err := render(spec)
	if err != nil {
		return err
	}

	path := filepath.Join(*outDir, filename(spec.Name))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

func ussCmd(args []string) error {
	return emitStage(args, "uss", uss.Generate, uss.Filename)
}

func uxmlCmd(args []string) error {
	return emitStage(args, "uxml", uxml.Generate, uxml.Filename)
}

func csCmd(args []string) error {
	return emitStage(args, "cs", csharp.Generate, csharp.Filename)
}
