package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Anaizing/ui-transformer/templates"
)

func create(args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	templateName := fs.String("template", "", "Template name (required)")
	output := fs.String("output", "", "Output file (required)")
	listTemplates := fs.Bool("list", false, "List available templates")
	showTemplate := fs.String("show", "", "Print a template's spec document to stdout")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: muigen create [options]

Scaffold a component spec document from a built-in template. The
written document is a complete, valid spec ready for 'muigen generate'
or for editing into a new component.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Available Templates:
`)
		for _, name := range templates.List() {
			tmpl, _ := templates.Get(name)
			fmt.Fprintf(os.Stderr, "  %-12s %s\n", name, tmpl.Description())
		}
		fmt.Fprintf(os.Stderr, `
Examples:
  # List templates
  muigen create --list

  # Inspect the button template
  muigen create --show button

  # Scaffold a button spec
  muigen create --template button --output specs/button.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *listTemplates {
		fmt.Println("Available templates:")
		for _, name := range templates.List() {
			tmpl, _ := templates.Get(name)
			fmt.Printf("  %-12s %s\n", name, tmpl.Description())
		}
		return nil
	}

	if *showTemplate != "" {
		tmpl, err := templates.Get(*showTemplate)
		if err != nil {
			return err
		}
		fmt.Println(strings.TrimRight(tmpl.Source(), "\n"))
		return nil
	}

	if *templateName == "" || *output == "" {
		fs.Usage()
		return fmt.Errorf("--template and --output are required")
	}

	tmpl, err := templates.Get(*templateName)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(*output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if _, err := os.Stat(*output); err == nil {
		return fmt.Errorf("refusing to overwrite existing file %s", *output)
	}
	if err := os.WriteFile(*output, []byte(tmpl.Source()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *output, err)
	}

	fmt.Printf("Created %s spec at %s\n", tmpl.Name(), *output)
	return nil
}
