package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/Anaizing/ui-transformer/schema"
)

// Format identifies a spec document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// Load reads and parses the spec document at path. The format is taken
// from the file extension (.json, .yaml, .yml); anything else falls
// back to content sniffing.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &schema.SpecError{Component: componentFromPath(path), Err: err}
	}
	return Parse(data, formatFor(path, data), componentFromPath(path))
}

// Parse decodes raw spec text into a normalized parse tree. component
// names the spec for error reporting; it is overridden by the
// document's own name field when that is present.
func Parse(data []byte, format Format, component string) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, &schema.SpecError{Component: component, Err: err}
	}

	if doc.Name == "" {
		doc.Name = component
	}
	if err := normalize(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func formatFor(path string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	case ".json":
		return JSON
	}
	trimmed := strings.TrimLeftFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if strings.HasPrefix(trimmed, "{") {
		return JSON
	}
	return YAML
}

func componentFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SpecPath returns the conventional spec document path for a component
// name inside dir: lowercase name plus .json, falling back to the
// .yaml/.yml variant when that exists instead.
func SpecPath(dir, name string) (string, error) {
	candidates := []string{
		filepath.Join(dir, strings.ToLower(name)+".json"),
		filepath.Join(dir, strings.ToLower(name)+".yaml"),
		filepath.Join(dir, strings.ToLower(name)+".yml"),
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", &schema.SpecError{
		Component: name,
		Err:       fmt.Errorf("no spec document found in %s (tried %s)", dir, strings.Join(candidates, ", ")),
	}
}
