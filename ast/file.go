package ast

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"github.com/Anaizing/ui-transformer/schema"
)

// ArtifactPath returns the on-disk location of a component's AST
// artifact inside dir.
func ArtifactPath(dir, name string) string {
	return filepath.Join(dir, strings.ToLower(name)+".ast.json")
}

// WriteFile encodes the spec as indented canonical JSON. The encoding
// is deterministic (struct field order, ordered slices), so rewriting
// an unchanged spec produces identical bytes.
func WriteFile(spec *schema.ComponentSpec, path string) error {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ast %s: %w", spec.Name, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write ast %s: %w", spec.Name, err)
	}
	return nil
}

// ReadFile loads a previously written AST artifact. A missing file is
// reported as ErrMissingAST so the staged commands can tell the user
// to run the ast stage first.
func ReadFile(path string) (*schema.ComponentSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", schema.ErrMissingAST, path)
		}
		return nil, fmt.Errorf("read ast: %w", err)
	}
	var spec schema.ComponentSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("decode ast %s: %w", path, err)
	}
	return &spec, nil
}
