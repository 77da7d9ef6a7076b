// Package pipeline sequences the generation stages for one component
// (load, build, validate, emit three artifacts) and drives batches
// across components. Components are independent: a failure aborts only
// its own component, and a component's three artifacts land atomically
// or not at all.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Anaizing/ui-transformer/ast"
	"github.com/Anaizing/ui-transformer/checkpoint"
	"github.com/Anaizing/ui-transformer/codegen/csharp"
	"github.com/Anaizing/ui-transformer/codegen/uss"
	"github.com/Anaizing/ui-transformer/codegen/uxml"
	"github.com/Anaizing/ui-transformer/parser"
	"github.com/Anaizing/ui-transformer/validation"
)

// Stage names used in error tags and logs.
const (
	StageLoad     = "load"
	StageBuild    = "build"
	StageValidate = "validate"
	StageEmitUSS  = "emit-uss"
	StageEmitUXML = "emit-uxml"
	StageEmitCS   = "emit-cs"
	StageWrite    = "write"
)

// StageError tags a component failure with the pipeline stage that
// produced it.
type StageError struct {
	Component string
	Stage     string
	Err       error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: stage %s: %v", e.Component, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Options configures a Generator.
type Options struct {
	// SpecDir holds the component spec documents.
	SpecDir string

	// OutDir receives the generated artifacts.
	OutDir string

	// Jobs bounds batch parallelism. Zero or negative means one.
	Jobs int

	// Checkpoint, when set, lets re-runs skip components whose spec
	// hash is already marked done.
	Checkpoint checkpoint.Store

	// Logger receives one structured event per component stage
	// outcome.
	Logger zerolog.Logger
}

// Generator runs the generation pipeline.
type Generator struct {
	opts Options
	log  zerolog.Logger
}

// New creates a Generator.
func New(opts Options) *Generator {
	if opts.Jobs < 1 {
		opts.Jobs = 1
	}
	return &Generator{opts: opts, log: opts.Logger}
}

// Run generates all three artifacts for one component. On success the
// returned result lists the artifact paths; on failure nothing is left
// on disk and the error names the failing stage.
func (g *Generator) Run(ctx context.Context, name string) (*ComponentResult, error) {
	result := &ComponentResult{Component: name}

	specPath, err := parser.SpecPath(g.opts.SpecDir, name)
	if err != nil {
		return result, g.fail(result, StageLoad, err)
	}
	raw, err := os.ReadFile(specPath)
	if err != nil {
		return result, g.fail(result, StageLoad, err)
	}

	hash := checkpoint.Hash(raw)
	if g.opts.Checkpoint != nil {
		done, err := g.opts.Checkpoint.Done(ctx, name, hash)
		if err != nil {
			return result, g.fail(result, StageLoad, err)
		}
		if done {
			result.Skipped = true
			g.log.Info().Str("component", name).Msg("checkpoint hit, skipping")
			return result, nil
		}
	}

	doc, err := parser.Parse(raw, formatOf(specPath), name)
	if err != nil {
		return result, g.fail(result, StageLoad, err)
	}

	spec, err := ast.Build(doc)
	if err != nil {
		return result, g.fail(result, StageBuild, err)
	}

	if _, err := validation.Validate(spec); err != nil {
		return result, g.fail(result, StageValidate, err)
	}

	stylesheet, err := uss.Generate(spec)
	if err != nil {
		return result, g.fail(result, StageEmitUSS, err)
	}
	markup, err := uxml.Generate(spec)
	if err != nil {
		return result, g.fail(result, StageEmitUXML, err)
	}
	binding, err := csharp.Generate(spec)
	if err != nil {
		return result, g.fail(result, StageEmitCS, err)
	}

	artifacts := []artifact{
		{name: uss.Filename(spec.Name), content: stylesheet},
		{name: uxml.Filename(spec.Name), content: markup},
		{name: csharp.Filename(spec.Name), content: binding},
	}
	paths, err := writeAtomic(g.opts.OutDir, spec.Name, artifacts)
	if err != nil {
		return result, g.fail(result, StageWrite, err)
	}
	result.Artifacts = paths

	if g.opts.Checkpoint != nil {
		if err := g.opts.Checkpoint.Mark(ctx, name, hash); err != nil {
			// Artifacts are already in place; a failed mark only costs
			// a regeneration on retry.
			g.log.Warn().Str("component", name).Err(err).Msg("checkpoint mark failed")
		}
	}

	g.log.Info().Str("component", name).Strs("artifacts", paths).Msg("generated")
	return result, nil
}

func (g *Generator) fail(result *ComponentResult, stage string, err error) error {
	serr := &StageError{Component: result.Component, Stage: stage, Err: err}
	result.Stage = stage
	result.Error = serr.Error()
	g.log.Error().Str("component", result.Component).Str("stage", stage).Err(err).Msg("generation failed")
	return serr
}

type artifact struct {
	name    string
	content string
}

// writeAtomic lands a component's artifact set all-or-nothing: every
// file is written to a staging directory first, then renamed into
// place; any failure rolls back the renames that already happened.
func writeAtomic(outDir, component string, artifacts []artifact) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}
	staging, err := os.MkdirTemp(outDir, "."+strings.ToLower(component)+"-stage-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(staging)

	for _, a := range artifacts {
		if err := os.WriteFile(filepath.Join(staging, a.name), []byte(a.content), 0o644); err != nil {
			return nil, err
		}
	}

	var placed []string
	for _, a := range artifacts {
		target := filepath.Join(outDir, a.name)
		if err := os.Rename(filepath.Join(staging, a.name), target); err != nil {
			for _, p := range placed {
				os.Remove(p)
			}
			return nil, err
		}
		placed = append(placed, target)
	}
	return placed, nil
}

func formatOf(path string) parser.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parser.YAML
	default:
		return parser.JSON
	}
}
