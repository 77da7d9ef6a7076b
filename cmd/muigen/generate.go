package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/Anaizing/ui-transformer/checkpoint"
	"github.com/Anaizing/ui-transformer/pipeline"
)

func generate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	specDir := fs.String("specs", "specs", "Directory containing spec documents")
	outDir := fs.String("out", "generated", "Directory for generated artifacts")
	jobs := fs.Int("jobs", 4, "Maximum components generated in parallel")
	checkpointDB := fs.String("checkpoint", "", "SQLite checkpoint database path (skip unchanged specs)")
	jsonReport := fs.Bool("json", false, "Print the run report as JSON")
	reportFile := fs.String("report", "", "Write the JSON run report to a file")
	quiet := fs.Bool("quiet", false, "Suppress per-stage progress logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: muigen generate <Component> [Component...] [options]

Run the full pipeline for each named component: load, build, validate,
emit all three artifacts, and write them atomically. Components fail
independently; the exit status reflects the batch as a whole.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  muigen generate Button
  muigen generate Button Typography Card -jobs 8
  muigen generate Button -checkpoint .muigen.db
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("at least one component name required")
	}
	names := fs.Args()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *quiet {
		logger = zerolog.Nop()
	}

	opts := pipeline.Options{
		SpecDir: *specDir,
		OutDir:  *outDir,
		Jobs:    *jobs,
		Logger:  logger,
	}

	if *checkpointDB != "" {
		store, err := checkpoint.NewSQLiteStore(*checkpointDB)
		if err != nil {
			return fmt.Errorf("open checkpoint store: %w", err)
		}
		defer store.Close()
		opts.Checkpoint = store
	}

	report, runErr := pipeline.New(opts).RunBatch(context.Background(), names)

	if *reportFile != "" {
		data, err := report.JSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(*reportFile, data, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	if *jsonReport {
		data, err := report.JSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return runErr
	}

	for _, res := range report.Results {
		switch {
		case res.Error != "":
			fmt.Printf("  %-24s FAILED at %s: %s\n", res.Component, res.Stage, res.Error)
		case res.Skipped:
			fmt.Printf("  %-24s skipped (unchanged)\n", res.Component)
		default:
			fmt.Printf("  %-24s %d artifact(s)\n", res.Component, len(res.Artifacts))
		}
	}
	fmt.Printf("Generated %d, skipped %d, failed %d\n", report.Succeeded, report.Skipped, report.Failed)

	return runErr
}
