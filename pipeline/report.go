package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ComponentResult records the outcome of one component's generation.
type ComponentResult struct {
	Component string   `json:"component"`
	Artifacts []string `json:"artifacts,omitempty"`
	Skipped   bool     `json:"skipped,omitempty"`
	Stage     string   `json:"stage,omitempty"` // failing stage, empty on success
	Error     string   `json:"error,omitempty"`
}

// Report aggregates a batch run.
type Report struct {
	RunID    string            `json:"runId"`
	Started  time.Time         `json:"started"`
	Finished time.Time         `json:"finished"`
	Results  []ComponentResult `json:"results"`

	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// JSON encodes the report for --json output and report files.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// RunBatch generates every named component, up to Jobs at a time.
// Components fail independently; the returned error is an aggregate
// summary, and the report carries per-component detail in input order.
func (g *Generator) RunBatch(ctx context.Context, names []string) (*Report, error) {
	report := &Report{
		RunID:   uuid.NewString(),
		Started: time.Now().UTC(),
		Results: make([]ComponentResult, len(names)),
	}

	var mu sync.Mutex
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Jobs)

	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			result, err := g.Run(ctx, name)
			mu.Lock()
			report.Results[i] = *result
			mu.Unlock()
			// Component errors are recorded, not propagated: one bad
			// spec must not cancel its siblings.
			_ = err
			return nil
		})
	}
	// Workers never return errors; Wait only orders completion.
	_ = eg.Wait()

	report.Finished = time.Now().UTC()
	for _, res := range report.Results {
		switch {
		case res.Error != "":
			report.Failed++
		case res.Skipped:
			report.Skipped++
		default:
			report.Succeeded++
		}
	}

	if report.Failed > 0 {
		return report, fmt.Errorf("%d of %d component(s) failed", report.Failed, len(names))
	}
	return report, nil
}
