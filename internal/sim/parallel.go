package sim

import (
	"context"
	"sync"

	"github.com/san-kum/heatlife/internal/palette"
)

// Ensemble runs independent simulations that differ only in seed.
type Ensemble struct {
	cfg       Config
	space     palette.Space
	numRuns   int
	seedStart int64
	metrics   func() []Metric
}

// NewEnsemble prepares numRuns simulations seeded seedStart, seedStart+1, ...
// newMetrics, if non-nil, is called once per run so no metric is shared.
func NewEnsemble(cfg Config, space palette.Space, numRuns int, seedStart int64, newMetrics func() []Metric) *Ensemble {
	return &Ensemble{cfg: cfg, space: space, numRuns: numRuns, seedStart: seedStart, metrics: newMetrics}
}

func (e *Ensemble) Run(ctx context.Context) ([]Summary, error) {
	results := make([]Summary, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfgCopy := e.cfg
			cfgCopy.Seed = e.seedStart + int64(idx)

			s, err := New(cfgCopy, e.space)
			if err != nil {
				errs[idx] = err
				return
			}
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}

			if err := s.Advance(ctx); err != nil {
				errs[idx] = err
				return
			}
			results[idx] = s.Summary()
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
