// Package workerpool runs independent SimulationRequests concurrently
// across a bounded set of goroutines, adapted from the
// evaluation.WorkerPool job/result channel pattern found elsewhere in
// the retrieved pack: a jobs channel feeds numWorkers goroutines, a
// results channel collects answers keyed by input index, and a single
// WaitGroup closes the results channel once every worker drains.
// Each SimulationRequest still runs single-threaded end to end
// (spec.md §5) - this pool only parallelises *across* requests, never
// within one.
package workerpool

import (
	"sync"

	"github.com/quantrisk/portfolio-stress/engine"
	"github.com/quantrisk/portfolio-stress/simtypes"
)

// Pool runs batches of simulation requests across a fixed number of
// worker goroutines, each driving its own Simulator.Run call.
type Pool struct {
	numWorkers int
	stepsPerYear int
}

// NewPool constructs a Pool with numWorkers goroutines, each running a
// Simulator configured at stepsPerYear. numWorkers <= 0 defaults to 4.
func NewPool(numWorkers, stepsPerYear int) *Pool {
	if numWorkers <= 0 {
		numWorkers = 4
	}
	return &Pool{numWorkers: numWorkers, stepsPerYear: stepsPerYear}
}

// RunBatch runs every request in requests, returning results (and,
// per index, any error) in the same order as the input. A failure in
// one request does not abort the others.
func (p *Pool) RunBatch(requests []simtypes.SimulationRequest) ([]simtypes.SimulationResult, []error) {
	n := len(requests)
	if n == 0 {
		return nil, nil
	}

	jobs := make(chan job, n)
	resultsCh := make(chan jobResult, n)

	numActualWorkers := p.numWorkers
	if n < numActualWorkers {
		numActualWorkers = n
	}

	var wg sync.WaitGroup
	for i := 0; i < numActualWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(jobs, resultsCh)
		}()
	}

	for idx, req := range requests {
		jobs <- job{index: idx, request: req}
	}
	close(jobs)

	wg.Wait()
	close(resultsCh)

	results := make([]simtypes.SimulationResult, n)
	errs := make([]error, n)
	for r := range resultsCh {
		results[r.index] = r.result
		errs[r.index] = r.err
	}
	return results, errs
}

func (p *Pool) worker(jobs <-chan job, results chan<- jobResult) {
	sim := engine.NewSimulator(p.stepsPerYear)
	for j := range jobs {
		result, err := sim.Run(j.request)
		results <- jobResult{index: j.index, result: result, err: err}
	}
}

type job struct {
	index   int
	request simtypes.SimulationRequest
}

type jobResult struct {
	index  int
	result simtypes.SimulationResult
	err    error
}
