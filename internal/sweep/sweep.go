// Package sweep generates many maps across worker goroutines and summarises
// how the settings shape them.
package sweep

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"starfield/internal/starfield"
	pcore "starfield/pkg/core"
)

// Scenario is one configuration and seed to generate.
type Scenario struct {
	Config starfield.Config
	Seed   int64
}

// Result pairs a scenario with the outcome of generating it.
type Result struct {
	Scenario Scenario
	Stats    starfield.Stats
	Err      error
}

// Scenarios builds the cross product of neighbour iteration counts and seeds
// on top of base. An empty iterations list keeps base's value.
func Scenarios(base starfield.Config, iterations []int, firstSeed int64, seeds int) []Scenario {
	if len(iterations) == 0 {
		iterations = []int{base.NeighbourIterations}
	}
	out := make([]Scenario, 0, len(iterations)*seeds)
	for _, it := range iterations {
		cfg := base
		cfg.NeighbourIterations = it
		for s := 0; s < seeds; s++ {
			out = append(out, Scenario{Config: cfg, Seed: firstSeed + int64(s)})
		}
	}
	return out
}

// Run generates every scenario on the given number of workers. Results come
// back in scenario order. Cancelling ctx stops handing out new work.
func Run(ctx context.Context, scenarios []Scenario, workers int) []Result {
	if workers <= 0 {
		workers = 1
	}
	type job struct {
		index int
		sc    Scenario
	}
	jobs := make(chan job)
	results := make([]Result, len(scenarios))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = runScenario(j.sc)
			}
		}()
	}

	cancelled := func(from int) {
		for k := from; k < len(scenarios); k++ {
			results[k] = Result{Scenario: scenarios[k], Err: ctx.Err()}
		}
	}
feed:
	for i, sc := range scenarios {
		if ctx.Err() != nil {
			cancelled(i)
			break
		}
		select {
		case jobs <- job{index: i, sc: sc}:
		case <-ctx.Done():
			cancelled(i)
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	return results
}

func runScenario(sc Scenario) Result {
	m, err := starfield.Generate(sc.Config, pcore.NewRNG(sc.Seed))
	if err != nil {
		return Result{Scenario: sc, Err: err}
	}
	return Result{Scenario: sc, Stats: m.Stats()}
}

// Summary aggregates the results sharing one iteration count.
type Summary struct {
	Iterations int
	Maps       int
	Failed     int
	// Mean share of cells per density, indexed by starfield.Density.
	Share [4]float64
	// MeanCollisions is the average number of same-variant neighbour pairs
	// left after repair.
	MeanCollisions float64
	MaxCollisions  int
	WorstSeed      int64
	MeanStars      float64
}

func (s Summary) String() string {
	return fmt.Sprintf("iterations=%d maps=%d failed=%d dense=%.1f%% sparse=%.1f%% empty=%.1f%% collisions=%.2f (max %d, seed %d) stars=%.1f",
		s.Iterations, s.Maps, s.Failed,
		100*s.Share[starfield.DensityDense], 100*s.Share[starfield.DensitySparse], 100*s.Share[starfield.DensityEmpty],
		s.MeanCollisions, s.MaxCollisions, s.WorstSeed, s.MeanStars)
}

// Summarise groups results by iteration count, ascending.
func Summarise(results []Result) []Summary {
	groups := make(map[int]*Summary)
	for _, r := range results {
		it := r.Scenario.Config.NeighbourIterations
		s, ok := groups[it]
		if !ok {
			s = &Summary{Iterations: it}
			groups[it] = s
		}
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Maps++
		if r.Stats.Cells > 0 {
			for d, n := range r.Stats.ByDensity {
				s.Share[d] += float64(n) / float64(r.Stats.Cells)
			}
		}
		s.MeanCollisions += float64(r.Stats.Collisions)
		s.MeanStars += float64(r.Stats.Stars)
		if r.Stats.Collisions > s.MaxCollisions || s.Maps == 1 {
			s.MaxCollisions = r.Stats.Collisions
			s.WorstSeed = r.Scenario.Seed
		}
	}

	out := make([]Summary, 0, len(groups))
	for _, s := range groups {
		if s.Maps > 0 {
			n := float64(s.Maps)
			for d := range s.Share {
				s.Share[d] /= n
			}
			s.MeanCollisions /= n
			s.MeanStars /= n
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Iterations < out[j].Iterations })
	return out
}
