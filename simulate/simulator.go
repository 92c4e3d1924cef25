package simulate

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/guicruzsp/Interest-Rate-Models/config"
	"github.com/guicruzsp/Interest-Rate-Models/ratemodel"
)

var (
	// ErrNilModel is returned when Run is called without a model.
	ErrNilModel = errors.New("nil model")
)

// PathEnsemble is a matrix of simulated short-rate trajectories: one row per
// grid point, one column per independent trajectory. Row 0 holds the initial
// rate for every column. The ensemble is created once per simulation call
// and never mutated afterwards.
type PathEnsemble struct {
	Grid  TimeGrid
	Rates *mat.Dense
}

// Steps returns the number of grid rows.
func (e *PathEnsemble) Steps() int {
	r, _ := e.Rates.Dims()
	return r
}

// Paths returns the number of trajectories.
func (e *PathEnsemble) Paths() int {
	_, c := e.Rates.Dims()
	return c
}

// At returns the simulated rate at grid row i on trajectory j.
func (e *PathEnsemble) At(i, j int) float64 {
	return e.Rates.At(i, j)
}

// Simulator produces path ensembles by Euler-Maruyama forward iteration.
// Columns are statistically independent: each one is generated from its own
// seed-derived draw stream, so the output is bit-for-bit reproducible for a
// given Seed regardless of how the work is scheduled.
type Simulator struct {
	Grid        TimeGrid
	Paths       int
	InitialRate float64
	Seed        uint64
}

// NewSimulator validates the run configuration and returns a simulator.
// Configuration errors surface here, before any simulation work begins.
func NewSimulator(grid TimeGrid, paths int, initialRate float64, seed uint64) (*Simulator, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if paths <= 0 {
		return nil, fmt.Errorf("NewSimulator: ensemble size must be positive, got %d", paths)
	}
	return &Simulator{Grid: grid, Paths: paths, InitialRate: initialRate, Seed: seed}, nil
}

// Run simulates one ensemble under the given one-factor model. Every column
// starts at the simulator's initial rate and applies the model step with a
// fresh draw at each subsequent row.
func (s *Simulator) Run(m ratemodel.Model) (*PathEnsemble, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	ens := s.newEnsemble()
	dt := s.Grid.Dt()
	s.eachColumn(func(j int, src *RandomSource) {
		r := s.InitialRate
		ens.Rates.Set(0, j, r)
		for i := 1; i < s.Grid.Steps; i++ {
			r = m.Step(r, dt, src.Normal(), i)
			ens.Rates.Set(i, j, r)
		}
	})
	return ens, nil
}

// RunTwoFactor simulates one ensemble under a two-factor model. Each step
// draws one correlated pair, advances both latent factors, and records their
// sum as the observable rate. The simulator's InitialRate is ignored; the
// model's latent initial values define row 0.
func (s *Simulator) RunTwoFactor(m ratemodel.TwoFactor) (*PathEnsemble, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	ens := s.newEnsemble()
	dt := s.Grid.Dt()
	rho := m.Correlation()
	s.eachColumn(func(j int, src *RandomSource) {
		x, y := m.Initial()
		ens.Rates.Set(0, j, x+y)
		for i := 1; i < s.Grid.Steps; i++ {
			z1, z2 := src.CorrelatedPair(rho)
			x, y = m.StepFactors(x, y, dt, z1, z2, i)
			ens.Rates.Set(i, j, x+y)
		}
	})
	return ens, nil
}

func (s *Simulator) newEnsemble() *PathEnsemble {
	return &PathEnsemble{
		Grid:  s.Grid,
		Rates: mat.NewDense(s.Grid.Steps, s.Paths, nil),
	}
}

// eachColumn fans the column indices out over a bounded worker pool. Every
// column receives a source derived from the run seed and the column index
// alone, so results do not depend on worker count or scheduling. Workers
// write to disjoint matrix columns; no locking is needed.
func (s *Simulator) eachColumn(fill func(j int, src *RandomSource)) {
	root := NewRandomSource(s.Seed)

	workers := config.GetConfig().SimulationWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > s.Paths {
		workers = s.Paths
	}

	cols := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range cols {
				fill(j, root.Spawn(j))
			}
		}()
	}
	for j := 0; j < s.Paths; j++ {
		cols <- j
	}
	close(cols)
	wg.Wait()
}
