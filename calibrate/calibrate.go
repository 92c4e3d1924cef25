// Package calibrate fits short-rate model parameters to an observed yield
// curve by derivative-free minimization of the squared curve error.
package calibrate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/guicruzsp/Interest-Rate-Models/config"
	"github.com/guicruzsp/Interest-Rate-Models/curve"
	"github.com/guicruzsp/Interest-Rate-Models/ratemodel"
	"github.com/guicruzsp/Interest-Rate-Models/simulate"
)

// Settings tunes one calibration run. The zero value defers every field to
// the package config defaults.
type Settings struct {
	// MaxIterations is the major-iteration budget per optimizer pass.
	MaxIterations int
	// Tolerance is the absolute objective-improvement threshold for
	// convergence.
	Tolerance float64
	// Restarts is the number of additional optimizer passes, each started
	// from the best parameter vector found so far. The best objective can
	// only stay or improve across passes.
	Restarts int
}

func (s Settings) withDefaults() Settings {
	cfg := config.GetConfig()
	if s.MaxIterations <= 0 {
		s.MaxIterations = cfg.MaxCalibrationIterations
	}
	if s.Tolerance <= 0 {
		s.Tolerance = cfg.ConvergenceTolerance
	}
	if s.Restarts < 0 {
		s.Restarts = 0
	}
	return s
}

// Problem describes one calibration: the observed curve, the simulation
// configuration every trial re-runs, and the family binding that turns a
// parameter vector into a model.
type Problem struct {
	Observed    curve.ObservedCurve
	Grid        simulate.TimeGrid
	Paths       int
	InitialRate float64
	// Seed is the random seed replayed identically on every trial, so two
	// parameter vectors are always compared on the same draw sequence.
	Seed uint64
	// Build binds a trial parameter vector to a model. A Build error scores
	// the trial with the penalty objective instead of aborting the search.
	Build func(params []float64) (ratemodel.Model, error)
	// Settings tunes the optimizer; the zero value uses config defaults.
	Settings Settings
}

// Result is the outcome of a calibration run. A false Converged means the
// search exhausted its budget; Params still holds the best vector found,
// and the caller can retry from it or from a fresh guess.
type Result struct {
	// Params is the best parameter vector found.
	Params []float64
	// Objective is the sum of squared curve errors at Params.
	Objective float64
	// InitialObjective is the objective at the caller's initial guess.
	InitialObjective float64
	// History holds the best objective after each optimizer pass. It is
	// non-increasing by construction.
	History []float64
	// Evaluations is the total number of objective evaluations.
	Evaluations int
	// Converged reports whether the final pass met the convergence
	// tolerance within its iteration budget.
	Converged bool
}

// Calibrate minimizes the sum of squared deviations between the observed
// yields and the Monte Carlo spot curve simulated at each trial parameter
// vector, starting from initial. The search is local (Nelder-Mead); it
// returns the best vector found, with no global-optimality guarantee.
func Calibrate(p Problem, initial []float64) (Result, error) {
	if p.Build == nil {
		return Result{}, fmt.Errorf("Calibrate: Build binding is required")
	}
	if len(initial) == 0 {
		return Result{}, fmt.Errorf("Calibrate: initial guess is required")
	}
	if err := p.Observed.Validate(p.Grid); err != nil {
		return Result{}, err
	}
	// Surface simulation configuration errors now rather than as a wall of
	// penalty scores.
	if _, err := simulate.NewSimulator(p.Grid, p.Paths, p.InitialRate, p.Seed); err != nil {
		return Result{}, err
	}
	if _, err := p.Build(initial); err != nil {
		return Result{}, fmt.Errorf("Calibrate: initial guess rejected: %w", err)
	}

	settings := p.Settings.withDefaults()
	res := Result{
		Params:           append([]float64(nil), initial...),
		InitialObjective: p.objective(initial),
	}
	res.Objective = res.InitialObjective

	problem := optimize.Problem{Func: p.objective}
	for pass := 0; pass <= settings.Restarts; pass++ {
		opt, err := optimize.Minimize(problem, res.Params, &optimize.Settings{
			MajorIterations: settings.MaxIterations,
			Converger: &optimize.FunctionConverge{
				Absolute:   settings.Tolerance,
				Iterations: config.GetConfig().ConvergenceWindow,
			},
		}, &optimize.NelderMead{})
		if opt == nil {
			return res, fmt.Errorf("Calibrate: optimizer pass %d failed: %w", pass, err)
		}
		res.Evaluations += opt.FuncEvaluations
		if opt.F <= res.Objective {
			res.Objective = opt.F
			res.Params = append(res.Params[:0], opt.X...)
		}
		res.History = append(res.History, res.Objective)
		res.Converged = err == nil &&
			opt.Status != optimize.IterationLimit &&
			opt.Status != optimize.FunctionEvaluationLimit
	}
	return res, nil
}

// objective scores one trial parameter vector. Trials that cannot produce a
// finite score, such as a rejected parameter vector or a non-finite spot
// entry, yield the configured penalty so the optimizer keeps probing instead
// of crashing.
func (p Problem) objective(params []float64) float64 {
	penalty := config.GetConfig().PenaltyObjective

	m, err := p.Build(params)
	if err != nil {
		return penalty
	}
	sim, err := simulate.NewSimulator(p.Grid, p.Paths, p.InitialRate, p.Seed)
	if err != nil {
		return penalty
	}
	ens, err := sim.Run(m)
	if err != nil {
		return penalty
	}
	spot, err := curve.FromEnsemble(ens)
	if err != nil {
		return penalty
	}

	sse := 0.0
	for _, pt := range p.Observed {
		s := spot.Rate(pt.Step)
		if math.IsInf(s, 0) || math.IsNaN(s) {
			return penalty
		}
		d := pt.Yield - s
		sse += d * d
	}
	if math.IsInf(sse, 0) || math.IsNaN(sse) {
		return penalty
	}
	return sse
}
