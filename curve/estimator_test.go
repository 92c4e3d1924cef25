package curve_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/guicruzsp/Interest-Rate-Models/curve"
	"github.com/guicruzsp/Interest-Rate-Models/ratemodel"
	"github.com/guicruzsp/Interest-Rate-Models/simulate"
)

func TestFromEnsembleNil(t *testing.T) {
	t.Parallel()

	if _, err := curve.FromEnsemble(nil); err != curve.ErrNilEnsemble {
		t.Fatalf("want ErrNilEnsemble, got %v", err)
	}
}

func TestConstantRateCurveIsExact(t *testing.T) {
	t.Parallel()

	// With no drift and no volatility every trajectory is flat at r0, so
	// the estimated spot rate must equal r0 at every maturity exactly (up
	// to floating-point rounding of the exp/log round trip).
	const r0 = 0.02
	sim, err := simulate.NewSimulator(simulate.TimeGrid{Horizon: 5, Steps: 60}, 100, r0, 1)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	ens, err := sim.Run(ratemodel.Vasicek{Alpha: r0, Beta: 0, Sigma: 0})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	spot, err := curve.FromEnsemble(ens)
	if err != nil {
		t.Fatalf("FromEnsemble: %v", err)
	}

	for step := 1; step <= 60; step++ {
		if got := spot.Rate(step); math.Abs(got-r0) > 1e-12 {
			t.Fatalf("step %d: got %.15f want %g", step, got, r0)
		}
	}
	if spot.PriceStdErrs[0] != 0 {
		t.Fatalf("pinned entry must carry zero standard error")
	}
	if spot.PriceStdErrs[30] > 1e-15 {
		t.Fatalf("deterministic paths must give (near) zero standard error, got %g", spot.PriceStdErrs[30])
	}
}

func TestFirstEntryIsPinnedToInitialRate(t *testing.T) {
	t.Parallel()

	sim, err := simulate.NewSimulator(simulate.TimeGrid{Horizon: 1, Steps: 12}, 500, 0.015, 9)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	ens, err := sim.Run(ratemodel.Vasicek{Alpha: 0.03, Beta: 0.1, Sigma: 0.01})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	spot, err := curve.FromEnsemble(ens)
	if err != nil {
		t.Fatalf("FromEnsemble: %v", err)
	}
	if spot.Rate(1) != 0.015 {
		t.Fatalf("first entry: got %g want 0.015", spot.Rate(1))
	}
}

func TestVasicekCurveConvergesToClosedForm(t *testing.T) {
	// Acceptance scenario: alpha=0.03, beta=0.01, sigma=0.002, r0=0.015,
	// horizon 5 years, 60 steps, 100000 paths, fixed seed. The estimate at
	// the horizon must be within 5e-4 of the closed form, and the whole
	// curve within 1e-3.
	const (
		alpha = 0.03
		beta  = 0.01
		sigma = 0.002
		r0    = 0.015
	)
	grid := simulate.TimeGrid{Horizon: 5, Steps: 60}

	sim, err := simulate.NewSimulator(grid, 100000, r0, 123457)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	ens, err := sim.Run(ratemodel.Vasicek{Alpha: alpha, Beta: beta, Sigma: sigma})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	spot, err := curve.FromEnsemble(ens)
	if err != nil {
		t.Fatalf("FromEnsemble: %v", err)
	}

	dt := grid.Dt()
	for step := 2; step <= 60; step++ {
		tau := float64(step) * dt
		analytic := ratemodel.VasicekZeroRate(alpha, beta, sigma, r0, tau)
		if diff := math.Abs(spot.Rate(step) - analytic); diff > 1e-3 {
			t.Fatalf("step %d: |mc-analytic| = %.6f exceeds 1e-3", step, diff)
		}
	}
	horizonDiff := math.Abs(spot.Rate(60) - ratemodel.VasicekZeroRate(alpha, beta, sigma, r0, 5))
	if horizonDiff > 5e-4 {
		t.Fatalf("horizon: |mc-analytic| = %.6f exceeds 5e-4", horizonDiff)
	}
}

func TestUnderflowedPriceReportsInfSentinel(t *testing.T) {
	t.Parallel()

	// A pathologically large integrated rate drives every per-trajectory
	// discount factor to exactly zero; the estimator must report +Inf
	// instead of failing, so calibration can score the trial as unbounded.
	grid := simulate.TimeGrid{Horizon: 3, Steps: 3}
	data := []float64{
		1e6, 1e6,
		1e6, 1e6,
		1e6, 1e6,
	}
	ens := &simulate.PathEnsemble{Grid: grid, Rates: mat.NewDense(3, 2, data)}

	spot, err := curve.FromEnsemble(ens)
	if err != nil {
		t.Fatalf("FromEnsemble: %v", err)
	}
	if spot.Rates[0] != 1e6 {
		t.Fatalf("pinned entry: got %g", spot.Rates[0])
	}
	for i := 1; i < 3; i++ {
		if !math.IsInf(spot.Rates[i], 1) {
			t.Fatalf("entry %d: got %g want +Inf", i, spot.Rates[i])
		}
	}
}
