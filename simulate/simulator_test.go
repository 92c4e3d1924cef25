package simulate_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/guicruzsp/Interest-Rate-Models/config"
	"github.com/guicruzsp/Interest-Rate-Models/ratemodel"
	"github.com/guicruzsp/Interest-Rate-Models/simulate"
)

func TestNewSimulatorValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		grid  simulate.TimeGrid
		paths int
	}{
		{"zero paths", simulate.TimeGrid{Horizon: 5, Steps: 60}, 0},
		{"negative paths", simulate.TimeGrid{Horizon: 5, Steps: 60}, -1},
		{"zero steps", simulate.TimeGrid{Horizon: 5, Steps: 0}, 10},
		{"negative horizon", simulate.TimeGrid{Horizon: -5, Steps: 60}, 10},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := simulate.NewSimulator(tc.grid, tc.paths, 0.015, 1); err == nil {
				t.Fatalf("expected configuration error")
			}
		})
	}
}

func TestRunDimensionsAndInitialRow(t *testing.T) {
	t.Parallel()

	sim, err := simulate.NewSimulator(simulate.TimeGrid{Horizon: 1, Steps: 12}, 50, 0.015, 11)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	ens, err := sim.Run(ratemodel.Vasicek{Alpha: 0.03, Beta: 0.1, Sigma: 0.002})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if ens.Steps() != 12 || ens.Paths() != 50 {
		t.Fatalf("dimensions: got %dx%d want 12x50", ens.Steps(), ens.Paths())
	}
	for j := 0; j < ens.Paths(); j++ {
		if ens.At(0, j) != 0.015 {
			t.Fatalf("column %d first row: got %g want 0.015", j, ens.At(0, j))
		}
	}
}

func TestRunIsBitForBitDeterministic(t *testing.T) {
	sim, err := simulate.NewSimulator(simulate.TimeGrid{Horizon: 2, Steps: 24}, 64, 0.02, 123457)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	m := ratemodel.CIR{Alpha: 0.03, Beta: 0.5, Sigma: 0.01}

	a, err := sim.Run(m)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := sim.Run(m)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !mat.Equal(a.Rates, b.Rates) {
		t.Fatalf("two runs with the same seed differ")
	}

	// The result must not depend on the worker count either.
	cfg := config.GetConfig()
	defer config.SetConfig(cfg)

	cfg.SimulationWorkers = 1
	config.SetConfig(cfg)
	serial, err := sim.Run(m)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	cfg.SimulationWorkers = 8
	config.SetConfig(cfg)
	parallel, err := sim.Run(m)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !mat.Equal(serial.Rates, parallel.Rates) {
		t.Fatalf("worker count changed the ensemble")
	}
}

func TestFlooredAndProportionalModelsStayNonNegative(t *testing.T) {
	t.Parallel()

	models := map[string]ratemodel.Model{
		"cir":              ratemodel.CIR{Alpha: 0.03, Beta: 0.5, Sigma: 0.01},
		"dothan":           ratemodel.Dothan{Sigma: 0.2},
		"brennan-schwartz": ratemodel.BrennanSchwartz{Alpha: 0.03, Beta: 0.2, Sigma: 0.1},
	}
	for name, m := range models {
		name, m := name, m
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			sim, err := simulate.NewSimulator(simulate.TimeGrid{Horizon: 5, Steps: 60}, 200, 0.02, 123457)
			if err != nil {
				t.Fatalf("NewSimulator: %v", err)
			}
			ens, err := sim.Run(m)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			for i := 0; i < ens.Steps(); i++ {
				for j := 0; j < ens.Paths(); j++ {
					if ens.At(i, j) < 0 {
						t.Fatalf("negative rate %g at row %d column %d", ens.At(i, j), i, j)
					}
				}
			}
		})
	}
}

func TestRunTwoFactorInitialRowIsFactorSum(t *testing.T) {
	t.Parallel()

	m := ratemodel.TwoFactorGaussian{
		AlphaX: 0.02, BetaX: 0.3, SigmaX: 0.01, X0: 0.01,
		AlphaY: 0.01, BetaY: 0.6, SigmaY: 0.005, Y0: 0.004,
		Rho: ratemodel.DefaultTwoFactorCorrelation,
	}
	sim, err := simulate.NewSimulator(simulate.TimeGrid{Horizon: 1, Steps: 12}, 30, 0, 5)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	ens, err := sim.RunTwoFactor(m)
	if err != nil {
		t.Fatalf("RunTwoFactor: %v", err)
	}
	for j := 0; j < ens.Paths(); j++ {
		if ens.At(0, j) != 0.014 {
			t.Fatalf("column %d first row: got %g want 0.014", j, ens.At(0, j))
		}
	}

	again, err := sim.RunTwoFactor(m)
	if err != nil {
		t.Fatalf("RunTwoFactor: %v", err)
	}
	if !mat.Equal(ens.Rates, again.Rates) {
		t.Fatalf("two-factor runs with the same seed differ")
	}
}

func TestRunNilModel(t *testing.T) {
	t.Parallel()

	sim, err := simulate.NewSimulator(simulate.TimeGrid{Horizon: 1, Steps: 12}, 10, 0.01, 1)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	if _, err := sim.Run(nil); err != simulate.ErrNilModel {
		t.Fatalf("want ErrNilModel, got %v", err)
	}
	if _, err := sim.RunTwoFactor(nil); err != simulate.ErrNilModel {
		t.Fatalf("want ErrNilModel, got %v", err)
	}
}
