package simulate

import "fmt"

// TimeGrid is the fixed-step time axis shared by the simulator, the curve
// estimator and the calibrator for a given run. The grid has Steps rows
// spaced Dt() apart, the first at time zero; maturity step t (1-based)
// corresponds to time t*Dt(), so the last maturity step lands on Horizon.
type TimeGrid struct {
	// Horizon is the final maturity in years.
	Horizon float64
	// Steps is the number of grid rows, one short-rate value per row.
	Steps int
}

// Dt returns the grid spacing Horizon / Steps.
func (g TimeGrid) Dt() float64 {
	return g.Horizon / float64(g.Steps)
}

// Validate reports the first violated grid constraint, if any.
func (g TimeGrid) Validate() error {
	if g.Horizon <= 0 {
		return fmt.Errorf("TimeGrid: horizon must be positive, got %g", g.Horizon)
	}
	if g.Steps <= 0 {
		return fmt.Errorf("TimeGrid: steps must be positive, got %d", g.Steps)
	}
	return nil
}

// Times returns the row times 0, Dt, 2*Dt, ... ((Steps-1)*Dt).
func (g TimeGrid) Times() []float64 {
	dt := g.Dt()
	ts := make([]float64, g.Steps)
	for i := range ts {
		ts[i] = float64(i) * dt
	}
	return ts
}
