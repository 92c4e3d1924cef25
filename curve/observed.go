package curve

import (
	"fmt"

	"github.com/guicruzsp/Interest-Rate-Models/simulate"
)

// ObservedPoint pairs a market-quoted maturity, expressed in grid steps,
// with its observed yield as a decimal rate (0.025 == 2.5%). Steps use the
// same 1-based convention as SpotCurve.Rate.
type ObservedPoint struct {
	Step  int     `json:"steps"`
	Yield float64 `json:"yield"`
}

// ObservedCurve is the sparse market curve a calibration targets: quotes
// exist only at market tenors, not at every grid row. It is read-only input;
// nothing in the engine mutates it.
type ObservedCurve []ObservedPoint

// Validate checks the curve against the grid it will be compared on:
// non-empty, steps strictly increasing and within [1, grid.Steps].
func (o ObservedCurve) Validate(grid simulate.TimeGrid) error {
	if len(o) == 0 {
		return fmt.Errorf("ObservedCurve: no observations")
	}
	prev := 0
	for i, pt := range o {
		if pt.Step < 1 || pt.Step > grid.Steps {
			return fmt.Errorf("ObservedCurve: point %d has step %d outside [1, %d]", i, pt.Step, grid.Steps)
		}
		if pt.Step <= prev {
			return fmt.Errorf("ObservedCurve: steps must be strictly increasing, got %d after %d", pt.Step, prev)
		}
		prev = pt.Step
	}
	return nil
}
