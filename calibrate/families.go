package calibrate

import (
	"fmt"

	"github.com/guicruzsp/Interest-Rate-Models/ratemodel"
)

// Family bindings for Problem.Build. Scalar families search a fixed, small
// parameter vector; the Hull-White family is the vector-parameter mode,
// searching two scalars plus one mean level per grid step.

// VasicekFamily binds the parameter vector {alpha, beta, sigma}.
func VasicekFamily() func([]float64) (ratemodel.Model, error) {
	return func(x []float64) (ratemodel.Model, error) {
		if len(x) != 3 {
			return nil, fmt.Errorf("VasicekFamily: want 3 parameters, got %d", len(x))
		}
		return ratemodel.Vasicek{Alpha: x[0], Beta: x[1], Sigma: x[2]}, nil
	}
}

// CIRFamily binds the parameter vector {alpha, beta, sigma}.
func CIRFamily() func([]float64) (ratemodel.Model, error) {
	return func(x []float64) (ratemodel.Model, error) {
		if len(x) != 3 {
			return nil, fmt.Errorf("CIRFamily: want 3 parameters, got %d", len(x))
		}
		return ratemodel.CIR{Alpha: x[0], Beta: x[1], Sigma: x[2]}, nil
	}
}

// HullWhiteFamily binds the parameter vector {beta, sigma, alpha[0..n-1]},
// where n must equal the grid step count. The search dimension is 2 + n.
func HullWhiteFamily(n int) func([]float64) (ratemodel.Model, error) {
	return func(x []float64) (ratemodel.Model, error) {
		if len(x) != 2+n {
			return nil, fmt.Errorf("HullWhiteFamily: want %d parameters, got %d", 2+n, len(x))
		}
		alpha := append([]float64(nil), x[2:]...)
		return ratemodel.HullWhite{Alpha: alpha, Beta: x[0], Sigma: x[1]}, nil
	}
}
