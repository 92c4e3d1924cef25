// Package curve converts simulated short-rate ensembles into zero-coupon
// spot curves and holds the observed market curve a calibration targets.
package curve

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/guicruzsp/Interest-Rate-Models/simulate"
)

var (
	// ErrNilEnsemble is returned when an estimator call receives no paths.
	ErrNilEnsemble = errors.New("nil path ensemble")
)

// SpotCurve is the continuously compounded zero curve implied by a path
// ensemble. Rates[0] is pinned to the initial short rate by convention;
// Rates[i] for i > 0 is the Monte Carlo estimate for maturity step i+1,
// i.e. time (i+1)*Dt.
//
// An entry of +Inf marks a degenerate estimate: the averaged discount
// factor underflowed to zero. Callers scoring curves must treat such
// entries as an unbounded objective rather than an error.
type SpotCurve struct {
	Grid  simulate.TimeGrid
	Rates []float64
	// PriceStdErrs holds the Monte Carlo standard error of the zero-coupon
	// price estimate behind each entry (zero for the pinned first entry).
	PriceStdErrs []float64
}

// Rate returns the spot rate for a maturity of step grid steps. Steps are
// 1-based: step 1 is the pinned initial rate and step Grid.Steps is the
// horizon.
func (c SpotCurve) Rate(step int) float64 {
	return c.Rates[step-1]
}

// FromEnsemble estimates the spot curve from a path ensemble.
//
// For each maturity the rate integral along a trajectory is the left-point
// Riemann sum dt * sum(r_k), every row weighted by the full step including
// the first. The per-trajectory discount factor exp(-integral) is averaged
// across columns into the bond price estimate, and the spot rate is
// -ln(price) / (step * dt). The boundary treatment is a fixed convention of
// this estimator; downstream tolerances assume it, so it must not be
// replaced by a trapezoid or right-point rule.
func FromEnsemble(ens *simulate.PathEnsemble) (SpotCurve, error) {
	if ens == nil || ens.Rates == nil {
		return SpotCurve{}, ErrNilEnsemble
	}

	n := ens.Steps()
	m := ens.Paths()
	dt := ens.Grid.Dt()

	rates := make([]float64, n)
	stderrs := make([]float64, n)
	rates[0] = ens.At(0, 0)

	// Running dt-weighted rate sums, one per trajectory, seeded with the
	// first row.
	integrals := make([]float64, m)
	for j := 0; j < m; j++ {
		integrals[j] = dt * ens.At(0, j)
	}

	discounts := make([]float64, m)
	for i := 1; i < n; i++ {
		for j := 0; j < m; j++ {
			integrals[j] += dt * ens.At(i, j)
			discounts[j] = math.Exp(-integrals[j])
		}
		price, std := stat.MeanStdDev(discounts, nil)
		stderrs[i] = stat.StdErr(std, float64(m))
		if price <= 0 || math.IsNaN(price) {
			// Discount factors are exp(negative) terms, so a zero mean only
			// happens when every trajectory underflowed. Report the sentinel
			// instead of failing: during calibration such trial parameters
			// must score as unbounded, not crash the search.
			rates[i] = math.Inf(1)
			continue
		}
		rates[i] = -math.Log(price) / (float64(i+1) * dt)
	}

	return SpotCurve{Grid: ens.Grid, Rates: rates, PriceStdErrs: stderrs}, nil
}
