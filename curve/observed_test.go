package curve_test

import (
	"strings"
	"testing"

	"github.com/guicruzsp/Interest-Rate-Models/curve"
	"github.com/guicruzsp/Interest-Rate-Models/simulate"
)

func TestObservedCurveValidate(t *testing.T) {
	t.Parallel()

	grid := simulate.TimeGrid{Horizon: 5, Steps: 60}

	good := curve.ObservedCurve{{Step: 12, Yield: 0.02}, {Step: 36, Yield: 0.025}, {Step: 60, Yield: 0.03}}
	if err := good.Validate(grid); err != nil {
		t.Fatalf("valid curve rejected: %v", err)
	}

	cases := []struct {
		name    string
		in      curve.ObservedCurve
		wantSub string
	}{
		{"empty", curve.ObservedCurve{}, "no observations"},
		{"step zero", curve.ObservedCurve{{Step: 0, Yield: 0.02}}, "outside"},
		{"step beyond grid", curve.ObservedCurve{{Step: 61, Yield: 0.02}}, "outside"},
		{"not increasing", curve.ObservedCurve{{Step: 24, Yield: 0.02}, {Step: 12, Yield: 0.02}}, "strictly increasing"},
		{"duplicate", curve.ObservedCurve{{Step: 24, Yield: 0.02}, {Step: 24, Yield: 0.021}}, "strictly increasing"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.in.Validate(grid)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}
