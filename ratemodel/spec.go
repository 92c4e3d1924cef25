package ratemodel

import "fmt"

// Variant names accepted by Spec. They match the "variant" field of the JSON
// run configuration.
const (
	VariantMerton          = "merton"
	VariantVasicek         = "vasicek"
	VariantDothan          = "dothan"
	VariantBrennanSchwartz = "brennan-schwartz"
	VariantCIR             = "cir"
	VariantHullWhite       = "hull-white"
	VariantTwoFactor       = "two-factor"
)

// Spec is the JSON-facing model description used by the CLI tools and run
// configuration. Exactly one variant is selected; the fields it does not use
// are ignored. Build and BuildTwoFactor validate arity and parameter bounds
// before any simulation work begins.
type Spec struct {
	Variant string `json:"variant"`

	// Scalar parameters for the one-factor variants.
	Alpha float64 `json:"alpha,omitempty"`
	Beta  float64 `json:"beta,omitempty"`
	Sigma float64 `json:"sigma,omitempty"`

	// AlphaSchedule is the per-step mean level for hull-white. Its length
	// must equal the grid step count passed to Build.
	AlphaSchedule []float64 `json:"alpha_schedule,omitempty"`

	// Latent factor parameters for two-factor.
	AlphaX float64 `json:"alpha_x,omitempty"`
	BetaX  float64 `json:"beta_x,omitempty"`
	SigmaX float64 `json:"sigma_x,omitempty"`
	X0     float64 `json:"x0,omitempty"`
	AlphaY float64 `json:"alpha_y,omitempty"`
	BetaY  float64 `json:"beta_y,omitempty"`
	SigmaY float64 `json:"sigma_y,omitempty"`
	Y0     float64 `json:"y0,omitempty"`

	// Rho is the two-factor shock correlation. Nil selects the default
	// of DefaultTwoFactorCorrelation.
	Rho *float64 `json:"rho,omitempty"`
}

// IsTwoFactor reports whether the spec selects the two-factor variant, which
// is built through BuildTwoFactor rather than Build.
func (s Spec) IsTwoFactor() bool { return s.Variant == VariantTwoFactor }

// Build constructs the one-factor model the spec describes. steps is the
// grid row count, needed to validate the hull-white schedule length.
func (s Spec) Build(steps int) (Model, error) {
	if s.Beta < 0 {
		return nil, fmt.Errorf("Build: beta must be non-negative, got %g", s.Beta)
	}
	if s.Sigma < 0 {
		return nil, fmt.Errorf("Build: sigma must be non-negative, got %g", s.Sigma)
	}

	switch s.Variant {
	case VariantMerton:
		return Merton{Alpha: s.Alpha, Sigma: s.Sigma}, nil
	case VariantVasicek:
		return Vasicek{Alpha: s.Alpha, Beta: s.Beta, Sigma: s.Sigma}, nil
	case VariantDothan:
		return Dothan{Sigma: s.Sigma}, nil
	case VariantBrennanSchwartz:
		return BrennanSchwartz{Alpha: s.Alpha, Beta: s.Beta, Sigma: s.Sigma}, nil
	case VariantCIR:
		return CIR{Alpha: s.Alpha, Beta: s.Beta, Sigma: s.Sigma}, nil
	case VariantHullWhite:
		if len(s.AlphaSchedule) == 0 {
			return nil, fmt.Errorf("Build: hull-white requires alpha_schedule, got a scalar alpha")
		}
		if len(s.AlphaSchedule) != steps {
			return nil, fmt.Errorf("Build: alpha_schedule length %d does not match grid steps %d", len(s.AlphaSchedule), steps)
		}
		alpha := append([]float64(nil), s.AlphaSchedule...)
		return HullWhite{Alpha: alpha, Beta: s.Beta, Sigma: s.Sigma}, nil
	case VariantTwoFactor:
		return nil, fmt.Errorf("Build: variant %q is two-factor, use BuildTwoFactor", s.Variant)
	default:
		return nil, fmt.Errorf("Build: unknown variant %q", s.Variant)
	}
}

// BuildTwoFactor constructs the two-factor Gaussian model the spec describes.
func (s Spec) BuildTwoFactor() (TwoFactor, error) {
	if s.Variant != VariantTwoFactor {
		return nil, fmt.Errorf("BuildTwoFactor: variant %q is not two-factor", s.Variant)
	}
	if s.BetaX < 0 || s.BetaY < 0 {
		return nil, fmt.Errorf("BuildTwoFactor: factor betas must be non-negative, got %g and %g", s.BetaX, s.BetaY)
	}
	if s.SigmaX < 0 || s.SigmaY < 0 {
		return nil, fmt.Errorf("BuildTwoFactor: factor sigmas must be non-negative, got %g and %g", s.SigmaX, s.SigmaY)
	}
	rho := DefaultTwoFactorCorrelation
	if s.Rho != nil {
		rho = *s.Rho
	}
	if rho <= -1 || rho >= 1 {
		return nil, fmt.Errorf("BuildTwoFactor: rho must be in (-1, 1), got %g", rho)
	}
	return TwoFactorGaussian{
		AlphaX: s.AlphaX, BetaX: s.BetaX, SigmaX: s.SigmaX, X0: s.X0,
		AlphaY: s.AlphaY, BetaY: s.BetaY, SigmaY: s.SigmaY, Y0: s.Y0,
		Rho: rho,
	}, nil
}
