package ratemodel

import "math"

// Model is the one-factor short-rate step contract. Step advances the rate
// over one grid interval of length dt using the standard normal draw z.
// step is the index of the grid row being produced; only time-varying
// variants consume it.
//
// Step is pure: it reads nothing but its arguments and the model parameters,
// so a single model value can drive every trajectory of an ensemble.
type Model interface {
	Step(prior, dt, z float64, step int) float64
}

// TwoFactor is the contract for models driven by two correlated latent
// factors. The observable short rate is the sum of the factors.
type TwoFactor interface {
	// Initial returns the latent factor values at the first grid point.
	Initial() (x0, y0 float64)
	// Correlation returns the shock correlation for the per-step draw pair.
	Correlation() float64
	// StepFactors advances both latent factors over one grid interval.
	StepFactors(x, y, dt, z1, z2 float64, step int) (float64, float64)
}

// Merton is arithmetic Brownian motion with constant drift: no mean
// reversion, rates may take any sign.
type Merton struct {
	Alpha float64 // constant drift per year
	Sigma float64 // absolute volatility
}

func (m Merton) Step(prior, dt, z float64, _ int) float64 {
	return prior + m.Alpha*dt + m.Sigma*z*math.Sqrt(dt)
}

// Vasicek is the Ornstein-Uhlenbeck short rate: mean reversion toward Alpha
// at speed Beta with constant absolute volatility.
type Vasicek struct {
	Alpha float64 // long-run mean level
	Beta  float64 // mean-reversion speed
	Sigma float64 // absolute volatility
}

func (m Vasicek) Step(prior, dt, z float64, _ int) float64 {
	return prior + m.Beta*(m.Alpha-prior)*dt + m.Sigma*z*math.Sqrt(dt)
}

// Dothan is driftless with proportional volatility. The multiplicative form
// preserves the sign of the state; there is no explicit floor.
type Dothan struct {
	Sigma float64 // proportional volatility
}

func (m Dothan) Step(prior, dt, z float64, _ int) float64 {
	return prior + m.Sigma*prior*z*math.Sqrt(dt)
}

// BrennanSchwartz combines Vasicek mean reversion with proportional
// volatility.
type BrennanSchwartz struct {
	Alpha float64 // long-run mean level
	Beta  float64 // mean-reversion speed
	Sigma float64 // proportional volatility
}

func (m BrennanSchwartz) Step(prior, dt, z float64, _ int) float64 {
	return prior + m.Beta*(m.Alpha-prior)*dt + m.Sigma*prior*z*math.Sqrt(dt)
}

// CIR is the square-root diffusion with an absorbing floor at zero.
type CIR struct {
	Alpha float64 // long-run mean level
	Beta  float64 // mean-reversion speed
	Sigma float64 // square-root volatility
}

func (m CIR) Step(prior, dt, z float64, _ int) float64 {
	// Absorbing floor, not a reflection: a negative prior pins this step to
	// exactly zero and skips the stochastic update entirely. The following
	// step resumes the normal update from zero, where the square-root
	// diffusion vanishes and the drift pulls the state back up.
	if prior < 0 {
		return 0
	}
	return prior + m.Beta*(m.Alpha-prior)*dt + m.Sigma*math.Sqrt(prior)*z*math.Sqrt(dt)
}

// HullWhite is the Vasicek update with a per-step mean level, one schedule
// entry per grid row. Entry 0 aligns with the initial grid point and is not
// consumed by an update.
type HullWhite struct {
	Alpha []float64 // per-step long-run mean levels
	Beta  float64   // mean-reversion speed
	Sigma float64   // absolute volatility
}

func (m HullWhite) Step(prior, dt, z float64, step int) float64 {
	return prior + m.Beta*(m.Alpha[step]-prior)*dt + m.Sigma*z*math.Sqrt(dt)
}

// DefaultTwoFactorCorrelation is the shock correlation used when a two-factor
// model is built without an explicit value.
const DefaultTwoFactorCorrelation = -0.1

// TwoFactorGaussian drives two Vasicek-style latent factors with correlated
// shocks; the observable short rate is x + y.
type TwoFactorGaussian struct {
	AlphaX, BetaX, SigmaX float64
	AlphaY, BetaY, SigmaY float64
	X0, Y0                float64
	Rho                   float64
}

func (m TwoFactorGaussian) Initial() (float64, float64) { return m.X0, m.Y0 }

func (m TwoFactorGaussian) Correlation() float64 { return m.Rho }

func (m TwoFactorGaussian) StepFactors(x, y, dt, z1, z2 float64, _ int) (float64, float64) {
	sqrtDt := math.Sqrt(dt)
	nx := x + m.BetaX*(m.AlphaX-x)*dt + m.SigmaX*z1*sqrtDt
	ny := y + m.BetaY*(m.AlphaY-y)*dt + m.SigmaY*z2*sqrtDt
	return nx, ny
}
