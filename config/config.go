package config

// Config holds simulation and calibration engine parameters.
// These were previously hardcoded magic numbers throughout the codebase.
type Config struct {
	// PenaltyObjective is the finite score assigned to a calibration trial
	// whose objective could not be evaluated (invalid parameters, degenerate
	// discount factors). It must be large relative to any plausible
	// sum-of-squared-errors so the search moves away from such regions.
	PenaltyObjective float64

	// MaxCalibrationIterations is the major-iteration budget for one
	// optimizer pass.
	MaxCalibrationIterations int

	// ConvergenceTolerance is the absolute objective-improvement threshold
	// below which the optimizer is considered converged.
	ConvergenceTolerance float64

	// ConvergenceWindow is the number of consecutive iterations the
	// improvement must stay below ConvergenceTolerance.
	ConvergenceWindow int

	// SimulationWorkers caps the goroutines used to generate ensemble
	// columns. Zero means one worker per available CPU.
	SimulationWorkers int
}

// DefaultConfig provides production-ready default values.
var DefaultConfig = Config{
	PenaltyObjective:         1e10,
	MaxCalibrationIterations: 2000,
	ConvergenceTolerance:     1e-10,
	ConvergenceWindow:        50,
	SimulationWorkers:        0,
}

// cfg is the active configuration. Defaults to DefaultConfig.
var cfg = DefaultConfig

// SetConfig replaces the active configuration.
func SetConfig(c Config) {
	cfg = c
}

// GetConfig returns the active configuration.
func GetConfig() Config {
	return cfg
}
