package ratemodel

import "math"

// Closed-form Vasicek term structure. These are reference formulas used to
// validate the Monte Carlo estimator and to report comparison curves; the
// simulation and calibration loops never call them.

// VasicekBondPrice returns the closed-form zero-coupon bond price P(0, tau)
// under Vasicek dynamics with mean level alpha, reversion speed beta and
// volatility sigma, starting from short rate r0. beta must be positive.
func VasicekBondPrice(alpha, beta, sigma, r0, tau float64) float64 {
	b := (1 - math.Exp(-beta*tau)) / beta
	a := math.Exp((b-tau)*(beta*beta*alpha-sigma*sigma/2)/(beta*beta) - sigma*sigma*b*b/(4*beta))
	return a * math.Exp(-b*r0)
}

// VasicekZeroRate returns the closed-form continuously compounded spot rate
// for maturity tau implied by VasicekBondPrice. For tau <= 0 it returns r0,
// matching the spot-curve convention of pinning the first entry.
func VasicekZeroRate(alpha, beta, sigma, r0, tau float64) float64 {
	if tau <= 0 {
		return r0
	}
	return -math.Log(VasicekBondPrice(alpha, beta, sigma, r0, tau)) / tau
}
