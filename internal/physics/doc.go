// Package physics computes Newtonian and Schwarzschild-derived quantities
// for a point mass, in SI units throughout.
//
// Every function is pure and stateless. Inputs are validated at the
// boundary: non-positive or non-finite masses, radii and heights are
// rejected with the sentinel errors in this package rather than coerced
// or allowed to propagate as Inf/NaN.
//
// The usual entry point is [Evaluate], which bundles the individual
// formulas into a single [Result]:
//
//	res, err := physics.Evaluate(massKg, radiusM, heightM)
//	if p, ok := res.OrbitalPeriod(); ok {
//	    // r lies outside the event horizon
//	}
//
// Tidal acceleration is deliberately a forward finite difference
// |g(r) - g(r+h)|, not the analytic gradient 2GMh/r^3; the classification
// breakpoints in this package are calibrated against the difference
// quotient.
package physics
