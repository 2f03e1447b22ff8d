// Package continuum estimates the smooth continuum of a spectrum and
// normalizes fluxes against it.
//
// [Smooth] low-passes the spectrum in the Fourier domain: only the
// lowest fraction of bins survives, which keeps the broad continuum
// shape and suppresses narrow lines and noise. [Normalize] divides a
// spectrum by such an estimate, yielding the line spectrum around 1.
//
// # Usage
//
//	cont, err := continuum.Smooth(flux, 0.05)
//	if err != nil { ... }
//	norm, err := continuum.Normalize(flux, cont)
package continuum
