// Package dered removes interstellar extinction from observed flux
// densities using the CCM89 law.
//
// For each wavelength λ the correction factor is
//
//	c = 10^(0.4 · E(B−V) · R_V · (a(x) + b(x)/R_V))
//
// with (a, b) from [extinction.Coefficients], and the output flux is
// the input flux multiplied elementwise by c.
//
// # Usage
//
// Plain float64 spectra use the vectorized fast path:
//
//	corrected, err := dered.Dered(wave, flux, 0.3, dered.WithRV(3.1))
//
// When the fluxes or the color excess carry measurement uncertainty,
// [DeredValues] runs the same formula over [uncert.Number] scalars and
// propagates the errors:
//
//	flux := []uncert.Value{uncert.New(1.0, 0.05)}
//	corrected, err := dered.DeredValues(wave, flux, uncert.New(0.3, 0.02), uncert.Exact(3.1))
package dered
