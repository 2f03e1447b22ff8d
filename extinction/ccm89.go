package extinction

import (
	"errors"
	"fmt"
	"math"
)

// Validity range of the law in inverse micrometers.
const (
	XMin = 0.3
	XMax = 8.0
)

// Validity range of the law in Ångströms.
const (
	MinWavelength = 1e4 / XMax // 1250 Å
	MaxWavelength = 1e4 / XMin // 33333.3 Å
)

// DefaultRV is the diffuse-ISM average of the total-to-selective
// extinction ratio R_V = A(V)/E(B−V).
const DefaultRV = 3.089

var (
	ErrInvalidWavelength = errors.New("extinction: wavelength must be positive")
	ErrInvalidRV         = errors.New("extinction: R_V must be positive")
	ErrOutOfRange        = errors.New("extinction: wavelength outside CCM89 validity range")
)

// OpticalFit selects the polynomial pair used in the optical/near-IR
// regime (1.1 ≤ x < 3.3). The infrared and ultraviolet regimes are the
// same for every fit.
type OpticalFit int

const (
	// OpticalCCM89 is the original Cardelli, Clayton & Mathis (1989) fit.
	OpticalCCM89 OpticalFit = iota
	// OpticalODonnell94 is the updated optical fit of O'Donnell (1994).
	OpticalODonnell94
)

// InverseMicrons converts a wavelength in Ångströms to inverse
// micrometers x = 10⁴/λ.
func InverseMicrons(wavelength float64) (float64, error) {
	if math.IsNaN(wavelength) || wavelength <= 0 {
		return 0, fmt.Errorf("%w: got %g Å", ErrInvalidWavelength, wavelength)
	}

	return 1e4 / wavelength, nil
}

// Coefficients evaluates the coefficient pair (a, b) at inverse
// wavelength x in µm⁻¹, such that A(λ)/A(V) = a + b/R_V.
//
// Returns ErrOutOfRange for x outside [XMin, XMax]; the law is not
// extrapolated.
func Coefficients(x float64, fit OpticalFit) (a, b float64, err error) {
	if math.IsNaN(x) || x < XMin || x > XMax {
		return 0, 0, fmt.Errorf("extinction: x = %g µm⁻¹: %w", x, ErrOutOfRange)
	}

	// Each boundary belongs to the higher-x regime.
	switch {
	case x < 1.1:
		a, b = infraredAB(x)
	case x < 3.3:
		a, b = opticalAB(x, fit)
	default:
		a, b = ultravioletAB(x)
	}

	return a, b, nil
}

// Ratio returns the normalized extinction A(λ)/A(V) at a wavelength in
// Ångströms for the given R_V.
func Ratio(wavelength, rv float64, fit OpticalFit) (float64, error) {
	if math.IsNaN(rv) || rv <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidRV, rv)
	}

	x, err := InverseMicrons(wavelength)
	if err != nil {
		return 0, err
	}

	a, b, err := Coefficients(x, fit)
	if err != nil {
		return 0, err
	}

	return a + b/rv, nil
}

// infraredAB covers 0.3 ≤ x < 1.1: a single power law.
func infraredAB(x float64) (a, b float64) {
	p := math.Pow(x, 1.61)
	return 0.574 * p, -0.527 * p
}

// opticalAB covers 1.1 ≤ x < 3.3 with polynomials in y = x − 1.82.
func opticalAB(x float64, fit OpticalFit) (a, b float64) {
	y := x - 1.82

	if fit == OpticalODonnell94 {
		a = polyval(y, 1, 0.104, -0.609, 0.701, 1.137, -1.718, -0.827, 1.647, -0.505)
		b = polyval(y, 0, 1.952, 2.908, -3.989, -7.985, 11.102, 5.491, -10.805, 3.347)

		return a, b
	}

	a = polyval(y, 1, 0.17699, -0.50447, -0.02427, 0.72085, 0.01979, -0.77530, 0.32999)
	b = polyval(y, 0, 1.41338, 2.28305, 1.07233, -5.38434, -0.62251, 5.30260, -2.09002)

	return a, b
}

// ultravioletAB covers 3.3 ≤ x ≤ 8.0. The curvature correction terms
// switch on at x = 5.9; the published law is discontinuous there.
func ultravioletAB(x float64) (a, b float64) {
	var fa, fb float64

	if x >= 5.9 {
		d := x - 5.9
		fa = -0.04473*d*d - 0.009779*d*d*d
		fb = 0.2130*d*d + 0.1207*d*d*d
	}

	a = 1.752 - 0.316*x - 0.104/((x-4.67)*(x-4.67)+0.341) + fa
	b = -3.090 + 1.825*x + 1.206/((x-4.62)*(x-4.62)+0.263) + fb

	return a, b
}

// polyval evaluates a polynomial with ascending-order coefficients at y
// using Horner's scheme.
func polyval(y float64, coeffs ...float64) float64 {
	acc := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*y + coeffs[i]
	}

	return acc
}
