// Package extinction evaluates the Cardelli, Clayton & Mathis (1989)
// interstellar extinction law.
//
// The law models the normalized extinction A(λ)/A(V) as a function of
// inverse wavelength x = 1/λ in µm⁻¹, split into three regimes:
//
//   - Infrared     (0.3 ≤ x < 1.1): power law
//   - Optical/NIR  (1.1 ≤ x < 3.3): seventh-order polynomial in x − 1.82
//   - Ultraviolet  (3.3 ≤ x ≤ 8.0): rational terms plus a far-UV
//     curvature correction from x = 5.9 upward
//
// Each regime produces a coefficient pair (a, b) combined as
// A(λ)/A(V) = a + b/R_V, where R_V is the total-to-selective extinction
// ratio of the sightline.
//
// # Usage
//
// Normalized extinction at the V band for a diffuse-ISM sightline:
//
//	k, err := extinction.Ratio(5500, extinction.DefaultRV, extinction.OpticalCCM89)
//
// Wavelengths outside [1250 Å, 33333 Å] are outside the law's validity
// range and return [ErrOutOfRange]; the law is never extrapolated.
package extinction
