package dered

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectra/extinction"
	"github.com/cwbudde/algo-spectra/uncert"
	"github.com/cwbudde/algo-vecmath"
)

var (
	ErrShapeMismatch = errors.New("dered: wavelength and flux lengths differ")
	ErrEmptyInput    = errors.New("dered: empty input")
)

// Dered removes interstellar extinction from a flux spectrum.
//
// wave holds wavelengths in Ångströms and flux the aligned flux
// densities; both must have equal, non-zero length. eBV is the measured
// color excess E(B−V) in magnitudes. The default R_V of
// [extinction.DefaultRV] can be overridden with [WithRV].
//
// Any wavelength outside the CCM89 validity range fails the whole call;
// no partial result is returned. The elementwise correction uses the
// SIMD multiply from algo-vecmath.
func Dered(wave, flux []float64, eBV float64, opts ...Option) ([]float64, error) {
	if len(wave) != len(flux) {
		return nil, fmt.Errorf("dered: %d wavelengths vs %d fluxes: %w",
			len(wave), len(flux), ErrShapeMismatch)
	}

	if len(wave) == 0 {
		return nil, ErrEmptyInput
	}

	cfg := ApplyOptions(opts...)

	corr := make([]float64, len(wave))

	for i, w := range wave {
		k, err := extinction.Ratio(w, cfg.RV, cfg.Optical)
		if err != nil {
			return nil, fmt.Errorf("dered: wavelength[%d] = %g Å: %w", i, w, err)
		}

		corr[i] = math.Pow(10, 0.4*k*cfg.RV*eBV)
	}

	out := make([]float64, len(flux))
	vecmath.MulBlock(out, flux, corr)

	return out, nil
}

// DeredValues is the uncertainty-carrying counterpart of [Dered]. It
// evaluates the same correction over any [uncert.Number] scalar type,
// so fluxes, E(B−V), and R_V may each carry a propagated standard
// error. Wavelengths stay exact.
//
// Options select the optical fit only; R_V is the rv argument here so
// that its uncertainty flows through the correction.
func DeredValues[T uncert.Number[T]](wave []float64, flux []T, eBV, rv T, opts ...Option) ([]T, error) {
	if len(wave) != len(flux) {
		return nil, fmt.Errorf("dered: %d wavelengths vs %d fluxes: %w",
			len(wave), len(flux), ErrShapeMismatch)
	}

	if len(wave) == 0 {
		return nil, ErrEmptyInput
	}

	cfg := ApplyOptions(opts...)

	out := make([]T, len(flux))

	for i, w := range wave {
		x, err := extinction.InverseMicrons(w)
		if err != nil {
			return nil, fmt.Errorf("dered: wavelength[%d]: %w", i, err)
		}

		a, b, err := extinction.Coefficients(x, cfg.Optical)
		if err != nil {
			return nil, fmt.Errorf("dered: wavelength[%d] = %g Å: %w", i, w, err)
		}

		// A(λ) = E(B−V)·(a·R_V + b). The factored form feeds R_V into
		// the formula once; first-order uncorrelated propagation would
		// double-count it in E(B−V)·R_V·(a + b/R_V).
		av := eBV.Mul(rv.MulReal(a).AddReal(b))
		out[i] = flux[i].Mul(av.MulReal(0.4).Exp10())
	}

	return out, nil
}
