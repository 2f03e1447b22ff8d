package continuum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	ErrEmptyInput    = errors.New("continuum: spectrum is empty")
	ErrInvalidCutoff = errors.New("continuum: cutoff must be in (0, 1]")
	ErrShapeMismatch = errors.New("continuum: flux and continuum lengths differ")
	ErrZeroContinuum = errors.New("continuum: continuum estimate crosses zero")
)

// Smooth returns a low-pass continuum estimate of flux. cutoff is the
// fraction of non-negative-frequency Fourier bins retained, in (0, 1];
// smaller values give a smoother estimate.
func Smooth(flux []float64, cutoff float64) ([]float64, error) {
	if len(flux) == 0 {
		return nil, ErrEmptyInput
	}

	if math.IsNaN(cutoff) || cutoff <= 0 || cutoff > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidCutoff, cutoff)
	}

	n := len(flux)
	fftSize := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("continuum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range flux {
		in[i] = complex(v, 0)
	}

	// Pad the tail with the edge value to limit wrap-around ringing.
	for i := n; i < fftSize; i++ {
		in[i] = complex(flux[n-1], 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, in); err != nil {
		return nil, fmt.Errorf("continuum: forward FFT failed: %w", err)
	}

	// Zero everything above the cutoff bin, keeping conjugate symmetry
	// so the inverse transform stays real.
	keep := int(cutoff * float64(fftSize/2))
	if keep < 1 {
		keep = 1
	}

	for i := keep + 1; i <= fftSize-keep-1; i++ {
		freq[i] = 0
	}

	res := make([]complex128, fftSize)
	if err := plan.Inverse(res, freq); err != nil {
		return nil, fmt.Errorf("continuum: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(res[i])
	}

	return out, nil
}

// Normalize divides a spectrum elementwise by its continuum estimate.
func Normalize(flux, cont []float64) ([]float64, error) {
	if len(flux) != len(cont) {
		return nil, fmt.Errorf("continuum: %d fluxes vs %d continuum points: %w",
			len(flux), len(cont), ErrShapeMismatch)
	}

	if len(flux) == 0 {
		return nil, ErrEmptyInput
	}

	inv := make([]float64, len(cont))

	for i, c := range cont {
		if c == 0 {
			return nil, fmt.Errorf("continuum: index %d: %w", i, ErrZeroContinuum)
		}

		inv[i] = 1 / c
	}

	out := make([]float64, len(flux))
	vecmath.MulBlock(out, flux, inv)

	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
