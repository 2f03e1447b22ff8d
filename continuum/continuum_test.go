package continuum

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSmooth_ConstantSpectrum(t *testing.T) {
	flux := make([]float64, 256)
	for i := range flux {
		flux[i] = 3.5
	}

	out, err := Smooth(flux, 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != len(flux) {
		t.Fatalf("length: got %d, want %d", len(out), len(flux))
	}

	for i, v := range out {
		if !almostEqual(v, 3.5, tolerance) {
			t.Errorf("out[%d]: got %g, want 3.5", i, v)
		}
	}
}

func TestSmooth_RemovesHighFrequencyRipple(t *testing.T) {
	const n = 256

	base := make([]float64, n)
	flux := make([]float64, n)

	for i := range flux {
		// Slow continuum shape at bin 2, narrow ripple at bin 60.
		base[i] = 10 + math.Sin(2*math.Pi*2*float64(i)/n)
		flux[i] = base[i] + 0.5*math.Sin(2*math.Pi*60*float64(i)/n)
	}

	out, err := Smooth(flux, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A 10% cutoff keeps bin 2 and kills bin 60, recovering the base.
	for i := range out {
		if !almostEqual(out[i], base[i], 1e-6) {
			t.Errorf("out[%d]: got %g, want %g", i, out[i], base[i])
		}
	}
}

func TestSmooth_NonPowerOfTwoLength(t *testing.T) {
	flux := make([]float64, 100)
	for i := range flux {
		flux[i] = 2.0
	}

	out, err := Smooth(flux, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 100 {
		t.Fatalf("length: got %d, want 100", len(out))
	}

	// Padding with the edge value keeps a constant spectrum constant.
	for i, v := range out {
		if !almostEqual(v, 2.0, tolerance) {
			t.Errorf("out[%d]: got %g, want 2.0", i, v)
		}
	}
}

func TestSmooth_Errors(t *testing.T) {
	if _, err := Smooth(nil, 0.1); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty: got %v, want ErrEmptyInput", err)
	}

	flux := []float64{1, 2, 3}
	for _, cutoff := range []float64{0, -0.1, 1.5, math.NaN()} {
		if _, err := Smooth(flux, cutoff); !errors.Is(err, ErrInvalidCutoff) {
			t.Errorf("cutoff %g: got %v, want ErrInvalidCutoff", cutoff, err)
		}
	}
}

func TestNormalize(t *testing.T) {
	flux := []float64{2, 6, 12}
	cont := []float64{2, 3, 4}

	out, err := Normalize(flux, cont)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{1, 2, 3}
	for i := range out {
		if !almostEqual(out[i], want[i], 1e-12) {
			t.Errorf("out[%d]: got %g, want %g", i, out[i], want[i])
		}
	}
}

func TestNormalize_Errors(t *testing.T) {
	if _, err := Normalize([]float64{1, 2}, []float64{1}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("got %v, want ErrShapeMismatch", err)
	}

	if _, err := Normalize(nil, nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("got %v, want ErrEmptyInput", err)
	}

	if _, err := Normalize([]float64{1, 2}, []float64{1, 0}); !errors.Is(err, ErrZeroContinuum) {
		t.Errorf("got %v, want ErrZeroContinuum", err)
	}
}
