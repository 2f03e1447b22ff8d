package dered

import (
	"testing"

	"github.com/cwbudde/algo-spectra/uncert"
)

func benchSpectrum(n int) (wave, flux []float64) {
	wave = make([]float64, n)
	flux = make([]float64, n)

	for i := range wave {
		wave[i] = 1300 + 30000*float64(i)/float64(n)
		flux[i] = 1 + 0.001*float64(i)
	}

	return wave, flux
}

func BenchmarkDered4096(b *testing.B) {
	wave, flux := benchSpectrum(4096)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Dered(wave, flux, 0.3, WithRV(3.1)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDeredValues4096(b *testing.B) {
	wave, flux := benchSpectrum(4096)

	vflux := make([]uncert.Value, len(flux))
	for i, f := range flux {
		vflux[i] = uncert.New(f, 0.01*f)
	}

	ebv := uncert.New(0.3, 0.02)
	rv := uncert.Exact(3.1)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := DeredValues(wave, vflux, ebv, rv); err != nil {
			b.Fatal(err)
		}
	}
}
