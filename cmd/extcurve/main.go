// Command extcurve prints CCM89 interstellar extinction curve values.
//
// Usage:
//
//	extcurve [flags]
//
// Without arguments it prints the normalized curve A(λ)/A(V) across the
// law's full validity range for the diffuse-ISM R_V.
//
// Examples:
//
//	extcurve -rv 3.1
//	extcurve -from 3000 -to 7000 -steps 40
//	extcurve -rv 3.1 -ebv 0.3
//	extcurve -odonnell
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectra/extinction"
)

func main() {
	var (
		rv       = flag.Float64("rv", extinction.DefaultRV, "total-to-selective extinction ratio R_V")
		ebv      = flag.Float64("ebv", 0, "color excess E(B-V) in magnitudes; adds extinction columns when set")
		from     = flag.Float64("from", extinction.MinWavelength, "start wavelength in Ångströms")
		to       = flag.Float64("to", extinction.MaxWavelength, "end wavelength in Ångströms")
		steps    = flag.Int("steps", 16, "number of table rows")
		odonnell = flag.Bool("odonnell", false, "use the O'Donnell (1994) optical coefficients")
	)

	flag.Parse()

	if *steps < 2 || *from <= 0 || *to <= *from {
		fmt.Fprintln(os.Stderr, "extcurve: invalid wavelength range or step count")
		os.Exit(2)
	}

	if *rv <= 0 {
		fmt.Fprintln(os.Stderr, "extcurve: R_V must be positive")
		os.Exit(2)
	}

	fit := extinction.OpticalCCM89
	if *odonnell {
		fit = extinction.OpticalODonnell94
	}

	ratioRV, excess := *rv, *ebv
	lo, hi, rows := *from, *to, *steps

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)

	if excess > 0 {
		fmt.Fprintln(w, "λ [Å]\tx [1/µm]\ta\tb\tA(λ)/A(V)\tA(λ) [mag]\tfactor\t")
	} else {
		fmt.Fprintln(w, "λ [Å]\tx [1/µm]\ta\tb\tA(λ)/A(V)\t")
	}

	// Log-spaced rows cover the IR and UV ends of the range evenly.
	for i := 0; i < rows; i++ {
		frac := float64(i) / float64(rows-1)
		lambda := lo * math.Pow(hi/lo, frac)

		x, err := extinction.InverseMicrons(lambda)
		if err != nil {
			continue
		}

		a, b, err := extinction.Coefficients(x, fit)
		if err != nil {
			// Rounding at the range edges can land just outside the
			// law's domain; skip those rows.
			continue
		}

		ratio := a + b/ratioRV

		if excess > 0 {
			av := ratio * ratioRV * excess
			factor := math.Pow(10, 0.4*av)
			fmt.Fprintf(w, "%.0f\t%.3f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t\n",
				lambda, x, a, b, ratio, av, factor)
		} else {
			fmt.Fprintf(w, "%.0f\t%.3f\t%.4f\t%.4f\t%.4f\t\n",
				lambda, x, a, b, ratio)
		}
	}

	w.Flush()
}
