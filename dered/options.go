package dered

import "github.com/cwbudde/algo-spectra/extinction"

// Config holds deredden parameters.
type Config struct {
	// RV is the total-to-selective extinction ratio. Ignored by
	// DeredValues, which takes R_V as a scalar argument.
	RV float64
	// Optical selects the optical/near-IR polynomial variant.
	Optical extinction.OpticalFit
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the diffuse-ISM defaults.
func DefaultConfig() Config {
	return Config{
		RV:      extinction.DefaultRV,
		Optical: extinction.OpticalCCM89,
	}
}

// WithRV sets the total-to-selective extinction ratio R_V.
// Non-positive values are ignored.
func WithRV(rv float64) Option {
	return func(cfg *Config) {
		if rv > 0 {
			cfg.RV = rv
		}
	}
}

// WithOpticalFit selects the optical/near-IR polynomial variant.
func WithOpticalFit(fit extinction.OpticalFit) Option {
	return func(cfg *Config) {
		cfg.Optical = fit
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
