package core

// AnalysisConfig holds the settings used when spectra are turned into
// reports.
type AnalysisConfig struct {
	SampleRate float64
	FloorDB    float64
}

// AnalysisOption mutates an AnalysisConfig.
type AnalysisOption func(*AnalysisConfig)

// DefaultAnalysisConfig returns 48 kHz with a -200 dB floor.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		SampleRate: 48000,
		FloorDB:    -200,
	}
}

// WithSampleRate sets the sample rate used to label bins in Hz. Non-positive
// values are ignored.
func WithSampleRate(sampleRate float64) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFloorDB sets the lowest level reported for a bin.
func WithFloorDB(floor float64) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		cfg.FloorDB = floor
	}
}

// ApplyAnalysisOptions applies opts on top of DefaultAnalysisConfig.
func ApplyAnalysisOptions(opts ...AnalysisOption) AnalysisConfig {
	cfg := DefaultAnalysisConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
