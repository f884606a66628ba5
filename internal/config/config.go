// Package config holds the engine-wide configuration toggles of
// spec §6. All are boolean, evaluated once at Segmenter construction,
// and default to enabled ("unspecified means on").
package config

// Config is the set of runtime toggles accepted by a Segmenter.
type Config struct {
	// EnableFrequencyCosts uses per-word costs from the frequency
	// source on a dictionary hit; when false, every dictionary hit
	// costs the dictionary's DefaultCost instead.
	EnableFrequencyCosts bool
	// EnableRepairMode enables transition rule 1 of §4.2 (orphaned
	// subscript / isolated vowel recovery).
	EnableRepairMode bool
	// EnableAcronymDetection enables transition rule 4 of §4.2.
	EnableAcronymDetection bool
	// EnableUnknownMerging enables the merge post-pass of §4.2.
	EnableUnknownMerging bool
	// EnableNormalization enables the §4.1 pipeline; when false, raw
	// input is passed directly to the engine.
	EnableNormalization bool
}

// Default returns the all-enabled configuration.
func Default() Config {
	return Config{
		EnableFrequencyCosts:   true,
		EnableRepairMode:       true,
		EnableAcronymDetection: true,
		EnableUnknownMerging:   true,
		EnableNormalization:    true,
	}
}
