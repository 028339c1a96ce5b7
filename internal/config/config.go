package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds command defaults, loaded from environment variables.
// Command-line flags override these.
type Config struct {
	WPM          int     // words per minute
	ToneHz       float64 // tone pitch
	WordGapUnits int     // 4 (default) or 7 (standard)
	LameQuality  int     // VBR quality for MP3 export
	OutputDir    string  // base directory for batch outputs without one
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		WPM:          envInt("MORSE_WPM", 10),
		ToneHz:       envFloat("MORSE_TONE_HZ", 800),
		WordGapUnits: envInt("MORSE_WORD_GAP", 4),
		LameQuality:  envInt("MORSE_LAME_QUALITY", 2),
		OutputDir:    envStr("MORSE_OUTPUT_DIR", "."),
	}
}

// Validate returns every out-of-range value.
func (c Config) Validate() []error {
	var errs []error
	if c.WPM <= 0 {
		errs = append(errs, fmt.Errorf("MORSE_WPM must be positive, got %d", c.WPM))
	}
	if c.ToneHz <= 0 {
		errs = append(errs, fmt.Errorf("MORSE_TONE_HZ must be positive, got %g", c.ToneHz))
	}
	if c.WordGapUnits <= 0 {
		errs = append(errs, fmt.Errorf("MORSE_WORD_GAP must be positive, got %d", c.WordGapUnits))
	}
	if c.LameQuality < 0 || c.LameQuality > 9 {
		errs = append(errs, fmt.Errorf("MORSE_LAME_QUALITY must be 0-9, got %d", c.LameQuality))
	}
	return errs
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
