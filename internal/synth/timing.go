package synth

import (
	"errors"
	"fmt"
	"math"
)

// Morse timing ratios, in units of one dit.
const (
	DahUnits            = 3
	IntraCharSpaceUnits = 1
	InterCharSpaceUnits = 3

	// Word gaps follow the trailing inter-character gap of the word's last
	// group: the default leaves words 7 units apart, the standard gap 10.
	DefaultWordGapUnits  = 4
	StandardWordGapUnits = 7

	// DitsPerWord is the length of the word "PARIS" in units.
	DitsPerWord = 50
)

var (
	ErrInvalidWPM   = errors.New("words per minute must be positive")
	ErrUnitTooShort = errors.New("timing unit rounds to zero samples")
)

// UnitSeconds returns the duration of one dit in seconds: 60 / (wpm × 50).
func UnitSeconds(wpm int) float64 {
	return 60 / float64(wpm*DitsPerWord)
}

// UnitLength converts words per minute to the number of samples in one dit.
// This is a pure function: (wpm, sample rate) → samples per unit.
func UnitLength(wpm, sampleRate int) (int, error) {
	if wpm <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWPM, wpm)
	}

	unit := int(math.Round(float64(sampleRate) * UnitSeconds(wpm)))
	if unit <= 0 {
		return 0, fmt.Errorf("%w: %d wpm at %d Hz", ErrUnitTooShort, wpm, sampleRate)
	}
	return unit, nil
}
