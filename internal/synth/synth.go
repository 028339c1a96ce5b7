// Package synth renders Morse text as a tone/silence sample sequence.
package synth

import (
	"fmt"
	"math"
	"strings"
)

// Defaults for the generated signal.
const (
	SampleRate = 44100 // Hz
	Frequency  = 800   // Hz
	Amplitude  = math.MaxInt16
)

// SampleWriter receives samples in generation order.
type SampleWriter interface {
	WriteSample(s int16) error
}

// Options configures the waveform.
type Options struct {
	SampleRate   int     // Hz
	Frequency    float64 // tone pitch in Hz
	Amplitude    float64 // peak sample value
	WordGapUnits int     // silence between words, in units
}

// DefaultOptions returns the 800 Hz, 44.1 kHz, 4-unit word gap setup.
func DefaultOptions() Options {
	return Options{
		SampleRate:   SampleRate,
		Frequency:    Frequency,
		Amplitude:    Amplitude,
		WordGapUnits: DefaultWordGapUnits,
	}
}

// Synthesizer walks Morse text and emits samples.
type Synthesizer struct {
	opts Options
}

// New creates a Synthesizer. Zero-valued options fall back to the defaults.
func New(opts Options) *Synthesizer {
	def := DefaultOptions()
	if opts.SampleRate <= 0 {
		opts.SampleRate = def.SampleRate
	}
	if opts.Frequency <= 0 {
		opts.Frequency = def.Frequency
	}
	if opts.Amplitude <= 0 {
		opts.Amplitude = def.Amplitude
	}
	if opts.WordGapUnits <= 0 {
		opts.WordGapUnits = def.WordGapUnits
	}
	return &Synthesizer{opts: opts}
}

// Options returns the effective options.
func (s *Synthesizer) Options() Options {
	return s.opts
}

// Synthesize writes the waveform for morse to sink.
//
// Every symbol group is followed by an inter-character gap, including the
// last group of a word; words are additionally separated by the word gap.
// Empty Morse text produces no samples. The first sink error aborts.
func (s *Synthesizer) Synthesize(morse string, unit int, sink SampleWriter) error {
	if morse == "" {
		return nil
	}

	words := strings.Split(morse, "/")
	for i, word := range words {
		for _, group := range strings.Split(word, " ") {
			if err := s.writeGroup(group, unit, sink); err != nil {
				return err
			}
			if err := writeSilence(sink, unit*InterCharSpaceUnits); err != nil {
				return err
			}
		}
		if i < len(words)-1 {
			if err := writeSilence(sink, unit*s.opts.WordGapUnits); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Synthesizer) writeGroup(group string, unit int, sink SampleWriter) error {
	for i, symbol := range group {
		var err error
		switch symbol {
		case '.':
			err = s.writeTone(sink, unit)
		case '-':
			err = s.writeTone(sink, unit*DahUnits)
		}
		if err != nil {
			return err
		}

		if i < len(group)-1 {
			if err := writeSilence(sink, unit*IntraCharSpaceUnits); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeTone emits n samples of the sine tone. Phase starts at zero for
// every tone.
func (s *Synthesizer) writeTone(sink SampleWriter, n int) error {
	for i := 0; i < n; i++ {
		if err := sink.WriteSample(s.toneSample(i)); err != nil {
			return fmt.Errorf("write tone: %w", err)
		}
	}
	return nil
}

// toneSample is truncated toward zero, not rounded.
func (s *Synthesizer) toneSample(i int) int16 {
	t := float64(i) / float64(s.opts.SampleRate)
	return int16(math.Sin(2*math.Pi*s.opts.Frequency*t) * s.opts.Amplitude)
}

func writeSilence(sink SampleWriter, n int) error {
	for i := 0; i < n; i++ {
		if err := sink.WriteSample(0); err != nil {
			return fmt.Errorf("write silence: %w", err)
		}
	}
	return nil
}

// SampleCount returns how many samples Synthesize writes for morse.
func (s *Synthesizer) SampleCount(morse string, unit int) int {
	if morse == "" {
		return 0
	}

	words := strings.Split(morse, "/")
	units := 0
	for i, word := range words {
		for _, group := range strings.Split(word, " ") {
			for j, symbol := range group {
				switch symbol {
				case '.':
					units++
				case '-':
					units += DahUnits
				}
				if j < len(group)-1 {
					units += IntraCharSpaceUnits
				}
			}
			units += InterCharSpaceUnits
		}
		if i < len(words)-1 {
			units += s.opts.WordGapUnits
		}
	}
	return units * unit
}
