// Package generator turns text into a Morse WAV file.
package generator

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/binaryphile/morse-gen/internal/morse"
	"github.com/binaryphile/morse-gen/internal/synth"
	"github.com/binaryphile/morse-gen/internal/wav"
)

// Options configures a generation run.
type Options struct {
	Synth synth.Options
}

// DefaultOptions returns an 800 Hz tone at 44.1kHz with a 4-unit word gap.
func DefaultOptions() Options {
	return Options{Synth: synth.DefaultOptions()}
}

// Result describes a generated (or planned) file.
type Result struct {
	Path      string
	MorseText string
	WPM       int
	Unit      int // samples per dit
	Samples   int
	Duration  time.Duration
}

// Plan computes what Generate would produce without touching the filesystem.
// This is a pure function: (text, wpm, options) → Result.
func Plan(text string, wpm int, opts Options) (Result, error) {
	morseText, err := morse.Encode(text)
	if err != nil {
		return Result{}, err
	}

	s := synth.New(opts.Synth)
	unit, err := synth.UnitLength(wpm, s.Options().SampleRate)
	if err != nil {
		return Result{}, err
	}

	samples := s.SampleCount(morseText, unit)
	return Result{
		MorseText: morseText,
		WPM:       wpm,
		Unit:      unit,
		Samples:   samples,
		Duration:  samplesToDuration(samples, s.Options().SampleRate),
	}, nil
}

// Generate encodes text, synthesizes it at wpm and writes a mono 16-bit WAV
// file to path. Encoding and timing errors are returned before the file is
// created. The file is finalized on every exit path; after a write error its
// contents are undefined. Errors are returned, not logged.
//
// This is boundary code - performs file I/O.
func Generate(text, path string, wpm int, opts Options, logger *zap.Logger) (res Result, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	res, err = Plan(text, wpm, opts)
	if err != nil {
		return Result{}, err
	}
	res.Path = path

	s := synth.New(opts.Synth)
	format := wav.MonoFormat()
	format.SampleRate = s.Options().SampleRate

	logger.Debug("generating morse audio",
		zap.String("path", path),
		zap.Int("chars", len([]rune(text))),
		zap.Int("wpm", wpm),
		zap.Int("unit", res.Unit),
		zap.Int("word_gap_units", s.Options().WordGapUnits),
		zap.Float64("tone_hz", s.Options().Frequency),
	)

	w, err := wav.Create(path, format)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			res, err = Result{}, cerr
		}
		if err != nil {
			return
		}
		logger.Info("wrote morse audio",
			zap.String("path", path),
			zap.Int("samples", res.Samples),
			zap.Duration("duration", res.Duration),
		)
	}()

	if err := s.Synthesize(res.MorseText, res.Unit, w); err != nil {
		return Result{}, fmt.Errorf("synthesize: %w", err)
	}

	res.Samples = w.Samples()
	return res, nil
}

func samplesToDuration(samples, sampleRate int) time.Duration {
	return time.Duration(samples) * time.Second / time.Duration(sampleRate)
}
