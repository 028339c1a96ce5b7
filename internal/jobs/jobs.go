// Package jobs parses batch job files: several texts rendered in one run.
// See README.md for the JSON schema.
package jobs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/binaryphile/morse-gen/internal/encode"
	"github.com/binaryphile/morse-gen/internal/morse"
)

// Batch is the top level of a job file. Batch-wide values apply to every
// job that does not set its own.
type Batch struct {
	WPM         int     `json:"wpm"`
	OutputDir   string  `json:"outputDir"`
	StandardGap bool    `json:"standardGap"`
	ToneHz      float64 `json:"toneHz"`
	MP3         bool    `json:"mp3"`
	Jobs        []Job   `json:"jobs"`
}

// Job is one text to render.
type Job struct {
	Text   string `json:"text"`
	Output string `json:"output"`
	WPM    int    `json:"wpm"`
	MP3    bool   `json:"mp3"`
}

// ParseJSON reads and parses a batch job file.
func ParseJSON(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read jobs: %w", err)
	}
	var batch Batch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("parse jobs: %w", err)
	}
	return &batch, nil
}

// Resolve fills in every job's output path, speed and MP3 flag.
// Jobs without an output get a name derived from their text and position.
// This is a pure function: (batch, default wpm) → concrete jobs.
func (b *Batch) Resolve(defaultWPM int) []Job {
	wpm := b.WPM
	if wpm == 0 {
		wpm = defaultWPM
	}

	return lo.Map(b.Jobs, func(j Job, i int) Job {
		if j.WPM == 0 {
			j.WPM = wpm
		}
		if j.Output == "" {
			j.Output = encode.GenerateFilename(j.Text, i+1, ".wav")
		}
		if b.OutputDir != "" && !filepath.IsAbs(j.Output) {
			j.Output = filepath.Join(b.OutputDir, j.Output)
		}
		j.MP3 = j.MP3 || b.MP3
		return j
	})
}

// Validate checks the batch and returns every problem found.
// All issues are reported together - caller decides whether to proceed.
func (b *Batch) Validate(defaultWPM int) []error {
	var errs []error

	if len(b.Jobs) == 0 {
		errs = append(errs, errors.New("missing required field: jobs"))
	}
	if b.WPM < 0 {
		errs = append(errs, fmt.Errorf("wpm must be positive, got %d", b.WPM))
	}
	if b.ToneHz < 0 {
		errs = append(errs, fmt.Errorf("toneHz must be positive, got %g", b.ToneHz))
	}

	resolved := b.Resolve(defaultWPM)
	for i, j := range resolved {
		if strings.TrimSpace(j.Text) == "" {
			errs = append(errs, fmt.Errorf("job %d missing text", i+1))
		} else if _, err := morse.Encode(j.Text); err != nil {
			errs = append(errs, fmt.Errorf("job %d: %w", i+1, err))
		}
		if j.WPM <= 0 {
			errs = append(errs, fmt.Errorf("job %d: wpm must be positive, got %d", i+1, j.WPM))
		}
		if !strings.HasSuffix(j.Output, ".wav") {
			errs = append(errs, fmt.Errorf("job %d: output %q must end with .wav", i+1, j.Output))
		}
	}

	outputs := lo.Map(resolved, func(j Job, _ int) string { return filepath.Clean(j.Output) })
	for _, dup := range lo.FindDuplicates(outputs) {
		errs = append(errs, fmt.Errorf("output %q used by more than one job", dup))
	}

	return errs
}
