// Package encode exports generated Morse WAV files to MP3 and names output
// files.
package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrLameMissing is returned when the lame binary is not on PATH.
var ErrLameMissing = errors.New("lame not found")

const lameBinary = "lame"

// EncodeOptions configures the lame encoder
type EncodeOptions struct {
	Quality int  // -V level, 0 (best) to 9
	Mono    bool // -m m
	Verbose bool // pass lame's own output through
}

// DefaultEncodeOptions returns VBR quality 2, mono.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Quality: 2, Mono: true}
}

// lameArgs builds the lame command line.
// This is a pure function: (paths, options) → argv.
func lameArgs(inputPath, outputPath string, opts EncodeOptions) []string {
	args := []string{fmt.Sprintf("-V%d", opts.Quality)}
	if opts.Mono {
		args = append(args, "-m", "m")
	}
	if !opts.Verbose {
		args = append(args, "--quiet")
	}
	return append(args, inputPath, outputPath)
}

// EncodeWAV runs lame over inputPath, writing outputPath. A failed or empty
// encode leaves no output file behind.
// This is boundary code - runs an external process.
func EncodeWAV(inputPath, outputPath string, opts EncodeOptions) error {
	if opts.Quality < 0 || opts.Quality > 9 {
		return fmt.Errorf("lame quality %d out of range 0-9", opts.Quality)
	}
	if !LameAvailable() {
		return ErrLameMissing
	}
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("mp3 source: %w", err)
	}

	var stderr bytes.Buffer
	cmd := exec.Command(lameBinary, lameArgs(inputPath, outputPath, opts)...)
	cmd.Stderr = &stderr
	if opts.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = io.MultiWriter(os.Stderr, &stderr)
	}

	if err := cmd.Run(); err != nil {
		_ = os.Remove(outputPath)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("lame: %w: %s", err, msg)
		}
		return fmt.Errorf("lame: %w", err)
	}

	info, err := os.Stat(outputPath)
	switch {
	case err != nil:
		return fmt.Errorf("lame produced no output: %w", err)
	case info.Size() == 0:
		_ = os.Remove(outputPath)
		return fmt.Errorf("lame produced an empty %s", outputPath)
	}
	return nil
}

// LameAvailable reports whether lame is on PATH.
func LameAvailable() bool {
	_, err := exec.LookPath(lameBinary)
	return err == nil
}

// MP3Path returns wavPath with its extension replaced by .mp3.
func MP3Path(wavPath string) string {
	return strings.TrimSuffix(wavPath, filepath.Ext(wavPath)) + ".mp3"
}
