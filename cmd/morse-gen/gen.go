package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/binaryphile/morse-gen/internal/config"
	"github.com/binaryphile/morse-gen/internal/encode"
	"github.com/binaryphile/morse-gen/internal/generator"
	"github.com/binaryphile/morse-gen/internal/playback"
)

type GenParams struct {
	Filename    string            `pos:"true" required:"true" help:"Output WAV file (must end with .wav)."`
	Text        string            `pos:"true" required:"true" help:"Text to encode."`
	WPM         string            `pos:"true" optional:"true" help:"Speed in words per minute (default $MORSE_WPM or 10)."`
	MP3         bool              `optional:"true" help:"Also export an MP3 next to the WAV (requires lame)."`
	Quality     boa.Optional[int] `short:"q" help:"LAME VBR quality 0-9 (default $MORSE_LAME_QUALITY or 2)."`
	Tone        int               `optional:"true" help:"Tone pitch in Hz (default $MORSE_TONE_HZ or 800)."`
	StandardGap bool              `optional:"true" help:"Use the standard 7-unit word gap instead of 4."`
	Play        bool              `short:"p" optional:"true" help:"Play the result on the default audio device."`
	DryRun      bool              `optional:"true" help:"Show what would be written without creating files."`
	Verbose     bool              `short:"v" optional:"true" help:"Log progress to stderr."`
}

// genRequest is a resolved gen invocation.
type genRequest struct {
	Filename    string
	Text        string
	WPM         string
	MP3         bool
	Quality     int
	Tone        int
	StandardGap bool
	Play        bool
	DryRun      bool
	Verbose     bool
}

func genCmd() *cobra.Command {
	return boa.CmdT[GenParams]{
		Use:         "gen",
		Short:       "Write text as a Morse WAV file",
		Long:        "Encode text as Morse code and render it to a mono 16-bit 44.1kHz WAV file.\n\nExample: morse-gen gen sos.wav \"sos\" 20",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *GenParams, cmd *cobra.Command, args []string) {
			cfg, ok := loadConfig(os.Stderr)
			if !ok {
				os.Exit(1)
			}
			req := genRequest{
				Filename:    params.Filename,
				Text:        params.Text,
				WPM:         params.WPM,
				MP3:         params.MP3,
				Quality:     cfg.LameQuality,
				Tone:        params.Tone,
				StandardGap: params.StandardGap,
				Play:        params.Play,
				DryRun:      params.DryRun,
				Verbose:     params.Verbose,
			}
			if params.Quality.HasValue() {
				req.Quality = *params.Quality.Value()
			}
			os.Exit(runGen(req, cfg, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func runGen(req genRequest, cfg config.Config, stdout, stderr io.Writer) int {
	logger := newLogger(req.Verbose)
	defer logger.Sync()

	if !strings.HasSuffix(req.Filename, ".wav") {
		fmt.Fprintf(stderr, "Error: output %q must end with .wav\n", req.Filename)
		return 1
	}

	wpm, err := parseWPM(req.WPM, cfg.WPM)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	opts := generator.Options{Synth: synthOptions(cfg, req.Tone, req.StandardGap)}

	banner(stdout, "Text to Morse Audio")
	fmt.Fprintf(stdout, "Text:   %s\n", req.Text)

	if req.DryRun {
		res, err := generator.Plan(req.Text, wpm, opts)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		printResult(stdout, req.Filename, res)
		fmt.Fprintln(stdout, "\n[DRY RUN] No files written")
		return 0
	}

	res, err := generator.Generate(req.Text, req.Filename, wpm, opts, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	printResult(stdout, res.Path, res)

	if req.MP3 {
		mp3Path, err := exportMP3(req.Text, res, opts.Synth.Frequency, req.Quality, req.Verbose, logger)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "MP3:    %s\n", mp3Path)
	}

	if req.Play {
		if err := playback.Play(res.Path); err != nil {
			fmt.Fprintf(stderr, "Warning: playback failed: %v\n", err)
		}
	}

	return 0
}

// parseWPM returns fallback for an empty argument.
func parseWPM(arg string, fallback int) (int, error) {
	if arg == "" {
		return fallback, nil
	}
	wpm, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("wpm %q is not a number", arg)
	}
	return wpm, nil
}

func printResult(w io.Writer, path string, res generator.Result) {
	fmt.Fprintf(w, "Morse:  %s\n", res.MorseText)
	fmt.Fprintf(w, "Speed:  %d wpm (%d samples per unit)\n", res.WPM, res.Unit)
	fmt.Fprintf(w, "Length: %s (%d samples)\n", res.Duration.Round(time.Millisecond), res.Samples)
	fmt.Fprintf(w, "Output: %s\n", path)
}

// exportMP3 encodes the WAV next to itself and tags the result.
func exportMP3(text string, res generator.Result, toneHz float64, quality int, verbose bool, logger *zap.Logger) (string, error) {
	mp3Path := encode.MP3Path(res.Path)

	encOpts := encode.DefaultEncodeOptions()
	encOpts.Quality = quality
	encOpts.Verbose = verbose
	if err := encode.EncodeWAV(res.Path, mp3Path, encOpts); err != nil {
		return "", err
	}

	tags := encode.BuildTags(encode.TrackMeta{
		Text:      text,
		MorseText: res.MorseText,
		WPM:       res.WPM,
		ToneHz:    toneHz,
		Year:      time.Now().Year(),
	})
	if err := tags.Apply(mp3Path); err != nil {
		return "", fmt.Errorf("tag %s: %w", mp3Path, err)
	}

	logger.Info("wrote mp3", zap.String("path", mp3Path), zap.Int("quality", quality))
	return mp3Path, nil
}
