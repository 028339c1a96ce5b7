package main

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/binaryphile/morse-gen/internal/config"
	"github.com/binaryphile/morse-gen/internal/synth"
)

const appName = "morse-gen"

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     appName,
		Short:   "Convert text to Morse code audio",
		Long:    "Render text as Morse code in a mono 16-bit 44.1kHz WAV file, optionally exported to MP3.",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			genCmd(),
			textCmd(),
			decodeCmd(),
			tableCmd(),
			batchCmd(),
		},
	}.Run()
}

func defaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

func appVersion() string {
	bi, hasBuildInfo := debug.ReadBuildInfo()
	if !hasBuildInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}

// newLogger returns a development logger when verbose, otherwise a
// production logger that only reports warnings and above.
func newLogger(verbose bool) *zap.Logger {
	if verbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			return logger
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// loadConfig reads environment defaults and reports invalid values.
func loadConfig(stderr io.Writer) (config.Config, bool) {
	cfg := config.Load()
	errs := cfg.Validate()
	for _, err := range errs {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return cfg, len(errs) == 0
}

// synthOptions builds the waveform setup from config and overrides.
// Zero overrides keep the config value.
func synthOptions(cfg config.Config, toneHz int, standardGap bool) synth.Options {
	opts := synth.DefaultOptions()
	opts.Frequency = cfg.ToneHz
	if toneHz > 0 {
		opts.Frequency = float64(toneHz)
	}
	opts.WordGapUnits = cfg.WordGapUnits
	if standardGap {
		opts.WordGapUnits = synth.StandardWordGapUnits
	}
	return opts
}

func banner(w io.Writer, title string) {
	fmt.Fprintf(w, "%s - %s\n", appName, title)
	fmt.Fprintln(w, strings.Repeat("=", 60))
}
