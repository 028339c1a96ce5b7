package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/binaryphile/morse-gen/internal/config"
	"github.com/binaryphile/morse-gen/internal/generator"
	"github.com/binaryphile/morse-gen/internal/jobs"
)

type BatchParams struct {
	Jobs    string `pos:"true" required:"true" help:"JSON job file (see README.md for the schema)."`
	DryRun  bool   `optional:"true" help:"Validate and show the plan without writing files."`
	Verbose bool   `short:"v" optional:"true" help:"Log progress to stderr."`
}

func batchCmd() *cobra.Command {
	return boa.CmdT[BatchParams]{
		Use:         "batch",
		Short:       "Render every job in a JSON job file",
		Long:        "Render several texts in one run. Jobs are validated up front; a failing job is reported and the rest still run.",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *BatchParams, cmd *cobra.Command, args []string) {
			cfg, ok := loadConfig(os.Stderr)
			if !ok {
				os.Exit(1)
			}
			os.Exit(runBatch(params, cfg, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func runBatch(params *BatchParams, cfg config.Config, stdout, stderr io.Writer) int {
	logger := newLogger(params.Verbose)
	defer logger.Sync()

	batch, err := jobs.ParseJSON(params.Jobs)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if batch.OutputDir == "" {
		batch.OutputDir = cfg.OutputDir
	}

	if errs := batch.Validate(cfg.WPM); len(errs) > 0 {
		fmt.Fprintln(stderr, "Error: invalid job file:")
		for _, e := range errs {
			fmt.Fprintf(stderr, "  - %v\n", e)
		}
		return 1
	}

	if batch.ToneHz > 0 {
		cfg.ToneHz = batch.ToneHz
	}
	opts := generator.Options{Synth: synthOptions(cfg, 0, batch.StandardGap)}

	resolved := batch.Resolve(cfg.WPM)

	banner(stdout, "Batch")
	fmt.Fprintf(stdout, "Jobs:   %d\n", len(resolved))
	fmt.Fprintf(stdout, "Output: %s\n\n", batch.OutputDir)

	failed := 0
	for i, job := range resolved {
		jobLogger := logger.With(zap.Int("job", i+1))

		if params.DryRun {
			res, err := generator.Plan(job.Text, job.WPM, opts)
			if err != nil {
				fmt.Fprintf(stdout, "  %02d. %s -> %s FAILED: %v\n", i+1, job.Text, job.Output, err)
				failed++
				continue
			}
			fmt.Fprintf(stdout, "  %02d. %s -> %s (%s)\n", i+1, job.Text, job.Output, res.Duration)
			continue
		}

		if err := runJob(job, opts, cfg.LameQuality, params.Verbose, jobLogger); err != nil {
			fmt.Fprintf(stdout, "  %02d. %s -> %s FAILED: %v\n", i+1, job.Text, job.Output, err)
			failed++
			continue
		}
		fmt.Fprintf(stdout, "  %02d. %s -> %s OK\n", i+1, job.Text, job.Output)
	}

	if params.DryRun {
		fmt.Fprintln(stdout, "\n[DRY RUN] No files written")
	} else {
		fmt.Fprintf(stdout, "\n%s\n", strings.Repeat("=", 60))
		fmt.Fprintf(stdout, "Done! Rendered %d of %d jobs\n", len(resolved)-failed, len(resolved))
	}

	if failed > 0 {
		fmt.Fprintf(stderr, "Error: %d of %d jobs failed\n", failed, len(resolved))
		return 1
	}
	return 0
}

func runJob(job jobs.Job, opts generator.Options, quality int, verbose bool, logger *zap.Logger) error {
	if dir := filepath.Dir(job.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	res, err := generator.Generate(job.Text, job.Output, job.WPM, opts, logger)
	if err != nil {
		return err
	}

	if job.MP3 {
		if _, err := exportMP3(job.Text, res, opts.Synth.Frequency, quality, verbose, logger); err != nil {
			return err
		}
	}
	return nil
}
