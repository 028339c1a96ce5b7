package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"

	"github.com/binaryphile/morse-gen/internal/morse"
)

type TextParams struct {
	Text []string `pos:"true" optional:"true" help:"Text to encode. If none provided, reads lines from stdin."`
}

type DecodeParams struct {
	Morse []string `pos:"true" optional:"true" help:"Morse text to decode ('/' between words). If none provided, reads lines from stdin."`
}

func textCmd() *cobra.Command {
	return boa.CmdT[TextParams]{
		Use:         "text",
		Short:       "Print the Morse encoding of text",
		Long:        "Print the Morse encoding of each argument line, or of each stdin line when no argument is given.",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *TextParams, cmd *cobra.Command, args []string) {
			os.Exit(runLines(params.Text, os.Stdin, os.Stdout, os.Stderr, morse.Encode))
		},
	}.ToCobra()
}

func decodeCmd() *cobra.Command {
	return boa.CmdT[DecodeParams]{
		Use:         "decode",
		Short:       "Print the text for Morse symbols",
		Long:        "Decode Morse text back to lowercase text. Groups are separated by spaces, words by '/'.",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *DecodeParams, cmd *cobra.Command, args []string) {
			os.Exit(runLines(params.Morse, os.Stdin, os.Stdout, os.Stderr, morse.Decode))
		},
	}.ToCobra()
}

// runLines applies convert to the joined arguments, or to each line of
// stdin when there are none. A failing line is reported and skipped.
func runLines(args []string, stdin io.Reader, stdout, stderr io.Writer, convert func(string) (string, error)) int {
	if len(args) > 0 {
		return convertLine(strings.Join(args, " "), stdout, stderr, convert)
	}

	exitCode := 0
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if convertLine(scanner.Text(), stdout, stderr, convert) != 0 {
			exitCode = 1
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "Error: read stdin: %v\n", err)
		return 1
	}
	return exitCode
}

func convertLine(line string, stdout, stderr io.Writer, convert func(string) (string, error)) int {
	out, err := convert(line)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, out)
	return 0
}
