package main

import (
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/binaryphile/morse-gen/internal/morse"
	"github.com/binaryphile/morse-gen/internal/synth"
)

type TableParams struct {
	Sort string `short:"s" help:"Sort order: char or length." default:"char" alts:"char,length"`
}

func tableCmd() *cobra.Command {
	return boa.CmdT[TableParams]{
		Use:         "table",
		Short:       "Show the supported characters and their codes",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *TableParams, cmd *cobra.Command, args []string) {
			renderTable(os.Stdout, params.Sort == "length")
		},
	}.ToCobra()
}

// renderTable lists every character with its code and keyed length in
// units, counting the intra-character gaps.
func renderTable(w io.Writer, byLength bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Char", "Code", "Units"})

	for _, r := range morse.Supported() {
		code, _ := morse.Lookup(r)
		t.AppendRow(table.Row{displayChar(r), code, codeUnits(code)})
	}

	if byLength {
		t.SortBy([]table.SortBy{
			{Name: "Units", Mode: table.AscNumeric},
			{Name: "Char", Mode: table.Asc},
		})
	}
	t.Render()
}

func displayChar(r rune) string {
	if r == ' ' {
		return "space"
	}
	return string(r)
}

// codeUnits is the keyed length of one group, without the trailing
// inter-character gap. The word separator has none.
func codeUnits(code string) int {
	if code == morse.WordSeparator {
		return 0
	}
	dits := strings.Count(code, ".")
	dahs := strings.Count(code, "-")
	return dits + dahs*synth.DahUnits + (len(code)-1)*synth.IntraCharSpaceUnits
}
