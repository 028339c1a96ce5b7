package jobs

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/binaryphile/morse-gen/internal/morse"
)

func TestParseJSON_Basic(t *testing.T) {
	batch, err := ParseJSON("testdata/basic.json")
	if err != nil {
		t.Fatalf("ParseJSON error: %v", err)
	}
	if batch.WPM != 15 {
		t.Errorf("WPM = %d, want 15", batch.WPM)
	}
	if batch.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want %q", batch.OutputDir, "out")
	}
	if len(batch.Jobs) != 3 {
		t.Fatalf("len(Jobs) = %d, want 3", len(batch.Jobs))
	}
	if batch.Jobs[1].Text != "cq cq de k1abc" {
		t.Errorf("Jobs[1].Text = %q, want %q", batch.Jobs[1].Text, "cq cq de k1abc")
	}
	if !batch.Jobs[2].MP3 {
		t.Error("Jobs[2].MP3 should be true")
	}
}

func TestParseJSON_Missing(t *testing.T) {
	if _, err := ParseJSON("testdata/nope.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON("testdata/malformed.json")
	if err == nil || !strings.Contains(err.Error(), "parse jobs") {
		t.Errorf("ParseJSON error = %v, want parse error", err)
	}
}

func TestResolve(t *testing.T) {
	batch, err := ParseJSON("testdata/basic.json")
	if err != nil {
		t.Fatal(err)
	}

	got := batch.Resolve(10)
	want := []Job{
		{Text: "sos", Output: filepath.Join("out", "sos.wav"), WPM: 15},
		{Text: "cq cq de k1abc", Output: filepath.Join("out", "02-cq_cq_de_k1abc.wav"), WPM: 20},
		{Text: "73", Output: filepath.Join("out", "03-73.wav"), WPM: 15, MP3: true},
	}

	if len(got) != len(want) {
		t.Fatalf("len(Resolve) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Resolve[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	// Resolve must not modify the batch
	if batch.Jobs[1].Output != "" {
		t.Errorf("Resolve modified Jobs[1].Output = %q", batch.Jobs[1].Output)
	}
}

func TestResolve_Defaults(t *testing.T) {
	batch := &Batch{
		MP3:  true,
		Jobs: []Job{{Text: "e"}, {Text: "t", Output: "/abs/t.wav"}},
	}

	got := batch.Resolve(10)
	if got[0].WPM != 10 {
		t.Errorf("WPM = %d, want default 10", got[0].WPM)
	}
	if got[0].Output != "01-e.wav" {
		t.Errorf("Output = %q, want %q", got[0].Output, "01-e.wav")
	}
	if got[1].Output != "/abs/t.wav" {
		t.Errorf("Output = %q, want %q", got[1].Output, "/abs/t.wav")
	}
	if !got[0].MP3 || !got[1].MP3 {
		t.Error("batch mp3 should apply to every job")
	}
}

func TestValidate_Basic(t *testing.T) {
	batch, err := ParseJSON("testdata/basic.json")
	if err != nil {
		t.Fatal(err)
	}
	if errs := batch.Validate(10); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestValidate_Empty(t *testing.T) {
	batch, err := ParseJSON("testdata/empty.json")
	if err != nil {
		t.Fatal(err)
	}
	errs := batch.Validate(10)
	if len(errs) == 0 {
		t.Fatal("expected validation error for empty jobs")
	}
	if !strings.Contains(errs[0].Error(), "jobs") {
		t.Errorf("error = %q, want mention of jobs", errs[0])
	}
}

func TestValidate_Invalid(t *testing.T) {
	batch, err := ParseJSON("testdata/invalid.json")
	if err != nil {
		t.Fatal(err)
	}

	errs := batch.Validate(10)

	wantSubstrings := []string{
		"wpm must be positive, got -3",
		"job 1 missing text",
		"job 3: output \"sos.mp3\" must end with .wav",
		"output \"same.wav\" used by more than one job",
	}
	for _, want := range wantSubstrings {
		found := false
		for _, e := range errs {
			if strings.Contains(e.Error(), want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing validation error %q in %v", want, errs)
		}
	}

	foundChar := false
	for _, e := range errs {
		var charErr *morse.UnsupportedCharacterError
		if errors.As(e, &charErr) && charErr.Char == '%' {
			foundChar = true
		}
	}
	if !foundChar {
		t.Errorf("expected unsupported character error for '%%' in %v", errs)
	}
}
