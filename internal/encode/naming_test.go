package encode

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateFilename(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		index int
		ext   string
		want  string
	}{
		{"lowercased", "SOS", 0, ".wav", "sos.wav"},
		{"index 1", "Hello World", 1, ".wav", "01-hello_world.wav"},
		{"index 9", "Hello World", 9, ".wav", "09-hello_world.wav"},
		{"index 12", "Hello World", 12, ".wav", "12-hello_world.wav"},
		{"index 123", "Hello World", 123, ".wav", "123-hello_world.wav"},
		{"extension without dot", "cq", 0, "mp3", "cq.mp3"},
		{"quotes dropped", `What's "up"?`, 0, ".wav", "whats_up.wav"},
		{"hyphen kept", "field-day", 2, ".wav", "02-field-day.wav"},
		{"accents folded", "Café Lōc", 0, ".wav", "cafe_loc.wav"},
		{"shell metacharacters", "Test$Call & Friends (Live)?", 1, ".wav", "01-test_call_friends_live.wav"},
		// every punctuation mark in the table except '-' separates
		{"morse punctuation", "de k1abc/p: qth=boston, 73! (+) @home $5 & _", 0, ".wav", "de_k1abc_p_qth_boston_73_home_5.wav"},
		{"empty", "", 0, ".wav", "morse.wav"},
		{"blank", "   ", 0, ".wav", "morse.wav"},
		{"only punctuation", "?!.", 3, ".wav", "03-morse.wav"},
		{"no ascii", "日本", 0, ".wav", "morse.wav"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateFilename(tt.text, tt.index, tt.ext); got != tt.want {
				t.Errorf("GenerateFilename(%q, %d, %q) = %q, want %q", tt.text, tt.index, tt.ext, got, tt.want)
			}
		})
	}
}

func TestGenerateFilename_Truncates(t *testing.T) {
	got := GenerateFilename(strings.Repeat("paris ", 20), 0, ".wav")
	s := strings.TrimSuffix(got, ".wav")

	if len(s) > MaxStemLength {
		t.Errorf("stem length = %d, want <= %d (%q)", len(s), MaxStemLength, got)
	}
	if strings.HasSuffix(s, "_") {
		t.Errorf("stem ends with underscore: %q", got)
	}
	if !strings.HasPrefix(s, "paris_paris_") {
		t.Errorf("stem = %q, want paris_paris_ prefix", s)
	}
}

// Names are used unquoted in a shell to prove they need no escaping.
func TestGenerateFilename_UnquotedInShell(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	dir := t.TempDir()
	for _, text := range []string{
		"sos",
		"What's the QTH?",
		"cq cq de k1abc/p",
		`"quoted" (parens) $dollar`,
		"a & b; c = d + e",
		"it's 5:00 @ the club!",
	} {
		name := GenerateFilename(text, 1, ".wav")
		if strings.ContainsAny(name, " '\"`$!*?[](){}<>|&;\\") {
			t.Errorf("GenerateFilename(%q) = %q contains a shell metacharacter", text, name)
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0644); err != nil {
			t.Fatal(err)
		}

		cmd := exec.Command("sh", "-c", "cat "+name)
		cmd.Dir = dir
		out, err := cmd.Output()
		if err != nil {
			t.Errorf("cat %s: %v", name, err)
			continue
		}
		if string(out) != text {
			t.Errorf("cat %s = %q, want %q", name, out, text)
		}
	}
}

func TestMP3Path(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"sos.wav", "sos.mp3"},
		{"/tmp/out/cq.WAV", "/tmp/out/cq.mp3"},
		{"dir.v2/file.wav", "dir.v2/file.mp3"},
	}

	for _, tt := range tests {
		if got := MP3Path(tt.input); got != tt.want {
			t.Errorf("MP3Path(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func BenchmarkGenerateFilename(b *testing.B) {
	texts := []string{
		"sos",
		"cq cq de k1abc",
		"What's the QTH?",
		"Café Lōc (Live) [Deluxe]",
	}

	for b.Loop() {
		for _, text := range texts {
			_ = GenerateFilename(text, 1, ".wav")
		}
	}
}
