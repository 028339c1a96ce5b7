package encode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"

	"github.com/binaryphile/morse-gen/internal/wav"
)

func TestTagSet_Apply(t *testing.T) {
	requireLame(t)

	dir := t.TempDir()
	wavPath := filepath.Join(dir, "sos.wav")
	if err := os.WriteFile(wavPath, wav.WriteWAV(wav.MonoFormat(), make([]int16, 4410)), 0644); err != nil {
		t.Fatal(err)
	}

	mp3Path := filepath.Join(dir, "sos.mp3")
	if err := EncodeWAV(wavPath, mp3Path, DefaultEncodeOptions()); err != nil {
		t.Fatal(err)
	}

	tags := BuildTags(TrackMeta{
		Text:      "sos",
		MorseText: "... --- ...",
		WPM:       10,
		ToneHz:    800,
		Year:      2024,
	})

	if err := tags.Apply(mp3Path); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	tag, err := id3v2.Open(mp3Path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer tag.Close()

	if tag.Artist() != TagArtist {
		t.Errorf("Artist = %q, want %q", tag.Artist(), TagArtist)
	}
	if tag.Album() != "... --- ..." {
		t.Errorf("Album = %q, want %q", tag.Album(), "... --- ...")
	}
	if tag.Title() != "sos" {
		t.Errorf("Title = %q, want %q", tag.Title(), "sos")
	}
	if tag.Year() != "2024" {
		t.Errorf("Year = %q, want %q", tag.Year(), "2024")
	}
	if tag.Genre() != TagGenre {
		t.Errorf("Genre = %q, want %q", tag.Genre(), TagGenre)
	}

	comments := tag.GetFrames(tag.CommonID("Comments"))
	if len(comments) != 1 {
		t.Fatalf("len(comments) = %d, want 1", len(comments))
	}
	comment, ok := comments[0].(id3v2.CommentFrame)
	if !ok {
		t.Fatalf("comment frame is %T", comments[0])
	}
	if comment.Text != "10 wpm, 800 Hz" {
		t.Errorf("Comment = %q, want %q", comment.Text, "10 wpm, 800 Hz")
	}
}

func TestTagSet_Apply_MissingFile(t *testing.T) {
	err := BuildTags(TrackMeta{Text: "e"}).Apply(filepath.Join(t.TempDir(), "missing", "x.mp3"))
	if err == nil {
		t.Error("Apply on a missing file should fail")
	}
}
