package encode

import (
	"fmt"
	"strconv"

	"github.com/bogem/id3v2/v2"
)

const (
	TagArtist = "morse-gen"
	TagGenre  = "Morse"
)

// TrackMeta describes one generated Morse recording
type TrackMeta struct {
	Text      string // plain text keyed
	MorseText string
	WPM       int
	ToneHz    float64 // 0 = leave out of the comment
	Year      int     // 0 = omit
}

// TagSet is the ID3 content written to an exported MP3. The title carries
// the plain text and the album the Morse rendering of it.
type TagSet struct {
	Artist  string
	Album   string
	Title   string
	Genre   string
	Year    int
	Comment string
}

// BuildTags maps recording metadata to ID3 fields.
// This is a pure function: TrackMeta → TagSet
func BuildTags(meta TrackMeta) TagSet {
	ts := TagSet{
		Artist:  TagArtist,
		Album:   meta.MorseText,
		Title:   meta.Text,
		Genre:   TagGenre,
		Year:    meta.Year,
		Comment: fmt.Sprintf("%d wpm", meta.WPM),
	}
	if meta.ToneHz > 0 {
		ts.Comment += fmt.Sprintf(", %g Hz", meta.ToneHz)
	}
	return ts
}

// Apply writes the set as an ID3v2.4 tag, replacing any existing tag.
// This is boundary code - performs file I/O.
func (t TagSet) Apply(path string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: false})
	if err != nil {
		return fmt.Errorf("open mp3: %w", err)
	}
	defer tag.Close()

	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	tag.SetTitle(t.Title)
	tag.SetAlbum(t.Album)
	tag.SetArtist(t.Artist)
	tag.SetGenre(t.Genre)
	if t.Year > 0 {
		tag.SetYear(strconv.Itoa(t.Year))
	}
	if t.Comment != "" {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    id3v2.EncodingUTF8,
			Language:    "eng",
			Description: TagArtist,
			Text:        t.Comment,
		})
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}
	return nil
}
