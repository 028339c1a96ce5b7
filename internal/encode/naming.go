package encode

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxStemLength caps the text-derived part of a generated filename.
const MaxStemLength = 40

// fallbackStem is used when nothing of the text survives.
const fallbackStem = "morse"

// GenerateFilename derives an output name from the text being keyed:
// "NN-stem.ext" when index > 0, "stem.ext" otherwise. The stem keeps ASCII
// letters (lowercased), digits and '-'; quotes vanish, every other run of
// characters becomes a single '_'. Accented letters fold to their base
// letter first. The result never needs shell quoting.
// This is a pure function: (text, index, ext) → filename
func GenerateFilename(text string, index int, ext string) string {
	s := stem(text)
	if len(s) > MaxStemLength {
		s = strings.TrimRight(s[:MaxStemLength], "_-")
	}
	if s == "" {
		s = fallbackStem
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	if index > 0 {
		return fmt.Sprintf("%02d-%s%s", index, s, ext)
	}
	return s + ext
}

func stem(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	gap := false
	for _, r := range strings.ToLower(foldASCII(text)) {
		switch {
		case r == '\'' || r == '"' || r == '`':
			// dropped without leaving a gap
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			if gap && b.Len() > 0 {
				b.WriteByte('_')
			}
			gap = false
			b.WriteRune(r)
		default:
			gap = true
		}
	}
	return b.String()
}

// foldASCII decomposes letters (é → e + ◌́), drops the combining marks and
// then anything still outside ASCII.
func foldASCII(s string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return folded
}
