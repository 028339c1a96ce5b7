package morse

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnsupportedCharacter is matched by every *UnsupportedCharacterError.
var ErrUnsupportedCharacter = errors.New("unsupported character")

// ErrUnknownSymbol is returned by Decode for a group not in the table.
var ErrUnknownSymbol = errors.New("unknown morse symbol")

// UnsupportedCharacterError names the character that has no table entry.
type UnsupportedCharacterError struct {
	Char rune
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("no morse code for %q", e.Char)
}

func (e *UnsupportedCharacterError) Is(target error) bool {
	return target == ErrUnsupportedCharacter
}

// toLower applies Unicode lowercasing. A Caser keeps state, so each call
// gets its own.
func toLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Lookup returns the symbol group for a single character, ignoring case.
func Lookup(r rune) (string, bool) {
	for _, lr := range toLower(string(r)) {
		code, ok := codes[lr]
		return code, ok
	}
	return "", false
}

// Encode converts text to Morse text.
// This is a pure function: text → Morse text.
//
// Groups are joined with a single space and every " / " produced by a
// space character is collapsed to "/". The first character without a
// table entry aborts encoding with an *UnsupportedCharacterError.
func Encode(text string) (string, error) {
	normalized := toLower(text)

	groups := make([]string, 0, len(normalized))
	for _, r := range normalized {
		code, ok := codes[r]
		if !ok {
			return "", &UnsupportedCharacterError{Char: r}
		}
		groups = append(groups, code)
	}

	joined := strings.Join(groups, " ")
	return strings.ReplaceAll(joined, " "+WordSeparator+" ", WordSeparator), nil
}

// Decode converts Morse text produced by Encode back into lowercase text.
func Decode(morse string) (string, error) {
	var b strings.Builder
	for i, word := range strings.Split(morse, WordSeparator) {
		if i > 0 {
			b.WriteRune(' ')
		}
		for _, group := range strings.Fields(word) {
			r, ok := symbols[group]
			if !ok {
				return "", fmt.Errorf("%w: %q", ErrUnknownSymbol, group)
			}
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}
