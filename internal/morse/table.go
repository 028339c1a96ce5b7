// Package morse maps text to Morse symbol strings.
//
// Morse text is a space-separated list of symbol groups, one per character,
// built from '.' (dit) and '-' (dah). Word boundaries are marked with '/'.
package morse

import (
	"sort"

	"github.com/samber/lo"
)

// WordSeparator marks a boundary between words in Morse text.
const WordSeparator = "/"

// codes is the fixed character table. Keys are lowercase; lookups
// normalise case before indexing.
var codes = map[rune]string{
	'a': ".-", 'b': "-...", 'c': "-.-.", 'd': "-..", 'e': ".",
	'f': "..-.", 'g': "--.", 'h': "....", 'i': "..", 'j': ".---",
	'k': "-.-", 'l': ".-..", 'm': "--", 'n': "-.", 'o': "---",
	'p': ".--.", 'q': "--.-", 'r': ".-.", 's': "...", 't': "-",
	'u': "..-", 'v': "...-", 'w': ".--", 'x': "-..-", 'y': "-.--",
	'z': "--..",
	'1': ".----", '2': "..---", '3': "...--", '4': "....-", '5': ".....",
	'6': "-....", '7': "--...", '8': "---..", '9': "----.", '0': "-----",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '\'': ".----.",
	'!': "-.-.--", '/': "-..-.", '(': "-.--.", ')': "-.--.-",
	'&': ".-...", ':': "---...", ';': "-.-.-.", '=': "-...-",
	'+': ".-.-.", '-': "-....-", '_': "..--.-", '"': ".-..-.",
	'$': "...-..-", '@': ".--.-.",
	' ': WordSeparator,
}

// symbols is the reverse of codes, without the word separator.
var symbols = lo.Invert(lo.OmitByKeys(codes, []rune{' '}))

// Supported returns every character in the table, sorted by code point.
func Supported() []rune {
	keys := lo.Keys(codes)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
