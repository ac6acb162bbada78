package align

import (
	"strings"
	"unicode/utf8"
)

// Word is a non-empty run of non-whitespace characters.
type Word string

// Len is the display length of the word, counted in runes.
func (w Word) Len() int {
	return utf8.RuneCountInString(string(w))
}

// Tokenize splits a paragraph on runs of whitespace. Empty tokens are never
// produced, so blank input yields no words.
func Tokenize(text string) []Word {
	fields := strings.Fields(text)
	words := make([]Word, len(fields))
	for i, f := range fields {
		words[i] = Word(f)
	}
	return words
}
