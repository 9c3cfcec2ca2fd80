package grammar

import (
	"strings"
	"unicode"
)

// Preprocess lowercases a sentence and splits it into words. A word is a
// maximal run of letters and apostrophes; runs without a single letter
// (stray punctuation, numbers) are dropped.
func Preprocess(sentence string) []string {
	fields := strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.ContainsFunc(f, unicode.IsLetter) {
			words = append(words, f)
		}
	}
	return words
}
