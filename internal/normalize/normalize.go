// Package normalize turns raw document text into the ordered sequence of
// canonical terms the rest of the indexing pipeline operates on:
// tokenize, strip leading punctuation, drop all-punctuation tokens,
// case-fold, and stem.
package normalize

import (
	"strings"

	"github.com/jdkato/prose/tokenize"
	"github.com/reiver/go-porterstemmer"
)

// asciiPunctuation is the standard ASCII punctuation class, which already
// includes the ASCII hyphen.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// emDash is the one non-ASCII character also stripped as leading
// punctuation (a document may contain it even though the rest of
// normalization is ASCII-only).
const emDash = "—"

var tokenizer = tokenize.NewTreebankWordTokenizer()

// Terms tokenizes raw document text and returns the normalized term
// sequence, preserving occurrence order and duplicates.
func Terms(text string) []string {
	tokens := tokenizer.Tokenize(text)
	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		stripped := stripLeadingPunctuation(tok)
		if stripped == "" {
			continue
		}
		lower := strings.ToLower(stripped)
		terms = append(terms, porterstemmer.StemString(lower))
	}
	return terms
}

// stripLeadingPunctuation removes the longest prefix of tok made up
// entirely of ASCII punctuation or dash characters. If every character in
// tok is such a character, the result is empty and the caller discards the
// token.
func stripLeadingPunctuation(tok string) string {
	runes := []rune(tok)
	i := 0
	for i < len(runes) && isPunctRune(runes[i]) {
		i++
	}
	return string(runes[i:])
}

func isPunctRune(r rune) bool {
	if strings.ContainsRune(asciiPunctuation, r) {
		return true
	}
	return string(r) == emDash
}
