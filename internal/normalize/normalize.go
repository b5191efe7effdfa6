// internal/normalize/normalize.go
//
// Answer normalization for guess matching.
// A guess and its reference answer are compared only after both pass through
// Normalize, which is insensitive to case, accents, punctuation and spacing:
//   "  São   Paulo!! " → "sao paulo"
//
// Steps (order matters):
//   1. trim surrounding whitespace
//   2. lowercase
//   3. NFD decompose and drop combining marks (Mn)
//   4. drop everything that is not a letter, digit or whitespace
//   5. collapse whitespace runs to a single space, trim again

package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds s into its canonical comparable form.
// It is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// A fresh chain per call; transform.Chain keeps internal buffers and is not safe to share.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Equal reports whether a guess matches an answer after normalization.
// An empty normalized guess never matches.
func Equal(guess, answer string) bool {
	g := Normalize(guess)
	return g != "" && g == Normalize(answer)
}
