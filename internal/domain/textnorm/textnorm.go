// Package textnorm folds free text into a comparison-safe canonical form.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripCombining removes Unicode combining marks (category M) after NFD
// decomposition, so "María" folds to "maria".
type stripCombining struct{ transform.NopResetter }

func (stripCombining) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if unicode.Is(unicode.M, r) {
			nSrc += size
			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	return nDst, nSrc, nil
}

// Fold normalizes text for comparison:
//  1. Lowercase
//  2. NFD decomposition, strip combining marks, recompose (removes accents)
//  3. Collapse runs of hyphens, underscores, and whitespace into one space
//  4. Trim leading/trailing whitespace
//
// Fold is idempotent: Fold(Fold(s)) == Fold(s).
func Fold(s string) string {
	s = strings.ToLower(s)

	t := transform.Chain(norm.NFD, stripCombining{}, norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// Words folds s and splits it into its whitespace-delimited words.
func Words(s string) []string {
	return strings.Fields(Fold(s))
}
