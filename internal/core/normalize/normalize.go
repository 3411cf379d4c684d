// Package normalize turns stored HTML or markdown-ish content into clean
// plain text suitable for feed summaries
package normalize

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

// Text strips markup from s and returns NFC-normalized plain text with
// collapsed whitespace. Input that is not HTML passes through unchanged
// apart from normalization
func Text(s string) string {
	if s == "" {
		return ""
	}
	out := s
	if strings.ContainsRune(s, '<') {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
		if err == nil {
			doc.Find("script,style,noscript").Remove()
			out = doc.Text()
		}
	}
	out = norm.NFC.String(out)
	return collapse(out)
}

// Summary returns a plain-text summary of s truncated to max runes.
// Truncation happens on a word boundary when one is close enough,
// with a single ellipsis appended
func Summary(s string, max int) string {
	t := Text(s)
	if max <= 0 {
		return t
	}
	runes := []rune(t)
	if len(runes) <= max {
		return t
	}
	cut := runes[:max]
	// back up to the last space unless it would cost too much
	if i := lastSpace(cut); i > max*3/4 {
		cut = cut[:i]
	}
	return strings.TrimRightFunc(string(cut), unicode.IsSpace) + "…"
}

func lastSpace(r []rune) int {
	for i := len(r) - 1; i >= 0; i-- {
		if unicode.IsSpace(r[i]) {
			return i
		}
	}
	return -1
}

func collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
