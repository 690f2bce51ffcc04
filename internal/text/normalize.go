// Package text provides input normalization shared by the extractor
// and the signal detectors.
package text

import (
	"regexp"
	"strings"
	"unicode"
)

var urlPattern = regexp.MustCompile(`https?://[^\s<>"']+|www\.[^\s<>"']+`)

// Clean normalizes raw input: trims, collapses whitespace runs and drops
// control characters left over from document extraction.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// IsEmpty reports whether the input has no analyzable content.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SplitSentences splits cleaned text into sentences on . ! ? boundaries.
// A terminator only ends a sentence when followed by whitespace or end of
// input, which keeps decimals and most abbreviations intact.
func SplitSentences(s string) []string {
	s = Clean(s)
	if s == "" {
		return nil
	}

	var sentences []string
	var current strings.Builder
	runes := []rune(s)

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	for i, r := range runes {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\t' {
				flush()
			}
		}
	}
	flush()

	return sentences
}

// ExtractURLs returns all http(s) and www URLs found in the text, in order,
// with trailing punctuation stripped and duplicates removed.
func ExtractURLs(s string) []string {
	matches := urlPattern.FindAllString(s, -1)
	seen := make(map[string]bool)
	var urls []string
	for _, m := range matches {
		m = strings.TrimRight(m, ".,;:!?)")
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		urls = append(urls, m)
	}
	return urls
}

// Truncate shortens s to at most max characters, appending an ellipsis
// when anything was cut.
func Truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
