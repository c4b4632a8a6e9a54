package prompter

import (
	"strings"
	"unicode/utf8"
)

// Wrap breaks a line into display lines no longer than maxChars runes.
// Words are kept whole unless a single word is longer than maxChars, in which
// case it is hard-split into maxChars-sized chunks.
func Wrap(text string, maxChars int) []string {
	if maxChars <= 0 {
		return nil
	}

	var lines []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		lines = append(lines, current.String())
		current.Reset()
		currentLen = 0
	}

	for _, word := range strings.Fields(text) {
		wordLen := utf8.RuneCountInString(word)

		switch {
		case wordLen > maxChars:
			if currentLen > 0 {
				flush()
			}
			remaining := []rune(word)
			for len(remaining) > maxChars {
				lines = append(lines, string(remaining[:maxChars]))
				remaining = remaining[maxChars:]
			}
			if len(remaining) > 0 {
				current.WriteString(string(remaining))
				currentLen = len(remaining)
			}

		case currentLen == 0:
			current.WriteString(word)
			currentLen = wordLen

		case currentLen+1+wordLen <= maxChars:
			current.WriteByte(' ')
			current.WriteString(word)
			currentLen += 1 + wordLen

		default:
			flush()
			current.WriteString(word)
			currentLen = wordLen
		}
	}

	if currentLen > 0 {
		flush()
	}

	// Never let non-empty input vanish
	if len(lines) == 0 && text != "" {
		lines = append(lines, "")
	}

	return lines
}

// WrapDocument wraps every document line. Whitespace-only lines become a
// single empty display line so paragraph breaks survive 1:1.
func WrapDocument(lines []string, maxChars int) []string {
	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			wrapped = append(wrapped, "")
			continue
		}
		wrapped = append(wrapped, Wrap(line, maxChars)...)
	}
	return wrapped
}
