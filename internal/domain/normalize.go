package domain

import (
	"strings"
	"unicode"
)

// NormalizeUsername prepares a username for lookup and uniqueness checks:
// surrounding whitespace is trimmed and letters are lowercased.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// CollapseSpaces trims text and compresses every run of whitespace
// inside a single line into one space. Line breaks are preserved.
func CollapseSpaces(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		var b strings.Builder
		b.Grow(len(line))
		prevSpace := false
		for _, r := range strings.TrimRightFunc(line, unicode.IsSpace) {
			if unicode.IsSpace(r) {
				if prevSpace {
					continue
				}
				prevSpace = true
				b.WriteRune(' ')
				continue
			}
			prevSpace = false
			b.WriteRune(r)
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}
