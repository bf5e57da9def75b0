package render

import (
	"strings"
	"unicode/utf8"
)

// StripANSI removes ANSI colour escape sequences from a string
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		switch {
		case inEscape:
			if c == 'm' {
				inEscape = false
			}
		case c == '\033':
			inEscape = true
		default:
			result.WriteRune(c)
		}
	}
	return result.String()
}

// VisibleWidth counts the runes left once escape sequences are removed
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// WrapText wraps text on word boundaries to lines of at most width runes.
// Words longer than width get a line of their own.
func WrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= width {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
