package utils

import "strings"

// WrapText breaks text into lines no wider than maxWidth according to measure.
// A single word wider than maxWidth gets a line of its own.
func WrapText(text string, maxWidth int, measure func(string) int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if measure(candidate) > maxWidth {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
