package services

import "strings"

// WrapText greedily packs whitespace-delimited words into lines whose
// measured width, counting one trailing space per word, stays within
// maxWidth. A single word wider than maxWidth is kept intact on its own
// line. Empty input yields no lines.
func WrapText(s Surface, text string, f Font, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current []string
	currentWidth := 0.0
	for _, word := range words {
		wordWidth := s.TextWidth(word+" ", f)
		if len(current) > 0 && currentWidth+wordWidth > maxWidth {
			lines = append(lines, strings.Join(current, " "))
			current = current[:0]
			currentWidth = 0
		}
		current = append(current, word)
		currentWidth += wordWidth
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// TruncateText cuts a cell value to the character budget, marking the cut
// with an ellipsis. The budget is in characters, not measured points.
func TruncateText(text string, limit int) string {
	if limit <= 0 || len([]rune(text)) <= limit {
		return text
	}
	return string([]rune(text)[:limit]) + "..."
}
