package parsing

import "strings"

// Tokenize splits text on newlines, trims every line and drops empty ones.
func Tokenize(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
