package llm

import "strings"

// CleanJSONBlock strips markdown code fences, conversational preamble and trailing
// chatter from a model response, leaving the first balanced JSON object or array.
// Text with no JSON value is returned trimmed.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the fence line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.ContainsAny(firstLine, "{[") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return text
	}
	if value := extractBalanced(text[start:]); value != "" {
		return value
	}
	return text
}

// ExtractJSONObject returns the balanced JSON object at the start of s, or "".
func ExtractJSONObject(s string) string {
	if !strings.HasPrefix(s, "{") {
		return ""
	}
	return extractBalanced(s)
}

// extractBalanced scans from the opening bracket at s[0] to its matching close,
// ignoring brackets inside string literals.
func extractBalanced(s string) string {
	if s == "" {
		return ""
	}
	open := s[0]
	var closer byte
	switch open {
	case '{':
		closer = '}'
	case '[':
		closer = ']'
	default:
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return ""
}
