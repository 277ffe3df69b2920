package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"roleTitle\": \"Coconut Climber\"}\n```",
			expected: `{"roleTitle": "Coconut Climber"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"skills\": []}\n```",
			expected: `{"skills": []}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "preamble before object",
			input:    "Here is your themed resume:\n{\"nickname\": \"Jane 'PuriStack' Smith\"}",
			expected: `{"nickname": "Jane 'PuriStack' Smith"}`,
		},
		{
			name:     "trailing chatter",
			input:    "{\"summary\": \"ok\"}\n\nLet me know if you need anything else!",
			expected: `{"summary": "ok"}`,
		},
		{
			name:     "braces inside strings",
			input:    "Result: {\"template\": \"Hello {name}!\", \"x\": \"}\"}",
			expected: `{"template": "Hello {name}!", "x": "}"}`,
		},
		{
			name:     "escaped quotes",
			input:    "Result: {\"message\": \"He said \\\"hi\\\"\"}",
			expected: `{"message": "He said \"hi\""}`,
		},
		{
			name:     "preamble before array",
			input:    "Items:\n[\"a\", \"b\"]",
			expected: `["a", "b"]`,
		},
		{
			name:     "no json",
			input:    "  sorry, I cannot help  ",
			expected: "sorry, I cannot help",
		},
		{
			name:     "unbalanced returns trimmed text",
			input:    "{\"a\": 1",
			expected: "{\"a\": 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple object", `{"key": "value"}`, `{"key": "value"}`},
		{"nested objects", `{"outer": {"inner": "value"}}`, `{"outer": {"inner": "value"}}`},
		{"object with array", `{"items": [1, 2, 3]}`, `{"items": [1, 2, 3]}`},
		{"trailing text", `{"key": "value"} and more`, `{"key": "value"}`},
		{"empty input", "", ""},
		{"array is not an object", `[1]`, ""},
		{"not json", "not json", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractJSONObject(tt.input))
		})
	}
}
