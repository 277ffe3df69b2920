package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContact_Name(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "first plausible line",
			text:     "Jane Smith\njane.smith@example.com",
			expected: "Jane Smith",
		},
		{
			name:     "title cases shouting",
			text:     "JANE MARIE SMITH\nEngineer",
			expected: "Jane Marie Smith",
		},
		{
			name:     "skips stop words and digits",
			text:     "RESUME\nCall 5551234567\nJohn Doe",
			expected: "John Doe",
		},
		{
			name:     "derived from email",
			text:     "RESUME\njohn.doe@example.com\nPhone: 555 123 4567",
			expected: "John Doe",
		},
		{
			name:     "placeholder",
			text:     "RESUME\nPhone: 555 123 4567\nBuilding reliable software for many years now",
			expected: NamePlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact := ExtractContact(NewDocument(tt.text))
			assert.Equal(t, tt.expected, contact.Name)
		})
	}
}

func TestExtractContact_Phone(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "parenthesised", text: "Jane Smith\n(555) 123-4567", expected: "(555) 123-4567"},
		{name: "country code", text: "Jane Smith\n+1 555-123-4567", expected: "+1 555-123-4567"},
		{name: "dotted", text: "Jane Smith\n555.123.4567", expected: "555.123.4567"},
		{name: "none", text: "Jane Smith\nno number here", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractContact(NewDocument(tt.text)).Phone)
		})
	}
}

func TestExtractContact_Location(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "city and state with zip", text: "Jane Smith\nSan Francisco, CA 94105", expected: "San Francisco, CA 94105"},
		{name: "city and state after separator", text: "Jane Smith\njane@example.com | Austin, TX", expected: "Austin, TX"},
		{name: "city and country", text: "Jane Smith\nBerlin, Germany", expected: "Berlin, Germany"},
		{name: "labelled", text: "Jane Smith\nLocation: Remote", expected: "Remote"},
		{name: "none", text: "Jane Smith\nEngineer", expected: ""},
		{name: "labelled after a heading", text: "Jane Smith\nSummary\nBackend engineer building payment systems\nLocation: Austin, TX", expected: "Austin, TX"},
		{name: "beyond the first ten lines", text: "Jane Smith\n1\n2\n3\n4\n5\n6\n7\n8\n9\n10\nPortland, OR", expected: "Portland, OR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractContact(NewDocument(tt.text)).Location)
		})
	}
}

func TestExtractContact_Links(t *testing.T) {
	text := "Jane Smith\n" +
		"jane.smith@example.com\n" +
		"https://www.linkedin.com/in/jane-smith-42 | https://github.com/janesmith\n" +
		"https://janesmith.dev"

	contact := ExtractContact(NewDocument(text))

	assert.Equal(t, "jane.smith@example.com", contact.Email)
	assert.Equal(t, "linkedin.com/in/jane-smith-42", contact.LinkedIn)
	assert.Equal(t, "github.com/janesmith", contact.GitHub)
	assert.Equal(t, "https://janesmith.dev", contact.Website)
}
