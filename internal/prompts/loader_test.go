package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get(ConversionFile, "convert-system")
	require.NoError(t, err)
	assert.Contains(t, prompt, "creative resume converter")
	assert.Contains(t, prompt, "{{.ThemeTitle}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get(ConversionFile, "nonexistent-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
	assert.NotPanics(t, func() {
		assert.NotEmpty(t, MustGet(PortfolioFile, "portfolio-system"))
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		want     string
	}{
		{
			name:     "replaces every placeholder",
			template: "Role {{.Role}} for {{.Name}}, again {{.Role}}",
			data:     map[string]string{"Role": "Toddy Tapper", "Name": "Jane"},
			want:     "Role Toddy Tapper for Jane, again Toddy Tapper",
		},
		{
			name:     "no placeholders",
			template: "plain",
			data:     map[string]string{"Key": "Value"},
			want:     "plain",
		},
		{
			name:     "missing value left in place",
			template: "Hello {{.Name}}",
			data:     map[string]string{},
			want:     "Hello {{.Name}}",
		},
		{
			name:     "values are not re-expanded",
			template: "{{.A}}",
			data:     map[string]string{"A": "{{.B}}", "B": "x"},
			want:     "{{.B}}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.data))
		})
	}
}

func TestRender(t *testing.T) {
	ClearCache()

	out, err := Render(ConversionFile, "convert-user", map[string]string{
		"Username":   "jane",
		"ResumeJSON": `{"contact":{"name":"Jane Smith"}}`,
		"ThemeTitle": "Full-Stack Palm Wine Engineer",
		"Nickname":   "Jane 'ToddyStack' Smith",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "USERNAME: jane")
	assert.Contains(t, out, `"Jane 'ToddyStack' Smith"`)
	assert.NotContains(t, out, "{{.")
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List(ConversionFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"convert-system", "convert-user"}, keys)
}

func TestCaching(t *testing.T) {
	ClearCache()

	first, err := Get(PortfolioFile, "portfolio-user")
	require.NoError(t, err)
	second, err := Get(PortfolioFile, "portfolio-user")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
