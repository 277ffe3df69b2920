package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		input string
		start string
		end   string
	}{
		{input: "2019 - 2022", start: "2019", end: "2022"},
		{input: "2021 – Present", start: "2021", end: "Present"},
		{input: "2020-current", start: "2020", end: "current"},
		{input: "2018", start: "2018", end: FallbackEndDate},
		{input: "", start: FallbackStartDate, end: FallbackEndDate},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			start, end := ParseDateRange(tt.input)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestIsCurrentRole(t *testing.T) {
	assert.True(t, IsCurrentRole("Present"))
	assert.True(t, IsCurrentRole("CURRENT"))
	assert.False(t, IsCurrentRole("2022"))
	assert.False(t, IsCurrentRole(""))
}

func TestExtractExperience(t *testing.T) {
	t.Run("closed range", func(t *testing.T) {
		doc := NewDocument("Experience\nEngineer - Acme - 2019 - 2022\n• Shipped the billing system")
		got := ExtractExperience(doc)

		require.Len(t, got, 1)
		assert.Equal(t, "Acme", got[0].Company)
		assert.Equal(t, "Engineer", got[0].Position)
		assert.Equal(t, "2019", got[0].StartDate)
		assert.Equal(t, "2022", got[0].EndDate)
		assert.Equal(t, "2019 - 2022", got[0].Duration)
		assert.False(t, got[0].IsCurrentRole)
		assert.Equal(t, []string{"Shipped the billing system"}, got[0].Description)
	})

	t.Run("open range", func(t *testing.T) {
		doc := NewDocument("Experience\nSoftware Engineer at Google 2021 - Present")
		got := ExtractExperience(doc)

		require.Len(t, got, 1)
		assert.Equal(t, "Google", got[0].Company)
		assert.Equal(t, "Software Engineer", got[0].Position)
		assert.Equal(t, "2021", got[0].StartDate)
		assert.Equal(t, "Present", got[0].EndDate)
		assert.True(t, got[0].IsCurrentRole)
		assert.Empty(t, got[0].Description)
	})

	t.Run("equal lengths keep first span as company", func(t *testing.T) {
		got := ExtractExperience(NewDocument("Experience\nAbcd - Wxyz - 2015"))
		require.Len(t, got, 1)
		assert.Equal(t, "Abcd", got[0].Company)
		assert.Equal(t, "Wxyz", got[0].Position)
	})

	t.Run("descriptions stop at the next entry", func(t *testing.T) {
		text := strings.Join([]string{
			"Experience",
			"Staff Engineer - Globex - 2020 - Present",
			"- Designed the event pipeline",
			"Led migration of legacy services to containers",
			"Engineer - Initech - 2016 - 2020",
			"* Maintained TPS reports",
		}, "\n")
		got := ExtractExperience(NewDocument(text))

		require.Len(t, got, 2)
		assert.Equal(t, []string{"Designed the event pipeline", "Led migration of legacy services to containers"}, got[0].Description)
		assert.Equal(t, []string{"Maintained TPS reports"}, got[1].Description)
	})

	t.Run("description is capped", func(t *testing.T) {
		lines := []string{"Experience", "Engineer - Acme - 2019 - 2022"}
		for i := 0; i < 8; i++ {
			lines = append(lines, "• Delivered another thing")
		}
		got := ExtractExperience(NewDocument(strings.Join(lines, "\n")))

		require.Len(t, got, 1)
		assert.Len(t, got[0].Description, maxDescriptionLines)
	})

	t.Run("bullet fallback", func(t *testing.T) {
		got := ExtractExperience(NewDocument("Jane Smith\nExperience\n• Built internal tools\n• Mentored interns"))

		require.Len(t, got, 1)
		assert.Equal(t, FallbackCompany, got[0].Company)
		assert.Equal(t, FallbackPosition, got[0].Position)
		assert.Equal(t, FallbackStartDate, got[0].StartDate)
		assert.Equal(t, FallbackEndDate, got[0].EndDate)
		assert.True(t, got[0].IsCurrentRole)
		assert.Equal(t, []string{"Built internal tools", "Mentored interns"}, got[0].Description)
	})

	t.Run("bullet fallback without a heading", func(t *testing.T) {
		got := ExtractExperience(NewDocument("Jane Smith\njane@example.com\n• Built internal tools\n• Led a team of 4"))

		require.Len(t, got, 1)
		assert.Equal(t, FallbackCompany, got[0].Company)
		assert.Equal(t, FallbackPosition, got[0].Position)
		assert.Equal(t, []string{"Built internal tools", "Led a team of 4"}, got[0].Description)
	})

	t.Run("no section and no matches", func(t *testing.T) {
		got := ExtractExperience(NewDocument("Jane Smith\nI enjoy building reliable software"))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("education lines never leak", func(t *testing.T) {
		text := strings.Join([]string{
			"Jane Smith",
			"Experience",
			"Engineer - Acme - 2019 - 2022",
			"Education",
			"Teaching Assistant - School Board - 2010 - 2012",
		}, "\n")
		got := ExtractExperience(NewDocument(text))

		require.Len(t, got, 1)
		for _, e := range got {
			assert.NotContains(t, e.Company, "School")
			assert.NotContains(t, e.Position, "School")
			assert.NotContains(t, e.Position, "Teaching")
			for _, d := range e.Description {
				assert.NotContains(t, d, "School")
			}
		}
	})
}
