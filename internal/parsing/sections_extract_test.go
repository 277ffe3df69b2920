package parsing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestExtractProjects(t *testing.T) {
	t.Run("groups of three", func(t *testing.T) {
		text := strings.Join([]string{
			"Projects",
			"• Portfolio Site",
			"A personal website built from scratch https://janesmith.dev",
			"Technologies: React, Node.js, ",
			"Chat App",
			"Real-time chat https://github.com/janesmith/chat",
		}, "\n")
		got := ExtractProjects(NewDocument(text))

		require.Len(t, got, 2)
		assert.Equal(t, "Portfolio Site", got[0].Name)
		assert.Equal(t, []string{"A personal website built from scratch https://janesmith.dev"}, got[0].Description)
		assert.Equal(t, []string{"React", "Node.js"}, got[0].Technologies)
		assert.Equal(t, "https://janesmith.dev", got[0].URL)

		assert.Equal(t, "Chat App", got[1].Name)
		assert.Equal(t, "https://github.com/janesmith/chat", got[1].GitHub)
		assert.Empty(t, got[1].URL)
		assert.NotNil(t, got[1].Technologies)
	})

	t.Run("capped at five", func(t *testing.T) {
		lines := []string{"Projects"}
		for i := 0; i < 7; i++ {
			lines = append(lines, fmt.Sprintf("Project %d", i), "Something useful", "Stack: Go")
		}
		got := ExtractProjects(NewDocument(strings.Join(lines, "\n")))

		require.Len(t, got, maxProjects)
		assert.Equal(t, "Project 4", got[4].Name)
		assert.Equal(t, []string{"Go"}, got[4].Technologies)
	})

	t.Run("no section", func(t *testing.T) {
		got := ExtractProjects(NewDocument("Jane Smith\nBuilt a compiler"))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestExtractCertifications(t *testing.T) {
	text := strings.Join([]string{
		"Certifications",
		"AWS Certified Solutions Architect - Amazon - 2021",
		"• CKA-CNCF",
		"Certified Kubernetes Administrator - Cloud-Native Foundation - 2022",
		"Scrum Master",
	}, "\n")

	got := ExtractCertifications(NewDocument(text))

	require.Len(t, got, 3)
	assert.Equal(t, types.Certification{Name: "AWS Certified Solutions Architect", Issuer: "Amazon", Date: "2021"}, got[0])
	assert.Equal(t, types.Certification{Name: "CKA", Issuer: "CNCF", Date: DateUnknown}, got[1])
	assert.Equal(t, "Cloud-Native Foundation", got[2].Issuer)
	assert.Equal(t, "2022", got[2].Date)
}

func TestExtractAchievements(t *testing.T) {
	lines := []string{"Awards"}
	for i := 0; i < 7; i++ {
		lines = append(lines, fmt.Sprintf("• Award number %d", i))
	}

	got := ExtractAchievements(NewDocument(strings.Join(lines, "\n")))

	require.Len(t, got, maxAchievements)
	assert.Equal(t, "Award number 0", got[0].Title)
	assert.Equal(t, got[0].Title, got[0].Description)
	assert.Empty(t, ExtractAchievements(NewDocument("Jane Smith\nNo awards here")))
}

func TestExtractSummary(t *testing.T) {
	t.Run("section", func(t *testing.T) {
		got := ExtractSummary(NewDocument("Jane Smith\nSummary\nSeasoned engineer.\nLoves Go."))
		assert.Equal(t, "Seasoned engineer. Loves Go.", got)
	})

	t.Run("section is truncated", func(t *testing.T) {
		got := ExtractSummary(NewDocument("Jane Smith\nProfile\n" + strings.Repeat("é", 400)))
		assert.Equal(t, maxSummaryLength, len([]rune(got)))
	})

	t.Run("implicit opening", func(t *testing.T) {
		text := "Jane Smith\nBackend engineer focused on reliable distributed systems\nand developer tooling"
		got := ExtractSummary(NewDocument(text))
		assert.Equal(t, "Backend engineer focused on reliable distributed systems and developer tooling", got)
	})

	t.Run("placeholder", func(t *testing.T) {
		assert.Equal(t, SummaryPlaceholder, ExtractSummary(NewDocument("Jane Smith\nEngineer")))
		assert.Equal(t, SummaryPlaceholder, ExtractSummary(NewDocument("")))
	})
}
