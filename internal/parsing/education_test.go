package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation(t *testing.T) {
	t.Run("degree with year", func(t *testing.T) {
		doc := NewDocument("Education\nBachelor of Science in Computer Science from State University, 2018")
		got := ExtractEducation(doc)

		require.Len(t, got, 1)
		assert.Equal(t, "Bachelor", got[0].Degree)
		assert.Contains(t, got[0].Field, "Computer Science")
		assert.Equal(t, "State University", got[0].Institution)
		assert.Equal(t, "2018", got[0].EndDate)
		assert.Empty(t, got[0].StartDate)
	})

	t.Run("year range", func(t *testing.T) {
		doc := NewDocument("Education\nMaster of Science in Data Science from MIT, 2014 - 2016")
		got := ExtractEducation(doc)

		require.Len(t, got, 1)
		assert.Equal(t, "Master", got[0].Degree)
		assert.Contains(t, got[0].Field, "Data Science")
		assert.Equal(t, "MIT", got[0].Institution)
		assert.Equal(t, "2014", got[0].StartDate)
		assert.Equal(t, "2016", got[0].EndDate)
	})

	t.Run("abbreviated degree with gpa on next line", func(t *testing.T) {
		doc := NewDocument("Education\nB.S. in Computer Science - Stanford University, 2015\nGPA: 3.8")
		got := ExtractEducation(doc)

		require.Len(t, got, 1)
		assert.Equal(t, "B.S.", got[0].Degree)
		assert.Equal(t, "Computer Science", got[0].Field)
		assert.Equal(t, "Stanford University", got[0].Institution)
		assert.Equal(t, "2015", got[0].EndDate)
		assert.Equal(t, "3.8", got[0].GPA)
	})

	t.Run("missing year", func(t *testing.T) {
		got := ExtractEducation(NewDocument("Education\nMBA in Finance at Wharton School"))

		require.Len(t, got, 1)
		assert.Equal(t, "MBA", got[0].Degree)
		assert.Equal(t, "Wharton School", got[0].Institution)
		assert.Equal(t, DateUnknown, got[0].EndDate)
	})

	t.Run("institution fallback", func(t *testing.T) {
		got := ExtractEducation(NewDocument("Education\nHarvard University 2012"))

		require.Len(t, got, 1)
		assert.Equal(t, "Harvard University", got[0].Institution)
		assert.Equal(t, DegreePlaceholder, got[0].Degree)
		assert.Equal(t, FieldPlaceholder, got[0].Field)
		assert.Equal(t, "2012", got[0].EndDate)
	})

	t.Run("institution fallback ignores case", func(t *testing.T) {
		got := ExtractEducation(NewDocument("Education\nstate university 2009"))

		require.Len(t, got, 1)
		assert.Equal(t, "state university", got[0].Institution)
		assert.Equal(t, "2009", got[0].EndDate)
	})

	t.Run("capitalised words are not abbreviations", func(t *testing.T) {
		got := ExtractEducation(NewDocument("Managed the build system - Acme, 2019\nBuilt dashboards at Globex"))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
