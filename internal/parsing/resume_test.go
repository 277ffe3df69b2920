package parsing

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

const janeSmithResume = `Jane Smith
jane.smith@example.com
(555) 123-4567

Experience
Senior Engineer - Acme Corp - 2019 - 2022
• Built internal tools
• Led a team of 4

Skills
JavaScript, React, MongoDB, AWS

Education
Bachelor of Science in Computer Science from State University, 2018
`

func TestParseResumeText_EndToEnd(t *testing.T) {
	resume := ParseResumeText(janeSmithResume)
	require.NotNil(t, resume)

	assert.Equal(t, "Jane Smith", resume.Contact.Name)
	assert.Equal(t, "jane.smith@example.com", resume.Contact.Email)
	assert.Equal(t, "(555) 123-4567", resume.Contact.Phone)

	require.Len(t, resume.WorkExperience, 1)
	job := resume.WorkExperience[0]
	assert.Equal(t, "Acme Corp", job.Company)
	assert.Equal(t, "Senior Engineer", job.Position)
	assert.Equal(t, "2019", job.StartDate)
	assert.Equal(t, "2022", job.EndDate)
	assert.False(t, job.IsCurrentRole)
	assert.Equal(t, []string{"Built internal tools", "Led a team of 4"}, job.Description)

	assert.Equal(t, []string{"JavaScript", "React", "MongoDB", "AWS"}, resume.Skills)

	require.Len(t, resume.Education, 1)
	edu := resume.Education[0]
	assert.Contains(t, edu.Degree, "Bachelor")
	assert.Contains(t, edu.Field, "Computer Science")
	assert.Contains(t, edu.Institution, "State University")
	assert.Equal(t, "2018", edu.EndDate)

	assert.Equal(t, janeSmithResume, resume.RawText)
	assert.Equal(t, "JavaScript, React, MongoDB, AWS", resume.ParsedSections[types.SectionSkills])
	assert.Equal(t, "Jane Smith jane.smith@example.com (555) 123-4567", resume.ParsedSections[types.SectionContact])
	assert.Equal(t, resume.Summary, resume.ParsedSections[types.SectionSummary])
	assert.Empty(t, resume.Projects)
	assert.Empty(t, resume.Certifications)
	assert.Empty(t, resume.Achievements)
}

func TestParseResumeText_ArrayDefaults(t *testing.T) {
	resume := ParseResumeText("Jane Smith\njane@example.com\nI enjoy building reliable software for people")

	assert.Equal(t, []types.WorkExperience{}, resume.WorkExperience)
	assert.Equal(t, []types.Education{}, resume.Education)
	assert.Equal(t, []types.Project{}, resume.Projects)
	assert.Equal(t, []types.Certification{}, resume.Certifications)
	assert.Equal(t, []types.Achievement{}, resume.Achievements)
	assert.Equal(t, []string{}, resume.Skills)

	for _, key := range types.SectionKeys {
		_, ok := resume.ParsedSections[key]
		assert.True(t, ok, "missing parsed section %q", key)
	}
}

func TestParseResumeText_JSONShape(t *testing.T) {
	data, err := json.Marshal(ParseResumeText("Jane Smith\nI enjoy building reliable software"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{"contact", "summary", "workExperience", "projects", "education", "skills", "certifications", "achievements", "rawText", "parsedSections"} {
		assert.Contains(t, decoded, key)
	}
	for _, key := range []string{"workExperience", "projects", "education", "skills", "certifications", "achievements"} {
		assert.Equal(t, []any{}, decoded[key], key)
	}
}

func TestParseResumeText_Deterministic(t *testing.T) {
	first := ParseResumeText(janeSmithResume)
	second := ParseResumeText(janeSmithResume)
	assert.Equal(t, first, second)
}

func TestParseResumeText_TotalOnOddInput(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"Experience\nEducation\nSkills",
		"- - - 2019 - 2020 - - -",
		"@@@ ### 1234 5678",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			resume := ParseResumeText(input)
			assert.NotEmpty(t, resume.Contact.Name)
			assert.NotEmpty(t, resume.Summary)
		})
	}
}

func TestParse(t *testing.T) {
	resume, err := Parse(janeSmithResume)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", resume.Contact.Name)

	_, err = Parse("%%%% 1234")
	var unreadable *UnreadableTextError
	assert.True(t, errors.As(err, &unreadable))
}

func TestWarnings(t *testing.T) {
	r := &types.ParsedResume{Contact: types.ContactInfo{Name: NamePlaceholder}}
	r.EnsureArrays()
	assert.Equal(t, []string{
		"Could not detect a name",
		"No email address found",
		"No work experience detected",
		"No skills detected",
	}, Warnings(r))

	r.Contact = types.ContactInfo{Name: "Jane", Email: "jane@example.com"}
	r.Skills = []string{"Go"}
	r.WorkExperience = []types.WorkExperience{{Company: "Acme"}}
	assert.Empty(t, Warnings(r))
	assert.NotNil(t, Warnings(r))
}
