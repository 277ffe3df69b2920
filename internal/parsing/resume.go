package parsing

import (
	"github.com/jonathan/resume-parser/internal/types"
)

// ParseResumeText runs every extractor over text and assembles the result.
// It never fails; unrecognised content degrades to empty arrays and placeholders.
func ParseResumeText(text string) *types.ParsedResume {
	return ParseDocument(NewDocument(text))
}

// ParseDocument assembles a ParsedResume from an already segmented document.
func ParseDocument(doc *Document) *types.ParsedResume {
	summary := ExtractSummary(doc)

	resume := &types.ParsedResume{
		Contact:        ExtractContact(doc),
		Summary:        summary,
		WorkExperience: ExtractExperience(doc),
		Projects:       ExtractProjects(doc),
		Education:      ExtractEducation(doc),
		Skills:         ExtractSkills(doc),
		Certifications: ExtractCertifications(doc),
		Achievements:   ExtractAchievements(doc),
		RawText:        doc.Raw,
		ParsedSections: make(map[string]string, len(types.SectionKeys)),
	}

	for _, key := range types.SectionKeys {
		resume.ParsedSections[key] = doc.Sections.Text(key, " ")
	}
	if resume.ParsedSections[types.SectionSummary] == "" {
		resume.ParsedSections[types.SectionSummary] = summary
	}

	resume.EnsureArrays()
	return resume
}

// Parse gates text on readability before parsing it.
func Parse(text string) (*types.ParsedResume, error) {
	if _, err := Normalize(text); err != nil {
		return nil, err
	}
	return ParseResumeText(text), nil
}

// Warnings lists the fields a parse could not fill.
func Warnings(r *types.ParsedResume) []string {
	warnings := []string{}
	if r.Contact.Name == "" || r.Contact.Name == NamePlaceholder {
		warnings = append(warnings, "Could not detect a name")
	}
	if r.Contact.Email == "" {
		warnings = append(warnings, "No email address found")
	}
	if len(r.WorkExperience) == 0 {
		warnings = append(warnings, "No work experience detected")
	}
	if len(r.Skills) == 0 {
		warnings = append(warnings, "No skills detected")
	}
	return warnings
}
