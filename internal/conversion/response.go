package conversion

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/roles"
	"github.com/jonathan/resume-parser/internal/types"
)

// modelResponse mirrors ConvertedResume with pointers where absence matters.
type modelResponse struct {
	RoleTitle      string                 `json:"roleTitle"`
	Contact        *types.ContactInfo     `json:"contact"`
	Nickname       string                 `json:"nickname"`
	Summary        string                 `json:"summary"`
	WorkExperience []types.WorkExperience `json:"workExperience"`
	Projects       []types.Project        `json:"projects"`
	Education      []types.Education      `json:"education"`
	Skills         []string               `json:"skills"`
	Certifications []types.Certification  `json:"certifications"`
	Achievements   []types.Achievement    `json:"achievements"`
	SoftSkills     []string               `json:"softSkills"`
	ColdMail       *types.ColdMailContent `json:"coldMail"`
}

// ParseResponse decodes a model response and fills every missing field.
// Missing contact details come from the original resume.
func ParseResponse(text string, original *types.ParsedResume, role roles.Role) (*types.ConvertedResume, error) {
	cleaned := llm.CleanJSONBlock(text)
	if cleaned == "" {
		return nil, &ParseError{Message: "empty response"}
	}

	var resp modelResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return nil, &ParseError{Message: "invalid JSON", Cause: err}
	}

	out := &types.ConvertedResume{
		RoleTitle:      firstNonEmpty(resp.RoleTitle, role.Title, "Professional"),
		Nickname:       firstNonEmpty(resp.Nickname, fmt.Sprintf("Professional %s", firstNonEmpty(role.Title, "Expert"))),
		Summary:        firstNonEmpty(resp.Summary, fmt.Sprintf("Experienced %s from Kerala", firstNonEmpty(role.Title, "Professional"))),
		WorkExperience: resp.WorkExperience,
		Projects:       resp.Projects,
		Education:      resp.Education,
		Skills:         resp.Skills,
		Certifications: resp.Certifications,
		Achievements:   resp.Achievements,
		SoftSkills:     resp.SoftSkills,
	}

	if resp.Contact != nil {
		out.Contact = *resp.Contact
	}
	if original != nil {
		fillContact(&out.Contact, original.Contact)
	}

	if resp.ColdMail != nil {
		out.ColdMail = *resp.ColdMail
	} else {
		out.ColdMail = defaultColdMail(out.Contact.Name)
	}

	out.EnsureArrays()
	return out, nil
}

func defaultColdMail(name string) types.ColdMailContent {
	return types.ColdMailContent{
		Subject:      "Professional Opportunity",
		Greeting:     "Dear Hiring Manager,",
		Introduction: fmt.Sprintf("I am %s, interested in opportunities.", firstNonEmpty(name, "a professional")),
		KeyHighlights: []string{
			"Strong professional background",
			"Excellent communication skills",
		},
		CallToAction: "I would welcome the opportunity to discuss how I can contribute.",
		Signature:    fmt.Sprintf("Best regards,\n%s", firstNonEmpty(name, "Professional")),
	}
}

// fillContact copies fields the model left empty from src.
func fillContact(dst *types.ContactInfo, src types.ContactInfo) {
	fill := func(d *string, s string) {
		if strings.TrimSpace(*d) == "" {
			*d = s
		}
	}
	fill(&dst.Name, src.Name)
	fill(&dst.Email, src.Email)
	fill(&dst.Phone, src.Phone)
	fill(&dst.Location, src.Location)
	fill(&dst.LinkedIn, src.LinkedIn)
	fill(&dst.GitHub, src.GitHub)
	fill(&dst.Portfolio, src.Portfolio)
	fill(&dst.Website, src.Website)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
