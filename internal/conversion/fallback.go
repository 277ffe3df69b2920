package conversion

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-parser/internal/roles"
	"github.com/jonathan/resume-parser/internal/types"
)

const maxFallbackJobs = 3

// Fallback builds a themed resume from parsed without the model.
// Company names and dates are kept; positions and descriptions are rewritten.
func Fallback(parsed *types.ParsedResume, role roles.Role) *types.ConvertedResume {
	title := role.Title
	contact := parsed.Contact

	jobs := parsed.WorkExperience
	if len(jobs) > maxFallbackJobs {
		jobs = jobs[:maxFallbackJobs]
	}
	experience := make([]types.WorkExperience, 0, len(jobs))
	for _, exp := range jobs {
		experience = append(experience, types.WorkExperience{
			Company:       exp.Company,
			Position:      fmt.Sprintf("%s at %s", title, exp.Company),
			StartDate:     exp.StartDate,
			EndDate:       exp.EndDate,
			Duration:      exp.Duration,
			Description:   []string{fmt.Sprintf("Worked as professional %s", strings.ToLower(title))},
			Location:      exp.Location,
			IsCurrentRole: exp.IsCurrentRole,
		})
	}

	education := make([]types.Education, len(parsed.Education))
	copy(education, parsed.Education)

	out := &types.ConvertedResume{
		RoleTitle:      title,
		Contact:        contact,
		Nickname:       fmt.Sprintf("Professional %s", title),
		Summary:        fmt.Sprintf("Experienced %s with years of expertise in Kerala", title),
		WorkExperience: experience,
		Education:      education,
		Skills:         []string{"Professional Skills", "Customer Service", "Local Expertise"},
		SoftSkills:     []string{"Customer Communication", "Problem Solving", "Local Knowledge"},
		ColdMail: types.ColdMailContent{
			Subject:      fmt.Sprintf("%s Professional - Job Opportunity", title),
			Greeting:     "Dear Hiring Manager,",
			Introduction: fmt.Sprintf("I am a dedicated %s with extensive experience in Kerala.", title),
			KeyHighlights: []string{
				fmt.Sprintf("Expert %s with local knowledge", title),
				"Strong customer service and communication skills",
				"Proven track record of professional excellence",
			},
			CallToAction: "I would welcome the opportunity to discuss how I can contribute to your team.",
			Signature:    fmt.Sprintf("Best regards,\n%s\n%s\n%s", firstNonEmpty(contact.Name, "Professional"), contact.Email, contact.Phone),
		},
	}
	out.EnsureArrays()
	return out
}
