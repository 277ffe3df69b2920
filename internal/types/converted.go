package types

// ColdMailContent is the structured outreach email attached to a converted resume.
type ColdMailContent struct {
	Subject       string   `json:"subject"`
	Greeting      string   `json:"greeting"`
	Introduction  string   `json:"introduction"`
	KeyHighlights []string `json:"keyHighlights"`
	CallToAction  string   `json:"callToAction"`
	Signature     string   `json:"signature"`
}

// ConvertedResume is a ParsedResume rewritten for a themed role.
type ConvertedResume struct {
	RoleTitle      string           `json:"roleTitle"`
	Contact        ContactInfo      `json:"contact"`
	Nickname       string           `json:"nickname,omitempty"`
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Projects       []Project        `json:"projects"`
	Education      []Education      `json:"education"`
	Skills         []string         `json:"skills"`
	Certifications []Certification  `json:"certifications"`
	Achievements   []Achievement    `json:"achievements"`
	SoftSkills     []string         `json:"softSkills"`
	ColdMail       ColdMailContent  `json:"coldMail"`
}

// EnsureArrays replaces nil slices with empty slices.
func (c *ConvertedResume) EnsureArrays() {
	if c.WorkExperience == nil {
		c.WorkExperience = []WorkExperience{}
	}
	for i := range c.WorkExperience {
		if c.WorkExperience[i].Description == nil {
			c.WorkExperience[i].Description = []string{}
		}
	}
	if c.Projects == nil {
		c.Projects = []Project{}
	}
	for i := range c.Projects {
		if c.Projects[i].Description == nil {
			c.Projects[i].Description = []string{}
		}
		if c.Projects[i].Technologies == nil {
			c.Projects[i].Technologies = []string{}
		}
	}
	if c.Education == nil {
		c.Education = []Education{}
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	if c.Certifications == nil {
		c.Certifications = []Certification{}
	}
	if c.Achievements == nil {
		c.Achievements = []Achievement{}
	}
	if c.SoftSkills == nil {
		c.SoftSkills = []string{}
	}
	if c.ColdMail.KeyHighlights == nil {
		c.ColdMail.KeyHighlights = []string{}
	}
}
