// Package types provides type definitions for structured data used throughout the resume-parser system.
package types

// Section keys used by the segmenter and in ParsedResume.ParsedSections.
const (
	SectionContact        = "contact"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionAchievements   = "achievements"
)

// SectionKeys lists every section key in the order they are reported.
var SectionKeys = []string{
	SectionContact,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionAchievements,
}

// ContactInfo holds the candidate's contact details. Name is never empty.
type ContactInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Website   string `json:"website,omitempty"`
}

// WorkExperience is a single employment entry.
type WorkExperience struct {
	Company       string   `json:"company"`
	Position      string   `json:"position"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	Duration      string   `json:"duration"`
	Description   []string `json:"description"`
	Location      string   `json:"location,omitempty"`
	IsCurrentRole bool     `json:"isCurrentRole"`
}

// Education is a single degree entry. EndDate is "N/A" when no year was found.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Project is a portfolio or side project.
type Project struct {
	Name         string   `json:"name"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	GitHub       string   `json:"github,omitempty"`
}

// Certification is a license or credential.
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	CredentialID string `json:"credentialId,omitempty"`
	URL          string `json:"url,omitempty"`
}

// Achievement is an award or accomplishment line.
type Achievement struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Date         string `json:"date,omitempty"`
	Organization string `json:"organization,omitempty"`
}

// ParsedResume is the structured record produced from resume text.
// All slices are non-nil so they always serialize as JSON arrays.
type ParsedResume struct {
	Contact        ContactInfo       `json:"contact"`
	Summary        string            `json:"summary"`
	WorkExperience []WorkExperience  `json:"workExperience"`
	Projects       []Project         `json:"projects"`
	Education      []Education       `json:"education"`
	Skills         []string          `json:"skills"`
	Certifications []Certification   `json:"certifications"`
	Achievements   []Achievement     `json:"achievements"`
	RawText        string            `json:"rawText"`
	ParsedSections map[string]string `json:"parsedSections"`
}

// EnsureArrays replaces nil slices (including nested ones) with empty slices.
// Records decoded from JSON supplied by clients may omit arrays.
func (r *ParsedResume) EnsureArrays() {
	if r.WorkExperience == nil {
		r.WorkExperience = []WorkExperience{}
	}
	for i := range r.WorkExperience {
		if r.WorkExperience[i].Description == nil {
			r.WorkExperience[i].Description = []string{}
		}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	for i := range r.Projects {
		if r.Projects[i].Description == nil {
			r.Projects[i].Description = []string{}
		}
		if r.Projects[i].Technologies == nil {
			r.Projects[i].Technologies = []string{}
		}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
	if r.Achievements == nil {
		r.Achievements = []Achievement{}
	}
	if r.ParsedSections == nil {
		r.ParsedSections = make(map[string]string, len(SectionKeys))
	}
	for _, key := range SectionKeys {
		if _, ok := r.ParsedSections[key]; !ok {
			r.ParsedSections[key] = ""
		}
	}
}

// IsLowInformation reports whether the record carries almost nothing beyond placeholders.
func (r *ParsedResume) IsLowInformation() bool {
	return r.Contact.Email == "" &&
		len(r.WorkExperience) == 0 &&
		len(r.Education) == 0 &&
		len(r.Skills) == 0
}
