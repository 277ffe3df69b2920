package rendering

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/conversion"
	"github.com/jonathan/resume-parser/internal/roles"
	"github.com/jonathan/resume-parser/internal/types"
)

//go:embed templates/portfolio.html.tmpl
var templateFS embed.FS

const defaultAccent = "#0d9488"

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)

// PageData is the view model passed to the portfolio template.
type PageData struct {
	Username     string
	RoleKey      string
	RoleTitle    string
	Accent       template.CSS
	DisplayName  string
	Initials     string
	Contact      types.ContactInfo
	Headline     string
	HeroText     string
	Summary      string
	Sections     []types.PortfolioSection
	Companies    []CompanySection
	Projects     []types.Project
	Education    []types.Education
	Skills       []string
	SoftSkills   []string
	Testimonials []types.Testimonial
	PortfolioURL string
	GeneratedAt  string
}

// CompanySection represents a company with one or more roles
type CompanySection struct {
	Company string
	Current bool
	Roles   []RoleSection
}

// RoleSection represents a role within a company with merged date ranges
type RoleSection struct {
	Role       string
	DateRanges string // e.g., "2018 - 2020, 2021 - Present"
	Bullets    []string
}

var (
	pageOnce sync.Once
	pageTmpl *template.Template
	pageErr  error
)

func pageTemplate() (*template.Template, error) {
	pageOnce.Do(func() {
		pageTmpl, pageErr = template.New("portfolio.html.tmpl").Funcs(template.FuncMap{
			"join": strings.Join,
		}).ParseFS(templateFS, "templates/portfolio.html.tmpl")
	})
	if pageErr != nil {
		return nil, &TemplateError{Message: "failed to parse template", Cause: pageErr}
	}
	return pageTmpl, nil
}

// RenderHTML renders a stored portfolio as a standalone HTML page.
func RenderHTML(profile *types.PortfolioProfile) (string, error) {
	if profile == nil {
		return "", &RenderError{Message: "portfolio is required"}
	}
	tmpl, err := pageTemplate()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, BuildPageData(profile, time.Now())); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return buf.String(), nil
}

// BuildPageData constructs the template data from a stored portfolio.
func BuildPageData(profile *types.PortfolioProfile, now time.Time) *PageData {
	c := profile.ConvertedResume
	role := roles.GetOrDefault(profile.RoleKey)

	accent := role.Color
	if !hexColor.MatchString(accent) {
		accent = defaultAccent
	}
	display := c.Contact.Name
	if display == "" {
		display = c.Nickname
	}
	if display == "" {
		display = profile.Username
	}
	roleTitle := c.RoleTitle
	if roleTitle == "" {
		roleTitle = role.Title
	}

	content := profile.PortfolioData
	if content.Headline == "" && len(content.Sections) == 0 {
		content = *conversion.BasicPortfolio(&c, role.Key)
	}

	return &PageData{
		Username:     profile.Username,
		RoleKey:      role.Key,
		RoleTitle:    roleTitle,
		Accent:       template.CSS(accent),
		DisplayName:  display,
		Initials:     initials(display),
		Contact:      c.Contact,
		Headline:     content.Headline,
		HeroText:     content.HeroText,
		Summary:      c.Summary,
		Sections:     content.Sections,
		Companies:    groupByCompanyAndRole(c.WorkExperience),
		Projects:     c.Projects,
		Education:    c.Education,
		Skills:       c.Skills,
		SoftSkills:   c.SoftSkills,
		Testimonials: content.Testimonials,
		PortfolioURL: fmt.Sprintf("%s/%s", conversion.PortfolioHost, profile.Username),
		GeneratedAt:  now.UTC().Format("January 2, 2006"),
	}
}

// roleKey is used for grouping entries by company and role
type roleKey struct {
	Company string
	Role    string
}

// groupByCompanyAndRole groups experience entries by company, then by position,
// merging date ranges. Companies with a current role come first.
func groupByCompanyAndRole(entries []types.WorkExperience) []CompanySection {
	if len(entries) == 0 {
		return []CompanySection{}
	}

	byRole := make(map[roleKey][]types.WorkExperience)
	companyOrder := []string{}
	companyRoleOrder := make(map[string][]string)
	current := make(map[string]bool)
	seenRoles := make(map[roleKey]bool)

	for _, e := range entries {
		company := strings.TrimSpace(e.Company)
		if company == "" {
			company = "Independent"
		}
		key := roleKey{Company: company, Role: e.Position}

		if _, ok := companyRoleOrder[company]; !ok {
			companyOrder = append(companyOrder, company)
			companyRoleOrder[company] = nil
		}
		if !seenRoles[key] {
			seenRoles[key] = true
			companyRoleOrder[company] = append(companyRoleOrder[company], e.Position)
		}
		if e.IsCurrentRole {
			current[company] = true
		}
		byRole[key] = append(byRole[key], e)
	}

	companies := make([]CompanySection, 0, len(companyOrder))
	for _, company := range companyOrder {
		section := CompanySection{Company: company, Current: current[company]}
		for _, position := range companyRoleOrder[company] {
			items := byRole[roleKey{Company: company, Role: position}]
			var bullets []string
			for _, it := range items {
				bullets = append(bullets, it.Description...)
			}
			section.Roles = append(section.Roles, RoleSection{
				Role:       position,
				DateRanges: mergeDateRanges(items),
				Bullets:    bullets,
			})
		}
		companies = append(companies, section)
	}

	sort.SliceStable(companies, func(i, j int) bool {
		return companies[i].Current && !companies[j].Current
	})
	return companies
}

// mergeDateRanges collects unique date ranges, sorts them and joins them with commas
func mergeDateRanges(entries []types.WorkExperience) string {
	type dateRange struct{ start, end string }

	seen := make(map[dateRange]bool)
	ranges := []dateRange{}
	for _, e := range entries {
		if e.StartDate == "" && e.EndDate == "" {
			if e.Duration != "" && !seen[dateRange{start: e.Duration}] {
				seen[dateRange{start: e.Duration}] = true
				ranges = append(ranges, dateRange{start: e.Duration})
			}
			continue
		}
		r := dateRange{start: e.StartDate, end: e.EndDate}
		if !seen[r] {
			seen[r] = true
			ranges = append(ranges, r)
		}
	}
	if len(ranges) == 0 {
		return ""
	}

	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].start < ranges[j].start
	})

	parts := make([]string, len(ranges))
	for i, r := range ranges {
		switch {
		case r.end == "":
			parts[i] = r.start
		case strings.EqualFold(r.end, "present"):
			parts[i] = r.start + " - Present"
		case r.start == "" || r.start == r.end:
			parts[i] = r.end
		default:
			parts[i] = r.start + " - " + r.end
		}
	}
	return strings.Join(parts, ", ")
}

// initials returns up to two uppercase initials for an avatar badge.
func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		if strings.HasPrefix(word, "'") {
			continue
		}
		r, _ := utf8.DecodeRuneInString(word)
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}
