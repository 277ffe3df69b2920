package conversion

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/roles"
	"github.com/jonathan/resume-parser/internal/types"
)

// Cold mail defaults.
const (
	DefaultCompanyName = "Your Company"
	DefaultPosition    = "Available Position"
	defaultGreeting    = "👋 Greetings!"
	defaultClosing     = "Looking forward to contributing to your team!"
	coldMailTopSkills  = 3
)

// PortfolioHost is the public host portfolio links point at.
var PortfolioHost = "jobilla.com"

var whitespaceRun = regexp.MustCompile(`\s+`)

// PortfolioSlug derives the URL path segment for a person's portfolio.
func PortfolioSlug(name string) string {
	slug := whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	if slug == "" {
		return "portfolio"
	}
	return slug
}

// stripSymbols drops emoji and other pictographs.
func stripSymbols(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.Is(unicode.So, r) || unicode.Is(unicode.Sk, r) || r == '\uFE0F' || r == '\u200D' {
			return -1
		}
		return r
	}, s))
}

// ColdMail renders the outreach email for a converted resume.
// Unknown role keys use a generic greeting and closing.
func ColdMail(c *types.ConvertedResume, roleKey, companyName, position string) string {
	greeting, closing := defaultGreeting, defaultClosing
	if role, err := roles.Get(roleKey); err == nil {
		greeting, closing = role.Greeting, role.Closing
	}
	companyName = firstNonEmpty(companyName, DefaultCompanyName)
	position = firstNonEmpty(position, DefaultPosition)

	skills := c.Skills
	if len(skills) > coldMailTopSkills {
		skills = skills[:coldMailTopSkills]
	}
	numbered := make([]string, 0, len(skills))
	for i, skill := range skills {
		numbered = append(numbered, fmt.Sprintf("%d. %s", i+1, skill))
	}

	achievement := "I have consistently delivered excellent results in my professional journey."
	if len(c.WorkExperience) > 0 {
		latest := c.WorkExperience[0]
		did := "contributed to various projects"
		if len(latest.Description) > 0 && latest.Description[0] != "" {
			did = strings.ToLower(latest.Description[0])
		}
		achievement = fmt.Sprintf("At %s, I served as %s where I successfully %s.", latest.Company, latest.Position, did)
	}

	portfolio := PortfolioHost + "/" + PortfolioSlug(c.Contact.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s - %s for %s\n\n", stripSymbols(greeting), c.Nickname, position)
	fmt.Fprintf(&b, "Dear Hiring Team at %s,\n\n", companyName)
	fmt.Fprintf(&b, "%s\n\n", greeting)
	fmt.Fprintf(&b, "I hope this email finds you well! My name is %s, and I am a passionate %s with a proven track record of delivering exceptional results.\n\n", c.Nickname, c.RoleTitle)
	fmt.Fprintf(&b, "💫 **Why I'm Perfect for %s:**\n\n", companyName)
	fmt.Fprintf(&b, "🌟 **Professional Summary:**\n%s\n\n", c.Summary)
	fmt.Fprintf(&b, "🛠️ **Key Expertise:**\n%s\n\n", strings.Join(numbered, "\n"))
	fmt.Fprintf(&b, "🚀 **Recent Achievement:**\n%s\n\n", achievement)
	b.WriteString("💡 **What I Bring to Your Team:**\n")
	fmt.Fprintf(&b, "- Deep expertise in %s operations\n", strings.ToLower(c.RoleTitle))
	b.WriteString("- Strong problem-solving abilities with a creative approach\n")
	b.WriteString("- Excellent customer service and communication skills\n")
	b.WriteString("- Proven ability to work in fast-paced environments\n")
	b.WriteString("- Commitment to quality and continuous improvement\n\n")
	b.WriteString("📋 **Portfolio & Resume:**\n")
	fmt.Fprintf(&b, "I would love to share my complete portfolio showcasing my work and achievements. Please find my detailed resume attached, and feel free to check out my online portfolio at %s.\n\n", portfolio)
	b.WriteString("🤝 **Next Steps:**\n")
	fmt.Fprintf(&b, "I would be thrilled to discuss how my unique background and skills can contribute to %s's success. I'm available for a call or meeting at your convenience.\n\n", companyName)
	fmt.Fprintf(&b, "%s\n\n", closing)
	fmt.Fprintf(&b, "Best regards,\n%s\n📧 %s\n📱 %s\n🌐 Portfolio: %s\n\n", c.Nickname, c.Contact.Email, c.Contact.Phone, portfolio)
	b.WriteString("---\n*P.S. Don't worry - despite my unconventional background, I bring the same dedication and professionalism to every project! Let's create something amazing together! 🚀*")
	return b.String()
}
