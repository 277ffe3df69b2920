package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/types"
)

// maxSkills caps the skills list.
const maxSkills = 20

// skillVocabulary is the closed list of recognised technology terms, in detection order.
var skillVocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Rust", "Swift", "Kotlin",
	"React", "Vue", "Angular", "Node.js", "Express", "Django", "Flask", "Spring", "Laravel",
	"HTML", "CSS", "SASS", "LESS", "Tailwind", "Bootstrap",
	"MongoDB", "MySQL", "PostgreSQL", "Redis", "SQLite",
	"Docker", "Kubernetes", "Jenkins", "CI/CD", "DevOps",
	"AWS", "Azure", "GCP", "Heroku", "Vercel",
	"Git", "GitHub", "GitLab", "SVN",
	"Linux", "Windows", "macOS",
	"Figma", "Adobe", "Photoshop", "Illustrator",
}

// skillAliases maps common free-form spellings to their canonical names.
var skillAliases = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"node":       "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"mongo":      "MongoDB",
	"mongodb":    "MongoDB",
}

type vocabularyTerm struct {
	name    string
	pattern *regexp.Regexp
}

// vocabularyPatterns matches each term case-insensitively with non-word
// boundaries on both sides, so terms ending in symbols such as C++ still match.
var vocabularyPatterns = compileVocabulary(skillVocabulary)

func compileVocabulary(terms []string) []vocabularyTerm {
	out := make([]vocabularyTerm, len(terms))
	for i, term := range terms {
		out[i] = vocabularyTerm{
			name:    term,
			pattern: regexp.MustCompile(`(?i)(?:^|[^A-Za-z0-9_])` + regexp.QuoteMeta(term) + `(?:[^A-Za-z0-9_]|$)`),
		}
	}
	return out
}

// CanonicalSkill returns the canonical spelling of a skill name.
func CanonicalSkill(name string) string {
	trimmed := strings.TrimSpace(name)
	if canonical, ok := skillAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// skillSet is an insertion-ordered, case-insensitive set with a capacity.
type skillSet struct {
	seen  map[string]bool
	items []string
}

func newSkillSet() *skillSet {
	return &skillSet{seen: make(map[string]bool), items: []string{}}
}

func (s *skillSet) add(skill string) {
	if skill == "" || len(s.items) >= maxSkills {
		return
	}
	key := strings.ToLower(skill)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.items = append(s.items, skill)
}

// ExtractSkills detects vocabulary terms and comma-separated tokens in the
// skills section, then vocabulary terms on bullet lines anywhere.
func ExtractSkills(doc *Document) []string {
	skills := newSkillSet()
	sectionText := doc.Sections.Text(types.SectionSkills, " ")

	if sectionText != "" {
		for _, term := range vocabularyPatterns {
			if term.pattern.MatchString(sectionText) {
				skills.add(term.name)
			}
		}

		for _, m := range commaSkillPattern.FindAllStringSubmatch(sectionText, -1) {
			token := strings.TrimSpace(m[1])
			if n := utf8.RuneCountInString(token); n > 2 && n < 30 {
				skills.add(CanonicalSkill(token))
			}
		}
	}

	for _, line := range doc.Lines {
		if !isBullet(line) {
			continue
		}
		for _, term := range vocabularyPatterns {
			if term.pattern.MatchString(line) {
				skills.add(term.name)
			}
		}
	}

	return skills.items
}
