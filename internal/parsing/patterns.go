package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// fieldPattern pairs a compiled pattern with the tag it reports.
// Tables of fieldPatterns are tested in slice order and the first match wins.
type fieldPattern struct {
	tag     string
	pattern *regexp.Regexp
	// group selects the submatch to return; 0 is the whole match.
	group int
}

// match returns the selected submatch of the first occurrence in text.
func (p fieldPattern) match(text string) (string, bool) {
	m := p.pattern.FindStringSubmatch(text)
	if m == nil || p.group >= len(m) {
		return "", false
	}
	value := strings.TrimSpace(m[p.group])
	if value == "" {
		return "", false
	}
	return value, true
}

// firstMatch tries each pattern in priority order against text.
func firstMatch(table []fieldPattern, text string) (value, tag string, ok bool) {
	for _, p := range table {
		if v, found := p.match(text); found {
			return v, p.tag, true
		}
	}
	return "", "", false
}

// sectionHeaders recognises whole-line headings, in priority order.
var sectionHeaders = []fieldPattern{
	{tag: types.SectionExperience, pattern: headerPattern(`work\s+experience|experience|employment|professional\s+experience|career\s+history`)},
	{tag: types.SectionEducation, pattern: headerPattern(`education|academic\s+background|qualifications`)},
	{tag: types.SectionSkills, pattern: headerPattern(`skills|technical\s+skills|competencies|technologies|expertise`)},
	{tag: types.SectionProjects, pattern: headerPattern(`projects|portfolio|selected\s+projects|key\s+projects`)},
	{tag: types.SectionCertifications, pattern: headerPattern(`certifications|licenses|credentials`)},
	{tag: types.SectionAchievements, pattern: headerPattern(`achievements|awards|accomplishments|honors`)},
	{tag: types.SectionSummary, pattern: headerPattern(`summary|profile|objective|about|professional\s+summary`)},
}

// headerPattern anchors a heading vocabulary to the whole line. A trailing colon is tolerated.
func headerPattern(vocabulary string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^(?:` + vocabulary + `)\s*:?$`)
}

// phonePatterns: +1 North American, bare grouped 10-digit, then international.
var phonePatterns = []fieldPattern{
	{tag: "nanp-country-code", pattern: regexp.MustCompile(`\+?1[-.\s]?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)},
	{tag: "nanp", pattern: regexp.MustCompile(`\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)},
	{tag: "international", pattern: regexp.MustCompile(`\+[0-9]{1,3}[-.\s]?[0-9]{3,4}[-.\s]?[0-9]{3,4}[-.\s]?[0-9]{3,4}`)},
}

// locationPatterns: "City, ST [ZIP]", "City, Region", then a labelled line.
var locationPatterns = []fieldPattern{
	{tag: "city-state", pattern: regexp.MustCompile(`[A-Za-z\s]+,\s*[A-Z]{2}\b(?:\s*\d{5})?`)},
	{tag: "city-region", pattern: regexp.MustCompile(`[A-Za-z\s]+,\s*[A-Za-z\s]+(?:\s*\d{5})?`)},
	{tag: "labelled", pattern: regexp.MustCompile(`(?i)(?:address|location)[:\s]+([A-Za-z\s,]+)`), group: 1},
}

var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	linkedInPattern = regexp.MustCompile(`(?i)(?:linkedin\.com/in/|linkedin\.com/profile/view\?id=)([a-zA-Z0-9-]+)`)
	gitHubPattern   = regexp.MustCompile(`(?i)github\.com/([a-zA-Z0-9-]+)`)
	websitePattern  = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s,;|<>()]+`)
)

var (
	bulletLine      = regexp.MustCompile(`^[•·▪●◦‣\-*–]\s+`)
	bulletMarker    = regexp.MustCompile(`^[•·▪●◦‣\-*–]\s*`)
	leadingYear     = regexp.MustCompile(`^\d{4}`)
	yearToken       = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	dateRange       = regexp.MustCompile(`(?i)(\d{4})(?:\s*[-–—]\s*(\d{4}|present|current))?`)
	currentRoleWord = regexp.MustCompile(`(?i)present|current`)
)

// experiencePattern captures "<span> <sep> <span> <sep> <year>[ - <year|present|current>]".
// Spans use horizontal whitespace only so a match never crosses a line.
var experiencePattern = regexp.MustCompile(
	`(?i)([A-Za-z \t&.,]+)` +
		`(?:[ \t]*[-–—][ \t]*|[ \t]+at[ \t]+|[ \t]*,[ \t]*)` +
		`([A-Za-z \t&.,]+)` +
		`(?:[ \t]*[-–—][ \t]*|[ \t]*,[ \t]*|[ \t]+)` +
		`(\d{4}(?:[ \t]*[-–—][ \t]*(?:\d{4}|present|current))?)`)

// degreePattern captures "<degree> [of|in] <field> <from|at|-> <institution>[, year]".
// Full degree words match in any case; abbreviations must be written in capitals.
var degreePattern = regexp.MustCompile(
	`\b((?i:bachelor(?:'s)?|master(?:'s)?|doctorate|ph\.?d\.?)|B\.[A-Z][A-Za-z]*\.?|M\.[A-Z][A-Za-z]*\.?|MBA|BSc|MSc|BEng|MEng|BTech|MTech|B\.?S\.?|B\.?A\.?|M\.?S\.?|M\.?A\.?)` +
		`[ \t]+(?i:(?:of|in)[ \t]+)?` +
		`([A-Za-z \t,]+)` +
		`(?:[ \t]*[-–—][ \t]*|[ \t]+(?i:from|at)[ \t]+)` +
		`([A-Za-z \t,&.]+)` +
		`(?:[ \t]*,?[ \t]*(\d{4}))?`)

var (
	institutionPattern = regexp.MustCompile(`(?i:University|College|Institute|School)[ \t]+(?i:of)[ \t]+[A-Za-z \t,]+|[A-Za-z \t,]+[ \t]+(?i:University|College|Institute)`)
	gpaPattern         = regexp.MustCompile(`(?i)\bGPA\b[:\s]*([0-4]\.\d{1,2})`)
)

var (
	projectTechPattern = regexp.MustCompile(`(?i)(?:technologies|tech|stack):\s*(.+)`)
	gitHubRepoPattern  = regexp.MustCompile(`(?i)github\.com/[a-zA-Z0-9-]+/[a-zA-Z0-9._-]+`)
	commaSkillPattern  = regexp.MustCompile(`([A-Za-z]+(?:\.[A-Za-z]+)*(?:\s+[A-Za-z]+)*),\s*`)
)

// stripBullet removes a leading bullet marker and surrounding space.
func stripBullet(line string) string {
	return strings.TrimSpace(bulletMarker.ReplaceAllString(line, ""))
}

// isBullet reports whether line starts with a bullet marker followed by space.
func isBullet(line string) bool {
	return bulletLine.MatchString(line)
}
