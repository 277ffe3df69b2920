package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-parser/internal/types"
)

// NamePlaceholder is used when no name can be found or derived.
const NamePlaceholder = "Professional"

const nameScanLines = 5

var (
	nameWord       = regexp.MustCompile(`^[A-Za-z]+$`)
	digitRun       = regexp.MustCompile(`\d{3,}`)
	nameStopWords  = regexp.MustCompile(`(?i)resume|cv|phone|email|address`)
	nonLetterRun   = regexp.MustCompile(`[^A-Za-z]+`)
	emailLocalPart = regexp.MustCompile(`([a-zA-Z0-9._%+-]+)@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// ExtractContact builds the contact block. It never fails and Name is never empty.
func ExtractContact(doc *Document) types.ContactInfo {
	contact := types.ContactInfo{}

	contact.Email = emailPattern.FindString(doc.Text)
	contact.Name = extractName(doc.Lines, doc.Text)

	if phone, _, ok := firstMatch(phonePatterns, doc.Flat); ok {
		contact.Phone = phone
	}

	contact.Location = extractLocation(doc.Lines)

	if m := linkedInPattern.FindStringSubmatch(doc.Text); m != nil {
		contact.LinkedIn = "linkedin.com/in/" + m[1]
	}
	if m := gitHubPattern.FindStringSubmatch(doc.Text); m != nil {
		contact.GitHub = "github.com/" + m[1]
	}

	contact.Website = extractWebsite(doc.headerRegion())

	return contact
}

// extractName scans the first lines for a 2-3 word alphabetic name, then
// derives one from the email local part, then falls back to the placeholder.
func extractName(lines []string, fullText string) string {
	for _, line := range lines[:min(len(lines), nameScanLines)] {
		if name, ok := nameFromLine(line); ok {
			return name
		}
	}

	if name, ok := nameFromEmail(fullText); ok {
		return name
	}

	return NamePlaceholder
}

func nameFromLine(line string) (string, bool) {
	length := utf8.RuneCountInString(line)
	if length <= 3 || length >= 50 {
		return "", false
	}
	if strings.Contains(line, "@") || digitRun.MatchString(line) || nameStopWords.MatchString(line) {
		return "", false
	}

	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 3 {
		return "", false
	}
	for _, w := range words {
		if len(w) <= 1 || !nameWord.MatchString(w) {
			return "", false
		}
	}

	return titleCase(words), true
}

func nameFromEmail(fullText string) (string, bool) {
	m := emailLocalPart.FindStringSubmatch(fullText)
	if m == nil {
		return "", false
	}

	var words []string
	for _, w := range strings.Fields(nonLetterRun.ReplaceAllString(m[1], " ")) {
		if len(w) > 1 {
			words = append(words, w)
		}
	}
	if len(words) < 2 {
		return "", false
	}

	return titleCase(words[:2]), true
}

// titleCase upper-cases the first letter of each word and lower-cases the rest.
func titleCase(words []string) string {
	caser := cases.Title(language.English)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = caser.String(w)
	}
	return strings.Join(out, " ")
}

// extractLocation tries each pattern over every line in priority order.
func extractLocation(lines []string) string {
	for _, p := range locationPatterns {
		for _, line := range lines {
			if v, ok := p.match(line); ok {
				return strings.Trim(v, " ,")
			}
		}
	}
	return ""
}

func extractWebsite(region []string) string {
	for _, line := range region {
		for _, candidate := range websitePattern.FindAllString(line, -1) {
			lower := strings.ToLower(candidate)
			if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
				continue
			}
			return strings.TrimRight(candidate, ".")
		}
	}
	return ""
}
