package parsing

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	maxDescriptionLines = 5
	// descriptionWindow is how many lines after a matched entry are inspected.
	descriptionWindow = 5
	// minPlainDescriptionLength is the exclusive lower bound for unbulleted description lines.
	minPlainDescriptionLength = 20
)

// Placeholder values for the synthesized bullet-only entry.
const (
	FallbackCompany   = "Professional Experience"
	FallbackPosition  = "Various Roles"
	FallbackStartDate = "2020"
	FallbackEndDate   = "Present"
)

// ExtractExperience scans the experience section (or the whole document when
// the section is empty) for "A - B - year" entries. When nothing matches, bullet
// lines of the experience section are gathered into one generic entry.
func ExtractExperience(doc *Document) []types.WorkExperience {
	text := doc.sectionOrFullText(types.SectionExperience)
	lines := strings.Split(text, "\n")

	matches := experiencePattern.FindAllStringSubmatchIndex(text, -1)
	matchLines := make(map[int]bool, len(matches))
	for _, m := range matches {
		matchLines[lineIndexAt(text, m[0])] = true
	}

	experiences := make([]types.WorkExperience, 0, len(matches))
	for _, m := range matches {
		first := cleanSpan(text[m[2]:m[3]])
		second := cleanSpan(text[m[4]:m[5]])
		if first == "" || second == "" {
			continue
		}

		company, position := assignCompanyPosition(first, second)
		start, end := ParseDateRange(text[m[6]:m[7]])

		experiences = append(experiences, types.WorkExperience{
			Company:       company,
			Position:      position,
			StartDate:     start,
			EndDate:       end,
			Duration:      start + " - " + end,
			Description:   collectDescription(lines, lineIndexAt(text, m[0]), matchLines),
			IsCurrentRole: IsCurrentRole(end),
		})
	}

	if len(experiences) > 0 {
		return experiences
	}

	sectionLines := doc.Sections.Lines(types.SectionExperience)
	if len(sectionLines) == 0 {
		sectionLines = doc.Lines
	}
	return bulletFallback(sectionLines)
}

// assignCompanyPosition treats the longer span as the position and the shorter
// as the company. Equal lengths keep the first span as the company.
func assignCompanyPosition(first, second string) (company, position string) {
	if utf8.RuneCountInString(first) > utf8.RuneCountInString(second) {
		return second, first
	}
	return first, second
}

// ParseDateRange extracts the start year and the end year or "present"/"current".
// The end defaults to "Present"; text without a year yields the fallback range.
func ParseDateRange(s string) (start, end string) {
	m := dateRange.FindStringSubmatch(s)
	if m == nil {
		return FallbackStartDate, FallbackEndDate
	}
	start = m[1]
	end = m[2]
	if end == "" {
		end = FallbackEndDate
	}
	return start, end
}

// IsCurrentRole reports whether an end date denotes an ongoing role.
func IsCurrentRole(endDate string) bool {
	return currentRoleWord.MatchString(endDate)
}

// collectDescription gathers up to five description lines following the
// matched line, stopping at the next matched entry.
func collectDescription(lines []string, matchLine int, matchLines map[int]bool) []string {
	description := []string{}
	for i := matchLine + 1; i < len(lines) && i <= matchLine+descriptionWindow; i++ {
		if matchLines[i] {
			break
		}
		line := strings.TrimSpace(lines[i])
		switch {
		case bulletMarker.MatchString(line):
			if text := stripBullet(line); text != "" {
				description = append(description, text)
			}
		case utf8.RuneCountInString(line) > minPlainDescriptionLength && !leadingYear.MatchString(line):
			description = append(description, line)
		}
		if len(description) == maxDescriptionLines {
			break
		}
	}
	return description
}

func bulletFallback(sectionLines []string) []types.WorkExperience {
	var bullets []string
	for _, line := range sectionLines {
		if isBullet(line) {
			bullets = append(bullets, stripBullet(line))
		}
	}
	if len(bullets) == 0 {
		return []types.WorkExperience{}
	}

	return []types.WorkExperience{{
		Company:       FallbackCompany,
		Position:      FallbackPosition,
		StartDate:     FallbackStartDate,
		EndDate:       FallbackEndDate,
		Duration:      FallbackStartDate + " - " + FallbackEndDate,
		Description:   bullets,
		IsCurrentRole: true,
	}}
}

// lineIndexAt returns the zero-based line number of byte offset pos in text.
func lineIndexAt(text string, pos int) int {
	return strings.Count(text[:pos], "\n")
}

// cleanSpan trims whitespace and stray separators from a captured span.
func cleanSpan(s string) string {
	return strings.Trim(s, " \t,")
}
