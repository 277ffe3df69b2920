package parsing

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Placeholders for entries built from a bare institution name.
const (
	DegreePlaceholder = "Degree"
	FieldPlaceholder  = "Field of Study"
	DateUnknown       = "N/A"
)

// ExtractEducation matches degree lines in the education section, or in the
// whole document when the section is empty. Without a degree match the first
// institution-like phrase yields a single placeholder entry.
func ExtractEducation(doc *Document) []types.Education {
	text := doc.sectionOrFullText(types.SectionEducation)
	lines := strings.Split(text, "\n")

	matches := degreePattern.FindAllStringSubmatchIndex(text, -1)
	education := make([]types.Education, 0, len(matches))
	for _, m := range matches {
		degree := strings.TrimSpace(text[m[2]:m[3]])
		field := cleanSpan(text[m[4]:m[5]])
		institution := cleanSpan(text[m[6]:m[7]])
		if degree == "" || institution == "" {
			continue
		}

		entry := types.Education{
			Institution: institution,
			Degree:      degree,
			Field:       field,
			EndDate:     DateUnknown,
		}
		if m[8] >= 0 {
			entry.EndDate = text[m[8]:m[9]]
		}

		lineIdx := lineIndexAt(text, m[0])
		line := lines[lineIdx]
		if r := dateRange.FindStringSubmatch(line[m[0]-lineStart(text, lineIdx):]); r != nil && r[2] != "" {
			entry.StartDate = r[1]
			entry.EndDate = r[2]
		}
		entry.GPA = findGPA(lines, lineIdx)

		education = append(education, entry)
	}

	if len(education) > 0 {
		return education
	}

	return institutionFallback(lines)
}

func institutionFallback(lines []string) []types.Education {
	for _, line := range lines {
		match := institutionPattern.FindString(line)
		if match == "" {
			continue
		}
		institution := cleanSpan(match)
		if institution == "" {
			continue
		}

		endDate := DateUnknown
		if years := yearToken.FindAllString(line, -1); len(years) > 0 {
			endDate = years[len(years)-1]
		}
		return []types.Education{{
			Institution: institution,
			Degree:      DegreePlaceholder,
			Field:       FieldPlaceholder,
			EndDate:     endDate,
		}}
	}
	return []types.Education{}
}

// findGPA looks for a GPA on the degree line or the line right after it.
func findGPA(lines []string, idx int) string {
	for i := idx; i < len(lines) && i <= idx+1; i++ {
		if i > idx && degreePattern.MatchString(lines[i]) {
			break
		}
		if m := gpaPattern.FindStringSubmatch(lines[i]); m != nil {
			return m[1]
		}
	}
	return ""
}

// lineStart returns the byte offset where line idx begins in text.
func lineStart(text string, idx int) int {
	offset := 0
	for i := 0; i < idx; i++ {
		next := strings.IndexByte(text[offset:], '\n')
		if next < 0 {
			return len(text)
		}
		offset += next + 1
	}
	return offset
}
