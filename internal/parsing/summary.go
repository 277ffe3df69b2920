package parsing

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// SummaryPlaceholder is used when no summary can be found.
const SummaryPlaceholder = "Professional with diverse experience and strong technical skills"

const (
	maxSummaryLength = 300
	// minImplicitSummaryLength is the exclusive lower bound for an unlabeled opening blurb.
	minImplicitSummaryLength = 50
	implicitSummaryFirstLine = 1
	implicitSummaryLastLine  = 8
)

// ExtractSummary prefers the summary section, then the lines after the name,
// then SummaryPlaceholder. The result is never empty.
func ExtractSummary(doc *Document) string {
	if section := doc.Sections.Text(types.SectionSummary, " "); strings.TrimSpace(section) != "" {
		return truncateRunes(section, maxSummaryLength)
	}

	if len(doc.Lines) > implicitSummaryFirstLine {
		opening := strings.Join(doc.Lines[implicitSummaryFirstLine:min(len(doc.Lines), implicitSummaryLastLine)], " ")
		if len([]rune(opening)) > minImplicitSummaryLength {
			return truncateRunes(opening, maxSummaryLength)
		}
	}

	return SummaryPlaceholder
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
