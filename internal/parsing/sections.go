package parsing

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// contactLineLimit is how many leading lines may land in the contact bucket
// before any heading is seen.
const contactLineLimit = 10

// SectionMap maps a section key to its lines in document order.
type SectionMap map[string][]string

// Lines returns the lines of a section, or nil when the section is absent.
func (m SectionMap) Lines(key string) []string {
	return m[key]
}

// Text joins the lines of a section with sep.
func (m SectionMap) Text(key, sep string) string {
	return strings.Join(m[key], sep)
}

// Empty reports whether a section has no captured lines.
func (m SectionMap) Empty(key string) bool {
	return len(m[key]) == 0
}

// MatchHeader reports which section a heading line opens.
func MatchHeader(line string) (string, bool) {
	_, tag, ok := firstMatch(sectionHeaders, strings.TrimSpace(line))
	return tag, ok
}

// Segment assigns every non-heading line to the section opened by the most
// recent heading. Lines before the first heading go to the contact bucket
// while their index is below contactLineLimit and are dropped afterwards.
// A repeated heading keeps appending to the same bucket.
func Segment(lines []string) SectionMap {
	sections := make(SectionMap)
	current := ""

	for i, line := range lines {
		if key, ok := MatchHeader(line); ok {
			current = key
			if _, exists := sections[key]; !exists {
				sections[key] = []string{}
			}
			continue
		}

		switch {
		case current != "":
			sections[current] = append(sections[current], line)
		case i < contactLineLimit:
			sections[types.SectionContact] = append(sections[types.SectionContact], line)
		}
	}

	return sections
}
