package parsing

import "github.com/jonathan/resume-parser/internal/types"

const maxAchievements = 5

// ExtractAchievements turns each achievements line into an entry whose title
// and description are both the cleaned line.
func ExtractAchievements(doc *Document) []types.Achievement {
	achievements := []types.Achievement{}
	for _, line := range doc.Sections.Lines(types.SectionAchievements) {
		if len(achievements) == maxAchievements {
			break
		}
		cleaned := stripBullet(line)
		if cleaned == "" {
			continue
		}
		achievements = append(achievements, types.Achievement{Title: cleaned, Description: cleaned})
	}
	return achievements
}
