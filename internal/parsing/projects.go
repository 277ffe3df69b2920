package parsing

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	maxProjects = 5
	// projectGroupSize is name, description and an optional technologies line.
	projectGroupSize = 3
)

// ExtractProjects groups the projects section into runs of three lines.
// An empty section yields no projects.
func ExtractProjects(doc *Document) []types.Project {
	lines := doc.Sections.Lines(types.SectionProjects)
	projects := []types.Project{}

	for i := 0; i < len(lines) && len(projects) < maxProjects; i += projectGroupSize {
		group := lines[i:min(i+projectGroupSize, len(lines))]

		project := types.Project{
			Name:         stripBullet(group[0]),
			Description:  []string{},
			Technologies: []string{},
		}
		if len(group) > 1 {
			if desc := stripBullet(group[1]); desc != "" {
				project.Description = append(project.Description, desc)
			}
		}
		if len(group) > 2 {
			project.Technologies = splitTechnologies(group[2])
		}

		for _, line := range group {
			if project.GitHub == "" {
				if repo := gitHubRepoPattern.FindString(line); repo != "" {
					project.GitHub = "https://" + strings.TrimPrefix(strings.TrimPrefix(repo, "https://"), "http://")
					continue
				}
			}
			if project.URL == "" {
				if url := websitePattern.FindString(line); url != "" && !strings.Contains(strings.ToLower(url), "github.com") {
					project.URL = url
				}
			}
		}

		projects = append(projects, project)
	}

	return projects
}

func splitTechnologies(line string) []string {
	m := projectTechPattern.FindStringSubmatch(line)
	if m == nil {
		return []string{}
	}
	technologies := []string{}
	for _, t := range strings.Split(m[1], ",") {
		if t = strings.TrimSpace(t); t != "" {
			technologies = append(technologies, t)
		}
	}
	return technologies
}
