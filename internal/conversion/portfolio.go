package conversion

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/prompts"
	"github.com/jonathan/resume-parser/internal/roles"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	portfolioTemperature float32 = 0.8
	portfolioMaxTokens   int32   = 1500
	portfolioSkillCount          = 6
)

// GeneratePortfolioContent writes portfolio page copy for a converted resume.
// With a nil client, or when the model output is unusable, the basic content is returned.
func GeneratePortfolioContent(ctx context.Context, client llm.Client, c *types.ConvertedResume, roleKey, username string) *types.PortfolioContent {
	if client == nil {
		return BasicPortfolio(c, roleKey)
	}

	content, err := generatePortfolio(ctx, client, c, roleKey, username)
	if err != nil {
		log.Printf("[portfolio] generation failed for %s, using basic content: %v", username, err)
		return BasicPortfolio(c, roleKey)
	}
	return content
}

func generatePortfolio(ctx context.Context, client llm.Client, c *types.ConvertedResume, roleKey, username string) (*types.PortfolioContent, error) {
	role := roles.GetOrDefault(roleKey)

	experience := make([]string, 0, len(c.WorkExperience))
	for _, exp := range c.WorkExperience {
		experience = append(experience, fmt.Sprintf("%s at %s", exp.Position, exp.Company))
	}

	system, err := prompts.Render(prompts.PortfolioFile, "portfolio-system", map[string]string{
		"RoleTitle": role.Title,
	})
	if err != nil {
		return nil, err
	}
	user, err := prompts.Render(prompts.PortfolioFile, "portfolio-user", map[string]string{
		"Username":       username,
		"ConvertedTitle": c.RoleTitle,
		"Summary":        c.Summary,
		"Skills":         strings.Join(c.Skills, ", "),
		"Experience":     strings.Join(experience, ", "),
	})
	if err != nil {
		return nil, err
	}

	resp, err := client.Generate(ctx, llm.Request{
		System:  system,
		Prompt:  user,
		Tier:    llm.TierLite,
		JSON:    true,
		Options: llm.GenerationOptions{Temperature: portfolioTemperature, MaxTokens: portfolioMaxTokens},
	})
	if err != nil {
		return nil, newAPICallError("failed to generate portfolio content", err)
	}

	var content types.PortfolioContent
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(resp.Text)), &content); err != nil {
		return nil, &ParseError{Message: "invalid portfolio JSON", Cause: err}
	}
	if content.Sections == nil {
		content.Sections = []types.PortfolioSection{}
	}
	if err := schemas.ValidatePortfolioContent(&content); err != nil {
		return nil, err
	}
	return &content, nil
}

// BasicPortfolio builds portfolio content without the model.
func BasicPortfolio(c *types.ConvertedResume, roleKey string) *types.PortfolioContent {
	role := roles.GetOrDefault(roleKey)
	display := firstNonEmpty(c.Nickname, c.Contact.Name, "Professional")

	experience := make([]string, 0, len(c.WorkExperience))
	for _, exp := range c.WorkExperience {
		experience = append(experience, fmt.Sprintf("%s at %s", exp.Position, exp.Company))
	}
	skills := c.Skills
	if len(skills) > portfolioSkillCount {
		skills = skills[:portfolioSkillCount]
	}
	projects := make([]string, 0, len(c.Projects))
	for _, p := range c.Projects {
		projects = append(projects, p.Name)
	}

	return &types.PortfolioContent{
		Headline: fmt.Sprintf("%s - Professional %s", display, role.Title),
		HeroText: fmt.Sprintf("Experienced %s with a passion for excellence and customer satisfaction. %s", role.Title, role.Description),
		Sections: []types.PortfolioSection{
			{
				Title:   "Experience",
				Content: "Professional background with proven track record",
				Emoji:   "💼",
				Items:   experience,
			},
			{
				Title:   "Skills",
				Content: "Comprehensive skill set for professional excellence",
				Emoji:   "🛠️",
				Items:   append([]string(nil), skills...),
			},
			{
				Title:   "Projects",
				Content: "Notable projects and achievements",
				Emoji:   "🚀",
				Items:   projects,
			},
		},
		Testimonials: []types.Testimonial{
			{
				Text:   fmt.Sprintf("%s is a dedicated professional who consistently delivers excellent results.", display),
				Author: "Satisfied Customer",
				Role:   "Regular Client",
			},
		},
	}
}
