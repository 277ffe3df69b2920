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

// DefaultUsername is used in the prompt when the caller gives none.
const DefaultUsername = "professional"

// Options tunes a conversion.
type Options struct {
	Temperature      float32
	MaxTokens        int32
	IncludePortfolio bool
}

// OptionsFrom maps request options onto conversion options.
func OptionsFrom(o types.ConversionOptions) Options {
	return Options{Temperature: o.Temperature, MaxTokens: o.MaxTokens, IncludePortfolio: o.IncludePortfolio}
}

// Result is the outcome of a conversion.
type Result struct {
	Resume *types.ConvertedResume
	Model  string
	Usage  llm.Usage
	// Fallback is set when the model output was unusable and the
	// deterministic conversion was returned instead.
	Fallback  bool
	Portfolio *types.PortfolioContent
}

// Converter turns parsed resumes into themed ones.
type Converter struct {
	client llm.Client
}

// NewConverter creates a Converter backed by client.
func NewConverter(client llm.Client) *Converter {
	return &Converter{client: client}
}

// ConvertWithAPIKey creates a Gemini client for apiKey and runs one conversion.
func ConvertWithAPIKey(ctx context.Context, parsed *types.ParsedResume, roleKey, username, apiKey string, opts Options) (*Result, error) {
	if apiKey == "" {
		return nil, &APICallError{Message: "API key is required", Kind: FailureAuth}
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, newAPICallError("failed to create LLM client", err)
	}
	defer func() { _ = client.Close() }()

	return NewConverter(client).Convert(ctx, parsed, roleKey, username, opts)
}

// Convert rewrites parsed for the role named by roleKey.
// An unknown role returns *roles.UnknownRoleError. Provider failures return
// *APICallError. Output the model gets wrong is replaced by Fallback.
func (c *Converter) Convert(ctx context.Context, parsed *types.ParsedResume, roleKey, username string, opts Options) (*Result, error) {
	if parsed == nil {
		return nil, fmt.Errorf("parsed resume is required")
	}
	role, err := roles.Get(roleKey)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(username) == "" {
		username = DefaultUsername
	}

	system, user, err := BuildPrompt(parsed, role, username)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Generate(ctx, llm.Request{
		System: system,
		Prompt: user,
		Tier:   llm.TierStandard,
		JSON:   true,
		Options: llm.GenerationOptions{
			Temperature: opts.Temperature,
			MaxTokens:   opts.MaxTokens,
		},
	})
	if err != nil {
		return nil, newAPICallError("failed to generate conversion", err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, &APICallError{Message: "empty response from model", Kind: FailureOther}
	}

	result := &Result{Model: resp.Model, Usage: resp.Usage}
	converted, err := ParseResponse(resp.Text, parsed, role)
	if err == nil {
		err = schemas.ValidateConvertedResume(converted)
	}
	if err != nil {
		log.Printf("[convert] model output unusable for role %s, using fallback: %v", role.Key, err)
		converted = Fallback(parsed, role)
		result.Fallback = true
	}
	result.Resume = converted

	if opts.IncludePortfolio {
		result.Portfolio = GeneratePortfolioContent(ctx, c.client, converted, role.Key, username)
	}
	return result, nil
}

// BuildPrompt renders the system and user prompts for a conversion.
func BuildPrompt(parsed *types.ParsedResume, role roles.Role, username string) (system, user string, err error) {
	resumeJSON, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal parsed resume: %w", err)
	}

	tone := make([]string, 0, len(role.ToneInstructions))
	for _, line := range role.ToneInstructions {
		tone = append(tone, "- "+line)
	}

	system, err = prompts.Render(prompts.ConversionFile, "convert-system", map[string]string{
		"ThemeTitle":       role.ThemeTitle,
		"NicknameStyle":    role.Nickname,
		"ThemeSummary":     role.Summary,
		"TechMappings":     strings.Join(role.TechMappingLines(), "\n"),
		"ToneInstructions": strings.Join(tone, "\n"),
	})
	if err != nil {
		return "", "", err
	}

	user, err = prompts.Render(prompts.ConversionFile, "convert-user", map[string]string{
		"Username":   username,
		"ResumeJSON": string(resumeJSON),
		"ThemeTitle": role.ThemeTitle,
		"Nickname":   role.NicknameFor(parsed.Contact.Name),
	})
	if err != nil {
		return "", "", err
	}
	return system, user, nil
}
