package main

import (
	"fmt"

	"github.com/jonathan/resume-parser/internal/conversion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/roles"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a parsed resume into a themed role",
	Long: "Rewrites a parsed resume JSON file for one of the themed roles through Gemini. " +
		"With --offline the deterministic conversion is used and no API call is made.",
	RunE: runConvert,
}

var (
	convertInFile    string
	convertRole      string
	convertUsername  string
	convertOutFile   string
	convertAPIKey    string
	convertOffline   bool
	convertPortfolio string
	convertVerbose   bool
)

func init() {
	convertCmd.Flags().StringVarP(&convertInFile, "in", "i", "", "Path to ParsedResume JSON file (required)")
	convertCmd.Flags().StringVarP(&convertRole, "role", "r", "", "Role key, see the roles command (required)")
	convertCmd.Flags().StringVarP(&convertUsername, "username", "u", "", "Username used for the portfolio link")
	convertCmd.Flags().StringVarP(&convertOutFile, "out", "o", "", "Path to output ConvertedResume JSON file (required)")
	convertCmd.Flags().StringVar(&convertAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	convertCmd.Flags().BoolVar(&convertOffline, "offline", false, "Use the deterministic conversion instead of the model")
	convertCmd.Flags().StringVar(&convertPortfolio, "portfolio", "", "Also write generated portfolio content JSON to this path")
	convertCmd.Flags().BoolVarP(&convertVerbose, "verbose", "v", false, "Print a summary of the converted resume")

	for _, name := range []string{"in", "role", "out"} {
		if err := convertCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, _ []string) error {
	var parsed types.ParsedResume
	if err := readJSON(convertInFile, &parsed); err != nil {
		return err
	}
	parsed.EnsureArrays()

	role, err := roles.Get(convertRole)
	if err != nil {
		return err
	}

	var (
		converted *types.ConvertedResume
		portfolio *types.PortfolioContent
		fallback  bool
	)
	if convertOffline {
		converted = conversion.Fallback(&parsed, role)
		fallback = true
		if convertPortfolio != "" {
			portfolio = conversion.BasicPortfolio(converted, role.Key)
		}
	} else {
		apiKey := resolveAPIKey(convertAPIKey)
		if apiKey == "" {
			return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable, use --api-key, or pass --offline)")
		}
		result, err := conversion.ConvertWithAPIKey(cmd.Context(), &parsed, role.Key, convertUsername, apiKey,
			conversion.Options{IncludePortfolio: convertPortfolio != ""})
		if err != nil {
			return fmt.Errorf("failed to convert resume: %w", err)
		}
		converted, portfolio, fallback = result.Resume, result.Portfolio, result.Fallback
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Model: %s, tokens: %d\n", result.Model, result.Usage.TotalTokens)
	}

	if err := schemas.ValidateConvertedResume(converted); err != nil {
		return fmt.Errorf("converted resume does not validate against schema: %w", err)
	}
	if err := writeJSON(convertOutFile, converted); err != nil {
		return err
	}
	if portfolio != nil {
		if err := writeJSON(convertPortfolio, portfolio); err != nil {
			return err
		}
	}

	if convertVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintConvertedResume(converted, fallback)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Converted to %s\n", role.Title)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", convertOutFile)
	return nil
}
