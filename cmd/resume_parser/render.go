package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/conversion"
	"github.com/jonathan/resume-parser/internal/rendering"
	"github.com/jonathan/resume-parser/internal/roles"
	"github.com/jonathan/resume-parser/internal/store"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a converted resume as an HTML portfolio page or PDF",
	RunE:  runRender,
}

var (
	renderInFile     string
	renderRole       string
	renderUsername   string
	renderPortfolio  string
	renderHTMLFile   string
	renderPDFFile    string
	renderChromePath string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInFile, "in", "i", "", "Path to ConvertedResume JSON file (required)")
	renderCmd.Flags().StringVarP(&renderRole, "role", "r", roles.DefaultKey, "Role key used for colours and portfolio copy")
	renderCmd.Flags().StringVarP(&renderUsername, "username", "u", "", "Username shown in the portfolio link")
	renderCmd.Flags().StringVar(&renderPortfolio, "portfolio", "", "Portfolio content JSON (generated from the resume when empty)")
	renderCmd.Flags().StringVar(&renderHTMLFile, "html", "", "Path to write the HTML page")
	renderCmd.Flags().StringVar(&renderPDFFile, "pdf", "", "Path to write the PDF")
	renderCmd.Flags().StringVar(&renderChromePath, "chrome", "", "Chrome executable (defaults to CHROME_PATH or the system browser)")

	if err := renderCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

// buildProfile assembles an unsaved portfolio profile for rendering.
func buildProfile(converted *types.ConvertedResume, roleKey, username string, content *types.PortfolioContent) *types.PortfolioProfile {
	converted.EnsureArrays()
	if username = store.NormalizeUsername(username); username == "" {
		username = conversion.PortfolioSlug(converted.Contact.Name)
	}
	if content == nil {
		content = conversion.BasicPortfolio(converted, roleKey)
	}
	return &types.PortfolioProfile{
		Username:        username,
		ConvertedResume: *converted,
		PortfolioData:   *content,
		RoleKey:         roleKey,
	}
}

func runRender(cmd *cobra.Command, _ []string) error {
	if renderHTMLFile == "" && renderPDFFile == "" {
		return fmt.Errorf("at least one of --html or --pdf must be provided")
	}
	if !roles.Valid(renderRole) {
		return &roles.UnknownRoleError{Key: renderRole}
	}

	var converted types.ConvertedResume
	if err := readJSON(renderInFile, &converted); err != nil {
		return err
	}
	var content *types.PortfolioContent
	if renderPortfolio != "" {
		content = &types.PortfolioContent{}
		if err := readJSON(renderPortfolio, content); err != nil {
			return err
		}
	}

	profile := buildProfile(&converted, renderRole, renderUsername, content)
	html, err := rendering.RenderHTML(profile)
	if err != nil {
		return err
	}

	if renderHTMLFile != "" {
		if err := ensureDir(renderHTMLFile); err != nil {
			return err
		}
		if err := os.WriteFile(renderHTMLFile, []byte(html), 0644); err != nil {
			return fmt.Errorf("failed to write HTML: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "HTML: %s\n", renderHTMLFile)
	}

	if renderPDFFile != "" {
		chromePath := renderChromePath
		if chromePath == "" {
			chromePath = os.Getenv("CHROME_PATH")
		}
		pdf, err := rendering.NewPDFRenderer(chromePath).PDF(cmd.Context(), html)
		if err != nil {
			return err
		}
		if err := ensureDir(renderPDFFile); err != nil {
			return err
		}
		if err := os.WriteFile(renderPDFFile, pdf, 0644); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "PDF: %s\n", renderPDFFile)
	}
	return nil
}
