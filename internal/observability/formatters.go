// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip truncates s to n runes, marking the cut with "...".
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s (%d):\n", heading, len(items))
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		fmt.Fprintf(sb, "  • %s\n", items[i])
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
	sb.WriteString("\n")
}

// PrintParsedResume outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintParsedResume(r *types.ParsedResume) {
	if r == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:     %s\n", r.Contact.Name)
	if r.Contact.Email != "" {
		fmt.Fprintf(&sb, "Email:    %s\n", r.Contact.Email)
	}
	if r.Contact.Phone != "" {
		fmt.Fprintf(&sb, "Phone:    %s\n", r.Contact.Phone)
	}
	if r.Contact.Location != "" {
		fmt.Fprintf(&sb, "Location: %s\n", r.Contact.Location)
	}
	sb.WriteString("\n")

	jobs := make([]string, 0, len(r.WorkExperience))
	for _, e := range r.WorkExperience {
		line := fmt.Sprintf("%s @ %s", e.Position, e.Company)
		if e.Duration != "" {
			line += fmt.Sprintf(" (%s)", e.Duration)
		}
		jobs = append(jobs, line)
	}
	writeList(&sb, "Experience", jobs, maxItemsToShow)

	schools := make([]string, 0, len(r.Education))
	for _, e := range r.Education {
		schools = append(schools, fmt.Sprintf("%s, %s", e.Degree, e.Institution))
	}
	writeList(&sb, "Education", schools, 3)

	if len(r.Skills) > 0 {
		fmt.Fprintf(&sb, "Skills (%d): %s\n", len(r.Skills), strings.Join(r.Skills[:min(len(r.Skills), 8)], ", "))
	}
	fmt.Fprintf(&sb, "Projects: %d  Certifications: %d  Achievements: %d\n",
		len(r.Projects), len(r.Certifications), len(r.Achievements))

	found := make([]string, 0, len(types.SectionKeys))
	for _, key := range types.SectionKeys {
		if strings.TrimSpace(r.ParsedSections[key]) != "" {
			found = append(found, key)
		}
	}
	if len(found) == 0 {
		sb.WriteString("Sections: none detected")
	} else {
		fmt.Fprintf(&sb, "Sections: %s", strings.Join(found, ", "))
	}

	p.printBox("PARSED RESUME", sb.String())
}

// PrintAttempts outputs each decoding strategy tried and whether it was accepted.
func (p *Printer) PrintAttempts(attempts []ingestion.Attempt) {
	if len(attempts) == 0 {
		return
	}

	var sb strings.Builder
	for i, a := range attempts {
		status := "rejected"
		if a.Accepted {
			status = "accepted"
		}
		fmt.Fprintf(&sb, "#%d  %-15s %s\n", i+1, a.Strategy, status)
		fmt.Fprintf(&sb, "    Length: %d  Readable: %.0f%%", a.Length, a.Ratio*100)
		if a.Error != "" {
			fmt.Fprintf(&sb, "\n    Error: %s", a.Error)
		}
		if i < len(attempts)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("DECODE ATTEMPTS", sb.String())
}

// PrintConvertedResume outputs a summary of a role-themed conversion.
func (p *Printer) PrintConvertedResume(c *types.ConvertedResume, fallback bool) {
	if c == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Role:     %s\n", c.RoleTitle)
	if c.Nickname != "" {
		fmt.Fprintf(&sb, "Nickname: %s\n", c.Nickname)
	}
	if fallback {
		sb.WriteString("Source:   fallback (model output unusable)\n")
	}
	sb.WriteString("\n")

	writeList(&sb, "Skills", c.Skills, maxItemsToShow)
	if c.ColdMail.Subject != "" {
		fmt.Fprintf(&sb, "Cold mail: %s", c.ColdMail.Subject)
	}

	p.printBox("CONVERTED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWarnings outputs parse warnings, if any.
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	var sb strings.Builder
	for i, w := range warnings {
		fmt.Fprintf(&sb, "⚠ %s", w)
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(fmt.Sprintf("WARNINGS (%d)", len(warnings)), sb.String())
}
