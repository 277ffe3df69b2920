// Package export writes parsed resumes as XLSX workbooks.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/xuri/excelize/v2"
)

// Sheet names in workbook order.
const (
	SheetContact        = "Contact"
	SheetExperience     = "Experience"
	SheetEducation      = "Education"
	SheetSkills         = "Skills"
	SheetProjects       = "Projects"
	SheetCertifications = "Certifications"
	SheetAchievements   = "Achievements"
	SheetSections       = "Sections"
)

// maxCellLen keeps long section text under the Excel cell limit.
const maxCellLen = 32000

type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
}

func (w *sheetWriter) write(values ...any) error {
	for i, v := range values {
		if s, ok := v.(string); ok {
			v = truncate(s, maxCellLen)
		}
		cell, err := excelize.CoordinatesToCellName(i+1, w.row)
		if err != nil {
			return err
		}
		if err := w.f.SetCellValue(w.sheet, cell, v); err != nil {
			return err
		}
	}
	w.row++
	return nil
}

// ResumeXLSX renders r as a workbook with one sheet per section.
func ResumeXLSX(r *types.ParsedResume) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("parsed resume is required")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetContact); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}
	for _, name := range []string{SheetExperience, SheetEducation, SheetSkills, SheetProjects, SheetCertifications, SheetAchievements, SheetSections} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("xlsx sheet %s: %w", name, err)
		}
	}

	steps := []func(*excelize.File, *types.ParsedResume) error{
		writeContact,
		writeExperience,
		writeEducation,
		writeSkills,
		writeProjects,
		writeCertifications,
		writeAchievements,
		writeSections,
	}
	for _, step := range steps {
		if err := step(f, r); err != nil {
			return nil, fmt.Errorf("xlsx write: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		for _, name := range f.GetSheetList() {
			_ = f.SetRowStyle(name, 1, 1, headerStyle)
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteResumeXLSX renders r and writes the workbook to path.
func WriteResumeXLSX(r *types.ParsedResume, path string) error {
	data, err := ResumeXLSX(r)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeContact(f *excelize.File, r *types.ParsedResume) error {
	w := &sheetWriter{f: f, sheet: SheetContact, row: 1}
	c := r.Contact
	rows := [][2]string{
		{"Name", c.Name},
		{"Email", c.Email},
		{"Phone", c.Phone},
		{"Location", c.Location},
		{"LinkedIn", c.LinkedIn},
		{"GitHub", c.GitHub},
		{"Portfolio", c.Portfolio},
		{"Website", c.Website},
		{"Summary", r.Summary},
	}
	if err := w.write("Field", "Value"); err != nil {
		return err
	}
	for _, kv := range rows {
		if err := w.write(kv[0], kv[1]); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(SheetContact, "A", "A", 14)
	_ = f.SetColWidth(SheetContact, "B", "B", 60)
	return nil
}

func writeExperience(f *excelize.File, r *types.ParsedResume) error {
	w := &sheetWriter{f: f, sheet: SheetExperience, row: 1}
	if err := w.write("Company", "Position", "Start", "End", "Duration", "Current", "Location", "Description"); err != nil {
		return err
	}
	for _, e := range r.WorkExperience {
		if err := w.write(e.Company, e.Position, e.StartDate, e.EndDate, e.Duration, e.IsCurrentRole, e.Location, strings.Join(e.Description, "\n")); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(SheetExperience, "A", "B", 28)
	_ = f.SetColWidth(SheetExperience, "C", "G", 14)
	_ = f.SetColWidth(SheetExperience, "H", "H", 80)
	return nil
}

func writeEducation(f *excelize.File, r *types.ParsedResume) error {
	w := &sheetWriter{f: f, sheet: SheetEducation, row: 1}
	if err := w.write("Institution", "Degree", "Field", "Start", "End", "GPA", "Location"); err != nil {
		return err
	}
	for _, e := range r.Education {
		if err := w.write(e.Institution, e.Degree, e.Field, e.StartDate, e.EndDate, e.GPA, e.Location); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(SheetEducation, "A", "C", 30)
	return nil
}

func writeSkills(f *excelize.File, r *types.ParsedResume) error {
	w := &sheetWriter{f: f, sheet: SheetSkills, row: 1}
	if err := w.write("Skill"); err != nil {
		return err
	}
	for _, s := range r.Skills {
		if err := w.write(s); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(SheetSkills, "A", "A", 30)
	return nil
}

func writeProjects(f *excelize.File, r *types.ParsedResume) error {
	w := &sheetWriter{f: f, sheet: SheetProjects, row: 1}
	if err := w.write("Name", "Technologies", "URL", "GitHub", "Description"); err != nil {
		return err
	}
	for _, p := range r.Projects {
		if err := w.write(p.Name, strings.Join(p.Technologies, ", "), p.URL, p.GitHub, strings.Join(p.Description, "\n")); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(SheetProjects, "A", "B", 30)
	_ = f.SetColWidth(SheetProjects, "E", "E", 80)
	return nil
}

func writeCertifications(f *excelize.File, r *types.ParsedResume) error {
	w := &sheetWriter{f: f, sheet: SheetCertifications, row: 1}
	if err := w.write("Name", "Issuer", "Date", "Credential ID", "URL"); err != nil {
		return err
	}
	for _, c := range r.Certifications {
		if err := w.write(c.Name, c.Issuer, c.Date, c.CredentialID, c.URL); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(SheetCertifications, "A", "B", 30)
	return nil
}

func writeAchievements(f *excelize.File, r *types.ParsedResume) error {
	w := &sheetWriter{f: f, sheet: SheetAchievements, row: 1}
	if err := w.write("Title", "Description", "Date", "Organization"); err != nil {
		return err
	}
	for _, a := range r.Achievements {
		if err := w.write(a.Title, a.Description, a.Date, a.Organization); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(SheetAchievements, "A", "B", 40)
	return nil
}

func writeSections(f *excelize.File, r *types.ParsedResume) error {
	w := &sheetWriter{f: f, sheet: SheetSections, row: 1}
	if err := w.write("Section", "Text"); err != nil {
		return err
	}
	for _, key := range types.SectionKeys {
		if err := w.write(key, r.ParsedSections[key]); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(SheetSections, "A", "A", 16)
	_ = f.SetColWidth(SheetSections, "B", "B", 100)
	return nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
