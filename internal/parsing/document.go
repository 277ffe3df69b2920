package parsing

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Document is the shared, read-only input of every field extractor.
type Document struct {
	// Raw is the text exactly as received.
	Raw string
	// Text is the cleaned, line-preserving view.
	Text string
	// Flat is the whitespace-collapsed, boundary-spaced view.
	Flat string
	// Lines are the trimmed non-empty lines of Text.
	Lines    []string
	Sections SectionMap
}

// NewDocument runs the normalizer, tokenizer and segmenter without the
// readability gate.
func NewDocument(raw string) *Document {
	text := CleanText(raw)
	lines := Tokenize(text)
	return &Document{
		Raw:      raw,
		Text:     text,
		Flat:     Flatten(text),
		Lines:    lines,
		Sections: Segment(lines),
	}
}

// sectionOrFullText returns a section's lines joined by newlines, or every
// document line when the section is empty.
func (d *Document) sectionOrFullText(key string) string {
	if !d.Sections.Empty(key) {
		return d.Sections.Text(key, "\n")
	}
	return strings.Join(d.Lines, "\n")
}

// headerRegion returns the lines most likely to hold contact details.
func (d *Document) headerRegion() []string {
	if lines := d.Sections.Lines(types.SectionContact); len(lines) > 0 {
		return lines
	}
	return d.Lines[:min(len(d.Lines), contactLineLimit)]
}
