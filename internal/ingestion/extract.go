// Package ingestion turns PDF and DOCX bytes into readable resume text.
package ingestion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/types"
)

// Result is the text chosen from a document plus how it was obtained.
type Result struct {
	Text     string    `json:"text"`
	Strategy string    `json:"strategy"`
	Attempts []Attempt `json:"attempts"`
	Metadata *Metadata `json:"metadata"`
}

// Parse runs the resume parser over the extracted text.
func (r *Result) Parse() *types.ParsedResume {
	return parsing.ParseResumeText(r.Text)
}

// Extract decodes data of the given format. The error is a
// *parsing.UnreadableTextError when no strategy yields readable text.
func Extract(ctx context.Context, data []byte, format Format) (*Result, error) {
	return extract(ctx, data, "", format)
}

// ExtractFile reads path, detects its format and extracts its text.
func ExtractFile(ctx context.Context, path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	format, err := DetectFormat(data, path)
	if err != nil {
		return nil, err
	}
	return extract(ctx, data, filepath.Base(path), format)
}

func extract(ctx context.Context, data []byte, fileName string, format Format) (*Result, error) {
	strategies, err := StrategiesFor(format)
	if err != nil {
		return nil, err
	}

	text, attempts, err := RunStrategies(ctx, data, strategies)
	if err != nil {
		return nil, err
	}

	meta := NewMetadata(data, fileName, format)
	meta.Strategy = attempts[len(attempts)-1].Strategy

	return &Result{
		Text:     text,
		Strategy: meta.Strategy,
		Attempts: attempts,
		Metadata: meta,
	}, nil
}
