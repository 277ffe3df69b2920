package ingestion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/parsing"
)

func TestExtract_DOCX(t *testing.T) {
	result, err := Extract(context.Background(), buildDOCX(t, sampleLines), FormatDOCX)
	require.NoError(t, err)

	assert.Equal(t, StrategyDOCX, result.Strategy)
	assert.Equal(t, FormatDOCX, result.Metadata.Format)
	require.Len(t, result.Attempts, 1)
	assert.True(t, result.Attempts[0].Accepted)

	resume := result.Parse()
	assert.Equal(t, "Jane Smith", resume.Contact.Name)
	assert.Equal(t, "jane.smith@example.com", resume.Contact.Email)
	require.Len(t, resume.WorkExperience, 1)
	assert.Equal(t, "Acme Corp", resume.WorkExperience[0].Company)
	assert.Equal(t, []string{"JavaScript", "React", "MongoDB", "AWS"}, resume.Skills)
}

func TestExtractFile_PDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, buildPDF(t, sampleLines), 0644))

	result, err := ExtractFile(context.Background(), path)
	require.NoError(t, err)

	assert.Contains(t, result.Text, "Jane")
	assert.Contains(t, result.Text, "Smith")
	assert.Contains(t, []string{StrategyTextLayer, StrategyContentStream, StrategyRawScan}, result.Strategy)
	assert.Equal(t, "resume.pdf", result.Metadata.FileName)
	assert.Equal(t, FormatPDF, result.Metadata.Format)
}

func TestExtract_UnreadablePDF(t *testing.T) {
	data := append([]byte("%PDF-1.4\n"), 0x00, 0x01, 0x02, 0xff, 0xfe, 0x00, 0x10)

	result, err := Extract(context.Background(), data, FormatPDF)
	assert.Nil(t, result)

	var unreadable *parsing.UnreadableTextError
	require.True(t, errors.As(err, &unreadable))
	assert.Len(t, unreadable.Reasons, 3)
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	_, err := Extract(context.Background(), []byte("hello"), Format("odt"))
	var unsupported *UnsupportedFormatError
	assert.True(t, errors.As(err, &unsupported))
}

func TestExtractFile_Missing(t *testing.T) {
	_, err := ExtractFile(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestWriteOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	result := &Result{
		Text:     readableSample,
		Strategy: StrategyDOCX,
		Metadata: NewMetadata([]byte("x"), "cv.docx", FormatDOCX),
	}

	require.NoError(t, WriteOutput(dir, "cv", result))

	text, err := os.ReadFile(filepath.Join(dir, "cv.txt"))
	require.NoError(t, err)
	assert.Equal(t, readableSample, string(text))

	meta, err := os.ReadFile(filepath.Join(dir, "cv.meta.json"))
	require.NoError(t, err)
	assert.Contains(t, string(meta), `"format": "docx"`)
}
