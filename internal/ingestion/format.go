package ingestion

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Format identifies a supported source document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeZip  = "application/zip"
)

// MIMEType returns the canonical MIME type of the format.
func (f Format) MIMEType() string {
	switch f {
	case FormatPDF:
		return mimePDF
	case FormatDOCX:
		return mimeDOCX
	}
	return ""
}

// Extension returns the file extension including the leading dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// ParseFormat accepts "pdf", ".docx", a file name or a MIME type.
func ParseFormat(s string) (Format, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	switch value {
	case "pdf", ".pdf", mimePDF:
		return FormatPDF, nil
	case "docx", ".docx", mimeDOCX:
		return FormatDOCX, nil
	}
	if f := FormatFromFilename(value); f != "" {
		return f, nil
	}
	return "", &UnsupportedFormatError{Format: s}
}

// FormatFromFilename maps a file extension to a Format, or "" when unknown.
func FormatFromFilename(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	}
	return ""
}

// DetectFormat sniffs the content and cross-checks it with the file name.
// Content wins when the two disagree. A bare zip archive is accepted as DOCX
// only when the name says so.
func DetectFormat(data []byte, filename string) (Format, error) {
	mtype := mimetype.Detect(data)
	byName := FormatFromFilename(filename)

	switch {
	case mtype.Is(mimePDF):
		return FormatPDF, nil
	case mtype.Is(mimeDOCX):
		return FormatDOCX, nil
	case mtype.Is(mimeZip) && byName == FormatDOCX:
		return FormatDOCX, nil
	}

	return "", &UnsupportedFormatError{Format: strings.TrimPrefix(filepath.Ext(filename), "."), MIME: mtype.String()}
}
