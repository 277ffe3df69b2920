package parsing

import (
	"fmt"
	"strings"
)

// UnreadableHint is the user-facing advice attached to unreadable documents.
const UnreadableHint = "Please ensure your resume is not image-based or scanned, and try uploading a text-based PDF or DOCX file instead."

// UnreadableTextError is returned when no candidate text passes the readability gate.
// Reasons holds one entry per rejected candidate, in the order they were tried.
type UnreadableTextError struct {
	Message string
	Length  int
	Ratio   float64
	Reasons []string
	Cause   error
}

func (e *UnreadableTextError) Error() string {
	var sb strings.Builder
	sb.WriteString("unreadable text: ")
	sb.WriteString(e.Message)
	if len(e.Reasons) > 0 {
		sb.WriteString(" (")
		sb.WriteString(strings.Join(e.Reasons, "; "))
		sb.WriteString(")")
	}
	if e.Cause != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Cause))
	}
	return sb.String()
}

func (e *UnreadableTextError) Unwrap() error {
	return e.Cause
}

// UserMessage returns the message suitable for showing to whoever uploaded the file.
func (e *UnreadableTextError) UserMessage() string {
	return "Could not extract readable text from the document. " + UnreadableHint
}
