package ingestion

import "fmt"

// UnsupportedFormatError is returned for documents that are neither PDF nor DOCX.
type UnsupportedFormatError struct {
	Format string
	MIME   string
}

func (e *UnsupportedFormatError) Error() string {
	if e.MIME != "" {
		return fmt.Sprintf("unsupported document format %q (detected %s): only pdf and docx are accepted", e.Format, e.MIME)
	}
	return fmt.Sprintf("unsupported document format %q: only pdf and docx are accepted", e.Format)
}

// DecodeError wraps a failure inside a single decoding strategy.
type DecodeError struct {
	Strategy string
	Cause    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s decode failed: %v", e.Strategy, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
