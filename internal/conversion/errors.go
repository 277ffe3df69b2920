// Package conversion rewrites a parsed resume into a themed role through the LLM,
// with a deterministic fallback, and builds the cold mail and portfolio content
// derived from the result.
package conversion

import (
	"fmt"
	"strings"
)

// FailureKind classifies an LLM call failure.
type FailureKind string

// Failure kinds reported on APICallError.
const (
	FailureAuth      FailureKind = "auth"
	FailureRateLimit FailureKind = "rate_limit"
	FailureQuota     FailureKind = "quota"
	FailureOther     FailureKind = "other"
)

// APICallError represents a failure talking to the LLM provider
type APICallError struct {
	Message string
	Kind    FailureKind
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents a model response that could not be decoded
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse model response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to parse model response: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

func newAPICallError(message string, cause error) *APICallError {
	return &APICallError{Message: message, Kind: classifyFailure(cause), Cause: cause}
}

func classifyFailure(err error) FailureKind {
	if err == nil {
		return FailureOther
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key"), strings.Contains(msg, "api_key"), strings.Contains(msg, "permission denied"):
		return FailureAuth
	case strings.Contains(msg, "quota"):
		return FailureQuota
	case strings.Contains(msg, "rate limit"), strings.Contains(msg, "resource_exhausted"), strings.Contains(msg, "resource exhausted"):
		return FailureRateLimit
	default:
		return FailureOther
	}
}
