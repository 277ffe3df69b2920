// Package server provides the HTTP API for uploading, parsing, converting and
// publishing resumes.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-parser/internal/conversion"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/roles"
	"github.com/jonathan/resume-parser/internal/store"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a missing upload, parse result or portfolio
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrPayloadTooLarge indicates an upload over the size limit
type ErrPayloadTooLarge struct {
	Limit int64
}

func (e *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("File too large. Maximum size is %dMB.", e.Limit>>20)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr  *ErrValidation
		notFoundErr    *ErrNotFound
		tooLargeErr    *ErrPayloadTooLarge
		unsupportedErr *ingestion.UnsupportedFormatError
		unreadableErr  *parsing.UnreadableTextError
		unknownRoleErr *roles.UnknownRoleError
		apiErr         *conversion.APICallError
	)

	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &validationErr),
		errors.As(err, &unsupportedErr),
		errors.As(err, &unreadableErr),
		errors.As(err, &unknownRoleErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr), errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &apiErr):
		switch apiErr.Kind {
		case conversion.FailureAuth:
			return http.StatusUnauthorized
		case conversion.FailureRateLimit, conversion.FailureQuota:
			return http.StatusTooManyRequests
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage returns the message shown to API clients for err.
func publicMessage(err error) string {
	var (
		unreadableErr *parsing.UnreadableTextError
		apiErr        *conversion.APICallError
	)
	switch {
	case errors.As(err, &unreadableErr):
		return unreadableErr.UserMessage()
	case errors.As(err, &apiErr):
		switch apiErr.Kind {
		case conversion.FailureAuth:
			return "Invalid API key"
		case conversion.FailureRateLimit:
			return "Rate limit exceeded. Please try again later."
		case conversion.FailureQuota:
			return "API quota exceeded. Please check your Gemini billing."
		}
		return "Resume conversion failed. Please try again."
	}
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}

// validationError turns validator output into an ErrValidation for the first failing field.
func validationError(err error) *ErrValidation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}

	fe := verrs[0]
	var msg string
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "uuid":
		msg = "must be a valid UUID"
	case "min":
		msg = fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		msg = fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		msg = fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		msg = fmt.Sprintf("must be at most %s", fe.Param())
	default:
		msg = fmt.Sprintf("failed %s validation", fe.Tag())
	}
	return &ErrValidation{Field: fe.Field(), Message: msg}
}
