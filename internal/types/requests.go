package types

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseRequest asks the server to parse a previously uploaded file.
type ParseRequest struct {
	FileID   string `json:"fileId" validate:"required,uuid"`
	FileName string `json:"fileName" validate:"required,min=5"`
}

// ConversionOptions tunes the LLM conversion.
type ConversionOptions struct {
	Temperature      float32 `json:"temperature,omitempty" validate:"gte=0,lte=2"`
	MaxTokens        int32   `json:"maxTokens,omitempty" validate:"gte=0,lte=8192"`
	IncludePortfolio bool    `json:"includePortfolio,omitempty"`
}

// ConvertRequest asks the server to convert a parsed resume into a themed one.
type ConvertRequest struct {
	ParsedResume *ParsedResume     `json:"parsedResume" validate:"required"`
	RoleKey      string            `json:"roleKey" validate:"required"`
	Username     string            `json:"username,omitempty" validate:"omitempty,max=64"`
	APIKey       string            `json:"apiKey,omitempty"`
	Options      ConversionOptions `json:"options"`
}

// ColdMailRequest asks for a cold email built from a converted resume.
type ColdMailRequest struct {
	ConvertedResume *ConvertedResume `json:"convertedResume" validate:"required"`
	RoleKey         string           `json:"roleKey" validate:"required"`
	CompanyName     string           `json:"companyName,omitempty" validate:"max=200"`
	Position        string           `json:"position,omitempty" validate:"max=200"`
}

// SavePortfolioRequest stores a converted resume as a portfolio.
type SavePortfolioRequest struct {
	ConvertedResume *ConvertedResume `json:"convertedResume" validate:"required"`
	RoleKey         string           `json:"roleKey" validate:"required"`
	APIKey          string           `json:"apiKey,omitempty"`
}

// Validate validates the ParseRequest using the validator.
func (r *ParseRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ConvertRequest using the validator.
func (r *ConvertRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ColdMailRequest using the validator.
func (r *ColdMailRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SavePortfolioRequest using the validator.
func (r *SavePortfolioRequest) Validate() error {
	return validate.Struct(r)
}
