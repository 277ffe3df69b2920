package parsing

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// minReadableLength is the exclusive lower bound on cleaned text length.
	minReadableLength = 20
	// minReadableRatio is the exclusive lower bound on the share of [a-zA-Z\s] characters.
	minReadableRatio = 0.3
)

var (
	whitespaceRun      = regexp.MustCompile(`\s+`)
	horizontalSpaceRun = regexp.MustCompile(`[ \t\f\v]+`)
	lowerUpperBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	lowerDigitBoundary = regexp.MustCompile(`([a-z])(\d)`)
	digitLowerBoundary = regexp.MustCompile(`(\d)([a-z])`)
)

// NormalizedText holds the two views of a document's text.
// Text keeps line boundaries and feeds the tokenizer and segmenter.
// Flat is whitespace-collapsed with camelCase and letter/digit boundaries spaced apart.
type NormalizedText struct {
	Text string
	Flat string
}

// Normalize cleans raw text and applies the readability gate.
func Normalize(raw string) (*NormalizedText, error) {
	text := CleanText(raw)
	flat := Flatten(text)
	if err := CheckReadable(flat); err != nil {
		return nil, err
	}
	return &NormalizedText{Text: text, Flat: flat}, nil
}

// CleanText applies NFKC folding, unifies line endings and collapses horizontal
// whitespace inside each line. Line boundaries are preserved.
func CleanText(raw string) string {
	if raw == "" {
		return ""
	}

	content := norm.NFKC.String(raw)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(horizontalSpaceRun.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Flatten collapses all whitespace to single spaces and separates glued tokens
// such as "SeniorEngineer" or "Engineer2019".
func Flatten(text string) string {
	flat := whitespaceRun.ReplaceAllString(text, " ")
	flat = lowerUpperBoundary.ReplaceAllString(flat, "$1 $2")
	flat = lowerDigitBoundary.ReplaceAllString(flat, "$1 $2")
	flat = digitLowerBoundary.ReplaceAllString(flat, "$1 $2")
	return strings.TrimSpace(flat)
}

// ReadabilityRatio returns the share of characters that are ASCII letters or whitespace.
func ReadabilityRatio(text string) float64 {
	total := 0
	readable := 0
	for _, r := range text {
		total++
		if isReadableRune(r) {
			readable++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

func isReadableRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r == ' ', r == '\t', r == '\n', r == '\r', r == '\f', r == '\v':
		return true
	}
	return false
}

// CheckReadable returns an *UnreadableTextError when text is too short or
// mostly made of symbols.
func CheckReadable(text string) error {
	trimmed := strings.TrimSpace(text)
	length := utf8.RuneCountInString(trimmed)
	if length <= minReadableLength {
		return &UnreadableTextError{
			Message: fmt.Sprintf("extracted text too short (%d characters)", length),
			Length:  length,
		}
	}

	ratio := ReadabilityRatio(trimmed)
	if ratio <= minReadableRatio {
		return &UnreadableTextError{
			Message: fmt.Sprintf("extracted text is not readable (%.0f%% letters or whitespace)", ratio*100),
			Length:  length,
			Ratio:   ratio,
		}
	}
	return nil
}
