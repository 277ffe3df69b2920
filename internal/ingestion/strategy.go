package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jonathan/resume-parser/internal/parsing"
)

// Strategy is one way of turning document bytes into text.
type Strategy struct {
	Name   string
	Decode func(ctx context.Context, data []byte) (string, error)
}

// Attempt records the outcome of running one strategy.
type Attempt struct {
	Strategy string  `json:"strategy"`
	Length   int     `json:"length"`
	Ratio    float64 `json:"ratio"`
	Accepted bool    `json:"accepted"`
	Error    string  `json:"error,omitempty"`
	Err      error   `json:"-"`
}

// Strategy names, in the order they are tried for PDFs.
const (
	StrategyTextLayer     = "text-layer"
	StrategyContentStream = "content-stream"
	StrategyRawScan       = "raw-scan"
	StrategyDOCX          = "docx-xml"
)

// StrategiesFor returns the ordered decoding strategies for a format.
func StrategiesFor(format Format) ([]Strategy, error) {
	switch format {
	case FormatPDF:
		return []Strategy{
			{Name: StrategyTextLayer, Decode: decodeTextLayer},
			{Name: StrategyContentStream, Decode: decodeContentStreams},
			{Name: StrategyRawScan, Decode: decodeRawScan},
		}, nil
	case FormatDOCX:
		return []Strategy{
			{Name: StrategyDOCX, Decode: decodeDOCX},
		}, nil
	}
	return nil, &UnsupportedFormatError{Format: string(format)}
}

// RunStrategies evaluates strategies in order and returns the first text that
// passes the readability gate, together with every attempt made. When none
// passes the error is a *parsing.UnreadableTextError.
func RunStrategies(ctx context.Context, data []byte, strategies []Strategy) (string, []Attempt, error) {
	attempts := make([]Attempt, 0, len(strategies))
	var reasons []string
	var decodeErrs []error

	for _, s := range strategies {
		if err := ctx.Err(); err != nil {
			return "", attempts, err
		}

		attempt := Attempt{Strategy: s.Name}
		text, err := safeDecode(ctx, s, data)
		if err != nil {
			attempt.Err = err
			attempt.Error = err.Error()
			attempts = append(attempts, attempt)
			reasons = append(reasons, fmt.Sprintf("%s: %v", s.Name, err))
			decodeErrs = append(decodeErrs, err)
			log.Printf("[ingest] %s strategy failed: %v", s.Name, err)
			continue
		}

		flat := parsing.Flatten(parsing.CleanText(text))
		attempt.Length = len([]rune(flat))
		attempt.Ratio = parsing.ReadabilityRatio(flat)
		if err := parsing.CheckReadable(flat); err != nil {
			attempt.Err = err
			attempt.Error = err.Error()
			attempts = append(attempts, attempt)
			reasons = append(reasons, fmt.Sprintf("%s: %v", s.Name, err))
			log.Printf("[ingest] %s strategy rejected: %v", s.Name, err)
			continue
		}

		attempt.Accepted = true
		attempts = append(attempts, attempt)
		return text, attempts, nil
	}

	return "", attempts, &parsing.UnreadableTextError{
		Message: "no decoding strategy produced readable text",
		Reasons: reasons,
		Cause:   errors.Join(decodeErrs...),
	}
}

// safeDecode runs a strategy and turns a panic inside a decoder into a DecodeError.
func safeDecode(ctx context.Context, s Strategy, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DecodeError{Strategy: s.Name, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	text, err = s.Decode(ctx, data)
	if err != nil {
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			err = &DecodeError{Strategy: s.Name, Cause: err}
		}
	}
	return text, err
}
