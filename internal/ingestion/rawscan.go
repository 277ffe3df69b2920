package ingestion

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

var (
	parenRun      = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\)`)
	readableBlock = regexp.MustCompile(`[A-Za-z][A-Za-z0-9 \t.,@\-+()]{10,}`)
	hasLetter     = regexp.MustCompile(`[A-Za-z]`)
	hasWord       = regexp.MustCompile(`[A-Za-z]{3,}`)
	pdfKeyword    = regexp.MustCompile(`^(?:obj|endobj|stream|endstream|xref|trailer|startxref)`)
)

// decodeRawScan pulls text straight out of the byte stream without parsing
// the document. Parenthesised string runs are used when present, otherwise
// printable ASCII blocks that do not look like PDF syntax.
func decodeRawScan(_ context.Context, data []byte) (string, error) {
	var lines []string
	for _, m := range parenRun.FindAllSubmatch(data, -1) {
		text := strings.TrimSpace(decodeLiteral(m[1]))
		if len(text) > 2 && hasLetter.MatchString(text) {
			lines = append(lines, text)
		}
	}

	if len(lines) == 0 {
		for _, block := range readableBlock.FindAll(data, -1) {
			text := strings.TrimSpace(string(block))
			if len(text) > 5 && hasWord.MatchString(text) && !pdfKeyword.MatchString(text) {
				lines = append(lines, text)
			}
		}
	}

	if len(lines) == 0 {
		return "", errors.New("no printable text runs found")
	}
	return strings.Join(lines, "\n"), nil
}
