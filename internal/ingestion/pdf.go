package ingestion

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// decodeTextLayer reads the PDF text layer row by row so line breaks survive.
// Pages whose rows cannot be read fall back to the reader's plain text dump.
func decodeTextLayer(ctx context.Context, data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return plainText(r)
		}
		for _, row := range rows {
			sb.WriteString(joinRow(row.Content))
			sb.WriteByte('\n')
		}
	}

	if strings.TrimSpace(sb.String()) == "" {
		return plainText(r)
	}
	return sb.String(), nil
}

// wordGapRatio is the horizontal gap, relative to font size, read as a space.
// The text layer drops space glyphs, so word breaks come from glyph positions.
const wordGapRatio = 0.2

func joinRow(glyphs pdf.TextHorizontal) string {
	var sb strings.Builder
	for i, g := range glyphs {
		if i > 0 {
			prev := glyphs[i-1]
			if g.X-(prev.X+prev.W) > prev.FontSize*wordGapRatio {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(g.S)
	}
	return sb.String()
}

func plainText(r *pdf.Reader) (string, error) {
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", err
	}
	if strings.TrimSpace(buf.String()) == "" {
		return "", errors.New("no text layer")
	}
	return buf.String(), nil
}
