package ingestion

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name: "lines, arrays and escapes",
			content: "BT\n/F1 12 Tf\n72 720 Td\n(Jane Smith) Tj\n0 -16 Td\n" +
				"[(Senior) -250 (Engineer)] TJ\n0 -16 Td\n(Uses \\(Go\\)) Tj\nET\n",
			expected: "Jane Smith\nSenior Engineer\nUses (Go)\n",
		},
		{
			name:     "horizontal move is a space",
			content:  "BT (Jane) Tj 40 0 Td (Smith) Tj ET",
			expected: "Jane Smith\n",
		},
		{
			name:     "hex strings",
			content:  "BT <4A616E65> Tj ET",
			expected: "Jane\n",
		},
		{
			name:     "next line operator",
			content:  "BT (Line one) Tj (Line two) ' ET",
			expected: "Line one\nLine two\n",
		},
		{
			name:     "dictionaries and comments are skipped",
			content:  "% comment (ignored)\n/Span << /MCID 0 >> BDC BT (Kept) Tj ET EMC",
			expected: "Kept\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textFromContent([]byte(tt.content)))
		})
	}
}

func TestDecodeLiteral(t *testing.T) {
	assert.Equal(t, "aAb", decodeLiteral([]byte(`a\101b`)))
	assert.Equal(t, "tab\there", decodeLiteral([]byte(`tab\there`)))
	assert.Equal(t, `back\slash`, decodeLiteral([]byte(`back\\slash`)))
}

func TestDecodeRawScan(t *testing.T) {
	t.Run("parenthesised runs", func(t *testing.T) {
		data := []byte("%PDF-1.4\n1 0 obj\nBT (Jane Smith) Tj (Senior Engineer) Tj (ab) Tj ET\nendobj")
		got, err := decodeRawScan(context.Background(), data)
		require.NoError(t, err)
		assert.Equal(t, "Jane Smith\nSenior Engineer", got)
	})

	t.Run("printable blocks", func(t *testing.T) {
		data := []byte("garbage \x00\x01 Professional experience building systems \xff\xfe")
		got, err := decodeRawScan(context.Background(), data)
		require.NoError(t, err)
		assert.Equal(t, "Professional experience building systems", got)
	})

	t.Run("nothing printable", func(t *testing.T) {
		_, err := decodeRawScan(context.Background(), []byte{0x00, 0x01, 0x02, 0xff})
		assert.Error(t, err)
	})
}

func TestDecodeDOCX(t *testing.T) {
	t.Run("paragraphs become lines", func(t *testing.T) {
		got, err := decodeDOCX(context.Background(), buildDOCX(t, sampleLines))
		require.NoError(t, err)
		assert.Equal(t, strings.Join(sampleLines, "\n")+"\n", got)
	})

	t.Run("tabs and breaks", func(t *testing.T) {
		xml := `<w:document xmlns:w="urn:w"><w:body><w:p><w:r><w:t>Go</w:t><w:tab/><w:t>Rust</w:t><w:br/><w:t>SQL</w:t></w:r></w:p></w:body></w:document>`
		got, err := textFromWordML(strings.NewReader(xml))
		require.NoError(t, err)
		assert.Equal(t, "Go\tRust\nSQL\n", got)
	})

	t.Run("not a zip archive", func(t *testing.T) {
		_, err := decodeDOCX(context.Background(), []byte("plain text"))
		assert.Error(t, err)
	})
}
