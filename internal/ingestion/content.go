package ingestion

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"
)

// kerningGap is the TJ displacement (thousandths of an em) treated as a word gap.
const kerningGap = -200

// textFromContent interprets the text operators of a page content stream.
// String operands are shown by Tj, TJ, ' and "; vertical moves, T* and ET
// end the current line.
func textFromContent(content []byte) string {
	var sb strings.Builder
	var pending []string
	var operands []float64
	inArray := false

	newline := func() {
		if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteByte('\n')
		}
	}
	show := func() {
		for _, s := range pending {
			sb.WriteString(s)
		}
	}

	for i := 0; i < len(content); {
		c := content[i]
		switch {
		case isPDFSpace(c):
			i++
		case c == '%':
			for i < len(content) && content[i] != '\n' && content[i] != '\r' {
				i++
			}
		case c == '(':
			s, next := readLiteral(content, i)
			pending = append(pending, s)
			i = next
		case c == '<' && i+1 < len(content) && content[i+1] == '<':
			i = skipDict(content, i)
		case c == '<':
			end := bytes.IndexByte(content[i:], '>')
			if end < 0 {
				i = len(content)
				continue
			}
			pending = append(pending, decodeHexString(content[i+1:i+end]))
			i += end + 1
		case c == '[':
			inArray = true
			i++
		case c == ']':
			inArray = false
			i++
		default:
			start := i
			for i < len(content) && !isPDFSpace(content[i]) && !isPDFDelimiter(content[i]) {
				i++
			}
			if i == start {
				i++
				continue
			}
			token := string(content[start:i])
			if n, err := strconv.ParseFloat(token, 64); err == nil {
				if inArray && n <= kerningGap {
					pending = append(pending, " ")
				} else {
					operands = append(operands, n)
				}
				continue
			}

			switch token {
			case "Tj", "TJ":
				show()
			case "'", "\"":
				newline()
				show()
			case "Td", "TD":
				if len(operands) >= 2 && operands[len(operands)-1] != 0 {
					newline()
				} else if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
			case "T*", "ET", "Tm":
				newline()
			}
			pending = pending[:0]
			operands = operands[:0]
		}
	}

	return sb.String()
}

// readLiteral reads a balanced PDF literal string starting at content[start] == '('.
func readLiteral(content []byte, start int) (string, int) {
	var raw []byte
	depth := 0
	i := start
	for ; i < len(content); i++ {
		c := content[i]
		switch {
		case c == '\\' && i+1 < len(content):
			raw = append(raw, c, content[i+1])
			i++
			continue
		case c == '(':
			depth++
			if depth == 1 {
				continue
			}
		case c == ')':
			depth--
			if depth == 0 {
				return decodeLiteral(raw), i + 1
			}
		}
		raw = append(raw, c)
	}
	return decodeLiteral(raw), i
}

// decodeLiteral resolves the escape sequences of a literal string body.
func decodeLiteral(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch c := raw[i]; c {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'b', 'f':
		case '\n', '\r':
			// line continuation
		default:
			if c < '0' || c > '7' {
				sb.WriteByte(c)
				continue
			}
			val := int(c - '0')
			for k := 0; k < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; k++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			sb.WriteByte(byte(val))
		}
	}
	return sb.String()
}

func decodeHexString(body []byte) string {
	clean := make([]byte, 0, len(body))
	for _, c := range body {
		if !isPDFSpace(c) {
			clean = append(clean, c)
		}
	}
	if len(clean)%2 == 1 {
		clean = append(clean, '0')
	}
	out, err := hex.DecodeString(string(clean))
	if err != nil {
		return ""
	}
	// Two-byte glyph codes are common in hex strings; keep printable bytes only.
	printable := out[:0]
	for _, b := range out {
		if b >= 0x20 && b < 0x7f {
			printable = append(printable, b)
		}
	}
	return string(printable)
}

func skipDict(content []byte, start int) int {
	depth := 0
	for i := start; i+1 < len(content); i++ {
		switch {
		case content[i] == '<' && content[i+1] == '<':
			depth++
			i++
		case content[i] == '>' && content[i+1] == '>':
			depth--
			i++
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(content)
}

func isPDFSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', 0:
		return true
	}
	return false
}

func isPDFDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}
