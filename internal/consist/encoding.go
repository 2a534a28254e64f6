package consist

import (
	"bytes"
	"strings"
	"unicode/utf16"
)

// Encoding identifies how a consist file was stored on disk. Simulator-era
// tooling wrote UTF-16 LE with a BOM; community editors write UTF-8 with or
// without one. Rewrites re-encode with the same variant that was read.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8-bom"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeText sniffs the byte-order mark and decodes the file into a string.
func DecodeText(data []byte) (string, Encoding) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(data[len(bomUTF8):]), EncodingUTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeUTF16(data[2:], false), EncodingUTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeUTF16(data[2:], true), EncodingUTF16BE
	default:
		return string(data), EncodingUTF8
	}
}

// EncodeText re-encodes text under the given variant, restoring the BOM.
func EncodeText(text string, enc Encoding) []byte {
	switch enc {
	case EncodingUTF8BOM:
		out := make([]byte, 0, len(bomUTF8)+len(text))
		out = append(out, bomUTF8...)
		return append(out, text...)
	case EncodingUTF16LE:
		return encodeUTF16(text, false)
	case EncodingUTF16BE:
		return encodeUTF16(text, true)
	default:
		return []byte(text)
	}
}

func decodeUTF16(data []byte, bigEndian bool) string {
	units := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		if bigEndian {
			units = append(units, uint16(data[i])<<8|uint16(data[i+1]))
		} else {
			units = append(units, uint16(data[i+1])<<8|uint16(data[i]))
		}
	}
	return string(utf16.Decode(units))
}

func encodeUTF16(text string, bigEndian bool) []byte {
	units := utf16.Encode([]rune(text))
	out := make([]byte, 0, 2+len(units)*2)
	if bigEndian {
		out = append(out, bomUTF16BE...)
	} else {
		out = append(out, bomUTF16LE...)
	}
	for _, u := range units {
		if bigEndian {
			out = append(out, byte(u>>8), byte(u))
		} else {
			out = append(out, byte(u), byte(u>>8))
		}
	}
	return out
}

// detectLineEnding returns the dominant line terminator, defaulting to CRLF
// when the file has no newline at all (the simulator's native convention).
func detectLineEnding(text string) string {
	if i := strings.IndexByte(text, '\n'); i > 0 && text[i-1] == '\r' {
		return "\r\n"
	} else if i >= 0 {
		return "\n"
	}
	return "\r\n"
}

// splitLines splits on the terminator without dropping a trailing empty line,
// so join(split(x)) round-trips exactly.
func splitLines(text, ending string) []string {
	normalized := text
	if ending == "\r\n" {
		normalized = strings.ReplaceAll(text, "\r\n", "\n")
	}
	return strings.Split(normalized, "\n")
}

func joinLines(lines []string, ending string) string {
	return strings.Join(lines, ending)
}
