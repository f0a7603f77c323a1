package parser

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeToUTF8 sniffs the encoding of uploaded bytes, strips any byte-order
// mark, and returns UTF-8 along with the detected encoding name. Inputs that
// are neither BOM-marked nor valid UTF-8 fall back to Latin-1, which cannot
// fail since every byte maps to a code point.
func DecodeToUTF8(data []byte) ([]byte, string, error) {
	switch {
	case len(data) == 0:
		return data, "utf-8", nil
	case bytes.HasPrefix(data, bomUTF8):
		return data[3:], "utf-8-bom", nil
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeUTF16(data[2:], binary.LittleEndian), "utf-16le", nil
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeUTF16(data[2:], binary.BigEndian), "utf-16be", nil
	case utf8.Valid(data):
		return data, "utf-8", nil
	}
	return decodeLatin1(data), "latin-1", nil
}

func decodeUTF16(data []byte, order binary.ByteOrder) []byte {
	// A trailing odd byte cannot be part of any code unit.
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}
	units := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		units = append(units, order.Uint16(data[i:i+2]))
	}
	// utf16.Decode substitutes U+FFFD for broken surrogate pairs.
	var buf bytes.Buffer
	buf.Grow(len(data))
	for _, r := range utf16.Decode(units) {
		buf.WriteRune(r)
	}
	return buf.Bytes()
}

func decodeLatin1(data []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(data) * 2)
	for _, b := range data {
		// Latin-1 bytes map directly onto U+0000..U+00FF.
		buf.WriteRune(rune(b))
	}
	return buf.Bytes()
}
