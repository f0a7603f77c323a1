package parser

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
	"unicode/utf16"
)

func TestReadCSVBasic(t *testing.T) {
	data := []byte("City , Rent\nMumbai,25000\nPune,12000\n")
	table, err := ReadCSV(data)
	if err != nil {
		t.Fatalf("ReadCSV error: %v", err)
	}
	if len(table.Columns) != 2 || table.Columns[0] != "City" || table.Columns[1] != "Rent" {
		t.Fatalf("headers not trimmed: %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0].Number != 2 || table.Rows[1].Number != 3 {
		t.Fatalf("row numbers = %d,%d; header must count as row 1", table.Rows[0].Number, table.Rows[1].Number)
	}
	if table.Rows[0].Fields["City"] != "Mumbai" || table.Rows[1].Fields["Rent"] != "12000" {
		t.Fatalf("cell values wrong: %v", table.Rows)
	}
	if len(table.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", table.Warnings)
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	data := []byte("a,b,c\n1,2\n1,2,3,4\n1,2,3\n")
	table, err := ReadCSV(data)
	if err != nil {
		t.Fatalf("ReadCSV error: %v", err)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table.Rows))
	}
	if got := table.Rows[0].Fields["c"]; got != "" {
		t.Fatalf("short row not padded: c = %q", got)
	}
	if got := table.Rows[1].Fields["c"]; got != "3" {
		t.Fatalf("long row not truncated correctly: c = %q", got)
	}
	if len(table.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", table.Warnings)
	}
	if table.Warnings[0].Row != 2 || table.Warnings[1].Row != 3 {
		t.Fatalf("warning rows = %d,%d; want 2,3", table.Warnings[0].Row, table.Warnings[1].Row)
	}
}

func TestReadCSVEmptyInputs(t *testing.T) {
	if _, err := ReadCSV(nil); err == nil {
		t.Fatalf("expected error for empty file")
	}
	if _, err := ReadCSV([]byte("a,b,c\n")); err == nil {
		t.Fatalf("expected error for header-only file")
	}
}

func TestReadCSVUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("city\nMumbai\n")...)
	table, err := ReadCSV(data)
	if err != nil {
		t.Fatalf("ReadCSV error: %v", err)
	}
	if table.Columns[0] != "city" {
		t.Fatalf("BOM not stripped from header: %q", table.Columns[0])
	}
}

func TestReadCSVUTF16LE(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xFE})
	for _, u := range utf16.Encode([]rune("city\nMünchen\n")) {
		if err := binary.Write(&buf, binary.LittleEndian, u); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	table, err := ReadCSV(buf.Bytes())
	if err != nil {
		t.Fatalf("ReadCSV error: %v", err)
	}
	if table.Rows[0].Fields["city"] != "München" {
		t.Fatalf("utf-16le cell = %q", table.Rows[0].Fields["city"])
	}
}

func TestDecodeLatin1Fallback(t *testing.T) {
	// 0xE9 is é in Latin-1 and invalid as standalone UTF-8.
	decoded, name, err := DecodeToUTF8([]byte{'c', 'a', 'f', 0xE9})
	if err != nil {
		t.Fatalf("DecodeToUTF8 error: %v", err)
	}
	if name != "latin-1" {
		t.Fatalf("detected %q, want latin-1", name)
	}
	if !strings.Contains(string(decoded), "café") {
		t.Fatalf("decoded = %q", decoded)
	}
}
