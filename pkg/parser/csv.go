// Package parser reads uploaded tabular files into ordered columns and rows
// of named fields. It owns encoding detection and CSV structure recovery;
// it never interprets cell values.
package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Row is one data row: its 1-based position in the source file (the header
// is row 1, so the first data row is row 2) and its cells keyed by column
// header.
type Row struct {
	Number int               `json:"number"`
	Fields map[string]string `json:"fields"`
}

// Warning is a non-fatal structural problem found while reading.
type Warning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Table is a parsed tabular file: headers in file order plus data rows and
// any recovery warnings.
type Table struct {
	Columns  []string  `json:"columns"`
	Rows     []Row     `json:"rows"`
	Warnings []Warning `json:"warnings"`
}

// ReadCSV parses CSV bytes into a Table. The input encoding is detected and
// converted to UTF-8 first. Ragged rows are recovered: short rows are padded
// with empty cells and long rows truncated, each with a warning. Rows that
// fail to parse at all are skipped with a warning. An empty file or a file
// without data rows is an error.
func ReadCSV(data []byte) (*Table, error) {
	decoded, _, err := DecodeToUTF8(data)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	r := csv.NewReader(bytes.NewReader(decoded))
	// Ragged rows are recovered below instead of failing the read.
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	headers, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file: no header row")
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	table := &Table{Columns: headers}
	rowNum := 1 // header
	for {
		cells, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			table.Warnings = append(table.Warnings, Warning{Row: rowNum, Message: fmt.Sprintf("parse error: %v", err)})
			continue
		}

		if len(cells) != len(headers) {
			if len(cells) < len(headers) {
				table.Warnings = append(table.Warnings, Warning{Row: rowNum, Message: fmt.Sprintf("row has %d columns, expected %d; padded with empty values", len(cells), len(headers))})
				padded := make([]string, len(headers))
				copy(padded, cells)
				cells = padded
			} else {
				table.Warnings = append(table.Warnings, Warning{Row: rowNum, Message: fmt.Sprintf("row has %d columns, expected %d; extra columns dropped", len(cells), len(headers))})
				cells = cells[:len(headers)]
			}
		}

		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			fields[h] = cells[i]
		}
		table.Rows = append(table.Rows, Row{Number: rowNum, Fields: fields})
	}

	if len(table.Rows) == 0 {
		return nil, errors.New("file contains no data rows")
	}
	return table, nil
}
