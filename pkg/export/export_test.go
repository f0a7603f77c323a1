package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"rentgen/pkg/generate"
	"rentgen/pkg/schema"
)

func sampleResults() []generate.Result {
	rec := schema.PropertyRecord{
		PropertyType:     "flat",
		BHK:              "2",
		AreaSqft:         1200,
		City:             "Mumbai",
		Locality:         "Andheri West",
		FurnishingStatus: "semi-furnished",
		RentAmount:       25000,
		DepositAmount:    100000,
		Amenities:        []string{"Lift", "Parking"},
	}
	return []generate.Result{{
		Record:      rec,
		Description: *generate.FillTemplate(rec),
		Source:      generate.SourceTemplate,
	}}
}

func TestWriteResultsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResultsCSV(&buf, sampleResults()); err != nil {
		t.Fatalf("WriteResultsCSV error: %v", err)
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("output has no UTF-8 BOM")
	}
	if !bytes.Contains(out, []byte("\r\n")) {
		t.Fatalf("output has no CRLF line endings")
	}

	rows, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
	if err != nil {
		t.Fatalf("re-reading output: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "Property Type" || rows[0][len(rows[0])-1] != "SEO Keywords" {
		t.Fatalf("header = %v", rows[0])
	}
	row := rows[1]
	if row[0] != "Flat" || row[7] != "Semi-Furnished" {
		t.Fatalf("title casing wrong: type=%q furnishing=%q", row[0], row[7])
	}
	if row[4] != "1200" || row[5] != "25000" {
		t.Fatalf("numbers wrong: area=%q rent=%q", row[4], row[5])
	}
	if !strings.Contains(row[11], " | ") {
		t.Fatalf("bullet points not pipe-joined: %q", row[11])
	}
	if !strings.Contains(row[14], ", ") {
		t.Fatalf("keywords not comma-joined: %q", row[14])
	}
}

func TestWriteTemplateCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTemplateCSV(&buf, schema.SampleTemplate()); err != nil {
		t.Fatalf("WriteTemplateCSV error: %v", err)
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("output has no UTF-8 BOM")
	}
	rows, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
	if err != nil {
		t.Fatalf("re-reading output: %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("expected header plus 5 sample rows, got %d", len(rows))
	}
	if len(rows[0]) != len(schema.Fields) {
		t.Fatalf("template header width %d, want %d", len(rows[0]), len(schema.Fields))
	}
	for i, row := range rows[1:] {
		if len(row) != len(rows[0]) {
			t.Fatalf("sample row %d width %d, want %d", i, len(row), len(rows[0]))
		}
	}
}

func TestWriteResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResultsJSON(&buf, "run-123", sampleResults()); err != nil {
		t.Fatalf("WriteResultsJSON error: %v", err)
	}
	var doc struct {
		RunID   string `json:"run_id"`
		Results []struct {
			Source      string `json:"source"`
			Description struct {
				Title string `json:"title"`
			} `json:"description"`
		} `json:"results"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.RunID != "run-123" {
		t.Fatalf("run_id = %q", doc.RunID)
	}
	if len(doc.Results) != 1 || doc.Results[0].Source != generate.SourceTemplate {
		t.Fatalf("results = %+v", doc.Results)
	}
	if doc.Results[0].Description.Title == "" {
		t.Fatalf("description title missing from JSON output")
	}
}
