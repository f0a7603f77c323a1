package report

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"rentgen/pkg/parser"
	"rentgen/pkg/schema"
)

var testToday = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

func testTable(t *testing.T, rows int, badRow int) (*parser.Table, schema.ColumnMapping) {
	t.Helper()
	columns := []string{
		"Property Type", "BHK", "Area (sqft)", "City", "Area",
		"Furnishing", "Rent", "Deposit Amount", "Available From", "Tenant Type",
	}
	mapping, unmatched := schema.AutoDetect(columns)
	if len(unmatched) != 0 {
		t.Fatalf("setup: unmatched columns %v", unmatched)
	}

	table := &parser.Table{Columns: columns}
	for i := 0; i < rows; i++ {
		fields := map[string]string{
			"Property Type":  "flat",
			"BHK":            "2",
			"Area (sqft)":    fmt.Sprintf("%d", 1000+i),
			"City":           "Mumbai",
			"Area":           fmt.Sprintf("Locality %d", i),
			"Furnishing":     "semi",
			"Rent":           "25000",
			"Deposit Amount": "50000",
			"Available From": "2024-12-01",
			"Tenant Type":    "Family",
		}
		rowNum := i + 2
		if rowNum == badRow {
			fields["Rent"] = ""
		}
		table.Rows = append(table.Rows, parser.Row{Number: rowNum, Fields: fields})
	}
	return table, mapping
}

func TestRunBestEffortAndOrdering(t *testing.T) {
	table, mapping := testTable(t, 5, 4) // row 4 has no rent
	rep := Run(table, mapping, nil, testToday)

	if rep.RunID == "" {
		t.Fatalf("expected a run id")
	}
	if len(rep.Records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(rep.Records))
	}
	if len(rep.Rejected) != 1 {
		t.Fatalf("expected 1 rejected row, got %v", rep.Rejected)
	}
	if rep.Rejected[0].Row != 4 || rep.Rejected[0].Field != schema.FieldRentAmount {
		t.Fatalf("rejection should name row 4 rent_amount, got %v", rep.Rejected[0])
	}
	// Successes keep file order; the bad row is simply absent.
	want := []string{"Locality 0", "Locality 1", "Locality 3", "Locality 4"}
	var got []string
	for _, r := range rep.Records {
		got = append(got, r.Locality)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("record order = %v, want %v", got, want)
	}
	if rep.Stats.RowsRead != 5 || rep.Stats.Produced != 4 || rep.Stats.Rejected != 1 {
		t.Fatalf("stats wrong: %+v", rep.Stats)
	}
}

func TestRunParallelMatchesSequential(t *testing.T) {
	table, mapping := testTable(t, 40, 13)
	seq := Run(table, mapping, nil, testToday)
	par := RunParallel(table, mapping, nil, testToday, 8)

	if !reflect.DeepEqual(seq.Records, par.Records) {
		t.Fatalf("parallel records differ from sequential")
	}
	if !reflect.DeepEqual(seq.Rejected, par.Rejected) {
		t.Fatalf("parallel rejections differ from sequential")
	}
	if !reflect.DeepEqual(seq.Warnings, par.Warnings) {
		t.Fatalf("parallel warnings differ from sequential")
	}
	if seq.Stats != par.Stats {
		t.Fatalf("stats differ: %+v vs %+v", seq.Stats, par.Stats)
	}
}

func TestRunReportsMissingRequired(t *testing.T) {
	table, _ := testTable(t, 1, 0)
	mapping, _ := schema.AutoDetect([]string{"City"})
	rep := Run(table, mapping, []string{"Mystery Column"}, testToday)

	if len(rep.MissingRequired) != 9 {
		t.Fatalf("expected 9 missing required fields, got %v", rep.MissingRequired)
	}
	if !reflect.DeepEqual(rep.Unmatched, []string{"Mystery Column"}) {
		t.Fatalf("unmatched = %v", rep.Unmatched)
	}
	// With required fields unmapped every row is rejected, not dropped
	// silently.
	if len(rep.Records) != 0 || len(rep.Rejected) != 1 {
		t.Fatalf("expected 0 records and 1 rejection, got %d/%d", len(rep.Records), len(rep.Rejected))
	}
}

func TestRunWarnsOnDuplicateTargets(t *testing.T) {
	table, mapping := testTable(t, 1, 0)
	mapping, err := schema.ApplyOverrides(mapping, []schema.Override{{Column: "Town", Field: schema.FieldCity}})
	if err != nil {
		t.Fatalf("ApplyOverrides error: %v", err)
	}
	rep := Run(table, mapping, nil, testToday)

	found := false
	for _, w := range rep.Warnings {
		if w.Row == 0 && w.Field == schema.FieldCity && strings.Contains(w.Message, "last column") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a mapping-level duplicate warning, got %v", rep.Warnings)
	}
}
