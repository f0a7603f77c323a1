// Package report assembles the outcome of one bulk-import run: the resolved
// column mapping, the normalized records, and every diagnostic the run
// produced. Nothing here aborts on bad user data; rows fail individually and
// the rest of the batch proceeds.
package report

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"rentgen/pkg/parser"
	"rentgen/pkg/schema"
)

// Stats counts the outcomes of one import run.
type Stats struct {
	RowsRead int `json:"rowsRead"`
	Produced int `json:"produced"`
	Rejected int `json:"rejected"`
	Warnings int `json:"warnings"`
}

// ImportReport is the full outcome of one bulk-import attempt. It is created
// fresh per uploaded file and never persisted by this package.
type ImportReport struct {
	RunID           string                  `json:"runId"`
	Mapping         schema.ColumnMapping    `json:"mapping"`
	Unmatched       []string                `json:"unmatched"`
	MissingRequired []schema.Field          `json:"missingRequired"`
	Records         []schema.PropertyRecord `json:"records"`
	Rejected        []schema.RowIssue       `json:"rejected"`
	Warnings        []schema.RowIssue       `json:"warnings"`
	Stats           Stats                   `json:"stats"`
}

// rowResult holds one row's normalization outcome, slotted by row position
// so parallel workers never contend and assembly preserves file order.
type rowResult struct {
	record   *schema.PropertyRecord
	warnings []schema.RowIssue
	failure  *schema.RowIssue
}

// Run normalizes every table row under mapping and assembles the report.
// unmatched carries the source columns auto-detection could not place, for
// the report's record of the session. today supplies the available_from
// fallback date. Row order among successful records follows file order.
func Run(table *parser.Table, mapping schema.ColumnMapping, unmatched []string, today time.Time) *ImportReport {
	return run(table, mapping, unmatched, today, 1)
}

// RunParallel is Run with row normalization fanned out over the given number
// of workers. Rows are independent, so workers share only the immutable
// mapping; each writes into its own result slot and the slots are merged in
// row order afterward. workers < 2 degrades to the sequential path.
func RunParallel(table *parser.Table, mapping schema.ColumnMapping, unmatched []string, today time.Time, workers int) *ImportReport {
	return run(table, mapping, unmatched, today, workers)
}

func run(table *parser.Table, mapping schema.ColumnMapping, unmatched []string, today time.Time, workers int) *ImportReport {
	r := &ImportReport{
		RunID:           uuid.NewString(),
		Mapping:         mapping,
		Unmatched:       append([]string(nil), unmatched...),
		MissingRequired: schema.MissingRequired(mapping),
	}
	r.Stats.RowsRead = len(table.Rows)

	// Mapping-level conflicts are reported once per import, not per row.
	for _, f := range sortedDuplicateFields(mapping) {
		cols := schema.DuplicateTargets(mapping)[f]
		r.Warnings = append(r.Warnings, schema.RowIssue{
			Field:   f,
			Message: fmt.Sprintf("columns %v all map to %s; the last column's value wins", cols, f),
		})
	}

	results := make([]rowResult, len(table.Rows))
	if workers < 2 || len(table.Rows) < 2 {
		for i, row := range table.Rows {
			results[i] = normalizeOne(row, mapping, today)
		}
	} else {
		indexes := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range indexes {
					results[i] = normalizeOne(table.Rows[i], mapping, today)
				}
			}()
		}
		for i := range table.Rows {
			indexes <- i
		}
		close(indexes)
		wg.Wait()
	}

	for _, res := range results {
		r.Warnings = append(r.Warnings, res.warnings...)
		if res.failure != nil {
			r.Rejected = append(r.Rejected, *res.failure)
			continue
		}
		r.Records = append(r.Records, *res.record)
	}

	r.Stats.Produced = len(r.Records)
	r.Stats.Rejected = len(r.Rejected)
	r.Stats.Warnings = len(r.Warnings)
	return r
}

func normalizeOne(row parser.Row, mapping schema.ColumnMapping, today time.Time) rowResult {
	rec, warns, failure := schema.NormalizeRow(row.Fields, mapping, row.Number, today)
	return rowResult{record: rec, warnings: warns, failure: failure}
}

func sortedDuplicateFields(mapping schema.ColumnMapping) []schema.Field {
	dups := schema.DuplicateTargets(mapping)
	fields := make([]schema.Field, 0, len(dups))
	for f := range dups {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}
