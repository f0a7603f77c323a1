package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RowIssue describes why a row, or one field of a row, could not be
// normalized cleanly. Row numbers are 1-based and count the header as row 1,
// so the first data row is row 2, matching spreadsheet conventions. A zero
// Row marks a mapping-level issue that applies to the whole import.
type RowIssue struct {
	Row     int    `json:"row"`
	Field   Field  `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *RowIssue) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Message)
	}
	return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Message)
}

// dateLayouts are tried in order when available_from arrives as text.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2 Jan 2006",
	"Jan 2, 2006",
}

// DateLayout is the calendar-date format PropertyRecord.AvailableFrom uses.
const DateLayout = "2006-01-02"

// DuplicateTargets returns, for every canonical field mapped from more than
// one source column, the source columns in mapping order. The normalizer
// takes the last column's value; callers surface the conflict as a warning.
func DuplicateTargets(mapping ColumnMapping) map[Field][]string {
	byField := make(map[Field][]string)
	for _, p := range mapping.Pairs() {
		byField[p.Field] = append(byField[p.Field], p.Source)
	}
	for f, cols := range byField {
		if len(cols) < 2 {
			delete(byField, f)
		}
	}
	return byField
}

// cell resolves the raw value for field f from one source row. When several
// mapped columns target f, the last one in mapping order wins. The second
// result reports whether any mapped column was present in the row at all.
func cell(row map[string]string, mapping ColumnMapping, f Field) (string, bool) {
	value, present := "", false
	for _, p := range mapping.Pairs() {
		if p.Field != f {
			continue
		}
		if v, ok := row[p.Source]; ok {
			value, present = v, true
		}
	}
	return value, present
}

// NormalizeRow coerces one source row into a PropertyRecord under the given
// mapping. It returns either a record plus any non-fatal warnings, or a
// RowIssue explaining the first required-field failure; a row is never
// partially filled. rowNum is the row's 1-based position in the source file
// (header is row 1). today supplies the fallback for available_from.
func NormalizeRow(row map[string]string, mapping ColumnMapping, rowNum int, today time.Time) (*PropertyRecord, []RowIssue, *RowIssue) {
	var warnings []RowIssue
	rec := &PropertyRecord{Amenities: []string{}}

	// Lower-cased required strings.
	for _, c := range []struct {
		field Field
		dst   *string
	}{
		{FieldPropertyType, &rec.PropertyType},
		{FieldFurnishingStatus, &rec.FurnishingStatus},
	} {
		v, ok := cell(row, mapping, c.field)
		v = strings.ToLower(strings.TrimSpace(v))
		if !ok || v == "" {
			return nil, nil, missingRequired(rowNum, c.field)
		}
		*c.dst = v
	}

	// Case-preserving required strings.
	for _, c := range []struct {
		field Field
		dst   *string
	}{
		{FieldBHK, &rec.BHK},
		{FieldCity, &rec.City},
		{FieldLocality, &rec.Locality},
		{FieldPreferredTenants, &rec.PreferredTenants},
	} {
		v, ok := cell(row, mapping, c.field)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			return nil, nil, missingRequired(rowNum, c.field)
		}
		*c.dst = v
	}

	// Required numbers.
	area, issue := requiredFloat(row, mapping, FieldAreaSqft, rowNum)
	if issue != nil {
		return nil, nil, issue
	}
	rec.AreaSqft = int(area)

	if rec.RentAmount, issue = requiredFloat(row, mapping, FieldRentAmount, rowNum); issue != nil {
		return nil, nil, issue
	}
	if rec.DepositAmount, issue = requiredFloat(row, mapping, FieldDepositAmount, rowNum); issue != nil {
		return nil, nil, issue
	}

	// Optional floors: absent or empty resolves to nil; an unparsable value
	// also resolves to nil but is reported back as a warning.
	for _, c := range []struct {
		field Field
		dst   **int
	}{
		{FieldFloorNo, &rec.FloorNo},
		{FieldTotalFloors, &rec.TotalFloors},
	} {
		raw, ok := cell(row, mapping, c.field)
		raw = strings.TrimSpace(raw)
		if !ok || raw == "" {
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			warnings = append(warnings, RowIssue{Row: rowNum, Field: c.field, Message: fmt.Sprintf("value %q is not a number; left unset", raw)})
			continue
		}
		n := int(f)
		*c.dst = &n
	}

	// Optional text.
	landmark, _ := cell(row, mapping, FieldLandmark)
	rec.Landmark = strings.TrimSpace(landmark)
	rough, _ := cell(row, mapping, FieldRoughDescription)
	rec.RoughDescription = strings.TrimSpace(rough)

	// Amenities: comma beats semicolon beats single value.
	if raw, _ := cell(row, mapping, FieldAmenities); strings.TrimSpace(raw) != "" {
		rec.Amenities = SplitAmenities(raw)
	}

	// Availability date: best effort, never rejects the row. An unparsable
	// value falls back to today and is surfaced as a warning so bad dates do
	// not vanish silently.
	raw, _ := cell(row, mapping, FieldAvailableFrom)
	raw = strings.TrimSpace(raw)
	date, ok := parseDate(raw)
	if !ok {
		date = today
		if raw != "" {
			warnings = append(warnings, RowIssue{Row: rowNum, Field: FieldAvailableFrom, Message: fmt.Sprintf("value %q is not a recognizable date; defaulted to %s", raw, today.Format(DateLayout))})
		}
	}
	rec.AvailableFrom = date.Format(DateLayout)

	return rec, warnings, nil
}

func missingRequired(rowNum int, f Field) *RowIssue {
	return &RowIssue{Row: rowNum, Field: f, Message: "required field is missing or empty"}
}

func requiredFloat(row map[string]string, mapping ColumnMapping, f Field, rowNum int) (float64, *RowIssue) {
	raw, ok := cell(row, mapping, f)
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return 0, missingRequired(rowNum, f)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &RowIssue{Row: rowNum, Field: f, Message: fmt.Sprintf("value %q is not a number", raw)}
	}
	return v, nil
}

// SplitAmenities splits a raw amenities cell into trimmed elements. Commas
// take precedence over semicolons; with neither present the whole trimmed
// string is a single element. Empty input yields an empty (non-nil) list.
func SplitAmenities(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{}
	}
	var parts []string
	switch {
	case strings.Contains(raw, ","):
		parts = strings.Split(raw, ",")
	case strings.Contains(raw, ";"):
		parts = strings.Split(raw, ";")
	default:
		return []string{trimmed}
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
