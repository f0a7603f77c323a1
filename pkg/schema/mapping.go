package schema

import (
	"fmt"
	"strings"
)

// aliases lists the known header spellings for each canonical field.
// Matching walks Fields in declaration order, so when one spelling appears
// under two fields (e.g. "Area" under both area_sqft and locality) the
// earlier field wins unless it was already claimed by another column.
var aliases = map[Field][]string{
	FieldPropertyType:     {"property_type", "property type", "Property Type", "type", "Type", "property"},
	FieldBHK:              {"bhk", "BHK", "Bhk", "bedroom", "bedrooms", "Bedrooms"},
	FieldAreaSqft:         {"area_sqft", "area", "Area", "area_sq_ft", "sqft", "square_feet", "Area (sqft)", "Area (Sqft)"},
	FieldCity:             {"city", "City", "CITY", "town"},
	FieldLocality:         {"locality", "Locality", "location", "Location", "area_name", "Area"},
	FieldLandmark:         {"landmark", "Landmark", "nearby", "Near By", "reference"},
	FieldFloorNo:          {"floor_no", "floor", "Floor", "floor_number", "Floor Number"},
	FieldTotalFloors:      {"total_floors", "total_floor", "Total Floors", "totalfloors", "Total Floor"},
	FieldFurnishingStatus: {"furnishing_status", "furnishing", "Furnishing", "Furnishing Status", "furnished", "Furnished"},
	FieldRentAmount:       {"rent_amount", "rent", "Rent", "monthly_rent", "rental_amount", "Rent Amount", "Monthly Rent"},
	FieldDepositAmount:    {"deposit_amount", "deposit", "Deposit", "security_deposit", "Security Deposit", "Deposit Amount"},
	FieldAvailableFrom:    {"available_from", "available", "Available From", "availability", "date", "Date", "Available"},
	FieldPreferredTenants: {"preferred_tenants", "tenants", "Preferred Tenants", "tenant_type", "Tenant Type"},
	FieldAmenities:        {"amenities", "Amenities", "facilities", "Facilities"},
	FieldRoughDescription: {"rough_description", "description", "Description", "notes", "Notes", "remarks"},
}

// Aliases returns a copy of the known header spellings for f.
func Aliases(f Field) []string {
	return append([]string(nil), aliases[f]...)
}

// MappedColumn is one resolved source-column to canonical-field pair.
type MappedColumn struct {
	Source string `json:"source"`
	Field  Field  `json:"field"`
}

// ColumnMapping relates source column names, as they literally appear in the
// uploaded file, to canonical fields. Column order is preserved: automatic
// detection inserts columns in file order, and replacing a column's target
// keeps its position while a newly overridden column appends. The Row
// Normalizer relies on this order for its last-one-wins duplicate policy.
type ColumnMapping struct {
	order   []string
	targets map[string]Field
}

// NewColumnMapping returns an empty mapping.
func NewColumnMapping() ColumnMapping {
	return ColumnMapping{targets: make(map[string]Field)}
}

// Set maps source to field, replacing any previous target for source.
func (m *ColumnMapping) Set(source string, field Field) {
	if m.targets == nil {
		m.targets = make(map[string]Field)
	}
	if _, exists := m.targets[source]; !exists {
		m.order = append(m.order, source)
	}
	m.targets[source] = field
}

// Unset removes any mapping for source.
func (m *ColumnMapping) Unset(source string) {
	if _, exists := m.targets[source]; !exists {
		return
	}
	delete(m.targets, source)
	for i, s := range m.order {
		if s == source {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Field returns the canonical field mapped for source, if any.
func (m ColumnMapping) Field(source string) (Field, bool) {
	f, ok := m.targets[source]
	return f, ok
}

// Columns returns the mapped source columns in mapping order.
func (m ColumnMapping) Columns() []string {
	return append([]string(nil), m.order...)
}

// Pairs returns the mapping as ordered source/field pairs.
func (m ColumnMapping) Pairs() []MappedColumn {
	pairs := make([]MappedColumn, 0, len(m.order))
	for _, s := range m.order {
		pairs = append(pairs, MappedColumn{Source: s, Field: m.targets[s]})
	}
	return pairs
}

// Len returns the number of mapped source columns.
func (m ColumnMapping) Len() int {
	return len(m.order)
}

// Clone returns an independent copy of the mapping.
func (m ColumnMapping) Clone() ColumnMapping {
	c := ColumnMapping{
		order:   append([]string(nil), m.order...),
		targets: make(map[string]Field, len(m.targets)),
	}
	for s, f := range m.targets {
		c.targets[s] = f
	}
	return c
}

// MarshalJSON renders the mapping as its ordered pairs.
func (m ColumnMapping) MarshalJSON() ([]byte, error) {
	pairs := m.Pairs()
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `{"source":%q,"field":%q}`, p.Source, p.Field)
	}
	b.WriteByte(']')
	return []byte(b.String()), nil
}

// AutoDetect maps source column headers onto canonical fields.
// Per column, in file order:
//  1. Trim surrounding whitespace and look for the exact spelling in any
//     field's alias set (case-sensitive).
//  2. Failing that, compare lower-cased spellings (case-insensitive).
//  3. Failing both, report the column as unmatched.
//
// Fields are scanned in declaration order, and a field already claimed by an
// earlier column is skipped so that no two columns auto-map to the same
// field; the column falls through to the next field listing the same alias.
// Unmatched columns are returned in file order. Pure function of its input
// and the static alias table.
func AutoDetect(sourceColumns []string) (ColumnMapping, []string) {
	mapping := NewColumnMapping()
	var unmatched []string
	claimed := make(map[Field]bool)

	for _, col := range sourceColumns {
		candidate := strings.TrimSpace(col)

		field, ok := matchExact(candidate, claimed)
		if !ok {
			field, ok = matchFold(candidate, claimed)
		}
		if !ok {
			unmatched = append(unmatched, col)
			continue
		}
		mapping.Set(col, field)
		claimed[field] = true
	}

	return mapping, unmatched
}

func matchExact(candidate string, claimed map[Field]bool) (Field, bool) {
	for _, f := range Fields {
		if claimed[f] {
			continue
		}
		for _, a := range aliases[f] {
			if candidate == a {
				return f, true
			}
		}
	}
	return "", false
}

func matchFold(candidate string, claimed map[Field]bool) (Field, bool) {
	lower := strings.ToLower(candidate)
	for _, f := range Fields {
		if claimed[f] {
			continue
		}
		for _, a := range aliases[f] {
			if lower == strings.ToLower(a) {
				return f, true
			}
		}
	}
	return "", false
}

// Skip is the override target that removes a column's mapping.
const Skip Field = "skip"

// Override assigns or clears the mapping for one source column.
type Override struct {
	Column string
	Field  Field
}

// ApplyOverrides returns a copy of mapping with the overrides applied in
// order. A Skip target removes the column's mapping; any other target
// replaces it, regardless of the automatic result. Targets that are not
// canonical fields indicate caller misuse and return an error. After
// overrides a canonical field may be the target of several columns; the Row
// Normalizer resolves that with its last-one-wins policy.
func ApplyOverrides(mapping ColumnMapping, overrides []Override) (ColumnMapping, error) {
	out := mapping.Clone()
	for _, ov := range overrides {
		if ov.Field == Skip {
			out.Unset(ov.Column)
			continue
		}
		if !ov.Field.Valid() {
			return ColumnMapping{}, fmt.Errorf("override for column %q: unknown canonical field %q", ov.Column, ov.Field)
		}
		out.Set(ov.Column, ov.Field)
	}
	return out, nil
}

// MissingRequired returns every required canonical field with no source
// column mapped to it, in declaration order. Callers use it to decide
// whether row processing may proceed.
func MissingRequired(mapping ColumnMapping) []Field {
	mapped := make(map[Field]bool, mapping.Len())
	for _, p := range mapping.Pairs() {
		mapped[p.Field] = true
	}
	var missing []Field
	for _, f := range RequiredFields {
		if !mapped[f] {
			missing = append(missing, f)
		}
	}
	return missing
}
