package schema

// Field identifies one canonical property attribute.
type Field string

// The canonical fields, in declaration order. Declaration order is the
// tie-break order for alias matching and the reporting order for missing
// required fields.
const (
	FieldPropertyType     Field = "property_type"
	FieldBHK              Field = "bhk"
	FieldAreaSqft         Field = "area_sqft"
	FieldCity             Field = "city"
	FieldLocality         Field = "locality"
	FieldLandmark         Field = "landmark"
	FieldFloorNo          Field = "floor_no"
	FieldTotalFloors      Field = "total_floors"
	FieldFurnishingStatus Field = "furnishing_status"
	FieldRentAmount       Field = "rent_amount"
	FieldDepositAmount    Field = "deposit_amount"
	FieldAvailableFrom    Field = "available_from"
	FieldPreferredTenants Field = "preferred_tenants"
	FieldAmenities        Field = "amenities"
	FieldRoughDescription Field = "rough_description"
)

// Fields lists every canonical field in declaration order.
var Fields = []Field{
	FieldPropertyType,
	FieldBHK,
	FieldAreaSqft,
	FieldCity,
	FieldLocality,
	FieldLandmark,
	FieldFloorNo,
	FieldTotalFloors,
	FieldFurnishingStatus,
	FieldRentAmount,
	FieldDepositAmount,
	FieldAvailableFrom,
	FieldPreferredTenants,
	FieldAmenities,
	FieldRoughDescription,
}

// RequiredFields lists the fields a row must produce a valid value for
// before a PropertyRecord is emitted, in declaration order.
var RequiredFields = []Field{
	FieldPropertyType,
	FieldBHK,
	FieldAreaSqft,
	FieldCity,
	FieldLocality,
	FieldFurnishingStatus,
	FieldRentAmount,
	FieldDepositAmount,
	FieldAvailableFrom,
	FieldPreferredTenants,
}

var requiredSet = func() map[Field]bool {
	m := make(map[Field]bool, len(RequiredFields))
	for _, f := range RequiredFields {
		m[f] = true
	}
	return m
}()

// Valid reports whether f is one of the canonical fields.
func (f Field) Valid() bool {
	_, ok := aliases[f]
	return ok
}

// Required reports whether a row must supply a value for f.
func (f Field) Required() bool {
	return requiredSet[f]
}

// PropertyRecord is one normalized property entry, ready for description
// generation. Optional fields carry their defaults when unmapped or empty:
// "" for text, nil for the floor numbers, an empty slice for amenities.
// Records are immutable once produced.
type PropertyRecord struct {
	PropertyType     string   `json:"property_type"`
	BHK              string   `json:"bhk"`
	AreaSqft         int      `json:"area_sqft"`
	City             string   `json:"city"`
	Locality         string   `json:"locality"`
	Landmark         string   `json:"landmark"`
	FloorNo          *int     `json:"floor_no"`
	TotalFloors      *int     `json:"total_floors"`
	FurnishingStatus string   `json:"furnishing_status"`
	RentAmount       float64  `json:"rent_amount"`
	DepositAmount    float64  `json:"deposit_amount"`
	AvailableFrom    string   `json:"available_from"` // YYYY-MM-DD
	PreferredTenants string   `json:"preferred_tenants"`
	Amenities        []string `json:"amenities"`
	RoughDescription string   `json:"rough_description"`
}
