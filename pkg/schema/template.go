package schema

// Template is the downloadable example table for bulk uploads: canonical
// headers plus one example row per supported property type.
type Template struct {
	Columns []string
	Rows    [][]string
}

// SampleTemplate builds the example table matching the canonical schema,
// with columns in declaration order and one row each for flat, villa, pg,
// shop and office. Pure function; cannot fail.
func SampleTemplate() Template {
	columns := make([]string, len(Fields))
	for i, f := range Fields {
		columns[i] = string(f)
	}
	return Template{
		Columns: columns,
		Rows: [][]string{
			{"flat", "2", "1200", "Mumbai", "Andheri West", "Near Metro Station", "5", "10", "semi", "25000", "50000", "2024-12-01", "Family", "Parking, Gym, Security", "Spacious apartment with modern amenities"},
			{"villa", "3", "2500", "Bangalore", "Koramangala", "Sony World Signal", "1", "2", "fully", "45000", "90000", "2024-12-15", "Family", "Garden, Swimming Pool, Power Backup", "Luxury villa with premium features"},
			{"pg", "1", "400", "Pune", "Kothrud", "Near FC Road", "2", "4", "unfurnished", "8000", "16000", "2024-12-01", "Students/Working Professionals", "WiFi, Meals", "Budget-friendly PG accommodation"},
			{"shop", "N/A", "800", "Delhi", "Connaught Place", "Central Park", "0", "2", "fully", "30000", "60000", "2025-01-01", "Commercial", "Parking, AC", "Prime location commercial shop"},
			{"office", "N/A", "1500", "Hyderabad", "Banjara Hills", "KBR Park", "3", "8", "semi", "40000", "80000", "2024-12-20", "Company", "Cafeteria, Parking", "Corporate office space"},
		},
	}
}
