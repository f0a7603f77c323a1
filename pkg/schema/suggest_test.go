package schema

import "testing"

func TestSuggestTypos(t *testing.T) {
	cases := []struct {
		column string
		want   Field
		ok     bool
	}{
		{"Rnt", FieldRentAmount, true},
		{"Citty", FieldCity, true},
		{"Amenties", FieldAmenities, true},
		{"Depositt Amount", FieldDepositAmount, true},
		{"  furnishing ", FieldFurnishingStatus, true},
		{"zzzzzz", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := Suggest(c.column)
		if ok != c.ok || got != c.want {
			t.Fatalf("Suggest(%q) = %q, %v; want %q, %v", c.column, got, ok, c.want, c.ok)
		}
	}
}

func TestSuggestExactAliasScoresFull(t *testing.T) {
	if got, ok := Suggest("Monthly Rent"); !ok || got != FieldRentAmount {
		t.Fatalf("exact alias should always suggest: got %q, %v", got, ok)
	}
}
