package generate

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"rentgen/pkg/schema"
)

var titleCaser = cases.Title(language.English)

// FillTemplate builds a serviceable description from the record alone, used
// when no generation backend is configured or the backend call failed.
// Deterministic; cannot fail.
func FillTemplate(rec schema.PropertyRecord) *Description {
	bhk := rec.BHK
	propType := titleCaser.String(rec.PropertyType)
	propLower := rec.PropertyType
	locality := rec.Locality
	city := rec.City

	return &Description{
		Title:      fmt.Sprintf("Spacious %s BHK %s for Rent in %s", bhk, propType, locality),
		TeaserText: fmt.Sprintf("Well-maintained %s BHK property in prime %s location with excellent connectivity.", bhk, locality),
		FullDescription: fmt.Sprintf(
			"This beautiful %s BHK %s in %s, %s offers comfortable living with modern amenities. "+
				"The property features spacious rooms with ample natural light and ventilation. "+
				"Located in a peaceful neighborhood with easy access to markets, schools, and public transport. "+
				"Perfect for families looking for a convenient and comfortable home. "+
				"The property is well-maintained and ready for immediate occupancy.",
			bhk, propLower, locality, city),
		BulletPoints: []string{
			fmt.Sprintf("Spacious %s BHK with %d sq ft area", bhk, rec.AreaSqft),
			fmt.Sprintf("%s with modern fittings", titleCaser.String(rec.FurnishingStatus)),
			fmt.Sprintf("Located in %s with excellent connectivity", locality),
			"24/7 security and power backup available",
			"Close to schools, hospitals and shopping centers",
		},
		SEOKeywords: []string{
			fmt.Sprintf("%s bhk rent %s", bhk, city),
			fmt.Sprintf("%s %s for rent", locality, propLower),
			fmt.Sprintf("rental property %s", city),
			fmt.Sprintf("%s for family %s", propLower, city),
			fmt.Sprintf("rent %s %s", propLower, locality),
		},
		MetaTitle:       fmt.Sprintf("%s BHK %s for Rent in %s, %s", bhk, propType, locality, city),
		MetaDescription: fmt.Sprintf("Find your ideal %s BHK %s in %s, %s. Well-maintained property with modern amenities. Contact now for viewing!", bhk, propLower, locality, city),
	}
}
