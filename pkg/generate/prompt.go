package generate

import (
	"fmt"
	"strings"

	"rentgen/pkg/schema"
)

const systemPrompt = `You are an expert real estate copywriter. You respond only with a single JSON object matching exactly this schema (no explanations):
{
    "title": "Catchy headline under 100 characters",
    "teaser_text": "Brief 1-2 line summary",
    "full_description": "2-4 detailed paragraphs highlighting location benefits, property features, lifestyle advantages",
    "bullet_points": ["4-8 key highlights as short bullet points"],
    "seo_keywords": ["8-12 relevant SEO keywords"],
    "meta_title": "SEO title under 60 characters",
    "meta_description": "SEO description 150-160 characters"
}`

// BuildPrompt renders the user message for one property. tone steers the
// writing style ("professional" when empty).
func BuildPrompt(rec schema.PropertyRecord, tone string) string {
	if tone == "" {
		tone = "professional"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s, engaging, and SEO-friendly rental property description.\n\n", tone)
	b.WriteString("Property Details:\n")
	fmt.Fprintf(&b, "- Type: %s\n", orNA(rec.PropertyType))
	fmt.Fprintf(&b, "- BHK: %s\n", orNA(rec.BHK))
	fmt.Fprintf(&b, "- Area: %d sq ft\n", rec.AreaSqft)
	fmt.Fprintf(&b, "- Location: %s, %s\n", orNA(rec.Locality), orNA(rec.City))
	fmt.Fprintf(&b, "- Landmark: %s\n", orNA(rec.Landmark))
	fmt.Fprintf(&b, "- Floor: %s out of %s\n", intOrNA(rec.FloorNo), intOrNA(rec.TotalFloors))
	fmt.Fprintf(&b, "- Furnishing: %s\n", orNA(rec.FurnishingStatus))
	fmt.Fprintf(&b, "- Rent: Rs.%.0f/month\n", rec.RentAmount)
	fmt.Fprintf(&b, "- Deposit: Rs.%.0f\n", rec.DepositAmount)
	fmt.Fprintf(&b, "- Available From: %s\n", orNA(rec.AvailableFrom))
	fmt.Fprintf(&b, "- Preferred Tenants: %s\n", orNA(rec.PreferredTenants))
	fmt.Fprintf(&b, "- Amenities: %s\n", strings.Join(rec.Amenities, ", "))
	fmt.Fprintf(&b, "- Owner Notes: %s\n", rec.RoughDescription)
	b.WriteString("\nMake it compelling, professional, and conversion-focused!")
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func intOrNA(n *int) string {
	if n == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *n)
}
