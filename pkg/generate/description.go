// Package generate turns normalized property records into marketing copy,
// either through a text-generation API or through a static template filler
// when no API is reachable.
package generate

import "errors"

// Description is the structured document a generation call produces.
type Description struct {
	Title           string   `json:"title"`
	TeaserText      string   `json:"teaser_text"`
	FullDescription string   `json:"full_description"`
	BulletPoints    []string `json:"bullet_points"`
	SEOKeywords     []string `json:"seo_keywords"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
}

// Validate rejects documents the model returned structurally intact but
// unusable for listing pages.
func (d *Description) Validate() error {
	if d.Title == "" {
		return errors.New("missing title")
	}
	if d.FullDescription == "" {
		return errors.New("missing full_description")
	}
	return nil
}
