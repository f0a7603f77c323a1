// Package export serializes import results and templates for download:
// CSV with a UTF-8 BOM and CRLF line endings for spreadsheet tools, and
// indented JSON for everything else.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"rentgen/pkg/generate"
	"rentgen/pkg/schema"
)

var titleCaser = cases.Title(language.English)

// resultHeader is the column set of the results spreadsheet.
var resultHeader = []string{
	"Property Type", "BHK", "City", "Locality", "Area (sqft)",
	"Rent", "Deposit", "Furnishing",
	"Title", "Teaser", "Full Description", "Bullet Points",
	"Meta Title", "Meta Description", "SEO Keywords",
}

// WriteResultsCSV writes one row per generated description, property
// attributes first and the generated copy after.
func WriteResultsCSV(w io.Writer, results []generate.Result) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(resultHeader); err != nil {
		return err
	}
	for _, res := range results {
		rec, desc := res.Record, res.Description
		row := []string{
			titleCaser.String(rec.PropertyType),
			rec.BHK,
			rec.City,
			rec.Locality,
			fmt.Sprintf("%d", rec.AreaSqft),
			fmt.Sprintf("%g", rec.RentAmount),
			fmt.Sprintf("%g", rec.DepositAmount),
			titleCaser.String(rec.FurnishingStatus),
			desc.Title,
			desc.TeaserText,
			desc.FullDescription,
			strings.Join(desc.BulletPoints, " | "),
			desc.MetaTitle,
			desc.MetaDescription,
			strings.Join(desc.SEOKeywords, ", "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTemplateCSV writes the bulk-upload sample template.
func WriteTemplateCSV(w io.Writer, t schema.Template) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
