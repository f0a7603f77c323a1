package export

import (
	"encoding/json"
	"io"
	"time"

	"rentgen/pkg/generate"
)

// resultsDoc is the JSON results envelope.
type resultsDoc struct {
	RunID       string            `json:"run_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Results     []generate.Result `json:"results"`
}

// WriteResultsJSON writes the full result set as indented JSON.
func WriteResultsJSON(w io.Writer, runID string, results []generate.Result) error {
	doc := resultsDoc{
		RunID:       runID,
		GeneratedAt: time.Now(),
		Results:     results,
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
