package generate

import "rentgen/pkg/schema"

// Source values for Result.
const (
	SourceAnthropic = "anthropic"
	SourceOpenAI    = "openai"
	SourceTemplate  = "template"
)

// Result pairs one property with its generated description and how it was
// produced.
type Result struct {
	Record      schema.PropertyRecord `json:"property"`
	Description Description           `json:"description"`
	Source      string                `json:"source"`
	LatencyMS   int64                 `json:"latency_ms"`
}
