package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"rentgen/pkg/schema"
)

// Client is a text-generation backend. CompleteJSON sends one system prompt
// plus one user message and returns the raw model output, which should
// contain a single JSON object.
type Client interface {
	CompleteJSON(ctx context.Context, systemPrompt, user string) (string, error)
}

// Describe produces the marketing document for one record. With a nil
// client it fills the static template directly. When the client fails —
// network, timeout, or a response that is not the expected document — it
// degrades to the same template and returns the failure so callers can log
// it; the returned Description is always usable.
func Describe(ctx context.Context, cli Client, rec schema.PropertyRecord, tone string) (*Description, error) {
	if cli == nil {
		return FillTemplate(rec), nil
	}

	raw, err := cli.CompleteJSON(ctx, systemPrompt, BuildPrompt(rec, tone))
	if err != nil {
		return FillTemplate(rec), err
	}

	doc, err := parseDescription(raw)
	if err != nil {
		return FillTemplate(rec), err
	}
	return doc, nil
}

func parseDescription(raw string) (*Description, error) {
	jsonPart, err := extractJSONObject(raw)
	if err != nil {
		return nil, fmt.Errorf("no JSON object in model output: %w", err)
	}
	var doc Description
	dec := json.NewDecoder(strings.NewReader(jsonPart))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("model output does not match the description schema: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// extractJSONObject scans for the first balanced JSON object in s. Models
// often wrap their JSON in prose or code fences; everything around the
// braces is ignored.
func extractJSONObject(s string) (string, error) {
	start := -1
	depth := 0
	for i, r := range s {
		switch r {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					return s[start : i+1], nil
				}
			}
		}
	}
	return "", errors.New("no balanced JSON object found")
}
