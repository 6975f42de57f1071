package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"octofit/internal/domain/resource"
	"octofit/internal/observability"
)

// Unwrap decodes an upstream collection body into records.
// The body is either a bare JSON array or an object holding the array under
// "results". Any other valid JSON yields an empty, non-nil slice.
// PRE: body is the complete response body
// POST: err != nil only when body is not a single JSON value
func Unwrap(body []byte) ([]resource.Record, string, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, "", fmt.Errorf("decode body: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, "", errors.New("decode body: trailing data after JSON value")
	}

	switch val := v.(type) {
	case []any:
		return toRecords(val), observability.ShapeBare, nil
	case map[string]any:
		if results, ok := val["results"].([]any); ok {
			return toRecords(results), observability.ShapeEnvelope, nil
		}
	}
	return []resource.Record{}, observability.ShapeOther, nil
}

// toRecords keeps objects verbatim; any other element becomes an empty record
// so it still occupies a row and renders with placeholders.
func toRecords(items []any) []resource.Record {
	records := make([]resource.Record, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			m = map[string]any{}
		}
		records = append(records, resource.Record(m))
	}
	return records
}
