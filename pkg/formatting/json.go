package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSON is returned when model output contains no brace-delimited span.
var ErrNoJSON = errors.New("no JSON object in content")

// ErrParseFailed is returned when the extracted span is not valid JSON for the target type.
var ErrParseFailed = errors.New("failed to parse response")

// ExtractJSON returns the greedy span from the first '{' to the last '}' in content.
// Prose and markdown fences around the object are discarded; braces inside the
// span are kept as-is, so trailing commentary containing '}' extends the match.
func ExtractJSON(content string) (string, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSON
	}
	return content[start : end+1], nil
}

// Parse extracts the JSON span from content and unmarshals it into T.
func Parse[T any](content string) (T, error) {
	var result T

	span, err := ExtractJSON(content)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal([]byte(span), &result); err != nil {
		return result, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	return result, nil
}
