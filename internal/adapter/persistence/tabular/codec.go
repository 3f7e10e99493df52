package tabular

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Nested-field codec: ordered lists of flat sub-records are stored as JSON in
// a single table cell. Decoding is total: nil, blank, truncated or otherwise
// malformed cells come back as an empty list together with an ErrMalformedCell
// diagnostic, so one corrupt cell never blocks loading the rest of the row.

// EncodeList serializes a list into its cell representation. An empty or nil
// list encodes to "[]" and round-trips back to an empty list.
func EncodeList[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode nested field: %w", err)
	}
	return string(b), nil
}

// DecodeList is the inverse of EncodeList. The returned slice is always usable;
// the error, when non-nil, only tags that corrupt input was replaced by the
// empty list.
func DecodeList[T any](cell string) ([]T, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal([]byte(cell), &out); err != nil {
		return []T{}, fmt.Errorf("%w: %v", ErrMalformedCell, err)
	}
	if out == nil {
		return []T{}, nil
	}
	return out, nil
}

// DecodeStrings decodes a photo-reference cell. Besides the JSON form it
// accepts the legacy ";"-separated encoding written by earlier versions of the
// system.
func DecodeStrings(cell string) ([]string, error) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return []string{}, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		return DecodeList[string](trimmed)
	}
	parts := strings.Split(trimmed, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}
