package workflow

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// The loose types decode model replies without failing on a field whose JSON
// type is off. A value that cannot be read as the wanted type is left unset,
// so only a missing or malformed JSON object fails extraction.

// looseString reads a string, a number, or a boolean as text.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var v any
	if err := decodeNumber(data, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		*s = looseString(t)
	case json.Number:
		*s = looseString(t.String())
	case bool:
		*s = looseString(strconv.FormatBool(t))
	}
	return nil
}

// looseInt reads an integral number or an integer string. Fractions, values
// outside the int32 range, and free text such as "12 pallets" leave it unset.
type looseInt struct {
	value int
	set   bool
}

func (n *looseInt) UnmarshalJSON(data []byte) error {
	var v any
	if err := decodeNumber(data, &v); err != nil {
		return nil
	}

	var raw string
	switch t := v.(type) {
	case json.Number:
		raw = t.String()
	case string:
		raw = strings.TrimSpace(t)
	default:
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return nil
	}
	n.value, n.set = int(f), true
	return nil
}

// looseBool reads a boolean or a string such as "true", "False", or "1".
type looseBool struct {
	value bool
	set   bool
}

func (b *looseBool) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case bool:
		b.value, b.set = t, true
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
			b.value, b.set = parsed, true
		}
	}
	return nil
}

// looseList reads an array of strings or a single string. Numbers in an
// array are kept as text; other elements are skipped.
type looseList []string

func (l *looseList) UnmarshalJSON(data []byte) error {
	var v any
	if err := decodeNumber(data, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		if t = strings.TrimSpace(t); t != "" {
			*l = looseList{t}
		}
	case []any:
		out := make(looseList, 0, len(t))
		for _, item := range t {
			switch e := item.(type) {
			case string:
				out = append(out, e)
			case json.Number:
				out = append(out, e.String())
			}
		}
		*l = out
	}
	return nil
}

func decodeNumber(data []byte, v *any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func optString(s looseString) *string {
	if s == "" {
		return nil
	}
	v := string(s)
	return &v
}

func optInt(n looseInt) *int {
	if !n.set {
		return nil
	}
	return &n.value
}

func optBool(b looseBool) *bool {
	if !b.set {
		return nil
	}
	return &b.value
}

func orEmpty(list looseList) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
