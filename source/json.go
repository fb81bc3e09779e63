package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

// decodeJSON decodes JSON keeping number literals verbatim.
func decodeJSON(b []byte) (any, error) {
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after JSON document")
	}
	return normalizeJSON(v), nil
}

// normalizeJSON turns numbers into their literal text, booleans into "1"/"0"
// and drops null members so they read as absent fields.
func normalizeJSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			if vv == nil {
				continue
			}
			out[k] = normalizeJSON(vv)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, vv := range t {
			if vv == nil {
				continue
			}
			out = append(out, normalizeJSON(vv))
		}
		return out
	case j.Number:
		return string(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		if t {
			return "1"
		}
		return "0"
	}
	return v
}
