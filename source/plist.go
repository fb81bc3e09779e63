package source

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"howett.net/plist"
)

// decodePlist decodes an OpenStep, XML or binary property list.
func decodePlist(b []byte) (any, error) {
	var v any
	if _, err := plist.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return normalizePlist(v), nil
}

// normalizePlist rewrites typed scalars of XML/binary lists as strings.
// OpenStep lists already decode to strings only.
func normalizePlist(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizePlist(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = normalizePlist(vv)
		}
		return out
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return "0"
	case uint64:
		return strconv.FormatUint(t, 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case []byte:
		return hex.EncodeToString(t)
	case time.Time:
		return t.UTC().Format("2006-01-02 15:04:05 +0000")
	}
	return fmt.Sprint(v)
}
