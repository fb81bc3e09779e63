package codec

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	glyphscast "github.com/reoring/glyphscast"
)

// Identity returns v unchanged.
func Identity(v any) (any, error) { return v, nil }

// String passes strings through and renders any other value with fmt.
func String(v any) (any, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprint(v), nil
}

// List shallow-copies a sequence.
func List(v any) (any, error) {
	seq, ok := v.([]any)
	if !ok {
		return nil, glyphscast.Fail(glyphscast.CodeInvalidType, "sequence", nil)
	}
	return slices.Clone(seq), nil
}

// Dict shallow-copies a mapping.
func Dict(v any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, glyphscast.Fail(glyphscast.CodeInvalidType, "mapping", nil)
	}
	return maps.Clone(m), nil
}

// Truthy reads an integer stored in a string and reports whether it is
// non-zero.
func Truthy(v any) (any, error) {
	n, err := toInt(v)
	if err != nil {
		return nil, err
	}
	return n != 0, nil
}

// Int casts a decimal integer string.
func Int(v any) (any, error) {
	n, err := toInt(v)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Num casts a numeric string, preferring int when the value is integral.
func Num(v any) (any, error) {
	s, err := text(v)
	if err != nil {
		return nil, err
	}
	return ParseNum(s)
}

// ParseNum parses s as a float and returns an int when the value has no
// fractional part and fits in an int, the float64 otherwise.
func ParseNum(s string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, glyphscast.Fail(glyphscast.CodeInvalidFormat, "number", err, "got", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, glyphscast.Fail(glyphscast.CodeInvalidFormat, "finite number", nil, "got", s)
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int(f), nil
	}
	return f, nil
}

// HexInt casts a hexadecimal string such as a glyph's unicode value.
func HexInt(v any) (any, error) {
	s, err := text(v)
	if err != nil {
		return nil, err
	}
	h := strings.TrimSpace(s)
	neg := strings.HasPrefix(h, "-")
	if neg || strings.HasPrefix(h, "+") {
		h = h[1:]
	}
	if len(h) > 2 && (h[:2] == "0x" || h[:2] == "0X") {
		h = h[2:]
	}
	// Only one sign, and only in front of the prefix.
	if strings.HasPrefix(h, "+") || strings.HasPrefix(h, "-") {
		return nil, glyphscast.Fail(glyphscast.CodeInvalidFormat, "hexadecimal integer", nil, "got", s)
	}
	n, perr := strconv.ParseInt(h, 16, 64)
	if perr != nil {
		return nil, glyphscast.Fail(glyphscast.CodeInvalidFormat, "hexadecimal integer", perr, "got", s)
	}
	if neg {
		n = -n
	}
	return int(n), nil
}

// text asserts that a raw value is a string.
func text(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", glyphscast.Fail(glyphscast.CodeInvalidType, "string", nil, "got", fmt.Sprintf("%T", v))
	}
	return s, nil
}

func toInt(v any) (int, error) {
	s, err := text(v)
	if err != nil {
		return 0, err
	}
	return parseInt(s)
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, glyphscast.Fail(glyphscast.CodeInvalidFormat, "integer", err, "got", s)
	}
	return n, nil
}
