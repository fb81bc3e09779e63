package codec

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	glyphscast "github.com/reoring/glyphscast"
)

// Vector is an ordered list of numbers; each element is an int or a float64
// as decided by ParseNum.
type Vector []any

// Float returns element i as a float64.
func (v Vector) Float(i int) float64 {
	switch n := v[i].(type) {
	case int:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

const numberPattern = `([-.e\d]+)`

var vectorPatterns sync.Map // dimension -> *regexp.Regexp

// vectorPattern matches "{n1, n2, ...}" with exactly dim components, anchored
// at the start of the string only.
func vectorPattern(dim int) *regexp.Regexp {
	if re, ok := vectorPatterns.Load(dim); ok {
		return re.(*regexp.Regexp)
	}
	parts := make([]string, dim)
	for i := range parts {
		parts[i] = numberPattern
	}
	re := regexp.MustCompile(`^\{` + strings.Join(parts, ", ") + `\}`)
	actual, _ := vectorPatterns.LoadOrStore(dim, re)
	return actual.(*regexp.Regexp)
}

// ParseVector parses a string of the form "{X, Y, Z, ...}" holding exactly dim
// numbers.
func ParseVector(s string, dim int) (Vector, error) {
	m := vectorPattern(dim).FindStringSubmatch(s)
	if m == nil {
		return nil, glyphscast.Fail(glyphscast.CodeInvalidFormat, "{"+strconv.Itoa(dim)+" comma separated numbers}", nil, "got", s, "dimension", dim)
	}
	out := make(Vector, dim)
	for i, part := range m[1:] {
		n, err := ParseNum(part)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// VectorOf returns a converter for vectors of the given dimension.
func VectorOf(dim int) glyphscast.Converter {
	return func(v any) (any, error) {
		s, err := text(v)
		if err != nil {
			return nil, err
		}
		return ParseVector(s, dim)
	}
}

var (
	pointConverter     = VectorOf(2)
	transformConverter = VectorOf(6)
)

// Point casts "{X, Y}".
func Point(v any) (any, error) { return pointConverter(v) }

// Transform casts an affine transform "{a, b, c, d, tx, ty}".
func Transform(v any) (any, error) { return transformConverter(v) }
