package codec

import (
	glyphscast "github.com/reoring/glyphscast"
)

// Descender casts an integer string and requires it to be negative.
func Descender(v any) (any, error) {
	n, err := toInt(v)
	if err != nil {
		return nil, err
	}
	if n >= 0 {
		return nil, glyphscast.Fail(glyphscast.CodeDomainRange, "negative integer", nil, "max", -1, "got", n)
	}
	return n, nil
}

// VersionMinor casts an integer string and requires 0 <= n <= 999.
func VersionMinor(v any) (any, error) {
	n, err := toInt(v)
	if err != nil {
		return nil, err
	}
	if n < 0 || n > 999 {
		return nil, glyphscast.Fail(glyphscast.CodeDomainRange, "integer in 0..999", nil, "min", 0, "max", 999, "got", n)
	}
	return n, nil
}
