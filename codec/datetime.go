package codec

import (
	"strings"
	"time"

	glyphscast "github.com/reoring/glyphscast"
)

// DatetimeLayout is the layout of font dates without their zone token.
const DatetimeLayout = "2006-01-02 15:04:05"

// ParseDatetime parses "YYYY-MM-DD HH:MM:SS <zone>". Everything from the last
// space on is dropped, so the result is the wall clock time in UTC.
func ParseDatetime(s string) (time.Time, error) {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return time.Time{}, glyphscast.Fail(glyphscast.CodeInvalidFormat, DatetimeLayout+" <zone>", nil, "got", s)
	}
	t, err := time.Parse(DatetimeLayout, s[:i])
	if err != nil {
		return time.Time{}, glyphscast.Fail(glyphscast.CodeInvalidFormat, DatetimeLayout+" <zone>", err, "got", s)
	}
	return t, nil
}

// Datetime casts a font date string to time.Time.
func Datetime(v any) (any, error) {
	s, err := text(v)
	if err != nil {
		return nil, err
	}
	return ParseDatetime(s)
}
