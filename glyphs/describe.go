package glyphs

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	glyphscast "github.com/reoring/glyphscast"
)

// Describe renders a schema as an indented outline, one field per line with
// the converter name, record lists expanded beneath their field.
//
//	fontMaster []
//	  ascender Int
func Describe(s glyphscast.Schema) string {
	b := &strings.Builder{}
	describe(b, s, 0)
	return b.String()
}

func describe(b *strings.Builder, s glyphscast.Schema, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, key := range s.Keys() {
		n := s[key]
		switch n.Kind() {
		case glyphscast.KindRecords:
			fmt.Fprintf(b, "%s%s []\n", indent, key)
			describe(b, n.Schema(), depth+1)
		case glyphscast.KindConvert:
			fmt.Fprintf(b, "%s%s %s\n", indent, key, converterName(n.Converter()))
		}
	}
}

// converterName reports the function name of a converter, e.g. "Point".
// Closures report their enclosing function.
func converterName(fn glyphscast.Converter) string {
	if fn == nil {
		return "?"
	}
	name := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	name = name[strings.LastIndexByte(name, '/')+1:]
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return name
}
