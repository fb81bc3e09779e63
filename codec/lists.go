package codec

import (
	"strconv"

	glyphscast "github.com/reoring/glyphscast"
)

// listOf applies parse to every string of a sequence. The first failing
// element aborts the list; its issue is rebased under the element index.
func listOf[T any](v any, parse func(string) (T, error)) ([]T, error) {
	seq, ok := v.([]any)
	if !ok {
		return nil, glyphscast.Fail(glyphscast.CodeInvalidType, "sequence of strings", nil)
	}
	out := make([]T, 0, len(seq))
	for i, item := range seq {
		s, err := text(item)
		if err == nil {
			var t T
			t, err = parse(s)
			if err == nil {
				out = append(out, t)
				continue
			}
		}
		if iss, ok := glyphscast.AsIssues(err); ok {
			return nil, iss.Rebase("/" + strconv.Itoa(i))
		}
		return nil, err
	}
	return out, nil
}

// IntList casts a sequence of integer strings to []int.
func IntList(v any) (any, error) {
	return listOf(v, parseInt)
}

// PointList casts a sequence of "{X, Y}" strings to []Vector.
func PointList(v any) (any, error) {
	return listOf(v, func(s string) (Vector, error) { return ParseVector(s, 2) })
}

// NodeList casts a sequence of node strings to []PathNode.
func NodeList(v any) (any, error) {
	return listOf(v, ParseNode)
}
