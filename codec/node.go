package codec

import (
	"regexp"

	glyphscast "github.com/reoring/glyphscast"
)

// NodeType is the segment type of an outline node.
type NodeType string

const (
	NodeLine     NodeType = "LINE"
	NodeCurve    NodeType = "CURVE"
	NodeOffCurve NodeType = "OFFCURVE"
)

// PathNode is one point of a glyph outline. The optional SMOOTH token of the
// source string is carried as the Smooth flag rather than as text: true when
// the token is present, false when it is absent.
type PathNode struct {
	X      any      `json:"x" yaml:"x"`
	Y      any      `json:"y" yaml:"y"`
	Type   NodeType `json:"type" yaml:"type"`
	Smooth bool     `json:"smooth,omitempty" yaml:"smooth,omitempty"`
}

var nodePattern = regexp.MustCompile(`^` + numberPattern + ` ` + numberPattern + ` (LINE|CURVE|OFFCURVE)(?: (SMOOTH))?`)

// ParseNode parses "X Y TYPE [SMOOTH]".
func ParseNode(s string) (PathNode, error) {
	m := nodePattern.FindStringSubmatch(s)
	if m == nil {
		return PathNode{}, glyphscast.Fail(glyphscast.CodeInvalidFormat, "X Y LINE|CURVE|OFFCURVE [SMOOTH]", nil, "got", s)
	}
	x, err := ParseNum(m[1])
	if err != nil {
		return PathNode{}, err
	}
	y, err := ParseNum(m[2])
	if err != nil {
		return PathNode{}, err
	}
	return PathNode{X: x, Y: y, Type: NodeType(m[3]), Smooth: m[4] != ""}, nil
}

// Node casts a single node string.
func Node(v any) (any, error) {
	s, err := text(v)
	if err != nil {
		return nil, err
	}
	return ParseNode(s)
}
