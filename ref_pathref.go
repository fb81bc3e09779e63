package glyphscast

import (
	"fmt"
	"strconv"
	"strings"
)

// PathRef names a position in the raw tree and renders it as a JSON Pointer.
// Deriving a child never changes the parent, so one PathRef can be shared by
// every field of a record.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code, msg string, kv ...any) Issue
}

// Root returns the PathRef of a document root ("/").
func Root() PathRef { return (*segment)(nil) }

// segment is one reference token linked to its parent; nil is the root.
type segment struct {
	parent *segment
	token  string
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func (s *segment) Field(name string) PathRef {
	return &segment{parent: s, token: pointerEscaper.Replace(name)}
}

func (s *segment) Index(i int) PathRef {
	return &segment{parent: s, token: strconv.Itoa(i)}
}

func (s *segment) Pointer() string {
	if s == nil {
		return "/"
	}
	var tokens []string
	for p := s; p != nil; p = p.parent {
		tokens = append(tokens, p.token)
	}
	var b strings.Builder
	for i := len(tokens) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(tokens[i])
	}
	return b.String()
}

// Issue builds an issue at this position; kv are alternating param names and
// values.
func (s *segment) Issue(code, msg string, kv ...any) Issue {
	var params map[string]any
	if len(kv) >= 2 {
		params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			params[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Issue{Path: s.Pointer(), Code: code, Message: msg, Params: params}
}
