package glyphscast

import (
	"errors"
	"strings"
)

// Issue codes.
const (
	// CodeInvalidFormat reports a string that does not follow the grammar of
	// its field (vector braces, node tokens, dates, hex, integers).
	CodeInvalidFormat = "invalid_format"
	// CodeDomainRange reports a well-formed value outside its documented
	// domain (negative descender, minor version in 0..999).
	CodeDomainRange = "domain_range"
	// CodeInvalidType reports a value of the wrong shape, such as a record
	// list that is not a sequence of mappings.
	CodeInvalidType = "invalid_type"
	// CodeParseError reports input that could not be decoded into a raw tree.
	CodeParseError = "parse_error"
)

// Issue describes the single failure that aborted a cast.
type Issue struct {
	Path    string // JSON Pointer (for example: /glyphs/2/layers/0/width).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected grammar or remediation.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"min":0, "max":999, "got":1000}).
	Params map[string]any
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error renders each issue as "code at path: message", joined by "; ".
// A cast stops at its first failure, so this is normally a single entry.
func (iss Issues) Error() string {
	parts := make([]string, 0, len(iss))
	for _, it := range iss {
		// e.g. invalid_format at /glyphs/0/unicode: invalid format
		msg := it.Code + " at " + it.Path
		if it.Message != "" && it.Message != it.Code {
			msg += ": " + it.Message
		}
		parts = append(parts, msg)
	}
	return strings.Join(parts, "; ")
}

// Unwrap exposes the causes so errors.Is can reach e.g. strconv.ErrRange.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// HasCode reports whether any issue carries code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// Rebase prefixes every issue path with base, handling empty or root paths.
func (iss Issues) Rebase(base string) Issues {
	if base == "" || base == "/" {
		return iss
	}
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// rebaseError moves a converter failure under base. Plain errors become an
// invalid_format issue so callers always see Issues.
func rebaseError(err error, base PathRef) error {
	if iss, ok := AsIssues(err); ok {
		return iss.Rebase(base.Pointer())
	}
	return Issues{{Path: base.Pointer(), Code: CodeInvalidFormat, Message: err.Error(), Cause: err}}
}
