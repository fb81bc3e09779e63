package glyphscast

import "github.com/reoring/glyphscast/i18n"

// Fail returns a single-issue error at the root of the value being converted,
// with the localized message for code. Converters use it so the caster can
// rebase the path under the field that failed.
func Fail(code, hint string, cause error, kv ...any) error {
	var data map[string]string
	if hint != "" {
		data = map[string]string{"expected": hint}
	}
	it := Root().Issue(code, i18n.T(code, data), kv...)
	it.Hint = hint
	it.Cause = cause
	return Issues{it}
}

// TypeMismatch reports an invalid_type issue at at, naming the expected shape.
func TypeMismatch(at PathRef, expected string) error {
	it := at.Issue(CodeInvalidType, i18n.T(CodeInvalidType, map[string]string{"expected": expected}))
	it.Hint = expected
	return Issues{it}
}
