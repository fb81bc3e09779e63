package glyphs

import (
	"maps"

	glyphscast "github.com/reoring/glyphscast"
	"github.com/reoring/glyphscast/codec"
)

// Defaults returns the values injected for interpolation axes missing from a
// record. A fresh map is returned on every call.
func Defaults() map[string]any {
	return maps.Clone(defaults)
}

var defaults = map[string]any{
	"interpolationWeight": 100,
	"interpolationWidth":  100,
	"widthValue":          100,
	"weightValue":         100,
}

// NewCaster returns a Caster preloaded with Defaults. Extra options are
// applied after the defaults and may override them.
func NewCaster(opts ...glyphscast.Option) *glyphscast.Caster {
	return glyphscast.NewCaster(append([]glyphscast.Option{glyphscast.WithDefaults(defaults)}, opts...)...)
}

// Cast casts a parsed .glyphs document in place against FontSchema.
func Cast(data map[string]any, opts ...glyphscast.Option) error {
	return NewCaster(opts...).Cast(data, FontSchema())
}

// CastCustomData casts custom parameter values whose type depends on the
// parameter name. It runs after Cast, on the top-level customParameters
// list; a document without that list is left alone.
func CastCustomData(data map[string]any) error {
	raw, ok := data["customParameters"]
	if !ok {
		return nil
	}
	at := glyphscast.Root().Field("customParameters")
	params, ok := raw.([]any)
	if !ok {
		return glyphscast.TypeMismatch(at, "sequence of records")
	}
	for i, p := range params {
		param, ok := p.(map[string]any)
		if !ok {
			return glyphscast.TypeMismatch(at.Index(i), "record")
		}
		if param["name"] != "openTypeOS2Type" {
			continue
		}
		v, err := codec.IntList(param["value"])
		if err != nil {
			iss, _ := glyphscast.AsIssues(err)
			return iss.Rebase(at.Index(i).Field("value").Pointer())
		}
		param["value"] = v
	}
	return nil
}

// CastDocument runs Cast followed by CastCustomData, the full treatment a
// freshly parsed document needs before a font model is built from it.
func CastDocument(data map[string]any, opts ...glyphscast.Option) error {
	if err := Cast(data, opts...); err != nil {
		return err
	}
	return CastCustomData(data)
}
