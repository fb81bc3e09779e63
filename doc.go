// Package glyphscast casts the string attributes of a parsed Glyphs font
// source into typed Go values, driven by a declarative schema.
//
// It provides:
//
// - Schema nodes as a tagged variant: Convert(fn) for scalar fields and
// Records(schema) for lists of child records
// - A Caster that walks a raw tree (map[string]any / []any / string) with a
// schema, injects defaults for absent fields and converts values in place
// - A stable error model via Issues (JSON Pointer, code, message); the first
// failure aborts the cast
//
// Design policy:
// - Keep the engine and error model in the root package.
// - Place field converters under codec/, the .glyphs schema under glyphs/,
// raw-tree producers under source/ and the CLI under cmd/glyphscast.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	data, err := source.Load("MyFont.glyphs")
//	err = glyphs.CastDocument(data)
//
//	err = glyphscast.NewCaster(glyphscast.WithDefaults(d)).Cast(data, schema)
package glyphscast
