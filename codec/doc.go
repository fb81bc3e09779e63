// Package codec holds the field converters applied by the caster: scalar
// casts (strings, booleans stored as 0/1, numbers, hex code points), brace
// vectors, outline nodes, element-wise lists, dates, kerning grids, range
// checked integers and feature-syntax unescaping.
//
// Every exported converter has the glyphscast.Converter signature and reports
// failures as glyphscast.Issues rooted at the value, so the caster can rebase
// them under the field path. Converters are stateless and safe for
// concurrent use.
package codec
