package glyphscast

import (
	"maps"
	"slices"
)

// Converter turns one raw field value into its typed form. It reports
// failures as Issues rooted at "/" (the value itself).
type Converter func(v any) (any, error)

// Kind tells the two schema node variants apart.
type Kind int

const (
	KindConvert Kind = iota // Scalar field handled by a Converter.
	KindRecords             // Sequence of records validated against a sub-schema.
)

func (k Kind) String() string {
	switch k {
	case KindConvert:
		return "convert"
	case KindRecords:
		return "records"
	}
	return "unknown"
}

// Node is one entry of a Schema: either a Converter for a scalar field or a
// sub-schema describing a list of child records.
type Node struct {
	kind    Kind
	convert Converter
	records Schema
}

// Convert declares a scalar field cast by fn.
func Convert(fn Converter) Node { return Node{kind: KindConvert, convert: fn} }

// Records declares a field holding a sequence of records, each cast with s.
func Records(s Schema) Node { return Node{kind: KindRecords, records: s} }

func (n Node) Kind() Kind           { return n.kind }
func (n Node) Converter() Converter { return n.convert }
func (n Node) Schema() Schema       { return n.records }

// Schema maps field names to schema nodes. Schemas are read-only once built
// and may be shared by concurrent casts.
type Schema map[string]Node

// Keys returns the field names in sorted order.
func (s Schema) Keys() []string { return slices.Sorted(maps.Keys(s)) }
