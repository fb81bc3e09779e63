package glyphscast

import "github.com/rs/zerolog"

// Caster walks a raw tree together with a Schema and replaces every declared
// field with its converted value, in place.
//
// Fields are visited in sorted key order so the first failure reported for a
// given document is stable. A missing field takes its value from the
// defaults table when it has an entry there and is left absent otherwise.
// The first converter failure aborts the cast; data may then hold a mix of
// converted and raw values.
type Caster struct {
	defaults map[string]any
	logger   zerolog.Logger
}

// Option configures a Caster.
type Option func(*Caster)

// WithDefaults sets the table of fallback values for absent fields. Values
// are stored as-is and are not passed through the field's converter.
func WithDefaults(d map[string]any) Option {
	return func(c *Caster) { c.defaults = d }
}

// WithLogger sets the logger used for debug tracing of defaults and record
// lists.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Caster) { c.logger = l }
}

// NewCaster builds a Caster. Without options it has no defaults and logs
// nothing.
func NewCaster(opts ...Option) *Caster {
	c := &Caster{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cast casts data against schema in place. A nil data is rejected since
// defaults could not be written into it.
func (c *Caster) Cast(data map[string]any, schema Schema) error {
	if data == nil {
		return TypeMismatch(Root(), "mapping")
	}
	return c.cast(data, schema, Root())
}

// Cast casts data against schema in place using a Caster without defaults.
func Cast(data map[string]any, schema Schema) error {
	return NewCaster().Cast(data, schema)
}

func (c *Caster) cast(data map[string]any, schema Schema, at PathRef) error {
	for _, key := range schema.Keys() {
		node := schema[key]
		field := at.Field(key)
		raw, ok := data[key]
		if !ok {
			if d, ok := c.defaults[key]; ok {
				data[key] = d
				c.logger.Debug().Str("path", field.Pointer()).Interface("value", d).Msg("default applied")
			}
			continue
		}
		switch node.Kind() {
		case KindRecords:
			if err := c.castRecords(raw, node.Schema(), field); err != nil {
				return err
			}
		case KindConvert:
			v, err := node.Converter()(raw)
			if err != nil {
				return rebaseError(err, field)
			}
			data[key] = v
		}
	}
	return nil
}

func (c *Caster) castRecords(raw any, schema Schema, at PathRef) error {
	seq, ok := raw.([]any)
	if !ok {
		return TypeMismatch(at, "sequence of records")
	}
	c.logger.Debug().Str("path", at.Pointer()).Int("records", len(seq)).Msg("casting records")
	for i, item := range seq {
		rec, ok := item.(map[string]any)
		if !ok || rec == nil {
			return TypeMismatch(at.Index(i), "record")
		}
		if err := c.cast(rec, schema, at.Index(i)); err != nil {
			return err
		}
	}
	return nil
}
