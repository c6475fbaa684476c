package tidal

import (
	"fmt"
	"strconv"

	"github.com/iancoleman/strcase"
)

// Fields holds an entity's raw wire data as decoded from JSON. Keys use
// the service's camelCase convention; all accessors take logical
// snake_case names and translate, so "audio_quality" reads the
// "audioQuality" key. The translation is the same everywhere in the
// model, in both directions.
type Fields map[string]any

// wireKey converts a logical snake_case field name to its camelCase wire
// key.
func wireKey(name string) string {
	return strcase.ToLowerCamel(name)
}

// logicalName converts a camelCase wire key back to its snake_case
// logical name.
func logicalName(key string) string {
	return strcase.ToSnake(key)
}

// Has reports whether the field is present in the wire data.
func (f Fields) Has(name string) bool {
	_, ok := f[wireKey(name)]
	return ok
}

// Get returns the raw value of a field. An absent field is a
// *FieldError wrapping ErrFieldMissing, not a zero value.
func (f Fields) Get(name string) (any, error) {
	key := wireKey(name)
	v, ok := f[key]
	if !ok {
		return nil, &FieldError{Name: name, Key: key}
	}
	return v, nil
}

// String returns a field's value as a string. Non-string values fail.
func (f Fields) String(name string) (string, error) {
	v, err := f.Get(name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("tidal: field %q is %T, not a string", name, v)
	}
	return s, nil
}

// Int returns a field's value as an int. JSON numbers decode as float64,
// so both numeric representations are accepted.
func (f Fields) Int(name string) (int, error) {
	v, err := f.Get(name)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	}
	return 0, fmt.Errorf("tidal: field %q is %T, not a number", name, v)
}

// Sub returns an embedded object field as Fields.
func (f Fields) Sub(name string) (Fields, error) {
	v, err := f.Get(name)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("tidal: field %q is %T, not an object", name, v)
	}
	return Fields(m), nil
}

// List returns a field holding an array of objects as a slice of Fields.
func (f Fields) List(name string) ([]Fields, error) {
	v, err := f.Get(name)
	if err != nil {
		return nil, err
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("tidal: field %q is %T, not an array", name, v)
	}
	out := make([]Fields, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("tidal: field %q[%d] is %T, not an object", name, i, item)
		}
		out = append(out, Fields(m))
	}
	return out, nil
}

// stringify renders an identifier value for use in a URL path. Numeric
// ids arrive as float64 from the JSON decoder and must not pick up a
// decimal point.
func stringify(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		return strconv.Itoa(n)
	}
	return fmt.Sprint(v)
}
