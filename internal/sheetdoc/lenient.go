package sheetdoc

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
)

// Int decodes any JSON value into an integer: numbers and numeric strings
// parse, everything else (null, fractions, text, objects) becomes 0.
type Int int

// UnmarshalJSON implements json.Unmarshaler and never fails
func (i *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*i = 0
			return nil
		}
		*i = Int(digimon.ParseInt(s))
		return nil
	}
	*i = Int(digimon.ParseInt(string(data)))
	return nil
}

// Text decodes strings as-is and scalar non-strings as their literal text.
// null, objects and arrays become empty.
type Text string

// UnmarshalJSON implements json.Unmarshaler and never fails
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*t = ""
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*t = Text(s)
		}
	case '{', '[', 'n':
	default:
		literal := string(data)
		if _, err := strconv.ParseFloat(literal, 64); err == nil || literal == "true" || literal == "false" {
			*t = Text(literal)
		}
	}
	return nil
}

// List decodes a JSON array. Any other value decodes as an empty list.
type List[T any] []T

// UnmarshalJSON implements json.Unmarshaler
func (l *List[T]) UnmarshalJSON(data []byte) error {
	*l = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

// Bonuses is a flat object of integer values keyed by name. Any other value
// decodes as empty.
type Bonuses map[string]Int

// UnmarshalJSON implements json.Unmarshaler
func (b *Bonuses) UnmarshalJSON(data []byte) error {
	*b = nil
	return decodeObject(data, (*map[string]Int)(b))
}

// decodeObject unmarshals data into v when data is a JSON object and leaves
// v zeroed otherwise. v must not be a type whose UnmarshalJSON calls back
// into decodeObject.
func decodeObject[T any](data []byte, v *T) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		var zero T
		*v = zero
		return nil
	}
	return json.Unmarshal(data, v)
}
