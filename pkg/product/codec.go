package product

import "encoding/json"

// ToMap converts any model record into a generic structured map by routing
// it through its JSON form. Nested records convert recursively; raw
// wavelength entries are already generic maps and pass through unchanged.
func ToMap[T any](value T) (map[string]any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FromMap hydrates a model record from a generic structured map. Unknown
// keys are ignored and missing keys leave fields at their zero (unset)
// value; enum-typed fields are validated on the way in.
func FromMap[T any](m map[string]any, dst *T) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
