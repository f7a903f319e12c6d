package product

import "fmt"

// InvalidEnumValueError reports an enum-validated field that was assigned a
// value outside its vocabulary.
type InvalidEnumValueError struct {
	Field string
	Value string
}

func (e InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// MissingValueError reports a geometry computation whose required precursor
// field is unset.
type MissingValueError struct {
	Field string
}

func (e MissingValueError) Error() string {
	return fmt.Sprintf("missing value for %s", e.Field)
}

// InvalidGeometryError reports slat parameters that describe an impossible
// shape, e.g. a rise beyond half the slat width.
type InvalidGeometryError struct {
	Reason string
}

func (e InvalidGeometryError) Error() string {
	return "invalid geometry: " + e.Reason
}
