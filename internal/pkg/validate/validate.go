package validate

import "strings"

// Required reports whether a string field is present in the structural sense.
// The gateway validates presence only; business rules belong to the backend.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// PositiveID reports whether a numeric identifier is usable.
func PositiveID(id int64) bool {
	return id > 0
}
