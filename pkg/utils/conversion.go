package utils

import "strconv"

// ParseID converts an URL parameter into an id. Returns 0 on malformed input,
// which no row ever has, so lookups simply miss.
func ParseID(str string) uint64 {
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0
	}
	return val
}
