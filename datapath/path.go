package datapath

import (
	"strconv"
	"strings"
)

// Delimiter separates path segments.
const Delimiter = "."

// Split returns the ordered segments of path. The empty path has no segments.
func Split(path string) []string {
	if path == "" {
		return nil
	}

	return strings.Split(path, Delimiter)
}

// Join builds a path from segments.
func Join(segments ...string) string {
	return strings.Join(segments, Delimiter)
}

// parseIndex reports the position addressed by segment in a sequence of the
// given length. Only plain decimal digits are accepted: no sign and no
// leading zeros.
func parseIndex(segment string, length int) (int, bool) {
	if segment == "" || len(segment) > 1 && segment[0] == '0' {
		return 0, false
	}

	for i := range len(segment) {
		if segment[i] < '0' || segment[i] > '9' {
			return 0, false
		}
	}

	idx, err := strconv.Atoi(segment)
	if err != nil || idx >= length {
		return 0, false
	}

	return idx, true
}
