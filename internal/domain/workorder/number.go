package workorder

import (
	"fmt"
	"regexp"
	"strconv"
)

// numberPattern matches well-formed work order numbers such as "WO-0001" or
// "WO-10000". The suffix is zero-padded to 4 digits but grows without bound.
var numberPattern = regexp.MustCompile(`^WO-(\d+)$`)

// FormatNumber renders a numeric sequence value as a work order number.
func FormatNumber(seq uint64) string {
	return fmt.Sprintf("WO-%04d", seq)
}

// ParseNumber extracts the numeric suffix from a work order number.
// Malformed or legacy values degrade to 0 so numbering restarts from 1
// on the next allocation instead of failing the whole operation.
func ParseNumber(number string) uint64 {
	matches := numberPattern.FindStringSubmatch(number)
	if matches == nil {
		return 0
	}
	seq, err := strconv.ParseUint(matches[1], 10, 64)
	if err != nil {
		return 0
	}
	return seq
}
