package digimon

import (
	"strconv"
	"strings"
)

// ParseInt converts user text to an integer. Empty, non-numeric or
// fractional text yields 0 so a half-typed field never blocks a recompute.
func ParseInt(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

// ParseDP is ParseInt for point-buy allocations, which are never negative.
func ParseDP(value string) int {
	return max(0, ParseInt(value))
}
