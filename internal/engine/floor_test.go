package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDiv(t *testing.T) {
	testCases := []struct {
		a, b, expected int
	}{
		{9, 3, 3},
		{8, 3, 2},
		{0, 3, 0},
		{-1, 3, -1},
		{-3, 3, -1},
		{-4, 3, -2},
		{4, -3, -2},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, floorDiv(tc.a, tc.b), "%d/%d", tc.a, tc.b)
	}
}
