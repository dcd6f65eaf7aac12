package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/digimon-sheet/internal/pkg/clock"
)

func TestFixedClock(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewFixed(start)

	assert.Equal(t, start, c.Now())
	c.Advance(time.Minute)
	assert.Equal(t, start.Add(time.Minute), c.Now())
}

func TestRealClock(t *testing.T) {
	before := time.Now()
	now := clock.New().Now()
	assert.False(t, now.Before(before))
}
