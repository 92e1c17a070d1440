package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-mapgen/internal/pkg/clock"
)

func TestFixedAdvance(t *testing.T) {
	start := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewFixed(start)

	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), c.Now())
}

func TestRealMovesForward(t *testing.T) {
	c := clock.New()
	first := c.Now()
	assert.False(t, c.Now().Before(first))
}
