package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualAdvance(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c := NewManual(start)
	assert.Equal(t, start, c.Now())

	c.Advance(24 * time.Hour)
	assert.Equal(t, start.Add(24*time.Hour), c.Now())

	c.Advance(-time.Hour)
	assert.Equal(t, start.Add(24*time.Hour), c.Now(), "clock must not go backwards")
}

func TestSystemIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, System{}.Now().Location())
}
