package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, 6, 15, 3, 4, 5, 0, time.FixedZone("MSK", 3*60*60))
	c := NewFixedClock(at)

	assert.True(t, c.Now().Equal(at))
	assert.Equal(t, time.UTC, c.Now().Location())
	assert.Equal(t, c.Now(), c.Now(), "повторные вызовы должны возвращать один и тот же момент")
}

func TestSystemClock(t *testing.T) {
	c := NewSystemClock()
	before := time.Now()
	now := c.Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, before, now, time.Second)
}
