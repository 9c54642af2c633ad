package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider_Now(t *testing.T) {
	p := NewRealTimeProvider()

	before := time.Now()
	now := p.Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
	assert.WithinDuration(t, before, now, time.Second)
}
