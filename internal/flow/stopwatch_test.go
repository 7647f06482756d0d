package flow_test

import (
	"testing"
	"time"

	"github.com/limbo/fittrack/internal/flow"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestStopwatch(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC)}
	sw := flow.NewStopwatch(clock.now)

	sw.Start()
	clock.advance(10*time.Minute + 40*time.Second)
	assert.True(t, sw.Running())
	assert.Equal(t, "00:10:40", flow.FormatElapsed(sw.Elapsed()))

	assert.Equal(t, 11, sw.Stop())
	clock.advance(time.Hour)
	assert.Equal(t, "00:10:40", flow.FormatElapsed(sw.Elapsed()))

	sw.Adjust(time.Minute)
	assert.Equal(t, "00:11:40", flow.FormatElapsed(sw.Elapsed()))
	sw.Adjust(-time.Hour)
	assert.Zero(t, sw.Elapsed())

	sw.Start()
	clock.advance(5 * time.Second)
	assert.Equal(t, 1, sw.Stop())

	sw.Reset()
	assert.Zero(t, sw.Elapsed())
	assert.False(t, sw.Running())
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00:00", flow.FormatElapsed(0))
	assert.Equal(t, "01:01:01", flow.FormatElapsed(time.Hour+time.Minute+time.Second))
	assert.Equal(t, "27:00:00", flow.FormatElapsed(27*time.Hour))
}

func TestMinutes(t *testing.T) {
	assert.Equal(t, 1, flow.Minutes(0))
	assert.Equal(t, 1, flow.Minutes(89*time.Second))
	assert.Equal(t, 2, flow.Minutes(90*time.Second))
	assert.Equal(t, 60, flow.Minutes(time.Hour))
}
