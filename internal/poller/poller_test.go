package poller_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/limbo/fittrack/internal/poller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderFake struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (r *recorderFake) RecordLocation(ctx context.Context, phone string, lat, lon float64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.err
}

func (r *recorderFake) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

var home = poller.StaticSource{Latitude: 1.3521, Longitude: 103.8198}

func TestTick(t *testing.T) {
	ctx := context.Background()
	t.Run("background posts", func(t *testing.T) {
		rec := &recorderFake{}
		p := poller.New("81228470", time.Hour, home, rec)
		assert.True(t, p.Tick(ctx))
		assert.Equal(t, 1, rec.count())
	})
	t.Run("foreground skips", func(t *testing.T) {
		rec := &recorderFake{}
		p := poller.New("81228470", time.Hour, home, rec)
		p.Foreground = func() bool { return true }
		assert.False(t, p.Tick(ctx))
		assert.Zero(t, rec.count())
	})
	t.Run("failure is a single attempt", func(t *testing.T) {
		rec := &recorderFake{err: errors.New("offline")}
		p := poller.New("81228470", time.Hour, home, rec)
		assert.False(t, p.Tick(ctx))
		assert.Equal(t, 1, rec.count())
		sent, failed := p.Stats()
		assert.Zero(t, sent)
		assert.Equal(t, int64(1), failed)
	})
}

func TestRun(t *testing.T) {
	rec := &recorderFake{}
	p := poller.New("81228470", 5*time.Millisecond, home, rec)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	require.Eventually(t, func() bool { return rec.count() >= 2 }, time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}
