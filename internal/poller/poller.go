package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"
)

const DefaultInterval = time.Hour

type Location struct {
	Latitude  float64
	Longitude float64
}

type LocationSource interface {
	Current(ctx context.Context) (Location, error)
}

type LocationRecorder interface {
	RecordLocation(ctx context.Context, phone string, lat, lon float64, at time.Time) error
}

// StaticSource always reports the same position.
type StaticSource Location

func (s StaticSource) Current(ctx context.Context) (Location, error) {
	return Location(s), nil
}

// LocationPoller posts the device location on every tick while the app is in
// the background. Each tick makes a single attempt.
type LocationPoller struct {
	phone    string
	interval time.Duration
	source   LocationSource
	recorder LocationRecorder
	// Foreground reports whether the app is currently in use. Nil means never.
	Foreground func() bool
	now        func() time.Time

	sent   atomic.Int64
	failed atomic.Int64
}

func New(phone string, interval time.Duration, source LocationSource, recorder LocationRecorder) *LocationPoller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &LocationPoller{
		phone:    phone,
		interval: interval,
		source:   source,
		recorder: recorder,
		now:      time.Now,
	}
}

// Run blocks until ctx is done.
func (p *LocationPoller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	slog.Info("location polling started", slog.Duration("interval", p.interval))
	for {
		select {
		case <-ctx.Done():
			slog.Info("location polling stopped",
				slog.Int64("sent", p.sent.Load()),
				slog.Int64("failed", p.failed.Load()),
			)
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			p.Tick(ctx)
		}
	}
}

// Tick runs a single poll. It reports whether a location was posted.
func (p *LocationPoller) Tick(ctx context.Context) bool {
	if p.Foreground != nil && p.Foreground() {
		slog.Debug("app in foreground, skipping location tick")
		return false
	}
	loc, err := p.source.Current(ctx)
	if err != nil {
		p.failed.Add(1)
		slog.Error("reading location failed", slog.String("error", err.Error()))
		return false
	}
	err = p.recorder.RecordLocation(ctx, p.phone, loc.Latitude, loc.Longitude, p.now())
	if err != nil {
		p.failed.Add(1)
		slog.Error("posting location failed", slog.String("error", err.Error()))
		return false
	}
	p.sent.Add(1)
	slog.Debug("location posted", slog.Float64("lat", loc.Latitude), slog.Float64("lon", loc.Longitude))
	return true
}

func (p *LocationPoller) Stats() (sent, failed int64) {
	return p.sent.Load(), p.failed.Load()
}
