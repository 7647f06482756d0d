package flow

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// Stopwatch times an exercise session. Elapsed time has second resolution.
type Stopwatch struct {
	mu        sync.Mutex
	now       func() time.Time
	running   bool
	startedAt time.Time
	offset    time.Duration
}

// NewStopwatch uses time.Now when now is nil.
func NewStopwatch(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now}
}

func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.startedAt = s.now()
}

// Stop freezes the timer and returns the session length in whole minutes.
func (s *Stopwatch) Stop() int {
	s.mu.Lock()
	if s.running {
		s.offset += s.now().Sub(s.startedAt)
		s.running = false
	}
	elapsed := s.offset
	s.mu.Unlock()
	return Minutes(elapsed)
}

func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := s.offset
	if s.running {
		elapsed += s.now().Sub(s.startedAt)
	}
	return elapsed.Truncate(time.Second)
}

// Adjust shifts the elapsed time, never below zero.
func (s *Stopwatch) Adjust(delta time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := s.offset
	if s.running {
		elapsed += s.now().Sub(s.startedAt)
	}
	if elapsed+delta < 0 {
		delta = -elapsed
	}
	s.offset += delta
}

func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.offset = 0
}

// FormatElapsed renders d as HH:MM:SS
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// Minutes rounds to the nearest minute, at least 1.
func Minutes(d time.Duration) int {
	m := int(math.Round(d.Seconds() / 60))
	return max(1, m)
}
