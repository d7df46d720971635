package telemetry

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// TimingCollector records a flat, ordered sequence of named phase
// durations. Phases are expected to run sequentially (one Start/End pair
// completing before the next begins), matching how a CLI command times
// its own stages; it does not track nesting.
type TimingCollector struct {
	mu     sync.Mutex
	phases []phase
}

type phase struct {
	name  string
	start time.Time
	end   time.Time
}

// NewTimingCollector creates a new timing collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins timing a phase.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.phases = append(c.phases, phase{name: name, start: time.Now()})
	return &timingTimer{collector: c, index: len(c.phases) - 1}
}

// Report writes one line per phase, in start order.
func (c *TimingCollector) Report(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.phases {
		fmt.Fprintf(w, "%s: %s\n", p.name, formatDuration(p.end.Sub(p.start)))
	}
}

type timingTimer struct {
	collector *TimingCollector
	index     int
}

func (t *timingTimer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()
	t.collector.phases[t.index].end = time.Now()
}

// formatDuration shows microseconds below 1ms, milliseconds below 1s,
// seconds otherwise.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.0fµs", float64(d)/float64(time.Microsecond))
	}
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", float64(d)/float64(time.Second))
}
