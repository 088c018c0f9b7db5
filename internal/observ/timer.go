// Package observ tracks how long the stages of one CLI invocation take.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Stage records the duration of one processing stage.
type Stage struct {
	Name string
	Dur  time.Duration
}

// Timer collects stage durations for the --timings report.
type Timer struct {
	stages []Stage
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{stages: make([]Stage, 0, 4)} }

// Track starts timing a stage and returns the function that stops it.
//
//	stop := timer.Track("stream")
//	defer stop()
func (t *Timer) Track(name string) func() {
	idx := len(t.stages)
	t.stages = append(t.stages, Stage{Name: name})
	start := time.Now()
	return func() {
		t.stages[idx].Dur = time.Since(start)
	}
}

// Stages returns the recorded stages in start order.
func (t *Timer) Stages() []Stage { return t.stages }

// Summary returns a human-readable report, one stage per line.
func (t *Timer) Summary() string {
	var sb strings.Builder
	for _, s := range t.stages {
		fmt.Fprintf(&sb, "%s %.1f ms\n", s.Name, float64(s.Dur)/float64(time.Millisecond))
	}
	return sb.String()
}
