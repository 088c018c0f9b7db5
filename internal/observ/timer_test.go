package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimer_TracksStagesInOrder(t *testing.T) {
	timer := NewTimer()

	stop := timer.Track("parse")
	time.Sleep(time.Millisecond)
	stop()

	stop = timer.Track("stream")
	stop()

	stages := timer.Stages()
	if len(stages) != 2 {
		t.Fatalf("len(stages) = %d, want 2", len(stages))
	}
	if stages[0].Name != "parse" || stages[1].Name != "stream" {
		t.Errorf("stage order = %q, %q", stages[0].Name, stages[1].Name)
	}
	if stages[0].Dur <= 0 {
		t.Errorf("parse duration = %v, want > 0", stages[0].Dur)
	}
}

func TestTimer_Summary(t *testing.T) {
	timer := NewTimer()
	timer.Track("parse")()
	timer.Track("stream")()

	summary := timer.Summary()
	for _, name := range []string{"parse", "stream"} {
		if !strings.Contains(summary, name) {
			t.Errorf("summary %q missing stage %q", summary, name)
		}
	}
	if got := strings.Count(summary, "\n"); got != 2 {
		t.Errorf("summary has %d lines, want 2", got)
	}
}

func TestTimer_EmptySummary(t *testing.T) {
	if s := NewTimer().Summary(); s != "" {
		t.Errorf("empty timer summary = %q, want empty", s)
	}
}
