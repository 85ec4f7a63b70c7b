package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(level)
	l.SetOutput(&buf)
	l.sink.now = func() time.Time { return time.Date(2021, 2, 18, 20, 55, 0, 0, time.UTC) }
	return l, &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"Warning", LevelWarn},
		{"warn", LevelWarn},
		{" error ", LevelError},
		{"verbose", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newTestLogger(LevelWarn)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "20:55:00.000 [WARN] shown 3\n") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] shown 4") {
		t.Errorf("missing error line: %q", out)
	}
	if l.Enabled(LevelInfo) || !l.Enabled(LevelError) {
		t.Error("Enabled() disagrees with level")
	}
}

func TestWith(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)

	sched := l.With("schedule")
	sched.Info("next fire at %s", "MY36 Sol 12.00")
	sched.With("sol").Debug("tick")

	out := buf.String()
	if !strings.Contains(out, "[INFO] schedule: next fire at MY36 Sol 12.00") {
		t.Errorf("missing prefixed line: %q", out)
	}
	if !strings.Contains(out, "[DEBUG] schedule.sol: tick") {
		t.Errorf("missing nested prefix: %q", out)
	}

	// Derived loggers share the level of their parent.
	buf.Reset()
	l.SetLevel(LevelError)
	sched.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("derived logger ignored parent level: %q", buf.String())
	}
}

func TestPrintf(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)
	l.Printf("start\n")
	if got := buf.String(); got != "20:55:00.000 [DEBUG] start\n" {
		t.Errorf("Printf output = %q", got)
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing")
	if l.Enabled(LevelError) {
		t.Error("Discard logger should not be enabled at any level")
	}
}
