// logger_test.go

package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2021, 3, 7, 12, 0, 0, 0, time.UTC)
}

func newTestLogger(buf *bytes.Buffer, level Level, format Format) *Logger {
	l := New(Config{Level: level, Format: format, Output: buf, Component: "test"})
	l.now = fixedClock
	return l
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, WARN, JSONFormat)

	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines at WARN, got %d: %q", len(lines), buf.String())
	}
	for i, line := range lines {
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Errorf("line %d is not JSON: %v", i, err)
		}
	}
}

func TestJSONEntry(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, INFO, JSONFormat)
	l.Error("render failed", errors.New("boom"), Fields{"chart": "weight", "points": 20})

	var e Entry
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatal(err)
	}
	if e.Level != "ERROR" || e.Message != "render failed" || e.Component != "test" {
		t.Errorf("unexpected entry %+v", e)
	}
	if e.Error != "boom" {
		t.Errorf("Error = %q", e.Error)
	}
	if e.Fields["chart"] != "weight" || e.Fields["points"] != float64(20) {
		t.Errorf("Fields = %v", e.Fields)
	}
	if e.Timestamp != "2021-03-07T12:00:00Z" {
		t.Errorf("Timestamp = %q", e.Timestamp)
	}
}

func TestTextFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, INFO, TextFormat)
	l.Info("wrote chart", Fields{"path": "out.svg", "bytes": 12})

	want := "2021-03-07T12:00:00Z INFO  [test] wrote chart bytes=12 path=out.svg\n"
	if got := buf.String(); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestWithComponentSharesOutput(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, DEBUG, TextFormat)
	child := l.WithComponent("render")
	child.Infof("stage %s", "title")
	if !strings.Contains(buf.String(), "[render] stage title") {
		t.Errorf("child output = %q", buf.String())
	}
}

func TestDebugCarriesCaller(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, DEBUG, TextFormat)
	l.Debug("here")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Errorf("debug line without caller: %q", buf.String())
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", DEBUG, true},
		{"WARNING", WARN, true},
		{" error ", ERROR, true},
		{"loud", INFO, false},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
	if f, err := ParseFormat("JSON"); err != nil || f != JSONFormat {
		t.Errorf("ParseFormat(JSON) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}
