package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewHandler_Format(t *testing.T) {
	tests := []struct {
		name   string
		format string
		check  func(string) bool
	}{
		{name: "json", format: "json", check: func(s string) bool { return json.Valid([]byte(strings.TrimSpace(s))) }},
		{name: "text", format: "text", check: func(s string) bool { return strings.Contains(s, "msg=hello") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf, Options{Level: slog.LevelInfo, Format: tt.format}).Info("hello")
			if !tt.check(buf.String()) {
				t.Errorf("unexpected output: %q", buf.String())
			}
		})
	}
}

func TestStartRun_TeesToFile(t *testing.T) {
	var stdout bytes.Buffer
	base := New(&stdout, Options{Level: slog.LevelInfo, Format: "text"})
	logPath := filepath.Join(t.TempDir(), "out", "analysis_x.log")

	run, err := StartRun(base, Options{Level: slog.LevelDebug, Format: "json"}, logPath, "/data/a.db")
	if err != nil {
		t.Fatalf("StartRun() error = %v", err)
	}
	run.Logger.Debug("debug only in file")
	run.Logger.Info("in both", "items", 3)
	if err := run.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if run.ID == "" {
		t.Error("run ID empty")
	}
	if !strings.Contains(stdout.String(), "in both") || strings.Contains(stdout.String(), "debug only") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "run_id="+run.ID) {
		t.Errorf("stdout missing run_id: %q", stdout.String())
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("log file has %d lines, want 2:\n%s", len(lines), data)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if rec["run_id"] != run.ID || rec["source"] != "/data/a.db" || rec["items"] != float64(3) {
		t.Errorf("record = %v", rec)
	}
}

func TestStartRun_NoFile(t *testing.T) {
	var buf bytes.Buffer
	run, err := StartRun(New(&buf, Options{}), Options{}, "", "src")
	if err != nil {
		t.Fatalf("StartRun() error = %v", err)
	}
	run.Logger.Info("x")
	if run.Path != "" || run.Close() != nil {
		t.Errorf("Path = %q", run.Path)
	}
	if !strings.Contains(buf.String(), "source=src") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestStartRun_UnwritableLog(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := StartRun(nil, Options{}, filepath.Join(blocker, "run.log"), "src"); err == nil {
		t.Error("StartRun() error = nil, want error")
	}
}

func TestFanout_WithGroup(t *testing.T) {
	var a, b bytes.Buffer
	h := Fanout(NewHandler(&a, Options{Format: "text"}), NewHandler(&b, Options{Format: "text"}))
	slog.New(h).WithGroup("g").Info("m", "k", "v")
	for name, buf := range map[string]*bytes.Buffer{"a": &a, "b": &b} {
		if !strings.Contains(buf.String(), "g.k=v") {
			t.Errorf("%s = %q", name, buf.String())
		}
	}
}
