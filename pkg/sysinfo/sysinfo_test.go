package sysinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fakeProc(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}

func TestSampleParsesProcFiles(t *testing.T) {
	root := fakeProc(t, map[string]string{
		"uptime":  "3600.50 7200.00\n",
		"loadavg": "0.42 0.36 0.25 1/123 4567\n",
		"meminfo": "MemTotal:       16384000 kB\nMemFree:         1024000 kB\nMemAvailable:    8192000 kB\n",
	})
	c := &Collector{ProcRoot: root}
	s := c.Sample()

	if s.Uptime != time.Duration(3600.5*float64(time.Second)) {
		t.Fatalf("uptime = %v", s.Uptime)
	}
	if s.Load1 != 0.42 || s.Load5 != 0.36 || s.Load15 != 0.25 {
		t.Fatalf("loadavg = %v %v %v", s.Load1, s.Load5, s.Load15)
	}
	if s.MemTotal != 16384000*1024 {
		t.Fatalf("mem total = %d", s.MemTotal)
	}
	if s.MemFree != 8192000*1024 {
		t.Fatalf("mem free = %d", s.MemFree)
	}
	if s.OS == "" || s.Arch == "" || s.NumCPU == 0 {
		t.Fatalf("runtime fields missing: %+v", s)
	}
}

func TestSampleSurvivesMissingProc(t *testing.T) {
	c := &Collector{ProcRoot: filepath.Join(t.TempDir(), "no-such-proc")}
	s := c.Sample()
	if s.Uptime != 0 || s.Load1 != 0 || s.MemTotal != 0 {
		t.Fatalf("expected zero probes, got %+v", s)
	}
}

func TestSampleSurvivesGarbage(t *testing.T) {
	root := fakeProc(t, map[string]string{
		"uptime":  "not numbers",
		"loadavg": "??",
		"meminfo": "MemTotal: lots\n",
	})
	c := &Collector{ProcRoot: root}
	s := c.Sample()
	if s.Uptime != 0 || s.Load1 != 0 || s.MemTotal != 0 {
		t.Fatalf("expected zeroes for garbage input, got %+v", s)
	}
}
