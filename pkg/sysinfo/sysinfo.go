// Package sysinfo samples best-effort host statistics for the system widget.
// Readings come from /proc where available; anything unreadable is simply
// left zero and the widget renders a blank for it.
package sysinfo

import (
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Snapshot is one sample of host state.
type Snapshot struct {
	Hostname string
	OS       string
	Arch     string
	NumCPU   int
	Uptime   time.Duration
	Load1    float64
	Load5    float64
	Load15   float64
	MemTotal uint64 // bytes
	MemFree  uint64 // bytes
}

// Collector samples the host. The proc root is configurable for tests.
type Collector struct {
	ProcRoot string
}

// NewCollector returns a collector reading the real /proc.
func NewCollector() *Collector {
	return &Collector{ProcRoot: "/proc"}
}

// Sample gathers a snapshot. Individual probe failures leave fields zero.
func (c *Collector) Sample() Snapshot {
	s := Snapshot{
		OS:     runtime.GOOS,
		Arch:   runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
	}
	if host, err := os.Hostname(); err == nil {
		s.Hostname = host
	}
	s.Uptime = c.uptime()
	s.Load1, s.Load5, s.Load15 = c.loadavg()
	s.MemTotal, s.MemFree = c.meminfo()
	return s
}

func (c *Collector) uptime() time.Duration {
	data, err := os.ReadFile(c.ProcRoot + "/uptime")
	if err != nil {
		return 0
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}

func (c *Collector) loadavg() (l1, l5, l15 float64) {
	data, err := os.ReadFile(c.ProcRoot + "/loadavg")
	if err != nil {
		return 0, 0, 0
	}
	fields := strings.Fields(string(data))
	if len(fields) < 3 {
		return 0, 0, 0
	}
	l1, _ = strconv.ParseFloat(fields[0], 64)
	l5, _ = strconv.ParseFloat(fields[1], 64)
	l15, _ = strconv.ParseFloat(fields[2], 64)
	return l1, l5, l15
}

func (c *Collector) meminfo() (total, free uint64) {
	data, err := os.ReadFile(c.ProcRoot + "/meminfo")
	if err != nil {
		return 0, 0
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			total = kb * 1024
		case "MemAvailable:":
			free = kb * 1024
		}
	}
	return total, free
}
