// Package pomodoro implements the work/break cycle behind the clock widget.
package pomodoro

import (
	"time"

	"tableflip.dev/tabletop/pkg/store"
)

// Mode identifies the current period of the cycle.
type Mode int

const (
	// Work is a focused work period.
	Work Mode = iota
	// ShortBreak follows most completed work periods.
	ShortBreak
	// LongBreak follows every fourth completed work period.
	LongBreak
)

func (m Mode) String() string {
	switch m {
	case Work:
		return "work"
	case ShortBreak:
		return "short break"
	case LongBreak:
		return "long break"
	default:
		return "unknown"
	}
}

// Default period durations.
const (
	WorkDuration       = 25 * time.Minute
	ShortBreakDuration = 5 * time.Minute
	LongBreakDuration  = 15 * time.Minute

	// WorkPeriodsPerCycle is how many completed work periods earn a long break.
	WorkPeriodsPerCycle = 4
)

// Snapshot is the persisted form of the timer.
type Snapshot struct {
	Mode          Mode          `json:"mode"`
	Remaining     time.Duration `json:"remaining"`
	CompletedWork int           `json:"completedWork"`
	Running       bool          `json:"running"`
}

// Timer is the pomodoro state machine. It does not tick on its own; the
// owner feeds elapsed time through Tick.
type Timer struct {
	mode          Mode
	remaining     time.Duration
	completedWork int
	running       bool
}

// New returns a stopped timer at the start of a work period.
func New() *Timer {
	return &Timer{mode: Work, remaining: WorkDuration}
}

// Hydrate loads the persisted snapshot, defaulting to a fresh timer when the
// key is absent or corrupt. A snapshot never resumes running: a countdown
// that ticked while the process was gone would jump confusingly.
func Hydrate(p store.Persistence) *Timer {
	t := New()
	var snap Snapshot
	if !p.GetJSON(store.KeyPomodoro, &snap) {
		return t
	}
	if snap.Mode < Work || snap.Mode > LongBreak {
		return t
	}
	t.mode = snap.Mode
	t.completedWork = snap.CompletedWork
	t.remaining = snap.Remaining
	if t.remaining <= 0 || t.remaining > durationFor(t.mode) {
		t.remaining = durationFor(t.mode)
	}
	return t
}

// Persist writes the timer snapshot. Storage failures degrade to in-memory
// state only.
func (t *Timer) Persist(p store.Persistence) error {
	return p.SetJSON(store.KeyPomodoro, Snapshot{
		Mode:          t.mode,
		Remaining:     t.remaining,
		CompletedWork: t.completedWork,
		Running:       t.running,
	})
}

// Start begins or resumes the countdown.
func (t *Timer) Start() { t.running = true }

// Pause stops the countdown without losing progress.
func (t *Timer) Pause() { t.running = false }

// Toggle flips between running and paused.
func (t *Timer) Toggle() { t.running = !t.running }

// Running reports whether the countdown is live.
func (t *Timer) Running() bool { return t.running }

// Mode reports the current period.
func (t *Timer) Mode() Mode { return t.mode }

// Remaining reports time left in the current period.
func (t *Timer) Remaining() time.Duration { return t.remaining }

// CompletedWork reports how many work periods have finished.
func (t *Timer) CompletedWork() int { return t.completedWork }

// Tick advances the countdown by elapsed and transitions when it reaches
// zero. Reports whether a period completed.
func (t *Timer) Tick(elapsed time.Duration) bool {
	if !t.running || elapsed <= 0 {
		return false
	}
	t.remaining -= elapsed
	if t.remaining > 0 {
		return false
	}
	t.advance()
	return true
}

// Skip forces the current period's transition early.
func (t *Timer) Skip() {
	t.advance()
}

// Reset restores the current mode's full duration without changing mode and
// pauses the countdown.
func (t *Timer) Reset() {
	t.remaining = durationFor(t.mode)
	t.running = false
}

// advance moves to the next period. Every WorkPeriodsPerCycle-th completed
// work period routes to a long break instead of a short one.
func (t *Timer) advance() {
	switch t.mode {
	case Work:
		t.completedWork++
		if t.completedWork%WorkPeriodsPerCycle == 0 {
			t.mode = LongBreak
		} else {
			t.mode = ShortBreak
		}
	default:
		t.mode = Work
	}
	t.remaining = durationFor(t.mode)
}

func durationFor(m Mode) time.Duration {
	switch m {
	case ShortBreak:
		return ShortBreakDuration
	case LongBreak:
		return LongBreakDuration
	default:
		return WorkDuration
	}
}
