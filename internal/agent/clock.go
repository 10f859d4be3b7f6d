package agent

import "time"

// Clock supplies the current date for prompts, so that agents and tests
// agree on what "today" means.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Today returns today's date as YYYY-MM-DD.
	Today() string

	// Weekday returns the current day of the week (e.g., "Monday").
	Weekday() string
}

// SystemClock is the standard Clock backed by the system time.
type SystemClock struct{}

// NewSystemClock creates a SystemClock.
func NewSystemClock() *SystemClock { return &SystemClock{} }

func (c *SystemClock) Now() time.Time  { return time.Now() }
func (c *SystemClock) Today() string   { return c.Now().Format("2006-01-02") }
func (c *SystemClock) Weekday() string { return c.Now().Weekday().String() }

// FixedClock is a Clock pinned to a single instant, for tests.
type FixedClock struct {
	fixed time.Time
}

// NewFixedClock creates a FixedClock returning t.
func NewFixedClock(t time.Time) *FixedClock { return &FixedClock{fixed: t} }

func (c *FixedClock) Now() time.Time  { return c.fixed }
func (c *FixedClock) Today() string   { return c.fixed.Format("2006-01-02") }
func (c *FixedClock) Weekday() string { return c.fixed.Weekday().String() }

var _ Clock = (*SystemClock)(nil)
var _ Clock = (*FixedClock)(nil)
