package game

import "time"

// Coverage tracks claimed territory against the fixed playable area and
// latches the level-pass event the first time the win threshold is reached.
type Coverage struct {
	total     float64
	covered   float64
	percent   float64
	threshold float64

	passed   bool
	passedAt time.Time
}

// NewCoverage returns a tracker for an arena of totalArea with the given
// win threshold in percent.
func NewCoverage(totalArea, threshold float64) *Coverage {
	return &Coverage{total: totalArea, threshold: threshold}
}

// Update recomputes the covered area from scratch and returns the coverage
// percentage. It reports true for newly only on the call that latches the
// pass.
func (c *Coverage) Update(areas [][]Point, now time.Time) (percent float64, newly bool) {
	c.covered = coveredArea(areas)
	c.percent = 0
	if c.total > 0 {
		c.percent = 100 * c.covered / c.total
	}
	if c.percent >= c.threshold && !c.passed {
		c.passed = true
		c.passedAt = now
		newly = true
	}
	return c.percent, newly
}

// Percent returns the value computed by the last Update.
func (c *Coverage) Percent() float64 { return c.percent }

// Covered returns the summed territory area from the last Update.
func (c *Coverage) Covered() float64 { return c.covered }

// Total returns the playable area.
func (c *Coverage) Total() float64 { return c.total }

// Passed reports whether the win threshold has been reached this session.
func (c *Coverage) Passed() bool { return c.passed }

// PassedFor returns how long ago the pass latched, or 0 if it has not.
func (c *Coverage) PassedFor(now time.Time) time.Duration {
	if !c.passed {
		return 0
	}
	return now.Sub(c.passedAt)
}

// shift moves the latch timestamp forward, used when timers freeze during
// a pause.
func (c *Coverage) shift(d time.Duration) {
	if c.passed {
		c.passedAt = c.passedAt.Add(d)
	}
}
