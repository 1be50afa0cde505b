package clock

import "time"

// MockClock is a mock implementation of Clock for testing. Sleep advances
// the clock without blocking and records each requested duration.
type MockClock struct {
	CurrentTime time.Time
	Sleeps      []time.Duration
}

// Ensure MockClock implements Clock
var _ Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Sleep advances the mocked time by d and records the call
func (c *MockClock) Sleep(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
	c.Sleeps = append(c.Sleeps, d)
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
