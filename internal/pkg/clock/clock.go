package clock

import "time"

// Clocker abstracts time so callers can replace real time in tests.
type Clocker interface {
	Now() time.Time
}

// TimeClocker is the production clock implementation backed by time.Now.
type TimeClocker struct{}

// New returns a TimeClocker that reads the current system time.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now returns the current system time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}

// Static is a manually controlled clock for tests.
//
// OTP expiry and rate-limit windows are checked against Clocker.Now, so tests
// advance a Static instead of sleeping.
type Static struct {
	Time time.Time
}

// NewStatic returns a Static clock pinned to t.
func NewStatic(t time.Time) *Static {
	return &Static{Time: t}
}

// Now returns the pinned time.
func (s *Static) Now() time.Time {
	return s.Time
}

// Advance moves the pinned time forward by d.
func (s *Static) Advance(d time.Duration) {
	s.Time = s.Time.Add(d)
}
