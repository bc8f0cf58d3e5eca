package chrono

import "time"

// API is the interface that anything depending on the system clock should use.
type API interface {
	Now() time.Time
	Location() *time.Location
}

// StandardImpl is the implementation of API using the system clock.
type StandardImpl struct {
	location *time.Location
}

// NewStandardImpl creates a StandardImpl reporting times in UTC.
func NewStandardImpl() StandardImpl {
	return StandardImpl{location: time.UTC}
}

func (s StandardImpl) Now() time.Time {
	return time.Now().In(s.location)
}

func (s StandardImpl) Location() *time.Location {
	return s.location
}

// FixedImpl always returns the same instant, it is used to make humanized output deterministic.
type FixedImpl struct {
	now time.Time
}

func NewFixedImpl(now time.Time) FixedImpl {
	return FixedImpl{now: now}
}

func (f FixedImpl) Now() time.Time {
	return f.now
}

func (f FixedImpl) Location() *time.Location {
	return f.now.Location()
}
