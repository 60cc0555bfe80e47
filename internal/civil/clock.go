package civil

import (
	"errors"
	"fmt"
	"time"
)

var ErrNoTimezone = errors.New("civil timezone not set")

// Clock resolves instants into the fixed civil timezone of the product.
// Business logic never asks the host for its local date, it asks the Clock.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

type ClockOption func(c *Clock)

// WithNowFunc replaces the wall clock source, used in tests.
func WithNowFunc(now func() time.Time) ClockOption {
	return func(c *Clock) {
		c.now = now
	}
}

func NewClock(loc *time.Location, opts ...ClockOption) (*Clock, error) {
	if loc == nil {
		return nil, ErrNoTimezone
	}
	c := &Clock{
		loc: loc,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewClockForZone loads the IANA zone by name. A missing tz database is an error,
// never a fallback to the host timezone.
func NewClockForZone(zone string, opts ...ClockOption) (*Clock, error) {
	if zone == "" {
		return nil, ErrNoTimezone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load civil timezone [%s]: %w", zone, err)
	}
	return NewClock(loc, opts...)
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

// Now returns today's civil date and its day of week (0 = Sunday).
func (c *Clock) Now() (Date, time.Weekday) {
	return c.ToCivil(c.now())
}

func (c *Clock) Today() Date {
	d, _ := c.Now()
	return d
}

// ToCivil converts any instant into the civil date and day of week.
func (c *Clock) ToCivil(instant time.Time) (Date, time.Weekday) {
	local := instant.In(c.loc)
	return DateOf(local), local.Weekday()
}
