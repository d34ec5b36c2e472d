// Package clock pins every "now" read and every user-supplied timestamp to a
// single canonical zone.
package clock

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/jonboulle/clockwork"
)

// DefaultZone is the canonical zone when none is configured
const DefaultZone = "America/Sao_Paulo"

// Local layouts are interpreted in the canonical zone.
var localLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

const dateLayout = "2006-01-02"

// Clock is a clockwork clock bound to a location.
type Clock struct {
	clock clockwork.Clock
	loc   *time.Location
}

// New wraps c so that Now is reported in loc
func New(c clockwork.Clock, loc *time.Location) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{clock: c, loc: loc}
}

// NewReal returns a real-time clock in the named zone
func NewReal(zone string) (*Clock, error) {
	loc, err := LoadLocation(zone)
	if err != nil {
		return nil, err
	}
	return New(clockwork.NewRealClock(), loc), nil
}

// LoadLocation resolves a zone name, falling back to DefaultZone when empty
func LoadLocation(zone string) (*time.Location, error) {
	if strings.TrimSpace(zone) == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", zone, err)
	}
	return loc, nil
}

func (c *Clock) Now() time.Time {
	return c.clock.Now().In(c.loc)
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

// ParseTimestamp accepts "YYYY-MM-DD HH:MM[:SS]" (space or T separator) in the
// canonical zone, or RFC 3339 with an explicit offset. The result is always
// expressed in the canonical zone.
func (c *Clock) ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, c.loc); err == nil {
			return t, nil
		}
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.In(c.loc), nil
	}

	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

// ParseDate parses YYYY-MM-DD as midnight in the canonical zone
func (c *Clock) ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}
