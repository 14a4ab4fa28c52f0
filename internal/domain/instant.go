package domain

import "time"

// Instant is a point in time that is always expressed in UTC. The store keeps
// timestamps without zone information, so every value crossing that boundary
// goes through this type instead of a bare time.Time that may carry a stray
// local zone.
type Instant struct {
	t time.Time
}

// At converts an arbitrary time into an Instant, normalizing to UTC.
func At(t time.Time) Instant {
	return Instant{t: t.UTC()}
}

// NowInstant returns the current instant.
func NowInstant() Instant {
	return Instant{t: time.Now().UTC()}
}

// Time returns the underlying UTC time.
func (i Instant) Time() time.Time {
	return i.t
}

// Add returns the instant shifted by d.
func (i Instant) Add(d time.Duration) Instant {
	return Instant{t: i.t.Add(d)}
}

// After reports whether i is strictly after o.
func (i Instant) After(o Instant) bool {
	return i.t.After(o.t)
}

// Before reports whether i is strictly before o.
func (i Instant) Before(o Instant) bool {
	return i.t.Before(o.t)
}

// Sub returns the duration i − o.
func (i Instant) Sub(o Instant) time.Duration {
	return i.t.Sub(o.t)
}

// In renders the instant in the given location, for user-facing display only.
func (i Instant) In(loc *time.Location) time.Time {
	return i.t.In(loc)
}

// IsZero reports whether the instant is the zero value.
func (i Instant) IsZero() bool {
	return i.t.IsZero()
}

func (i Instant) String() string {
	return i.t.Format(time.RFC3339)
}

// ParseInstant parses an RFC3339 timestamp into an Instant.
func ParseInstant(s string) (Instant, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Instant{}, err
	}
	return At(t), nil
}
