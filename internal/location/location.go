// Package location maps shared coordinates to IANA timezones.
package location

import "github.com/zsefvlol/timezonemapper"

// Resolver is a stateless coordinate-to-timezone lookup.
type Resolver struct{}

// NewResolver creates a Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveTimezone returns the IANA zone for the coordinates, "" when the
// lookup has no answer.
func (Resolver) ResolveTimezone(lat, lon float64) string {
	return timezonemapper.LatLngToTimezoneString(lat, lon)
}
