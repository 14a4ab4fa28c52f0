// Package timeparse resolves the free-form time expression in a reminder
// message to a concrete moment. Resolution tries a list of strategies in
// order and the first one that produces a moment wins: the model first, then
// the relative-offset patterns, then the clock-time patterns.
package timeparse

import (
	"context"
	"errors"
	"time"

	"github.com/botirbakhtiyarov/smartexpensebot/internal/domain"
)

var (
	// ErrNoTime means no strategy found a time expression in the message.
	ErrNoTime = errors.New("no time expression found")
	// ErrPast means a time was found but it is not in the future.
	ErrPast = errors.New("resolved time is in the past")
)

// AIFunc is the model-backed strategy. A zero result means the model found
// no time expression.
type AIFunc func(ctx context.Context, text, lang, tzName string, nowLocal time.Time) time.Time

// strategy is one local parsing rule. It receives the user's local now and
// returns the resolved local moment.
type strategy func(text string, nowLocal time.Time) (time.Time, bool)

// Resolver turns reminder text into a firing instant. The clock is
// injectable so tests can pin the current moment.
type Resolver struct {
	ai  AIFunc
	now func() time.Time
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithAI installs the model-backed strategy in front of the local ones.
func WithAI(fn AIFunc) Option {
	return func(r *Resolver) { r.ai = fn }
}

// WithClock overrides the current-time source.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// NewResolver creates a resolver with the local strategies always enabled.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve finds the firing moment for text in the user's timezone. The
// result is strictly in the future relative to the resolver's clock, or an
// error: ErrNoTime when nothing in the message looks like a time, ErrPast
// when the stated moment has already gone by.
func (r *Resolver) Resolve(ctx context.Context, text, lang string, loc *time.Location) (domain.Instant, error) {
	nowLocal := r.now().In(loc)

	var resolved time.Time
	if r.ai != nil {
		resolved = r.ai(ctx, text, lang, loc.String(), nowLocal)
	}

	if resolved.IsZero() {
		for _, s := range []strategy{parseRelative, parseClock} {
			if t, ok := s(text, nowLocal); ok {
				resolved = t
				break
			}
		}
	}

	if resolved.IsZero() {
		return domain.Instant{}, ErrNoTime
	}
	if !resolved.After(nowLocal) {
		return domain.Instant{}, ErrPast
	}
	return domain.At(resolved), nil
}
