// Package ratelimit wraps x/time/rate with the spec shape used across
// the project: "times per duration".
package ratelimit

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Spec struct {
	Times uint64        `json:"times" yaml:"times"`
	Per   time.Duration `json:"per" yaml:"per"`
}

// UnmarshalYAML accepts the human form of durations ("1s", "2m"),
// which yaml.v3 does not decode into time.Duration on its own.
func (s *Spec) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Times uint64 `yaml:"times"`
		Per   string `yaml:"per"`
	}
	if err := value.Decode(&raw); err != nil {
		return errors.Wrap(err, "cannot decode rate limit spec")
	}

	s.Times = raw.Times

	if raw.Per == "" {
		s.Per = 0
		return nil
	}

	per, err := time.ParseDuration(raw.Per)
	if err != nil {
		return errors.Wrapf(err, "cannot parse rate limit period %q", raw.Per)
	}
	s.Per = per

	return nil
}

// Limiter throttles successful Acquire calls to spec.Times events per
// spec.Per window. A zero Per means no limiting at all.
type Limiter struct {
	limiter *rate.Limiter
}

func New(spec Spec) *Limiter {
	return &Limiter{limiter: rate.NewLimiter(specToLimit(spec), burstFor(spec))}
}

func (l *Limiter) SetSpec(spec Spec) {
	l.limiter.SetLimit(specToLimit(spec))
	l.limiter.SetBurst(burstFor(spec))
}

// Acquire blocks until an event is allowed or ctx is done.
func (l *Limiter) Acquire(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether an event may happen now, without blocking.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

func specToLimit(spec Spec) rate.Limit {
	seconds := spec.Per.Seconds()
	if seconds == 0 {
		return rate.Inf
	}

	return rate.Limit(float64(spec.Times) / seconds)
}

func burstFor(spec Spec) int {
	if spec.Times == 0 {
		return 1
	}

	return int(spec.Times)
}
