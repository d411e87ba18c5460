package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type options struct {
	storeTimeout time.Duration
	now          func() time.Time
	log          logrus.FieldLogger
}

// Option configures a service.
type Option func(*options)

// WithStoreTimeout bounds each store call. Zero leaves the caller's context alone.
func WithStoreTimeout(d time.Duration) Option {
	return func(o *options) { o.storeTimeout = d }
}

// WithClock replaces time.Now, used for the default exercise date.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLogger sets the logger for non-fatal input problems.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

func applyOptions(opts []Option) options {
	o := options{now: time.Now, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func withStoreTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
