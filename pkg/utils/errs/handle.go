package errs

import (
	"context"
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type options struct {
	tags map[string]string
}

// Option adds context to a handled error
type Option func(*options)

// Tag attaches a searchable key/value to the error report
func Tag(key, value string) Option {
	return func(o *options) {
		o.tags[key] = value
	}
}

// Handle logs err and forwards it to Sentry
func Handle(ctx context.Context, err error, opts ...Option) {
	if err == nil {
		return
	}

	o := newOptions(opts)
	attrs := []any{"error", err}
	for k, v := range o.tags {
		attrs = append(attrs, k, v)
	}
	ctxlog.From(ctx).Error("Error occurred", attrs...)

	capture(ctx, err, o)
}

// Report forwards err to Sentry without logging it, for errors already
// logged where they happened.
func Report(ctx context.Context, err error, opts ...Option) {
	if err == nil {
		return
	}
	capture(ctx, err, newOptions(opts))
}

func newOptions(opts []Option) *options {
	o := &options{tags: map[string]string{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// capture is a no-op until a Sentry client is bound to the hub
func capture(ctx context.Context, err error, o *options) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}

	hub = hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range o.tags {
			scope.SetTag(k, v)
		}

		var goErr *goerr.Error
		if errors.As(err, &goErr) {
			scope.SetContext("values", sentry.Context(goErr.Values()))
		}

		hub.CaptureException(err)
	})
}
