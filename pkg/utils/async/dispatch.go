package async

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/podrelay/pkg/utils/errs"
)

// Dispatch executes a handler function asynchronously with proper context and panic recovery
//
// Parameters:
//   - ctx: Original context (logger and Sentry hub are preserved, but cancellation won't affect the async handler)
//   - handler: Function to execute asynchronously
//
// Behavior:
//   - Creates a new background context with preserved logger and Sentry hub
//   - Executes handler in a new goroutine
//   - Recovers from panics, logs them with the stack and reports them to Sentry
//   - Logs and reports errors returned by handler via errs.Handle
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				ctxlog.From(newCtx).Error("panic in async handler",
					"recover", r,
					"stack", stack,
				)
				errs.Report(newCtx, goerr.New(fmt.Sprintf("panic in async handler: %v", r),
					goerr.V("stack", stack),
				))
			}
		}()

		if err := handler(newCtx); err != nil {
			errs.Handle(newCtx, goerr.Wrap(err, "error in async handler"))
		}
	}()
}

// newBackgroundContext creates a new background context that inherits values from the original context
//
// Preserved values:
//   - Logger (ctxlog)
//   - Sentry hub, when one is attached to ctx
//
// The returned context is never cancelled, even if the original context is.
func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()
	newCtx = ctxlog.With(newCtx, ctxlog.From(ctx))
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		newCtx = sentry.SetHubOnContext(newCtx, hub)
	}
	return newCtx
}
