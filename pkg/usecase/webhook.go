package usecase

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/podrelay/pkg/domain/interfaces"
	"github.com/m-mizutani/podrelay/pkg/domain/model"
	"github.com/m-mizutani/podrelay/pkg/utils/async"
	"github.com/m-mizutani/podrelay/pkg/utils/errs"
)

type webhookUseCase struct {
	publishers []interfaces.Publisher
	reporters  []interfaces.Reporter
	show       model.Show
	async      bool
}

// Option configures the webhook use case
type Option func(*webhookUseCase)

// WithReporter adds a reporter notified after every posted dispatch
func WithReporter(reporter interfaces.Reporter) Option {
	return func(uc *webhookUseCase) {
		uc.reporters = append(uc.reporters, reporter)
	}
}

// WithShow overrides the show named in announcements
func WithShow(show model.Show) Option {
	return func(uc *webhookUseCase) {
		uc.show = show
	}
}

// WithAsyncDispatch makes ProcessEvent return before publishers run
func WithAsyncDispatch(enabled bool) Option {
	return func(uc *webhookUseCase) {
		uc.async = enabled
	}
}

// NewWebhook creates a new instance of WebhookUseCase relaying to publishers
func NewWebhook(publishers []interfaces.Publisher, opts ...Option) *webhookUseCase {
	uc := &webhookUseCase{
		publishers: publishers,
		show:       model.DefaultShow,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ProcessEvent relays an episodePublished event to every publisher. Other
// events are ignored. Once dispatch begins the status is always posted,
// whatever the individual publishers report.
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.PublishEvent) (*model.DispatchReport, error) {
	if event == nil {
		return nil, goerr.New("publish event is nil")
	}
	logger := ctxlog.From(ctx)

	if !event.IsEpisodePublished() {
		logger.Info("Ignoring webhook event", "event", event.Event)
		return &model.DispatchReport{Status: model.StatusIgnored}, nil
	}

	ann := model.NewAnnouncement(uc.show, event)
	report := &model.DispatchReport{
		Status:       model.StatusPosted,
		Announcement: ann,
	}

	logger = logger.With("announcement_id", ann.ID)
	ctx = ctxlog.With(ctx, logger)
	logger.Info("Dispatching announcement",
		"title", event.Title,
		"image_url", ann.ImageURL,
		"publishers", len(uc.publishers),
	)

	if uc.async {
		async.Dispatch(ctx, func(ctx context.Context) error {
			uc.dispatch(ctx, &model.DispatchReport{
				Status:       model.StatusPosted,
				Announcement: ann,
			})
			return nil
		})
		return report, nil
	}

	// Delivery must not depend on the caller staying connected.
	uc.dispatch(context.WithoutCancel(ctx), report)
	return report, nil
}

// dispatch runs every publisher concurrently, fills report.Results in
// publisher order and hands the report to the reporters.
func (uc *webhookUseCase) dispatch(ctx context.Context, report *model.DispatchReport) {
	results := make([]*model.PublishResult, len(uc.publishers))

	var wg sync.WaitGroup
	for i, publisher := range uc.publishers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = publishSafely(ctx, publisher, report.Announcement)
		}()
	}
	wg.Wait()

	report.Results = results

	for _, result := range report.Failed() {
		// An unset platform is a deployment choice and is only logged.
		if result.Failure == model.FailureNotConfigured {
			continue
		}
		errs.Report(ctx, result.Err,
			errs.Tag("platform", string(result.Platform)),
			errs.Tag("failure", string(result.Failure)),
		)
	}

	ctxlog.From(ctx).Info("Dispatch completed",
		"published", len(results)-len(report.Failed()),
		"failed", len(report.Failed()),
	)

	for _, reporter := range uc.reporters {
		if err := reporter.Report(ctx, report); err != nil {
			errs.Handle(ctx, goerr.Wrap(err, "failed to report dispatch"))
		}
	}
}

// publishSafely turns a publisher panic into a failed result
func publishSafely(ctx context.Context, publisher interfaces.Publisher, ann *model.Announcement) (result *model.PublishResult) {
	platform := publisher.Platform()

	defer func() {
		if r := recover(); r != nil {
			ctxlog.From(ctx).Error("panic in publisher",
				"platform", platform,
				"recover", r,
				"stack", string(debug.Stack()),
			)
			result = model.NewPublishResult(platform, "", model.StateCreated,
				goerr.New(fmt.Sprintf("publisher panicked: %v", r), goerr.V("platform", platform)))
		}
	}()

	result = publisher.Publish(ctx, ann)
	if result == nil {
		result = model.NewPublishResult(platform, "", model.StateCreated,
			goerr.New("publisher returned no result", goerr.V("platform", platform)))
	}
	return result
}
