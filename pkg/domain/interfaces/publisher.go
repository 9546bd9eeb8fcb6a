package interfaces

//go:generate moq -out mocks/publisher_mock.go -pkg mocks . Publisher Reporter

import (
	"context"

	"github.com/m-mizutani/podrelay/pkg/domain/model"
)

// Publisher posts an announcement to one social platform.
// Publish must not panic and reports failures through the returned result.
type Publisher interface {
	Platform() model.Platform
	Publish(ctx context.Context, ann *model.Announcement) *model.PublishResult
}

// Reporter receives the report of every posted dispatch
type Reporter interface {
	Report(ctx context.Context, report *model.DispatchReport) error
}
