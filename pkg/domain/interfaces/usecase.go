package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . WebhookUseCase

import (
	"context"

	"github.com/m-mizutani/podrelay/pkg/domain/model"
)

// WebhookUseCase defines the interface for publish event processing
type WebhookUseCase interface {
	// ProcessEvent relays a publish event to every platform and reports the outcome
	ProcessEvent(ctx context.Context, event *model.PublishEvent) (*model.DispatchReport, error)
}
