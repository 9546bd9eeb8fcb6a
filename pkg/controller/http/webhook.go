package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/podrelay/pkg/domain/interfaces"
	"github.com/m-mizutani/podrelay/pkg/domain/model"
)

// WebhookResponse acknowledges a publish event
type WebhookResponse struct {
	Status model.DispatchStatus `json:"status"`
}

// WebhookHandler handles Acast publish webhooks
type WebhookHandler struct {
	webhookUC    interfaces.WebhookUseCase
	maxBodyBytes int64
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(webhookUC interfaces.WebhookUseCase, maxBodyBytes int64) *WebhookHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &WebhookHandler{
		webhookUC:    webhookUC,
		maxBodyBytes: maxBodyBytes,
	}
}

// Handle answers 200 for every well-formed body, whatever the publishers
// report. Only an unreadable or malformed body is rejected.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("Webhook body too large", "limit", tooLarge.Limit)
			writeError(ctx, w, goerr.New("request body too large"), http.StatusRequestEntityTooLarge)
			return
		}
		logger.Error("Failed to read request body", "error", err)
		writeError(ctx, w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}

	event, err := model.ParsePublishEvent(body)
	if err != nil {
		logger.Warn("Malformed webhook payload", "error", err)
		writeError(ctx, w, goerr.New("invalid JSON payload"), http.StatusBadRequest)
		return
	}

	report, err := h.webhookUC.ProcessEvent(ctx, event)
	if err != nil {
		logger.Error("Failed to process webhook event", "error", err)
		writeError(ctx, w, err, http.StatusBadRequest)
		return
	}

	writeJSON(ctx, w, http.StatusOK, &WebhookResponse{Status: report.Status})
}
