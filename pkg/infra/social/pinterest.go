package social

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/podrelay/pkg/domain/model"
	"github.com/m-mizutani/podrelay/pkg/domain/types"
)

// PinterestConfig holds the Zapier catch hook that creates the pin
type PinterestConfig struct {
	WebhookURL string `masq:"secret"`
}

// Pinterest relays the announcement to a Zapier automation which pins it.
// All Pinterest specific handling lives in the automation.
type Pinterest struct {
	cfg    PinterestConfig
	client HTTPClient
}

// NewPinterest creates a Pinterest publisher
func NewPinterest(cfg PinterestConfig, opts ...Option) *Pinterest {
	o := newOptions(opts)
	return &Pinterest{
		cfg:    cfg,
		client: o.httpClient,
	}
}

func (x *Pinterest) Platform() model.Platform {
	return model.PlatformPinterest
}

func (x *Pinterest) Publish(ctx context.Context, ann *model.Announcement) *model.PublishResult {
	requestID, err := x.publish(ctx, ann)
	return finish(ctx, model.PlatformPinterest, requestID, model.StateCreated, err)
}

func (x *Pinterest) publish(ctx context.Context, ann *model.Announcement) (string, error) {
	if x.cfg.WebhookURL == "" {
		return "", goerr.New("zapier pinterest webhook is not configured", goerr.T(types.ErrTagNotConfigured))
	}

	payload := map[string]string{
		"text":      ann.Text,
		"image_url": ann.ImageURL,
	}
	resp, err := postJSON(ctx, x.client, x.cfg.WebhookURL, nil, payload)
	if err != nil {
		return "", err
	}
	body, err := readVendorResponse(resp)
	if err != nil {
		return "", err
	}

	// Zapier acknowledges with {"status":"success","request_id":...}; the
	// body is informational only.
	var ack struct {
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(body, &ack); err != nil {
		ctxlog.From(ctx).Debug("Zapier acknowledgement is not JSON", "error", err)
	}
	return ack.RequestID, nil
}
