package slack

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/podrelay/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Notifier posts a per-platform summary of each dispatch to a Slack
// incoming webhook
type Notifier struct {
	webhookURL string
	channel    string
	client     *http.Client
}

// Option configures a Notifier
type Option func(*Notifier)

// WithChannel overrides the channel configured on the webhook
func WithChannel(channel string) Option {
	return func(n *Notifier) {
		n.channel = channel
	}
}

// WithHTTPClient sets the client used to call the webhook
func WithHTTPClient(client *http.Client) Option {
	return func(n *Notifier) {
		n.client = client
	}
}

// New creates a Notifier
func New(webhookURL string, opts ...Option) *Notifier {
	n := &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Report posts the summary of a posted dispatch
func (x *Notifier) Report(ctx context.Context, report *model.DispatchReport) error {
	if report == nil || report.Announcement == nil {
		return nil
	}

	msg := buildMessage(report)
	msg.Channel = x.channel

	if err := slack.PostWebhookCustomHTTPContext(ctx, x.webhookURL, x.client, msg); err != nil {
		return goerr.Wrap(err, "failed to post slack webhook",
			goerr.V("announcement_id", report.Announcement.ID),
		)
	}
	return nil
}

func buildMessage(report *model.DispatchReport) *slack.WebhookMessage {
	failed := len(report.Failed())
	color := "good"
	if failed > 0 {
		color = "danger"
	}

	fields := make([]slack.AttachmentField, 0, len(report.Results))
	for _, result := range report.Results {
		value := "✅ published"
		if result.PostID != "" {
			value += fmt.Sprintf(" (`%s`)", result.PostID)
		}
		if !result.Success {
			value = fmt.Sprintf("❌ %s at %s", result.Failure, result.LastState)
		}
		fields = append(fields, slack.AttachmentField{
			Title: string(result.Platform),
			Value: value,
			Short: true,
		})
	}

	return &slack.WebhookMessage{
		Text: fmt.Sprintf("Episode announcement relayed: %d/%d platforms published",
			len(report.Results)-failed, len(report.Results)),
		Attachments: []slack.Attachment{
			{
				Color:  color,
				Text:   report.Announcement.Text,
				Fields: fields,
				Footer: "announcement " + report.Announcement.ID,
			},
		},
	}
}
