package config

import (
	"github.com/m-mizutani/podrelay/pkg/domain/interfaces"
	"github.com/m-mizutani/podrelay/pkg/infra/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds dispatch summary configuration
type Slack struct {
	WebhookURL string `masq:"secret"`
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook receiving a summary of each dispatch",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("PODRELAY_SLACK_WEBHOOK_URL"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Channel overriding the webhook default",
			Destination: &c.Channel,
			Sources:     cli.EnvVars("PODRELAY_SLACK_CHANNEL"),
		},
	}
}

// Reporter returns the Slack reporter, or nil when no webhook is configured
func (c *Slack) Reporter() interfaces.Reporter {
	if c.WebhookURL == "" {
		return nil
	}

	var opts []slack.Option
	if c.Channel != "" {
		opts = append(opts, slack.WithChannel(c.Channel))
	}
	return slack.New(c.WebhookURL, opts...)
}
