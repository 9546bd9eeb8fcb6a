package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/podrelay/pkg/infra/social"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Credentials holds per-platform secrets. It is read once at startup and
// passed by value to each publisher.
type Credentials struct {
	File      string
	Twitter   social.TwitterConfig
	Meta      social.MetaConfig
	LinkedIn  social.LinkedInConfig
	Pinterest social.PinterestConfig
}

// credentialsFile is the TOML layout accepted by --config
type credentialsFile struct {
	Twitter struct {
		APIKey       string `toml:"api_key"`
		APISecret    string `toml:"api_secret"`
		AccessToken  string `toml:"access_token"`
		AccessSecret string `toml:"access_secret"`
	} `toml:"twitter"`
	Meta struct {
		PageID          string `toml:"page_id"`
		PageAccessToken string `toml:"page_access_token"`
		InstagramUserID string `toml:"instagram_user_id"`
		GraphVersion    string `toml:"graph_version"`
	} `toml:"meta"`
	LinkedIn struct {
		AccessToken    string `toml:"access_token"`
		OrganizationID string `toml:"organization_id"`
	} `toml:"linkedin"`
	Pinterest struct {
		ZapierWebhookURL string `toml:"zapier_webhook_url"`
	} `toml:"pinterest"`
}

// Flags returns CLI flags for platform credentials. Each flag also reads the
// bare environment variable names used by earlier deployments.
func (c *Credentials) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "TOML file providing credentials not set by flags or environment",
			Destination: &c.File,
			Sources:     cli.EnvVars("PODRELAY_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "twitter-api-key",
			Usage:       "Twitter API key",
			Destination: &c.Twitter.APIKey,
			Sources:     cli.EnvVars("PODRELAY_TWITTER_API_KEY", "TWITTER_API_KEY"),
		},
		&cli.StringFlag{
			Name:        "twitter-api-secret",
			Usage:       "Twitter API secret",
			Destination: &c.Twitter.APISecret,
			Sources:     cli.EnvVars("PODRELAY_TWITTER_API_SECRET", "TWITTER_API_SECRET"),
		},
		&cli.StringFlag{
			Name:        "twitter-access-token",
			Usage:       "Twitter access token",
			Destination: &c.Twitter.AccessToken,
			Sources:     cli.EnvVars("PODRELAY_TWITTER_ACCESS_TOKEN", "TWITTER_ACCESS_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "twitter-access-secret",
			Usage:       "Twitter access token secret",
			Destination: &c.Twitter.AccessSecret,
			Sources:     cli.EnvVars("PODRELAY_TWITTER_ACCESS_SECRET", "TWITTER_ACCESS_SECRET"),
		},
		&cli.StringFlag{
			Name:        "facebook-page-id",
			Usage:       "Facebook Page ID",
			Destination: &c.Meta.PageID,
			Sources:     cli.EnvVars("PODRELAY_FACEBOOK_PAGE_ID", "FB_PAGE_ID"),
		},
		&cli.StringFlag{
			Name:        "facebook-page-access-token",
			Usage:       "Facebook Page access token, also used for Instagram",
			Destination: &c.Meta.PageAccessToken,
			Sources:     cli.EnvVars("PODRELAY_FACEBOOK_PAGE_ACCESS_TOKEN", "FB_PAGE_ACCESS_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "instagram-user-id",
			Usage:       "Instagram business account ID",
			Destination: &c.Meta.InstagramUserID,
			Sources:     cli.EnvVars("PODRELAY_INSTAGRAM_USER_ID", "IG_USER_ID"),
		},
		&cli.StringFlag{
			Name:        "meta-graph-version",
			Usage:       "Graph API version for Facebook and Instagram",
			Destination: &c.Meta.GraphVersion,
			Sources:     cli.EnvVars("PODRELAY_META_GRAPH_VERSION"),
		},
		&cli.StringFlag{
			Name:        "linkedin-access-token",
			Usage:       "LinkedIn access token",
			Destination: &c.LinkedIn.AccessToken,
			Sources:     cli.EnvVars("PODRELAY_LINKEDIN_ACCESS_TOKEN", "LINKEDIN_ACCESS_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "linkedin-organization-id",
			Usage:       "LinkedIn organization ID",
			Destination: &c.LinkedIn.OrganizationID,
			Sources:     cli.EnvVars("PODRELAY_LINKEDIN_ORGANIZATION_ID", "LINKEDIN_ORGANIZATION_ID"),
		},
		&cli.StringFlag{
			Name:        "zapier-pinterest-webhook-url",
			Usage:       "Zapier catch hook that pins announcements to Pinterest",
			Destination: &c.Pinterest.WebhookURL,
			Sources:     cli.EnvVars("PODRELAY_ZAPIER_PINTEREST_WEBHOOK_URL", "ZAPIER_PINTEREST_WEBHOOK_URL"),
		},
	}
}

// Load fills credentials left empty by flags and environment from the
// configured TOML file. Without a file it only applies defaults.
func (c *Credentials) Load() error {
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return goerr.Wrap(err, "failed to read credentials file", goerr.V("path", c.File))
		}

		var f credentialsFile
		if err := toml.Unmarshal(data, &f); err != nil {
			return goerr.Wrap(err, "failed to parse credentials file", goerr.V("path", c.File))
		}

		fill(&c.Twitter.APIKey, f.Twitter.APIKey)
		fill(&c.Twitter.APISecret, f.Twitter.APISecret)
		fill(&c.Twitter.AccessToken, f.Twitter.AccessToken)
		fill(&c.Twitter.AccessSecret, f.Twitter.AccessSecret)
		fill(&c.Meta.PageID, f.Meta.PageID)
		fill(&c.Meta.PageAccessToken, f.Meta.PageAccessToken)
		fill(&c.Meta.InstagramUserID, f.Meta.InstagramUserID)
		fill(&c.Meta.GraphVersion, f.Meta.GraphVersion)
		fill(&c.LinkedIn.AccessToken, f.LinkedIn.AccessToken)
		fill(&c.LinkedIn.OrganizationID, f.LinkedIn.OrganizationID)
		fill(&c.Pinterest.WebhookURL, f.Pinterest.ZapierWebhookURL)
	}

	fill(&c.Meta.GraphVersion, social.DefaultGraphVersion)
	return nil
}

func fill(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
