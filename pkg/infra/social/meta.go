package social

import (
	"context"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/podrelay/pkg/domain/model"
	"github.com/m-mizutani/podrelay/pkg/domain/types"
)

const (
	graphBaseURL        = "https://graph.facebook.com"
	DefaultGraphVersion = "v18.0"
)

// MetaConfig holds the Facebook Page and Instagram business account used for posting.
// Instagram publishes with the page access token.
type MetaConfig struct {
	PageID          string
	PageAccessToken string `masq:"secret"`
	InstagramUserID string
	GraphVersion    string
}

func (c MetaConfig) graphURL(base string, parts ...string) string {
	version := c.GraphVersion
	if version == "" {
		version = DefaultGraphVersion
	}
	u := base + "/" + version
	for _, p := range parts {
		u += "/" + url.PathEscape(p)
	}
	return u
}

// Facebook posts the cover image with the announcement as caption to a Page
type Facebook struct {
	cfg    MetaConfig
	client HTTPClient
	base   string
}

// NewFacebook creates a Facebook Page publisher
func NewFacebook(cfg MetaConfig, opts ...Option) *Facebook {
	o := newOptions(opts)
	return &Facebook{
		cfg:    cfg,
		client: o.httpClient,
		base:   o.base(graphBaseURL),
	}
}

func (x *Facebook) Platform() model.Platform {
	return model.PlatformFacebook
}

func (x *Facebook) Publish(ctx context.Context, ann *model.Announcement) *model.PublishResult {
	postID, err := x.publish(ctx, ann)
	return finish(ctx, model.PlatformFacebook, postID, model.StateCreated, err)
}

func (x *Facebook) publish(ctx context.Context, ann *model.Announcement) (string, error) {
	if x.cfg.PageID == "" || x.cfg.PageAccessToken == "" {
		return "", goerr.New("facebook page credentials are not configured", goerr.T(types.ErrTagNotConfigured))
	}

	form := url.Values{}
	form.Set("url", ann.ImageURL)
	form.Set("caption", ann.Text)
	form.Set("access_token", x.cfg.PageAccessToken)

	resp, err := postForm(ctx, x.client, x.cfg.graphURL(x.base, x.cfg.PageID, "photos"), form)
	if err != nil {
		return "", err
	}

	if postID := stringField(resp, "post_id"); postID != "" {
		return postID, nil
	}
	return stringField(resp, "id"), nil
}

// Instagram publishes in two phases: a media container is created from the
// cover image, then the container is published.
type Instagram struct {
	cfg    MetaConfig
	client HTTPClient
	base   string
}

// NewInstagram creates an Instagram publisher
func NewInstagram(cfg MetaConfig, opts ...Option) *Instagram {
	o := newOptions(opts)
	return &Instagram{
		cfg:    cfg,
		client: o.httpClient,
		base:   o.base(graphBaseURL),
	}
}

func (x *Instagram) Platform() model.Platform {
	return model.PlatformInstagram
}

func (x *Instagram) Publish(ctx context.Context, ann *model.Announcement) *model.PublishResult {
	state := model.StateCreated
	postID, err := x.publish(ctx, ann, &state)
	return finish(ctx, model.PlatformInstagram, postID, state, err)
}

func (x *Instagram) publish(ctx context.Context, ann *model.Announcement, state *model.PublishState) (string, error) {
	if x.cfg.InstagramUserID == "" || x.cfg.PageAccessToken == "" {
		return "", goerr.New("instagram credentials are not configured", goerr.T(types.ErrTagNotConfigured))
	}

	create := url.Values{}
	create.Set("image_url", ann.ImageURL)
	create.Set("caption", ann.Text)
	create.Set("access_token", x.cfg.PageAccessToken)

	container, err := postForm(ctx, x.client, x.cfg.graphURL(x.base, x.cfg.InstagramUserID, "media"), create)
	if err != nil {
		return "", err
	}

	creationID := stringField(container, "id")
	if creationID == "" {
		return "", goerr.New("no instagram container id returned", goerr.T(types.ErrTagMissingContainer))
	}
	*state = model.StateContainerReady

	publish := url.Values{}
	publish.Set("creation_id", creationID)
	publish.Set("access_token", x.cfg.PageAccessToken)

	media, err := postForm(ctx, x.client, x.cfg.graphURL(x.base, x.cfg.InstagramUserID, "media_publish"), publish)
	if err != nil {
		return "", err
	}

	return stringField(media, "id"), nil
}
