package social

import (
	"bytes"
	"context"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/podrelay/pkg/domain/model"
	"github.com/m-mizutani/podrelay/pkg/domain/types"
)

const (
	linkedInBaseURL       = "https://api.linkedin.com"
	linkedInUploadRequest = "com.linkedin.digitalmedia.uploading.MediaUploadHttpRequest"
	linkedInMediaTitle    = "New Podcast Episode"
)

// LinkedInConfig holds the organization page used for posting
type LinkedInConfig struct {
	AccessToken    string `masq:"secret"`
	OrganizationID string
}

func (c LinkedInConfig) owner() string {
	return "urn:li:organization:" + c.OrganizationID
}

// LinkedIn shares the announcement on an organization page in three phases:
// register an image upload, upload the cover image, then create the share.
type LinkedIn struct {
	cfg    LinkedInConfig
	client HTTPClient
	base   string
}

// NewLinkedIn creates a LinkedIn publisher
func NewLinkedIn(cfg LinkedInConfig, opts ...Option) *LinkedIn {
	o := newOptions(opts)
	return &LinkedIn{
		cfg:    cfg,
		client: o.httpClient,
		base:   o.base(linkedInBaseURL),
	}
}

func (x *LinkedIn) Platform() model.Platform {
	return model.PlatformLinkedIn
}

func (x *LinkedIn) Publish(ctx context.Context, ann *model.Announcement) *model.PublishResult {
	state := model.StateCreated
	postID, err := x.publish(ctx, ann, &state)
	return finish(ctx, model.PlatformLinkedIn, postID, state, err)
}

func (x *LinkedIn) authHeader() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+x.cfg.AccessToken)
	h.Set("X-Restli-Protocol-Version", "2.0.0")
	return h
}

func (x *LinkedIn) publish(ctx context.Context, ann *model.Announcement, state *model.PublishState) (string, error) {
	if x.cfg.AccessToken == "" || x.cfg.OrganizationID == "" {
		return "", goerr.New("linkedin credentials are not configured", goerr.T(types.ErrTagNotConfigured))
	}

	uploadURL, asset, err := x.registerUpload(ctx)
	if err != nil {
		return "", err
	}

	image, err := fetchImage(ctx, x.client, ann.ImageURL)
	if err != nil {
		return "", err
	}
	if err := x.uploadImage(ctx, uploadURL, image); err != nil {
		return "", err
	}
	*state = model.StateAssetReady

	return x.share(ctx, ann, asset)
}

func (x *LinkedIn) registerUpload(ctx context.Context) (string, string, error) {
	payload := map[string]any{
		"registerUploadRequest": map[string]any{
			"owner":   x.cfg.owner(),
			"recipes": []string{"urn:li:digitalmediaRecipe:feedshare-image"},
			"serviceRelationships": []map[string]string{
				{
					"identifier":       "urn:li:userGeneratedContent",
					"relationshipType": "OWNER",
				},
			},
		},
	}

	resp, err := postJSON(ctx, x.client, x.base+"/v2/assets?action=registerUpload", x.authHeader(), payload)
	if err != nil {
		return "", "", err
	}
	registered, err := decodeVendorResponse(resp)
	if err != nil {
		return "", "", err
	}

	uploadURL := stringField(registered, "value", "uploadMechanism", linkedInUploadRequest, "uploadUrl")
	asset := stringField(registered, "value", "asset")
	if uploadURL == "" || asset == "" {
		return "", "", goerr.New("upload registration returned no upload url or asset",
			goerr.T(types.ErrTagVendorRejected),
			goerr.V("asset", asset),
		)
	}

	return uploadURL, asset, nil
}

func (x *LinkedIn) uploadImage(ctx context.Context, uploadURL string, image []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(image))
	if err != nil {
		return goerr.Wrap(err, "failed to create image upload request", goerr.T(types.ErrTagNetwork))
	}
	req.Header.Set("Authorization", "Bearer "+x.cfg.AccessToken)

	resp, err := send(x.client, req)
	if err != nil {
		return err
	}
	_, err = readVendorResponse(resp)
	return err
}

func (x *LinkedIn) share(ctx context.Context, ann *model.Announcement, asset string) (string, error) {
	payload := map[string]any{
		"author":         x.cfg.owner(),
		"lifecycleState": "PUBLISHED",
		"specificContent": map[string]any{
			"com.linkedin.ugc.ShareContent": map[string]any{
				"shareCommentary":    map[string]string{"text": ann.Text},
				"shareMediaCategory": "IMAGE",
				"media": []map[string]any{
					{
						"status":      "READY",
						"description": map[string]string{"text": ann.Text},
						"media":       asset,
						"title":       map[string]string{"text": linkedInMediaTitle},
					},
				},
			},
		},
		"visibility": map[string]string{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	}

	resp, err := postJSON(ctx, x.client, x.base+"/v2/ugcPosts", x.authHeader(), payload)
	if err != nil {
		return "", err
	}
	restliID := resp.Header.Get("X-RestLi-Id")

	shared, err := decodeVendorResponse(resp)
	if err != nil {
		return "", err
	}
	if id := stringField(shared, "id"); id != "" {
		return id, nil
	}
	return restliID, nil
}
