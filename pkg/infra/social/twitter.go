package social

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/dghubble/oauth1"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/podrelay/pkg/domain/model"
	"github.com/m-mizutani/podrelay/pkg/domain/types"
)

const (
	twitterUploadBaseURL = "https://upload.twitter.com"
	twitterAPIBaseURL    = "https://api.twitter.com"
)

// TwitterConfig holds OAuth 1.0a user-context credentials
type TwitterConfig struct {
	APIKey       string `masq:"secret"`
	APISecret    string `masq:"secret"`
	AccessToken  string `masq:"secret"`
	AccessSecret string `masq:"secret"`
}

func (c TwitterConfig) configured() bool {
	return c.APIKey != "" && c.APISecret != "" && c.AccessToken != "" && c.AccessSecret != ""
}

// Twitter uploads the cover image as media and posts a status referencing it
type Twitter struct {
	cfg         TwitterConfig
	signed      HTTPClient
	imageClient HTTPClient
	uploadBase  string
	apiBase     string
}

// NewTwitter creates a Twitter publisher
func NewTwitter(cfg TwitterConfig, opts ...Option) *Twitter {
	o := newOptions(opts)

	ctx := context.WithValue(context.Background(), oauth1.HTTPClient, o.httpClient)
	signed := oauth1.NewConfig(cfg.APIKey, cfg.APISecret).
		Client(ctx, oauth1.NewToken(cfg.AccessToken, cfg.AccessSecret))
	signed.Timeout = o.httpClient.Timeout

	return &Twitter{
		cfg:         cfg,
		signed:      signed,
		imageClient: o.httpClient,
		uploadBase:  o.base(twitterUploadBaseURL),
		apiBase:     o.base(twitterAPIBaseURL),
	}
}

func (x *Twitter) Platform() model.Platform {
	return model.PlatformTwitter
}

func (x *Twitter) Publish(ctx context.Context, ann *model.Announcement) *model.PublishResult {
	postID, err := x.publish(ctx, ann)
	return finish(ctx, model.PlatformTwitter, postID, model.StateCreated, err)
}

func (x *Twitter) publish(ctx context.Context, ann *model.Announcement) (string, error) {
	if !x.cfg.configured() {
		return "", goerr.New("twitter credentials are not configured", goerr.T(types.ErrTagNotConfigured))
	}

	image, err := fetchImage(ctx, x.imageClient, ann.ImageURL)
	if err != nil {
		return "", err
	}

	mediaID, err := x.uploadMedia(ctx, image)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("status", ann.Text)
	form.Set("media_ids", mediaID)

	status, err := postForm(ctx, x.signed, x.apiBase+"/1.1/statuses/update.json", form)
	if err != nil {
		return "", err
	}

	return stringField(status, "id_str"), nil
}

func (x *Twitter) uploadMedia(ctx context.Context, image []byte) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("media", "cover.jpg")
	if err != nil {
		return "", goerr.Wrap(err, "failed to create media form part")
	}
	if _, err := part.Write(image); err != nil {
		return "", goerr.Wrap(err, "failed to write media form part")
	}
	if err := writer.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to close media form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.uploadBase+"/1.1/media/upload.json", body)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create media upload request", goerr.T(types.ErrTagNetwork))
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := send(x.signed, req)
	if err != nil {
		return "", err
	}
	media, err := decodeVendorResponse(resp)
	if err != nil {
		return "", err
	}

	mediaID := stringField(media, "media_id_string")
	if mediaID == "" {
		return "", goerr.New("media upload returned no media id", goerr.T(types.ErrTagVendorRejected))
	}
	return mediaID, nil
}
