package social

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/podrelay/pkg/domain/types"
)

const (
	defaultHTTPTimeout       = 30 * time.Second
	responseBodyLimit  int64 = 10 << 20 // 10 MiB
	imageBodyLimit     int64 = 20 << 20
)

// HTTPClient is satisfied by *http.Client
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type options struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a publisher
type Option func(*options)

// WithHTTPClient sets the client used for vendor and image requests
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithBaseURL replaces every vendor API host of a publisher, e.g. with a test server
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return o
}

// base returns the overridden base URL, or def when none was set
func (o *options) base(def string) string {
	if o.baseURL != "" {
		return o.baseURL
	}
	return def
}

// send performs req and tags transport failures as network errors. Request
// paths may embed credentials (e.g. Zapier catch hooks), so only the method
// and host are kept and the *url.Error wrapper is dropped.
func send(client HTTPClient, req *http.Request) (*http.Response, error) {
	resp, err := client.Do(req)
	if err != nil {
		cause := err
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			cause = urlErr.Err
		}
		return nil, goerr.Wrap(cause, "request failed",
			goerr.T(types.ErrTagNetwork),
			goerr.V("method", req.Method),
			goerr.V("host", req.URL.Host),
		)
	}
	return resp, nil
}

// readVendorResponse reads a vendor response and rejects non-2xx statuses
func readVendorResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, responseBodyLimit))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read vendor response", goerr.T(types.ErrTagNetwork))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.New("vendor returned error status",
			goerr.T(types.ErrTagVendorRejected),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	return body, nil
}

// decodeVendorResponse decodes a JSON vendor response as an opaque object.
// An "error" or "errors" key is treated as a rejection even with HTTP 200.
func decodeVendorResponse(resp *http.Response) (map[string]any, error) {
	body, err := readVendorResponse(resp)
	if err != nil {
		return nil, err
	}

	obj := map[string]any{}
	if len(bytes.TrimSpace(body)) == 0 {
		return obj, nil
	}
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, goerr.Wrap(err, "vendor response is not a JSON object",
			goerr.T(types.ErrTagVendorRejected),
			goerr.V("body", string(body)),
		)
	}

	for _, key := range []string{"error", "errors"} {
		if v, ok := obj[key]; ok && v != nil {
			return nil, goerr.New("vendor rejected request",
				goerr.T(types.ErrTagVendorRejected),
				goerr.V("status", resp.StatusCode),
				goerr.V(key, v),
			)
		}
	}

	return obj, nil
}

func postForm(ctx context.Context, client HTTPClient, endpoint string, form url.Values) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create form request", goerr.T(types.ErrTagNetwork))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := send(client, req)
	if err != nil {
		return nil, err
	}
	return decodeVendorResponse(resp)
}

func postJSON(ctx context.Context, client HTTPClient, endpoint string, header http.Header, payload any) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal request payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create JSON request", goerr.T(types.ErrTagNetwork))
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	return send(client, req)
}

// fetchImage downloads the announcement cover image
func fetchImage(ctx context.Context, client HTTPClient, imageURL string) ([]byte, error) {
	if imageURL == "" {
		return nil, goerr.New("no image url to fetch", goerr.T(types.ErrTagNetwork))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid image url", goerr.T(types.ErrTagNetwork), goerr.V("url", imageURL))
	}

	resp, err := send(client, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.New("unexpected status fetching image",
			goerr.T(types.ErrTagNetwork),
			goerr.V("status", resp.StatusCode),
			goerr.V("url", imageURL),
		)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, imageBodyLimit))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read image", goerr.T(types.ErrTagNetwork), goerr.V("url", imageURL))
	}
	return data, nil
}

// stringField walks nested objects along path and returns the string found there
func stringField(obj map[string]any, path ...string) string {
	var cur any = obj
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = m[key]
	}
	s, _ := cur.(string)
	return s
}
