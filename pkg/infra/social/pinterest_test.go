package social_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/podrelay/pkg/domain/model"
	"github.com/m-mizutani/podrelay/pkg/infra/social"
)

func TestPinterest_Publish(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Method).Equal(http.MethodPost)
		gt.V(t, r.Header.Get("Content-Type")).Equal("application/json")
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"attempt":"a-1","id":"i-1","request_id":"r-1","status":"success"}`))
	}))
	defer server.Close()

	publisher := social.NewPinterest(social.PinterestConfig{WebhookURL: server.URL + "/hooks/catch/1/abc/"})
	gt.V(t, publisher.Platform()).Equal(model.PlatformPinterest)

	result := publisher.Publish(context.Background(), &model.Announcement{Text: "hello orbit", ImageURL: ""})

	gt.True(t, result.Success)
	gt.V(t, result.PostID).Equal("r-1")
	gt.V(t, received["text"]).Equal("hello orbit")
	gt.V(t, received["image_url"]).Equal("")
}

func TestPinterest_Publish_Failures(t *testing.T) {
	t.Run("hook returns error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusGone)
		}))
		defer server.Close()

		publisher := social.NewPinterest(social.PinterestConfig{WebhookURL: server.URL})
		result := publisher.Publish(context.Background(), &model.Announcement{Text: "x"})

		gt.False(t, result.Success)
		gt.V(t, result.Failure).Equal(model.FailureVendorRejected)
	})

	t.Run("hook unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()

		publisher := social.NewPinterest(social.PinterestConfig{WebhookURL: server.URL + "/hooks/catch/123/HOOKTOKEN/"})
		result := publisher.Publish(context.Background(), &model.Announcement{Text: "x"})

		gt.False(t, result.Success)
		gt.V(t, result.Failure).Equal(model.FailureNetwork)

		// the hook path is a credential and must not travel with the error
		gt.False(t, strings.Contains(result.Err.Error(), "HOOKTOKEN"))
		var goErr *goerr.Error
		gt.True(t, errors.As(result.Err, &goErr))
		gt.False(t, strings.Contains(fmt.Sprint(goErr.Values()), "HOOKTOKEN"))
	})

	t.Run("acknowledgement is not JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		publisher := social.NewPinterest(social.PinterestConfig{WebhookURL: server.URL})
		result := publisher.Publish(context.Background(), &model.Announcement{Text: "x"})

		gt.True(t, result.Success)
		gt.V(t, result.PostID).Equal("")
	})

	t.Run("hook not configured", func(t *testing.T) {
		publisher := social.NewPinterest(social.PinterestConfig{})
		result := publisher.Publish(context.Background(), &model.Announcement{Text: "x"})

		gt.False(t, result.Success)
		gt.V(t, result.Failure).Equal(model.FailureNotConfigured)
	})
}
