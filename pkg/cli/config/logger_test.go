package config_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/podrelay/pkg/cli/config"
	"github.com/m-mizutani/podrelay/pkg/domain/model"
	"github.com/m-mizutani/podrelay/pkg/infra/social"
)

func TestLogger_RedactsCredentials(t *testing.T) {
	for _, json := range []bool{true, false} {
		t.Run(map[bool]string{true: "json", false: "console"}[json], func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := (&config.Logger{Level: "info", JSON: json}).ConfigureWithWriter(&buf)
			gt.NoError(t, err)

			logger.Info("credentials loaded",
				slog.Any("twitter", social.TwitterConfig{
					APIKey:       "tw-key-do-not-log",
					APISecret:    "tw-secret-do-not-log",
					AccessToken:  "tw-token-do-not-log",
					AccessSecret: "tw-token-secret-do-not-log",
				}),
				slog.Any("linkedin", social.LinkedInConfig{
					AccessToken:    "li-token-do-not-log",
					OrganizationID: "5515715",
				}),
			)

			out := buf.String()
			gt.True(t, strings.Contains(out, "credentials loaded"))
			gt.True(t, strings.Contains(out, "5515715"))
			gt.False(t, strings.Contains(out, "do-not-log"))
		})
	}
}

func TestLogger_HookURLNotLoggedOnTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	hookURL := server.URL + "/hooks/catch/123/HOOKTOKEN/"
	server.Close()

	for _, json := range []bool{true, false} {
		t.Run(map[bool]string{true: "json", false: "console"}[json], func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := (&config.Logger{Level: "debug", JSON: json}).ConfigureWithWriter(&buf)
			gt.NoError(t, err)

			ctx := ctxlog.With(context.Background(), logger)
			publisher := social.NewPinterest(social.PinterestConfig{WebhookURL: hookURL})
			result := publisher.Publish(ctx, &model.Announcement{Text: "x"})
			gt.False(t, result.Success)
			gt.V(t, result.Failure).Equal(model.FailureNetwork)

			out := buf.String()
			gt.True(t, strings.Contains(out, "Failed to publish announcement"))
			gt.False(t, strings.Contains(out, "HOOKTOKEN"))
		})
	}
}

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		level   string
		json    bool
		wantErr bool
	}{
		{level: "debug"},
		{level: "DEBUG"},
		{level: "info", json: true},
		{level: "Warn"},
		{level: "error", json: true},
		{level: "", wantErr: true},
		{level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := (&config.Logger{Level: tt.level, JSON: tt.json}).ConfigureWithWriter(&buf)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}

			gt.NoError(t, err)
			logger.Error("configured")
			gt.True(t, strings.Contains(buf.String(), "configured"))
		})
	}
}

func TestLogger_Flags(t *testing.T) {
	flags := (&config.Logger{}).Flags()
	gt.A(t, flags).Length(2)
	gt.V(t, flags[0].Names()[0]).Equal("log-level")
	gt.V(t, flags[1].Names()[0]).Equal("log-json")
}
