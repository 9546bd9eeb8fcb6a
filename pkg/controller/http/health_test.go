package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	controller "github.com/m-mizutani/podrelay/pkg/controller/http"
	"github.com/m-mizutani/podrelay/pkg/domain/model"
	"github.com/m-mizutani/podrelay/pkg/usecase"
)

func newTestServer(t *testing.T) *controller.Server {
	t.Helper()
	server, err := controller.NewServer(
		context.Background(),
		usecase.NewWebhook(nil),
		controller.WithAddr("localhost:0"),
	)
	gt.NoError(t, err)
	return server
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	gt.V(t, w.Code).Equal(http.StatusOK)

	var status model.HealthStatus
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&status))
	gt.V(t, status.Status).Equal("healthy")
	gt.V(t, status.Service).Equal("podrelay")
	gt.V(t, status.Version).NotEqual("")
}

func TestLivenessEndpoint(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	gt.V(t, w.Code).Equal(http.StatusOK)
	gt.V(t, w.Body.String()).Equal("✅ Modern Space Race Webhook Running")
}
