package fcm_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"dispatch/internal/adapters/out/fcm"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenSource struct {
	tokens []string
}

func (s *stubTokenSource) TokensFor(_ context.Context, _ []kernel.UUID) ([]string, error) {
	return s.tokens, nil
}

type capturedRequest struct {
	authorization string
	body          map[string]any
}

type captureServer struct {
	mu       sync.Mutex
	requests []capturedRequest
	status   int
}

func (c *captureServer) handler(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)

	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	c.mu.Lock()
	c.requests = append(c.requests, capturedRequest{
		authorization: r.Header.Get("Authorization"),
		body:          body,
	})
	c.mu.Unlock()

	w.WriteHeader(c.status)
}

func (c *captureServer) messages() []map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]map[string]any, 0, len(c.requests))
	for _, req := range c.requests {
		message, _ := req.body["message"].(map[string]any)
		out = append(out, message)
	}
	return out
}

func newNotification() ports.Notification {
	return ports.Notification{
		ID:         kernel.NewUUID(),
		Recipients: []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()},
		Title:      "New order",
		Body:       "An order is waiting in your sector",
		Data:       map[string]string{"event": "order_created"},
		CreatedAt:  time.Now(),
	}
}

func TestNotifier_Notify_Recipients_SendsOneMessagePerToken(t *testing.T) {
	capture := &captureServer{status: http.StatusOK}
	server := httptest.NewServer(http.HandlerFunc(capture.handler))
	defer server.Close()

	notifier := fcm.NewNotifierWithEndpoint(
		server.URL,
		&stubTokenSource{tokens: []string{"token-a", "token-b"}},
		fcm.NewStaticCredentialProvider("secret"),
	)

	err := notifier.Notify(t.Context(), newNotification())
	require.NoError(t, err)

	messages := capture.messages()
	require.Len(t, messages, 2)

	tokens := make([]string, 0, 2)
	for _, message := range messages {
		token, _ := message["token"].(string)
		tokens = append(tokens, token)

		data, _ := message["data"].(map[string]any)
		assert.Equal(t, "order_created", data["event"])
	}
	assert.ElementsMatch(t, []string{"token-a", "token-b"}, tokens)

	assert.Equal(t, "Bearer secret", capture.requests[0].authorization)
}

func TestNotifier_Notify_Topic_SendsSingleMessage(t *testing.T) {
	capture := &captureServer{status: http.StatusOK}
	server := httptest.NewServer(http.HandlerFunc(capture.handler))
	defer server.Close()

	notifier := fcm.NewNotifierWithEndpoint(
		server.URL,
		&stubTokenSource{tokens: []string{"token-a"}},
		fcm.NewStaticCredentialProvider("secret"),
	)

	notification := newNotification()
	notification.Topic = "sector-drivers"

	err := notifier.Notify(t.Context(), notification)
	require.NoError(t, err)

	messages := capture.messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "sector-drivers", messages[0]["topic"])
	assert.NotContains(t, messages[0], "token")
}

func TestNotifier_Notify_GatewayError_ReturnsError(t *testing.T) {
	capture := &captureServer{status: http.StatusUnauthorized}
	server := httptest.NewServer(http.HandlerFunc(capture.handler))
	defer server.Close()

	notifier := fcm.NewNotifierWithEndpoint(
		server.URL,
		&stubTokenSource{tokens: []string{"token-a"}},
		fcm.NewStaticCredentialProvider("secret"),
	)

	err := notifier.Notify(t.Context(), newNotification())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestStaticCredentialProvider_MissingToken_ReturnsError(t *testing.T) {
	provider := fcm.NewStaticCredentialProvider("")

	_, err := provider.AccessToken(t.Context())
	require.Error(t, err)
}
