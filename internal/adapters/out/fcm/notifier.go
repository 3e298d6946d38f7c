// Package fcm implements the Notifier port against the Firebase Cloud
// Messaging HTTP v1 API.
package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// TokenSource resolves user identifiers to their registered device tokens.
// Users without a registered device are silently skipped.
type TokenSource interface {
	TokensFor(ctx context.Context, userIDs []kernel.UUID) ([]string, error)
}

// CredentialProvider supplies the OAuth2 bearer token for the FCM v1 API.
type CredentialProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// Notifier delivers notifications through FCM. Topic notifications go out as
// a single message; recipient notifications are resolved to device tokens and
// sent one message per token, as the v1 API requires.
type Notifier struct {
	endpoint    string
	tokens      TokenSource
	credentials CredentialProvider
	client      *http.Client
}

// NewNotifier creates an FCM notifier for the given Firebase project.
func NewNotifier(projectID string, tokens TokenSource, credentials CredentialProvider) *Notifier {
	return &Notifier{
		endpoint:    fmt.Sprintf("https://fcm.googleapis.com/v1/projects/%s/messages:send", projectID),
		tokens:      tokens,
		credentials: credentials,
		client:      &http.Client{Timeout: defaultTimeout},
	}
}

// NewNotifierWithEndpoint creates a notifier against a custom endpoint.
// Used by tests to point at a local server.
func NewNotifierWithEndpoint(endpoint string, tokens TokenSource, credentials CredentialProvider) *Notifier {
	return &Notifier{
		endpoint:    endpoint,
		tokens:      tokens,
		credentials: credentials,
		client:      &http.Client{Timeout: defaultTimeout},
	}
}

// message is the FCM v1 request envelope.
type message struct {
	Message payload `json:"message"`
}

type payload struct {
	Token        string            `json:"token,omitempty"`
	Topic        string            `json:"topic,omitempty"`
	Notification notification      `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Notify delivers the notification. When a topic is set the recipients are
// ignored; otherwise each recipient's registered devices get a copy. Send
// failures are collected so one dead token does not stop the fan-out.
func (n *Notifier) Notify(ctx context.Context, note ports.Notification) error {
	if note.Topic != "" {
		return n.send(ctx, payload{
			Topic:        note.Topic,
			Notification: notification{Title: note.Title, Body: note.Body},
			Data:         note.Data,
		})
	}

	tokens, err := n.tokens.TokensFor(ctx, note.Recipients)
	if err != nil {
		return err
	}

	var sendErrs []error
	for _, token := range tokens {
		err := n.send(ctx, payload{
			Token:        token,
			Notification: notification{Title: note.Title, Body: note.Body},
			Data:         note.Data,
		})
		if err != nil {
			sendErrs = append(sendErrs, err)
		}
	}

	return errors.Join(sendErrs...)
}

func (n *Notifier) send(ctx context.Context, p payload) error {
	body, err := json.Marshal(message{Message: p})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}

	accessToken, err := n.credentials.AccessToken(ctx)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("fcm send failed with status %d: %s", resp.StatusCode, detail)
	}

	return nil
}

// StaticCredentialProvider returns a fixed access token. Token refresh is
// handled outside the process (workload identity or a sidecar).
type StaticCredentialProvider struct {
	token string
}

// NewStaticCredentialProvider creates a provider around a fixed token.
func NewStaticCredentialProvider(token string) *StaticCredentialProvider {
	return &StaticCredentialProvider{token: token}
}

// AccessToken returns the configured token.
func (p *StaticCredentialProvider) AccessToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", errors.New("fcm access token is not configured")
	}
	return p.token, nil
}
