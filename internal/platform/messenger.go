package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MessagePayload is an outbound channel message. Embeds and Components
// serialize even when empty: an explicit empty components array is how
// an edit strips buttons from a delivered message.
type MessagePayload struct {
	Content    string      `json:"content,omitempty"`
	Embeds     []Embed     `json:"embeds"`
	Components []ActionRow `json:"components"`
}

// Messenger is the channel send/fetch/edit/delete capability, keyed by
// channel and message identifiers. The HTTP implementation talks to
// the platform REST API; tests substitute a fake.
type Messenger interface {
	Send(ctx context.Context, channelID string, msg MessagePayload) (messageID string, err error)
	Fetch(ctx context.Context, channelID, messageID string) (*Message, error)
	Edit(ctx context.Context, channelID, messageID string, msg MessagePayload) error
	Delete(ctx context.Context, channelID, messageID string) error
}

// RESTMessenger implements Messenger over the platform's channel REST
// API with a bot token and a per-call timeout.
type RESTMessenger struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewRESTMessenger(baseURL, token string, timeout time.Duration) *RESTMessenger {
	return &RESTMessenger{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

func (m *RESTMessenger) Send(ctx context.Context, channelID string, msg MessagePayload) (string, error) {
	var created Message
	url := fmt.Sprintf("%s/channels/%s/messages", m.baseURL, channelID)
	if err := m.do(ctx, http.MethodPost, url, &msg, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (m *RESTMessenger) Fetch(ctx context.Context, channelID, messageID string) (*Message, error) {
	var fetched Message
	url := fmt.Sprintf("%s/channels/%s/messages/%s", m.baseURL, channelID, messageID)
	if err := m.do(ctx, http.MethodGet, url, nil, &fetched); err != nil {
		return nil, err
	}
	return &fetched, nil
}

func (m *RESTMessenger) Edit(ctx context.Context, channelID, messageID string, msg MessagePayload) error {
	url := fmt.Sprintf("%s/channels/%s/messages/%s", m.baseURL, channelID, messageID)
	return m.do(ctx, http.MethodPatch, url, &msg, nil)
}

func (m *RESTMessenger) Delete(ctx context.Context, channelID, messageID string) error {
	url := fmt.Sprintf("%s/channels/%s/messages/%s", m.baseURL, channelID, messageID)
	return m.do(ctx, http.MethodDelete, url, nil, nil)
}

func (m *RESTMessenger) do(ctx context.Context, method, url string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode message payload: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bot "+m.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("channel API %s %s: status %d: %s", method, url, resp.StatusCode, detail)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode channel API response: %w", err)
		}
	}
	return nil
}
