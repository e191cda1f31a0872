package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ticketdesk/internal/domain/platform"
	"ticketdesk/internal/shared/config"
)

// RESTClient is a thin adapter over the messaging platform's HTTP API. It
// does no throttling or retrying of its own; platform 429 responses surface
// as ErrRateLimited and the Gateway decides what that means for the caller.
type RESTClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ platform.Client = (*RESTClient)(nil)

func NewRESTClient(cfg *config.PlatformConfig) *RESTClient {
	return &RESTClient{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		httpClient: &http.Client{},
	}
}

type channelCreateRequest struct {
	Name         string `json:"name"`
	Topic        string `json:"topic,omitempty"`
	ParentRef    string `json:"parent_ref,omitempty"`
	OpenerID     string `json:"opener_id,omitempty"`
	StaffRoleRef string `json:"staff_role_ref,omitempty"`
}

type channelResponse struct {
	Ref string `json:"ref"`
}

type messageRequest struct {
	Content string `json:"content"`
	Pinned  bool   `json:"pinned,omitempty"`
}

type messageResponse struct {
	Ref string `json:"ref"`
}

func (c *RESTClient) CreateChannel(ctx context.Context, create platform.ChannelCreate) (string, error) {
	body := channelCreateRequest{
		Name:         create.Name,
		Topic:        create.Topic,
		ParentRef:    create.ParentRef,
		OpenerID:     create.OpenerID,
		StaffRoleRef: create.StaffRoleRef,
	}

	var resp channelResponse
	path := fmt.Sprintf("/guilds/%s/channels", create.GuildID)
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return "", err
	}
	return resp.Ref, nil
}

func (c *RESTClient) EditChannel(ctx context.Context, channelRef string, edit platform.ChannelEdit) error {
	body := map[string]interface{}{}
	if edit.Name != nil {
		body["name"] = *edit.Name
	}
	if edit.Topic != nil {
		body["topic"] = *edit.Topic
	}
	if edit.Locked != nil {
		body["locked"] = *edit.Locked
	}

	path := fmt.Sprintf("/channels/%s", channelRef)
	return c.do(ctx, http.MethodPatch, path, body, nil)
}

func (c *RESTClient) DeleteChannel(ctx context.Context, channelRef string) error {
	path := fmt.Sprintf("/channels/%s", channelRef)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *RESTClient) GetChannel(ctx context.Context, channelRef string) (*platform.ChannelInfo, error) {
	var resp struct {
		Ref   string `json:"ref"`
		Name  string `json:"name"`
		Topic string `json:"topic"`
	}

	path := fmt.Sprintf("/channels/%s", channelRef)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &platform.ChannelInfo{
		Ref:   resp.Ref,
		Name:  resp.Name,
		Topic: resp.Topic,
	}, nil
}

func (c *RESTClient) ChannelExists(ctx context.Context, channelRef string) (bool, error) {
	_, err := c.GetChannel(ctx, channelRef)
	if err == platform.ErrChannelNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *RESTClient) SendMessage(ctx context.Context, channelRef string, msg platform.OutboundMessage) (string, error) {
	body := messageRequest{
		Content: msg.Content,
		Pinned:  msg.Pinned,
	}

	var resp messageResponse
	path := fmt.Sprintf("/channels/%s/messages", channelRef)
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return "", err
	}
	return resp.Ref, nil
}

func (c *RESTClient) EditMessage(ctx context.Context, channelRef, messageRef, content string) error {
	body := messageRequest{Content: content}
	path := fmt.Sprintf("/channels/%s/messages/%s", channelRef, messageRef)
	return c.do(ctx, http.MethodPatch, path, body, nil)
}

func (c *RESTClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build platform request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("platform request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return platform.ErrRateLimited
	case resp.StatusCode == http.StatusNotFound:
		return platform.ErrChannelNotFound
	case resp.StatusCode >= 400:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("platform returned status %d: %s", resp.StatusCode, string(detail))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode platform response: %w", err)
		}
	}
	return nil
}
