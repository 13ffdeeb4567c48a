package genie

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"genie-relay/backend/internal/model"
)

type restTransport struct {
	client *http.Client
	host   string
	token  string
}

// NewRESTTransport returns a Transport that calls the Genie REST API at host with
// a bearer token. host must already be normalized (scheme, no trailing slash).
func NewRESTTransport(host, token string, timeout time.Duration) Transport {
	return &restTransport{
		client: &http.Client{Timeout: timeout},
		host:   host,
		token:  token,
	}
}

func (t *restTransport) spaceURL(spaceID string) string {
	return fmt.Sprintf("%s/api/2.0/genie/spaces/%s", t.host, url.PathEscape(spaceID))
}

func (t *restTransport) messageURL(ref MessageRef) string {
	return fmt.Sprintf("%s/conversations/%s/messages/%s",
		t.spaceURL(ref.SpaceID), url.PathEscape(ref.ConversationID), url.PathEscape(ref.MessageID))
}

func (t *restTransport) Submit(ctx context.Context, spaceID, conversationID, content string) (*MessageRef, error) {
	body := createMessageRequest{Content: content}

	if conversationID == "" {
		var resp startConversationResponse
		if err := t.do(ctx, http.MethodPost, t.spaceURL(spaceID)+"/start-conversation", body, &resp); err != nil {
			return nil, fmt.Errorf("could not start conversation: %w", err)
		}
		convID, msgID := resp.ids()
		if convID == "" || msgID == "" {
			return nil, fmt.Errorf("start-conversation response is missing ids")
		}
		return &MessageRef{SpaceID: spaceID, ConversationID: convID, MessageID: msgID}, nil
	}

	endpoint := fmt.Sprintf("%s/conversations/%s/messages", t.spaceURL(spaceID), url.PathEscape(conversationID))
	var resp messagePayload
	if err := t.do(ctx, http.MethodPost, endpoint, body, &resp); err != nil {
		return nil, fmt.Errorf("could not create message: %w", err)
	}
	if resp.messageID() == "" {
		return nil, fmt.Errorf("create-message response is missing message id")
	}
	return &MessageRef{SpaceID: spaceID, ConversationID: conversationID, MessageID: resp.messageID()}, nil
}

func (t *restTransport) GetMessage(ctx context.Context, ref MessageRef) (*model.Message, error) {
	var resp messagePayload
	if err := t.do(ctx, http.MethodGet, t.messageURL(ref), nil, &resp); err != nil {
		return nil, fmt.Errorf("could not get message status: %w", err)
	}
	msg := resp.toModel()
	if msg.ID == "" {
		msg.ID = ref.MessageID
	}
	if msg.ConversationID == "" {
		msg.ConversationID = ref.ConversationID
	}
	return msg, nil
}

func (t *restTransport) GetQueryResult(ctx context.Context, ref MessageRef, attachmentID string) (*model.QueryResult, error) {
	endpoint := t.messageURL(ref) + "/query-result/" + url.PathEscape(attachmentID)
	var resp queryResultResponse
	if err := t.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("could not get query result: %w", err)
	}
	result, err := resp.toModel()
	if err != nil {
		return nil, fmt.Errorf("could not decode query result rows: %w", err)
	}
	return result, nil
}

func (t *restTransport) GetSpace(ctx context.Context, spaceID string) (*model.Space, error) {
	var resp spaceResponse
	if err := t.do(ctx, http.MethodGet, t.spaceURL(spaceID), nil, &resp); err != nil {
		return nil, fmt.Errorf("could not get space: %w", err)
	}
	if resp.SpaceID == "" {
		resp.SpaceID = spaceID
	}
	return &model.Space{ID: resp.SpaceID, Title: resp.Title}, nil
}

// do sends one request and decodes a 200 response into out. Any other status is
// returned as *APIError carrying the response body.
func (t *restTransport) do(ctx context.Context, method, endpoint string, in, out interface{}) error {
	var reqBody io.Reader
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		reqBody = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+t.token)
	httpReq.Header.Set("Accept", "application/json")
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	return nil
}
