// Package genie talks to the Databricks Genie conversation API.
package genie

import (
	"context"
	"fmt"

	"genie-relay/backend/internal/model"
)

// MessageRef addresses one message inside a conversation of a space.
type MessageRef struct {
	SpaceID        string
	ConversationID string
	MessageID      string
}

// Transport is the remote conversation API. Submit starts a new conversation when
// conversationID is empty and continues the given conversation otherwise. Submit
// returns as soon as Genie has accepted the message; it does not wait for completion.
type Transport interface {
	Submit(ctx context.Context, spaceID, conversationID, content string) (*MessageRef, error)
	GetMessage(ctx context.Context, ref MessageRef) (*model.Message, error)
	GetQueryResult(ctx context.Context, ref MessageRef, attachmentID string) (*model.QueryResult, error)
	GetSpace(ctx context.Context, spaceID string) (*model.Space, error)
}

// APIError is returned for non-2xx responses from the Genie REST API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("genie api returned status %d: %s", e.StatusCode, e.Body)
}
