package genie

import (
	"context"

	"github.com/google/uuid"

	"genie-relay/backend/internal/model"
)

const mockAttachmentID = "mock-query"

// MockTransport is an offline Transport for local development. Every submitted
// message completes immediately with a canned answer and a small result table.
type MockTransport struct{}

// Ensure MockTransport implements Transport interface.
var _ Transport = (*MockTransport)(nil)

func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

func (m *MockTransport) Submit(_ context.Context, spaceID, conversationID, _ string) (*MessageRef, error) {
	if conversationID == "" {
		conversationID = uuid.NewString()
	}
	return &MessageRef{SpaceID: spaceID, ConversationID: conversationID, MessageID: uuid.NewString()}, nil
}

func (m *MockTransport) GetMessage(_ context.Context, ref MessageRef) (*model.Message, error) {
	return &model.Message{
		ID:             ref.MessageID,
		ConversationID: ref.ConversationID,
		RemoteStatus:   string(model.StatusCompleted),
		Attachments: []model.Attachment{
			{ID: "mock-text", Text: &model.TextAttachment{Content: "This is a mock Genie answer."}},
			{ID: mockAttachmentID, Query: &model.QueryAttachment{
				Query:       "SELECT region, SUM(amount) AS total FROM sales GROUP BY region",
				Description: "Total sales amount per region (mock data).",
			}},
		},
	}, nil
}

func (m *MockTransport) GetQueryResult(_ context.Context, _ MessageRef, attachmentID string) (*model.QueryResult, error) {
	if attachmentID != mockAttachmentID {
		return nil, nil
	}
	return &model.QueryResult{
		Columns: []model.Column{{Name: "region", Type: "STRING"}, {Name: "total", Type: "DECIMAL(18,2)"}},
		Data: [][]any{
			{"EMEA", "1250.00"},
			{"AMER", "3410.50"},
			{"APAC", "980.25"},
		},
	}, nil
}

func (m *MockTransport) GetSpace(_ context.Context, spaceID string) (*model.Space, error) {
	return &model.Space{ID: spaceID, Title: "Mock Genie space"}, nil
}
