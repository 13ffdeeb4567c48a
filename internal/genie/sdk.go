package genie

import (
	"context"
	"fmt"

	"github.com/databricks/databricks-sdk-go"
	"github.com/databricks/databricks-sdk-go/service/dashboards"
	"github.com/databricks/databricks-sdk-go/service/sql"

	"genie-relay/backend/internal/model"
)

type sdkTransport struct {
	w *databricks.WorkspaceClient
}

// NewSDKTransport returns a Transport backed by the Databricks Go SDK, authenticated
// with a personal access token against host.
func NewSDKTransport(host, token string) (Transport, error) {
	w, err := databricks.NewWorkspaceClient(&databricks.Config{
		Host:     host,
		Token:    token,
		AuthType: "pat",
	})
	if err != nil {
		return nil, fmt.Errorf("could not create workspace client: %w", err)
	}
	return &sdkTransport{w: w}, nil
}

func (t *sdkTransport) Submit(ctx context.Context, spaceID, conversationID, content string) (*MessageRef, error) {
	if conversationID == "" {
		wait, err := t.w.Genie.StartConversation(ctx, dashboards.GenieStartConversationMessageRequest{
			SpaceId: spaceID,
			Content: content,
		})
		if err != nil {
			return nil, fmt.Errorf("could not start conversation: %w", err)
		}
		return &MessageRef{SpaceID: spaceID, ConversationID: wait.ConversationId, MessageID: wait.MessageId}, nil
	}

	wait, err := t.w.Genie.CreateMessage(ctx, dashboards.GenieCreateConversationMessageRequest{
		SpaceId:        spaceID,
		ConversationId: conversationID,
		Content:        content,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create message: %w", err)
	}
	return &MessageRef{SpaceID: spaceID, ConversationID: conversationID, MessageID: wait.MessageId}, nil
}

func (t *sdkTransport) GetMessage(ctx context.Context, ref MessageRef) (*model.Message, error) {
	msg, err := t.w.Genie.GetMessage(ctx, dashboards.GenieGetConversationMessageRequest{
		SpaceId:        ref.SpaceID,
		ConversationId: ref.ConversationID,
		MessageId:      ref.MessageID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not get message status: %w", err)
	}
	out := messageFromSDK(msg)
	if out.ID == "" {
		out.ID = ref.MessageID
	}
	if out.ConversationID == "" {
		out.ConversationID = ref.ConversationID
	}
	return out, nil
}

func (t *sdkTransport) GetQueryResult(ctx context.Context, ref MessageRef, attachmentID string) (*model.QueryResult, error) {
	resp, err := t.w.Genie.GetMessageAttachmentQueryResult(ctx, dashboards.GenieGetMessageAttachmentQueryResultRequest{
		SpaceId:        ref.SpaceID,
		ConversationId: ref.ConversationID,
		MessageId:      ref.MessageID,
		AttachmentId:   attachmentID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not get query result: %w", err)
	}
	return resultFromSDK(resp.StatementResponse), nil
}

func (t *sdkTransport) GetSpace(ctx context.Context, spaceID string) (*model.Space, error) {
	space, err := t.w.Genie.GetSpace(ctx, dashboards.GenieGetSpaceRequest{SpaceId: spaceID})
	if err != nil {
		return nil, fmt.Errorf("could not get space: %w", err)
	}
	return &model.Space{ID: spaceID, Title: space.Title}, nil
}

func messageFromSDK(m *dashboards.GenieMessage) *model.Message {
	out := &model.Message{
		ID:             m.Id,
		ConversationID: m.ConversationId,
		Content:        m.Content,
		RemoteStatus:   string(m.Status),
		Attachments:    make([]model.Attachment, 0, len(m.Attachments)),
	}
	if m.Error != nil {
		out.Error = m.Error.Error
	}
	for _, a := range m.Attachments {
		att := model.Attachment{ID: a.AttachmentId}
		if a.Text != nil {
			att.Text = &model.TextAttachment{Content: a.Text.Content}
		}
		if a.Query != nil {
			att.Query = &model.QueryAttachment{Query: a.Query.Query, Description: a.Query.Description}
		}
		out.Attachments = append(out.Attachments, att)
	}
	return out
}

// resultFromSDK returns nil when the statement has no columns or no rows.
func resultFromSDK(st *sql.StatementResponse) *model.QueryResult {
	if st == nil || st.Manifest == nil || st.Manifest.Schema == nil || st.Result == nil {
		return nil
	}
	if len(st.Manifest.Schema.Columns) == 0 || len(st.Result.DataArray) == 0 {
		return nil
	}

	out := &model.QueryResult{
		Columns: make([]model.Column, len(st.Manifest.Schema.Columns)),
		Data:    make([][]any, len(st.Result.DataArray)),
	}
	for i, c := range st.Manifest.Schema.Columns {
		typ := c.TypeText
		if typ == "" {
			typ = string(c.TypeName)
		}
		out.Columns[i] = model.Column{Name: c.Name, Type: typ}
	}
	for i, row := range st.Result.DataArray {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		out.Data[i] = cells
	}
	return out
}
