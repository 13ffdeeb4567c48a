package genie

import (
	"encoding/json"

	"genie-relay/backend/internal/model"
)

// Wire types for the Genie REST API. They are decoded once at the client boundary
// and converted into model types.

type createMessageRequest struct {
	Content string `json:"content"`
}

type startConversationResponse struct {
	ConversationID string          `json:"conversation_id"`
	MessageID      string          `json:"message_id"`
	Conversation   *conversationID `json:"conversation,omitempty"`
	Message        *messagePayload `json:"message,omitempty"`
}

type conversationID struct {
	ID string `json:"id"`
}

func (r *startConversationResponse) ids() (string, string) {
	convID, msgID := r.ConversationID, r.MessageID
	if convID == "" && r.Conversation != nil {
		convID = r.Conversation.ID
	}
	if msgID == "" && r.Message != nil {
		msgID = r.Message.messageID()
	}
	return convID, msgID
}

type messagePayload struct {
	ID             string              `json:"id"`
	MessageID      string              `json:"message_id"`
	ConversationID string              `json:"conversation_id"`
	Content        string              `json:"content"`
	Status         string              `json:"status"`
	Attachments    []attachmentPayload `json:"attachments"`
	Error          *messageError       `json:"error,omitempty"`
}

func (m *messagePayload) messageID() string {
	if m.MessageID != "" {
		return m.MessageID
	}
	return m.ID
}

type messageError struct {
	Error string `json:"error"`
	Type  string `json:"type"`
}

type attachmentPayload struct {
	AttachmentID string                  `json:"attachment_id"`
	ID           string                  `json:"id"`
	Text         *textAttachmentPayload  `json:"text,omitempty"`
	Query        *queryAttachmentPayload `json:"query,omitempty"`
}

type textAttachmentPayload struct {
	Content string `json:"content"`
}

type queryAttachmentPayload struct {
	Query       string `json:"query"`
	Description string `json:"description"`
	Title       string `json:"title"`
}

func (m *messagePayload) toModel() *model.Message {
	msg := &model.Message{
		ID:             m.messageID(),
		ConversationID: m.ConversationID,
		Content:        m.Content,
		RemoteStatus:   m.Status,
		Attachments:    make([]model.Attachment, 0, len(m.Attachments)),
	}
	if m.Error != nil {
		msg.Error = m.Error.Error
	}
	for _, a := range m.Attachments {
		att := model.Attachment{ID: a.AttachmentID}
		if att.ID == "" {
			att.ID = a.ID
		}
		if a.Text != nil {
			att.Text = &model.TextAttachment{Content: a.Text.Content}
		}
		if a.Query != nil {
			att.Query = &model.QueryAttachment{Query: a.Query.Query, Description: a.Query.Description}
		}
		msg.Attachments = append(msg.Attachments, att)
	}
	return msg
}

type queryResultResponse struct {
	StatementResponse *statementResponse `json:"statement_response"`
}

type statementResponse struct {
	Manifest *resultManifest `json:"manifest"`
	Result   *resultData     `json:"result"`
}

type resultManifest struct {
	Schema *resultSchema `json:"schema"`
}

type resultSchema struct {
	Columns []columnInfo `json:"columns"`
}

type columnInfo struct {
	Name     string `json:"name"`
	TypeText string `json:"type_text"`
	TypeName string `json:"type_name"`
}

type resultData struct {
	DataArray [][]json.RawMessage `json:"data_array"`
}

// toModel returns nil when the payload carries no columns or no rows.
func (r *queryResultResponse) toModel() (*model.QueryResult, error) {
	st := r.StatementResponse
	if st == nil || st.Manifest == nil || st.Manifest.Schema == nil || st.Result == nil {
		return nil, nil
	}
	if len(st.Manifest.Schema.Columns) == 0 || len(st.Result.DataArray) == 0 {
		return nil, nil
	}

	out := &model.QueryResult{
		Columns: make([]model.Column, len(st.Manifest.Schema.Columns)),
		Data:    make([][]any, len(st.Result.DataArray)),
	}
	for i, c := range st.Manifest.Schema.Columns {
		typ := c.TypeText
		if typ == "" {
			typ = c.TypeName
		}
		out.Columns[i] = model.Column{Name: c.Name, Type: typ}
	}
	for i, row := range st.Result.DataArray {
		cells := make([]any, len(row))
		for j, raw := range row {
			if err := json.Unmarshal(raw, &cells[j]); err != nil {
				return nil, err
			}
		}
		out.Data[i] = cells
	}
	return out, nil
}

type spaceResponse struct {
	SpaceID string `json:"space_id"`
	Title   string `json:"title"`
}
