package model

import (
	"encoding/json"
	"time"
)

// FallbackContent is returned whenever no text could be extracted from a completed message.
const FallbackContent = "Query completed successfully."

// MessageStatus is the processing status reported back to the client.
type MessageStatus string

const (
	StatusPending    MessageStatus = "PENDING"
	StatusProcessing MessageStatus = "PROCESSING"
	StatusSubmitted  MessageStatus = "SUBMITTED"
	StatusCompleted  MessageStatus = "COMPLETED"
	StatusFailed     MessageStatus = "FAILED"
)

// StatusFromRemote collapses Genie's fine-grained message states into a MessageStatus.
// Genie reports intermediate states such as FETCHING_METADATA or EXECUTING_QUERY; all of
// them count as PROCESSING.
func StatusFromRemote(remote string) MessageStatus {
	switch remote {
	case "COMPLETED":
		return StatusCompleted
	case "FAILED", "CANCELLED", "QUERY_RESULT_EXPIRED":
		return StatusFailed
	default:
		return StatusProcessing
	}
}

// Message is a Genie message as seen by the relay.
type Message struct {
	ID             string
	ConversationID string
	Content        string
	// RemoteStatus is the raw status string reported by Genie.
	RemoteStatus string
	Attachments  []Attachment
	// Error is the remote error text, set when Genie failed the message.
	Error string
}

// Status returns the relay status of the message.
func (m *Message) Status() MessageStatus {
	return StatusFromRemote(m.RemoteStatus)
}

// Attachment is a tagged variant: Text, Query, both or neither may be set.
type Attachment struct {
	ID    string
	Text  *TextAttachment
	Query *QueryAttachment
}

type TextAttachment struct {
	Content string
}

type QueryAttachment struct {
	Query       string
	Description string
}

// Column describes a single result column.
type Column struct {
	Name string
	Type string
}

// QueryResult holds the tabular output of a generated query.
type QueryResult struct {
	Columns []Column
	Data    [][]any
}

// RowCount is always len(Data).
func (q *QueryResult) RowCount() int {
	return len(q.Data)
}

// queryResultJSON is the wire shape the web client expects.
type queryResultJSON struct {
	Columns     []string `json:"columns"`
	ColumnTypes []string `json:"column_types"`
	Data        [][]any  `json:"data"`
	RowCount    int      `json:"row_count"`
}

func (q QueryResult) MarshalJSON() ([]byte, error) {
	out := queryResultJSON{
		Columns:     make([]string, len(q.Columns)),
		ColumnTypes: make([]string, len(q.Columns)),
		Data:        q.Data,
		RowCount:    len(q.Data),
	}
	for i, c := range q.Columns {
		out.Columns[i] = c.Name
		out.ColumnTypes[i] = c.Type
	}
	return json.Marshal(out)
}

func (q *QueryResult) UnmarshalJSON(b []byte) error {
	var in queryResultJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	q.Columns = make([]Column, len(in.Columns))
	for i, name := range in.Columns {
		q.Columns[i].Name = name
		if i < len(in.ColumnTypes) {
			q.Columns[i].Type = in.ColumnTypes[i]
		}
	}
	q.Data = in.Data
	return nil
}

// Space is the subset of Genie space metadata used by the health probe.
type Space struct {
	ID    string
	Title string
}

// ChatRequest is the body of POST /api/genie/send-message.
type ChatRequest struct {
	Content        string `json:"content" validate:"required" example:"What were total sales last month?"`
	ConversationID string `json:"conversation_id,omitempty" example:"01ef5b2c3d4e5f60"`
}

// ChatResponse is the normalized reply returned to the client.
type ChatResponse struct {
	ConversationID string        `json:"conversation_id"`
	MessageID      string        `json:"message_id"`
	Content        string        `json:"content"`
	Status         MessageStatus `json:"status"`
	SQLQuery       *string       `json:"sql_query"`
	QueryResults   *QueryResult  `json:"query_results"`
	Timestamp      time.Time     `json:"timestamp"`
}

// Health probe outcomes.
const (
	HealthHealthy            = "healthy"
	HealthSpaceNotAccessible = "space_not_accessible"
	HealthNotConfigured      = "not_configured"
	HealthError              = "error"
)

// HealthStatus is the body of GET /api/genie/health.
type HealthStatus struct {
	Status     string  `json:"status"`
	Configured bool    `json:"configured"`
	SpaceID    *string `json:"space_id,omitempty"`
	Host       *string `json:"host,omitempty"`
	SpaceName  *string `json:"space_name,omitempty"`
	Error      *string `json:"error,omitempty"`
}
