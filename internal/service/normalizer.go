package service

import (
	"context"
	"log/slog"

	"genie-relay/backend/internal/genie"
	"genie-relay/backend/internal/model"
)

// Normalized is the client-facing reduction of a completed message.
type Normalized struct {
	Content      string
	SQLQuery     *string
	QueryResults *model.QueryResult
}

// Normalizer folds a message's attachments into a single answer.
type Normalizer struct {
	logger *slog.Logger
}

func NewNormalizer(logger *slog.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize walks the attachments in order. A later text or query attachment
// replaces an earlier one of the same kind, and query results always belong to the
// last query attachment. Result fetch failures only cost the results.
func (n *Normalizer) Normalize(ctx context.Context, t genie.Transport, ref genie.MessageRef, msg *model.Message) *Normalized {
	var (
		textContent      string
		queryDescription string
		sqlQuery         *string
		queryResults     *model.QueryResult
	)

	for _, att := range msg.Attachments {
		if att.Text != nil {
			textContent = att.Text.Content
			n.logger.Debug("Found text attachment", "message_id", ref.MessageID, "preview", truncate(textContent, 100))
		}

		if att.Query != nil {
			if sqlQuery != nil {
				n.logger.Debug("Replacing earlier query attachment", "message_id", ref.MessageID, "attachment_id", att.ID)
			}
			query := att.Query.Query
			sqlQuery = &query
			queryDescription = att.Query.Description
			queryResults = nil
			n.logger.Debug("Found query attachment", "message_id", ref.MessageID, "preview", truncate(queryDescription, 100))

			if att.ID != "" {
				queryResults = n.fetchResults(ctx, t, ref, att.ID)
			}
		}
	}

	return &Normalized{
		Content:      firstNonEmpty(queryDescription, textContent, msg.Content, model.FallbackContent),
		SQLQuery:     sqlQuery,
		QueryResults: queryResults,
	}
}

func (n *Normalizer) fetchResults(ctx context.Context, t genie.Transport, ref genie.MessageRef, attachmentID string) *model.QueryResult {
	result, err := t.GetQueryResult(ctx, ref, attachmentID)
	if err != nil {
		n.logger.Warn("Failed to fetch query results", "message_id", ref.MessageID, "attachment_id", attachmentID, "error", err)
		return nil
	}
	if result == nil || len(result.Columns) == 0 || len(result.Data) == 0 {
		return nil
	}
	n.logger.Info("Retrieved query results", "message_id", ref.MessageID, "rows", result.RowCount())
	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// truncate shortens a string to a specified number of runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
