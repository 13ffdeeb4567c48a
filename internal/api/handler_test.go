// The `_test` suffix creates a "black box" test package that can only use the
// exported identifiers of `api`.
package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"genie-relay/backend/internal/api"
	app_errors "genie-relay/backend/internal/errors"
	"genie-relay/backend/internal/interfaces/mocks"
	"genie-relay/backend/internal/model"
)

func setupGenieHandler(t *testing.T) (*api.GenieHandler, *mocks.MockGenieService) {
	mockSvc := mocks.NewMockGenieService(t)
	return api.NewGenieHandler(mockSvc), mockSvc
}

func strPtr(s string) *string { return &s }

// TestGenieHandler_SendMessage tests POST /api/genie/send-message.
func TestGenieHandler_SendMessage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// ARRANGE
		handler, mockSvc := setupGenieHandler(t)
		expected := &model.ChatResponse{
			ConversationID: "conv-1",
			MessageID:      "msg-1",
			Content:        "Sales per region",
			Status:         model.StatusCompleted,
			SQLQuery:       strPtr("SELECT region, total FROM sales"),
			QueryResults: &model.QueryResult{
				Columns: []model.Column{{Name: "region", Type: "STRING"}, {Name: "total", Type: "BIGINT"}},
				Data:    [][]any{{"east", "4"}},
			},
			Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		}
		mockSvc.On("SendMessage", mock.Anything, &model.ChatRequest{Content: "sales by region", ConversationID: "conv-1"}).
			Return(expected, nil).Once()

		// ACT
		req := httptest.NewRequest(http.MethodPost, "/api/genie/send-message", strings.NewReader(`{"content":"sales by region","conversation_id":"conv-1"}`))
		rr := httptest.NewRecorder()
		handler.SendMessage(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "conv-1", body["conversation_id"])
		assert.Equal(t, "COMPLETED", body["status"])
		assert.Equal(t, "2026-03-01T12:00:00Z", body["timestamp"])
		results := body["query_results"].(map[string]any)
		assert.Equal(t, []any{"region", "total"}, results["columns"])
		assert.Equal(t, []any{"STRING", "BIGINT"}, results["column_types"])
		assert.Equal(t, float64(1), results["row_count"])
	})

	t.Run("Null optional fields", func(t *testing.T) {
		handler, mockSvc := setupGenieHandler(t)
		mockSvc.On("SendMessage", mock.Anything, mock.AnythingOfType("*model.ChatRequest")).
			Return(&model.ChatResponse{ConversationID: "c", MessageID: "m", Content: "hi", Status: model.StatusProcessing}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/genie/send-message", strings.NewReader(`{"content":"hi"}`))
		rr := httptest.NewRecorder()
		handler.SendMessage(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"sql_query":null`)
		assert.Contains(t, rr.Body.String(), `"query_results":null`)
	})

	t.Run("Failure - Invalid JSON", func(t *testing.T) {
		handler, _ := setupGenieHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/genie/send-message", strings.NewReader(`{"content":`))
		rr := httptest.NewRecorder()
		handler.SendMessage(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Missing content", func(t *testing.T) {
		handler, _ := setupGenieHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/genie/send-message", strings.NewReader(`{"conversation_id":"c"}`))
		rr := httptest.NewRecorder()
		handler.SendMessage(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Content")
	})

	t.Run("Failure - Configuration error", func(t *testing.T) {
		handler, mockSvc := setupGenieHandler(t)
		mockSvc.On("SendMessage", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: Genie Space ID not configured. Please set DATABRICKS_GENIE_SPACE_ID.", app_errors.ErrConfiguration)).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/genie/send-message", strings.NewReader(`{"content":"q"}`))
		rr := httptest.NewRecorder()
		handler.SendMessage(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var body api.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Genie Space ID not configured. Please set DATABRICKS_GENIE_SPACE_ID.", body.Detail)
	})

	t.Run("Failure - Transport error", func(t *testing.T) {
		handler, mockSvc := setupGenieHandler(t)
		mockSvc.On("SendMessage", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: genie api returned status 403: denied", app_errors.ErrTransport)).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/genie/send-message", strings.NewReader(`{"content":"q"}`))
		rr := httptest.NewRecorder()
		handler.SendMessage(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var body api.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Failed to communicate with Genie: genie api returned status 403: denied", body.Detail)
	})

	t.Run("Failure - Internal error", func(t *testing.T) {
		handler, mockSvc := setupGenieHandler(t)
		mockSvc.On("SendMessage", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: transport returned no message reference", app_errors.ErrInternal)).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/genie/send-message", strings.NewReader(`{"content":"q"}`))
		rr := httptest.NewRecorder()
		handler.SendMessage(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var body api.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "An unexpected internal server error occurred.", body.Detail)
	})

	t.Run("Failure - Unknown error is not leaked", func(t *testing.T) {
		handler, mockSvc := setupGenieHandler(t)
		mockSvc.On("SendMessage", mock.Anything, mock.Anything).Return(nil, errors.New("secret internals")).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/genie/send-message", strings.NewReader(`{"content":"q"}`))
		rr := httptest.NewRecorder()
		handler.SendMessage(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "secret")
	})
}

// TestGenieHandler_Health tests GET /api/genie/health.
func TestGenieHandler_Health(t *testing.T) {
	statuses := []*model.HealthStatus{
		{Status: model.HealthHealthy, Configured: true, SpaceID: strPtr("01ef1234..."), SpaceName: strPtr("Sales")},
		{Status: model.HealthSpaceNotAccessible, Configured: true, Error: strPtr("404")},
		{Status: model.HealthNotConfigured, Error: strPtr("DATABRICKS_GENIE_SPACE_ID not set")},
		{Status: model.HealthError, Error: strPtr("no token")},
	}

	for _, status := range statuses {
		t.Run(status.Status, func(t *testing.T) {
			handler, mockSvc := setupGenieHandler(t)
			mockSvc.On("Health", mock.Anything).Return(status).Once()

			req := httptest.NewRequest(http.MethodGet, "/api/genie/health", nil)
			rr := httptest.NewRecorder()
			handler.Health(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			var body model.HealthStatus
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, status.Status, body.Status)
			assert.Equal(t, status.Configured, body.Configured)
		})
	}
}
