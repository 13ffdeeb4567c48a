package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"genie-relay/backend/internal/genie"
	"genie-relay/backend/internal/genie/mocks"
	"genie-relay/backend/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testRef = genie.MessageRef{SpaceID: "space-1", ConversationID: "conv-1", MessageID: "msg-1"}

func TestWaiter_Wait(t *testing.T) {
	ctx := context.Background()

	t.Run("Never terminal stops after exactly MaxAttempts", func(t *testing.T) {
		transport := mocks.NewMockTransport(t)
		transport.On("GetMessage", mock.Anything, testRef).
			Return(&model.Message{ID: "msg-1", RemoteStatus: "EXECUTING_QUERY"}, nil).
			Times(20)

		w := NewWaiter(time.Millisecond, 20, testLogger())
		result := w.Wait(ctx, transport, testRef)

		assert.Equal(t, OutcomeTimedOut, result.Outcome)
		assert.Equal(t, 20, result.Attempts)
		require.NotNil(t, result.Message)
		assert.Equal(t, model.StatusProcessing, result.Message.Status())
		transport.AssertNumberOfCalls(t, "GetMessage", 20)
	})

	t.Run("Status errors are retried", func(t *testing.T) {
		transport := mocks.NewMockTransport(t)
		transport.On("GetMessage", mock.Anything, testRef).Return(nil, errors.New("502 bad gateway")).Twice()
		transport.On("GetMessage", mock.Anything, testRef).Return(&model.Message{ID: "msg-1", RemoteStatus: "COMPLETED"}, nil).Once()

		w := NewWaiter(time.Millisecond, 20, testLogger())
		result := w.Wait(ctx, transport, testRef)

		assert.Equal(t, OutcomeCompleted, result.Outcome)
		assert.Equal(t, 3, result.Attempts)
	})

	t.Run("Failed exits immediately", func(t *testing.T) {
		transport := mocks.NewMockTransport(t)
		transport.On("GetMessage", mock.Anything, testRef).
			Return(&model.Message{ID: "msg-1", RemoteStatus: "FAILED", Error: "warehouse unavailable"}, nil).
			Once()

		w := NewWaiter(time.Millisecond, 20, testLogger())
		result := w.Wait(ctx, transport, testRef)

		assert.Equal(t, OutcomeFailed, result.Outcome)
		assert.Equal(t, "warehouse unavailable", result.Message.Error)
		assert.Equal(t, 1, result.Attempts)
	})

	t.Run("All status checks fail", func(t *testing.T) {
		transport := mocks.NewMockTransport(t)
		transport.On("GetMessage", mock.Anything, testRef).Return(nil, errors.New("unauthorized")).Times(5)

		w := NewWaiter(time.Millisecond, 5, testLogger())
		result := w.Wait(ctx, transport, testRef)

		assert.Equal(t, OutcomeTimedOut, result.Outcome)
		assert.Nil(t, result.Message)
	})

	t.Run("Deadline ends the wait early", func(t *testing.T) {
		transport := mocks.NewMockTransport(t)
		deadlineCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()

		w := NewWaiter(time.Hour, 20, testLogger())
		result := w.Wait(deadlineCtx, transport, testRef)

		assert.Equal(t, OutcomeTimedOut, result.Outcome)
		assert.Zero(t, result.Attempts)
		transport.AssertNotCalled(t, "GetMessage", mock.Anything, mock.Anything)
	})
}

func TestWaiter_Budget(t *testing.T) {
	assert.Equal(t, 60*time.Second, NewWaiter(3*time.Second, 20, testLogger()).Budget())
}
