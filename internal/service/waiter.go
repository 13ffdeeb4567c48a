package service

import (
	"context"
	"log/slog"
	"time"

	"genie-relay/backend/internal/genie"
	"genie-relay/backend/internal/model"
)

// WaitOutcome is the terminal state reached by the Waiter.
type WaitOutcome int

const (
	OutcomeCompleted WaitOutcome = iota
	OutcomeFailed
	OutcomeTimedOut
)

func (o WaitOutcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeFailed:
		return "failed"
	default:
		return "timed_out"
	}
}

// WaitResult carries the outcome and the last message snapshot seen, which is nil
// when every status check failed.
type WaitResult struct {
	Outcome  WaitOutcome
	Message  *model.Message
	Attempts int
}

// Waiter polls a submitted message at a fixed interval until Genie reports a
// terminal status or the attempt budget runs out. There is no backoff.
type Waiter struct {
	Interval    time.Duration
	MaxAttempts int
	logger      *slog.Logger
}

func NewWaiter(interval time.Duration, maxAttempts int, logger *slog.Logger) *Waiter {
	return &Waiter{Interval: interval, MaxAttempts: maxAttempts, logger: logger}
}

// Budget is the longest the waiter sleeps in total.
func (w *Waiter) Budget() time.Duration {
	return w.Interval * time.Duration(w.MaxAttempts)
}

// Wait never returns an error: failed status checks are logged and retried on the
// next attempt, and exhaustion is reported as OutcomeTimedOut.
func (w *Waiter) Wait(ctx context.Context, t genie.Transport, ref genie.MessageRef) *WaitResult {
	var last *model.Message

	for attempt := 1; attempt <= w.MaxAttempts; attempt++ {
		if err := sleep(ctx, w.Interval); err != nil {
			w.logger.Warn("Wait deadline reached while polling Genie", "message_id", ref.MessageID, "attempt", attempt, "error", err)
			return &WaitResult{Outcome: OutcomeTimedOut, Message: last, Attempts: attempt - 1}
		}

		msg, err := t.GetMessage(ctx, ref)
		if err != nil {
			w.logger.Warn("Failed to check message status", "message_id", ref.MessageID, "attempt", attempt, "error", err)
			continue
		}
		last = msg

		switch msg.Status() {
		case model.StatusCompleted:
			w.logger.Info("Genie message completed", "message_id", ref.MessageID, "attempts", attempt)
			return &WaitResult{Outcome: OutcomeCompleted, Message: msg, Attempts: attempt}
		case model.StatusFailed:
			w.logger.Warn("Genie message failed", "message_id", ref.MessageID, "remote_status", msg.RemoteStatus, "error", msg.Error)
			return &WaitResult{Outcome: OutcomeFailed, Message: msg, Attempts: attempt}
		}

		w.logger.Debug("Genie message still processing", "message_id", ref.MessageID, "remote_status", msg.RemoteStatus, "attempt", attempt)
	}

	w.logger.Warn("Gave up waiting for Genie message", "message_id", ref.MessageID, "attempts", w.MaxAttempts)
	return &WaitResult{Outcome: OutcomeTimedOut, Message: last, Attempts: w.MaxAttempts}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
