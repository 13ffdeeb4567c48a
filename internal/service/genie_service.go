package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"genie-relay/backend/internal/auth"
	"genie-relay/backend/internal/config"
	app_errors "genie-relay/backend/internal/errors"
	"genie-relay/backend/internal/genie"
	"genie-relay/backend/internal/model"
)

const failedFallbackContent = "Genie could not process this message."

// CredentialResolver yields the workspace host and token for one request.
type CredentialResolver interface {
	Resolve(ctx context.Context) (*auth.Credentials, error)
}

// TransportFactory builds a request-scoped Transport from resolved credentials.
type TransportFactory func(creds *auth.Credentials) (genie.Transport, error)

// NewTransportFactory selects the transport variant named by kind.
func NewTransportFactory(kind string, httpTimeout time.Duration) (TransportFactory, error) {
	switch kind {
	case config.TransportREST, "":
		return func(creds *auth.Credentials) (genie.Transport, error) {
			return genie.NewRESTTransport(creds.Host, creds.Token, httpTimeout), nil
		}, nil
	case config.TransportSDK:
		return func(creds *auth.Credentials) (genie.Transport, error) {
			return genie.NewSDKTransport(creds.Host, creds.Token)
		}, nil
	case config.TransportMock:
		return func(*auth.Credentials) (genie.Transport, error) {
			return genie.NewMockTransport(), nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown GENIE_TRANSPORT %q", app_errors.ErrConfiguration, kind)
	}
}

// GenieService relays chat messages to a Genie space and normalizes the replies.
// It keeps no state between requests.
type GenieService struct {
	spaceID      string
	waitTimeout  time.Duration
	resolver     CredentialResolver
	newTransport TransportFactory
	waiter       *Waiter
	normalizer   *Normalizer
	logger       *slog.Logger
	now          func() time.Time
}

func NewGenieService(cfg *config.Config, resolver CredentialResolver, factory TransportFactory, logger *slog.Logger) *GenieService {
	return &GenieService{
		spaceID:      cfg.GenieSpaceID,
		waitTimeout:  cfg.WaitTimeout,
		resolver:     resolver,
		newTransport: factory,
		waiter:       NewWaiter(cfg.PollInterval, cfg.PollMaxAttempts, logger),
		normalizer:   NewNormalizer(logger),
		logger:       logger,
		now:          time.Now,
	}
}

// SendMessage submits req to Genie and waits for the answer. Only configuration
// problems and submission failures are returned as errors; a remote failure or an
// exhausted wait still produce a response.
func (s *GenieService) SendMessage(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	if s.spaceID == "" {
		s.logger.Error("Missing Genie Space ID configuration")
		return nil, fmt.Errorf("%w: Genie Space ID not configured. Please set DATABRICKS_GENIE_SPACE_ID.", app_errors.ErrConfiguration)
	}

	transport, _, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}

	// A client disconnect must not abort calls already in flight; the wait
	// deadline still bounds the whole exchange.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.waitTimeout)
	defer cancel()

	ref, err := transport.Submit(ctx, s.spaceID, req.ConversationID, req.Content)
	if err != nil {
		s.logger.Error("Failed to submit message to Genie", "conversation_id", req.ConversationID, "error", err)
		return nil, fmt.Errorf("%w: %w", app_errors.ErrTransport, err)
	}
	if ref == nil || ref.MessageID == "" {
		s.logger.Error("Genie accepted the message but returned no message id", "conversation_id", req.ConversationID)
		return nil, fmt.Errorf("%w: transport returned no message reference", app_errors.ErrInternal)
	}
	if req.ConversationID == "" {
		s.logger.Info("Started conversation", "conversation_id", ref.ConversationID, "message_id", ref.MessageID)
	} else {
		s.logger.Info("Continued conversation", "conversation_id", ref.ConversationID, "message_id", ref.MessageID)
	}

	result := s.waiter.Wait(ctx, transport, *ref)

	resp := &model.ChatResponse{
		ConversationID: ref.ConversationID,
		MessageID:      ref.MessageID,
	}
	switch result.Outcome {
	case OutcomeCompleted:
		normalized := s.normalizer.Normalize(ctx, transport, *ref, result.Message)
		resp.Status = model.StatusCompleted
		resp.Content = normalized.Content
		resp.SQLQuery = normalized.SQLQuery
		resp.QueryResults = normalized.QueryResults
	case OutcomeFailed:
		resp.Status = model.StatusFailed
		resp.Content = firstNonEmpty(result.Message.Error, failedFallbackContent)
	default:
		resp.Status = model.StatusProcessing
		resp.Content = fmt.Sprintf("Genie is still working on this message after %s. Try again later; the conversation and message ids remain valid.", s.waiter.Budget())
	}
	resp.Timestamp = s.now()

	return resp, nil
}

// Health probes credentials and, when a space is configured, whether the space is
// reachable. It reports problems in the returned status and never fails.
func (s *GenieService) Health(ctx context.Context) *model.HealthStatus {
	transport, creds, err := s.connect(ctx)
	if err != nil {
		return &model.HealthStatus{Status: model.HealthError, Configured: false, Error: ptr(err.Error())}
	}

	if s.spaceID == "" {
		return &model.HealthStatus{
			Status:     model.HealthNotConfigured,
			Configured: false,
			Error:      ptr("DATABRICKS_GENIE_SPACE_ID not set"),
		}
	}

	spaceID := ptr(truncate(s.spaceID, 8) + "...")
	host := ptr(truncate(creds.Host, 30) + "...")

	space, err := transport.GetSpace(ctx, s.spaceID)
	if err != nil {
		s.logger.Warn("Failed to verify Genie space", "error", err)
		return &model.HealthStatus{
			Status:     model.HealthSpaceNotAccessible,
			Configured: true,
			SpaceID:    spaceID,
			Host:       host,
			Error:      ptr(err.Error()),
		}
	}

	return &model.HealthStatus{
		Status:     model.HealthHealthy,
		Configured: true,
		SpaceID:    spaceID,
		Host:       host,
		SpaceName:  ptr(space.Title),
	}
}

// connect resolves credentials and builds a transport for a single request.
func (s *GenieService) connect(ctx context.Context) (genie.Transport, *auth.Credentials, error) {
	creds, err := s.resolver.Resolve(ctx)
	if err != nil {
		s.logger.Error("Failed to resolve Databricks credentials", "error", err)
		if !errors.Is(err, app_errors.ErrConfiguration) {
			err = fmt.Errorf("%w: %w", app_errors.ErrConfiguration, err)
		}
		return nil, nil, err
	}
	transport, err := s.newTransport(creds)
	if err != nil {
		s.logger.Error("Failed to initialize Genie transport", "error", err)
		return nil, nil, fmt.Errorf("%w: Failed to initialize Databricks connection: %w", app_errors.ErrConfiguration, err)
	}
	s.logger.Debug("Genie transport initialized", "host", creds.Host)
	return transport, creds, nil
}

func ptr[T any](v T) *T { return &v }
