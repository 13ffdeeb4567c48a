package interfaces

import (
	"context"

	"genie-relay/backend/internal/model"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows for
// decoupling (e.g., API layer from Service layer) and easier testing via mocking.

// GenieService defines the contract for relaying chat messages to Genie.
type GenieService interface {
	SendMessage(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
	Health(ctx context.Context) *model.HealthStatus
}
