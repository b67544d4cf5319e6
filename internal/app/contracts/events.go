package contracts

import (
	"careplan-service/internal/app/models"
	"context"
)

// EventPublisher delivers domain events to the external notification
// sink. Delivery is one-way; the core does not depend on it succeeding.
type EventPublisher interface {
	Publish(ctx context.Context, event models.DomainEvent) error
}
