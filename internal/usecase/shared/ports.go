package shared

import (
	"context"
	"time"

	"marketplace-core/internal/domain/payment"

	"github.com/google/uuid"
)

const (
	EntityListing     = "listing"
	EntityReservation = "reservation"
	EntityOrder       = "order"
	EntityDispute     = "dispute"
)

// StatusEvent is the audit record of one lifecycle change.
type StatusEvent struct {
	ID         uuid.UUID  `json:"id"`
	Entity     string     `json:"entity"`
	EntityID   uuid.UUID  `json:"entity_id"`
	From       string     `json:"from"`
	To         string     `json:"to"`
	ActorID    *uuid.UUID `json:"actor_id,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

func NewStatusEvent(entity string, entityID uuid.UUID, from, to string, actorID *uuid.UUID, at time.Time) StatusEvent {
	return StatusEvent{
		ID:         uuid.New(),
		Entity:     entity,
		EntityID:   entityID,
		From:       from,
		To:         to,
		ActorID:    actorID,
		OccurredAt: at,
	}
}

type ProviderEvent struct {
	Provider    string
	EventID     string
	OrderID     uuid.UUID
	Outcome     payment.Outcome
	ProcessedAt time.Time
}

// EventPublisher fans committed status events out to the messaging system.
type EventPublisher interface {
	Publish(ctx context.Context, events []StatusEvent) error
}

type PaymentIntentRequest struct {
	OrderID     uuid.UUID
	AmountCents int64
	Currency    string
}

// PaymentGateway is the external provider boundary; it is always called outside a transaction.
type PaymentGateway interface {
	Provider() string
	CreateIntent(ctx context.Context, req PaymentIntentRequest) (payment.Refs, error)
}
