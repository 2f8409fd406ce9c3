package request

import (
	"encoding/json"

	"marketplace-core/internal/domain/payment"
	"marketplace-core/internal/usecase/commands"

	"github.com/google/uuid"
)

// PaymentEventRequest is the provider outcome as relayed by the webhook ingress.
type PaymentEventRequest struct {
	Provider        string          `json:"provider"`
	EventID         string          `json:"event_id" binding:"required"`
	OrderID         uuid.UUID       `json:"order_id" binding:"required"`
	Outcome         string          `json:"outcome" binding:"required,oneof=succeeded failed refunded"`
	AmountCents     int64           `json:"amount_cents" binding:"gte=0"`
	PaymentIntentID *string         `json:"payment_intent_id,omitempty"`
	ChargeID        *string         `json:"charge_id,omitempty"`
	Raw             json.RawMessage `json:"raw,omitempty" swaggertype:"object"`
}

func (r PaymentEventRequest) ToCommand() commands.PaymentEventRequest {
	return commands.PaymentEventRequest{
		Provider:    r.Provider,
		EventID:     r.EventID,
		OrderID:     r.OrderID,
		Outcome:     payment.Outcome(r.Outcome),
		AmountCents: r.AmountCents,
		Refs: payment.Refs{
			PaymentIntentID: r.PaymentIntentID,
			ChargeID:        r.ChargeID,
		},
		Raw: r.Raw,
	}
}
