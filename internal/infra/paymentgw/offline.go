package paymentgw

import (
	"context"
	"log/slog"

	"marketplace-core/internal/domain/payment"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// OfflineGateway mints intent references locally. The provider confirms or fails the intent
// later through POST /api/payments/events, exactly as a hosted checkout would.
type OfflineGateway struct {
	provider string
}

func NewOfflineGateway(provider string) *OfflineGateway {
	return &OfflineGateway{provider: provider}
}

func (g *OfflineGateway) Provider() string {
	return g.provider
}

func (g *OfflineGateway) CreateIntent(ctx context.Context, req shared.PaymentIntentRequest) (payment.Refs, error) {
	if err := ctx.Err(); err != nil {
		return payment.Refs{}, err
	}
	intentID := "pi_" + uuid.NewString()
	slog.InfoContext(ctx, "payment intent created",
		slog.String("provider", g.provider),
		slog.String("order_id", req.OrderID.String()),
		slog.Int64("amount_cents", req.AmountCents),
		slog.String("intent_id", intentID),
	)
	return payment.Refs{PaymentIntentID: &intentID}, nil
}
