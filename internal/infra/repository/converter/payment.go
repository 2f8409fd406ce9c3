package converter

import (
	"marketplace-core/internal/domain/payment"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/pgconv"
)

func PaymentToUpsertParams(p *payment.Payment) sqlc.UpsertPaymentParams {
	return sqlc.UpsertPaymentParams{
		ID:              p.ID(),
		OrderID:         p.OrderID(),
		Provider:        p.Provider(),
		Status:          string(p.Status()),
		AmountCents:     p.AmountCents(),
		Currency:        p.Currency(),
		PaymentIntentID: pgconv.StringPtrToPgtype(p.Refs().PaymentIntentID),
		ChargeID:        pgconv.StringPtrToPgtype(p.Refs().ChargeID),
		RawPayload:      p.Raw(),
		CreatedAt:       pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PaymentFromRow(row sqlc.Payments) *payment.Payment {
	return payment.ReconstructPayment(
		row.ID,
		row.OrderID,
		row.Provider,
		payment.Status(row.Status),
		row.AmountCents,
		row.Currency,
		payment.Refs{
			PaymentIntentID: pgconv.StringPtrFromPgtype(row.PaymentIntentID),
			ChargeID:        pgconv.StringPtrFromPgtype(row.ChargeID),
		},
		row.RawPayload,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
