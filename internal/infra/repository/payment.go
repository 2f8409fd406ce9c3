package repository

import (
	"context"

	"marketplace-core/internal/domain/payment"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/repository/converter"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	GetPaymentByOrder(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (sqlc.Payments, error)
	UpsertPayment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPaymentParams) error
}

type PaymentRepository struct {
	queries PaymentWriteQueries
}

func NewPaymentRepository(queries PaymentWriteQueries) *PaymentRepository {
	return &PaymentRepository{queries: queries}
}

func (r *PaymentRepository) FindByOrder(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByOrder(ctx, tx, orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}
	return converter.PaymentFromRow(row), nil
}

func (r *PaymentRepository) Save(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	if err := r.queries.UpsertPayment(ctx, tx, converter.PaymentToUpsertParams(p)); err != nil {
		return infra.WrapRepoErr("failed to save payment", err)
	}
	return nil
}
