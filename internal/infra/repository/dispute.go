package repository

import (
	"context"

	"marketplace-core/internal/domain/dispute"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/repository/converter"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DisputeWriteQueries interface {
	CreateDispute(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDisputeParams) error
	GetDisputeByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Disputes, error)
	GetOpenDisputeByOrder(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (sqlc.Disputes, error)
	ResolveDispute(ctx context.Context, db sqlc.DBTX, arg sqlc.ResolveDisputeParams) (int64, error)
}

type DisputeRepository struct {
	queries DisputeWriteQueries
}

func NewDisputeRepository(queries DisputeWriteQueries) *DisputeRepository {
	return &DisputeRepository{queries: queries}
}

// Create relies on ux_disputes_open_order; a concurrent second open surfaces as DUPLICATE_KEY.
func (r *DisputeRepository) Create(ctx context.Context, tx sqlc.DBTX, d *dispute.Dispute) error {
	if err := r.queries.CreateDispute(ctx, tx, converter.DisputeToCreateParams(d)); err != nil {
		return infra.WrapRepoErr("failed to create dispute", err)
	}
	return nil
}

func (r *DisputeRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*dispute.Dispute, error) {
	row, err := r.queries.GetDisputeByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("dispute not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock dispute", err)
	}
	return converter.DisputeFromRow(row)
}

func (r *DisputeRepository) FindOpenByOrder(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) (*dispute.Dispute, error) {
	row, err := r.queries.GetOpenDisputeByOrder(ctx, tx, orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find open dispute", err)
	}
	return converter.DisputeFromRow(row)
}

func (r *DisputeRepository) MarkResolved(ctx context.Context, tx sqlc.DBTX, d *dispute.Dispute) (bool, error) {
	params, err := converter.DisputeToResolveParams(d)
	if err != nil {
		return false, err
	}
	affected, err := r.queries.ResolveDispute(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to resolve dispute", err)
	}
	return affected == 1, nil
}
