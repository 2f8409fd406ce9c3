package repository

import (
	"context"

	"marketplace-core/internal/infra"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/pgconv"
	"marketplace-core/internal/usecase/shared"
)

type StatusEventWriteQueries interface {
	InsertStatusEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertStatusEventParams) error
}

type StatusEventRepository struct {
	queries StatusEventWriteQueries
}

func NewStatusEventRepository(queries StatusEventWriteQueries) *StatusEventRepository {
	return &StatusEventRepository{queries: queries}
}

func (r *StatusEventRepository) Append(ctx context.Context, tx sqlc.DBTX, ev shared.StatusEvent) error {
	params := sqlc.InsertStatusEventParams{
		ID:         ev.ID,
		Entity:     ev.Entity,
		EntityID:   ev.EntityID,
		FromStatus: ev.From,
		ToStatus:   ev.To,
		ActorID:    pgconv.UUIDPtrToPgtype(ev.ActorID),
		OccurredAt: pgconv.TimeToPgtype(ev.OccurredAt),
	}

	if err := r.queries.InsertStatusEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to append status event", err)
	}

	return nil
}
