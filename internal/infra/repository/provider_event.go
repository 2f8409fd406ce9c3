package repository

import (
	"context"

	"marketplace-core/internal/infra"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/pgconv"
	"marketplace-core/internal/usecase/shared"
)

type ProviderEventWriteQueries interface {
	InsertProcessedProviderEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertProcessedProviderEventParams) (int64, error)
}

// ProviderEventRepository remembers processed provider events so replays become no-ops.
type ProviderEventRepository struct {
	queries ProviderEventWriteQueries
}

func NewProviderEventRepository(queries ProviderEventWriteQueries) *ProviderEventRepository {
	return &ProviderEventRepository{queries: queries}
}

func (r *ProviderEventRepository) TryRecord(ctx context.Context, tx sqlc.DBTX, ev shared.ProviderEvent) (bool, error) {
	params := sqlc.InsertProcessedProviderEventParams{
		Provider:    ev.Provider,
		EventID:     ev.EventID,
		OrderID:     ev.OrderID,
		Outcome:     string(ev.Outcome),
		ProcessedAt: pgconv.TimeToPgtype(ev.ProcessedAt),
	}

	inserted, err := r.queries.InsertProcessedProviderEvent(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to record provider event", err)
	}

	return inserted == 1, nil
}
