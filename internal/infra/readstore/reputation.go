package readstore

import (
	"context"

	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/repository/converter"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/pgconv"
	"marketplace-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReputationReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	GetReputationStats(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.ReputationStats, error)
}

type ReputationReadStore struct {
	queries ReputationReadQueries
	db      sqlc.DBTX
}

func NewReputationReadStore(queries ReputationReadQueries, db sqlc.DBTX) *ReputationReadStore {
	return &ReputationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReputationReadStore) FindReputation(ctx context.Context, userID uuid.UUID) (*queries.ReputationView, error) {
	u, err := r.queries.GetUserByID(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user", err)
	}
	row, err := r.queries.GetReputationStats(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reputation stats not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reputation stats", err)
	}
	trust, err := pgconv.Float64PtrFromPgtype(u.TrustScore)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid trust score", err)
	}

	stats := converter.StatsFromRow(row)
	return &queries.ReputationView{
		UserID:      u.ID,
		DisplayName: u.DisplayName,
		TrustScore:  trust,
		Seller: queries.SideView{
			Average:         stats.Seller().Average(),
			Count:           stats.Seller().RatingCount,
			ItemsTransacted: stats.Seller().ItemsTransacted,
		},
		Buyer: queries.SideView{
			Average:         stats.Buyer().Average(),
			Count:           stats.Buyer().RatingCount,
			ItemsTransacted: stats.Buyer().ItemsTransacted,
		},
		Cancellations: stats.Cancellations(),
		NoShows:       stats.NoShows(),
		Disputes:      stats.Disputes(),
		UpdatedAt:     stats.UpdatedAt(),
	}, nil
}
