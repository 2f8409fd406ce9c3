package repository

import (
	"context"
	"time"

	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/repository/converter"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	UpdateUserTrustScore(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserTrustScoreParams) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return converter.UserFromRow(row)
}

func (r *UserRepository) UpdateTrustScore(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, score *float64, now time.Time) error {
	params := sqlc.UpdateUserTrustScoreParams{
		ID:         id,
		TrustScore: pgconv.Float64PtrToPgtype(score),
		UpdatedAt:  pgconv.TimeToPgtype(now),
	}
	if err := r.queries.UpdateUserTrustScore(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update user trust score", err)
	}
	return nil
}
