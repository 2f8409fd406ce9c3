package queries

import (
	"context"

	"marketplace-core/internal/infra"
	"marketplace-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.NotFound("user not found")

type ReputationReadStore interface {
	FindReputation(ctx context.Context, userID uuid.UUID) (*ReputationView, error)
}

type UserQueries interface {
	GetReputation(ctx context.Context, userID uuid.UUID) (*ReputationView, error)
}

type userQueriesImpl struct {
	readStore ReputationReadStore
}

func NewUserQueries(readStore ReputationReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetReputation(ctx context.Context, userID uuid.UUID) (*ReputationView, error) {
	view, err := q.readStore.FindReputation(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}
