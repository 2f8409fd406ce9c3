package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	FindByTargetFirstPage(ctx context.Context, targetID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	FindByTargetKeyset(ctx context.Context, targetID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewListItem, error)
}

type ReviewQueries interface {
	// ListByTarget pages reviews written about a user, newest first.
	ListByTarget(ctx context.Context, targetID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByTarget(ctx context.Context, targetID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReviewListItem
	var err error
	if cursor == nil || cursor.After == "" {
		// #nosec G115 -- limit is capped by ValidateLimit
		rows, err = q.repo.FindByTargetFirstPage(ctx, targetID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		// #nosec G115 -- limit is capped by ValidateLimit
		rows, err = q.repo.FindByTargetKeyset(ctx, targetID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
