//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-core/internal/domain/review"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/repository"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/tests/common/builder"
	repositorymock "marketplace-core/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Upsert Review Tests
// =============================================================================

func TestReviewRepository_Upsert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReviewWriteQueries, *review.Review, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: review upserted",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx sqlc.DBTX) {
				mock.EXPECT().UpsertReview(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertReviewParams) error {
						assert.Equal(t, rev.ID(), arg.ID)
						assert.Equal(t, rev.Direction().String(), arg.Direction)
						assert.Equal(t, rev.TargetID(), arg.TargetID)
						assert.Equal(t, int16(rev.Rating().Value()), arg.Rating)
						return nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, _ *review.Review, tx sqlc.DBTX) {
				mock.EXPECT().UpsertReview(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: author no longer exists",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, _ *review.Review, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().UpsertReview(ctx, tx, gomock.Any()).Return(fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries)

			domainReview, err := builder.NewReviewBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainReview, mockDB)

			actualError := repo.Upsert(ctx, mockDB, domainReview)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				return
			}
			assert.NoError(t, actualError)
		})
	}
}

// =============================================================================
// FindByOrderDirection Tests
// =============================================================================

func TestReviewRepository_FindByOrderDirection(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	createdAt := time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)

	storedRow := sqlc.Reviews{
		ID:        uuid.New(),
		OrderID:   orderID,
		Direction: review.DirectionSellerToBuyer.String(),
		AuthorID:  uuid.New(),
		TargetID:  uuid.New(),
		Rating:    4,
		Comment:   pgtype.Text{String: "Paid quickly", Valid: true},
		Tags:      []string{"prompt"},
		CreatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true},
	}

	testCases := []struct {
		name          string
		row           sqlc.Reviews
		queryErr      error
		expectNil     bool
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: existing review found",
			row:  storedRow,
		},
		{
			name:      "success: no review yet",
			queryErr:  pgx.ErrNoRows,
			expectNil: true,
		},
		{
			name:          "error: database error",
			queryErr:      errors.New("connection reset"),
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().GetReviewByOrderDirection(ctx, mockDB, sqlc.GetReviewByOrderDirectionParams{
				OrderID:   orderID,
				Direction: review.DirectionSellerToBuyer.String(),
			}).Return(tc.row, tc.queryErr)

			repo := repository.NewReviewRepository(mockQueries)
			got, err := repo.FindByOrderDirection(ctx, mockDB, orderID, review.DirectionSellerToBuyer)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if tc.expectNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, storedRow.ID, got.ID())
			assert.Equal(t, review.DirectionSellerToBuyer, got.Direction())
			assert.Equal(t, 4, got.Rating().Value())
			assert.Equal(t, createdAt, got.CreatedAt())
		})
	}
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
