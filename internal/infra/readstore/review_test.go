//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/readstore"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	readstoremock "marketplace-core/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// FindByTargetFirstPage Tests
// =============================================================================

type reviewTestCase struct {
	name          string
	limit         int32
	setupMock     func(mock *readstoremock.MockReviewReadQueries, targetID uuid.UUID)
	expectedCount int
	expectedError bool
	expectKind    infra.RepositoryErrorKind
}

func TestReadStore_FindByTargetFirstPage(t *testing.T) {
	ctx := context.Background()

	testCases := []reviewTestCase{
		{
			name:  "success: rows mapped in order",
			limit: 21,
			setupMock: func(mock *readstoremock.MockReviewReadQueries, targetID uuid.UUID) {
				rows := []sqlc.ListReviewsByTargetFirstPageRow{
					createReviewRow(5, "Great seller"),
					createReviewRow(3, ""),
				}
				mock.EXPECT().ListReviewsByTargetFirstPage(ctx, gomock.Any(), sqlc.ListReviewsByTargetFirstPageParams{
					TargetID:  targetID,
					PageLimit: 21,
				}).Return(rows, nil)
			},
			expectedCount: 2,
		},
		{
			name:  "success: empty page",
			limit: 21,
			setupMock: func(mock *readstoremock.MockReviewReadQueries, _ uuid.UUID) {
				mock.EXPECT().ListReviewsByTargetFirstPage(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.ListReviewsByTargetFirstPageRow{}, nil)
			},
			expectedCount: 0,
		},
		{
			name:  "error: database error",
			limit: 21,
			setupMock: func(mock *readstoremock.MockReviewReadQueries, _ uuid.UUID) {
				mock.EXPECT().ListReviewsByTargetFirstPage(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReviewReadQueries(ctrl)
			store := readstore.NewReviewReadStore(mockQueries, &mockDBTX{})
			targetID := uuid.New()

			tc.setupMock(mockQueries, targetID)

			results, actualError := store.FindByTargetFirstPage(ctx, targetID, tc.limit)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, results, "results should be nil when error occurs")
				return
			}
			require.NoError(t, actualError)
			assert.Len(t, results, tc.expectedCount)
		})
	}
}

func TestReadStore_FindByTargetFirstPage_Mapping(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withComment := createReviewRow(5, "Great seller")
	withComment.Tags = []string{"fast", "friendly"}
	withoutComment := createReviewRow(2, "")
	withoutComment.Tags = nil

	mockQueries := readstoremock.NewMockReviewReadQueries(ctrl)
	mockQueries.EXPECT().ListReviewsByTargetFirstPage(ctx, gomock.Any(), gomock.Any()).
		Return([]sqlc.ListReviewsByTargetFirstPageRow{withComment, withoutComment}, nil)

	store := readstore.NewReviewReadStore(mockQueries, &mockDBTX{})
	results, err := store.FindByTargetFirstPage(ctx, uuid.New(), 21)

	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, withComment.ID, results[0].ID)
	assert.Equal(t, 5, results[0].Rating)
	require.NotNil(t, results[0].Comment)
	assert.Equal(t, "Great seller", *results[0].Comment)
	assert.Equal(t, []string{"fast", "friendly"}, results[0].Tags)
	assert.Equal(t, withComment.CreatedAt.Time, results[0].CreatedAt)

	assert.Nil(t, results[1].Comment, "null comment should stay nil")
	assert.NotNil(t, results[1].Tags, "tags should never be nil in the read model")
	assert.Empty(t, results[1].Tags)
}

// =============================================================================
// FindByTargetKeyset Tests
// =============================================================================

func TestReadStore_FindByTargetKeyset(t *testing.T) {
	ctx := context.Background()
	lastCreatedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	lastID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(mock *readstoremock.MockReviewReadQueries, targetID uuid.UUID)
		expectedCount int
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: cursor forwarded to query",
			setupMock: func(mock *readstoremock.MockReviewReadQueries, targetID uuid.UUID) {
				rows := []sqlc.ListReviewsByTargetKeysetRow{
					createKeysetReviewRow(4, "Good buyer"),
				}
				mock.EXPECT().ListReviewsByTargetKeyset(ctx, gomock.Any(), sqlc.ListReviewsByTargetKeysetParams{
					TargetID:       targetID,
					AfterCreatedAt: pgtype.Timestamptz{Time: lastCreatedAt, Valid: true},
					AfterID:        lastID,
					PageLimit:      11,
				}).Return(rows, nil)
			},
			expectedCount: 1,
		},
		{
			name: "success: no more rows",
			setupMock: func(mock *readstoremock.MockReviewReadQueries, _ uuid.UUID) {
				mock.EXPECT().ListReviewsByTargetKeyset(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.ListReviewsByTargetKeysetRow{}, nil)
			},
			expectedCount: 0,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockReviewReadQueries, _ uuid.UUID) {
				mock.EXPECT().ListReviewsByTargetKeyset(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReviewReadQueries(ctrl)
			store := readstore.NewReviewReadStore(mockQueries, &mockDBTX{})
			targetID := uuid.New()

			tc.setupMock(mockQueries, targetID)

			results, actualError := store.FindByTargetKeyset(ctx, targetID, lastCreatedAt, lastID, 11)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, results)
				return
			}
			require.NoError(t, actualError)
			assert.Len(t, results, tc.expectedCount)
		})
	}
}

// =============================================================================
// Test Helper Functions
// =============================================================================

func createReviewRow(rating int16, comment string) sqlc.ListReviewsByTargetFirstPageRow {
	return sqlc.ListReviewsByTargetFirstPageRow{
		ID:         uuid.New(),
		OrderID:    uuid.New(),
		Direction:  "buyer_to_seller",
		AuthorID:   uuid.New(),
		AuthorName: "Reviewer",
		Rating:     rating,
		Comment:    pgtype.Text{String: comment, Valid: comment != ""},
		Tags:       []string{},
		CreatedAt:  pgtype.Timestamptz{Time: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC), Valid: true},
	}
}

func createKeysetReviewRow(rating int16, comment string) sqlc.ListReviewsByTargetKeysetRow {
	row := createReviewRow(rating, comment)
	return sqlc.ListReviewsByTargetKeysetRow(row)
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
