//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/repository"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/ptr"
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

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: user created"},
		{name: "error: email already taken", queryErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "error: database error", queryErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			u, err := builder.NewUserBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().CreateUser(ctx, mockDB, sqlc.CreateUserParams{
				ID:          u.ID(),
				Email:       "member@example.com",
				DisplayName: "Test Member",
				Role:        "member",
				CreatedAt:   pgtype.Timestamptz{Time: u.CreatedAt(), Valid: true},
				UpdatedAt:   pgtype.Timestamptz{Time: u.UpdatedAt(), Valid: true},
			}).Return(tc.queryErr)

			err = repository.NewUserRepository(mockQueries).Create(ctx, mockDB, u)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		row        sqlc.Users
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: moderator loaded",
			row: sqlc.Users{
				ID:          userID,
				Email:       "mod@example.com",
				DisplayName: "Moderator",
				Role:        "moderator",
				CreatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
				UpdatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
			},
		},
		{name: "error: user not found", queryErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", queryErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().GetUserByID(ctx, mockDB, userID).Return(tc.row, tc.queryErr)

			got, err := repository.NewUserRepository(mockQueries).FindByID(ctx, mockDB, userID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, got.ID())
			assert.Equal(t, "moderator", got.Role().String())
		})
	}
}

func TestUserRepository_UpdateTrustScore(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		score *float64
		want  pgtype.Float8
	}{
		{name: "score set", score: ptr.Of(4.25), want: pgtype.Float8{Float64: 4.25, Valid: true}},
		{name: "score cleared when no ratings remain", score: nil, want: pgtype.Float8{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().UpdateUserTrustScore(ctx, mockDB, sqlc.UpdateUserTrustScoreParams{
				ID:         userID,
				TrustScore: tc.want,
				UpdatedAt:  pgtype.Timestamptz{Time: now, Valid: true},
			}).Return(nil)

			require.NoError(t, repository.NewUserRepository(mockQueries).UpdateTrustScore(ctx, mockDB, userID, tc.score, now))
		})
	}
}
