//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/repository"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/tests/common/builder"
	repositorymock "marketplace-core/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func listingRow(id uuid.UUID) sqlc.Listings {
	at := pgtype.Timestamptz{Time: time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC), Valid: true}
	return sqlc.Listings{
		ID:              id,
		SellerID:        uuid.New(),
		Title:           "Camping stove",
		PriceCents:      4_500,
		Currency:        "EUR",
		Condition:       "like_new",
		ShippingEnabled: false,
		InPersonEnabled: true,
		City:            "Nantes",
		PostalCode:      "44000",
		CountryCode:     "FR",
		Status:          "published",
		CreatedAt:       at,
		UpdatedAt:       at,
	}
}

// =============================================================================
// Lookup Tests
// =============================================================================

func TestListingRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		row        func() sqlc.Listings
		queryErr   error
		expectKind infra.RepositoryErrorKind
		wantErr    bool
	}{
		{
			name: "success: details are carried",
			row:  func() sqlc.Listings { return listingRow(id) },
		},
		{
			name:       "error: not found",
			row:        func() sqlc.Listings { return sqlc.Listings{} },
			queryErr:   pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
			wantErr:    true,
		},
		{
			name:       "error: database error",
			row:        func() sqlc.Listings { return sqlc.Listings{} },
			queryErr:   errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
			wantErr:    true,
		},
		{
			name: "error: stored row without any fulfillment mode",
			row: func() sqlc.Listings {
				r := listingRow(id)
				r.ShippingEnabled = false
				r.InPersonEnabled = false
				return r
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockListingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().GetListingByIDForUpdate(ctx, mockDB, id).Return(tc.row(), tc.queryErr)

			got, err := repository.NewListingRepository(mockQueries).FindForUpdate(ctx, mockDB, id)

			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				} else {
					assert.ErrorIs(t, err, listing.ErrNoFulfillment)
				}
				return
			}
			require.NoError(t, err)
			d := got.Details()
			assert.Equal(t, listing.ConditionLikeNew, d.Condition)
			assert.False(t, d.Fulfillment.Shipping())
			assert.True(t, d.Fulfillment.InPerson())
			assert.Equal(t, "Nantes", d.Location.City())
			assert.Equal(t, "44000", d.Location.PostalCode())
			assert.Equal(t, listing.StatusPublished, got.Status())
		})
	}
}

// =============================================================================
// Save Tests
// =============================================================================

func TestListingRepository_Save(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := builder.NewListingBuilder().WithFulfillment(true, false).WithLocation("Lille", "59000", "fr").MustBuildDomain()
	mockQueries := repositorymock.NewMockListingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().UpdateListing(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateListingParams) error {
			assert.Equal(t, l.ID(), arg.ID)
			assert.True(t, arg.ShippingEnabled)
			assert.False(t, arg.InPersonEnabled)
			assert.Equal(t, "good", arg.Condition)
			assert.Equal(t, "Lille", arg.City)
			assert.Equal(t, "FR", arg.CountryCode)
			return nil
		})

	require.NoError(t, repository.NewListingRepository(mockQueries).Save(ctx, mockDB, l))
}
