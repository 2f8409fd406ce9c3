//go:build unit

package readstore_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/readstore"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	readstoremock "marketplace-core/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderReadStore_FindOrderView(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	now := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(mock *readstoremock.MockOrderReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: order mapped",
			setupMock: func(mock *readstoremock.MockOrderReadQueries) {
				mock.EXPECT().GetOrderByID(ctx, gomock.Any(), orderID).Return(sqlc.Orders{
					ID:              orderID,
					ListingID:       uuid.New(),
					BuyerID:         uuid.New(),
					SellerID:        uuid.New(),
					FulfillmentMode: "in_person",
					Status:          "paid",
					ItemCents:       25_000,
					TotalCents:      26_250,
					TotalPaidCents:  pgtype.Int8{Int64: 26_250, Valid: true},
					Currency:        "EUR",
					HandoverCode:    pgtype.Text{String: "123456", Valid: true},
					PaymentDeadline: pgtype.Timestamptz{Time: now.Add(time.Hour), Valid: true},
					PaidAt:          pgtype.Timestamptz{Time: now, Valid: true},
					CreatedAt:       pgtype.Timestamptz{Time: now, Valid: true},
					UpdatedAt:       pgtype.Timestamptz{Time: now, Valid: true},
				}, nil)
			},
		},
		{
			name: "error: order not found",
			setupMock: func(mock *readstoremock.MockOrderReadQueries) {
				mock.EXPECT().GetOrderByID(ctx, gomock.Any(), orderID).Return(sqlc.Orders{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockOrderReadQueries) {
				mock.EXPECT().GetOrderByID(ctx, gomock.Any(), orderID).Return(sqlc.Orders{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
			store := readstore.NewOrderReadStore(mockQueries)
			tc.setupMock(mockQueries)

			view, err := store.FindOrderView(ctx, &mockDBTX{}, orderID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, orderID, view.ID)
			assert.Equal(t, "paid", view.Status)
			require.NotNil(t, view.TotalPaidCents)
			assert.Equal(t, int64(26_250), *view.TotalPaidCents)
			require.NotNil(t, view.HandoverCode)
			assert.Nil(t, view.ShippedAt)
			assert.NotNil(t, view.Disputes)
		})
	}
}

func TestOrderReadStore_FindPaymentView(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	t.Run("success: payment mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
		mockQueries.EXPECT().GetPaymentByOrder(ctx, gomock.Any(), orderID).Return(sqlc.Payments{
			ID:              uuid.New(),
			OrderID:         orderID,
			Provider:        "manual",
			Status:          "requires_action",
			AmountCents:     26_250,
			Currency:        "EUR",
			PaymentIntentID: pgtype.Text{String: "pi_123", Valid: true},
		}, nil)

		view, err := readstore.NewOrderReadStore(mockQueries).FindPaymentView(ctx, &mockDBTX{}, orderID)

		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, "requires_action", view.Status)
		require.NotNil(t, view.PaymentIntentID)
		assert.Equal(t, "pi_123", *view.PaymentIntentID)
		assert.Nil(t, view.ChargeID)
	})

	t.Run("success: no payment yet returns nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
		mockQueries.EXPECT().GetPaymentByOrder(ctx, gomock.Any(), orderID).Return(sqlc.Payments{}, pgx.ErrNoRows)

		view, err := readstore.NewOrderReadStore(mockQueries).FindPaymentView(ctx, &mockDBTX{}, orderID)

		require.NoError(t, err)
		assert.Nil(t, view)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
		mockQueries.EXPECT().GetPaymentByOrder(ctx, gomock.Any(), orderID).Return(sqlc.Payments{}, errDBConnectionLost)

		view, err := readstore.NewOrderReadStore(mockQueries).FindPaymentView(ctx, &mockDBTX{}, orderID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, view)
	})
}

func TestOrderReadStore_ListDisputeViews(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	resolverID := uuid.New()
	openerID := uuid.New()
	resolvedAt := time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC)

	resolution, err := json.Marshal(map[string]any{
		"outcome":     "refund_buyer",
		"note":        "item never arrived",
		"resolved_by": resolverID,
		"resolved_at": resolvedAt,
	})
	require.NoError(t, err)

	testCases := []struct {
		name          string
		rows          []sqlc.Disputes
		queryErr      error
		expectedCount int
		expectedError bool
	}{
		{
			name: "success: open and resolved disputes",
			rows: []sqlc.Disputes{
				{ID: uuid.New(), OrderID: orderID, Reason: "no_show", Message: "", IsResolved: true, Resolution: resolution},
				{ID: uuid.New(), OrderID: orderID, OpenedBy: pgtype.UUID{Bytes: openerID, Valid: true}, Reason: "not_as_described", Message: "scratched"},
			},
			expectedCount: 2,
		},
		{
			name:          "success: no disputes",
			rows:          []sqlc.Disputes{},
			expectedCount: 0,
		},
		{
			name: "error: corrupt resolution",
			rows: []sqlc.Disputes{
				{ID: uuid.New(), OrderID: orderID, Reason: "other", IsResolved: true, Resolution: []byte("{")},
			},
			expectedError: true,
		},
		{
			name:          "error: database error",
			queryErr:      errDBConnectionLost,
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
			mockQueries.EXPECT().ListDisputesByOrder(ctx, gomock.Any(), orderID).Return(tc.rows, tc.queryErr)

			views, err := readstore.NewOrderReadStore(mockQueries).ListDisputeViews(ctx, &mockDBTX{}, orderID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				assert.Nil(t, views)
				return
			}
			require.NoError(t, err)
			require.Len(t, views, tc.expectedCount)
			if tc.expectedCount == 0 {
				assert.NotNil(t, views)
				return
			}

			system := views[0]
			assert.Nil(t, system.OpenedBy, "system-opened dispute has no opener")
			require.NotNil(t, system.Resolution)
			assert.Equal(t, "refund_buyer", system.Resolution.Outcome)
			assert.Equal(t, resolverID, system.Resolution.ResolvedBy)
			assert.True(t, resolvedAt.Equal(system.Resolution.ResolvedAt))

			open := views[1]
			require.NotNil(t, open.OpenedBy)
			assert.Equal(t, openerID, *open.OpenedBy)
			assert.Nil(t, open.Resolution)
		})
	}
}
