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

type OrderReadQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	GetPaymentByOrder(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (sqlc.Payments, error)
	ListDisputesByOrder(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.Disputes, error)
}

// OrderReadStore runs inside the caller's read-only transaction so order, payment and disputes
// come from one snapshot.
type OrderReadStore struct {
	queries OrderReadQueries
}

func NewOrderReadStore(queries OrderReadQueries) *OrderReadStore {
	return &OrderReadStore{queries: queries}
}

func (r *OrderReadStore) FindOrderView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	return &queries.OrderView{
		ID:                   row.ID,
		ListingID:            row.ListingID,
		BuyerID:              row.BuyerID,
		SellerID:             row.SellerID,
		FulfillmentMode:      row.FulfillmentMode,
		Status:               row.Status,
		ItemCents:            row.ItemCents,
		ShippingCents:        row.ShippingCents,
		PlatformFeeCents:     row.PlatformFeeCents,
		ProviderFeeCents:     row.ProviderFeeCents,
		TotalCents:           row.TotalCents,
		TotalPaidCents:       pgconv.Int64PtrFromPgtype(row.TotalPaidCents),
		Currency:             row.Currency,
		BuyerAddressRef:      pgconv.StringPtrFromPgtype(row.BuyerAddressRef),
		SellerAddressRef:     pgconv.StringPtrFromPgtype(row.SellerAddressRef),
		HandoverCode:         pgconv.StringPtrFromPgtype(row.HandoverCode),
		HandoverConfirmedAt:  pgconv.TimePtrFromPgtype(row.HandoverConfirmedAt),
		ConfirmationDeadline: pgconv.TimePtrFromPgtype(row.ConfirmationDeadline),
		MeetupAt:             pgconv.TimePtrFromPgtype(row.MeetupAt),
		TrackingNumber:       pgconv.StringPtrFromPgtype(row.TrackingNumber),
		PaymentDeadline:      pgconv.TimeFromPgtype(row.PaymentDeadline),
		PaidAt:               pgconv.TimePtrFromPgtype(row.PaidAt),
		ShippedAt:            pgconv.TimePtrFromPgtype(row.ShippedAt),
		DeliveredAt:          pgconv.TimePtrFromPgtype(row.DeliveredAt),
		CompletedAt:          pgconv.TimePtrFromPgtype(row.CompletedAt),
		CancelledAt:          pgconv.TimePtrFromPgtype(row.CancelledAt),
		CancelledBy:          pgconv.UUIDPtrFromPgtype(row.CancelledBy),
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:            pgconv.TimeFromPgtype(row.UpdatedAt),
		Disputes:             []queries.DisputeView{},
	}, nil
}

// FindPaymentView returns nil when no payment was initiated yet.
func (r *OrderReadStore) FindPaymentView(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentByOrder(ctx, db, orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get payment", err)
	}
	return &queries.PaymentView{
		ID:              row.ID,
		Provider:        row.Provider,
		Status:          row.Status,
		AmountCents:     row.AmountCents,
		Currency:        row.Currency,
		PaymentIntentID: pgconv.StringPtrFromPgtype(row.PaymentIntentID),
		ChargeID:        pgconv.StringPtrFromPgtype(row.ChargeID),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *OrderReadStore) ListDisputeViews(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]queries.DisputeView, error) {
	rows, err := r.queries.ListDisputesByOrder(ctx, db, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list disputes", err)
	}
	result := make([]queries.DisputeView, 0, len(rows))
	for _, row := range rows {
		view := queries.DisputeView{
			ID:         row.ID,
			OrderID:    row.OrderID,
			OpenedBy:   pgconv.UUIDPtrFromPgtype(row.OpenedBy),
			Reason:     row.Reason,
			Message:    row.Message,
			IsResolved: row.IsResolved,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
		}
		resolution, err := converter.DecodeResolution(row.Resolution)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid dispute resolution", err)
		}
		if resolution != nil {
			view.Resolution = &queries.ResolutionView{
				Outcome:    string(resolution.Outcome),
				Note:       resolution.Note,
				ResolvedBy: resolution.ResolvedBy,
				ResolvedAt: resolution.ResolvedAt,
			}
		}
		result = append(result, view)
	}
	return result, nil
}
