package converter

import (
	"marketplace-core/internal/domain/order"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/pkg/pgconv"
)

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	s := o.Snapshot()
	return sqlc.CreateOrderParams{
		ID:               s.ID,
		ListingID:        s.ListingID,
		BuyerID:          s.BuyerID,
		SellerID:         s.SellerID,
		FulfillmentMode:  string(s.Mode),
		Status:           s.Status.String(),
		ItemCents:        s.Breakdown.ItemCents,
		ShippingCents:    s.Breakdown.ShippingCents,
		PlatformFeeCents: s.Breakdown.PlatformFeeCents,
		ProviderFeeCents: s.Breakdown.ProviderFeeCents,
		TotalCents:       s.Breakdown.TotalCents,
		Currency:         s.Currency,
		BuyerAddressRef:  pgconv.StringPtrToPgtype(s.BuyerAddressRef),
		SellerAddressRef: pgconv.StringPtrToPgtype(s.SellerAddressRef),
		HandoverCode:     pgconv.StringPtrToPgtype(s.HandoverCode),
		PaymentDeadline:  pgconv.TimeToPgtype(s.PaymentDeadline),
		CreatedAt:        pgconv.TimeToPgtype(s.CreatedAt),
		UpdatedAt:        pgconv.TimeToPgtype(s.UpdatedAt),
	}
}

func OrderToUpdateParams(o *order.Order) sqlc.UpdateOrderParams {
	s := o.Snapshot()
	return sqlc.UpdateOrderParams{
		ID:                   s.ID,
		Status:               s.Status.String(),
		TotalPaidCents:       pgconv.Int64PtrToPgtype(s.TotalPaidCents),
		HandoverConfirmedAt:  pgconv.TimePtrToPgtype(s.HandoverConfirmedAt),
		ConfirmationDeadline: pgconv.TimePtrToPgtype(s.ConfirmationDeadline),
		MeetupAt:             pgconv.TimePtrToPgtype(s.MeetupAt),
		TrackingNumber:       pgconv.StringPtrToPgtype(s.TrackingNumber),
		PaidAt:               pgconv.TimePtrToPgtype(s.PaidAt),
		ShippedAt:            pgconv.TimePtrToPgtype(s.ShippedAt),
		DeliveredAt:          pgconv.TimePtrToPgtype(s.DeliveredAt),
		CompletedAt:          pgconv.TimePtrToPgtype(s.CompletedAt),
		CancelledAt:          pgconv.TimePtrToPgtype(s.CancelledAt),
		CancelledBy:          pgconv.UUIDPtrToPgtype(s.CancelledBy),
		UpdatedAt:            pgconv.TimeToPgtype(s.UpdatedAt),
	}
}

func OrderFromRow(row sqlc.Orders) (*order.Order, error) {
	mode, err := order.ParseFulfillmentMode(row.FulfillmentMode)
	if err != nil {
		return nil, errs.Wrapf(err, "stored order %s", row.ID)
	}
	status := order.Status(row.Status)
	if !status.IsValid() {
		return nil, errs.Newf("stored order %s has unknown status %q", row.ID, row.Status)
	}
	return order.Reconstruct(order.Snapshot{
		ID:        row.ID,
		ListingID: row.ListingID,
		BuyerID:   row.BuyerID,
		SellerID:  row.SellerID,
		Mode:      mode,
		Status:    status,
		Breakdown: order.Breakdown{
			ItemCents:        row.ItemCents,
			ShippingCents:    row.ShippingCents,
			PlatformFeeCents: row.PlatformFeeCents,
			ProviderFeeCents: row.ProviderFeeCents,
			TotalCents:       row.TotalCents,
		},
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
	}), nil
}
