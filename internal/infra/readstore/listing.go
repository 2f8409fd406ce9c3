package readstore

import (
	"context"

	"marketplace-core/internal/infra"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/pgconv"
	"marketplace-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingReadQueries interface {
	GetListingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetListingViewRow, error)
}

type ListingReadStore struct {
	queries ListingReadQueries
	db      sqlc.DBTX
}

func NewListingReadStore(queries ListingReadQueries, db sqlc.DBTX) *ListingReadStore {
	return &ListingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ListingReadStore) FindListingView(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	row, err := r.queries.GetListingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get listing view", err)
	}
	trust, err := pgconv.Float64PtrFromPgtype(row.SellerTrustScore)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid seller trust score", err)
	}

	view := &queries.ListingView{
		ID:               row.ID,
		SellerID:         row.SellerID,
		SellerName:       row.SellerName,
		SellerTrustScore: trust,
		Title:            row.Title,
		Description:      row.Description,
		PriceCents:       row.PriceCents,
		Currency:         row.Currency,
		Condition:        row.Condition,
		ShippingEnabled:  row.ShippingEnabled,
		InPersonEnabled:  row.InPersonEnabled,
		City:             row.City,
		PostalCode:       row.PostalCode,
		CountryCode:      row.CountryCode,
		Status:           row.Status,
		ModerationNote:   pgconv.StringPtrFromPgtype(row.ModerationNote),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	// the refresh that precedes this read has already closed expired reservations
	if row.ReservationID.Valid && row.ReservationBuyerID.Valid {
		view.ActiveReservation = &queries.ReservationSummary{
			ID:        uuid.UUID(row.ReservationID.Bytes),
			BuyerID:   uuid.UUID(row.ReservationBuyerID.Bytes),
			ExpiresAt: pgconv.TimeFromPgtype(row.ReservationExpiresAt),
		}
	}
	return view, nil
}
