package repository

import (
	"context"

	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/repository/converter"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ListingWriteQueries interface {
	CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) error
	GetListingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Listings, error)
	GetListingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Listings, error)
	UpdateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateListingParams) error
}

type ListingRepository struct {
	queries ListingWriteQueries
}

func NewListingRepository(queries ListingWriteQueries) *ListingRepository {
	return &ListingRepository{queries: queries}
}

func (r *ListingRepository) Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error {
	if err := r.queries.CreateListing(ctx, tx, converter.ListingToCreateParams(l)); err != nil {
		return infra.WrapRepoErr("failed to create listing", err)
	}
	return nil
}

func (r *ListingRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*listing.Listing, error) {
	row, err := r.queries.GetListingByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing", err)
	}
	return converter.ListingFromRow(row)
}

func (r *ListingRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*listing.Listing, error) {
	row, err := r.queries.GetListingByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock listing", err)
	}
	return converter.ListingFromRow(row)
}

func (r *ListingRepository) Save(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error {
	if err := r.queries.UpdateListing(ctx, tx, converter.ListingToUpdateParams(l)); err != nil {
		return infra.WrapRepoErr("failed to update listing", err)
	}
	return nil
}
