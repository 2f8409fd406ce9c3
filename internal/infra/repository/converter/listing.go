package converter

import (
	"marketplace-core/internal/domain/listing"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/pkg/pgconv"
)

func ListingToCreateParams(l *listing.Listing) sqlc.CreateListingParams {
	d := l.Details()
	return sqlc.CreateListingParams{
		ID:              l.ID(),
		SellerID:        l.SellerID(),
		Title:           l.Title().String(),
		Description:     l.Description().String(),
		PriceCents:      l.Price().Cents(),
		Currency:        l.Price().Currency(),
		Condition:       d.Condition.String(),
		ShippingEnabled: d.Fulfillment.Shipping(),
		InPersonEnabled: d.Fulfillment.InPerson(),
		City:            d.Location.City(),
		PostalCode:      d.Location.PostalCode(),
		CountryCode:     d.Location.CountryCode(),
		Status:          l.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(l.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(l.UpdatedAt()),
	}
}

func ListingToUpdateParams(l *listing.Listing) sqlc.UpdateListingParams {
	d := l.Details()
	return sqlc.UpdateListingParams{
		ID:              l.ID(),
		Title:           l.Title().String(),
		Description:     l.Description().String(),
		PriceCents:      l.Price().Cents(),
		Condition:       d.Condition.String(),
		ShippingEnabled: d.Fulfillment.Shipping(),
		InPersonEnabled: d.Fulfillment.InPerson(),
		City:            d.Location.City(),
		PostalCode:      d.Location.PostalCode(),
		CountryCode:     d.Location.CountryCode(),
		Status:          l.Status().String(),
		ModerationNote:  pgconv.StringPtrToPgtype(l.ModerationNote()),
		ModeratedBy:     pgconv.UUIDPtrToPgtype(l.ModeratedBy()),
		ModeratedAt:     pgconv.TimePtrToPgtype(l.ModeratedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(l.UpdatedAt()),
	}
}

func ListingFromRow(row sqlc.Listings) (*listing.Listing, error) {
	title, err := listing.NewTitle(row.Title)
	if err != nil {
		return nil, errs.Wrapf(err, "stored listing %s", row.ID)
	}
	description, err := listing.NewDescription(row.Description)
	if err != nil {
		return nil, errs.Wrapf(err, "stored listing %s", row.ID)
	}
	price, err := listing.NewPrice(row.PriceCents, row.Currency)
	if err != nil {
		return nil, errs.Wrapf(err, "stored listing %s", row.ID)
	}
	details, err := listing.DefaultDetails().Apply(listing.DetailsInput{
		Condition:       &row.Condition,
		ShippingEnabled: &row.ShippingEnabled,
		InPersonEnabled: &row.InPersonEnabled,
		City:            &row.City,
		PostalCode:      &row.PostalCode,
		CountryCode:     &row.CountryCode,
	})
	if err != nil {
		return nil, errs.Wrapf(err, "stored listing %s", row.ID)
	}
	status, err := listing.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "stored listing %s", row.ID)
	}
	return listing.ReconstructListing(
		row.ID,
		row.SellerID,
		title,
		description,
		price,
		details,
		status,
		pgconv.StringPtrFromPgtype(row.ModerationNote),
		pgconv.UUIDPtrFromPgtype(row.ModeratedBy),
		pgconv.TimePtrFromPgtype(row.ModeratedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
