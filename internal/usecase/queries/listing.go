package queries

import (
	"context"

	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrListingNotFound = errs.NotFound("listing not found")

// AvailabilityRefresher reconciles a listing's holds before it is read.
type AvailabilityRefresher interface {
	RefreshAvailability(ctx context.Context, listingID uuid.UUID) error
}

type ListingReadStore interface {
	FindListingView(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type ListingQueries interface {
	// GetListing hides draft, pending and rejected listings from everyone but the seller and moderators.
	GetListing(ctx context.Context, id uuid.UUID, viewer *Viewer) (*ListingView, error)
}

type listingQueriesImpl struct {
	refresher AvailabilityRefresher
	readStore ListingReadStore
}

func NewListingQueries(refresher AvailabilityRefresher, readStore ListingReadStore) ListingQueries {
	return &listingQueriesImpl{refresher: refresher, readStore: readStore}
}

func (q *listingQueriesImpl) GetListing(ctx context.Context, id uuid.UUID, viewer *Viewer) (*ListingView, error) {
	if err := q.refresher.RefreshAvailability(ctx, id); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	view, err := q.readStore.FindListingView(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if !visible(view, viewer) {
		return nil, ErrListingNotFound
	}
	return view, nil
}

func visible(view *ListingView, viewer *Viewer) bool {
	switch listing.Status(view.Status) {
	case listing.StatusDraft, listing.StatusPendingReview, listing.StatusRejected:
		return viewer != nil && (viewer.UserID == view.SellerID || viewer.IsModerator())
	default:
		return true
	}
}
