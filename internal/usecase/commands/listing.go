package commands

import (
	"context"

	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type ModerationDecision string

const (
	DecisionApprove   ModerationDecision = "approve"
	DecisionReject    ModerationDecision = "reject"
	DecisionUnpublish ModerationDecision = "unpublish"
)

var ErrInvalidDecision = errs.Validation("moderation decision must be approve, reject or unpublish")

// CreateListingRequest leaves unset details at their defaults: good condition, both modes accepted.
type CreateListingRequest struct {
	Title       string
	Description string
	PriceCents  int64
	Currency    *string
	Details     listing.DetailsInput
}

type EditListingRequest struct {
	Title       *string
	Description *string
	PriceCents  *int64
	Details     listing.DetailsInput
}

type ModerateListingRequest struct {
	Decision ModerationDecision
	Note     string
}

type ListingCommands interface {
	CreateListing(ctx context.Context, sellerID uuid.UUID, req CreateListingRequest) (uuid.UUID, error)
	EditListing(ctx context.Context, listingID, actorID uuid.UUID, req EditListingRequest) error
	SubmitListing(ctx context.Context, listingID, actorID uuid.UUID) error
	ModerateListing(ctx context.Context, listingID, moderatorID uuid.UUID, req ModerateListingRequest) error
	ArchiveListing(ctx context.Context, listingID, actorID uuid.UUID) error
	RefreshAvailability(ctx context.Context, listingID uuid.UUID) error
}

type listingUseCaseImpl struct {
	*Runner
}

func NewListingUseCase(runner *Runner) ListingCommands {
	return &listingUseCaseImpl{Runner: runner}
}

func (uc *listingUseCaseImpl) CreateListing(ctx context.Context, sellerID uuid.UUID, req CreateListingRequest) (uuid.UUID, error) {
	title, err := listing.NewTitle(req.Title)
	if err != nil {
		return uuid.Nil, err
	}
	description, err := listing.NewDescription(req.Description)
	if err != nil {
		return uuid.Nil, err
	}
	currency := uc.policies.Currency
	if req.Currency != nil {
		currency = *req.Currency
	}
	price, err := listing.NewPrice(req.PriceCents, currency)
	if err != nil {
		return uuid.Nil, err
	}
	details, err := listing.DefaultDetails().Apply(req.Details)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.run(ctx, "listing.create", func(ctx context.Context, s *txScope) error {
		if err := uc.requireUser(ctx, s, sellerID); err != nil {
			return err
		}
		l := listing.NewListing(sellerID, title, description, price, details, s.now)
		if err := s.tx.Listings().Create(ctx, s.tx.DB(), l); err != nil {
			return err
		}
		createdID = l.ID()
		return s.record(ctx, shared.EntityListing, l.ID(), "", l.Status().String(), &sellerID)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *listingUseCaseImpl) EditListing(ctx context.Context, listingID, actorID uuid.UUID, req EditListingRequest) error {
	return uc.mutate(ctx, "listing.edit", listingID, actorID, func(l *listing.Listing, s *txScope) (*listing.Listing, error) {
		return l.Edit(actorID, listing.EditInput{
			Title:        req.Title,
			Description:  req.Description,
			PriceCents:   req.PriceCents,
			DetailsInput: req.Details,
		}, s.now)
	})
}

func (uc *listingUseCaseImpl) SubmitListing(ctx context.Context, listingID, actorID uuid.UUID) error {
	return uc.mutate(ctx, "listing.submit", listingID, actorID, func(l *listing.Listing, s *txScope) (*listing.Listing, error) {
		return l.Submit(actorID, s.now)
	})
}

func (uc *listingUseCaseImpl) ModerateListing(ctx context.Context, listingID, moderatorID uuid.UUID, req ModerateListingRequest) error {
	var apply func(l *listing.Listing, s *txScope) (*listing.Listing, error)
	switch req.Decision {
	case DecisionApprove:
		apply = func(l *listing.Listing, s *txScope) (*listing.Listing, error) { return l.Approve(moderatorID, req.Note, s.now) }
	case DecisionReject:
		apply = func(l *listing.Listing, s *txScope) (*listing.Listing, error) { return l.Reject(moderatorID, req.Note, s.now) }
	case DecisionUnpublish:
		apply = func(l *listing.Listing, s *txScope) (*listing.Listing, error) { return l.Unpublish(moderatorID, req.Note, s.now) }
	default:
		return ErrInvalidDecision
	}
	return uc.mutate(ctx, "listing.moderate", listingID, moderatorID, apply)
}

func (uc *listingUseCaseImpl) ArchiveListing(ctx context.Context, listingID, actorID uuid.UUID) error {
	return uc.mutate(ctx, "listing.archive", listingID, actorID, func(l *listing.Listing, s *txScope) (*listing.Listing, error) {
		return l.Archive(actorID, s.now)
	})
}

// RefreshAvailability is the read-side hook run before any buyer-facing listing read.
func (uc *listingUseCaseImpl) RefreshAvailability(ctx context.Context, listingID uuid.UUID) error {
	return uc.run(ctx, "listing.refresh", func(ctx context.Context, s *txScope) error {
		_, err := uc.syncListing(ctx, s, listingID, nil)
		return err
	})
}

// mutate refreshes availability first so the operation is judged against the current status.
func (uc *listingUseCaseImpl) mutate(
	ctx context.Context,
	op string,
	listingID, actorID uuid.UUID,
	apply func(l *listing.Listing, s *txScope) (*listing.Listing, error),
) error {
	return uc.run(ctx, op, func(ctx context.Context, s *txScope) error {
		av, err := uc.syncListing(ctx, s, listingID, nil)
		if err != nil {
			return err
		}
		next, err := apply(av.listing, s)
		if err != nil {
			return s.reject(listingState(err, av.listing))
		}
		return uc.saveListing(ctx, s, av.listing, next, &actorID)
	})
}
