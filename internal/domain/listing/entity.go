package listing

import (
	"fmt"
	"strings"
	"time"

	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/pkg/patch"

	"github.com/google/uuid"
)

// Listing is immutable from the outside: every state change returns a new snapshot.
type Listing struct {
	id             uuid.UUID
	sellerID       uuid.UUID
	title          Title
	description    Description
	price          Price
	details        Details
	status         Status
	moderationNote *string
	moderatedBy    *uuid.UUID
	moderatedAt    *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

type EditInput struct {
	Title       *string
	Description *string
	PriceCents  *int64
	DetailsInput
}

func NewListing(sellerID uuid.UUID, title Title, description Description, price Price, details Details, now time.Time) *Listing {
	return &Listing{
		id:          uuid.New(),
		sellerID:    sellerID,
		title:       title,
		description: description,
		price:       price,
		details:     details,
		status:      StatusDraft,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructListing(
	id, sellerID uuid.UUID,
	title Title,
	description Description,
	price Price,
	details Details,
	status Status,
	moderationNote *string,
	moderatedBy *uuid.UUID,
	moderatedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:             id,
		sellerID:       sellerID,
		title:          title,
		description:    description,
		price:          price,
		details:        details,
		status:         status,
		moderationNote: moderationNote,
		moderatedBy:    moderatedBy,
		moderatedAt:    moderatedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (l *Listing) clone() *Listing {
	c := *l
	return &c
}

func (l *Listing) transition(to Status, now time.Time) (*Listing, error) {
	if !CanTransition(l.status, to) {
		return nil, errs.InvalidTransition(fmt.Sprintf("listing cannot move from %s to %s", l.status, to))
	}
	next := l.clone()
	next.status = to
	next.updatedAt = now
	return next, nil
}

func (l *Listing) Edit(actorID uuid.UUID, in EditInput, now time.Time) (*Listing, error) {
	if actorID != l.sellerID {
		return nil, ErrNotSeller
	}
	if l.status != StatusDraft && l.status != StatusRejected {
		return nil, ErrNotEditable
	}

	title, err := NewTitle(patch.Coalesce(in.Title, l.title.String()))
	if err != nil {
		return nil, err
	}
	description, err := NewDescription(patch.Coalesce(in.Description, l.description.String()))
	if err != nil {
		return nil, err
	}
	price, err := NewPrice(patch.Coalesce(in.PriceCents, l.price.Cents()), l.price.Currency())
	if err != nil {
		return nil, err
	}
	details, err := l.details.Apply(in.DetailsInput)
	if err != nil {
		return nil, err
	}

	next := l.clone()
	next.title = title
	next.description = description
	next.price = price
	next.details = details
	next.updatedAt = now
	return next, nil
}

func (l *Listing) Submit(actorID uuid.UUID, now time.Time) (*Listing, error) {
	if actorID != l.sellerID {
		return nil, ErrNotSeller
	}
	return l.transition(StatusPendingReview, now)
}

func (l *Listing) Approve(moderatorID uuid.UUID, note string, now time.Time) (*Listing, error) {
	if l.status != StatusPendingReview {
		return nil, errs.InvalidTransition(fmt.Sprintf("listing in %s cannot be approved", l.status))
	}
	next, err := l.transition(StatusPublished, now)
	if err != nil {
		return nil, err
	}
	next.stampModeration(moderatorID, note, now)
	return next, nil
}

func (l *Listing) Reject(moderatorID uuid.UUID, note string, now time.Time) (*Listing, error) {
	if strings.TrimSpace(note) == "" {
		return nil, ErrModerationNoteEmpty
	}
	next, err := l.transition(StatusRejected, now)
	if err != nil {
		return nil, err
	}
	next.stampModeration(moderatorID, note, now)
	return next, nil
}

// Unpublish sends a published listing back to the moderation queue.
func (l *Listing) Unpublish(moderatorID uuid.UUID, note string, now time.Time) (*Listing, error) {
	if l.status != StatusPublished {
		return nil, errs.InvalidTransition(fmt.Sprintf("listing in %s cannot be unpublished", l.status))
	}
	next, err := l.transition(StatusPendingReview, now)
	if err != nil {
		return nil, err
	}
	next.stampModeration(moderatorID, note, now)
	return next, nil
}

func (l *Listing) Archive(actorID uuid.UUID, now time.Time) (*Listing, error) {
	if actorID != l.sellerID {
		return nil, ErrNotSeller
	}
	return l.transition(StatusArchived, now)
}

func (l *Listing) MarkSold(now time.Time) (*Listing, error) {
	return l.transition(StatusSold, now)
}

// WithAvailability applies DeriveStatus and reports whether the status changed.
func (l *Listing) WithAvailability(hasActiveHold bool, now time.Time) (*Listing, bool) {
	derived := DeriveStatus(l.status, hasActiveHold)
	if derived == l.status {
		return l, false
	}
	next := l.clone()
	next.status = derived
	next.updatedAt = now
	return next, true
}

func (l *Listing) stampModeration(moderatorID uuid.UUID, note string, now time.Time) {
	note = strings.TrimSpace(note)
	if note == "" {
		l.moderationNote = nil
	} else {
		l.moderationNote = &note
	}
	l.moderatedBy = &moderatorID
	l.moderatedAt = &now
}

func (l *Listing) ID() uuid.UUID            { return l.id }
func (l *Listing) SellerID() uuid.UUID      { return l.sellerID }
func (l *Listing) Title() Title             { return l.title }
func (l *Listing) Description() Description { return l.description }
func (l *Listing) Price() Price             { return l.price }
func (l *Listing) Details() Details         { return l.details }
func (l *Listing) Status() Status           { return l.status }
func (l *Listing) ModerationNote() *string  { return l.moderationNote }
func (l *Listing) ModeratedBy() *uuid.UUID  { return l.moderatedBy }
func (l *Listing) ModeratedAt() *time.Time  { return l.moderatedAt }
func (l *Listing) CreatedAt() time.Time     { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time     { return l.updatedAt }
