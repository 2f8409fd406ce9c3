package queries

import (
	"time"

	"marketplace-core/internal/domain/user"

	"github.com/google/uuid"
)

// Viewer is the authenticated caller of a read, used for visibility rules.
type Viewer struct {
	UserID uuid.UUID
	Role   user.Role
}

func (v Viewer) IsAdmin() bool {
	return v.Role.AtLeast(user.RoleAdmin)
}

func (v Viewer) IsModerator() bool {
	return v.Role.AtLeast(user.RoleModerator)
}

type ReservationSummary struct {
	ID        uuid.UUID `json:"id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ListingView is read after availability has been refreshed.
type ListingView struct {
	ID                uuid.UUID           `json:"id"`
	SellerID          uuid.UUID           `json:"seller_id"`
	SellerName        string              `json:"seller_name"`
	SellerTrustScore  *float64            `json:"seller_trust_score,omitempty"`
	Title             string              `json:"title"`
	Description       string              `json:"description"`
	PriceCents        int64               `json:"price_cents"`
	Currency          string              `json:"currency"`
	Condition         string              `json:"condition"`
	ShippingEnabled   bool                `json:"shipping_enabled"`
	InPersonEnabled   bool                `json:"in_person_enabled"`
	City              string              `json:"city"`
	PostalCode        string              `json:"postal_code"`
	CountryCode       string              `json:"country_code"`
	Status            string              `json:"status"`
	ModerationNote    *string             `json:"moderation_note,omitempty"`
	ActiveReservation *ReservationSummary `json:"active_reservation,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

type PaymentView struct {
	ID              uuid.UUID `json:"id"`
	Provider        string    `json:"provider"`
	Status          string    `json:"status"`
	AmountCents     int64     `json:"amount_cents"`
	Currency        string    `json:"currency"`
	PaymentIntentID *string   `json:"payment_intent_id,omitempty"`
	ChargeID        *string   `json:"charge_id,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ResolutionView struct {
	Outcome    string    `json:"outcome"`
	Note       string    `json:"note,omitempty"`
	ResolvedBy uuid.UUID `json:"resolved_by"`
	ResolvedAt time.Time `json:"resolved_at"`
}

type DisputeView struct {
	ID         uuid.UUID       `json:"id"`
	OrderID    uuid.UUID       `json:"order_id"`
	OpenedBy   *uuid.UUID      `json:"opened_by,omitempty"`
	Reason     string          `json:"reason"`
	Message    string          `json:"message"`
	IsResolved bool            `json:"is_resolved"`
	Resolution *ResolutionView `json:"resolution,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// OrderView is read after lazy reconciliation. HandoverCode is only filled for the buyer.
type OrderView struct {
	ID                   uuid.UUID     `json:"id"`
	ListingID            uuid.UUID     `json:"listing_id"`
	BuyerID              uuid.UUID     `json:"buyer_id"`
	SellerID             uuid.UUID     `json:"seller_id"`
	FulfillmentMode      string        `json:"fulfillment_mode"`
	Status               string        `json:"status"`
	ItemCents            int64         `json:"item_cents"`
	ShippingCents        int64         `json:"shipping_cents"`
	PlatformFeeCents     int64         `json:"platform_fee_cents"`
	ProviderFeeCents     int64         `json:"provider_fee_cents"`
	TotalCents           int64         `json:"total_cents"`
	TotalPaidCents       *int64        `json:"total_paid_cents,omitempty"`
	Currency             string        `json:"currency"`
	BuyerAddressRef      *string       `json:"buyer_address_ref,omitempty"`
	SellerAddressRef     *string       `json:"seller_address_ref,omitempty"`
	HandoverCode         *string       `json:"handover_code,omitempty"`
	HandoverConfirmedAt  *time.Time    `json:"handover_confirmed_at,omitempty"`
	ConfirmationDeadline *time.Time    `json:"confirmation_deadline,omitempty"`
	MeetupAt             *time.Time    `json:"meetup_at,omitempty"`
	TrackingNumber       *string       `json:"tracking_number,omitempty"`
	PaymentDeadline      time.Time     `json:"payment_deadline"`
	PaidAt               *time.Time    `json:"paid_at,omitempty"`
	ShippedAt            *time.Time    `json:"shipped_at,omitempty"`
	DeliveredAt          *time.Time    `json:"delivered_at,omitempty"`
	CompletedAt          *time.Time    `json:"completed_at,omitempty"`
	CancelledAt          *time.Time    `json:"cancelled_at,omitempty"`
	CancelledBy          *uuid.UUID    `json:"cancelled_by,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
	Payment              *PaymentView  `json:"payment,omitempty"`
	Disputes             []DisputeView `json:"disputes"`
}

type ReviewListItem struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	Direction  string    `json:"direction"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
}

type SideView struct {
	Average         *float64 `json:"average,omitempty"`
	Count           int64    `json:"count"`
	ItemsTransacted int64    `json:"items_transacted"`
}

type ReputationView struct {
	UserID        uuid.UUID `json:"user_id"`
	DisplayName   string    `json:"display_name"`
	TrustScore    *float64  `json:"trust_score,omitempty"`
	Seller        SideView  `json:"seller"`
	Buyer         SideView  `json:"buyer"`
	Cancellations int64     `json:"cancellations"`
	NoShows       int64     `json:"no_shows"`
	Disputes      int64     `json:"disputes"`
	UpdatedAt     time.Time `json:"updated_at"`
}
