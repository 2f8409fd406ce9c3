//go:build unit || e2e || property

package builder

import (
	"time"

	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/handler/dto/request"
	"marketplace-core/internal/usecase/queries"

	"github.com/google/uuid"
)

var DefaultFees = order.FeeSchedule{
	PlatformFeeBps:        500,
	ProviderFeeBps:        140,
	ProviderFeeFixedCents: 25,
	ShippingFlatCents:     599,
}

var DefaultPolicy = order.Policy{
	PaymentWindow:      time.Hour,
	HandoverWindow:     48 * time.Hour,
	ConfirmationWindow: 48 * time.Hour,
	ShippingGrace:      72 * time.Hour,
}

type OrderBuilder struct {
	ID                   uuid.UUID
	ListingID            uuid.UUID
	BuyerID              uuid.UUID
	SellerID             uuid.UUID
	Mode                 order.FulfillmentMode
	Status               order.Status
	ItemCents            int64
	Currency             string
	HandoverCode         string
	ConfirmationDeadline *time.Time
	CreatedAt            time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:           uuid.New(),
		ListingID:    uuid.New(),
		BuyerID:      uuid.New(),
		SellerID:     uuid.New(),
		Mode:         order.FulfillmentShipping,
		Status:       order.StatusCreated,
		ItemCents:    25_000,
		Currency:     "EUR",
		HandoverCode: "123456",
		CreatedAt:    time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

// Build methods
func (o *OrderBuilder) BuildDomain() *order.Order {
	s := order.Snapshot{
		ID:                   o.ID,
		ListingID:            o.ListingID,
		BuyerID:              o.BuyerID,
		SellerID:             o.SellerID,
		Mode:                 o.Mode,
		Status:               o.Status,
		Breakdown:            DefaultFees.Quote(o.ItemCents, o.Mode),
		Currency:             o.Currency,
		ConfirmationDeadline: o.ConfirmationDeadline,
		PaymentDeadline:      o.CreatedAt.Add(DefaultPolicy.PaymentWindow),
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.CreatedAt,
	}
	if o.Mode == order.FulfillmentInPerson {
		code := o.HandoverCode
		s.HandoverCode = &code
	}
	return order.Reconstruct(s)
}

func (o *OrderBuilder) BuildView() *queries.OrderView {
	b := DefaultFees.Quote(o.ItemCents, o.Mode)
	v := &queries.OrderView{
		ID:                   o.ID,
		ListingID:            o.ListingID,
		BuyerID:              o.BuyerID,
		SellerID:             o.SellerID,
		FulfillmentMode:      string(o.Mode),
		Status:               o.Status.String(),
		ItemCents:            b.ItemCents,
		ShippingCents:        b.ShippingCents,
		PlatformFeeCents:     b.PlatformFeeCents,
		ProviderFeeCents:     b.ProviderFeeCents,
		TotalCents:           b.TotalCents,
		Currency:             o.Currency,
		ConfirmationDeadline: o.ConfirmationDeadline,
		PaymentDeadline:      o.CreatedAt.Add(DefaultPolicy.PaymentWindow),
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.CreatedAt,
		Disputes:             []queries.DisputeView{},
	}
	if o.Mode == order.FulfillmentInPerson {
		code := o.HandoverCode
		v.HandoverCode = &code
	}
	return v
}

func (o *OrderBuilder) BuildCreateRequestDTO() request.CreateOrderRequest {
	return request.CreateOrderRequest{
		ListingID:       o.ListingID,
		FulfillmentMode: string(o.Mode),
	}
}

// Fluent builder methods
func (o *OrderBuilder) WithID(id uuid.UUID) *OrderBuilder {
	o.ID = id
	return o
}

func (o *OrderBuilder) WithListingID(id uuid.UUID) *OrderBuilder {
	o.ListingID = id
	return o
}

func (o *OrderBuilder) WithParties(buyerID, sellerID uuid.UUID) *OrderBuilder {
	o.BuyerID = buyerID
	o.SellerID = sellerID
	return o
}

func (o *OrderBuilder) WithStatus(status order.Status) *OrderBuilder {
	o.Status = status
	return o
}

func (o *OrderBuilder) WithDeadline(deadline time.Time) *OrderBuilder {
	o.ConfirmationDeadline = &deadline
	return o
}

func (o *OrderBuilder) WithCreatedAt(t time.Time) *OrderBuilder {
	o.CreatedAt = t
	return o
}

func (o *OrderBuilder) InPerson() *OrderBuilder {
	o.Mode = order.FulfillmentInPerson
	return o
}

func (o *OrderBuilder) Shipping() *OrderBuilder {
	o.Mode = order.FulfillmentShipping
	return o
}

func (o *OrderBuilder) AsCompleted() *OrderBuilder {
	o.Status = order.StatusCompleted
	return o
}
