package response

import (
	"marketplace-core/internal/domain/payment"
	"marketplace-core/internal/usecase/queries"
)

type PaymentResponse struct {
	ID              string  `json:"id"`
	Provider        string  `json:"provider"`
	Status          string  `json:"status"`
	AmountCents     int64   `json:"amount_cents"`
	Currency        string  `json:"currency"`
	PaymentIntentID *string `json:"payment_intent_id,omitempty"`
	ChargeID        *string `json:"charge_id,omitempty"`
	UpdatedAt       int64   `json:"updated_at"`
}

func FromPaymentView(v *queries.PaymentView) (*PaymentResponse, error) {
	var res PaymentResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromPayment(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:              p.ID().String(),
		Provider:        p.Provider(),
		Status:          string(p.Status()),
		AmountCents:     p.AmountCents(),
		Currency:        p.Currency(),
		PaymentIntentID: p.Refs().PaymentIntentID,
		ChargeID:        p.Refs().ChargeID,
		UpdatedAt:       p.UpdatedAt().Unix(),
	}
}

type OrderResponse struct {
	ID                   string            `json:"id"`
	ListingID            string            `json:"listing_id"`
	BuyerID              string            `json:"buyer_id"`
	SellerID             string            `json:"seller_id"`
	FulfillmentMode      string            `json:"fulfillment_mode"`
	Status               string            `json:"status"`
	ItemCents            int64             `json:"item_cents"`
	ShippingCents        int64             `json:"shipping_cents"`
	PlatformFeeCents     int64             `json:"platform_fee_cents"`
	ProviderFeeCents     int64             `json:"provider_fee_cents"`
	TotalCents           int64             `json:"total_cents"`
	TotalPaidCents       *int64            `json:"total_paid_cents,omitempty"`
	Currency             string            `json:"currency"`
	BuyerAddressRef      *string           `json:"buyer_address_ref,omitempty"`
	SellerAddressRef     *string           `json:"seller_address_ref,omitempty"`
	HandoverCode         *string           `json:"handover_code,omitempty"`
	HandoverConfirmedAt  *int64            `json:"handover_confirmed_at,omitempty"`
	ConfirmationDeadline *int64            `json:"confirmation_deadline,omitempty"`
	MeetupAt             *int64            `json:"meetup_at,omitempty"`
	TrackingNumber       *string           `json:"tracking_number,omitempty"`
	PaymentDeadline      int64             `json:"payment_deadline"`
	PaidAt               *int64            `json:"paid_at,omitempty"`
	ShippedAt            *int64            `json:"shipped_at,omitempty"`
	DeliveredAt          *int64            `json:"delivered_at,omitempty"`
	CompletedAt          *int64            `json:"completed_at,omitempty"`
	CancelledAt          *int64            `json:"cancelled_at,omitempty"`
	CancelledBy          *string           `json:"cancelled_by,omitempty"`
	CreatedAt            int64             `json:"created_at"`
	UpdatedAt            int64             `json:"updated_at"`
	Payment              *PaymentResponse  `json:"payment,omitempty"`
	Disputes             []DisputeResponse `json:"disputes"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	res := &OrderResponse{
		ID:                   v.ID.String(),
		ListingID:            v.ListingID.String(),
		BuyerID:              v.BuyerID.String(),
		SellerID:             v.SellerID.String(),
		FulfillmentMode:      v.FulfillmentMode,
		Status:               v.Status,
		ItemCents:            v.ItemCents,
		ShippingCents:        v.ShippingCents,
		PlatformFeeCents:     v.PlatformFeeCents,
		ProviderFeeCents:     v.ProviderFeeCents,
		TotalCents:           v.TotalCents,
		TotalPaidCents:       v.TotalPaidCents,
		Currency:             v.Currency,
		BuyerAddressRef:      v.BuyerAddressRef,
		SellerAddressRef:     v.SellerAddressRef,
		HandoverCode:         v.HandoverCode,
		HandoverConfirmedAt:  unixPtr(v.HandoverConfirmedAt),
		ConfirmationDeadline: unixPtr(v.ConfirmationDeadline),
		MeetupAt:             unixPtr(v.MeetupAt),
		TrackingNumber:       v.TrackingNumber,
		PaymentDeadline:      v.PaymentDeadline.Unix(),
		PaidAt:               unixPtr(v.PaidAt),
		ShippedAt:            unixPtr(v.ShippedAt),
		DeliveredAt:          unixPtr(v.DeliveredAt),
		CompletedAt:          unixPtr(v.CompletedAt),
		CancelledAt:          unixPtr(v.CancelledAt),
		CancelledBy:          uuidPtr(v.CancelledBy),
		CreatedAt:            v.CreatedAt.Unix(),
		UpdatedAt:            v.UpdatedAt.Unix(),
		Disputes:             FromDisputeViews(v.Disputes),
	}
	if v.Payment != nil {
		p, err := FromPaymentView(v.Payment)
		if err != nil {
			return nil, err
		}
		res.Payment = p
	}
	return res, nil
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type CancelOrderResponse struct {
	Cancelled bool `json:"cancelled"`
}

type PaymentEventResponse struct {
	Applied bool `json:"applied"`
}
