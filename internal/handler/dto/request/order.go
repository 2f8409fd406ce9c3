package request

import (
	"time"

	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	ListingID        uuid.UUID `json:"listing_id" binding:"required"`
	FulfillmentMode  string    `json:"fulfillment_mode" binding:"required,oneof=shipping in_person"`
	BuyerAddressRef  *string   `json:"buyer_address_ref,omitempty"`
	SellerAddressRef *string   `json:"seller_address_ref,omitempty"`
}

func (r CreateOrderRequest) ToCommand() commands.CreateOrderRequest {
	return commands.CreateOrderRequest{
		ListingID:        r.ListingID,
		Mode:             order.FulfillmentMode(r.FulfillmentMode),
		BuyerAddressRef:  r.BuyerAddressRef,
		SellerAddressRef: r.SellerAddressRef,
	}
}

type ScheduleMeetupRequest struct {
	MeetupAt time.Time `json:"meetup_at" binding:"required"`
}

type ConfirmHandoverRequest struct {
	Code string `json:"code" binding:"required"`
}

type ShipRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required,max=64"`
}
