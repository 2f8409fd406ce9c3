package response

import (
	"marketplace-core/internal/usecase/queries"
)

type ReservationSummaryResponse struct {
	ID        string `json:"id"`
	BuyerID   string `json:"buyer_id"`
	ExpiresAt int64  `json:"expires_at"`
}

type ListingResponse struct {
	ID                string                      `json:"id"`
	SellerID          string                      `json:"seller_id"`
	SellerName        string                      `json:"seller_name"`
	SellerTrustScore  *float64                    `json:"seller_trust_score,omitempty"`
	Title             string                      `json:"title"`
	Description       string                      `json:"description"`
	PriceCents        int64                       `json:"price_cents"`
	Currency          string                      `json:"currency"`
	Condition         string                      `json:"condition"`
	ShippingEnabled   bool                        `json:"shipping_enabled"`
	InPersonEnabled   bool                        `json:"in_person_enabled"`
	City              string                      `json:"city"`
	PostalCode        string                      `json:"postal_code"`
	CountryCode       string                      `json:"country_code"`
	Status            string                      `json:"status"`
	ModerationNote    *string                     `json:"moderation_note,omitempty"`
	ActiveReservation *ReservationSummaryResponse `json:"active_reservation,omitempty"`
	CreatedAt         int64                       `json:"created_at"`
	UpdatedAt         int64                       `json:"updated_at"`
}

func FromListingView(v *queries.ListingView) *ListingResponse {
	res := &ListingResponse{
		ID:               v.ID.String(),
		SellerID:         v.SellerID.String(),
		SellerName:       v.SellerName,
		SellerTrustScore: v.SellerTrustScore,
		Title:            v.Title,
		Description:      v.Description,
		PriceCents:       v.PriceCents,
		Currency:         v.Currency,
		Condition:        v.Condition,
		ShippingEnabled:  v.ShippingEnabled,
		InPersonEnabled:  v.InPersonEnabled,
		City:             v.City,
		PostalCode:       v.PostalCode,
		CountryCode:      v.CountryCode,
		Status:           v.Status,
		ModerationNote:   v.ModerationNote,
		CreatedAt:        v.CreatedAt.Unix(),
		UpdatedAt:        v.UpdatedAt.Unix(),
	}
	if r := v.ActiveReservation; r != nil {
		res.ActiveReservation = &ReservationSummaryResponse{
			ID:        r.ID.String(),
			BuyerID:   r.BuyerID.String(),
			ExpiresAt: r.ExpiresAt.Unix(),
		}
	}
	return res
}
