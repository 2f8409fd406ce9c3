package request

import (
	"strings"

	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/usecase/commands"
)

// CreateListingRequest enables both fulfillment modes when the flags are omitted.
type CreateListingRequest struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description"`
	PriceCents      int64   `json:"price_cents" binding:"required,gt=0"`
	Currency        *string `json:"currency,omitempty" binding:"omitempty,len=3"`
	Condition       string  `json:"condition,omitempty" binding:"omitempty,oneof=new like_new good fair for_parts"`
	ShippingEnabled *bool   `json:"shipping_enabled,omitempty"`
	InPersonEnabled *bool   `json:"in_person_enabled,omitempty"`
	City            string  `json:"city,omitempty" binding:"max=80"`
	PostalCode      string  `json:"postal_code,omitempty" binding:"max=20"`
	CountryCode     string  `json:"country_code,omitempty" binding:"omitempty,len=2"`
}

func (r CreateListingRequest) ToCommand() commands.CreateListingRequest {
	var currency *string
	if r.Currency != nil {
		c := strings.ToUpper(strings.TrimSpace(*r.Currency))
		currency = &c
	}
	return commands.CreateListingRequest{
		Title:       r.Title,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		Currency:    currency,
		Details: listing.DetailsInput{
			Condition:       &r.Condition,
			ShippingEnabled: r.ShippingEnabled,
			InPersonEnabled: r.InPersonEnabled,
			City:            &r.City,
			PostalCode:      &r.PostalCode,
			CountryCode:     &r.CountryCode,
		},
	}
}

// EditListingRequest is a partial update; absent fields keep their value.
type EditListingRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	PriceCents      *int64  `json:"price_cents" binding:"omitempty,gt=0"`
	Condition       *string `json:"condition" binding:"omitempty,oneof=new like_new good fair for_parts"`
	ShippingEnabled *bool   `json:"shipping_enabled"`
	InPersonEnabled *bool   `json:"in_person_enabled"`
	City            *string `json:"city" binding:"omitempty,max=80"`
	PostalCode      *string `json:"postal_code" binding:"omitempty,max=20"`
	CountryCode     *string `json:"country_code" binding:"omitempty,len=2"`
}

func (r EditListingRequest) ToCommand() commands.EditListingRequest {
	return commands.EditListingRequest{
		Title:       r.Title,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		Details: listing.DetailsInput{
			Condition:       r.Condition,
			ShippingEnabled: r.ShippingEnabled,
			InPersonEnabled: r.InPersonEnabled,
			City:            r.City,
			PostalCode:      r.PostalCode,
			CountryCode:     r.CountryCode,
		},
	}
}

func (r EditListingRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.PriceCents == nil &&
		r.Condition == nil && r.ShippingEnabled == nil && r.InPersonEnabled == nil &&
		r.City == nil && r.PostalCode == nil && r.CountryCode == nil
}

type ModerateListingRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject unpublish"`
	Note     string `json:"note" binding:"max=500"`
}

func (r ModerateListingRequest) ToCommand() commands.ModerateListingRequest {
	return commands.ModerateListingRequest{
		Decision: commands.ModerationDecision(r.Decision),
		Note:     r.Note,
	}
}
