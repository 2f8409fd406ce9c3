package commands

import (
	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/domain/reservation"
	"marketplace-core/internal/pkg/config"
)

// Policies are derived once from the market configuration.
type Policies struct {
	Order    order.Policy
	Fees     order.FeeSchedule
	Hold     reservation.HoldPolicy
	Currency string
	Provider string
}

func NewPolicies(cfg config.MarketConfig) Policies {
	return Policies{
		Order: order.Policy{
			PaymentWindow:      cfg.PaymentWindow,
			HandoverWindow:     cfg.HandoverWindow,
			ConfirmationWindow: cfg.ConfirmationWindow,
			ShippingGrace:      cfg.ShippingGrace,
		},
		Fees: order.FeeSchedule{
			PlatformFeeBps:        cfg.PlatformFeeBps,
			ProviderFeeBps:        cfg.ProviderFeeBps,
			ProviderFeeFixedCents: cfg.ProviderFeeFixedCents,
			ShippingFlatCents:     cfg.ShippingFlatCents,
		},
		Hold: reservation.HoldPolicy{
			Default: cfg.ReservationHold,
			Max:     cfg.ReservationMaxHold,
		},
		Currency: cfg.Currency,
		Provider: cfg.PaymentProvider,
	}
}

// availability is the reconciled hold picture of one listing, read under its row lock.
type availability struct {
	listing     *listing.Listing
	reservation *reservation.Reservation
	order       *order.Order
}

func (a *availability) hasHold() bool {
	return a.reservation != nil || (a.order != nil && a.order.Status().IsInFlight())
}
