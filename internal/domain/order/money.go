package order

// FeeSchedule amounts are integer minor units; rates are basis points.
type FeeSchedule struct {
	PlatformFeeBps        int64
	ProviderFeeBps        int64
	ProviderFeeFixedCents int64
	ShippingFlatCents     int64
}

type Breakdown struct {
	ItemCents        int64
	ShippingCents    int64
	PlatformFeeCents int64
	ProviderFeeCents int64
	TotalCents       int64
}

// Quote prices an order. The provider fee is informational: it is charged to the seller
// and not part of the buyer total.
func (f FeeSchedule) Quote(itemCents int64, mode FulfillmentMode) Breakdown {
	var shipping int64
	if mode == FulfillmentShipping {
		shipping = f.ShippingFlatCents
	}
	platform := applyBps(itemCents, f.PlatformFeeBps)
	total := itemCents + shipping + platform
	return Breakdown{
		ItemCents:        itemCents,
		ShippingCents:    shipping,
		PlatformFeeCents: platform,
		ProviderFeeCents: applyBps(total, f.ProviderFeeBps) + f.ProviderFeeFixedCents,
		TotalCents:       total,
	}
}

// applyBps rounds half away from zero.
func applyBps(amount, bps int64) int64 {
	return (amount*bps + 5_000) / 10_000
}
