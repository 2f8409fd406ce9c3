//go:build unit

package commands_test

import (
	"encoding/json"
	"testing"

	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/domain/payment"
	"marketplace-core/internal/pkg/ptr"
	"marketplace-core/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPaymentEvent(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	buyer := m.user("Bo Buyer")
	listingID := m.publishedListing(seller)
	orderID, err := m.orders.CreateOrder(m.ctx, buyer, commands.CreateOrderRequest{ListingID: listingID, Mode: order.FulfillmentShipping})
	require.NoError(t, err)
	total := m.store.Order(orderID).Breakdown().TotalCents

	event := commands.PaymentEventRequest{
		EventID:     "evt_1",
		OrderID:     orderID,
		Outcome:     payment.OutcomeSucceeded,
		AmountCents: total,
		Refs:        payment.Refs{ChargeID: ptr.Of("ch_1")},
		Raw:         json.RawMessage(`{"id":"evt_1"}`),
	}

	t.Run("missing event id", func(t *testing.T) {
		bad := event
		bad.EventID = " "
		_, err := m.payments.ApplyPaymentEvent(m.ctx, bad)
		assert.ErrorIs(t, err, commands.ErrMissingEventID)
	})

	t.Run("amount mismatch leaves the order unpaid", func(t *testing.T) {
		bad := event
		bad.EventID = "evt_short"
		bad.AmountCents = total - 1
		_, err := m.payments.ApplyPaymentEvent(m.ctx, bad)
		assert.ErrorIs(t, err, order.ErrAmountMismatch)
		assert.Equal(t, order.StatusCreated, m.store.Order(orderID).Status())
	})

	applied, err := m.payments.ApplyPaymentEvent(m.ctx, event)
	require.NoError(t, err)
	assert.True(t, applied)

	p := m.store.Payment(orderID)
	require.NotNil(t, p)
	assert.Equal(t, payment.StatusSucceeded, p.Status())
	assert.Equal(t, testPolicies.Provider, p.Provider())
	require.NotNil(t, p.Refs().ChargeID)
	assert.Equal(t, "ch_1", *p.Refs().ChargeID)
	assert.JSONEq(t, `{"id":"evt_1"}`, string(p.Raw()))
	assert.Equal(t, order.StatusPaid, m.store.Order(orderID).Status())

	t.Run("replay is a no-op", func(t *testing.T) {
		applied, err := m.payments.ApplyPaymentEvent(m.ctx, event)
		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, order.StatusPaid, m.store.Order(orderID).Status())
	})

	t.Run("refund releases the listing", func(t *testing.T) {
		refund := event
		refund.EventID = "evt_2"
		refund.Outcome = payment.OutcomeRefunded
		applied, err := m.payments.ApplyPaymentEvent(m.ctx, refund)
		require.NoError(t, err)
		assert.True(t, applied)

		assert.Equal(t, order.StatusRefunded, m.store.Order(orderID).Status())
		assert.Equal(t, payment.StatusRefunded, m.store.Payment(orderID).Status())
		assert.Equal(t, listing.StatusPublished, m.listingStatus(listingID))
	})
}

func TestInitiatePayment_Rules(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	buyer := m.user("Bo Buyer")
	listingID := m.publishedListing(seller)
	orderID, err := m.orders.CreateOrder(m.ctx, buyer, commands.CreateOrderRequest{ListingID: listingID, Mode: order.FulfillmentInPerson})
	require.NoError(t, err)

	_, err = m.orders.InitiatePayment(m.ctx, orderID, seller)
	assert.ErrorIs(t, err, order.ErrNotBuyer)

	first, err := m.orders.InitiatePayment(m.ctx, orderID, buyer)
	require.NoError(t, err)
	second, err := m.orders.InitiatePayment(m.ctx, orderID, buyer)
	require.NoError(t, err)
	assert.Equal(t, first.ID(), second.ID())
	assert.NotNil(t, second.Refs().PaymentIntentID)

	m.pay(orderID)
	_, err = m.orders.InitiatePayment(m.ctx, orderID, buyer)
	assert.ErrorIs(t, err, commands.ErrPaymentNotDue)
}
