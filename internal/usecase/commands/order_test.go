//go:build unit

package commands_test

import (
	"testing"
	"time"

	"marketplace-core/internal/domain/dispute"
	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/domain/payment"
	"marketplace-core/internal/domain/reservation"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/commands"
	"marketplace-core/internal/usecase/shared"
	"marketplace-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippingOrder_HappyPath(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	buyer := m.user("Bo Buyer")
	listingID := m.publishedListing(seller)

	_, err := m.reservations.TryReserve(m.ctx, listingID, buyer, 0)
	require.NoError(t, err)

	orderID, err := m.orders.CreateOrder(m.ctx, buyer, commands.CreateOrderRequest{
		ListingID: listingID,
		Mode:      order.FulfillmentShipping,
	})
	require.NoError(t, err)
	assert.Equal(t, listing.StatusReserved, m.listingStatus(listingID))

	p, err := m.orders.InitiatePayment(m.ctx, orderID, buyer)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusRequiresAction, p.Status())
	assert.Equal(t, m.store.Order(orderID).Breakdown().TotalCents, p.AmountCents())

	m.pay(orderID)
	assert.Equal(t, order.StatusPaid, m.store.Order(orderID).Status())
	assert.Equal(t, payment.StatusSucceeded, m.store.Payment(orderID).Status())

	require.NoError(t, m.orders.MarkLabelReady(m.ctx, orderID, seller))
	require.NoError(t, m.orders.Ship(m.ctx, orderID, seller, "TRK-1"))
	require.NoError(t, m.orders.MarkDelivered(m.ctx, orderID, buyer))
	require.NoError(t, m.orders.ConfirmReceipt(m.ctx, orderID, buyer))

	assert.Equal(t, order.StatusCompleted, m.store.Order(orderID).Status())
	assert.Equal(t, listing.StatusSold, m.listingStatus(listingID))

	holds := m.store.Reservations(listingID)
	require.Len(t, holds, 1)
	require.NotNil(t, holds[0].CancelReason())
	assert.Equal(t, reservation.ReasonSuperseded, *holds[0].CancelReason())

	assert.Equal(t, int64(1), m.store.Stats(seller).Seller().ItemsTransacted)
	assert.Equal(t, int64(1), m.store.Stats(buyer).Buyer().ItemsTransacted)

	var path []string
	for _, ev := range m.store.Events(shared.EntityOrder, orderID) {
		path = append(path, ev.To)
	}
	assert.Equal(t, []string{"created", "paid", "label_ready", "in_transit", "awaiting_confirmation", "completed"}, path)
}

func TestCreateOrder_Rules(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	buyer := m.user("Bo Buyer")
	other := m.user("Oli Other")
	listingID := m.publishedListing(seller)

	t.Run("seller cannot buy", func(t *testing.T) {
		_, err := m.orders.CreateOrder(m.ctx, seller, commands.CreateOrderRequest{ListingID: listingID, Mode: order.FulfillmentShipping})
		assert.ErrorIs(t, err, order.ErrSelfPurchase)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := m.orders.CreateOrder(m.ctx, buyer, commands.CreateOrderRequest{ListingID: listingID, Mode: "teleport"})
		assert.ErrorIs(t, err, order.ErrInvalidFulfillment)
	})

	t.Run("someone else's reservation blocks the order", func(t *testing.T) {
		_, err := m.reservations.TryReserve(m.ctx, listingID, other, 0)
		require.NoError(t, err)

		_, err = m.orders.CreateOrder(m.ctx, buyer, commands.CreateOrderRequest{ListingID: listingID, Mode: order.FulfillmentShipping})
		assert.ErrorIs(t, err, commands.ErrListingHeld)
		se, ok := errs.CurrentState(err)
		require.True(t, ok)
		assert.Equal(t, "reserved", se.State)
	})

	t.Run("an in-flight order blocks a second one", func(t *testing.T) {
		_, err := m.orders.CreateOrder(m.ctx, other, commands.CreateOrderRequest{ListingID: listingID, Mode: order.FulfillmentShipping})
		require.NoError(t, err)

		_, err = m.orders.CreateOrder(m.ctx, other, commands.CreateOrderRequest{ListingID: listingID, Mode: order.FulfillmentShipping})
		assert.ErrorIs(t, err, commands.ErrListingHeld)
	})
}

func TestCreateOrder_FulfillmentModes(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	buyer := m.user("Bo Buyer")

	t.Run("disabled mode is rejected and the listing stays available", func(t *testing.T) {
		listingID := m.seedListing(builder.NewListingBuilder().WithSellerID(seller).AsPublished().WithFulfillment(false, true))

		_, err := m.orders.CreateOrder(m.ctx, buyer, commands.CreateOrderRequest{ListingID: listingID, Mode: order.FulfillmentShipping})
		assert.ErrorIs(t, err, order.ErrWrongFulfillment)
		se, ok := errs.CurrentState(err)
		require.True(t, ok)
		assert.Equal(t, "published", se.State)
		assert.Equal(t, listing.StatusPublished, m.listingStatus(listingID))

		orderID, err := m.orders.CreateOrder(m.ctx, buyer, commands.CreateOrderRequest{ListingID: listingID, Mode: order.FulfillmentInPerson})
		require.NoError(t, err)
		assert.Equal(t, order.FulfillmentInPerson, m.store.Order(orderID).Mode())
	})

	t.Run("in-person disabled", func(t *testing.T) {
		listingID := m.seedListing(builder.NewListingBuilder().WithSellerID(seller).AsPublished().WithFulfillment(true, false))

		_, err := m.orders.CreateOrder(m.ctx, buyer, commands.CreateOrderRequest{ListingID: listingID, Mode: order.FulfillmentInPerson})
		assert.ErrorIs(t, err, order.ErrWrongFulfillment)
	})

	t.Run("reservation holder is held to the seller's modes too", func(t *testing.T) {
		listingID := m.seedListing(builder.NewListingBuilder().WithSellerID(seller).AsPublished().WithFulfillment(true, false))
		_, err := m.reservations.TryReserve(m.ctx, listingID, buyer, 0)
		require.NoError(t, err)

		_, err = m.orders.CreateOrder(m.ctx, buyer, commands.CreateOrderRequest{ListingID: listingID, Mode: order.FulfillmentInPerson})
		assert.ErrorIs(t, err, order.ErrWrongFulfillment)
		assert.Len(t, m.store.Reservations(listingID), 1)
		assert.Equal(t, listing.StatusReserved, m.listingStatus(listingID))
	})
}

func TestUnpaidOrderExpires(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	buyer := m.user("Bo Buyer")
	listingID := m.publishedListing(seller)

	orderID, err := m.orders.CreateOrder(m.ctx, buyer, commands.CreateOrderRequest{ListingID: listingID, Mode: order.FulfillmentShipping})
	require.NoError(t, err)
	assert.Equal(t, listing.StatusReserved, m.listingStatus(listingID))

	m.clock.Add(testPolicies.Order.PaymentWindow)
	require.NoError(t, m.orders.ReconcileOrder(m.ctx, orderID))

	assert.Equal(t, order.StatusExpired, m.store.Order(orderID).Status())
	assert.Equal(t, listing.StatusPublished, m.listingStatus(listingID))

	t.Run("late payment is rejected", func(t *testing.T) {
		_, err := m.orders.InitiatePayment(m.ctx, orderID, buyer)
		assert.ErrorIs(t, err, commands.ErrPaymentNotDue)
	})

	t.Run("expired order does not count as a cancellation", func(t *testing.T) {
		assert.Zero(t, m.store.Stats(buyer).Cancellations())
	})
}

func TestCancelOrder(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	buyer := m.user("Bo Buyer")
	stranger := m.user("Stu Stranger")
	listingID := m.publishedListing(seller)
	orderID, err := m.orders.CreateOrder(m.ctx, buyer, commands.CreateOrderRequest{ListingID: listingID, Mode: order.FulfillmentShipping})
	require.NoError(t, err)

	_, err = m.orders.CancelOrder(m.ctx, orderID, stranger)
	assert.ErrorIs(t, err, order.ErrNotParty)

	changed, err := m.orders.CancelOrder(m.ctx, orderID, seller)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = m.orders.CancelOrder(m.ctx, orderID, buyer)
	require.NoError(t, err)
	assert.False(t, changed)

	o := m.store.Order(orderID)
	assert.Equal(t, order.StatusCancelled, o.Status())
	require.NotNil(t, o.CancelledBy())
	assert.Equal(t, seller, *o.CancelledBy())
	assert.Equal(t, listing.StatusPublished, m.listingStatus(listingID))
	assert.Equal(t, int64(1), m.store.Stats(seller).Cancellations())
	assert.Zero(t, m.store.Stats(buyer).Cancellations())
}

func TestCancelPaidShippingOrder(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	buyer := m.user("Bo Buyer")
	listingID := m.publishedListing(seller)
	orderID := m.paidOrder(listingID, buyer, order.FulfillmentShipping)

	_, err := m.orders.CancelOrder(m.ctx, orderID, buyer)
	assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	se, ok := errs.CurrentState(err)
	require.True(t, ok)
	assert.Equal(t, "paid", se.State)
}

func TestInPersonOrder_Handover(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	buyer := m.user("Bo Buyer")
	listingID := m.publishedListing(seller)
	orderID := m.paidOrder(listingID, buyer, order.FulfillmentInPerson)

	t.Run("shipping steps are refused", func(t *testing.T) {
		err := m.orders.MarkLabelReady(m.ctx, orderID, seller)
		assert.ErrorIs(t, err, order.ErrWrongFulfillment)
	})

	t.Run("buyer cannot schedule", func(t *testing.T) {
		err := m.orders.ScheduleMeetup(m.ctx, orderID, buyer, m.clock.Now().Add(time.Hour))
		assert.ErrorIs(t, err, order.ErrNotSeller)
	})

	require.NoError(t, m.orders.ScheduleMeetup(m.ctx, orderID, seller, m.clock.Now().Add(2*time.Hour)))

	code := m.store.Order(orderID).HandoverCode()
	require.NotNil(t, code)

	t.Run("wrong code", func(t *testing.T) {
		err := m.orders.ConfirmHandover(m.ctx, orderID, seller, "not-a-code")
		assert.ErrorIs(t, err, order.ErrHandoverCodeInvalid)
		assert.Equal(t, order.StatusMeetupScheduled, m.store.Order(orderID).Status())
	})

	m.clock.Add(2 * time.Hour)
	require.NoError(t, m.orders.ConfirmHandover(m.ctx, orderID, seller, *code))

	o := m.store.Order(orderID)
	assert.Equal(t, order.StatusAwaitingConfirmation, o.Status())
	require.NotNil(t, o.ConfirmationDeadline())
	assert.Equal(t, m.clock.Now().Add(testPolicies.Order.ConfirmationWindow), *o.ConfirmationDeadline())

	require.NoError(t, m.orders.ConfirmReceipt(m.ctx, orderID, buyer))
	assert.Equal(t, order.StatusCompleted, m.store.Order(orderID).Status())
	assert.Equal(t, listing.StatusSold, m.listingStatus(listingID))
}

func TestMissedMeetupEscalates(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	buyer := m.user("Bo Buyer")
	listingID := m.publishedListing(seller)
	orderID := m.paidOrder(listingID, buyer, order.FulfillmentInPerson)

	meetup := m.clock.Now().Add(time.Hour)
	require.NoError(t, m.orders.ScheduleMeetup(m.ctx, orderID, seller, meetup))

	m.clock.Set(meetup.Add(testPolicies.Order.HandoverWindow))
	code := m.store.Order(orderID).HandoverCode()
	err := m.orders.ConfirmHandover(m.ctx, orderID, seller, *code)
	assert.True(t, errs.Is(err, errs.ErrInvalidTransition))

	assert.Equal(t, order.StatusDispute, m.store.Order(orderID).Status())
	disputes := m.store.Disputes(orderID)
	require.Len(t, disputes, 1)
	assert.Equal(t, dispute.ReasonNoShow, disputes[0].Reason())
	assert.Nil(t, disputes[0].OpenedBy())
	assert.Equal(t, listing.StatusReserved, m.listingStatus(listingID))
	assert.Equal(t, int64(1), m.store.Stats(seller).Disputes())
}

func TestDeliveredShipmentAutoCompletes(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	buyer := m.user("Bo Buyer")
	listingID := m.publishedListing(seller)
	orderID := m.paidOrder(listingID, buyer, order.FulfillmentShipping)

	require.NoError(t, m.orders.MarkLabelReady(m.ctx, orderID, seller))
	require.NoError(t, m.orders.Ship(m.ctx, orderID, seller, ""))
	require.NoError(t, m.orders.MarkDelivered(m.ctx, orderID, seller))

	m.clock.Add(testPolicies.Order.ShippingGrace - time.Minute)
	require.NoError(t, m.orders.ReconcileOrder(m.ctx, orderID))
	assert.Equal(t, order.StatusAwaitingConfirmation, m.store.Order(orderID).Status())

	m.clock.Add(time.Minute)
	require.NoError(t, m.orders.ReconcileOrder(m.ctx, orderID))
	assert.Equal(t, order.StatusCompleted, m.store.Order(orderID).Status())
	assert.Equal(t, listing.StatusSold, m.listingStatus(listingID))
}
