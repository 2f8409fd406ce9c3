//go:build unit

package order_test

import (
	"regexp"
	"testing"
	"time"

	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeSchedule(t *testing.T) {
	fees := builder.DefaultFees

	shipping := fees.Quote(25_000, order.FulfillmentShipping)
	assert.Equal(t, order.Breakdown{
		ItemCents:        25_000,
		ShippingCents:    599,
		PlatformFeeCents: 1_250,
		ProviderFeeCents: 401,
		TotalCents:       26_849,
	}, shipping)

	inPerson := fees.Quote(999, order.FulfillmentInPerson)
	assert.Equal(t, int64(0), inPerson.ShippingCents)
	assert.Equal(t, int64(50), inPerson.PlatformFeeCents, "49.95 rounds half up")
	assert.Equal(t, int64(1_049), inPerson.TotalCents)
}

func TestNewOrder(t *testing.T) {
	input := order.NewOrderInput{
		ListingID: uuid.New(),
		SellerID:  uuid.New(),
		BuyerID:   uuid.New(),
		Mode:      order.FulfillmentInPerson,
		ItemCents: 10_000,
		Currency:  "EUR",
	}

	t.Run("in-person order gets a handover code and no deadline", func(t *testing.T) {
		o, err := order.NewOrder(input, builder.DefaultFees, builder.DefaultPolicy, now)
		require.NoError(t, err)

		assert.Equal(t, order.StatusCreated, o.Status())
		require.NotNil(t, o.HandoverCode())
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), *o.HandoverCode())
		assert.Nil(t, o.ConfirmationDeadline())
		assert.Equal(t, now.Add(time.Hour), o.PaymentDeadline())
	})

	t.Run("shipping order has no handover code", func(t *testing.T) {
		in := input
		in.Mode = order.FulfillmentShipping
		o, err := order.NewOrder(in, builder.DefaultFees, builder.DefaultPolicy, now)
		require.NoError(t, err)
		assert.Nil(t, o.HandoverCode())
	})

	t.Run("self purchase", func(t *testing.T) {
		in := input
		in.BuyerID = in.SellerID
		_, err := order.NewOrder(in, builder.DefaultFees, builder.DefaultPolicy, now)
		require.ErrorIs(t, err, order.ErrSelfPurchase)
	})

	t.Run("unknown fulfillment", func(t *testing.T) {
		in := input
		in.Mode = "drone"
		_, err := order.NewOrder(in, builder.DefaultFees, builder.DefaultPolicy, now)
		require.ErrorIs(t, err, order.ErrInvalidFulfillment)
	})
}

func TestMarkPaid(t *testing.T) {
	o := builder.NewOrderBuilder().BuildDomain()

	_, err := o.MarkPaid(o.Breakdown().TotalCents-1, now)
	require.ErrorIs(t, err, order.ErrAmountMismatch)

	paid, err := o.MarkPaid(o.Breakdown().TotalCents, now)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, paid.Status())
	assert.Equal(t, now, *paid.Snapshot().PaidAt)

	_, err = paid.MarkPaid(o.Breakdown().TotalCents, now)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestInPersonFlow(t *testing.T) {
	b := builder.NewOrderBuilder().InPerson().WithStatus(order.StatusPaid)
	o := b.BuildDomain()
	policy := builder.DefaultPolicy
	meetup := now.Add(24 * time.Hour)

	_, err := o.ScheduleMeetup(o.BuyerID(), meetup, policy, now)
	require.ErrorIs(t, err, order.ErrNotSeller)
	_, err = o.ScheduleMeetup(o.SellerID(), now.Add(-time.Minute), policy, now)
	require.ErrorIs(t, err, order.ErrMeetupInPast)
	_, err = o.MarkLabelReady(o.SellerID(), now)
	require.ErrorIs(t, err, order.ErrWrongFulfillment)

	scheduled, err := o.ScheduleMeetup(o.SellerID(), meetup, policy, now)
	require.NoError(t, err)
	assert.Equal(t, order.StatusMeetupScheduled, scheduled.Status())
	assert.Equal(t, meetup.Add(policy.HandoverWindow), *scheduled.ConfirmationDeadline())

	handoverAt := meetup.Add(time.Hour)
	_, err = scheduled.ConfirmHandover(o.SellerID(), "000000", policy, handoverAt)
	require.ErrorIs(t, err, order.ErrHandoverCodeInvalid)
	assert.Equal(t, order.StatusMeetupScheduled, scheduled.Status())

	handed, err := scheduled.ConfirmHandover(o.SellerID(), " 123456 ", policy, handoverAt)
	require.NoError(t, err)
	assert.Equal(t, order.StatusAwaitingConfirmation, handed.Status())
	assert.Equal(t, handoverAt.Add(policy.ConfirmationWindow), *handed.ConfirmationDeadline())
	assert.Equal(t, handoverAt, *handed.Snapshot().HandoverConfirmedAt)

	_, err = handed.ConfirmReceipt(o.SellerID(), handoverAt)
	require.ErrorIs(t, err, order.ErrNotBuyer)

	completed, err := handed.ConfirmReceipt(o.BuyerID(), handoverAt.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, order.StatusCompleted, completed.Status())
	assert.Nil(t, completed.ConfirmationDeadline())
}

func TestConfirmHandoverAfterDeadline(t *testing.T) {
	deadline := now.Add(time.Hour)
	o := builder.NewOrderBuilder().InPerson().WithStatus(order.StatusMeetupScheduled).WithDeadline(deadline).BuildDomain()

	_, err := o.ConfirmHandover(o.SellerID(), "123456", builder.DefaultPolicy, deadline)
	require.ErrorIs(t, err, order.ErrDeadlinePassed)
}

func TestShippingFlow(t *testing.T) {
	o := builder.NewOrderBuilder().Shipping().WithStatus(order.StatusPaid).BuildDomain()
	policy := builder.DefaultPolicy

	_, err := o.ScheduleMeetup(o.SellerID(), now.Add(time.Hour), policy, now)
	require.ErrorIs(t, err, order.ErrWrongFulfillment)

	label, err := o.MarkLabelReady(o.SellerID(), now)
	require.NoError(t, err)

	shipped, err := label.Ship(o.SellerID(), " TRK-1 ", now)
	require.NoError(t, err)
	assert.Equal(t, order.StatusInTransit, shipped.Status())
	assert.Equal(t, "TRK-1", *shipped.Snapshot().TrackingNumber)

	_, err = shipped.MarkDelivered(uuid.New(), policy, now)
	require.ErrorIs(t, err, order.ErrNotParty)

	delivered, err := shipped.MarkDelivered(o.BuyerID(), policy, now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(policy.ShippingGrace), *delivered.ConfirmationDeadline())
}

func TestCancel(t *testing.T) {
	o := builder.NewOrderBuilder().BuildDomain()

	_, _, err := o.Cancel(uuid.New(), now)
	require.ErrorIs(t, err, order.ErrNotParty)

	cancelled, changed, err := o.Cancel(o.BuyerID(), now)
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, o.BuyerID(), *cancelled.CancelledBy())

	again, changed, err := cancelled.Cancel(o.SellerID(), now)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, o.BuyerID(), *again.CancelledBy())

	paid := builder.NewOrderBuilder().WithStatus(order.StatusPaid).BuildDomain()
	_, _, err = paid.Cancel(paid.BuyerID(), now)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestRefund(t *testing.T) {
	paid := builder.NewOrderBuilder().WithStatus(order.StatusPaid).BuildDomain()
	refunded, changed, err := paid.Refund(now)
	require.NoError(t, err)
	require.True(t, changed)

	_, changed, err = refunded.Refund(now)
	require.NoError(t, err)
	assert.False(t, changed)

	shipped := builder.NewOrderBuilder().WithStatus(order.StatusInTransit).BuildDomain()
	_, _, err = shipped.Refund(now)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestReconcile(t *testing.T) {
	policy := builder.DefaultPolicy
	deadline := now.Add(time.Hour)

	t.Run("unpaid order expires after the payment window", func(t *testing.T) {
		o := builder.NewOrderBuilder().WithCreatedAt(now).BuildDomain()

		same, esc, changed := o.Reconcile(now.Add(59*time.Minute), policy)
		assert.False(t, changed)
		assert.Nil(t, esc)
		assert.Same(t, o, same)

		expired, esc, changed := o.Reconcile(now.Add(time.Hour), policy)
		require.True(t, changed)
		assert.Nil(t, esc)
		assert.Equal(t, order.StatusExpired, expired.Status())
	})

	t.Run("missed meetup escalates as no-show", func(t *testing.T) {
		o := builder.NewOrderBuilder().InPerson().WithStatus(order.StatusMeetupScheduled).WithDeadline(deadline).BuildDomain()

		disputed, esc, changed := o.Reconcile(deadline, policy)
		require.True(t, changed)
		require.NotNil(t, esc)
		assert.Equal(t, order.StatusDispute, disputed.Status())
		assert.Equal(t, order.EscalationNoShow, esc.Reason)
	})

	t.Run("unconfirmed in-person handover escalates", func(t *testing.T) {
		o := builder.NewOrderBuilder().InPerson().WithStatus(order.StatusAwaitingConfirmation).WithDeadline(deadline).BuildDomain()

		disputed, esc, changed := o.Reconcile(deadline.Add(time.Second), policy)
		require.True(t, changed)
		require.NotNil(t, esc)
		assert.Equal(t, order.StatusDispute, disputed.Status())
		assert.Equal(t, order.EscalationUnconfirmed, esc.Reason)
		assert.Equal(t, order.StatusAwaitingConfirmation, o.Status())
	})

	t.Run("shipping grace auto-completes", func(t *testing.T) {
		o := builder.NewOrderBuilder().Shipping().WithStatus(order.StatusAwaitingConfirmation).WithDeadline(deadline).BuildDomain()

		completed, esc, changed := o.Reconcile(deadline, policy)
		require.True(t, changed)
		assert.Nil(t, esc)
		assert.Equal(t, order.StatusCompleted, completed.Status())
	})

	t.Run("reconcile is idempotent", func(t *testing.T) {
		o := builder.NewOrderBuilder().InPerson().WithStatus(order.StatusAwaitingConfirmation).WithDeadline(deadline).BuildDomain()

		once, _, _ := o.Reconcile(deadline, policy)
		twice, esc, changed := once.Reconcile(deadline.Add(time.Hour), policy)
		assert.False(t, changed)
		assert.Nil(t, esc)
		assert.Equal(t, once, twice)
	})
}
