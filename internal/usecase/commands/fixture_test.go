//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/domain/reservation"
	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/infra/events"
	"marketplace-core/internal/infra/paymentgw"
	"marketplace-core/internal/pkg/clock"
	"marketplace-core/internal/pkg/telemetry"
	"marketplace-core/internal/usecase/commands"
	"marketplace-core/internal/usecase/shared"
	"marketplace-core/tests/common/builder"
	"marketplace-core/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testPolicies = commands.Policies{
	Order: builder.DefaultPolicy,
	Fees:  builder.DefaultFees,
	Hold: reservation.HoldPolicy{
		Default: 15 * time.Minute,
		Max:     2 * time.Hour,
	},
	Currency: "EUR",
	Provider: "offline",
}

// market wires every command against one in-memory store and a controllable clock.
type market struct {
	t     *testing.T
	ctx   context.Context
	store *memuow.Store
	clock *clock.MockClock

	listings     commands.ListingCommands
	reservations commands.ReservationCommands
	orders       commands.OrderCommands
	payments     commands.PaymentCommands
	disputes     commands.DisputeCommands
	reviews      commands.ReviewCommands
	users        commands.UserCommands
}

func newMarket(t *testing.T) *market {
	t.Helper()
	return newMarketWith(t, testPolicies)
}

func newMarketWith(t *testing.T, policies commands.Policies) *market {
	t.Helper()
	store := memuow.New()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	runner := commands.NewRunner(store, clk, events.NoopPublisher{}, telemetry.NewNoop(), policies)

	return &market{
		t:            t,
		ctx:          context.Background(),
		store:        store,
		clock:        clk,
		listings:     commands.NewListingUseCase(runner),
		reservations: commands.NewReservationUseCase(runner),
		orders:       commands.NewOrderUseCase(runner, paymentgw.NewOfflineGateway(policies.Provider)),
		payments:     commands.NewPaymentUseCase(runner),
		disputes:     commands.NewDisputeUseCase(runner),
		reviews:      commands.NewReviewUseCase(runner),
		users:        commands.NewUserUseCase(runner),
	}
}

func (m *market) user(name string) uuid.UUID {
	m.t.Helper()
	b := builder.NewUserBuilder()
	b.DisplayName = name
	b.Email = uuid.NewString()[:8] + "@example.com"
	u, err := m.users.ProvisionUser(m.ctx, commands.ProvisionUserRequest{
		ID:          b.ID,
		Email:       b.Email,
		DisplayName: b.DisplayName,
		Role:        user.RoleMember.String(),
	})
	require.NoError(m.t, err)
	return u.ID()
}

// publishedListing seeds a listing that already passed moderation.
func (m *market) publishedListing(sellerID uuid.UUID) uuid.UUID {
	m.t.Helper()
	return m.seedListing(builder.NewListingBuilder().WithSellerID(sellerID).AsPublished())
}

func (m *market) seedListing(b *builder.ListingBuilder) uuid.UUID {
	m.t.Helper()
	l := b.MustBuildDomain()
	m.store.Seed(func(tx shared.Tx) {
		require.NoError(m.t, tx.Listings().Create(m.ctx, tx.DB(), l))
	})
	return l.ID()
}

func (m *market) listingStatus(id uuid.UUID) listing.Status {
	m.t.Helper()
	l := m.store.Listing(id)
	require.NotNil(m.t, l)
	return l.Status()
}

// paidOrder creates an order and settles its payment through a provider event.
func (m *market) paidOrder(listingID, buyerID uuid.UUID, mode order.FulfillmentMode) uuid.UUID {
	m.t.Helper()
	orderID, err := m.orders.CreateOrder(m.ctx, buyerID, commands.CreateOrderRequest{
		ListingID: listingID,
		Mode:      mode,
	})
	require.NoError(m.t, err)
	m.pay(orderID)
	return orderID
}

func (m *market) pay(orderID uuid.UUID) {
	m.t.Helper()
	o := m.store.Order(orderID)
	applied, err := m.payments.ApplyPaymentEvent(m.ctx, commands.PaymentEventRequest{
		Provider:    testPolicies.Provider,
		EventID:     "evt_" + orderID.String(),
		OrderID:     orderID,
		Outcome:     "succeeded",
		AmountCents: o.Breakdown().TotalCents,
	})
	require.NoError(m.t, err)
	require.True(m.t, applied)
}
