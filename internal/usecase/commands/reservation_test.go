//go:build unit

package commands_test

import (
	"sync"
	"testing"
	"time"

	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/domain/reservation"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryReserve_ConcurrentBuyersExactlyOneWins(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	listingID := m.publishedListing(seller)

	const buyers = 16
	ids := make([]uuid.UUID, buyers)
	for i := range ids {
		ids[i] = m.user("Buyer")
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		winners   int
		conflicts int
	)
	for _, buyerID := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.reservations.TryReserve(m.ctx, listingID, buyerID, 0)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners++
			case errs.Is(err, errs.ErrConcurrencyConflict):
				conflicts++
				se, ok := errs.CurrentState(err)
				if assert.True(t, ok) {
					assert.Equal(t, "reserved", se.State)
				}
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
	assert.Equal(t, buyers-1, conflicts)
	assert.Equal(t, listing.StatusReserved, m.listingStatus(listingID))
	assert.Len(t, m.store.Reservations(listingID), 1)
}

func TestTryReserve_Rules(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	buyer := m.user("Bo Buyer")
	listingID := m.publishedListing(seller)

	t.Run("seller cannot reserve own listing", func(t *testing.T) {
		_, err := m.reservations.TryReserve(m.ctx, listingID, seller, 0)
		assert.ErrorIs(t, err, reservation.ErrSelfReservation)
		assert.Equal(t, listing.StatusPublished, m.listingStatus(listingID))
	})

	t.Run("hold beyond the maximum is rejected", func(t *testing.T) {
		_, err := m.reservations.TryReserve(m.ctx, listingID, buyer, 3*time.Hour)
		assert.ErrorIs(t, err, reservation.ErrInvalidHold)
	})

	t.Run("unknown buyer is not found", func(t *testing.T) {
		_, err := m.reservations.TryReserve(m.ctx, listingID, uuid.New(), 0)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("draft listing is not reservable", func(t *testing.T) {
		draft, err := m.listings.CreateListing(m.ctx, seller, listingRequest())
		require.NoError(t, err)

		_, err = m.reservations.TryReserve(m.ctx, draft, buyer, 0)
		assert.ErrorIs(t, err, reservation.ErrNotReservable)
		se, ok := errs.CurrentState(err)
		require.True(t, ok)
		assert.Equal(t, "draft", se.State)
	})

	t.Run("default hold applies when none requested", func(t *testing.T) {
		r, err := m.reservations.TryReserve(m.ctx, listingID, buyer, 0)
		require.NoError(t, err)
		assert.Equal(t, testPolicies.Hold.Default, r.ExpiresAt().Sub(r.ReservedAt()))
	})
}

func TestTryReserve_ExpiredHoldIsReclaimedLazily(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	first, second := m.user("First"), m.user("Second")
	listingID := m.publishedListing(seller)

	old, err := m.reservations.TryReserve(m.ctx, listingID, first, 0)
	require.NoError(t, err)

	m.clock.Add(testPolicies.Hold.Default)

	// the hold lapsed exactly now; nothing ran since, yet the next buyer gets it
	fresh, err := m.reservations.TryReserve(m.ctx, listingID, second, 0)
	require.NoError(t, err)
	assert.Equal(t, second, fresh.BuyerID())
	assert.Equal(t, listing.StatusReserved, m.listingStatus(listingID))

	var expired *reservation.Reservation
	for _, r := range m.store.Reservations(listingID) {
		if r.ID() == old.ID() {
			expired = r
		}
	}
	require.NotNil(t, expired)
	require.NotNil(t, expired.CancelReason())
	assert.Equal(t, reservation.ReasonExpired, *expired.CancelReason())

	evs := m.store.Events(shared.EntityReservation, old.ID())
	require.Len(t, evs, 2)
	assert.Equal(t, "expired", evs[1].To)
	assert.Nil(t, evs[1].ActorID)
}

func TestCancelReservation(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	buyer := m.user("Bo Buyer")
	stranger := m.user("Stranger")
	listingID := m.publishedListing(seller)

	r, err := m.reservations.TryReserve(m.ctx, listingID, buyer, 0)
	require.NoError(t, err)

	t.Run("stranger is denied", func(t *testing.T) {
		changed, err := m.reservations.CancelReservation(m.ctx, r.ID(), stranger)
		assert.ErrorIs(t, err, reservation.ErrNotCancellableBy)
		assert.False(t, changed)
		assert.Equal(t, listing.StatusReserved, m.listingStatus(listingID))
	})

	t.Run("seller cancels and the listing is released", func(t *testing.T) {
		changed, err := m.reservations.CancelReservation(m.ctx, r.ID(), seller)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, listing.StatusPublished, m.listingStatus(listingID))

		got := m.store.Reservations(listingID)[0]
		require.NotNil(t, got.CancelReason())
		assert.Equal(t, reservation.ReasonSellerCancelled, *got.CancelReason())
	})

	t.Run("repeat cancel is a no-op", func(t *testing.T) {
		changed, err := m.reservations.CancelReservation(m.ctx, r.ID(), buyer)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("cancelling an expired hold reports no change", func(t *testing.T) {
		again, err := m.reservations.TryReserve(m.ctx, listingID, buyer, 0)
		require.NoError(t, err)
		m.clock.Add(time.Hour)

		changed, err := m.reservations.CancelReservation(m.ctx, again.ID(), buyer)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, listing.StatusPublished, m.listingStatus(listingID))
	})
}
