//go:build unit

package commands_test

import (
	"testing"

	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/pkg/ptr"
	"marketplace-core/internal/usecase/commands"
	"marketplace-core/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingRequest() commands.CreateListingRequest {
	return commands.CreateListingRequest{
		Title:       "Vintage road bike",
		Description: "Steel frame, 56cm.",
		PriceCents:  25_000,
	}
}

func TestListingModerationFlow(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	moderator := m.user("Mo Moderator")

	id, err := m.listings.CreateListing(m.ctx, seller, listingRequest())
	require.NoError(t, err)
	assert.Equal(t, listing.StatusDraft, m.listingStatus(id))
	assert.Equal(t, "EUR", m.store.Listing(id).Price().Currency())

	require.NoError(t, m.listings.EditListing(m.ctx, id, seller, commands.EditListingRequest{PriceCents: ptr.Of(int64(19_900))}))
	assert.Equal(t, int64(19_900), m.store.Listing(id).Price().Cents())

	require.NoError(t, m.listings.SubmitListing(m.ctx, id, seller))
	assert.Equal(t, listing.StatusPendingReview, m.listingStatus(id))

	t.Run("rejection needs a note", func(t *testing.T) {
		err := m.listings.ModerateListing(m.ctx, id, moderator, commands.ModerateListingRequest{Decision: commands.DecisionReject})
		assert.ErrorIs(t, err, listing.ErrModerationNoteEmpty)
	})

	require.NoError(t, m.listings.ModerateListing(m.ctx, id, moderator, commands.ModerateListingRequest{
		Decision: commands.DecisionReject,
		Note:     "photos missing",
	}))
	rejected := m.store.Listing(id)
	assert.Equal(t, listing.StatusRejected, rejected.Status())
	require.NotNil(t, rejected.ModerationNote())
	assert.Equal(t, "photos missing", *rejected.ModerationNote())

	require.NoError(t, m.listings.SubmitListing(m.ctx, id, seller))
	require.NoError(t, m.listings.ModerateListing(m.ctx, id, moderator, commands.ModerateListingRequest{Decision: commands.DecisionApprove}))
	assert.Equal(t, listing.StatusPublished, m.listingStatus(id))

	t.Run("published listing is not editable", func(t *testing.T) {
		err := m.listings.EditListing(m.ctx, id, seller, commands.EditListingRequest{Title: ptr.Of("New title")})
		assert.ErrorIs(t, err, listing.ErrNotEditable)
		se, ok := errs.CurrentState(err)
		require.True(t, ok)
		assert.Equal(t, "published", se.State)
	})

	t.Run("only the seller archives", func(t *testing.T) {
		err := m.listings.ArchiveListing(m.ctx, id, moderator)
		assert.ErrorIs(t, err, listing.ErrNotSeller)
	})

	require.NoError(t, m.listings.ArchiveListing(m.ctx, id, seller))
	assert.Equal(t, listing.StatusArchived, m.listingStatus(id))

	var path []string
	for _, ev := range m.store.Events(shared.EntityListing, id) {
		path = append(path, ev.To)
	}
	assert.Equal(t, []string{"draft", "pending_review", "rejected", "pending_review", "published", "archived"}, path)
}

func TestListingDetails(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")

	t.Run("defaults when omitted", func(t *testing.T) {
		id, err := m.listings.CreateListing(m.ctx, seller, listingRequest())
		require.NoError(t, err)
		d := m.store.Listing(id).Details()
		assert.Equal(t, listing.ConditionGood, d.Condition)
		assert.True(t, d.Fulfillment.Shipping())
		assert.True(t, d.Fulfillment.InPerson())
		assert.Equal(t, "FR", d.Location.CountryCode())
	})

	t.Run("seller choices are kept", func(t *testing.T) {
		req := listingRequest()
		req.Details = listing.DetailsInput{
			Condition:       ptr.Of("for_parts"),
			ShippingEnabled: ptr.Of(false),
			City:            ptr.Of("Bordeaux"),
			PostalCode:      ptr.Of("33000"),
		}
		id, err := m.listings.CreateListing(m.ctx, seller, req)
		require.NoError(t, err)
		d := m.store.Listing(id).Details()
		assert.Equal(t, listing.ConditionForParts, d.Condition)
		assert.False(t, d.Fulfillment.Shipping())
		assert.True(t, d.Fulfillment.InPerson())
		assert.Equal(t, "Bordeaux", d.Location.City())

		require.NoError(t, m.listings.EditListing(m.ctx, id, seller, commands.EditListingRequest{
			Details: listing.DetailsInput{ShippingEnabled: ptr.Of(true), InPersonEnabled: ptr.Of(false)},
		}))
		d = m.store.Listing(id).Details()
		assert.True(t, d.Fulfillment.Shipping())
		assert.False(t, d.Fulfillment.InPerson())
	})

	t.Run("both modes disabled is refused", func(t *testing.T) {
		req := listingRequest()
		req.Details = listing.DetailsInput{ShippingEnabled: ptr.Of(false), InPersonEnabled: ptr.Of(false)}
		_, err := m.listings.CreateListing(m.ctx, seller, req)
		assert.ErrorIs(t, err, listing.ErrNoFulfillment)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestModerateListing_UnknownDecision(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	id := m.publishedListing(seller)

	err := m.listings.ModerateListing(m.ctx, id, seller, commands.ModerateListingRequest{Decision: "shrug"})
	assert.ErrorIs(t, err, commands.ErrInvalidDecision)
}

func TestUnpublishWhileReserved(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	buyer := m.user("Bo Buyer")
	moderator := m.user("Mo Moderator")
	id := m.publishedListing(seller)

	_, err := m.reservations.TryReserve(m.ctx, id, buyer, 0)
	require.NoError(t, err)

	err = m.listings.ModerateListing(m.ctx, id, moderator, commands.ModerateListingRequest{Decision: commands.DecisionUnpublish, Note: "spam"})
	assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	assert.Equal(t, listing.StatusReserved, m.listingStatus(id))
}

func TestRefreshAvailability_ReleasesLapsedHold(t *testing.T) {
	m := newMarket(t)
	seller := m.user("Sam Seller")
	buyer := m.user("Bo Buyer")
	id := m.publishedListing(seller)

	_, err := m.reservations.TryReserve(m.ctx, id, buyer, 0)
	require.NoError(t, err)
	m.clock.Add(testPolicies.Hold.Default + 1)

	require.NoError(t, m.listings.RefreshAvailability(m.ctx, id))
	assert.Equal(t, listing.StatusPublished, m.listingStatus(id))
}
