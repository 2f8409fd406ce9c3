//go:build e2e

package marketplace_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"

	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/handler/dto/request"
	"marketplace-core/internal/handler/dto/response"
	"marketplace-core/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	path  string
	body  []byte
	token string
}

// race releases every call at once and returns the status codes in call order.
func (s *MarketplaceSuite) race(calls []call) []int {
	codes := make([]int, len(calls))
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, c := range calls {
		wg.Add(1)
		go func(i int, c call) {
			defer wg.Done()
			req := nethttptest.NewRequest(http.MethodPost, c.path, bytes.NewReader(c.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+c.token)
			rec := nethttptest.NewRecorder()
			<-start
			s.Router.ServeHTTP(rec, req)
			codes[i] = rec.Code
		}(i, c)
	}
	close(start)
	wg.Wait()
	return codes
}

func (s *MarketplaceSuite) mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	require.NoError(s.T(), err)
	return b
}

func count(codes []int, code int) int {
	n := 0
	for _, c := range codes {
		if c == code {
			n++
		}
	}
	return n
}

// doubleHeldListings counts listings that hold an open reservation and an in-flight order at once.
func (s *MarketplaceSuite) doubleHeldListings() int {
	var inflight []string
	for _, st := range order.InFlightStatuses() {
		inflight = append(inflight, st.String())
	}
	var n int
	err := s.DB.QueryRow(context.Background(), `
		SELECT count(*) FROM listings l
		WHERE EXISTS (SELECT 1 FROM reservations r WHERE r.listing_id = l.id AND r.cancelled_at IS NULL)
		  AND EXISTS (SELECT 1 FROM orders o WHERE o.listing_id = l.id AND o.status = ANY($1))`,
		inflight).Scan(&n)
	require.NoError(s.T(), err)
	return n
}

func (s *MarketplaceSuite) listingStatus(id string, as actor) string {
	t := s.T()
	rec := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/listings/"+id, nil, as.token)
	var res response.ListingResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
	return res.Status
}

func (s *MarketplaceSuite) openReservations(listingID string) int {
	var n int
	err := s.DB.QueryRow(context.Background(),
		`SELECT count(*) FROM reservations WHERE listing_id = $1 AND cancelled_at IS NULL`, uuid.MustParse(listingID)).Scan(&n)
	require.NoError(s.T(), err)
	return n
}

func (s *MarketplaceSuite) TestConcurrentHolds() {
	s.Run("parallel reservations on one listing admit exactly one", func() {
		t := s.T()
		seller := s.newActor("Sam Seller", user.RoleMember)
		moderator := s.newActor("Mo Moderator", user.RoleModerator)
		listingID := s.publishedListing(seller, moderator, 9000)

		body := s.mustJSON(request.CreateReservationRequest{})
		var calls []call
		for i := 0; i < 6; i++ {
			buyer := s.newActor(fmt.Sprintf("Buyer %d", i), user.RoleMember)
			calls = append(calls, call{path: "/api/listings/" + listingID + "/reservations", body: body, token: buyer.token})
		}

		codes := s.race(calls)

		assert.Equal(t, 1, count(codes, http.StatusCreated), "codes: %v", codes)
		assert.Equal(t, len(calls)-1, count(codes, http.StatusConflict), "codes: %v", codes)
		assert.Equal(t, 1, s.openReservations(listingID))
		assert.Equal(t, "reserved", s.listingStatus(listingID, seller))
	})

	s.Run("a reservation racing an order never leaves both holds", func() {
		t := s.T()
		seller := s.newActor("Sam Seller", user.RoleMember)
		moderator := s.newActor("Mo Moderator", user.RoleModerator)
		reserver := s.newActor("Rey Reserver", user.RoleMember)
		purchaser := s.newActor("Pat Purchaser", user.RoleMember)

		reserveBody := s.mustJSON(request.CreateReservationRequest{})
		for round := 0; round < 8; round++ {
			listingID := s.publishedListing(seller, moderator, 7000)
			orderBody := s.mustJSON(request.CreateOrderRequest{ListingID: uuid.MustParse(listingID), FulfillmentMode: "shipping"})

			calls := []call{
				{path: "/api/listings/" + listingID + "/reservations", body: reserveBody, token: reserver.token},
				{path: "/api/orders", body: orderBody, token: purchaser.token},
			}
			if round%2 == 1 {
				calls[0], calls[1] = calls[1], calls[0]
			}

			codes := s.race(calls)

			require.Equal(t, 1, count(codes, http.StatusCreated), "round %d codes: %v", round, codes)
			require.Equal(t, 1, count(codes, http.StatusConflict), "round %d codes: %v", round, codes)
			assert.Equal(t, "reserved", s.listingStatus(listingID, seller), "round %d", round)
		}

		assert.Zero(t, s.doubleHeldListings())
	})
}
