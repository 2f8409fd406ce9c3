//go:build unit || property

package memuow

import (
	"marketplace-core/internal/domain/dispute"
	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/domain/payment"
	"marketplace-core/internal/domain/reputation"
	"marketplace-core/internal/domain/reservation"
	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

func (s *Store) User(id uuid.UUID) *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.users[id]
}

func (s *Store) Stats(userID uuid.UUID) *reputation.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.stats[userID]
}

func (s *Store) Listing(id uuid.UUID) *listing.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.listings[id]
}

func (s *Store) Order(id uuid.UUID) *order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.orders[id]
}

func (s *Store) Payment(orderID uuid.UUID) *payment.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.payments[orderID]
}

// Reservations returns every reservation ever made on the listing, cancelled ones included.
func (s *Store) Reservations(listingID uuid.UUID) []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*reservation.Reservation
	for _, r := range s.data.reservations {
		if r.ListingID() == listingID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) Disputes(orderID uuid.UUID) []*dispute.Dispute {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*dispute.Dispute
	for _, d := range s.data.disputes {
		if d.OrderID() == orderID {
			out = append(out, d)
		}
	}
	return out
}

// Events returns the status events of one entity in append order.
func (s *Store) Events(entity string, id uuid.UUID) []shared.StatusEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []shared.StatusEvent
	for _, ev := range s.data.events {
		if ev.Entity == entity && ev.EntityID == id {
			out = append(out, ev)
		}
	}
	return out
}
