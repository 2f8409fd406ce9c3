//go:build unit || property

// Package memuow is an in-memory UnitOfWork for command tests. Transactions are serialized by a
// single lock, which stands in for the row locks the Postgres implementation takes, and a failed
// transaction restores the state it started from.
package memuow

import (
	"context"
	"maps"
	"sync"

	"marketplace-core/internal/domain/dispute"
	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/domain/payment"
	"marketplace-core/internal/domain/reputation"
	"marketplace-core/internal/domain/reservation"
	"marketplace-core/internal/domain/review"
	"marketplace-core/internal/domain/user"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type reviewKey struct {
	orderID   uuid.UUID
	direction review.Direction
}

type eventKey struct {
	provider string
	eventID  string
}

type state struct {
	users          map[uuid.UUID]*user.User
	stats          map[uuid.UUID]*reputation.Stats
	listings       map[uuid.UUID]*listing.Listing
	reservations   map[uuid.UUID]*reservation.Reservation
	orders         map[uuid.UUID]*order.Order
	payments       map[uuid.UUID]*payment.Payment
	providerEvents map[eventKey]shared.ProviderEvent
	disputes       map[uuid.UUID]*dispute.Dispute
	reviews        map[reviewKey]*review.Review
	events         []shared.StatusEvent
}

func newState() state {
	return state{
		users:          make(map[uuid.UUID]*user.User),
		stats:          make(map[uuid.UUID]*reputation.Stats),
		listings:       make(map[uuid.UUID]*listing.Listing),
		reservations:   make(map[uuid.UUID]*reservation.Reservation),
		orders:         make(map[uuid.UUID]*order.Order),
		payments:       make(map[uuid.UUID]*payment.Payment),
		providerEvents: make(map[eventKey]shared.ProviderEvent),
		disputes:       make(map[uuid.UUID]*dispute.Dispute),
		reviews:        make(map[reviewKey]*review.Review),
	}
}

// clone is shallow: domain entities are immutable snapshots, so sharing pointers is safe.
func (s state) clone() state {
	return state{
		users:          maps.Clone(s.users),
		stats:          maps.Clone(s.stats),
		listings:       maps.Clone(s.listings),
		reservations:   maps.Clone(s.reservations),
		orders:         maps.Clone(s.orders),
		payments:       maps.Clone(s.payments),
		providerEvents: maps.Clone(s.providerEvents),
		disputes:       maps.Clone(s.disputes),
		reviews:        maps.Clone(s.reviews),
		events:         append([]shared.StatusEvent(nil), s.events...),
	}
}

type Store struct {
	mu      sync.Mutex
	data    state
	commits int
}

func New() *Store {
	return &Store{data: newState()}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.data.clone()
	if err := fn(ctx, &memTx{st: &s.data}); err != nil {
		s.data = saved
		return err
	}
	s.commits++
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return s.WithinReadOnly(ctx, fn)
}

// Seed writes entities directly, bypassing the commands.
func (s *Store) Seed(fn func(tx shared.Tx)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&memTx{st: &s.data})
}

// Commits counts successful Within calls.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

type memTx struct {
	st *state
}

func (t *memTx) Users() shared.UserRepository                   { return userRepo{t.st} }
func (t *memTx) Reputation() shared.ReputationRepository        { return reputationRepo{t.st} }
func (t *memTx) Listings() shared.ListingRepository             { return listingRepo{t.st} }
func (t *memTx) Reservations() shared.ReservationRepository     { return reservationRepo{t.st} }
func (t *memTx) Orders() shared.OrderRepository                 { return orderRepo{t.st} }
func (t *memTx) Payments() shared.PaymentRepository             { return paymentRepo{t.st} }
func (t *memTx) ProviderEvents() shared.ProviderEventRepository { return providerEventRepo{t.st} }
func (t *memTx) Disputes() shared.DisputeRepository             { return disputeRepo{t.st} }
func (t *memTx) Reviews() shared.ReviewRepository               { return reviewRepo{t.st} }
func (t *memTx) Events() shared.StatusEventRepository           { return eventRepo{t.st} }
func (t *memTx) DB() sqlc.DBTX                                  { return nil }
