package shared

import (
	"context"
	"time"

	"marketplace-core/internal/domain/dispute"
	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/domain/payment"
	"marketplace-core/internal/domain/reputation"
	"marketplace-core/internal/domain/reservation"
	"marketplace-core/internal/domain/review"
	"marketplace-core/internal/domain/user"
	sqlc "marketplace-core/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Users() UserRepository
	Reputation() ReputationRepository
	Listings() ListingRepository
	Reservations() ReservationRepository
	Orders() OrderRepository
	Payments() PaymentRepository
	ProviderEvents() ProviderEventRepository
	Disputes() DisputeRepository
	Reviews() ReviewRepository
	Events() StatusEventRepository
	DB() sqlc.DBTX
}

// Lookups named Find*ForUpdate take a row lock held until the transaction ends.
// Optional lookups (FindOpen*, FindInFlight*, FindBy* on unique keys) return nil, nil when absent.

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error)
	UpdateTrustScore(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, score *float64, now time.Time) error
}

type ReputationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *reputation.Stats) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*reputation.Stats, error)
	Save(ctx context.Context, tx sqlc.DBTX, s *reputation.Stats) error
	Samples(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) ([]reputation.Sample, error)
	Activity(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (reputation.Activity, error)
}

type ListingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*listing.Listing, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*listing.Listing, error)
	Save(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *reservation.Reservation) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	FindOpenByListing(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID) (*reservation.Reservation, error)
	// MarkCancelled stamps cancelled_at only while it is still null; false means another writer won.
	MarkCancelled(ctx context.Context, tx sqlc.DBTX, r *reservation.Reservation) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error)
	FindInFlightByListing(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID) (*order.Order, error)
	Save(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
}

type PaymentRepository interface {
	FindByOrder(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) (*payment.Payment, error)
	Save(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
}

type ProviderEventRepository interface {
	// TryRecord returns false when the (provider, event id) pair was already processed.
	TryRecord(ctx context.Context, tx sqlc.DBTX, ev ProviderEvent) (bool, error)
}

type DisputeRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, d *dispute.Dispute) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*dispute.Dispute, error)
	FindOpenByOrder(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) (*dispute.Dispute, error)
	MarkResolved(ctx context.Context, tx sqlc.DBTX, d *dispute.Dispute) (bool, error)
}

type ReviewRepository interface {
	FindByOrderDirection(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, direction review.Direction) (*review.Review, error)
	Upsert(ctx context.Context, tx sqlc.DBTX, r *review.Review) error
}

type StatusEventRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, ev StatusEvent) error
}
