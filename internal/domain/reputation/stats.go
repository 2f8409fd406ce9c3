package reputation

import (
	"time"

	"marketplace-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSampleOutOfRange = errs.Validation("reputation sample rating must be between 1 and 5")

type SideKind string

const (
	SideSeller SideKind = "seller"
	SideBuyer  SideKind = "buyer"
)

// Sample is one review rating as seen from the target's perspective.
type Sample struct {
	Side   SideKind
	Rating int
}

// Activity holds the order/dispute counters derived from ground truth alongside the reviews.
type Activity struct {
	ItemsSold     int64
	ItemsBought   int64
	Cancellations int64
	NoShows       int64
	Disputes      int64
}

// Side keeps the exact sum so the average never accumulates rounding drift.
type Side struct {
	RatingSum       int64
	RatingCount     int64
	ItemsTransacted int64
}

func (s Side) Average() *float64 {
	if s.RatingCount == 0 {
		return nil
	}
	avg := float64(s.RatingSum) / float64(s.RatingCount)
	return &avg
}

type Stats struct {
	userID        uuid.UUID
	seller        Side
	buyer         Side
	cancellations int64
	noShows       int64
	disputes      int64
	updatedAt     time.Time
}

// NewStats is the empty aggregate created together with its user.
func NewStats(userID uuid.UUID, now time.Time) *Stats {
	return &Stats{userID: userID, updatedAt: now}
}

func ReconstructStats(userID uuid.UUID, seller, buyer Side, cancellations, noShows, disputes int64, updatedAt time.Time) *Stats {
	return &Stats{
		userID:        userID,
		seller:        seller,
		buyer:         buyer,
		cancellations: cancellations,
		noShows:       noShows,
		disputes:      disputes,
		updatedAt:     updatedAt,
	}
}

// Recompute rebuilds the aggregate from the complete set of samples targeting the user.
func Recompute(userID uuid.UUID, samples []Sample, activity Activity, now time.Time) (*Stats, error) {
	stats := &Stats{
		userID:        userID,
		seller:        Side{ItemsTransacted: activity.ItemsSold},
		buyer:         Side{ItemsTransacted: activity.ItemsBought},
		cancellations: activity.Cancellations,
		noShows:       activity.NoShows,
		disputes:      activity.Disputes,
		updatedAt:     now,
	}
	for _, s := range samples {
		if s.Rating < 1 || s.Rating > 5 {
			return nil, ErrSampleOutOfRange
		}
		switch s.Side {
		case SideSeller:
			stats.seller.RatingSum += int64(s.Rating)
			stats.seller.RatingCount++
		case SideBuyer:
			stats.buyer.RatingSum += int64(s.Rating)
			stats.buyer.RatingCount++
		default:
			return nil, errs.Validation("unknown reputation side: " + string(s.Side))
		}
	}
	return stats, nil
}

// TrustScore prefers the seller-side average whenever at least one seller review exists,
// regardless of how many buyer-side reviews there are.
func (s *Stats) TrustScore() *float64 {
	if s.seller.RatingCount > 0 {
		return s.seller.Average()
	}
	return s.buyer.Average()
}

func (s *Stats) UserID() uuid.UUID     { return s.userID }
func (s *Stats) Seller() Side          { return s.seller }
func (s *Stats) Buyer() Side           { return s.buyer }
func (s *Stats) Cancellations() int64  { return s.cancellations }
func (s *Stats) NoShows() int64        { return s.noShows }
func (s *Stats) Disputes() int64       { return s.disputes }
func (s *Stats) UpdatedAt() time.Time  { return s.updatedAt }
