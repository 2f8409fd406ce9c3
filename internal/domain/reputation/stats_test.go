//go:build unit

package reputation_test

import (
	"testing"
	"time"

	"marketplace-core/internal/domain/reputation"
	"marketplace-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

func seller(r int) reputation.Sample { return reputation.Sample{Side: reputation.SideSeller, Rating: r} }
func buyer(r int) reputation.Sample  { return reputation.Sample{Side: reputation.SideBuyer, Rating: r} }

func TestRecompute(t *testing.T) {
	userID := uuid.New()

	t.Run("partitions by side", func(t *testing.T) {
		stats, err := reputation.Recompute(userID, []reputation.Sample{seller(5), seller(4), buyer(2)}, reputation.Activity{
			ItemsSold: 2, ItemsBought: 1, Cancellations: 3, NoShows: 1, Disputes: 2,
		}, now)
		require.NoError(t, err)

		assert.Equal(t, reputation.Side{RatingSum: 9, RatingCount: 2, ItemsTransacted: 2}, stats.Seller())
		assert.Equal(t, reputation.Side{RatingSum: 2, RatingCount: 1, ItemsTransacted: 1}, stats.Buyer())
		assert.InDelta(t, 4.5, *stats.Seller().Average(), 0)
		assert.Equal(t, int64(3), stats.Cancellations())
		assert.Equal(t, int64(1), stats.NoShows())
		assert.Equal(t, int64(2), stats.Disputes())
	})

	t.Run("no samples", func(t *testing.T) {
		stats, err := reputation.Recompute(userID, nil, reputation.Activity{}, now)
		require.NoError(t, err)
		assert.Nil(t, stats.Seller().Average())
		assert.Nil(t, stats.TrustScore())
	})

	t.Run("out of range sample", func(t *testing.T) {
		_, err := reputation.Recompute(userID, []reputation.Sample{seller(6)}, reputation.Activity{}, now)
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestTrustScore(t *testing.T) {
	tests := []struct {
		name     string
		samples  []reputation.Sample
		expected *float64
	}{
		{"no reviews", nil, nil},
		{"buyer side only", []reputation.Sample{buyer(3), buyer(4)}, f(3.5)},
		{"seller side preferred", []reputation.Sample{seller(2), buyer(5), buyer(5), buyer(5)}, f(2)},
		{"single seller review outweighs many buyer reviews", []reputation.Sample{seller(1), buyer(5), buyer(5), buyer(5), buyer(5)}, f(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := reputation.Recompute(uuid.New(), tt.samples, reputation.Activity{}, now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stats.TrustScore())
		})
	}
}

func f(v float64) *float64 { return &v }
