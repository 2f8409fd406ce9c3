//go:build unit

package dispute_test

import (
	"strings"
	"testing"
	"time"

	"marketplace-core/internal/domain/dispute"
	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

func TestOpen(t *testing.T) {
	for _, status := range order.Statuses() {
		t.Run(string(status), func(t *testing.T) {
			o := builder.NewOrderBuilder().WithStatus(status).BuildDomain()

			d, disputed, err := dispute.Open(o, o.BuyerID(), dispute.ReasonNotReceived, "still waiting", false, now)

			switch status {
			case order.StatusPaid, order.StatusMeetupScheduled, order.StatusInTransit, order.StatusAwaitingConfirmation:
				require.NoError(t, err)
				assert.Equal(t, order.StatusDispute, disputed.Status())
				assert.Equal(t, o.ID(), d.OrderID())
				assert.Equal(t, o.BuyerID(), *d.OpenedBy())
				assert.False(t, d.IsResolved())
			default:
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Nil(t, d)
			}
			assert.Equal(t, status, o.Status())
		})
	}
}

func TestOpenGuards(t *testing.T) {
	o := builder.NewOrderBuilder().WithStatus(order.StatusInTransit).BuildDomain()

	_, _, err := dispute.Open(o, uuid.New(), dispute.ReasonOther, "", false, now)
	require.ErrorIs(t, err, dispute.ErrNotParty)

	_, _, err = dispute.Open(o, o.SellerID(), dispute.ReasonOther, "", true, now)
	require.ErrorIs(t, err, dispute.ErrAlreadyOpen)
	assert.ErrorIs(t, err, errs.ErrConcurrencyConflict)

	_, _, err = dispute.Open(o, o.SellerID(), dispute.ReasonOther, strings.Repeat("x", dispute.MaxMessageLength+1), false, now)
	require.ErrorIs(t, err, dispute.ErrMessageTooLong)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		outcome  dispute.Outcome
		expected order.Status
		against  order.PartyRole
	}{
		{dispute.OutcomeRefundBuyer, order.StatusRefunded, order.PartySeller},
		{dispute.OutcomeReleaseToSeller, order.StatusCompleted, order.PartyBuyer},
		{dispute.OutcomeCancelOrder, order.StatusCancelled, order.PartyNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			o := builder.NewOrderBuilder().WithStatus(order.StatusPaid).BuildDomain()
			d, disputed, err := dispute.Open(o, o.BuyerID(), dispute.ReasonNotAsDescribed, "wrong size", false, now)
			require.NoError(t, err)

			admin := uuid.New()
			resolved, settled, err := d.Resolve(disputed, tt.outcome, " checked photos ", admin, now.Add(time.Hour))
			require.NoError(t, err)

			assert.Equal(t, tt.expected, settled.Status())
			assert.True(t, resolved.IsResolved())
			assert.False(t, d.IsResolved(), "receiver is not mutated")
			assert.Equal(t, dispute.Resolution{
				Outcome:    tt.outcome,
				Note:       "checked photos",
				ResolvedBy: admin,
				ResolvedAt: now.Add(time.Hour),
			}, *resolved.Resolution())
			assert.Equal(t, tt.against, tt.outcome.AgainstParty())

			_, _, err = resolved.Resolve(settled, tt.outcome, "", admin, now)
			require.ErrorIs(t, err, dispute.ErrAlreadyResolved)
		})
	}
}

func TestResolveOrderMismatch(t *testing.T) {
	o := builder.NewOrderBuilder().WithStatus(order.StatusPaid).BuildDomain()
	d, _, err := dispute.Open(o, o.BuyerID(), dispute.ReasonOther, "", false, now)
	require.NoError(t, err)

	other := builder.NewOrderBuilder().WithStatus(order.StatusDispute).BuildDomain()
	_, _, err = d.Resolve(other, dispute.OutcomeCancelOrder, "", uuid.New(), now)
	require.ErrorIs(t, err, dispute.ErrOrderMismatch)
}

func TestOpenForEscalation(t *testing.T) {
	orderID := uuid.New()
	d := dispute.OpenForEscalation(orderID, order.Escalation{Reason: order.EscalationNoShow, Message: "missed"}, now)

	assert.Nil(t, d.OpenedBy())
	assert.Equal(t, dispute.ReasonNoShow, d.Reason())
	assert.Equal(t, orderID, d.OrderID())
}

func TestParse(t *testing.T) {
	_, err := dispute.ParseReason("bored")
	require.ErrorIs(t, err, dispute.ErrInvalidReason)
	_, err = dispute.ParseOutcome("split")
	require.ErrorIs(t, err, dispute.ErrInvalidOutcome)

	r, err := dispute.ParseReason("no_show")
	require.NoError(t, err)
	assert.Equal(t, dispute.ReasonNoShow, r)
}
