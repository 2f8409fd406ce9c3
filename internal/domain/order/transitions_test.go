//go:build unit

package order_test

import (
	"testing"
	"time"

	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

func TestTransitionTable(t *testing.T) {
	legal := map[order.Status][]order.Status{
		order.StatusCreated:              {order.StatusPaid, order.StatusCancelled, order.StatusExpired},
		order.StatusPaid:                 {order.StatusMeetupScheduled, order.StatusLabelReady, order.StatusRefunded, order.StatusDispute},
		order.StatusMeetupScheduled:      {order.StatusAwaitingConfirmation, order.StatusDispute, order.StatusCancelled},
		order.StatusLabelReady:           {order.StatusInTransit},
		order.StatusInTransit:            {order.StatusAwaitingConfirmation, order.StatusDispute},
		order.StatusAwaitingConfirmation: {order.StatusCompleted, order.StatusDispute},
		order.StatusDispute:              {order.StatusRefunded, order.StatusCompleted, order.StatusCancelled},
	}

	for _, from := range order.Statuses() {
		for _, to := range order.Statuses() {
			expected := contains(legal[from], to)
			assert.Equal(t, expected, order.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestMeetupNeverShips(t *testing.T) {
	assert.False(t, order.CanTransition(order.StatusMeetupScheduled, order.StatusInTransit))

	o := builder.NewOrderBuilder().InPerson().WithStatus(order.StatusMeetupScheduled).BuildDomain()
	_, err := o.Transition(order.StatusInTransit, now)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	_, err = o.Ship(o.SellerID(), "TRK-1", now)
	require.ErrorIs(t, err, order.ErrWrongFulfillment)
}

func TestTransition(t *testing.T) {
	for _, from := range order.Statuses() {
		for _, to := range order.Statuses() {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				o := builder.NewOrderBuilder().WithStatus(from).BuildDomain()

				next, err := o.Transition(to, now)

				assert.Equal(t, from, o.Status(), "receiver status is unchanged")
				if from == order.StatusDispute {
					require.ErrorIs(t, err, order.ErrLeaveDispute)
					return
				}
				if !order.CanTransition(from, to) {
					require.Nil(t, next)
					require.ErrorIs(t, err, errs.ErrInvalidTransition)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, to, next.Status())
				assert.Equal(t, now, next.UpdatedAt())
			})
		}
	}
}

func TestSettle(t *testing.T) {
	t.Run("only from dispute", func(t *testing.T) {
		o := builder.NewOrderBuilder().WithStatus(order.StatusAwaitingConfirmation).BuildDomain()
		_, err := o.Settle(order.StatusCompleted, now)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	for _, to := range []order.Status{order.StatusRefunded, order.StatusCompleted, order.StatusCancelled} {
		t.Run(string(to), func(t *testing.T) {
			o := builder.NewOrderBuilder().WithStatus(order.StatusDispute).BuildDomain()
			next, err := o.Settle(to, now)
			require.NoError(t, err)
			assert.Equal(t, to, next.Status())
			assert.Nil(t, next.ConfirmationDeadline())
		})
	}

	t.Run("dispute cannot settle into paid", func(t *testing.T) {
		o := builder.NewOrderBuilder().WithStatus(order.StatusDispute).BuildDomain()
		_, err := o.Settle(order.StatusPaid, now)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStatusSets(t *testing.T) {
	terminal := []order.Status{order.StatusCompleted, order.StatusCancelled, order.StatusRefunded, order.StatusExpired}
	for _, s := range order.Statuses() {
		assert.Equal(t, contains(terminal, s), s.IsTerminal(), s)
		assert.Equal(t, !contains(terminal, s), s.IsInFlight(), s)
	}
	assert.Len(t, order.InFlightStatuses(), 7)
}

func contains(list []order.Status, s order.Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
